package api

import (
	"context"
	"fmt"
	"net/url"

	"careloop/models"
)

// CaregiverAPI covers caregiver authentication, registration and browsing.
type CaregiverAPI interface {
	// LoginCaregiver authenticates a caregiver with email and password.
	LoginCaregiver(ctx context.Context, email, password string) (*models.Caregiver, error)
	// RegisterCaregiver creates a caregiver account and returns the new ID.
	RegisterCaregiver(ctx context.Context, reg models.CaregiverRegistration) (int, error)
	// GetCaregiver retrieves a caregiver's canonical profile by ID.
	GetCaregiver(ctx context.Context, id int) (*models.Caregiver, error)
	// ListCaregivers retrieves listing cards, optionally filtered by care type.
	ListCaregivers(ctx context.Context, careType string) ([]models.CaregiverCard, error)
}

func (c *Client) LoginCaregiver(ctx context.Context, email, password string) (*models.Caregiver, error) {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		Caregiver caregiverPayload `json:"caregiver"`
	}
	if err := c.post(ctx, c.Endpoints.CaregiverLogin, body, &resp); err != nil {
		return nil, err
	}
	cg := resp.Caregiver.toModel()
	return &cg, nil
}

func (c *Client) RegisterCaregiver(ctx context.Context, reg models.CaregiverRegistration) (int, error) {
	var resp struct {
		CaregiverID int `json:"caregiverId"`
	}
	if err := c.post(ctx, c.Endpoints.CaregiverRegister, reg, &resp); err != nil {
		return 0, err
	}
	return resp.CaregiverID, nil
}

func (c *Client) GetCaregiver(ctx context.Context, id int) (*models.Caregiver, error) {
	var payload caregiverPayload
	if err := c.get(ctx, fmt.Sprintf("%s/%d", c.Endpoints.Caregivers, id), &payload); err != nil {
		return nil, err
	}
	cg := payload.toModel()
	return &cg, nil
}

func (c *Client) ListCaregivers(ctx context.Context, careType string) ([]models.CaregiverCard, error) {
	endpoint := c.Endpoints.Caregivers
	if careType != "" {
		endpoint += "?careType=" + url.QueryEscape(careType)
	}
	var payloads []caregiverCardPayload
	if err := c.get(ctx, endpoint, &payloads); err != nil {
		return nil, err
	}
	cards := make([]models.CaregiverCard, 0, len(payloads))
	for _, p := range payloads {
		cards = append(cards, p.toModel())
	}
	return cards, nil
}
