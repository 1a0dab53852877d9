package api

import (
	"context"
	"fmt"
	"net/http"

	"careloop/models"
)

// UserAPI covers authentication and profile access for end users.
type UserAPI interface {
	// LoginUser authenticates with email and password.
	LoginUser(ctx context.Context, email, password string) (*models.User, error)
	// RegisterUser creates a new user account and returns the stored identity.
	RegisterUser(ctx context.Context, reg models.UserRegistration) (*models.User, error)
	// GetUser retrieves a user's canonical profile by ID.
	GetUser(ctx context.Context, id int) (*models.User, error)
	// UpdateUser modifies the editable profile fields.
	UpdateUser(ctx context.Context, id int, upd models.UserProfileUpdate) error
}

func (c *Client) LoginUser(ctx context.Context, email, password string) (*models.User, error) {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		User userPayload `json:"user"`
	}
	if err := c.post(ctx, c.Endpoints.UserLogin, body, &resp); err != nil {
		return nil, err
	}
	u := resp.User.toModel()
	return &u, nil
}

func (c *Client) RegisterUser(ctx context.Context, reg models.UserRegistration) (*models.User, error) {
	var resp struct {
		User userPayload `json:"user"`
	}
	if err := c.post(ctx, c.Endpoints.UserRegister, reg, &resp); err != nil {
		return nil, err
	}
	u := resp.User.toModel()
	return &u, nil
}

func (c *Client) GetUser(ctx context.Context, id int) (*models.User, error) {
	var payload userPayload
	if err := c.get(ctx, fmt.Sprintf("%s/%d", c.Endpoints.UserProfile, id), &payload); err != nil {
		return nil, err
	}
	u := payload.toModel()
	return &u, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int, upd models.UserProfileUpdate) error {
	return c.Call(ctx, http.MethodPut, fmt.Sprintf("%s/%d", c.Endpoints.UserProfile, id), upd, nil)
}
