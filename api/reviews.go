package api

import (
	"context"
	"fmt"

	"careloop/models"
)

// ReviewAPI covers review submission and retrieval.
type ReviewAPI interface {
	// SubmitReview creates the single review allowed for one booking.
	SubmitReview(ctx context.Context, req models.ReviewCreate) error
	// CaregiverReviews lists all reviews left for one caregiver.
	CaregiverReviews(ctx context.Context, caregiverID int) ([]models.Review, error)
}

func (c *Client) SubmitReview(ctx context.Context, req models.ReviewCreate) error {
	return c.post(ctx, c.Endpoints.Reviews, req, nil)
}

func (c *Client) CaregiverReviews(ctx context.Context, caregiverID int) ([]models.Review, error) {
	var payloads []reviewPayload
	if err := c.get(ctx, fmt.Sprintf("%s/%d", c.Endpoints.CaregiverReviews, caregiverID), &payloads); err != nil {
		return nil, err
	}
	reviews := make([]models.Review, 0, len(payloads))
	for _, p := range payloads {
		reviews = append(reviews, p.toModel())
	}
	return reviews, nil
}
