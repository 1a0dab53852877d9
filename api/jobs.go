package api

import (
	"context"
	"fmt"

	"careloop/models"
)

// JobAPI covers the caregiver-side job lifecycle.
type JobAPI interface {
	// CreateJobRequest publishes the caregiver-facing offer derived from a booking.
	CreateJobRequest(ctx context.Context, req models.JobCreate) error
	// JobsForCaregiver lists open job requests routed to one caregiver.
	JobsForCaregiver(ctx context.Context, caregiverID int) ([]models.JobRequest, error)
	// AcceptedJobs lists the jobs a caregiver has accepted.
	AcceptedJobs(ctx context.Context, caregiverID int) ([]models.AcceptedJob, error)
	// GetJob retrieves one job request by ID.
	GetJob(ctx context.Context, jobID int) (*models.JobRequest, error)
	// AcceptJob marks a job request as taken by the caregiver.
	AcceptJob(ctx context.Context, jobID, caregiverID int) error
	// CompleteJob marks an accepted job done; the server computes and returns
	// the settlement (gross, 15% commission, net earnings).
	CompleteJob(ctx context.Context, acceptedJobID int) (*models.JobSettlement, error)
}

func (c *Client) CreateJobRequest(ctx context.Context, req models.JobCreate) error {
	return c.post(ctx, c.Endpoints.Jobs, req, nil)
}

func (c *Client) JobsForCaregiver(ctx context.Context, caregiverID int) ([]models.JobRequest, error) {
	var payloads []jobRequestPayload
	if err := c.get(ctx, fmt.Sprintf("%s/%d", c.Endpoints.CaregiverJobs, caregiverID), &payloads); err != nil {
		return nil, err
	}
	jobs := make([]models.JobRequest, 0, len(payloads))
	for _, p := range payloads {
		jobs = append(jobs, p.toModel())
	}
	return jobs, nil
}

func (c *Client) AcceptedJobs(ctx context.Context, caregiverID int) ([]models.AcceptedJob, error) {
	var payloads []acceptedJobPayload
	if err := c.get(ctx, fmt.Sprintf("%s/%d", c.Endpoints.AcceptedJobs, caregiverID), &payloads); err != nil {
		return nil, err
	}
	jobs := make([]models.AcceptedJob, 0, len(payloads))
	for _, p := range payloads {
		jobs = append(jobs, p.toModel())
	}
	return jobs, nil
}

func (c *Client) GetJob(ctx context.Context, jobID int) (*models.JobRequest, error) {
	var payload jobRequestPayload
	if err := c.get(ctx, fmt.Sprintf("%s/%d", c.Endpoints.Jobs, jobID), &payload); err != nil {
		return nil, err
	}
	job := payload.toModel()
	return &job, nil
}

func (c *Client) AcceptJob(ctx context.Context, jobID, caregiverID int) error {
	body := map[string]int{"caregiverId": caregiverID}
	return c.post(ctx, fmt.Sprintf("%s/%d/accept", c.Endpoints.Jobs, jobID), body, nil)
}

func (c *Client) CompleteJob(ctx context.Context, acceptedJobID int) (*models.JobSettlement, error) {
	var resp struct {
		Earnings   float64 `json:"earnings"`
		Commission float64 `json:"commission"`
	}
	if err := c.post(ctx, fmt.Sprintf("%s/accepted/%d/complete", c.Endpoints.Jobs, acceptedJobID), nil, &resp); err != nil {
		return nil, err
	}
	return &models.JobSettlement{
		Gross:      resp.Earnings + resp.Commission,
		Commission: resp.Commission,
		Earnings:   resp.Earnings,
	}, nil
}
