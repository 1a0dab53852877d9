package api

import (
	"context"
	"fmt"

	"careloop/models"
)

// TrainingAPI covers training programs and enrollment.
type TrainingAPI interface {
	// GetTraining retrieves one program by ID.
	GetTraining(ctx context.Context, id int) (*models.TrainingProgram, error)
	// CaregiverEnrollments lists a caregiver's current enrollments.
	CaregiverEnrollments(ctx context.Context, caregiverID int) ([]models.TrainingEnrollment, error)
	// Enroll records an enrollment. The duplicate check happens client-side
	// before this call.
	Enroll(ctx context.Context, caregiverID, trainingID int) error
}

func (c *Client) GetTraining(ctx context.Context, id int) (*models.TrainingProgram, error) {
	var payload trainingPayload
	if err := c.get(ctx, fmt.Sprintf("%s/%d", c.Endpoints.Training, id), &payload); err != nil {
		return nil, err
	}
	t := payload.toModel()
	return &t, nil
}

func (c *Client) CaregiverEnrollments(ctx context.Context, caregiverID int) ([]models.TrainingEnrollment, error) {
	var payloads []enrollmentPayload
	if err := c.get(ctx, fmt.Sprintf("%s/%d", c.Endpoints.CaregiverTraining, caregiverID), &payloads); err != nil {
		return nil, err
	}
	enrollments := make([]models.TrainingEnrollment, 0, len(payloads))
	for _, p := range payloads {
		enrollments = append(enrollments, p.toModel())
	}
	return enrollments, nil
}

func (c *Client) Enroll(ctx context.Context, caregiverID, trainingID int) error {
	body := map[string]int{"caregiverId": caregiverID, "trainingProgramId": trainingID}
	return c.post(ctx, c.Endpoints.TrainingEnroll, body, nil)
}
