package workflows

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"careloop/api"
	"careloop/session"
	"careloop/ui"
)

// TrainingService owns training program browsing and enrollment.
type TrainingService interface {
	// ShowTrainingDetails opens the details modal for one program, with the
	// call to action reflecting whether the caregiver is already enrolled.
	ShowTrainingDetails(ctx context.Context, trainingID int) error
	// Enroll enrolls the caregiver after re-checking current enrollments, so
	// a program enrolled elsewhere since the modal opened is still rejected.
	Enroll(ctx context.Context, trainingID int) error
}

// DefaultTrainingService is the stock TrainingService implementation.
type DefaultTrainingService struct {
	Training api.TrainingAPI
	Session  *session.Manager
	UI       ui.Surface
	Log      *zap.Logger
}

func (s *DefaultTrainingService) ShowTrainingDetails(ctx context.Context, trainingID int) error {
	caregiver := s.Session.CurrentCaregiver()
	if caregiver == nil {
		s.UI.Alert("Please login first.")
		return ErrNotAuthenticated
	}
	program, err := s.Training.GetTraining(ctx, trainingID)
	if err != nil {
		s.Log.Warn("training load failed", zap.Int("trainingID", trainingID), zap.Error(err))
		s.UI.Alert("Failed to load training details.")
		return err
	}

	enrolled, err := s.isEnrolled(ctx, caregiver.ID, trainingID)
	if err != nil {
		// Treat as not enrolled for display; Enroll re-checks before acting.
		s.Log.Warn("enrollment check failed", zap.Int("caregiverID", caregiver.ID), zap.Error(err))
	}

	action := "Enroll Now"
	if enrolled {
		action = "Already Enrolled"
	}
	s.UI.RenderList(ui.RegionTrainingInfo, []string{
		program.Title,
		fmt.Sprintf("%s, certificate: %s", program.Duration, program.Certificate),
		program.Description,
		"Topics: " + strings.Join(program.Topics, ", "),
		action,
	})
	s.UI.OpenModal(ui.ModalTraining)
	return nil
}

func (s *DefaultTrainingService) Enroll(ctx context.Context, trainingID int) error {
	caregiver := s.Session.CurrentCaregiver()
	if caregiver == nil {
		s.UI.Alert("Please login first.")
		return ErrNotAuthenticated
	}
	program, err := s.Training.GetTraining(ctx, trainingID)
	if err != nil {
		s.Log.Warn("training load failed", zap.Int("trainingID", trainingID), zap.Error(err))
		s.UI.Alert("Failed to load training details.")
		return err
	}

	enrolled, err := s.isEnrolled(ctx, caregiver.ID, trainingID)
	if err != nil {
		s.UI.Alert("Failed to verify your enrollments. Please try again.")
		return err
	}
	if enrolled {
		s.UI.Alert("You are already enrolled in this training!")
		return ErrAlreadyEnrolled
	}

	if err := s.Training.Enroll(ctx, caregiver.ID, trainingID); err != nil {
		s.Log.Warn("enrollment failed", zap.Int("trainingID", trainingID), zap.Error(err))
		s.UI.Alert("Failed to enroll. Please try again.")
		return err
	}
	s.Log.Info("enrolled in training", zap.Int("caregiverID", caregiver.ID), zap.Int("trainingID", trainingID))
	s.UI.CloseModal(ui.ModalTraining)
	s.UI.ShowSuccess("Enrolled!",
		fmt.Sprintf("You are enrolled in %s. The certificate appears on your profile when you complete it.", program.Title),
		"")
	return nil
}

func (s *DefaultTrainingService) isEnrolled(ctx context.Context, caregiverID, trainingID int) (bool, error) {
	enrollments, err := s.Training.CaregiverEnrollments(ctx, caregiverID)
	if err != nil {
		return false, err
	}
	for _, e := range enrollments {
		if e.TrainingProgramID == trainingID {
			return true, nil
		}
	}
	return false, nil
}
