package workflows

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"careloop/models"
	"careloop/session"
	"careloop/ui"
)

func newTrainingFixture() (*DefaultTrainingService, *surfaceRecorder, *fakeTrainingAPI) {
	surface := newSurfaceRecorder()
	training := &fakeTrainingAPI{
		program: &models.TrainingProgram{
			ID: 2, Title: "Dementia Care Fundamentals",
			Duration: "4 weeks", Certificate: "Certified Dementia Caregiver",
			Topics: []string{"Communication", "Safety"},
		},
	}
	sessions := session.NewManager(session.NewMemStore(), zap.NewNop())
	sessions.SaveCaregiver(&models.Caregiver{ID: 7, Name: "Ahmad Razak"})

	svc := &DefaultTrainingService{
		Training: training,
		Session:  sessions,
		UI:       surface,
		Log:      zap.NewNop(),
	}
	return svc, surface, training
}

func TestEnrollRejectsDuplicate(t *testing.T) {
	svc, surface, training := newTrainingFixture()
	training.enrollments = []models.TrainingEnrollment{
		{TrainingProgramID: 2, CaregiverID: 7, Status: "enrolled"},
	}

	err := svc.Enroll(context.Background(), 2)

	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
	assert.Empty(t, training.enrolled, "no enrollment request should leave the client")
	require.NotEmpty(t, surface.alerts)
	assert.Contains(t, surface.alerts[0], "already enrolled")
}

func TestEnrollSucceeds(t *testing.T) {
	svc, surface, training := newTrainingFixture()

	err := svc.Enroll(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, []int{2}, training.enrolled)
	assert.Equal(t, []string{ui.ModalTraining}, surface.closedModals)
	require.NotEmpty(t, surface.successTitles)
	assert.Equal(t, "Enrolled!", surface.successTitles[0])
}

func TestShowTrainingDetailsMarksEnrollment(t *testing.T) {
	svc, surface, training := newTrainingFixture()
	training.enrollments = []models.TrainingEnrollment{
		{TrainingProgramID: 2, CaregiverID: 7, Status: "enrolled"},
	}

	require.NoError(t, svc.ShowTrainingDetails(context.Background(), 2))

	lines := surface.regions[ui.RegionTrainingInfo]
	require.NotEmpty(t, lines)
	assert.Equal(t, "Already Enrolled", lines[len(lines)-1])
	assert.Equal(t, []string{ui.ModalTraining}, surface.openedModals)
}

func TestShowTrainingDetailsRequiresLogin(t *testing.T) {
	svc, surface, _ := newTrainingFixture()
	svc.Session.Clear()

	err := svc.ShowTrainingDetails(context.Background(), 2)

	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Empty(t, surface.openedModals)
}
