package workflows

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"careloop/models"
	"careloop/nav"
	"careloop/session"
	"careloop/ui"
)

func newProfileFixture() (*DefaultProfileService, *surfaceRecorder, *fakeBookingAPI, *fakeReviewAPI, *fakeTrainingAPI) {
	surface := newSurfaceRecorder()
	bookings := &fakeBookingAPI{}
	reviews := &fakeReviewAPI{}
	training := &fakeTrainingAPI{}
	users := &fakeUserAPI{}
	caregivers := &fakeCaregiverAPI{}

	svc := &DefaultProfileService{
		Users:      users,
		Caregivers: caregivers,
		Bookings:   bookings,
		Reviews:    reviews,
		Training:   training,
		Session:    session.NewManager(session.NewMemStore(), zap.NewNop()),
		State:      NewState(),
		Nav:        nav.New(surface, zap.NewNop()),
		UI:         surface,
		Validate:   validator.New(),
		Log:        zap.NewNop(),
	}
	return svc, surface, bookings, reviews, training
}

func TestSaveUserProfileRederivesAvatar(t *testing.T) {
	svc, surface, _, _, _ := newProfileFixture()
	svc.Session.SaveUser(&models.User{ID: 3, Name: "Sarah Lim", Avatar: "S"})

	err := svc.SaveUserProfile(context.Background(), UserProfileEdit{
		Name: "Aisyah Binti Omar", Gender: "female", Email: "aisyah@example.com",
		Phone: "0123456789", Location: "Shah Alam",
	})

	require.NoError(t, err)
	user := svc.Session.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "Aisyah Binti Omar", user.Name)
	assert.Equal(t, "A", user.Avatar)
	require.NotEmpty(t, surface.alerts)
	assert.Contains(t, surface.alerts[0], "updated")
}

func TestSaveUserProfileRejectsMissingFields(t *testing.T) {
	svc, _, _, _, _ := newProfileFixture()
	svc.Session.SaveUser(&models.User{ID: 3, Name: "Sarah Lim"})

	err := svc.SaveUserProfile(context.Background(), UserProfileEdit{Name: "Sarah"})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestLoadBookingHistoryCachesAndRenders(t *testing.T) {
	svc, surface, bookings, _, _ := newProfileFixture()
	svc.Session.SaveUser(&models.User{ID: 3})
	bookings.bookings = []models.Booking{
		{ID: 42, CaregiverName: "Ahmad Razak", Date: "2026-03-14", Hours: 3,
			Total: 69, Status: models.BookingCompleted, Rated: true, UserRating: 5},
		{ID: 43, CaregiverName: "Mei Ling", Date: "2026-03-20", Hours: 2,
			Total: 63, Status: models.BookingInProgress},
	}

	svc.LoadBookingHistory(context.Background())

	cached, ok := svc.State.BookingByID(42)
	require.True(t, ok)
	assert.True(t, cached.Rated)

	lines := surface.regions[ui.RegionBookingHistory]
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Completed")
	assert.Contains(t, lines[0], "rated 5/5")
	assert.Contains(t, lines[1], "In Progress")
}

func TestLoadBookingHistoryEmpty(t *testing.T) {
	svc, surface, _, _, _ := newProfileFixture()
	svc.Session.SaveUser(&models.User{ID: 3})

	svc.LoadBookingHistory(context.Background())

	lines := surface.regions[ui.RegionBookingHistory]
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "No bookings")
}

func TestShowCaregiverProfileMergesCompletedTraining(t *testing.T) {
	svc, surface, _, reviews, training := newProfileFixture()
	svc.Caregivers.(*fakeCaregiverAPI).caregiver = &models.Caregiver{
		ID: 7, Name: "Ahmad Razak", HourlyRate: 25,
		Specialties:    []string{"Elderly Care"},
		Certifications: []string{"First Aid Certificate"},
		Languages:      []string{"English", "Malay"},
	}
	svc.Session.SaveCaregiver(&models.Caregiver{ID: 7, Name: "Ahmad Razak"})
	training.enrollments = []models.TrainingEnrollment{
		{TrainingProgramID: 2, Title: "Certified Dementia Caregiver", Status: "completed"},
		{TrainingProgramID: 4, Title: "Pediatric Basics", Status: "enrolled"},
	}
	reviews.reviews = []models.Review{{Rating: 5, UserName: "Sarah Lim"}, {Rating: 4, UserName: "Tan Wei"}}

	svc.ShowCaregiverProfile(context.Background())

	profileLines := surface.regions[ui.RegionProfile]
	require.NotEmpty(t, profileLines)
	joined := ""
	for _, l := range profileLines {
		joined += l + "\n"
	}
	assert.Contains(t, joined, "Certified Dementia Caregiver", "completed training becomes a certification")
	assert.NotContains(t, joined, "Pediatric Basics", "in-progress training stays off the profile")

	reviewLines := surface.regions[ui.RegionReviews]
	require.NotEmpty(t, reviewLines)
	assert.Contains(t, reviewLines[0], "4.5 average from 2 reviews")

	assert.Equal(t, []string{string(nav.PageCaregiverProfileView)}, surface.pages)
}
