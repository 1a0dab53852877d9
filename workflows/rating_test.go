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

func newRatingFixture(bookings ...models.Booking) (*DefaultRatingService, *surfaceRecorder, *fakeReviewAPI, *fakeProfileService) {
	surface := newSurfaceRecorder()
	reviews := &fakeReviewAPI{}
	profile := &fakeProfileService{}

	sessions := session.NewManager(session.NewMemStore(), zap.NewNop())
	sessions.SaveUser(&models.User{ID: 3, Name: "Sarah Lim"})

	state := NewState()
	state.SetBookingHistory(bookings)

	svc := &DefaultRatingService{
		Reviews: reviews,
		Session: sessions,
		State:   state,
		Profile: profile,
		UI:      surface,
		Log:     zap.NewNop(),
	}
	return svc, surface, reviews, profile
}

func TestOpenRatingRejectsAlreadyRated(t *testing.T) {
	svc, surface, _, _ := newRatingFixture(models.Booking{
		ID: 42, Status: models.BookingCompleted, Rated: true, UserRating: 5,
	})

	err := svc.OpenRating(42)

	assert.ErrorIs(t, err, ErrAlreadyRated)
	assert.Empty(t, surface.openedModals)
	require.NotEmpty(t, surface.alerts)
	assert.Contains(t, surface.alerts[0], "already reviewed")
}

func TestOpenRatingRejectsUnfinishedBooking(t *testing.T) {
	svc, surface, _, _ := newRatingFixture(models.Booking{
		ID: 42, Status: models.BookingInProgress,
	})

	err := svc.OpenRating(42)

	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, surface.openedModals)
}

func TestOpenRatingOpensModalForCompletedBooking(t *testing.T) {
	svc, surface, _, _ := newRatingFixture(models.Booking{
		ID: 42, Status: models.BookingCompleted,
	})

	require.NoError(t, svc.OpenRating(42))
	assert.Equal(t, []string{ui.ModalRating}, surface.openedModals)
}

func TestSubmitRatingRejectsDuplicate(t *testing.T) {
	svc, _, reviews, _ := newRatingFixture(models.Booking{
		ID: 42, Status: models.BookingCompleted, Rated: true,
	})

	err := svc.SubmitRating(context.Background(), 42, 4, "great")

	assert.ErrorIs(t, err, ErrAlreadyRated)
	assert.Empty(t, reviews.submitted)
}

func TestSubmitRatingRequiresStars(t *testing.T) {
	svc, surface, reviews, _ := newRatingFixture(models.Booking{
		ID: 42, Status: models.BookingCompleted,
	})

	err := svc.SubmitRating(context.Background(), 42, 0, "")

	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, reviews.submitted)
	require.NotEmpty(t, surface.alerts)
	assert.Contains(t, surface.alerts[0], "select a rating")
}

func TestSubmitRatingSendsReviewAndReloadsHistory(t *testing.T) {
	svc, surface, reviews, profile := newRatingFixture(models.Booking{
		ID: 42, CaregiverID: 7, CaregiverName: "Ahmad Razak",
		Status: models.BookingCompleted,
	})

	err := svc.SubmitRating(context.Background(), 42, 5, "Very caring and punctual")

	require.NoError(t, err)
	require.Len(t, reviews.submitted, 1)
	submitted := reviews.submitted[0]
	assert.Equal(t, 42, submitted.BookingID)
	assert.Equal(t, 3, submitted.UserID)
	assert.Equal(t, 7, submitted.CaregiverID)
	assert.Equal(t, 5, submitted.Rating)
	assert.Equal(t, "Very caring and punctual", submitted.ReviewText)

	assert.Equal(t, []string{ui.ModalRating}, surface.closedModals)
	assert.Equal(t, 1, profile.historyLoads)
}
