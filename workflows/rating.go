package workflows

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"careloop/api"
	"careloop/models"
	"careloop/session"
	"careloop/ui"
)

// RatingService owns the one-review-per-booking flow.
type RatingService interface {
	// OpenRating opens the rating modal for a completed, unrated booking.
	// Already-rated and not-yet-completed bookings are rejected.
	OpenRating(bookingID int) error
	// SubmitRating validates and submits the review, closes the modal and
	// reloads the booking history so the card flips to its rated state.
	SubmitRating(ctx context.Context, bookingID, rating int, reviewText string) error
}

// DefaultRatingService is the stock RatingService implementation.
type DefaultRatingService struct {
	Reviews api.ReviewAPI
	Session *session.Manager
	State   *State
	Profile ProfileService
	UI      ui.Surface
	Log     *zap.Logger
}

func (s *DefaultRatingService) OpenRating(bookingID int) error {
	booking, ok := s.State.BookingByID(bookingID)
	if !ok {
		s.UI.Alert("Booking not found.")
		return ErrNoSelection
	}
	if booking.Rated {
		s.UI.Alert("You have already reviewed this booking.")
		return ErrAlreadyRated
	}
	if booking.Status != models.BookingCompleted {
		s.UI.Alert("You can review this booking once it is completed.")
		return ErrValidation
	}
	s.UI.OpenModal(ui.ModalRating)
	return nil
}

func (s *DefaultRatingService) SubmitRating(ctx context.Context, bookingID, rating int, reviewText string) error {
	user := s.Session.CurrentUser()
	if user == nil {
		s.UI.Alert("Please login first.")
		return ErrNotAuthenticated
	}
	booking, ok := s.State.BookingByID(bookingID)
	if !ok {
		s.UI.Alert("Booking not found.")
		return ErrNoSelection
	}
	if booking.Rated {
		s.UI.Alert("You have already reviewed this booking.")
		return ErrAlreadyRated
	}
	if rating < 1 || rating > 5 {
		s.UI.Alert("Please select a rating.")
		return ErrValidation
	}

	err := s.Reviews.SubmitReview(ctx, models.ReviewCreate{
		BookingID:   bookingID,
		UserID:      user.ID,
		CaregiverID: booking.CaregiverID,
		Rating:      rating,
		ReviewText:  reviewText,
	})
	if err != nil {
		s.Log.Warn("review submission failed", zap.Int("bookingID", bookingID), zap.Error(err))
		s.UI.Alert("Failed to submit review. Please try again.")
		return err
	}
	s.Log.Info("review submitted", zap.Int("bookingID", bookingID), zap.Int("rating", rating))
	s.UI.CloseModal(ui.ModalRating)
	s.UI.Alert(fmt.Sprintf("Thank you for rating %s!", booking.CaregiverName))
	s.Profile.LoadBookingHistory(ctx)
	return nil
}
