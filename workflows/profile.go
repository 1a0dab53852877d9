package workflows

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"careloop/api"
	"careloop/models"
	"careloop/nav"
	"careloop/session"
	"careloop/ui"
	"careloop/utils"
)

// UserProfileEdit is the editable subset of a user profile.
type UserProfileEdit struct {
	Name     string `validate:"required"`
	Gender   string `validate:"required"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"required"`
	Location string `validate:"required"`
}

// ProfileService owns the user profile page, its booking history, and the
// caregiver's own profile view.
type ProfileService interface {
	// ShowUserProfile re-fetches the canonical user profile, then navigates
	// to the profile page. A failed fetch falls back to the session copy.
	ShowUserProfile(ctx context.Context)
	// RefreshUserProfile renders the profile header and reloads the booking
	// history. It is the profile page's refresh hook.
	RefreshUserProfile(ctx context.Context)
	// SaveUserProfile persists edits and updates the session identity.
	SaveUserProfile(ctx context.Context, form UserProfileEdit) error
	// LoadBookingHistory fetches and renders the user's bookings.
	LoadBookingHistory(ctx context.Context)
	// ShowCaregiverProfile re-fetches the caregiver's canonical profile,
	// merges completed training into the certification list, loads reviews
	// and navigates to the caregiver profile view.
	ShowCaregiverProfile(ctx context.Context)
}

// DefaultProfileService is the stock ProfileService implementation.
type DefaultProfileService struct {
	Users      api.UserAPI
	Caregivers api.CaregiverAPI
	Bookings   api.BookingAPI
	Reviews    api.ReviewAPI
	Training   api.TrainingAPI
	Session    *session.Manager
	State      *State
	Nav        *nav.Navigator
	UI         ui.Surface
	Validate   *validator.Validate
	Log        *zap.Logger
}

func (s *DefaultProfileService) ShowUserProfile(ctx context.Context) {
	user := s.Session.CurrentUser()
	if user == nil {
		s.UI.Alert("Please login first.")
		s.Nav.Navigate(nav.PageUserLogin)
		return
	}
	if fresh, err := s.Users.GetUser(ctx, user.ID); err == nil {
		s.Session.SaveUser(fresh)
	} else {
		s.Log.Warn("user profile refresh failed, using session copy",
			zap.Int("userID", user.ID), zap.Error(err))
	}
	s.Nav.Navigate(nav.PageUserProfile)
}

func (s *DefaultProfileService) RefreshUserProfile(ctx context.Context) {
	user := s.Session.CurrentUser()
	if user == nil {
		return
	}
	s.UI.RenderList(ui.RegionProfile, []string{
		fmt.Sprintf("%s (%s)", user.Name, user.Avatar),
		"Gender: " + user.Gender,
		"Email: " + user.Email,
		"Phone: " + user.Phone,
		"Location: " + user.Location,
	})
	s.LoadBookingHistory(ctx)
}

func (s *DefaultProfileService) SaveUserProfile(ctx context.Context, form UserProfileEdit) error {
	user := s.Session.CurrentUser()
	if user == nil {
		s.UI.Alert("Please login first.")
		return ErrNotAuthenticated
	}
	if err := s.Validate.Struct(form); err != nil {
		s.UI.Alert("Please fill in all required fields.")
		return ErrValidation
	}
	upd := models.UserProfileUpdate{
		Name:     form.Name,
		Gender:   form.Gender,
		Email:    form.Email,
		Phone:    form.Phone,
		Location: form.Location,
	}
	if err := s.Users.UpdateUser(ctx, user.ID, upd); err != nil {
		s.Log.Warn("profile update failed", zap.Int("userID", user.ID), zap.Error(err))
		s.UI.Alert("Failed to update profile. Please try again.")
		return err
	}
	updated := *user
	updated.Name = form.Name
	updated.Gender = form.Gender
	updated.Email = form.Email
	updated.Phone = form.Phone
	updated.Location = form.Location
	updated.Avatar = utils.AvatarInitial(form.Name)
	s.Session.SaveUser(&updated)
	s.UI.Alert("Profile updated successfully!")
	s.RefreshUserProfile(ctx)
	return nil
}

func (s *DefaultProfileService) LoadBookingHistory(ctx context.Context) {
	user := s.Session.CurrentUser()
	if user == nil {
		return
	}
	bookings, err := s.Bookings.UserBookings(ctx, user.ID)
	if err != nil {
		s.Log.Warn("booking history load failed", zap.Int("userID", user.ID), zap.Error(err))
		s.UI.RenderError(ui.RegionBookingHistory, "Failed to load booking history.")
		return
	}
	s.State.SetBookingHistory(bookings)

	if len(bookings) == 0 {
		s.UI.RenderList(ui.RegionBookingHistory, []string{"No bookings yet."})
		return
	}
	lines := make([]string, 0, len(bookings))
	for _, b := range bookings {
		lines = append(lines, fmt.Sprintf("[%d] %s on %s at %s, %d hours, %s, %s%s",
			b.ID, b.CaregiverName, utils.FormatDate(b.Date), b.Time, b.Hours,
			utils.FormatMoney(b.Total), statusLabel(b.Status), ratedSuffix(b)))
	}
	s.UI.RenderList(ui.RegionBookingHistory, lines)
}

func (s *DefaultProfileService) ShowCaregiverProfile(ctx context.Context) {
	caregiver := s.Session.CurrentCaregiver()
	if caregiver == nil {
		s.UI.Alert("Please login first.")
		s.Nav.Navigate(nav.PageCaregiverLogin)
		return
	}
	if fresh, err := s.Caregivers.GetCaregiver(ctx, caregiver.ID); err == nil {
		s.Session.SaveCaregiver(fresh)
		caregiver = fresh
	} else {
		s.Log.Warn("caregiver profile refresh failed, using session copy",
			zap.Int("caregiverID", caregiver.ID), zap.Error(err))
	}

	certifications := append([]string{}, caregiver.Certifications...)
	if enrollments, err := s.Training.CaregiverEnrollments(ctx, caregiver.ID); err == nil {
		for _, e := range enrollments {
			if e.Status == "completed" {
				certifications = append(certifications, e.Title)
			}
		}
	} else {
		s.Log.Warn("enrollment load failed", zap.Int("caregiverID", caregiver.ID), zap.Error(err))
	}

	s.UI.RenderList(ui.RegionProfile, []string{
		fmt.Sprintf("%s (%s)", caregiver.Name, caregiver.Avatar),
		fmt.Sprintf("%.1f rating from %d reviews", caregiver.AverageRating, caregiver.TotalReviews),
		fmt.Sprintf("%s experience, RM %d/hour", caregiver.Experience, caregiver.HourlyRate),
		"Specialties: " + strings.Join(caregiver.Specialties, ", "),
		"Certifications: " + strings.Join(certifications, ", "),
		"Languages: " + strings.Join(caregiver.Languages, ", "),
	})

	s.loadReviews(ctx, caregiver.ID)
	s.Nav.Navigate(nav.PageCaregiverProfileView)
}

func (s *DefaultProfileService) loadReviews(ctx context.Context, caregiverID int) {
	reviews, err := s.Reviews.CaregiverReviews(ctx, caregiverID)
	if err != nil {
		s.Log.Warn("review load failed", zap.Int("caregiverID", caregiverID), zap.Error(err))
		s.UI.RenderError(ui.RegionReviews, "Failed to load reviews.")
		return
	}
	summary := models.Summarize(reviews)
	lines := []string{fmt.Sprintf("%.1f average from %d reviews", summary.Average, summary.Total)}
	for stars := 5; stars >= 1; stars-- {
		lines = append(lines, fmt.Sprintf("%d star: %d", stars, summary.Distribution[stars]))
	}
	for _, r := range reviews {
		text := r.ReviewText
		if text == "" {
			text = "(no comment)"
		}
		lines = append(lines, fmt.Sprintf("%s (%s) rated %d: %s",
			r.UserName, utils.FormatDate(r.BookingDate), r.Rating, text))
	}
	s.UI.RenderList(ui.RegionReviews, lines)
}

func statusLabel(status models.BookingStatus) string {
	switch status {
	case models.BookingInProgress:
		return "In Progress"
	case models.BookingPendingCompletion:
		return "Pending Completion"
	case models.BookingCompleted:
		return "Completed"
	default:
		return string(status)
	}
}

func ratedSuffix(b models.Booking) string {
	if b.Rated {
		return fmt.Sprintf(", rated %d/5", b.UserRating)
	}
	return ""
}
