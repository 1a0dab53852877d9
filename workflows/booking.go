package workflows

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"careloop/api"
	"careloop/models"
	"careloop/nav"
	"careloop/pricing"
	"careloop/session"
	"careloop/ui"
	"careloop/utils"
)

// BookingForm is the payment page input. Location fields follow the
// custom-location toggle: when UseCustomLocation is false the user's saved
// address is used and CustomLocation is ignored.
type BookingForm struct {
	Date              string `validate:"required"`
	Time              string `validate:"required"`
	Hours             int    `validate:"required,min=1"`
	Insurance         bool
	UseCustomLocation bool
	CustomLocation    string
	SpecialRequests   string
}

// BookingService owns the payment page: live price breakdown, booking
// confirmation and the user-side completion flow.
type BookingService interface {
	// OpenPaymentPage moves to the payment page for the selected caregiver.
	// The page's refresh hook renders the default one-hour uninsured quote.
	OpenPaymentPage()
	// UpdatePrice recomputes and renders the fee breakdown for the selected
	// caregiver. Called on every hours or insurance change.
	UpdatePrice(hours int, insured bool)
	// ConfirmBooking validates the form, creates the booking, then publishes
	// the caregiver-facing job request. The job request failing does not roll
	// the booking back.
	ConfirmBooking(ctx context.Context, form BookingForm) error
	// FinishJob is the user-side confirmation for a booking the caregiver
	// marked done.
	FinishJob(ctx context.Context, bookingID int) error
	// FastForward pushes an in-progress booking straight to
	// pending_completion. Demo affordance only.
	FastForward(ctx context.Context, bookingID int)
}

// DefaultBookingService is the stock BookingService implementation.
type DefaultBookingService struct {
	Bookings api.BookingAPI
	Jobs     api.JobAPI
	Session  *session.Manager
	State    *State
	Profile  ProfileService
	Nav      *nav.Navigator
	UI       ui.Surface
	Validate *validator.Validate
	Log      *zap.Logger
}

func (s *DefaultBookingService) OpenPaymentPage() {
	if s.State.SelectedCaregiver() == nil {
		s.UI.Alert("Please select a caregiver first.")
		return
	}
	s.Nav.Navigate(nav.PageBookingPayment)
}

func (s *DefaultBookingService) UpdatePrice(hours int, insured bool) {
	caregiver := s.State.SelectedCaregiver()
	if caregiver == nil {
		return
	}
	if hours < 1 {
		hours = 1
	}
	quote := pricing.ComputeBooking(caregiver.HourlyRate, hours, insured)
	lines := []string{
		fmt.Sprintf("Care service (%d hours x RM %d): %s", hours, caregiver.HourlyRate, utils.FormatMoney(quote.Subtotal)),
		"Service fee: " + utils.FormatMoney(quote.ServiceFee),
	}
	if insured {
		lines = append(lines, "Care insurance: "+utils.FormatMoney(quote.InsuranceFee))
	}
	lines = append(lines, "Total: "+utils.FormatMoney(quote.Total))
	s.UI.RenderList(ui.RegionPriceBreakdown, lines)
}

func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, form BookingForm) error {
	user := s.Session.CurrentUser()
	caregiver := s.State.SelectedCaregiver()
	if user == nil || caregiver == nil {
		s.UI.Alert("Please login and select a caregiver first.")
		return ErrNotAuthenticated
	}
	if err := s.Validate.Struct(form); err != nil {
		s.UI.Alert("Please fill in all required fields.")
		return ErrValidation
	}
	location := user.Location
	if form.UseCustomLocation {
		if form.CustomLocation == "" {
			s.UI.Alert("Please enter the service address.")
			return ErrValidation
		}
		location = form.CustomLocation
	}

	quote := pricing.ComputeBooking(caregiver.HourlyRate, form.Hours, form.Insurance)
	booking, err := s.Bookings.CreateBooking(ctx, models.BookingCreate{
		UserID:       user.ID,
		CaregiverID:  caregiver.ID,
		BookingDate:  form.Date,
		BookingTime:  form.Time,
		Hours:        form.Hours,
		HourlyRate:   caregiver.HourlyRate,
		Subtotal:     quote.Subtotal,
		InsuranceFee: quote.InsuranceFee,
		ServiceFee:   quote.ServiceFee,
		TotalAmount:  quote.Total,
		HasInsurance: form.Insurance,
	})
	if err != nil {
		s.Log.Warn("booking creation failed", zap.Error(err))
		s.UI.Alert("Booking failed. Please try again.")
		return err
	}
	s.Log.Info("booking created", zap.Int("bookingID", booking.ID), zap.Int("total", booking.Total))

	careType := s.Session.CareType()
	if careType == "" {
		careType = "General Care"
	}
	specialRequests := form.SpecialRequests
	if specialRequests == "" {
		specialRequests = "No special requests"
	}
	if err := s.Jobs.CreateJobRequest(ctx, models.JobCreate{
		UserID:          user.ID,
		UserName:        user.Name,
		UserAvatar:      user.Avatar,
		CareType:        careType,
		HourlyRate:      float64(caregiver.HourlyRate),
		Hours:           form.Hours,
		StartDate:       fmt.Sprintf("%s at %s", form.Date, form.Time),
		Phone:           user.Phone,
		Address:         location,
		Distance:        "Near you",
		SpecialRequests: specialRequests,
	}); err != nil {
		// The booking stands. The caregiver just won't see the request until
		// the backend reconciles; surface the failure anyway.
		s.Log.Error("job request publish failed after booking",
			zap.Int("bookingID", booking.ID), zap.Error(err))
		s.UI.Alert("Booking failed. Please try again.")
		return err
	}

	s.UI.ShowSuccess("Payment Successful!",
		fmt.Sprintf("Your booking is confirmed. %s is held in escrow and released to the caregiver after you confirm the job is complete.",
			utils.FormatMoney(quote.Total)),
		string(nav.PageUserProfile))
	return nil
}

func (s *DefaultBookingService) FinishJob(ctx context.Context, bookingID int) error {
	if !s.UI.Confirm("Confirm that this job has been completed? This releases payment to the caregiver.") {
		return nil
	}
	if err := s.Bookings.ConfirmCompletion(ctx, bookingID); err != nil {
		s.Log.Warn("completion confirmation failed", zap.Int("bookingID", bookingID), zap.Error(err))
		s.UI.Alert("Failed to confirm completion. Please try again.")
		return err
	}
	s.Log.Info("booking completed", zap.Int("bookingID", bookingID))
	s.Profile.LoadBookingHistory(ctx)
	return nil
}

func (s *DefaultBookingService) FastForward(ctx context.Context, bookingID int) {
	if err := s.Bookings.SetStatus(ctx, bookingID, models.BookingPendingCompletion); err != nil {
		s.Log.Warn("fast-forward failed", zap.Int("bookingID", bookingID), zap.Error(err))
		return
	}
	s.Profile.LoadBookingHistory(ctx)
}
