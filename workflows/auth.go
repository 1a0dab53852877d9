package workflows

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"careloop/api"
	"careloop/models"
	"careloop/nav"
	"careloop/poller"
	"careloop/session"
	"careloop/ui"
)

// UserCredentials is the login form for either role.
type UserCredentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// UserSignup is the user registration form.
type UserSignup struct {
	Name     string `validate:"required"`
	Gender   string `validate:"required"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"required"`
	Location string `validate:"required"`
	Password string `validate:"required,min=6"`
}

// CaregiverSignup is the caregiver registration form. Certificates and the
// identity document come from the Uploads tracker, not the form.
type CaregiverSignup struct {
	Name        string   `validate:"required"`
	Email       string   `validate:"required,email"`
	Password    string   `validate:"required,min=6"`
	Phone       string   `validate:"required"`
	Location    string   `validate:"required"`
	Experience  string   `validate:"required"`
	Rate        string   `validate:"required"`
	IDNumber    string   `validate:"required"`
	Specialties []string `validate:"required,min=1"`
}

// AuthService owns login, registration and logout for both roles.
type AuthService interface {
	// LoginUser authenticates a user and routes to care type selection.
	LoginUser(ctx context.Context, creds UserCredentials) error
	// RegisterUser creates a user account and routes to care type selection.
	RegisterUser(ctx context.Context, form UserSignup) error
	// LoginCaregiver authenticates a caregiver and routes to the dashboard.
	LoginCaregiver(ctx context.Context, creds UserCredentials) error
	// RegisterCaregiver creates a caregiver account. It rejects the form
	// before any network call when no specialty is selected or no identity
	// document has been uploaded.
	RegisterCaregiver(ctx context.Context, form CaregiverSignup) error
	// Logout asks for confirmation, then clears the session for both roles
	// and returns to the landing page.
	Logout()
}

// DefaultAuthService is the stock AuthService implementation.
type DefaultAuthService struct {
	Users      api.UserAPI
	Caregivers api.CaregiverAPI
	Session    *session.Manager
	Nav        *nav.Navigator
	UI         ui.Surface
	Poller     *poller.Poller
	Uploads    *Uploads
	Validate   *validator.Validate
	Log        *zap.Logger
}

func (s *DefaultAuthService) LoginUser(ctx context.Context, creds UserCredentials) error {
	if err := s.Validate.Struct(creds); err != nil {
		s.UI.Alert("Please enter your email and password.")
		return ErrValidation
	}
	user, err := s.Users.LoginUser(ctx, creds.Email, creds.Password)
	if err != nil {
		s.Log.Warn("user login failed", zap.String("email", creds.Email), zap.Error(err))
		s.UI.Alert("Invalid email or password. Please try again or sign up for a new account.")
		return err
	}
	s.Session.SaveUser(user)
	s.Log.Info("user logged in", zap.Int("userID", user.ID))
	s.Nav.Navigate(nav.PageCareTypeSelection)
	return nil
}

func (s *DefaultAuthService) RegisterUser(ctx context.Context, form UserSignup) error {
	if err := s.Validate.Struct(form); err != nil {
		s.UI.Alert("Please fill in all required fields.")
		return ErrValidation
	}
	user, err := s.Users.RegisterUser(ctx, models.UserRegistration{
		Name:     form.Name,
		Gender:   form.Gender,
		Email:    form.Email,
		Phone:    form.Phone,
		Location: form.Location,
		Password: form.Password,
	})
	if err != nil {
		s.Log.Warn("user registration failed", zap.Error(err))
		s.UI.Alert("Signup failed. Please try again.")
		return err
	}
	s.Session.SaveUser(user)
	s.Log.Info("user registered", zap.Int("userID", user.ID))
	s.Nav.Navigate(nav.PageCareDetails)
	return nil
}

func (s *DefaultAuthService) LoginCaregiver(ctx context.Context, creds UserCredentials) error {
	if err := s.Validate.Struct(creds); err != nil {
		s.UI.Alert("Please enter your email and password.")
		return ErrValidation
	}
	caregiver, err := s.Caregivers.LoginCaregiver(ctx, creds.Email, creds.Password)
	if err != nil {
		s.Log.Warn("caregiver login failed", zap.String("email", creds.Email), zap.Error(err))
		s.UI.Alert("Invalid email or password. Please try again or sign up as a caregiver.")
		return err
	}
	s.Session.SaveCaregiver(caregiver)
	s.Log.Info("caregiver logged in", zap.Int("caregiverID", caregiver.ID))
	s.UI.ShowSuccess("Welcome Back!",
		"You have successfully logged in to your caregiver account.",
		string(nav.PageCaregiverDashboard))
	return nil
}

func (s *DefaultAuthService) RegisterCaregiver(ctx context.Context, form CaregiverSignup) error {
	if len(form.Specialties) == 0 {
		s.UI.Alert("Please select at least one care specialty.")
		return ErrValidation
	}
	if s.Uploads.IDDocument() == "" {
		s.UI.Alert("Please upload your ID document for verification.")
		return ErrValidation
	}
	if err := s.Validate.Struct(form); err != nil {
		s.UI.Alert("Please fill in all required fields.")
		return ErrValidation
	}

	reg := models.CaregiverRegistration{
		Name:           form.Name,
		Email:          form.Email,
		Password:       form.Password,
		Phone:          form.Phone,
		Location:       form.Location,
		Experience:     form.Experience,
		Rate:           form.Rate,
		Specialties:    form.Specialties,
		Certifications: s.Uploads.Certificates(),
		Languages:      []string{"English", "Malay"},
		IDNumber:       form.IDNumber,
	}
	id, err := s.Caregivers.RegisterCaregiver(ctx, reg)
	if err != nil {
		s.Log.Warn("caregiver registration failed", zap.Error(err))
		s.UI.Alert("Signup failed. Please try again.")
		return err
	}

	// The registration response only carries the new ID; fetch the canonical
	// profile so the session matches what the server stored.
	caregiver, err := s.Caregivers.GetCaregiver(ctx, id)
	if err != nil {
		s.Log.Warn("fetching new caregiver profile failed", zap.Int("caregiverID", id), zap.Error(err))
		s.UI.Alert("Account created, but loading your profile failed. Please log in.")
		s.Nav.Navigate(nav.PageCaregiverLogin)
		return err
	}
	s.Session.SaveCaregiver(caregiver)
	s.Uploads.Reset()
	s.Log.Info("caregiver registered", zap.Int("caregiverID", id))
	s.UI.ShowSuccess("Application Submitted!",
		"Your caregiver application is being verified. You can start receiving job requests from your dashboard.",
		string(nav.PageCaregiverDashboard))
	return nil
}

func (s *DefaultAuthService) Logout() {
	if !s.UI.Confirm("Are you sure you want to logout?") {
		return
	}
	kind := s.Session.Kind()
	s.Session.Clear()
	s.Poller.Disarm()
	s.Log.Info("logged out", zap.String("kind", string(kind)))
	s.Nav.Navigate(nav.PageHome)
}
