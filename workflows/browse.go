package workflows

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"careloop/api"
	"careloop/nav"
	"careloop/session"
	"careloop/ui"
)

// BrowseService owns care type selection and the caregiver listing.
type BrowseService interface {
	// SelectCareType records the filter and moves to the listing page.
	SelectCareType(careType string)
	// RefreshListing loads the caregiver cards for the selected care type
	// and renders them. Failures render inline, not as alerts.
	RefreshListing(ctx context.Context)
	// SelectCaregiver loads a caregiver's full profile and opens the
	// booking-oriented profile page.
	SelectCaregiver(ctx context.Context, caregiverID int) error
}

// DefaultBrowseService is the stock BrowseService implementation.
type DefaultBrowseService struct {
	Caregivers api.CaregiverAPI
	Session    *session.Manager
	State      *State
	Nav        *nav.Navigator
	UI         ui.Surface
	Log        *zap.Logger
}

func (s *DefaultBrowseService) SelectCareType(careType string) {
	s.Session.SetCareType(careType)
	s.Log.Debug("care type selected", zap.String("careType", careType))
	s.Nav.Navigate(nav.PageBrowseCaregivers)
}

func (s *DefaultBrowseService) RefreshListing(ctx context.Context) {
	careType := s.Session.CareType()
	cards, err := s.Caregivers.ListCaregivers(ctx, careType)
	if err != nil {
		s.Log.Warn("caregiver listing failed", zap.String("careType", careType), zap.Error(err))
	}
	if !s.Nav.IsActive(nav.PageBrowseCaregivers) {
		return
	}
	if err != nil {
		s.UI.RenderError(ui.RegionCaregiverList, "Failed to load caregivers. Please try again.")
		return
	}

	lines := make([]string, 0, len(cards)+1)
	lines = append(lines, fmt.Sprintf("%d caregivers available", len(cards)))
	for _, c := range cards {
		lines = append(lines, fmt.Sprintf("[%d] %s (%s)  %.1f (%d reviews)  %s  %s  %s",
			c.ID, c.Name, c.Avatar, c.Rating, c.Reviews, c.Experience,
			strings.Join(c.Specialties, ", "), c.RateDisplay))
	}
	s.UI.RenderList(ui.RegionCaregiverList, lines)
}

func (s *DefaultBrowseService) SelectCaregiver(ctx context.Context, caregiverID int) error {
	caregiver, err := s.Caregivers.GetCaregiver(ctx, caregiverID)
	if err != nil {
		s.Log.Warn("caregiver fetch failed", zap.Int("caregiverID", caregiverID), zap.Error(err))
		s.UI.Alert("Failed to load caregiver profile. Please try again.")
		return err
	}
	s.State.SetSelectedCaregiver(caregiver)
	s.Nav.Navigate(nav.PageCaregiverProfile)
	return nil
}

// RenderSelectedProfile is the refresh hook for the booking-oriented profile
// page; it renders the caregiver chosen in the listing.
func (s *DefaultBrowseService) RenderSelectedProfile() {
	caregiver := s.State.SelectedCaregiver()
	if caregiver == nil {
		s.UI.RenderError(ui.RegionProfile, "No caregiver selected.")
		return
	}
	lines := []string{
		fmt.Sprintf("%s (%s)", caregiver.Name, caregiver.Avatar),
		fmt.Sprintf("%.1f rating from %d reviews", caregiver.AverageRating, caregiver.TotalReviews),
		fmt.Sprintf("%s experience, RM %d/hour", caregiver.Experience, caregiver.HourlyRate),
		"Specialties: " + strings.Join(caregiver.Specialties, ", "),
		"Languages: " + strings.Join(caregiver.Languages, ", "),
		"Location: " + caregiver.Location,
	}
	if len(caregiver.Certifications) > 0 {
		lines = append(lines, "Certifications: "+strings.Join(caregiver.Certifications, ", "))
	}
	s.UI.RenderList(ui.RegionProfile, lines)
}
