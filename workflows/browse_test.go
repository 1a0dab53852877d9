package workflows

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"careloop/models"
	"careloop/nav"
	"careloop/session"
	"careloop/ui"
)

func newBrowseFixture() (*DefaultBrowseService, *surfaceRecorder, *fakeCaregiverAPI) {
	surface := newSurfaceRecorder()
	caregivers := &fakeCaregiverAPI{
		caregiver: &models.Caregiver{ID: 7, Name: "Ahmad Razak", HourlyRate: 25,
			Specialties: []string{"Elderly Care"}, Languages: []string{"English", "Malay"}},
		cards: []models.CaregiverCard{
			{ID: 7, Name: "Ahmad Razak", Avatar: "A", Rating: 4.8, Reviews: 12,
				Experience: "5 years", Specialties: []string{"Elderly Care"}, RateDisplay: "RM 25/hour"},
			{ID: 8, Name: "Mei Ling", Avatar: "M", Rating: 4.9, Reviews: 30,
				Experience: "8 years", Specialties: []string{"Child Care"}, RateDisplay: "RM 30/hour"},
		},
	}
	svc := &DefaultBrowseService{
		Caregivers: caregivers,
		Session:    session.NewManager(session.NewMemStore(), zap.NewNop()),
		State:      NewState(),
		Nav:        nav.New(surface, zap.NewNop()),
		UI:         surface,
		Log:        zap.NewNop(),
	}
	return svc, surface, caregivers
}

func TestSelectCareTypeStoresFilterAndNavigates(t *testing.T) {
	svc, surface, caregivers := newBrowseFixture()
	svc.Nav.Register(nav.PageBrowseCaregivers, func() { svc.RefreshListing(context.Background()) })

	svc.SelectCareType("Elderly Care")

	assert.Equal(t, "Elderly Care", svc.Session.CareType())
	assert.Equal(t, "Elderly Care", caregivers.lastCareType, "the filter rides on the listing request")
	assert.Equal(t, []string{string(nav.PageBrowseCaregivers)}, surface.pages)
}

func TestRefreshListingRendersCards(t *testing.T) {
	svc, surface, _ := newBrowseFixture()
	svc.Nav.Navigate(nav.PageBrowseCaregivers)

	svc.RefreshListing(context.Background())

	lines := surface.regions[ui.RegionCaregiverList]
	require.Len(t, lines, 3)
	assert.Equal(t, "2 caregivers available", lines[0])
	assert.Contains(t, lines[1], "Ahmad Razak")
	assert.Contains(t, lines[2], "RM 30/hour")
}

func TestRefreshListingErrorRendersInline(t *testing.T) {
	svc, surface, caregivers := newBrowseFixture()
	caregivers.listErr = errors.New("boom")
	svc.Nav.Navigate(nav.PageBrowseCaregivers)

	svc.RefreshListing(context.Background())

	assert.Empty(t, surface.regions[ui.RegionCaregiverList])
	assert.Contains(t, surface.regionErrors[ui.RegionCaregiverList], "Failed to load caregivers")
}

func TestRefreshListingDropsLateErrorAfterLeaving(t *testing.T) {
	svc, surface, caregivers := newBrowseFixture()
	caregivers.listErr = errors.New("boom")
	svc.Nav.Navigate(nav.PageHome)

	svc.RefreshListing(context.Background())

	assert.Empty(t, surface.regions[ui.RegionCaregiverList])
	assert.Empty(t, surface.regionErrors)
}

func TestSelectCaregiverLoadsProfileAndNavigates(t *testing.T) {
	svc, surface, _ := newBrowseFixture()
	svc.Nav.Register(nav.PageCaregiverProfile, svc.RenderSelectedProfile)

	err := svc.SelectCaregiver(context.Background(), 7)

	require.NoError(t, err)
	require.NotNil(t, svc.State.SelectedCaregiver())
	assert.Equal(t, 7, svc.State.SelectedCaregiver().ID)
	assert.Equal(t, []string{string(nav.PageCaregiverProfile)}, surface.pages)
	assert.NotEmpty(t, surface.regions[ui.RegionProfile])
}
