package workflows

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"careloop/models"
	"careloop/nav"
	"careloop/poller"
	"careloop/session"
	"careloop/ui"
)

func newDashboardFixture() (*DefaultDashboardService, *surfaceRecorder, *fakeJobAPI, *fakeCaregiverAPI) {
	surface := newSurfaceRecorder()
	jobs := &fakeJobAPI{}
	caregivers := &fakeCaregiverAPI{
		caregiver: &models.Caregiver{
			ID: 7, Name: "Ahmad Razak",
			TotalJobs: 12, TotalEarnings: 940, AverageRating: 4.8, TotalReviews: 11,
		},
	}
	sessions := session.NewManager(session.NewMemStore(), zap.NewNop())
	sessions.SaveCaregiver(&models.Caregiver{
		ID: 7, Name: "Ahmad Razak",
		TotalJobs: 11, TotalEarnings: 855, AverageRating: 4.8, TotalReviews: 11,
	})

	svc := &DefaultDashboardService{
		Jobs:       jobs,
		Caregivers: caregivers,
		Session:    sessions,
		Nav:        nav.New(surface, zap.NewNop()),
		UI:         surface,
		Poller:     poller.New(time.Hour, zap.NewNop()),
		Log:        zap.NewNop(),
	}
	return svc, surface, jobs, caregivers
}

func TestEnterDashboardRendersStatsAndArmsPoller(t *testing.T) {
	svc, surface, _, _ := newDashboardFixture()
	defer svc.Poller.Disarm()
	svc.Nav.Navigate(nav.PageCaregiverDashboard)

	svc.EnterDashboard(context.Background())

	stats := surface.regions[ui.RegionDashboardStats]
	require.NotEmpty(t, stats)
	assert.Contains(t, stats[0], "RM 855.00")
	assert.True(t, svc.Poller.Active())

	// the immediate refresh rendered both job regions
	assert.NotEmpty(t, surface.regions[ui.RegionJobRequests])
	assert.NotEmpty(t, surface.regions[ui.RegionAcceptedJobs])
}

func TestReenteringDashboardKeepsOneSchedule(t *testing.T) {
	svc, _, _, _ := newDashboardFixture()
	defer svc.Poller.Disarm()
	svc.Nav.Navigate(nav.PageCaregiverDashboard)

	svc.EnterDashboard(context.Background())
	svc.EnterDashboard(context.Background())

	assert.True(t, svc.Poller.Active())
	svc.LeaveDashboard()
	assert.False(t, svc.Poller.Active(), "one disarm must suffice after repeated entries")
}

func TestRefreshSkipsRenderAfterLeavingDashboard(t *testing.T) {
	svc, surface, jobs, _ := newDashboardFixture()
	defer svc.Poller.Disarm()
	jobs.requests = []models.JobRequest{{ID: 9, UserName: "Sarah Lim"}}

	svc.Nav.Navigate(nav.PageCaregiverDashboard)
	svc.EnterDashboard(context.Background())
	svc.Nav.Navigate(nav.PageHome)
	delete(surface.regions, ui.RegionJobRequests)

	// a tick landing after navigation must not render
	svc.refreshTick(context.Background())

	assert.NotContains(t, surface.regions, ui.RegionJobRequests)
}

func TestAcceptJobShowsConfirmationWithDetails(t *testing.T) {
	svc, surface, jobs, _ := newDashboardFixture()
	jobs.job = &models.JobRequest{
		ID: 9, UserName: "Sarah Lim", CareType: "Elderly Care", StartDate: "2026-03-14 at 09:00",
	}

	err := svc.AcceptJob(context.Background(), 9)

	require.NoError(t, err)
	assert.Equal(t, []int{9}, jobs.acceptedIDs)
	require.NotEmpty(t, surface.successTitles)
	assert.Equal(t, "Job Accepted!", surface.successTitles[0])
}

func TestCompleteJobRefreshesCanonicalProfile(t *testing.T) {
	svc, surface, jobs, caregivers := newDashboardFixture()
	jobs.settlement = &models.JobSettlement{Gross: 100, Commission: 15, Earnings: 85}

	err := svc.CompleteJob(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, []int{5}, jobs.completedIDs)

	// totals come from the re-fetched profile, not local arithmetic
	assert.Equal(t, 1, caregivers.getCalls)
	require.NotNil(t, svc.Session.CurrentCaregiver())
	assert.Equal(t, 12, svc.Session.CurrentCaregiver().TotalJobs)
	assert.InDelta(t, 940, svc.Session.CurrentCaregiver().TotalEarnings, 0.001)

	require.NotEmpty(t, surface.successTitles)
	assert.Equal(t, "Job Completed!", surface.successTitles[0])
}

func TestCompleteJobDeclinedDoesNothing(t *testing.T) {
	svc, surface, jobs, _ := newDashboardFixture()
	surface.confirmAnswer = false

	require.NoError(t, svc.CompleteJob(context.Background(), 5))
	assert.Empty(t, jobs.completedIDs)
}

func TestShowJobDetailsPreviewsSettlement(t *testing.T) {
	svc, surface, jobs, _ := newDashboardFixture()
	jobs.job = &models.JobRequest{
		ID: 9, UserName: "Sarah Lim", CareType: "Elderly Care",
		HourlyRate: 10, Hours: 10, StartDate: "2026-03-14 at 09:00",
		Address: "Petaling Jaya", SpecialRequests: "No special requests",
	}

	require.NoError(t, svc.ShowJobDetails(context.Background(), 9))

	lines := surface.regions[ui.RegionJobDetails]
	require.NotEmpty(t, lines)
	// gross 100 splits into RM 85 net after RM 15 commission
	assert.Contains(t, lines[len(lines)-1], "RM 85")
	assert.Contains(t, lines[len(lines)-1], "RM 15")
	assert.Equal(t, []string{ui.ModalJobDetails}, surface.openedModals)
}
