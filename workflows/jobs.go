package workflows

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"careloop/api"
	"careloop/nav"
	"careloop/poller"
	"careloop/pricing"
	"careloop/session"
	"careloop/ui"
	"careloop/utils"
)

// DashboardService owns the caregiver dashboard: stats, the auto-refreshing
// job lists and the job lifecycle from the caregiver's side.
type DashboardService interface {
	// EnterDashboard renders the stat cards and arms the auto-refresh. It is
	// the dashboard page's refresh hook; entering again re-arms rather than
	// stacking a second schedule.
	EnterDashboard(ctx context.Context)
	// LeaveDashboard disarms the auto-refresh. Runs on every navigation away.
	LeaveDashboard()
	// RefreshJobRequests loads and renders the open job requests.
	RefreshJobRequests(ctx context.Context)
	// RefreshAcceptedJobs loads and renders the accepted jobs.
	RefreshAcceptedJobs(ctx context.Context)
	// AcceptJob claims an open job request for the logged-in caregiver.
	AcceptJob(ctx context.Context, jobID int) error
	// CompleteJob marks an accepted job done, shows the server-computed
	// settlement and refreshes the session profile with the new totals.
	CompleteJob(ctx context.Context, acceptedJobID int) error
	// ShowJobDetails opens the job details modal with an earnings preview.
	ShowJobDetails(ctx context.Context, jobID int) error
}

// DefaultDashboardService is the stock DashboardService implementation.
type DefaultDashboardService struct {
	Jobs       api.JobAPI
	Caregivers api.CaregiverAPI
	Session    *session.Manager
	Nav        *nav.Navigator
	UI         ui.Surface
	Poller     *poller.Poller
	Log        *zap.Logger
}

func (s *DefaultDashboardService) EnterDashboard(ctx context.Context) {
	caregiver := s.Session.CurrentCaregiver()
	if caregiver == nil {
		s.UI.Alert("Please login first.")
		s.Nav.Navigate(nav.PageCaregiverLogin)
		return
	}

	weekly := caregiver.TotalJobs
	if weekly > 3 {
		weekly = 3
	}
	s.UI.RenderList(ui.RegionDashboardStats, []string{
		"Total earnings: " + utils.FormatMoneyF(caregiver.TotalEarnings),
		fmt.Sprintf("Jobs completed: %d", caregiver.TotalJobs),
		fmt.Sprintf("Jobs this week: %d", weekly),
		fmt.Sprintf("Rating: %.1f (%d reviews)", caregiver.AverageRating, caregiver.TotalReviews),
	})

	s.Poller.Arm(func() { s.refreshTick(ctx) })
}

// refreshTick is the armed refresh. A tick can land after the dashboard is
// gone; don't render into a page that isn't showing.
func (s *DefaultDashboardService) refreshTick(ctx context.Context) {
	if !s.Nav.IsActive(nav.PageCaregiverDashboard) {
		return
	}
	s.RefreshJobRequests(ctx)
	s.RefreshAcceptedJobs(ctx)
}

func (s *DefaultDashboardService) LeaveDashboard() {
	s.Poller.Disarm()
}

func (s *DefaultDashboardService) RefreshJobRequests(ctx context.Context) {
	caregiver := s.Session.CurrentCaregiver()
	if caregiver == nil {
		return
	}
	jobs, err := s.Jobs.JobsForCaregiver(ctx, caregiver.ID)
	if err != nil {
		s.Log.Warn("job request refresh failed", zap.Int("caregiverID", caregiver.ID), zap.Error(err))
		s.UI.RenderError(ui.RegionJobRequests, "Failed to load job requests.")
		return
	}
	if len(jobs) == 0 {
		s.UI.RenderList(ui.RegionJobRequests, []string{"No new job requests."})
		return
	}
	lines := make([]string, 0, len(jobs))
	for _, j := range jobs {
		lines = append(lines, fmt.Sprintf("[%d] %s (%s), %s, %d hours at RM %.0f/hour, starts %s, %s",
			j.ID, j.UserName, j.UserAvatar, j.CareType, j.Hours, j.HourlyRate, j.StartDate, j.Distance))
	}
	s.UI.RenderList(ui.RegionJobRequests, lines)
}

func (s *DefaultDashboardService) RefreshAcceptedJobs(ctx context.Context) {
	caregiver := s.Session.CurrentCaregiver()
	if caregiver == nil {
		return
	}
	jobs, err := s.Jobs.AcceptedJobs(ctx, caregiver.ID)
	if err != nil {
		s.Log.Warn("accepted jobs refresh failed", zap.Int("caregiverID", caregiver.ID), zap.Error(err))
		s.UI.RenderError(ui.RegionAcceptedJobs, "Failed to load accepted jobs.")
		return
	}
	if len(jobs) == 0 {
		s.UI.RenderList(ui.RegionAcceptedJobs, []string{"No accepted jobs yet."})
		return
	}
	lines := make([]string, 0, len(jobs))
	for _, j := range jobs {
		lines = append(lines, fmt.Sprintf("[%d] %s, %s, starts %s, %s",
			j.ID, j.UserName, j.CareType, j.StartDate, j.Distance))
	}
	s.UI.RenderList(ui.RegionAcceptedJobs, lines)
}

func (s *DefaultDashboardService) AcceptJob(ctx context.Context, jobID int) error {
	caregiver := s.Session.CurrentCaregiver()
	if caregiver == nil {
		s.UI.Alert("Please login first.")
		return ErrNotAuthenticated
	}
	if err := s.Jobs.AcceptJob(ctx, jobID, caregiver.ID); err != nil {
		s.Log.Warn("job accept failed", zap.Int("jobID", jobID), zap.Error(err))
		s.UI.Alert("Failed to accept job. It may have been taken by another caregiver.")
		return err
	}
	s.Log.Info("job accepted", zap.Int("jobID", jobID), zap.Int("caregiverID", caregiver.ID))

	message := "The job has been added to your accepted jobs."
	if job, err := s.Jobs.GetJob(ctx, jobID); err == nil {
		message = fmt.Sprintf("You accepted the %s job for %s starting %s.",
			job.CareType, job.UserName, job.StartDate)
	}
	s.UI.ShowSuccess("Job Accepted!", message, "")
	s.RefreshJobRequests(ctx)
	s.RefreshAcceptedJobs(ctx)
	return nil
}

func (s *DefaultDashboardService) CompleteJob(ctx context.Context, acceptedJobID int) error {
	caregiver := s.Session.CurrentCaregiver()
	if caregiver == nil {
		s.UI.Alert("Please login first.")
		return ErrNotAuthenticated
	}
	if !s.UI.Confirm("Mark this job as completed?") {
		return nil
	}
	settlement, err := s.Jobs.CompleteJob(ctx, acceptedJobID)
	if err != nil {
		s.Log.Warn("job completion failed", zap.Int("jobID", acceptedJobID), zap.Error(err))
		s.UI.Alert("Failed to complete job. Please try again.")
		return err
	}
	s.Log.Info("job completed",
		zap.Int("jobID", acceptedJobID),
		zap.Float64("earnings", settlement.Earnings),
		zap.Float64("commission", settlement.Commission))

	// The server owns the running totals; re-fetch rather than add locally.
	if fresh, err := s.Caregivers.GetCaregiver(ctx, caregiver.ID); err == nil {
		s.Session.SaveCaregiver(fresh)
	} else {
		s.Log.Warn("profile refresh after completion failed",
			zap.Int("caregiverID", caregiver.ID), zap.Error(err))
	}

	s.UI.ShowSuccess("Job Completed!",
		fmt.Sprintf("You earned %s (after the %s platform commission). The amount is released once the client confirms.",
			utils.FormatMoneyF(settlement.Earnings), utils.FormatMoneyF(settlement.Commission)),
		string(nav.PageCaregiverDashboard))
	s.RefreshAcceptedJobs(ctx)
	return nil
}

func (s *DefaultDashboardService) ShowJobDetails(ctx context.Context, jobID int) error {
	job, err := s.Jobs.GetJob(ctx, jobID)
	if err != nil {
		s.Log.Warn("job details load failed", zap.Int("jobID", jobID), zap.Error(err))
		s.UI.Alert("Failed to load job details.")
		return err
	}
	gross := int(math.Round(job.HourlyRate * float64(job.Hours)))
	settlement := pricing.Settle(gross)
	s.UI.RenderList(ui.RegionJobDetails, []string{
		fmt.Sprintf("%s (%s)", job.UserName, job.UserAvatar),
		"Care type: " + job.CareType,
		fmt.Sprintf("%d hours at RM %.0f/hour starting %s", job.Hours, job.HourlyRate, job.StartDate),
		"Address: " + job.Address,
		"Phone: " + job.Phone,
		"Special requests: " + job.SpecialRequests,
		"Estimated earnings: " + utils.FormatMoney(settlement.Net) +
			" (after " + utils.FormatMoney(settlement.Commission) + " commission)",
	})
	s.UI.OpenModal(ui.ModalJobDetails)
	return nil
}
