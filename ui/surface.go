// Package ui defines the contract the workflows rely on from whatever front
// end hosts them. Markup and widget wiring are the host's concern; workflows
// only ever alert, confirm, render regions and toggle modals through this
// interface.
package ui

// Region names the replaceable display areas workflows render into.
const (
	RegionCaregiverList  = "caregiver-list"
	RegionBookingHistory = "booking-history"
	RegionJobRequests    = "new-job-requests"
	RegionAcceptedJobs   = "accepted-jobs"
	RegionReviews        = "caregiver-reviews"
	RegionChatMessages   = "chat-messages"
	RegionPriceBreakdown = "price-breakdown"
	RegionDashboardStats = "dashboard-stats"
	RegionProfile        = "profile"
	RegionJobDetails     = "job-details"
	RegionTrainingInfo   = "training-info"
)

// Modal identifiers opened and closed by workflows.
const (
	ModalRating     = "rating-modal"
	ModalChat       = "chat-modal"
	ModalJobDetails = "job-details-modal"
	ModalTraining   = "training-modal"
	ModalSuccess    = "success-modal"
)

// Surface is the display collaborator injected into every workflow.
type Surface interface {
	// ShowPage makes the named page the only visible one.
	ShowPage(page string)
	// ScrollToTop resets the viewport to origin after navigation.
	ScrollToTop()

	// Alert shows a blocking message, e.g. a validation failure.
	Alert(message string)
	// Confirm asks a yes/no question and blocks for the answer.
	Confirm(prompt string) bool
	// ShowSuccess opens the success modal; closing it navigates to returnPage
	// when one is given.
	ShowSuccess(title, message, returnPage string)

	// RenderList replaces a region's content with the given lines.
	RenderList(region string, lines []string)
	// RenderError replaces a region's content with an inline failure notice.
	RenderError(region, message string)

	// OpenModal and CloseModal toggle a modal by ID.
	OpenModal(id string)
	CloseModal(id string)
}
