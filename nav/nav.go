// Package nav implements the single-active-page model: one logical page
// visible at a time, with optional per-page refresh hooks run on entry.
package nav

import (
	"sync"

	"careloop/ui"

	"go.uber.org/zap"
)

// Page identifies a logical page.
type Page string

const (
	PageHome                 Page = "home"
	PageUserLogin            Page = "user-login"
	PageUserSignup           Page = "user-signup"
	PageCareTypeSelection    Page = "care-type-selection"
	PageCareDetails          Page = "care-details"
	PageBrowseCaregivers     Page = "browse-caregivers"
	PageCaregiverProfile     Page = "caregiver-profile"
	PageBookingPayment       Page = "booking-payment"
	PageUserProfile          Page = "user-profile"
	PageCaregiverLogin       Page = "caregiver-login"
	PageCaregiverSignup      Page = "caregiver-signup"
	PageCaregiverDashboard   Page = "caregiver-dashboard"
	PageCaregiverProfileView Page = "caregiver-profile-view"
)

// RefreshFunc is a page's side-effecting refresh hook.
type RefreshFunc func()

// Navigator tracks the active page and dispatches refresh hooks from a
// data-driven table: adding a page's hook is a single Register call.
type Navigator struct {
	mu      sync.RWMutex
	active  Page
	hooks   map[Page]RefreshFunc
	leave   map[Page]RefreshFunc
	surface ui.Surface
	log     *zap.Logger
}

func New(surface ui.Surface, logger *zap.Logger) *Navigator {
	return &Navigator{
		active:  PageHome,
		hooks:   make(map[Page]RefreshFunc),
		leave:   make(map[Page]RefreshFunc),
		surface: surface,
		log:     logger,
	}
}

// Register installs the refresh hook for a page, replacing any previous one.
// Pages without hooks simply display.
func (n *Navigator) Register(page Page, fn RefreshFunc) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.hooks[page] = fn
}

// RegisterLeave installs a hook run when the page stops being active, e.g.
// disarming the dashboard poller.
func (n *Navigator) RegisterLeave(page Page, fn RefreshFunc) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.leave[page] = fn
}

// Navigate makes page the active one, shows it, runs its refresh hook when it
// has one, and scrolls the viewport to origin. The previous page's leave hook
// runs first.
func (n *Navigator) Navigate(page Page) {
	n.mu.Lock()
	previous := n.active
	n.active = page
	leaving := n.leave[previous]
	hook := n.hooks[page]
	n.mu.Unlock()

	n.log.Debug("navigate", zap.String("from", string(previous)), zap.String("to", string(page)))
	if previous != page && leaving != nil {
		leaving()
	}
	n.surface.ShowPage(string(page))
	if hook != nil {
		hook()
	}
	n.surface.ScrollToTop()
}

// Active returns the currently visible page.
func (n *Navigator) Active() Page {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.active
}

// IsActive reports whether page is still the visible one. Async sagas check
// this before applying late responses to a page the user has left.
func (n *Navigator) IsActive(page Page) bool {
	return n.Active() == page
}
