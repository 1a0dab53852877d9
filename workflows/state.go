// Package workflows contains the application's use cases: each service
// wires the API client, the session, navigation and the display surface
// together for one functional area. Services hold no business data of their
// own beyond the shared State.
package workflows

import (
	"sync"

	"careloop/models"
)

// ChatContext identifies the conversation currently open in the chat modal.
type ChatContext struct {
	ThreadID int
	Role     models.SenderRole
	PeerID   int
	PeerName string
}

// State is the transient cross-service memory for one client run: the
// caregiver whose profile is being viewed, the loaded booking history and the
// open chat. It is not persisted; the session package owns what survives a
// restart.
type State struct {
	mu        sync.RWMutex
	caregiver *models.Caregiver
	bookings  []models.Booking
	chat      *ChatContext
}

func NewState() *State {
	return &State{}
}

// SetSelectedCaregiver records the caregiver being viewed or booked.
func (s *State) SetSelectedCaregiver(c *models.Caregiver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.caregiver = c
}

// SelectedCaregiver returns the caregiver being viewed, or nil.
func (s *State) SelectedCaregiver() *models.Caregiver {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.caregiver
}

// SetBookingHistory replaces the cached booking history.
func (s *State) SetBookingHistory(bookings []models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = bookings
}

// BookingHistory returns the cached booking history from the last load.
func (s *State) BookingHistory() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bookings
}

// BookingByID finds one cached booking, reporting whether it exists.
func (s *State) BookingByID(id int) (models.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return models.Booking{}, false
}

// SetActiveChat records the conversation open in the chat modal.
func (s *State) SetActiveChat(c ChatContext) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat = &c
}

// ActiveChat returns the open conversation, reporting whether one exists.
// Results of in-flight work are dropped when the thread no longer matches.
func (s *State) ActiveChat() (ChatContext, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.chat == nil {
		return ChatContext{}, false
	}
	return *s.chat, true
}

// ClearChat closes the conversation context.
func (s *State) ClearChat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat = nil
}
