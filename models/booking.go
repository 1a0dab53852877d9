// models/booking.go
package models

// BookingStatus tracks a booking through its lifecycle. Transitions are
// one-way: in_progress -> pending_completion -> completed.
type BookingStatus string

const (
	BookingInProgress        BookingStatus = "in_progress"
	BookingPendingCompletion BookingStatus = "pending_completion"
	BookingCompleted         BookingStatus = "completed"
)

// Booking represents a scheduled engagement between a user and a caregiver.
// total = subtotal + insuranceFee + serviceFee always holds.
type Booking struct {
	ID            int           `json:"id"`
	UserID        int           `json:"userId"`
	CaregiverID   int           `json:"caregiverId"`
	CaregiverName string        `json:"caregiverName"`
	Date          string        `json:"date"` // "YYYY-MM-DD"
	Time          string        `json:"time"`
	Hours         int           `json:"hours"`
	Location      string        `json:"location"`
	HourlyRate    int           `json:"hourlyRate"`
	Subtotal      int           `json:"subtotal"`
	InsuranceFee  int           `json:"insuranceFee"` // flat 6 when insured, otherwise 0
	ServiceFee    int           `json:"serviceFee"`   // 5% of subtotal, rounded
	Total         int           `json:"total"`
	HasInsurance  bool          `json:"hasInsurance"`
	Status        BookingStatus `json:"status"`
	Rated         bool          `json:"rated"`
	UserRating    int           `json:"userRating,omitempty"`
	UserReview    string        `json:"userReview,omitempty"`
}
