// models/job.go
package models

// JobRequest is a caregiver-facing offer derived from a booking.
type JobRequest struct {
	ID              int     `json:"id"`
	UserID          int     `json:"userId"`
	UserName        string  `json:"userName"`
	UserAvatar      string  `json:"userAvatar"`
	CareType        string  `json:"careType"`
	HourlyRate      float64 `json:"hourlyRate"`
	Hours           int     `json:"hours"`
	StartDate       string  `json:"startDate"` // e.g. "2026-03-14 at 09:00"
	Phone           string  `json:"phone"`
	Address         string  `json:"address"`
	Distance        string  `json:"distance"`
	SpecialRequests string  `json:"specialRequests"`
}

// AcceptedJob is a job request the caregiver has taken on.
type AcceptedJob struct {
	ID        int    `json:"id"`
	UserID    int    `json:"userId"`
	UserName  string `json:"userName"`
	CareType  string `json:"careType"`
	StartDate string `json:"startDate"`
	Distance  string `json:"distance"`
}

// JobSettlement is the server-computed payout for a completed job:
// net = gross - commission, commission at 15% of gross.
type JobSettlement struct {
	Gross      float64 `json:"gross"`
	Commission float64 `json:"commission"`
	Earnings   float64 `json:"earnings"`
}
