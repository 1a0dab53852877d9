// models/review.go
package models

// Review is immutable once submitted: one per booking, rating 1..5.
type Review struct {
	ID          int    `json:"id"`
	BookingID   int    `json:"bookingId"`
	UserID      int    `json:"userId"`
	CaregiverID int    `json:"caregiverId"`
	UserName    string `json:"userName"`
	UserAvatar  string `json:"userAvatar"`
	Rating      int    `json:"rating"`
	ReviewText  string `json:"reviewText,omitempty"`
	BookingDate string `json:"bookingDate"`
	Hours       int    `json:"hours"`
	TotalAmount int    `json:"totalAmount"`
	CreatedAt   string `json:"createdAt"`
}

// ReviewSummary aggregates a caregiver's reviews for display.
type ReviewSummary struct {
	Average      float64     `json:"average"`
	Total        int         `json:"total"`
	Distribution map[int]int `json:"distribution"` // stars -> count
}

// Summarize computes the average rating and per-star distribution.
func Summarize(reviews []Review) ReviewSummary {
	s := ReviewSummary{Distribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}}
	if len(reviews) == 0 {
		return s
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
		s.Distribution[r.Rating]++
	}
	s.Total = len(reviews)
	s.Average = float64(sum) / float64(len(reviews))
	return s
}
