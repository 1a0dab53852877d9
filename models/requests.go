// models/requests.go
package models

// Request bodies sent to the backend. Field names follow the API's expected
// camelCase payloads.

// UserRegistration is the signup payload for a care-seeking user.
type UserRegistration struct {
	Name     string `json:"name"`
	Gender   string `json:"gender"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Password string `json:"password"`
}

// UserProfileUpdate carries editable user profile fields.
type UserProfileUpdate struct {
	Name     string `json:"name"`
	Gender   string `json:"gender"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// CaregiverRegistration is the signup payload for a caregiver.
type CaregiverRegistration struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Password       string   `json:"password"`
	Phone          string   `json:"phone"`
	Location       string   `json:"location"`
	Experience     string   `json:"experience"`
	Rate           string   `json:"rate"`
	Specialties    []string `json:"specialties"`
	Certifications []string `json:"certifications"`
	Languages      []string `json:"languages"`
	IDNumber       string   `json:"idNumber"`
}

// BookingCreate is the payload for creating a booking. The fee breakdown is
// computed client-side and submitted as-is.
type BookingCreate struct {
	UserID       int    `json:"userId"`
	CaregiverID  int    `json:"caregiverId"`
	BookingDate  string `json:"bookingDate"`
	BookingTime  string `json:"bookingTime"`
	Hours        int    `json:"hours"`
	HourlyRate   int    `json:"hourlyRate"`
	Subtotal     int    `json:"subtotal"`
	InsuranceFee int    `json:"insuranceFee"`
	ServiceFee   int    `json:"serviceFee"`
	TotalAmount  int    `json:"totalAmount"`
	HasInsurance bool   `json:"hasInsurance"`
}

// JobCreate derives a caregiver-facing job request from a booking.
type JobCreate struct {
	UserID          int     `json:"userId"`
	UserName        string  `json:"userName"`
	UserAvatar      string  `json:"userAvatar"`
	CareType        string  `json:"careType"`
	HourlyRate      float64 `json:"hourlyRate"`
	Hours           int     `json:"hours"`
	StartDate       string  `json:"startDate"`
	Phone           string  `json:"phone"`
	Address         string  `json:"address"`
	Distance        string  `json:"distance"`
	SpecialRequests string  `json:"specialRequests"`
}

// ReviewCreate submits one review for a completed booking.
type ReviewCreate struct {
	BookingID   int    `json:"bookingId"`
	UserID      int    `json:"userId"`
	CaregiverID int    `json:"caregiverId"`
	Rating      int    `json:"rating"`
	ReviewText  string `json:"reviewText"`
}

// MessageSend appends one message to a thread.
type MessageSend struct {
	ThreadID     int        `json:"threadId"`
	SenderType   SenderRole `json:"senderType"`
	SenderID     int        `json:"senderId"`
	ReceiverType SenderRole `json:"receiverType"`
	ReceiverID   int        `json:"receiverId"`
	MessageText  string     `json:"messageText"`
}
