package api

import (
	"time"

	"careloop/models"
	"careloop/utils"
)

// The backend is inconsistent about field naming: some resources come back
// PascalCase, others camelCase, and identifiers drift between "UserID" and
// "id". encoding/json already matches names case-insensitively; the payload
// types below carry an extra field only where the names genuinely differ,
// and normalization picks the first populated value. Nothing outside this
// package ever branches on wire shape.

func firstInt(vals ...int) int {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}
	return 0
}

func firstFloat(vals ...float64) float64 {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}
	return 0
}

func firstString(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

type userPayload struct {
	UserID   int    `json:"UserID"`
	AltID    int    `json:"id"`
	Name     string `json:"name"`
	Gender   string `json:"gender"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Avatar   string `json:"avatar"`
}

func (p userPayload) toModel() models.User {
	return models.User{
		ID:       firstInt(p.UserID, p.AltID),
		Name:     p.Name,
		Gender:   p.Gender,
		Email:    p.Email,
		Phone:    p.Phone,
		Location: p.Location,
		Avatar:   firstString(p.Avatar, utils.AvatarInitial(p.Name)),
	}
}

type caregiverPayload struct {
	CaregiverID    int      `json:"CaregiverID"`
	AltID          int      `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Location       string   `json:"location"`
	Avatar         string   `json:"avatar"`
	Experience     string   `json:"experience"`
	HourlyRate     int      `json:"HourlyRate"`
	AltRate        int      `json:"rate"`
	Specialties    []string `json:"specialties"`
	Certifications []string `json:"certifications"`
	Languages      []string `json:"languages"`
	Availability   string   `json:"AvailabilityStatus"`
	AltAvail       string   `json:"availability"`
	AverageRating  float64  `json:"averageRating"`
	AltRating      float64  `json:"rating"`
	TotalReviews   int      `json:"totalReviews"`
	AltReviews     int      `json:"reviews"`
	TotalJobs      int      `json:"totalJobs"`
	TotalEarnings  float64  `json:"totalEarnings"`
}

func (p caregiverPayload) toModel() models.Caregiver {
	return models.Caregiver{
		ID:             firstInt(p.CaregiverID, p.AltID),
		Name:           p.Name,
		Email:          p.Email,
		Phone:          p.Phone,
		Location:       p.Location,
		Avatar:         firstString(p.Avatar, utils.AvatarInitial(p.Name)),
		Experience:     p.Experience,
		HourlyRate:     firstInt(p.HourlyRate, p.AltRate),
		Specialties:    p.Specialties,
		Certifications: p.Certifications,
		Languages:      p.Languages,
		Availability:   firstString(p.Availability, p.AltAvail),
		AverageRating:  firstFloat(p.AverageRating, p.AltRating),
		TotalReviews:   firstInt(p.TotalReviews, p.AltReviews),
		TotalJobs:      p.TotalJobs,
		TotalEarnings:  p.TotalEarnings,
	}
}

type caregiverCardPayload struct {
	AltID        int      `json:"id"`
	CaregiverID  int      `json:"CaregiverID"`
	Name         string   `json:"name"`
	Avatar       string   `json:"avatar"`
	Distance     string   `json:"distance"`
	Rating       float64  `json:"rating"`
	Reviews      int      `json:"reviews"`
	Experience   string   `json:"experience"`
	Specialties  []string `json:"specialties"`
	RateDisplay  string   `json:"rateDisplay"`
	Availability string   `json:"availability"`
}

func (p caregiverCardPayload) toModel() models.CaregiverCard {
	return models.CaregiverCard{
		ID:           firstInt(p.AltID, p.CaregiverID),
		Name:         p.Name,
		Avatar:       firstString(p.Avatar, utils.AvatarInitial(p.Name)),
		Distance:     p.Distance,
		Rating:       p.Rating,
		Reviews:      p.Reviews,
		Experience:   p.Experience,
		Specialties:  p.Specialties,
		RateDisplay:  p.RateDisplay,
		Availability: p.Availability,
	}
}

type bookingPayload struct {
	BookingID     int    `json:"bookingId"`
	AltID         int    `json:"id"`
	UserID        int    `json:"userId"`
	CaregiverID   int    `json:"caregiverId"`
	CaregiverName string `json:"caregiverName"`
	Date          string `json:"date"`
	AltDate       string `json:"bookingDate"`
	Time          string `json:"time"`
	AltTime       string `json:"bookingTime"`
	Hours         int    `json:"hours"`
	Location      string `json:"location"`
	HourlyRate    int    `json:"hourlyRate"`
	Subtotal      int    `json:"subtotal"`
	InsuranceFee  int    `json:"insuranceFee"`
	ServiceFee    int    `json:"serviceFee"`
	Total         int    `json:"total"`
	AltTotal      int    `json:"totalAmount"`
	HasInsurance  bool   `json:"hasInsurance"`
	Status        string `json:"status"`
	Rated         bool   `json:"rated"`
	UserRating    int    `json:"userRating"`
	UserReview    string `json:"userReview"`
}

func (p bookingPayload) toModel() models.Booking {
	return models.Booking{
		ID:            firstInt(p.BookingID, p.AltID),
		UserID:        p.UserID,
		CaregiverID:   p.CaregiverID,
		CaregiverName: p.CaregiverName,
		Date:          firstString(p.Date, p.AltDate),
		Time:          firstString(p.Time, p.AltTime),
		Hours:         p.Hours,
		Location:      p.Location,
		HourlyRate:    p.HourlyRate,
		Subtotal:      p.Subtotal,
		InsuranceFee:  p.InsuranceFee,
		ServiceFee:    p.ServiceFee,
		Total:         firstInt(p.Total, p.AltTotal),
		HasInsurance:  p.HasInsurance,
		Status:        models.BookingStatus(p.Status),
		Rated:         p.Rated,
		UserRating:    p.UserRating,
		UserReview:    p.UserReview,
	}
}

type jobRequestPayload struct {
	JobRequestID    int     `json:"JobRequestID"`
	AltID           int     `json:"id"`
	UserID          int     `json:"UserID"`
	UserName        string  `json:"UserName"`
	UserAvatar      string  `json:"UserAvatar"`
	CareType        string  `json:"CareType"`
	HourlyRate      float64 `json:"HourlyRate"`
	Hours           int     `json:"Hours"`
	StartDate       string  `json:"StartDate"`
	Phone           string  `json:"Phone"`
	Address         string  `json:"Address"`
	Distance        string  `json:"Distance"`
	SpecialRequests string  `json:"SpecialRequests"`
}

func (p jobRequestPayload) toModel() models.JobRequest {
	return models.JobRequest{
		ID:              firstInt(p.JobRequestID, p.AltID),
		UserID:          p.UserID,
		UserName:        p.UserName,
		UserAvatar:      firstString(p.UserAvatar, utils.AvatarInitial(p.UserName)),
		CareType:        p.CareType,
		HourlyRate:      p.HourlyRate,
		Hours:           p.Hours,
		StartDate:       p.StartDate,
		Phone:           p.Phone,
		Address:         p.Address,
		Distance:        firstString(p.Distance, "Near you"),
		SpecialRequests: p.SpecialRequests,
	}
}

type acceptedJobPayload struct {
	AcceptedJobID int    `json:"AcceptedJobID"`
	AltID         int    `json:"id"`
	UserID        int    `json:"UserID"`
	UserName      string `json:"UserName"`
	CareType      string `json:"CareType"`
	StartDate     string `json:"StartDate"`
	Distance      string `json:"Distance"`
}

func (p acceptedJobPayload) toModel() models.AcceptedJob {
	return models.AcceptedJob{
		ID:        firstInt(p.AcceptedJobID, p.AltID),
		UserID:    p.UserID,
		UserName:  p.UserName,
		CareType:  p.CareType,
		StartDate: p.StartDate,
		Distance:  firstString(p.Distance, "Near you"),
	}
}

type reviewPayload struct {
	ReviewID    int    `json:"ReviewID"`
	AltID       int    `json:"id"`
	BookingID   int    `json:"BookingID"`
	UserID      int    `json:"UserID"`
	CaregiverID int    `json:"CaregiverID"`
	UserName    string `json:"UserName"`
	UserAvatar  string `json:"UserAvatar"`
	Rating      int    `json:"Rating"`
	ReviewText  string `json:"ReviewText"`
	BookingDate string `json:"BookingDate"`
	Hours       int    `json:"Hours"`
	TotalAmount int    `json:"TotalAmount"`
	CreatedAt   string `json:"CreatedAt"`
}

func (p reviewPayload) toModel() models.Review {
	return models.Review{
		ID:          firstInt(p.ReviewID, p.AltID),
		BookingID:   p.BookingID,
		UserID:      p.UserID,
		CaregiverID: p.CaregiverID,
		UserName:    p.UserName,
		UserAvatar:  firstString(p.UserAvatar, utils.AvatarInitial(p.UserName)),
		Rating:      p.Rating,
		ReviewText:  p.ReviewText,
		BookingDate: p.BookingDate,
		Hours:       p.Hours,
		TotalAmount: p.TotalAmount,
		CreatedAt:   p.CreatedAt,
	}
}

type messagePayload struct {
	MessageID   int    `json:"MessageID"`
	AltID       int    `json:"id"`
	ThreadID    int    `json:"ThreadID"`
	SenderType  string `json:"SenderType"`
	SenderID    int    `json:"SenderID"`
	MessageText string `json:"MessageText"`
	AltText     string `json:"text"`
	SentAt      string `json:"SentAt"`
}

// sentAtLayouts are tried in order; the backend has emitted both RFC3339 and
// bare datetime strings for the same field.
var sentAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func parseSentAt(raw string) time.Time {
	for _, layout := range sentAtLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	return time.Time{}
}

func (p messagePayload) toModel() models.Message {
	sentAt := parseSentAt(p.SentAt)
	return models.Message{
		ID:         firstInt(p.MessageID, p.AltID),
		ThreadID:   p.ThreadID,
		SenderRole: models.SenderRole(p.SenderType),
		SenderID:   p.SenderID,
		Text:       firstString(p.MessageText, p.AltText),
		SentAt:     sentAt,
	}
}

type trainingPayload struct {
	TrainingProgramID int      `json:"TrainingProgramID"`
	AltID             int      `json:"id"`
	Title             string   `json:"Title"`
	Duration          string   `json:"Duration"`
	Certificate       string   `json:"Certificate"`
	Description       string   `json:"Description"`
	Topics            []string `json:"topics"`
}

func (p trainingPayload) toModel() models.TrainingProgram {
	return models.TrainingProgram{
		ID:          firstInt(p.TrainingProgramID, p.AltID),
		Title:       p.Title,
		Duration:    p.Duration,
		Certificate: p.Certificate,
		Description: p.Description,
		Topics:      p.Topics,
	}
}

type enrollmentPayload struct {
	TrainingProgramID int    `json:"TrainingProgramID"`
	CaregiverID       int    `json:"CaregiverID"`
	Title             string `json:"Title"`
	Status            string `json:"Status"`
}

func (p enrollmentPayload) toModel() models.TrainingEnrollment {
	return models.TrainingEnrollment{
		TrainingProgramID: p.TrainingProgramID,
		CaregiverID:       p.CaregiverID,
		Title:             p.Title,
		Status:            p.Status,
	}
}
