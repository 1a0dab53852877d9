// models/caregiver.go
package models

// Caregiver represents a verified care professional's full profile.
type Caregiver struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Location       string   `json:"location"`
	Avatar         string   `json:"avatar"`
	Experience     string   `json:"experience"` // e.g. "5 years"
	HourlyRate     int      `json:"hourlyRate"`
	Specialties    []string `json:"specialties"`
	Certifications []string `json:"certifications"`
	Languages      []string `json:"languages"`
	Availability   string   `json:"availability"`
	AverageRating  float64  `json:"averageRating"`
	TotalReviews   int      `json:"totalReviews"`
	TotalJobs      int      `json:"totalJobs"`
	TotalEarnings  float64  `json:"totalEarnings"`
}

// CaregiverCard is the condensed listing entry shown while browsing.
type CaregiverCard struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Avatar       string   `json:"avatar"`
	Distance     string   `json:"distance"`
	Rating       float64  `json:"rating"`
	Reviews      int      `json:"reviews"`
	Experience   string   `json:"experience"`
	Specialties  []string `json:"specialties"`
	RateDisplay  string   `json:"rateDisplay"` // e.g. "RM 20/hour"
	Availability string   `json:"availability"`
}
