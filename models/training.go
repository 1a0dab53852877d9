// models/training.go
package models

// TrainingProgram is a course a caregiver can enroll in.
type TrainingProgram struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Duration    string   `json:"duration"`
	Certificate string   `json:"certificate"`
	Description string   `json:"description"`
	Topics      []string `json:"topics"`
}

// TrainingEnrollment links a caregiver to a program. Enrollment is
// idempotent: a second enrollment for the same program is rejected.
type TrainingEnrollment struct {
	TrainingProgramID int    `json:"trainingProgramId"`
	CaregiverID       int    `json:"caregiverId"`
	Title             string `json:"title"`
	Status            string `json:"status"` // "enrolled" or "completed"
}
