// models/user.go
package models

// User represents a care-seeking customer.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Gender   string `json:"gender"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Avatar   string `json:"avatar"` // first letter of the name, uppercased
}
