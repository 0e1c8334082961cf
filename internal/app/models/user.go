package models

import "time"

// User defines the user model based on the 'users' table
type User struct {
	ID          int64       `json:"id" db:"id" example:"1"`                                      // Unique identifier for the user
	Username    string      `json:"username" db:"username" example:"johndoe"`                    // Display name chosen at signup
	Email       string      `json:"email" db:"email" example:"john@teamhub.app"`                 // User's email address
	Password    string      `json:"-" db:"password"`                                             // User's hashed password (excluded from JSON)
	Contact     string      `json:"contact" db:"contact" example:"5551234567"`                   // Contact number
	Designation Designation `json:"designation" db:"designation" example:"Backend Developer"`    // Job-role category, fixed after signup
	ImageURL    *string     `json:"imageUrl,omitempty" db:"image_url" example:"uploads/me.jpg"`  // URL of the profile image (nullable)
	CreatedAt   time.Time   `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`    // Timestamp when the user was created
}
