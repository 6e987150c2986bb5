package domain

import "time"

// User is the domain model for account holders who own workouts.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
