package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered   EventType = "user_registered"
	EventWorkoutCreated   EventType = "workout_created"
	EventWorkoutUpdated   EventType = "workout_updated"
	EventWorkoutCompleted EventType = "workout_completed"
	EventWorkoutDeleted   EventType = "workout_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Email string `json:"email"`
}

// WorkoutCreatedPayload payload.
type WorkoutCreatedPayload struct {
	WorkoutID       string `json:"workout_id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	Status          string `json:"status"`
}

// WorkoutUpdatedPayload payload.
type WorkoutUpdatedPayload struct {
	WorkoutID string `json:"workout_id"`
	Status    string `json:"status"`
}

// WorkoutDeletedPayload payload.
type WorkoutDeletedPayload struct {
	WorkoutID string `json:"workout_id"`
	Name      string `json:"name"`
}
