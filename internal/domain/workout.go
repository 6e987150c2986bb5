package domain

import "time"

// WorkoutStatus enumerates lifecycle states for workouts.
type WorkoutStatus string

const (
	WorkoutStatusPending    WorkoutStatus = "pending"
	WorkoutStatusInProgress WorkoutStatus = "in-progress"
	WorkoutStatusCompleted  WorkoutStatus = "completed"
)

// statusAliasNotStarted is accepted on input for clients still sending the
// pre-rename initial status. It is normalized at the boundary and never persisted.
const statusAliasNotStarted = "not-started"

// AllWorkoutStatuses lists the canonical status values in lifecycle order.
func AllWorkoutStatuses() []WorkoutStatus {
	return []WorkoutStatus{WorkoutStatusPending, WorkoutStatusInProgress, WorkoutStatusCompleted}
}

// NormalizeStatus maps a raw status string to its canonical value. The second
// return is false when the value is not part of the enumeration.
func NormalizeStatus(raw string) (WorkoutStatus, bool) {
	if raw == statusAliasNotStarted {
		return WorkoutStatusPending, true
	}
	status := WorkoutStatus(raw)
	switch status {
	case WorkoutStatusPending, WorkoutStatusInProgress, WorkoutStatusCompleted:
		return status, true
	}
	return "", false
}

// Workout is the aggregate for tracked workout records. OwnerID never changes
// after creation.
type Workout struct {
	ID              string
	OwnerID         string
	Name            string
	DurationMinutes int
	Status          WorkoutStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
