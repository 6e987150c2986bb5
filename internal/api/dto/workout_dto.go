package dto

import (
	"time"

	"github.com/spec-kit/workout-service/internal/domain"
)

// AddWorkoutRequest payload.
type AddWorkoutRequest struct {
	Name     string `json:"name"`
	Duration int    `json:"duration"`
	Status   string `json:"status,omitempty"`
}

// UpdateWorkoutRequest carries a partial update; absent fields keep their value.
type UpdateWorkoutRequest struct {
	Name     *string `json:"name"`
	Duration *int    `json:"duration"`
	Status   *string `json:"status"`
}

// WorkoutResponse echoes a workout record.
type WorkoutResponse struct {
	ID        string               `json:"id"`
	OwnerID   string               `json:"owner_id"`
	Name      string               `json:"name"`
	Duration  int                  `json:"duration"`
	Status    domain.WorkoutStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}
