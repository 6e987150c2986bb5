package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/workout-service/internal/domain"
	"github.com/spec-kit/workout-service/internal/events"
	"github.com/spec-kit/workout-service/internal/repository"
	apperrors "github.com/spec-kit/workout-service/pkg/util"
)

// WorkoutService coordinates owner-scoped workout workflows.
type WorkoutService struct {
	workouts   repository.WorkoutRepository
	dispatcher events.Dispatcher
}

// WorkoutDependencies bundles requirements for the workout service.
type WorkoutDependencies struct {
	WorkoutRepo repository.WorkoutRepository
	Dispatcher  events.Dispatcher
}

// WorkoutCreateInput describes workout creation payload.
type WorkoutCreateInput struct {
	Name            string
	DurationMinutes int
	Status          string
}

// WorkoutUpdateInput describes a partial update; nil fields keep their prior value.
type WorkoutUpdateInput struct {
	Name            *string
	DurationMinutes *int
	Status          *string
}

// NewWorkoutService constructs the service.
func NewWorkoutService(deps WorkoutDependencies) *WorkoutService {
	return &WorkoutService{
		workouts:   deps.WorkoutRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Create persists a new workout owned by the caller. Name uniqueness is global
// and enforced by the store in the same insert, so concurrent creates with the
// same name cannot both succeed.
func (s *WorkoutService) Create(ctx context.Context, ownerID string, input WorkoutCreateInput) (*domain.Workout, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name is required", nil)
	}
	if input.DurationMinutes <= 0 {
		return nil, apperrors.NewValidationError("duration must be a positive number of minutes", nil)
	}

	status := domain.WorkoutStatusPending
	if input.Status != "" {
		normalized, ok := domain.NormalizeStatus(input.Status)
		if !ok {
			return nil, invalidStatusError(input.Status)
		}
		status = normalized
	}

	workout := &domain.Workout{
		OwnerID:         ownerID,
		Name:            name,
		DurationMinutes: input.DurationMinutes,
		Status:          status,
	}
	if err := s.workouts.Create(ctx, workout); err != nil {
		if err == repository.ErrNameTaken {
			return nil, apperrors.NewConflict("a workout with this name already exists", nil)
		}
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:   events.EventWorkoutCreated,
		UserID: ownerID,
		Payload: events.WorkoutCreatedPayload{
			WorkoutID:       workout.ID,
			Name:            workout.Name,
			DurationMinutes: workout.DurationMinutes,
			Status:          string(workout.Status),
		},
	})
	return workout, nil
}

// ListMine returns the caller's workouts. No workouts is an empty list, not an error.
func (s *WorkoutService) ListMine(ctx context.Context, ownerID string) ([]domain.Workout, error) {
	workouts, err := s.workouts.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if workouts == nil {
		workouts = []domain.Workout{}
	}
	return workouts, nil
}

// Update applies the provided fields to a workout the caller owns.
func (s *WorkoutService) Update(ctx context.Context, callerID, workoutID string, input WorkoutUpdateInput) (*domain.Workout, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, apperrors.NewValidationError("name must not be empty", nil)
	}
	if input.DurationMinutes != nil && *input.DurationMinutes <= 0 {
		return nil, apperrors.NewValidationError("duration must be a positive number of minutes", nil)
	}
	var newStatus *domain.WorkoutStatus
	if input.Status != nil {
		normalized, ok := domain.NormalizeStatus(*input.Status)
		if !ok {
			return nil, invalidStatusError(*input.Status)
		}
		newStatus = &normalized
	}

	workout, err := s.ownedWorkout(ctx, callerID, workoutID, "update")
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		workout.Name = strings.TrimSpace(*input.Name)
	}
	if input.DurationMinutes != nil {
		workout.DurationMinutes = *input.DurationMinutes
	}
	if newStatus != nil {
		workout.Status = *newStatus
	}

	if err := s.workouts.Update(ctx, workout); err != nil {
		if err == repository.ErrNameTaken {
			return nil, apperrors.NewConflict("a workout with this name already exists", nil)
		}
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:   events.EventWorkoutUpdated,
		UserID: callerID,
		Payload: events.WorkoutUpdatedPayload{
			WorkoutID: workout.ID,
			Status:    string(workout.Status),
		},
	})
	return workout, nil
}

// Delete permanently removes a workout the caller owns.
func (s *WorkoutService) Delete(ctx context.Context, callerID, workoutID string) error {
	workout, err := s.ownedWorkout(ctx, callerID, workoutID, "delete")
	if err != nil {
		return err
	}

	if err := s.workouts.Delete(ctx, workout.ID); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("workout", nil)
		}
		return err
	}

	s.publishEvent(ctx, events.Event{
		Type:   events.EventWorkoutDeleted,
		UserID: callerID,
		Payload: events.WorkoutDeletedPayload{
			WorkoutID: workout.ID,
			Name:      workout.Name,
		},
	})
	return nil
}

// Complete forces the terminal status. Completing an already-completed workout
// is a state no-op but still succeeds and re-persists.
func (s *WorkoutService) Complete(ctx context.Context, callerID, workoutID string) (*domain.Workout, error) {
	workout, err := s.ownedWorkout(ctx, callerID, workoutID, "update")
	if err != nil {
		return nil, err
	}

	workout.Status = domain.WorkoutStatusCompleted
	if err := s.workouts.Update(ctx, workout); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:   events.EventWorkoutCompleted,
		UserID: callerID,
		Payload: events.WorkoutUpdatedPayload{
			WorkoutID: workout.ID,
			Status:    string(workout.Status),
		},
	})
	return workout, nil
}

// ownedWorkout loads a workout and enforces the ownership gate shared by all
// mutating operations.
func (s *WorkoutService) ownedWorkout(ctx context.Context, callerID, workoutID, action string) (*domain.Workout, error) {
	workout, err := s.workouts.GetByID(ctx, workoutID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("workout", nil)
		}
		return nil, err
	}
	if workout.OwnerID != callerID {
		return nil, apperrors.NewForbidden(fmt.Sprintf("you can only %s your own workouts", action))
	}
	return workout, nil
}

func (s *WorkoutService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	stampEvent(&event)
	_ = s.dispatcher.Publish(ctx, event)
}

func invalidStatusError(got string) error {
	allowed := domain.AllWorkoutStatuses()
	values := make([]string, 0, len(allowed))
	for _, status := range allowed {
		values = append(values, string(status))
	}
	return apperrors.NewValidationError("invalid status", map[string]any{
		"got":     got,
		"allowed": values,
	})
}

func stampEvent(event *events.Event) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
}
