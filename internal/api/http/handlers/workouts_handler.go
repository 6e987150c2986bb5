package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/workout-service/internal/api/dto"
	"github.com/spec-kit/workout-service/internal/auth"
	"github.com/spec-kit/workout-service/internal/domain"
	"github.com/spec-kit/workout-service/internal/service"
	apperrors "github.com/spec-kit/workout-service/pkg/util"
)

// WorkoutsHandler manages owner-scoped workout endpoints. All routes run
// behind the auth middleware and trust the caller identity it attached.
type WorkoutsHandler struct {
	service *service.WorkoutService
}

// NewWorkoutsHandler constructs handler.
func NewWorkoutsHandler(workoutService *service.WorkoutService) *WorkoutsHandler {
	return &WorkoutsHandler{service: workoutService}
}

// AddWorkout POST /workouts/addWorkout.
func (h *WorkoutsHandler) AddWorkout(c *fiber.Ctx) error {
	callerID, ok := auth.CallerID(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.AddWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	workout, err := h.service.Create(c.Context(), callerID, service.WorkoutCreateInput{
		Name:            req.Name,
		DurationMinutes: req.Duration,
		Status:          req.Status,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": workoutResponse(workout)})
}

// GetMyWorkouts GET /workouts/getMyWorkouts.
func (h *WorkoutsHandler) GetMyWorkouts(c *fiber.Ctx) error {
	callerID, ok := auth.CallerID(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	workouts, err := h.service.ListMine(c.Context(), callerID)
	if err != nil {
		return err
	}

	items := make([]dto.WorkoutResponse, 0, len(workouts))
	for i := range workouts {
		items = append(items, workoutResponse(&workouts[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// UpdateWorkout PUT|PATCH /workouts/updateWorkout/:id.
func (h *WorkoutsHandler) UpdateWorkout(c *fiber.Ctx) error {
	callerID, ok := auth.CallerID(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.UpdateWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	workout, err := h.service.Update(c.Context(), callerID, c.Params("id"), service.WorkoutUpdateInput{
		Name:            req.Name,
		DurationMinutes: req.Duration,
		Status:          req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": workoutResponse(workout)})
}

// DeleteWorkout DELETE /workouts/deleteWorkout/:id.
func (h *WorkoutsHandler) DeleteWorkout(c *fiber.Ctx) error {
	callerID, ok := auth.CallerID(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	if err := h.service.Delete(c.Context(), callerID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Workout deleted successfully"})
}

// CompleteWorkoutStatus PUT|PATCH /workouts/completeWorkoutStatus/:id.
func (h *WorkoutsHandler) CompleteWorkoutStatus(c *fiber.Ctx) error {
	callerID, ok := auth.CallerID(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	workout, err := h.service.Complete(c.Context(), callerID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": workoutResponse(workout)})
}

func workoutResponse(workout *domain.Workout) dto.WorkoutResponse {
	return dto.WorkoutResponse{
		ID:        workout.ID,
		OwnerID:   workout.OwnerID,
		Name:      workout.Name,
		Duration:  workout.DurationMinutes,
		Status:    workout.Status,
		CreatedAt: workout.CreatedAt,
		UpdatedAt: workout.UpdatedAt,
	}
}
