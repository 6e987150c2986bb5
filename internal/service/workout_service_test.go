package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/workout-service/internal/domain"
	"github.com/spec-kit/workout-service/internal/repository"
	apperrors "github.com/spec-kit/workout-service/pkg/util"
)

func newWorkoutService() *WorkoutService {
	return NewWorkoutService(WorkoutDependencies{
		WorkoutRepo: repository.NewMemoryWorkoutRepository(),
	})
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCreate_DefaultsToPending(t *testing.T) {
	t.Parallel()
	svc := newWorkoutService()

	workout, err := svc.Create(context.Background(), "owner-1", WorkoutCreateInput{
		Name:            "Run",
		DurationMinutes: 30,
	})
	require.NoError(t, err)
	require.Equal(t, domain.WorkoutStatusPending, workout.Status)
	require.Equal(t, "owner-1", workout.OwnerID)
	require.NotEmpty(t, workout.ID)
	require.False(t, workout.CreatedAt.IsZero())
}

func TestCreate_AcceptsLegacyInitialStatus(t *testing.T) {
	t.Parallel()
	svc := newWorkoutService()

	workout, err := svc.Create(context.Background(), "owner-1", WorkoutCreateInput{
		Name:            "Row",
		DurationMinutes: 20,
		Status:          "not-started",
	})
	require.NoError(t, err)
	require.Equal(t, domain.WorkoutStatusPending, workout.Status)
}

func TestCreate_Validation(t *testing.T) {
	t.Parallel()
	svc := newWorkoutService()

	_, err := svc.Create(context.Background(), "owner-1", WorkoutCreateInput{Name: "  ", DurationMinutes: 30})
	require.Equal(t, "VALIDATION_FAILED", errCode(t, err))

	_, err = svc.Create(context.Background(), "owner-1", WorkoutCreateInput{Name: "Run", DurationMinutes: 0})
	require.Equal(t, "VALIDATION_FAILED", errCode(t, err))

	_, err = svc.Create(context.Background(), "owner-1", WorkoutCreateInput{Name: "Run", DurationMinutes: 30, Status: "done"})
	require.Equal(t, "VALIDATION_FAILED", errCode(t, err))
}

func TestCreate_DuplicateNameIsGloballyRejected(t *testing.T) {
	t.Parallel()
	svc := newWorkoutService()

	_, err := svc.Create(context.Background(), "owner-1", WorkoutCreateInput{Name: "Run", DurationMinutes: 30})
	require.NoError(t, err)

	// name uniqueness is process-wide, not per owner
	_, err = svc.Create(context.Background(), "owner-2", WorkoutCreateInput{Name: "Run", DurationMinutes: 45})
	require.Equal(t, "CONFLICT", errCode(t, err))
}

func TestListMine_EmptyIsNotAnError(t *testing.T) {
	t.Parallel()
	svc := newWorkoutService()

	workouts, err := svc.ListMine(context.Background(), "owner-1")
	require.NoError(t, err)
	require.NotNil(t, workouts)
	require.Empty(t, workouts)
}

func TestListMine_ScopedToOwner(t *testing.T) {
	t.Parallel()
	svc := newWorkoutService()

	_, err := svc.Create(context.Background(), "owner-1", WorkoutCreateInput{Name: "Run", DurationMinutes: 30})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "owner-2", WorkoutCreateInput{Name: "Swim", DurationMinutes: 45})
	require.NoError(t, err)

	mine, err := svc.ListMine(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "Run", mine[0].Name)
}

func TestUpdate_PartialKeepsUnsetFields(t *testing.T) {
	t.Parallel()
	svc := newWorkoutService()

	created, err := svc.Create(context.Background(), "owner-1", WorkoutCreateInput{Name: "Run", DurationMinutes: 30})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), "owner-1", created.ID, WorkoutUpdateInput{
		Status: strPtr("in-progress"),
	})
	require.NoError(t, err)
	require.Equal(t, domain.WorkoutStatusInProgress, updated.Status)
	require.Equal(t, "Run", updated.Name)
	require.Equal(t, 30, updated.DurationMinutes)
}

func TestUpdate_AllFields(t *testing.T) {
	t.Parallel()
	svc := newWorkoutService()

	created, err := svc.Create(context.Background(), "owner-1", WorkoutCreateInput{Name: "Run", DurationMinutes: 30})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), "owner-1", created.ID, WorkoutUpdateInput{
		Name:            strPtr("Long Run"),
		DurationMinutes: intPtr(60),
		Status:          strPtr("completed"),
	})
	require.NoError(t, err)
	require.Equal(t, "Long Run", updated.Name)
	require.Equal(t, 60, updated.DurationMinutes)
	require.Equal(t, domain.WorkoutStatusCompleted, updated.Status)
}

func TestUpdate_InvalidStatusNamesAllowedValues(t *testing.T) {
	t.Parallel()
	svc := newWorkoutService()

	created, err := svc.Create(context.Background(), "owner-1", WorkoutCreateInput{Name: "Run", DurationMinutes: 30})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), "owner-1", created.ID, WorkoutUpdateInput{Status: strPtr("finished")})
	domainErr := apperrors.ToDomainError(err)
	require.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	require.Equal(t, []string{"pending", "in-progress", "completed"}, domainErr.Details["allowed"])
}

func TestUpdate_NotFoundAndForbidden(t *testing.T) {
	t.Parallel()
	svc := newWorkoutService()

	created, err := svc.Create(context.Background(), "owner-1", WorkoutCreateInput{Name: "Run", DurationMinutes: 30})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), "owner-1", "missing-id", WorkoutUpdateInput{Status: strPtr("completed")})
	require.Equal(t, "NOT_FOUND", errCode(t, err))

	_, err = svc.Update(context.Background(), "owner-2", created.ID, WorkoutUpdateInput{Status: strPtr("completed")})
	require.Equal(t, "FORBIDDEN", errCode(t, err))

	// owner field never changes, even after a successful update
	updated, err := svc.Update(context.Background(), "owner-1", created.ID, WorkoutUpdateInput{Status: strPtr("completed")})
	require.NoError(t, err)
	require.Equal(t, "owner-1", updated.OwnerID)
}

func TestDelete_OwnershipGate(t *testing.T) {
	t.Parallel()
	svc := newWorkoutService()

	created, err := svc.Create(context.Background(), "owner-1", WorkoutCreateInput{Name: "Run", DurationMinutes: 30})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), "owner-2", created.ID)
	require.Equal(t, "FORBIDDEN", errCode(t, err))

	err = svc.Delete(context.Background(), "owner-1", "missing-id")
	require.Equal(t, "NOT_FOUND", errCode(t, err))

	require.NoError(t, svc.Delete(context.Background(), "owner-1", created.ID))

	workouts, err := svc.ListMine(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Empty(t, workouts)
}

func TestComplete_ForcesTerminalStateAndIsIdempotent(t *testing.T) {
	t.Parallel()
	svc := newWorkoutService()

	created, err := svc.Create(context.Background(), "owner-1", WorkoutCreateInput{Name: "Run", DurationMinutes: 30})
	require.NoError(t, err)

	first, err := svc.Complete(context.Background(), "owner-1", created.ID)
	require.NoError(t, err)
	require.Equal(t, domain.WorkoutStatusCompleted, first.Status)

	second, err := svc.Complete(context.Background(), "owner-1", created.ID)
	require.NoError(t, err)
	require.Equal(t, domain.WorkoutStatusCompleted, second.Status)
}

func TestComplete_OwnershipGate(t *testing.T) {
	t.Parallel()
	svc := newWorkoutService()

	created, err := svc.Create(context.Background(), "owner-1", WorkoutCreateInput{Name: "Run", DurationMinutes: 30})
	require.NoError(t, err)

	_, err = svc.Complete(context.Background(), "owner-2", created.ID)
	require.Equal(t, "FORBIDDEN", errCode(t, err))

	_, err = svc.Complete(context.Background(), "owner-1", "missing-id")
	require.Equal(t, "NOT_FOUND", errCode(t, err))
}
