package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/workout-service/internal/domain"
)

// ErrNameTaken signals a uniqueness violation on the workout name.
var ErrNameTaken = errors.New("workout name already taken")

// WorkoutRepository encapsulates workout persistence.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) error
	GetByID(ctx context.Context, id string) (*domain.Workout, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Workout, error)
	Update(ctx context.Context, workout *domain.Workout) error
	Delete(ctx context.Context, id string) error
}

type workoutRepository struct {
	pool *pgxpool.Pool
}

// NewWorkoutRepository instantiates repository.
func NewWorkoutRepository(pool *pgxpool.Pool) WorkoutRepository {
	return &workoutRepository{pool: pool}
}

// Create inserts the workout conditionally: the unique index on name is the
// existence check, so two concurrent creates cannot both succeed.
func (r *workoutRepository) Create(ctx context.Context, workout *domain.Workout) error {
	const query = `
        INSERT INTO workouts (owner_id, name, duration_minutes, status)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (name) DO NOTHING
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		workout.OwnerID,
		workout.Name,
		workout.DurationMinutes,
		workout.Status,
	).Scan(&workout.ID, &workout.CreatedAt, &workout.UpdatedAt)
	if err == pgx.ErrNoRows {
		return ErrNameTaken
	}
	return err
}

func (r *workoutRepository) GetByID(ctx context.Context, id string) (*domain.Workout, error) {
	const query = `
        SELECT id, owner_id, name, duration_minutes, status, created_at, updated_at
        FROM workouts WHERE id=$1`

	var workout domain.Workout
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&workout.ID,
		&workout.OwnerID,
		&workout.Name,
		&workout.DurationMinutes,
		&workout.Status,
		&workout.CreatedAt,
		&workout.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &workout, nil
}

func (r *workoutRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Workout, error) {
	const query = `
        SELECT id, owner_id, name, duration_minutes, status, created_at, updated_at
        FROM workouts WHERE owner_id=$1
        ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWorkouts(rows)
}

func (r *workoutRepository) Update(ctx context.Context, workout *domain.Workout) error {
	const query = `
        UPDATE workouts SET name=$1, duration_minutes=$2, status=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		workout.Name,
		workout.DurationMinutes,
		workout.Status,
		workout.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrNameTaken
		}
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *workoutRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM workouts WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanWorkouts(rows pgx.Rows) ([]domain.Workout, error) {
	result := []domain.Workout{}
	for rows.Next() {
		var workout domain.Workout
		if err := rows.Scan(
			&workout.ID,
			&workout.OwnerID,
			&workout.Name,
			&workout.DurationMinutes,
			&workout.Status,
			&workout.CreatedAt,
			&workout.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, workout)
	}
	return result, rows.Err()
}
