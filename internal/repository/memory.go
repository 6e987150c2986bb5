package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/workout-service/internal/domain"
)

// memoryUserRepository keeps users in a map. It backs tests and local runs
// without a database, honoring the same uniqueness and not-found semantics as
// the Postgres implementation.
type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

// NewMemoryUserRepository returns an in-memory UserRepository.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{users: make(map[string]domain.User)}
}

func (r *memoryUserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return ErrEmailTaken
		}
	}
	now := time.Now().UTC()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

func (r *memoryUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			match := user
			return &match, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type memoryWorkoutRepository struct {
	mu       sync.RWMutex
	workouts map[string]domain.Workout
}

// NewMemoryWorkoutRepository returns an in-memory WorkoutRepository.
func NewMemoryWorkoutRepository() WorkoutRepository {
	return &memoryWorkoutRepository{workouts: make(map[string]domain.Workout)}
}

func (r *memoryWorkoutRepository) Create(_ context.Context, workout *domain.Workout) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.workouts {
		if existing.Name == workout.Name {
			return ErrNameTaken
		}
	}
	now := time.Now().UTC()
	workout.ID = uuid.NewString()
	workout.CreatedAt = now
	workout.UpdatedAt = now
	r.workouts[workout.ID] = *workout
	return nil
}

func (r *memoryWorkoutRepository) GetByID(_ context.Context, id string) (*domain.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	workout, ok := r.workouts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &workout, nil
}

func (r *memoryWorkoutRepository) ListByOwner(_ context.Context, ownerID string) ([]domain.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := []domain.Workout{}
	for _, workout := range r.workouts {
		if workout.OwnerID == ownerID {
			result = append(result, workout)
		}
	}
	return result, nil
}

func (r *memoryWorkoutRepository) Update(_ context.Context, workout *domain.Workout) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.workouts[workout.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	for id, existing := range r.workouts {
		if id != workout.ID && existing.Name == workout.Name {
			return ErrNameTaken
		}
	}
	workout.CreatedAt = current.CreatedAt
	workout.UpdatedAt = time.Now().UTC()
	r.workouts[workout.ID] = *workout
	return nil
}

func (r *memoryWorkoutRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.workouts[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.workouts, id)
	return nil
}
