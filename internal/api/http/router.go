package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/workout-service/internal/api/http/handlers"
	"github.com/spec-kit/workout-service/internal/auth"
	"github.com/spec-kit/workout-service/internal/ratelimit"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Workouts       *handlers.WorkoutsHandler
	AuthMiddleware *auth.AuthMiddleware
	AuthRateLimit  *ratelimit.Limiter
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	users := app.Group("/users")
	if cfg.AuthRateLimit != nil {
		users.Use(cfg.AuthRateLimit.Handle)
	}
	users.Post("/register", cfg.Users.Register)
	users.Post("/login", cfg.Users.Login)

	workouts := app.Group("/workouts", cfg.AuthMiddleware.Handle)
	workouts.Post("/addWorkout", cfg.Workouts.AddWorkout)
	workouts.Get("/getMyWorkouts", cfg.Workouts.GetMyWorkouts)
	workouts.Put("/updateWorkout/:id", cfg.Workouts.UpdateWorkout)
	workouts.Patch("/updateWorkout/:id", cfg.Workouts.UpdateWorkout)
	workouts.Delete("/deleteWorkout/:id", cfg.Workouts.DeleteWorkout)
	workouts.Put("/completeWorkoutStatus/:id", cfg.Workouts.CompleteWorkoutStatus)
	workouts.Patch("/completeWorkoutStatus/:id", cfg.Workouts.CompleteWorkoutStatus)
}
