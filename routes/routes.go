package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/iaigorluiz-svg/nutriai-api/controllers"
	identity "github.com/iaigorluiz-svg/nutriai-api/middleware"
)

func SetupRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Permissive CORS: wildcard origin, explicit methods/headers. Preflight
	// requests get an empty success response from the cors handler.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "x-user-id"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})

	r.Post("/api/vision/analyze", controllers.AnalyzeFood)
	r.Post("/api/nutrition/recalculate", controllers.RecalculateIngredients)
	r.Post("/api/goals/calculate", controllers.CalculateGoals)

	r.Group(func(r chi.Router) {
		r.Use(identity.Identity)
		r.Get("/api/profile", controllers.GetProfile)
		r.Post("/api/profile", controllers.SaveProfile)
	})

	return r
}
