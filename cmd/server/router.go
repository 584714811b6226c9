package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/serafaleo/wingman/internal/api"
	apimiddleware "github.com/serafaleo/wingman/internal/api/middleware"
)

// setupRouter configures the application router with all routes and
// middleware. The credential endpoints are public except logout; every
// resource endpoint requires a valid access token.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.Trace)

	authHandler := api.NewAuthHandler(app.userService)
	aircraftHandler := api.NewAircraftHandler(app.aircraftService)
	flightHandler := api.NewFlightHandler(app.flightService)
	authMiddleware := apimiddleware.NewAuthMiddleware(app.tokenIssuer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/users/signup", authHandler.SignUp)
		r.Post("/users/login", authHandler.Login)
		r.Post("/users/refresh", authHandler.Refresh)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/users/logout", authHandler.Logout)

			r.Route("/aircrafts", func(r chi.Router) {
				r.Get("/", aircraftHandler.List)
				r.Post("/", aircraftHandler.Create)
				r.Get("/{id}", aircraftHandler.Get)
				r.Put("/{id}", aircraftHandler.Update)
				r.Delete("/{id}", aircraftHandler.Delete)
			})

			r.Route("/flights", func(r chi.Router) {
				r.Get("/", flightHandler.List)
				r.Post("/", flightHandler.Create)
				r.Get("/{id}", flightHandler.Get)
				r.Put("/{id}", flightHandler.Update)
				r.Delete("/{id}", flightHandler.Delete)
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
