// Package http exposes the ledger over a JSON API.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"tripledger/internal/log"
	"tripledger/internal/services"
)

// Server wraps the HTTP server and its router.
type Server struct {
	server  *http.Server
	logger  *log.Logger
	limiter *rateLimiter
}

// Handler holds the services the routes dispatch into.
type Handler struct {
	services *services.Services
}

func NewHandler(svc *services.Services) *Handler {
	return &Handler{services: svc}
}

// NewServer builds the router and the listener around it.
func NewServer(port string, svc *services.Services, logger *log.Logger) *Server {
	handler := NewHandler(svc)
	limiter := newRateLimiter(300)

	mux := chi.NewRouter()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	mux.Use(securityHeaders)
	mux.Use(limiter.middleware)
	mux.Use(log.RequestLogger(logger.WithComponent("http")))
	RegisterRoutes(mux, handler)

	return &Server{
		server: &http.Server{
			Addr:              ":" + port,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger:  logger,
		limiter: limiter,
	}
}

// RegisterRoutes mounts every API route on the router.
func RegisterRoutes(mux *chi.Mux, handler *Handler) {
	mux.Route("/api", func(api chi.Router) {
		api.Route("/trips", func(trips chi.Router) {
			trips.Post("/", handler.CreateTrip)
			trips.Get("/", handler.ListTrips)

			trips.Route("/{tripID}", func(trip chi.Router) {
				trip.Get("/", handler.GetTrip)
				trip.Delete("/", handler.DeleteTrip)
				trip.Get("/budget", handler.BudgetReport)

				trip.Route("/friends", func(friends chi.Router) {
					friends.Get("/", handler.ListFriends)
					friends.Post("/", handler.AddFriend)
					friends.Get("/ordered", handler.ListFriendsOrdered)
					friends.Delete("/{id}", handler.DeleteFriend)
					friends.Put("/{id}/self", handler.SetSelf)
				})

				trip.Route("/expenses", func(expenses chi.Router) {
					expenses.Get("/", handler.ListExpenses)
					expenses.Post("/", handler.AddExpense)
					expenses.Get("/by-date", handler.ExpensesByDate)
					expenses.Get("/by-category", handler.ExpensesByCategory)
					expenses.Get("/{id}/split", handler.SplitBreakdown)
					expenses.Delete("/{id}", handler.DeleteExpense)
				})

				trip.Route("/checklist", func(checklist chi.Router) {
					checklist.Get("/", handler.GetChecklist)
					checklist.Post("/", handler.AddChecklistTask)
					checklist.Put("/{id}/toggle", handler.ToggleChecklistTask)
					checklist.Delete("/{id}", handler.DeleteChecklistTask)
				})

				trip.Route("/itinerary", func(itinerary chi.Router) {
					itinerary.Get("/", handler.ListItinerary)
					itinerary.Post("/", handler.SaveActivity)
					itinerary.Put("/", handler.SaveActivity)
					itinerary.Delete("/{id}", handler.DeleteActivity)
				})
			})
		})
	})
}

// Start blocks serving requests until the listener fails or Shutdown runs.
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the limiter's cleanup loop.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	s.limiter.Stop()
	return s.server.Shutdown(ctx)
}
