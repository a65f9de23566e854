// Package handler implements the HTTP handlers for the railway booking
// API. All handlers are methods on Server, split into domain-specific
// files (train.go, trip.go, etc.) but sharing the same struct so they
// can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/railyard/booking/internal/domain"
)

// TrainServicer defines the business operations the train handlers
// depend on. Defining the interface here (in the consumer package)
// follows the Go convention: "accept interfaces, return concrete
// types". It lets handler tests inject a mock without touching the
// service layer.
type TrainServicer interface {
	Create(ctx context.Context, train domain.Train) (*domain.Train, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Train, error)
	List(ctx context.Context) ([]*domain.Train, error)
	Update(ctx context.Context, train domain.Train) (*domain.Train, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PassengerServicer defines the business operations the passenger
// handlers depend on.
type PassengerServicer interface {
	Create(ctx context.Context, passenger domain.Passenger) (*domain.Passenger, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Passenger, error)
	List(ctx context.Context) ([]*domain.Passenger, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TripServicer defines the business operations the trip handlers
// depend on, including boarding.
type TripServicer interface {
	Create(ctx context.Context, originCity, destinationCity string, trainID uuid.UUID) (*domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Trip, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]*domain.Trip, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Board(ctx context.Context, tripID, passengerID uuid.UUID) error
	Disembark(ctx context.Context, tripID, passengerID uuid.UUID) error
	RemainingCapacity(ctx context.Context, tripID uuid.UUID) (float64, error)
	Passengers(ctx context.Context, tripID uuid.UUID) ([]*domain.Passenger, error)
}

// ManifestServicer defines the manifest export operation.
type ManifestServicer interface {
	Manifest(ctx context.Context) ([]domain.ManifestRow, error)
}

// Server holds the services the handlers delegate to.
type Server struct {
	trains     TrainServicer
	passengers PassengerServicer
	trips      TripServicer
	manifest   ManifestServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trains TrainServicer, passengers PassengerServicer, trips TripServicer, manifest ManifestServicer) *Server {
	return &Server{trains: trains, passengers: passengers, trips: trips, manifest: manifest}
}

// Routes returns the chi router with every endpoint registered.
// Cross-cutting middleware (logging, CORS, body limits) is applied by
// the caller in main, not here, so tests can exercise bare routes.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/trains", func(r chi.Router) {
		r.Post("/", s.CreateTrain)
		r.Get("/", s.ListTrains)
		r.Route("/{trainID}", func(r chi.Router) {
			r.Get("/", s.GetTrain)
			r.Put("/", s.UpdateTrain)
			r.Delete("/", s.DeleteTrain)
		})
	})

	r.Route("/passengers", func(r chi.Router) {
		r.Post("/", s.CreatePassenger)
		r.Get("/", s.ListPassengers)
		r.Route("/{passengerID}", func(r chi.Router) {
			r.Get("/", s.GetPassenger)
			r.Delete("/", s.DeletePassenger)
		})
	})

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.CreateTrip)
		r.Get("/", s.ListTrips)
		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Delete("/", s.DeleteTrip)
			r.Get("/capacity", s.GetTripCapacity)
			r.Get("/passengers", s.ListTripPassengers)
			r.Post("/passengers", s.BoardPassenger)
			r.Delete("/passengers/{passengerID}", s.DisembarkPassenger)
		})
	})

	r.Get("/manifest", s.GetManifest)

	return r
}

// pathID parses the named URL parameter as a UUID.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}
