package handler

import (
	"net/http"

	"github.com/railyard/booking/internal/domain"
)

// passengerRequest is the body accepted by POST /passengers.
type passengerRequest struct {
	Name        string  `json:"name"`
	CargoWeight float64 `json:"cargo_weight"`
}

// CreatePassenger handles POST /passengers.
func (s *Server) CreatePassenger(w http.ResponseWriter, r *http.Request) {
	var req passengerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body"))
		return
	}

	created, err := s.passengers.Create(r.Context(), domain.Passenger{
		Name:        req.Name,
		CargoWeight: req.CargoWeight,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListPassengers handles GET /passengers.
func (s *Server) ListPassengers(w http.ResponseWriter, r *http.Request) {
	passengers, err := s.passengers.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, passengers)
}

// GetPassenger handles GET /passengers/{passengerID}.
func (s *Server) GetPassenger(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "passengerID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid passenger id"))
		return
	}

	passenger, err := s.passengers.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, passenger)
}

// DeletePassenger handles DELETE /passengers/{passengerID}.
func (s *Server) DeletePassenger(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "passengerID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid passenger id"))
		return
	}

	if err := s.passengers.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
