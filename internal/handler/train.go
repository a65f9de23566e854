package handler

import (
	"net/http"

	"github.com/railyard/booking/internal/domain"
)

// trainRequest is the body accepted by POST /trains and PUT /trains/{trainID}.
type trainRequest struct {
	LastStation    string  `json:"last_station"`
	MaxCargoWeight float64 `json:"max_cargo_weight"`
	OnTrip         bool    `json:"on_trip"`
}

// CreateTrain handles POST /trains.
func (s *Server) CreateTrain(w http.ResponseWriter, r *http.Request) {
	var req trainRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body"))
		return
	}

	created, err := s.trains.Create(r.Context(), domain.Train{
		LastStation:    req.LastStation,
		MaxCargoWeight: req.MaxCargoWeight,
		OnTrip:         req.OnTrip,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListTrains handles GET /trains.
func (s *Server) ListTrains(w http.ResponseWriter, r *http.Request) {
	trains, err := s.trains.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trains)
}

// GetTrain handles GET /trains/{trainID}.
func (s *Server) GetTrain(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "trainID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid train id"))
		return
	}

	train, err := s.trains.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, train)
}

// UpdateTrain handles PUT /trains/{trainID}.
// This is the dispatcher endpoint: it is how a train gets moved to a
// new station or marked busy/free, since trips never do either.
func (s *Server) UpdateTrain(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "trainID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid train id"))
		return
	}

	var req trainRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body"))
		return
	}

	updated, err := s.trains.Update(r.Context(), domain.Train{
		ID:             id,
		LastStation:    req.LastStation,
		MaxCargoWeight: req.MaxCargoWeight,
		OnTrip:         req.OnTrip,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteTrain handles DELETE /trains/{trainID}.
func (s *Server) DeleteTrain(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "trainID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid train id"))
		return
	}

	if err := s.trains.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
