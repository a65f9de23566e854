package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/railyard/booking/internal/domain"
)

// createTripRequest is the body accepted by POST /trips.
type createTripRequest struct {
	OriginCity      string    `json:"origin_city"`
	DestinationCity string    `json:"destination_city"`
	TrainID         uuid.UUID `json:"train_id"`
}

// boardRequest is the body accepted by POST /trips/{tripID}/passengers.
type boardRequest struct {
	PassengerID uuid.UUID `json:"passenger_id"`
}

// tripResponse is the wire shape of a trip. The passenger list and the
// remaining capacity are snapshots taken at response time; both change
// as passengers board and leave.
type tripResponse struct {
	ID                uuid.UUID           `json:"id"`
	OriginCity        string              `json:"origin_city"`
	DestinationCity   string              `json:"destination_city"`
	Train             *domain.Train       `json:"train"`
	Passengers        []*domain.Passenger `json:"passengers"`
	RemainingCapacity float64             `json:"remaining_capacity"`
}

// capacityResponse is the body returned by GET /trips/{tripID}/capacity.
type capacityResponse struct {
	RemainingCapacity float64 `json:"remaining_capacity"`
}

// pagination echoes the applied paging values alongside the total count.
type pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// tripListResponse is the paged envelope returned by GET /trips.
type tripListResponse struct {
	Data       []tripResponse `json:"data"`
	Pagination pagination     `json:"pagination"`
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body"))
		return
	}
	if req.TrainID == uuid.Nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("train_id is required"))
		return
	}

	created, err := s.trips.Create(r.Context(), req.OriginCity, req.DestinationCity, req.TrainID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1,
// limit=20, max=100).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(
		queryInt(r, "page"),
		queryInt(r, "limit"),
	)

	trips, total, err := s.trips.ListPaged(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}

	data := make([]tripResponse, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, tripListResponse{
		Data: data,
		Pagination: pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetTrip handles GET /trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid trip id"))
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// DeleteTrip handles DELETE /trips/{tripID}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid trip id"))
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetTripCapacity handles GET /trips/{tripID}/capacity.
func (s *Server) GetTripCapacity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid trip id"))
		return
	}

	remaining, err := s.trips.RemainingCapacity(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, capacityResponse{RemainingCapacity: remaining})
}

// ListTripPassengers handles GET /trips/{tripID}/passengers.
// Passengers are returned in boarding order.
func (s *Server) ListTripPassengers(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid trip id"))
		return
	}

	passengers, err := s.trips.Passengers(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, passengers)
}

// BoardPassenger handles POST /trips/{tripID}/passengers.
func (s *Server) BoardPassenger(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid trip id"))
		return
	}

	var req boardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body"))
		return
	}
	if req.PassengerID == uuid.Nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("passenger_id is required"))
		return
	}

	if err := s.trips.Board(r.Context(), id, req.PassengerID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DisembarkPassenger handles DELETE /trips/{tripID}/passengers/{passengerID}.
func (s *Server) DisembarkPassenger(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathID(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid trip id"))
		return
	}
	passengerID, err := pathID(r, "passengerID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid passenger id"))
		return
	}

	if err := s.trips.Disembark(r.Context(), tripID, passengerID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

// tripToResponse converts a domain.Trip into its wire shape, snapshotting
// the passenger list and the recomputed remaining capacity.
func tripToResponse(t *domain.Trip) tripResponse {
	return tripResponse{
		ID:                t.ID,
		OriginCity:        t.OriginCity,
		DestinationCity:   t.DestinationCity,
		Train:             t.Train,
		Passengers:        t.Passengers(),
		RemainingCapacity: t.RemainingCapacity(),
	}
}

// queryInt parses the named query parameter as an int, returning nil
// when absent or malformed so pagination falls back to defaults.
func queryInt(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
