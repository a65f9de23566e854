package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/railyard/booking/internal/domain"
)

// writeError maps a service or domain error onto the wire format.
//
//   - ErrNotFound → 404 not_found
//   - ErrInsufficientCapacity, ErrTrainUnavailable, ErrNotOnTrip →
//     409 conflict: the request was well-formed but the current state
//     of the trip or train forbids it
//   - ErrValidation and the remaining trip-construction sentinels →
//     422 validation_error
//   - anything else → 500 internal_error with a generic message; the
//     underlying error is not leaked to the client
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{
			Error: ErrorDetail{Code: "not_found", Message: unwrapMessage(err)},
		})
	case errors.Is(err, domain.ErrInsufficientCapacity),
		errors.Is(err, domain.ErrTrainUnavailable),
		errors.Is(err, domain.ErrNotOnTrip):
		writeJSON(w, http.StatusConflict, ErrorResponse{
			Error: ErrorDetail{Code: "conflict", Message: unwrapMessage(err)},
		})
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidTrain),
		errors.Is(err, domain.ErrUnknownCity),
		errors.Is(err, domain.ErrSameCity),
		errors.Is(err, domain.ErrTrainNotAtOrigin):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error: ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)},
		})
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: ErrorDetail{Code: "internal_error", Message: "internal error"},
		})
	}
}

// unwrapMessage strips the service/repo call-site prefixes from a
// wrapped sentinel error so clients see only the human-readable part.
// e.g. "service.TripService.Board: repo.TripRepo.GetByID: not found"
// → "not found".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for strings.HasPrefix(msg, "service.") || strings.HasPrefix(msg, "repo.") {
		i := strings.Index(msg, ": ")
		if i < 0 {
			break
		}
		msg = msg[i+2:]
	}
	return strings.TrimPrefix(msg, "validation error: ")
}
