package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/railyard/booking/internal/domain"
)

// csvHeaders defines the column names written as the first row of any
// CSV manifest.
var csvHeaders = []string{
	"trip_id", "origin_city", "destination_city", "train_id",
	"passenger_name", "cargo_weight",
}

// manifestRow is the JSON shape of a single manifest entry.
type manifestRow struct {
	TripID          string   `json:"trip_id"`
	OriginCity      string   `json:"origin_city"`
	DestinationCity string   `json:"destination_city"`
	TrainID         string   `json:"train_id"`
	PassengerName   string   `json:"passenger_name,omitempty"`
	CargoWeight     *float64 `json:"cargo_weight,omitempty"`
}

// GetManifest handles GET /manifest.
// It returns one row per boarded passenger across all trips; trips with
// nobody aboard contribute one row with empty passenger fields.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetManifest(w http.ResponseWriter, r *http.Request) {
	rows, err := s.manifest.Manifest(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSVManifest(w, rows)
		return
	}

	out := make([]manifestRow, len(rows))
	for i, row := range rows {
		out[i] = manifestRow{
			TripID:          row.TripID,
			OriginCity:      row.OriginCity,
			DestinationCity: row.DestinationCity,
			TrainID:         row.TrainID,
			PassengerName:   row.PassengerName,
			CargoWeight:     row.CargoWeight,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// writeCSVManifest encodes the rows as CSV and writes them with an
// explicit Content-Length.
func writeCSVManifest(w http.ResponseWriter, rows []domain.ManifestRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck // writes to a bytes.Buffer never fail
	cw.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		cw.Write(manifestCSVRecord(r))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write(buf.Bytes())
}

// manifestCSVRecord encodes a manifest row as a flat string slice.
// A nil cargo weight (the empty-trip row) is encoded as an empty string.
func manifestCSVRecord(r domain.ManifestRow) []string {
	cargo := ""
	if r.CargoWeight != nil {
		cargo = strconv.FormatFloat(*r.CargoWeight, 'f', -1, 64)
	}
	return []string{
		r.TripID,
		r.OriginCity,
		r.DestinationCity,
		r.TrainID,
		r.PassengerName,
		cargo,
	}
}
