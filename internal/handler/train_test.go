package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railyard/booking/internal/domain"
	"github.com/railyard/booking/internal/handler"
)

// mockTrainServicer is a test double for handler.TrainServicer.
type mockTrainServicer struct {
	create  func(ctx context.Context, train domain.Train) (*domain.Train, error)
	getByID func(ctx context.Context, id uuid.UUID) (*domain.Train, error)
	list    func(ctx context.Context) ([]*domain.Train, error)
	update  func(ctx context.Context, train domain.Train) (*domain.Train, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTrainServicer) Create(ctx context.Context, train domain.Train) (*domain.Train, error) {
	return m.create(ctx, train)
}
func (m *mockTrainServicer) GetByID(ctx context.Context, id uuid.UUID) (*domain.Train, error) {
	return m.getByID(ctx, id)
}
func (m *mockTrainServicer) List(ctx context.Context) ([]*domain.Train, error) {
	return m.list(ctx)
}
func (m *mockTrainServicer) Update(ctx context.Context, train domain.Train) (*domain.Train, error) {
	return m.update(ctx, train)
}
func (m *mockTrainServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.TrainServicer = (*mockTrainServicer)(nil)

func newTrainHTTPHandler(svc handler.TrainServicer) http.Handler {
	return handler.NewServer(svc, nil, nil, nil).Routes()
}

func trainFixture() *domain.Train {
	return &domain.Train{
		ID:             uuid.New(),
		LastStation:    "Sanandaj",
		MaxCargoWeight: 34286,
	}
}

// ---- POST /trains ----------------------------------------------------------

func TestCreateTrain_201(t *testing.T) {
	fixture := trainFixture()
	svc := &mockTrainServicer{
		create: func(_ context.Context, _ domain.Train) (*domain.Train, error) {
			return fixture, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"last_station":     fixture.LastStation,
		"max_cargo_weight": fixture.MaxCargoWeight,
	})
	req := httptest.NewRequest(http.MethodPost, "/trains", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newTrainHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got domain.Train
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, fixture.ID, got.ID)
	assert.Equal(t, "Sanandaj", got.LastStation)
}

func TestCreateTrain_422_Validation(t *testing.T) {
	svc := &mockTrainServicer{
		create: func(_ context.Context, _ domain.Train) (*domain.Train, error) {
			return nil, fmt.Errorf("%w: max_cargo_weight must not be negative", domain.ErrValidation)
		},
	}

	body := jsonBody(t, map[string]any{"last_station": "Tehran", "max_cargo_weight": -5})
	req := httptest.NewRequest(http.MethodPost, "/trains", body)
	rec := httptest.NewRecorder()

	newTrainHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var got struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "validation_error", got.Error.Code)
	// The sentinel prefix is stripped; only the human-readable part remains.
	assert.Equal(t, "max_cargo_weight must not be negative", got.Error.Message)
}

func TestCreateTrain_422_MalformedBody(t *testing.T) {
	svc := &mockTrainServicer{}

	req := httptest.NewRequest(http.MethodPost, "/trains", jsonBody(t, "not an object"))
	rec := httptest.NewRecorder()

	newTrainHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ---- GET /trains/{trainID} -------------------------------------------------

func TestGetTrain_404(t *testing.T) {
	svc := &mockTrainServicer{
		getByID: func(_ context.Context, _ uuid.UUID) (*domain.Train, error) {
			return nil, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/trains/%s", uuid.New()), nil)
	rec := httptest.NewRecorder()

	newTrainHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- PUT /trains/{trainID} -------------------------------------------------

func TestUpdateTrain_200_DispatcherFlipsOnTrip(t *testing.T) {
	fixture := trainFixture()
	var received domain.Train
	svc := &mockTrainServicer{
		update: func(_ context.Context, train domain.Train) (*domain.Train, error) {
			received = train
			return fixture, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"last_station":     "Rasht",
		"max_cargo_weight": 34286,
		"on_trip":          true,
	})
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/trains/%s", fixture.ID), body)
	rec := httptest.NewRecorder()

	newTrainHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, fixture.ID, received.ID)
	assert.Equal(t, "Rasht", received.LastStation)
	assert.True(t, received.OnTrip)
}

// ---- DELETE /trains/{trainID} ----------------------------------------------

func TestDeleteTrain_204(t *testing.T) {
	svc := &mockTrainServicer{
		delete: func(_ context.Context, _ uuid.UUID) error { return nil },
	}

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/trains/%s", uuid.New()), nil)
	rec := httptest.NewRecorder()

	newTrainHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
