package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"radiograph-service/internal/delivery/dto"
	"radiograph-service/internal/delivery/http/handler"
	"radiograph-service/internal/delivery/http/middleware"
	"radiograph-service/internal/usecase"
	"radiograph-service/pkg/response"
	"radiograph-service/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type stubPatientUsecase struct{}

var _ usecase.PatientUsecase = (*stubPatientUsecase)(nil)

func (s *stubPatientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	return nil, errors.New("not implemented")
}

func (s *stubPatientUsecase) GetAllPatients(ctx context.Context) ([]dto.PatientResponse, error) {
	return []dto.PatientResponse{}, nil
}

func (s *stubPatientUsecase) GetPatient(ctx context.Context, idOrCode string) (*dto.PatientResponse, error) {
	return nil, usecase.ErrPatientNotFound
}

func (s *stubPatientUsecase) UpdateRadiographStatus(ctx context.Context, idOrCode, radiographID, status string) (*dto.PatientResponse, error) {
	return nil, usecase.ErrPatientNotFound
}

func newTestRouter() *mux.Router {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	uc := &stubPatientUsecase{}
	cv := validator.NewValidator()

	router := NewRouter(
		handler.NewPatientHandler(uc, cv),
		handler.NewHealthHandler(nil, nil),
		handler.NewHomeHandler(uc, log),
		middleware.NewCORSMiddleware(),
		middleware.NewLoggingMiddleware(log),
	)
	return router.Setup()
}

func TestRouter_UnmatchedRouteReturnsJSONEnvelope(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var env response.Response
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	assert.False(t, env.Success)
	assert.Equal(t, "Route not found", env.Message)
}

func TestRouter_MethodNotAllowedReturnsJSONEnvelope(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodDelete, "/api/pacientes", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var env response.Response
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	assert.False(t, env.Success)
}

func TestRouter_HealthAlwaysOK(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	// the health probe reports store connectivity, never handler health
	assert.Equal(t, "disconnected", body["dbStatus"])
	assert.Contains(t, body, "uptime")
	assert.Contains(t, body, "timestamp")
}

func TestRouter_HomePage(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}

func TestRouter_ListPatients(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/pacientes", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var env response.Response
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	assert.True(t, env.Success)
	assert.Equal(t, 0, env.Meta.Count)
}

func TestRouter_GetPatientNotFound(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/pacientes/PAC-404", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
