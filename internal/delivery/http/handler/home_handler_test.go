package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"radiograph-service/internal/delivery/dto"
	"radiograph-service/internal/usecase"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestHomePage_SearchForm(t *testing.T) {
	h := NewHomeHandler(&mockPatientUsecase{}, newTestLogger())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.Index(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), `name="id"`)
}

func TestHomePage_PatientResult(t *testing.T) {
	uc := &mockPatientUsecase{
		GetPatientFunc: func(ctx context.Context, idOrCode string) (*dto.PatientResponse, error) {
			return &dto.PatientResponse{
				PatientCode: "PAC-001",
				Name:        "Ana Torres",
				Radiographs: []dto.RadiographResponse{
					{RadiographID: "R1", ExamType: "chest", Status: "pending"},
				},
			}, nil
		},
	}
	h := NewHomeHandler(uc, newTestLogger())

	req := httptest.NewRequest(http.MethodGet, "/?id=PAC-001", nil)
	rec := httptest.NewRecorder()

	h.Index(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Ana Torres")
	assert.Contains(t, body, "R1")
}

func TestHomePage_NotFound(t *testing.T) {
	uc := &mockPatientUsecase{
		GetPatientFunc: func(ctx context.Context, idOrCode string) (*dto.PatientResponse, error) {
			return nil, usecase.ErrPatientNotFound
		},
	}
	h := NewHomeHandler(uc, newTestLogger())

	req := httptest.NewRequest(http.MethodGet, "/?id=PAC-404", nil)
	rec := httptest.NewRecorder()

	h.Index(rec, req)

	// the page itself still renders
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "No se encontr"))
}
