package handler

import (
	_ "embed"
	"html/template"
	"net/http"

	"radiograph-service/internal/delivery/dto"
	"radiograph-service/internal/usecase"

	"github.com/sirupsen/logrus"
)

//go:embed home.html
var homeTemplateHTML string

var homeTemplate = template.Must(template.New("home").Parse(homeTemplateHTML))

// HomeHandler serves the server-rendered search page: a lookup form, and
// when ?id= is present, the matching patient (by store id or patient code).
type HomeHandler struct {
	patientUsecase usecase.PatientUsecase
	log            *logrus.Logger
}

func NewHomeHandler(patientUsecase usecase.PatientUsecase, log *logrus.Logger) *HomeHandler {
	return &HomeHandler{
		patientUsecase: patientUsecase,
		log:            log,
	}
}

type homePageData struct {
	Query    string
	Patient  *dto.PatientResponse
	NotFound bool
	Failed   bool
}

func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	data := homePageData{
		Query: r.URL.Query().Get("id"),
	}

	if data.Query != "" {
		patient, err := h.patientUsecase.GetPatient(r.Context(), data.Query)
		switch err {
		case nil:
			data.Patient = patient
		case usecase.ErrPatientNotFound:
			data.NotFound = true
		default:
			h.log.Warnf("Home page lookup failed: %+v", err)
			data.Failed = true
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := homeTemplate.Execute(w, data); err != nil {
		h.log.Warnf("Failed to render home page: %+v", err)
	}
}
