package http

import (
	"net/http"

	"radiograph-service/internal/delivery/http/handler"
	"radiograph-service/internal/delivery/http/middleware"
	"radiograph-service/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	patientHandler    *handler.PatientHandler
	healthHandler     *handler.HealthHandler
	homeHandler       *handler.HomeHandler
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	healthHandler *handler.HealthHandler,
	homeHandler *handler.HomeHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		patientHandler:    patientHandler,
		healthHandler:     healthHandler,
		homeHandler:       homeHandler,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Patient routes
	api.HandleFunc("/pacientes", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	api.HandleFunc("/pacientes", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	api.HandleFunc("/pacientes/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	api.HandleFunc("/pacientes/{id}/radiografias/{idRad}", r.patientHandler.UpdateRadiographStatus).Methods(http.MethodPut)

	// Health check
	r.router.HandleFunc("/health", r.healthHandler.Check).Methods(http.MethodGet)

	// Server-rendered search page
	r.router.HandleFunc("/", r.homeHandler.Index).Methods(http.MethodGet)

	// Unmatched routes get the JSON error envelope
	r.router.NotFoundHandler = http.HandlerFunc(notFoundRoute)
	r.router.MethodNotAllowedHandler = http.HandlerFunc(notFoundRoute)

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.loggingMiddleware.Handle)

	return r.router
}

func notFoundRoute(w http.ResponseWriter, req *http.Request) {
	response.NotFound(w, "Route not found")
}
