package http

import (
	"net/http"

	"rehab-match/internal/delivery/http/handler"
	"rehab-match/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	patientHandler        *handler.PatientHandler
	clinicianHandler      *handler.ClinicianHandler
	timeslotHandler       *handler.TimeslotHandler
	recommendationHandler *handler.RecommendationHandler
	optimizationHandler   *handler.OptimizationHandler
	auditLogHandler       *handler.AuditLogHandler
	authMiddleware        *middleware.AuthMiddleware
	corsMiddleware        *middleware.CORSMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	clinicianHandler *handler.ClinicianHandler,
	timeslotHandler *handler.TimeslotHandler,
	recommendationHandler *handler.RecommendationHandler,
	optimizationHandler *handler.OptimizationHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		patientHandler:        patientHandler,
		clinicianHandler:      clinicianHandler,
		timeslotHandler:       timeslotHandler,
		recommendationHandler: recommendationHandler,
		optimizationHandler:   optimizationHandler,
		auditLogHandler:       auditLogHandler,
		authMiddleware:        authMiddleware,
		corsMiddleware:        corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Patient management
	protected.HandleFunc("/patients", r.patientHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/patients", r.patientHandler.GetAll).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/patients/{id}", r.patientHandler.Delete).Methods(http.MethodDelete)

	// Clinician management
	protected.HandleFunc("/clinicians", r.clinicianHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/clinicians", r.clinicianHandler.GetAll).Methods(http.MethodGet)
	protected.HandleFunc("/clinicians/{id}", r.clinicianHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/clinicians/{id}", r.clinicianHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/clinicians/{id}", r.clinicianHandler.Delete).Methods(http.MethodDelete)

	// Timeslot catalog
	protected.HandleFunc("/timeslots", r.timeslotHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/timeslots", r.timeslotHandler.GetAll).Methods(http.MethodGet)
	protected.HandleFunc("/timeslots/{id}", r.timeslotHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/timeslots/{id}", r.timeslotHandler.Delete).Methods(http.MethodDelete)

	// Matching
	protected.HandleFunc("/patients/{id}/recommendations", r.recommendationHandler.GetForPatient).Methods(http.MethodGet)
	protected.HandleFunc("/recommendations", r.recommendationHandler.GetAll).Methods(http.MethodGet)
	protected.HandleFunc("/optimize", r.optimizationHandler.Optimize).Methods(http.MethodPost)

	// Audit trail
	protected.HandleFunc("/audit-logs", r.auditLogHandler.GetAll).Methods(http.MethodGet)
	protected.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetByID).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
