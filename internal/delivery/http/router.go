package http

import (
	"fmt"
	"net/http"
	"time"

	"clinic-booking-api/internal/delivery/http/handler"
	"clinic-booking-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	doctorHandler       *handler.DoctorHandler
	patientHandler      *handler.PatientHandler
	availabilityHandler *handler.AvailabilityHandler
	appointmentHandler  *handler.AppointmentHandler
	corsMiddleware      *middleware.CORSMiddleware
	loggingMiddleware   *middleware.LoggingMiddleware
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	availabilityHandler *handler.AvailabilityHandler,
	appointmentHandler *handler.AppointmentHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		doctorHandler:       doctorHandler,
		patientHandler:      patientHandler,
		availabilityHandler: availabilityHandler,
		appointmentHandler:  appointmentHandler,
		corsMiddleware:      corsMiddleware,
		loggingMiddleware:   loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Doctors
	api.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)

	// Patients
	api.HandleFunc("/patients", r.patientHandler.RegisterPatient).Methods(http.MethodPost)
	api.HandleFunc("/patients", r.patientHandler.ListPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients/lookup", r.patientHandler.LookupPatient).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id:[0-9]+}", r.patientHandler.GetPatient).Methods(http.MethodGet)

	// Availability
	api.HandleFunc("/availability", r.availabilityHandler.GetAvailability).Methods(http.MethodPost)

	// Appointments
	api.HandleFunc("/appointments", r.appointmentHandler.BookAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments/reschedule", r.appointmentHandler.RescheduleAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments/patient/{patientId:[0-9]+}", r.appointmentHandler.ListPatientAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id:[0-9]+}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)

	// Middleware
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"ok": true, "time": %q}`, time.Now().UTC().Format(time.RFC3339))
}
