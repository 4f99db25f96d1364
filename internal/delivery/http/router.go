package http

import (
	"net/http"

	"hospital-backend/internal/delivery/http/handler"
	"hospital-backend/internal/delivery/http/middleware"
	"hospital-backend/internal/domain/entity"
	"hospital-backend/pkg/response"

	"github.com/gorilla/mux"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Patient      *handler.PatientHandler
	Doctor       *handler.DoctorHandler
	Availability *handler.DoctorAvailabilityHandler
	Clinical     *handler.ClinicalHandler
	Theater      *handler.OperationTheaterHandler
	Booking      *handler.BookingHandler
	Staff        *handler.HospitalStaffHandler
	Payment      *handler.PaymentHandler
	Analytics    *handler.AnalyticsHandler
	AuditLog     *handler.AuditLogHandler
}

type Router struct {
	router            *mux.Router
	handlers          Handlers
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		handlers:          handlers,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

// group returns a subrouter that requires authentication and, when roles are
// given, one of those roles.
func (r *Router) group(roles ...int) *mux.Router {
	sub := r.router.NewRoute().Subrouter()
	sub.Use(r.authMiddleware.Authenticate)
	if len(roles) > 0 {
		sub.Use(middleware.RequireRole(roles...))
	}
	return sub
}

// Setup mounts every route. Logging and CORS wrap the whole router so that
// preflights and unmatched paths pass through them too.
func (r *Router) Setup() http.Handler {
	h := r.handlers

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})

	// Public
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	r.router.HandleFunc("/login", h.Auth.Login).Methods(http.MethodPost)
	r.router.HandleFunc("/refresh-token", h.Auth.RefreshToken).Methods(http.MethodPost)

	// Operation theatre booking: admin or doctor
	booking := r.group(entity.RoleIDAdmin, entity.RoleIDDoctor)
	booking.HandleFunc("/operation-theater-booking", h.Booking.BookTheater).Methods(http.MethodPost)

	// Patient detail: admin or doctor, doctors further scoped to their own patients
	clinician := r.group(entity.RoleIDAdmin, entity.RoleIDDoctor)
	clinician.HandleFunc("/patient/{id:[0-9]+}", h.Patient.GetPatientDetail).Methods(http.MethodGet)
	clinician.HandleFunc("/analytics/patient-status", h.Analytics.GetPatientStatus).Methods(http.MethodGet)

	// Duty schedule: admin or staff
	rota := r.group(entity.RoleIDAdmin, entity.RoleIDStaff)
	rota.HandleFunc("/staff_duty_schedule", h.Staff.GetDutySchedule).Methods(http.MethodGet)

	// Admin-only: mutations, reports, audit trail
	admin := r.group(entity.RoleIDAdmin)
	r.mountMutations(admin)
	admin.HandleFunc("/assign_duty", h.Staff.AssignDuty).Methods(http.MethodPost)
	admin.HandleFunc("/mark_staff_attendance", h.Staff.MarkAttendance).Methods(http.MethodPost)
	admin.HandleFunc("/staff_attendance", h.Staff.GetAttendance).Methods(http.MethodGet)
	admin.HandleFunc("/staff_attendance_report", h.Staff.GetAttendanceReport).Methods(http.MethodGet)
	admin.HandleFunc("/dashboard", h.Analytics.GetDashboard).Methods(http.MethodGet)
	admin.HandleFunc("/analytics/hospital-revenues", h.Analytics.GetRevenue).Methods(http.MethodGet)
	admin.HandleFunc("/analytics/doctor-availability", h.Analytics.GetDoctorAvailability).Methods(http.MethodGet)
	admin.HandleFunc("/analytics/staff-availability", h.Analytics.GetStaffAvailability).Methods(http.MethodGet)
	admin.HandleFunc("/analytics/patient-test-records", h.Analytics.GetPatientTestRecords).Methods(http.MethodGet)
	admin.HandleFunc("/analytics/operation-theatre-bookings", h.Analytics.GetTheaterBookings).Methods(http.MethodGet)
	admin.HandleFunc("/analytics/hospital-staff", h.Analytics.GetHospitalStaff).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs", h.AuditLog.GetAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id:[0-9]+}", h.AuditLog.GetAuditLog).Methods(http.MethodGet)
	admin.HandleFunc("/users", h.User.GetAllUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id:[0-9]+}", h.User.GetUser).Methods(http.MethodGet)

	// Reads: any authenticated role
	reader := r.group()
	reader.HandleFunc("/logout", h.Auth.Logout).Methods(http.MethodPost)
	reader.HandleFunc("/me", h.Auth.GetCurrentUser).Methods(http.MethodGet)
	r.mountReads(reader)

	return r.loggingMiddleware.Handle(r.corsMiddleware.Handle(r.router))
}

func (r *Router) mountMutations(admin *mux.Router) {
	h := r.handlers

	admin.HandleFunc("/users", h.User.CreateUser).Methods(http.MethodPost)
	admin.HandleFunc("/users/{id:[0-9]+}", h.User.UpdateUser).Methods(http.MethodPut)
	admin.HandleFunc("/users/{id:[0-9]+}", h.User.DeleteUser).Methods(http.MethodDelete)

	admin.HandleFunc("/patients", h.Patient.CreatePatient).Methods(http.MethodPost)
	admin.HandleFunc("/patients/{id:[0-9]+}", h.Patient.UpdatePatient).Methods(http.MethodPut)
	admin.HandleFunc("/patients/{id:[0-9]+}", h.Patient.DeletePatient).Methods(http.MethodDelete)

	admin.HandleFunc("/doctors", h.Doctor.CreateDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id:[0-9]+}", h.Doctor.UpdateDoctor).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id:[0-9]+}", h.Doctor.DeleteDoctor).Methods(http.MethodDelete)

	admin.HandleFunc("/doctor-availability", h.Availability.CreateAvailability).Methods(http.MethodPost)
	admin.HandleFunc("/doctor-availability/{id:[0-9]+}", h.Availability.UpdateAvailability).Methods(http.MethodPut)
	admin.HandleFunc("/doctor-availability/{id:[0-9]+}", h.Availability.DeleteAvailability).Methods(http.MethodDelete)

	admin.HandleFunc("/appointments", h.Clinical.CreateAppointment).Methods(http.MethodPost)
	admin.HandleFunc("/appointments/{id:[0-9]+}", h.Clinical.UpdateAppointment).Methods(http.MethodPut)
	admin.HandleFunc("/appointments/{id:[0-9]+}", h.Clinical.DeleteAppointment).Methods(http.MethodDelete)

	admin.HandleFunc("/admissions", h.Clinical.CreateAdmission).Methods(http.MethodPost)
	admin.HandleFunc("/admissions/{id:[0-9]+}", h.Clinical.UpdateAdmission).Methods(http.MethodPut)
	admin.HandleFunc("/admissions/{id:[0-9]+}", h.Clinical.DeleteAdmission).Methods(http.MethodDelete)

	admin.HandleFunc("/patient-tests", h.Clinical.CreateTest).Methods(http.MethodPost)
	admin.HandleFunc("/patient-tests/{id:[0-9]+}", h.Clinical.UpdateTest).Methods(http.MethodPut)
	admin.HandleFunc("/patient-tests/{id:[0-9]+}", h.Clinical.DeleteTest).Methods(http.MethodDelete)

	admin.HandleFunc("/operation-theaters", h.Theater.CreateTheater).Methods(http.MethodPost)
	admin.HandleFunc("/operation-theaters/{id:[0-9]+}", h.Theater.UpdateTheater).Methods(http.MethodPut)
	admin.HandleFunc("/operation-theaters/{id:[0-9]+}", h.Theater.DeleteTheater).Methods(http.MethodDelete)

	admin.HandleFunc("/hospital-staff", h.Staff.CreateStaff).Methods(http.MethodPost)
	admin.HandleFunc("/hospital-staff/{id:[0-9]+}", h.Staff.UpdateStaff).Methods(http.MethodPut)
	admin.HandleFunc("/hospital-staff/{id:[0-9]+}", h.Staff.DeleteStaff).Methods(http.MethodDelete)

	admin.HandleFunc("/payments", h.Payment.CreatePayment).Methods(http.MethodPost)
}

func (r *Router) mountReads(reader *mux.Router) {
	h := r.handlers

	reader.HandleFunc("/patients", h.Patient.GetAllPatients).Methods(http.MethodGet)
	reader.HandleFunc("/patients/{id:[0-9]+}", h.Patient.GetPatient).Methods(http.MethodGet)

	reader.HandleFunc("/doctors", h.Doctor.GetAllDoctors).Methods(http.MethodGet)
	reader.HandleFunc("/doctors/{id:[0-9]+}", h.Doctor.GetDoctor).Methods(http.MethodGet)
	reader.HandleFunc("/doctors/{doctorId:[0-9]+}/availability", h.Availability.GetAvailabilitiesByDoctor).Methods(http.MethodGet)

	reader.HandleFunc("/doctor-availability", h.Availability.GetAllAvailabilities).Methods(http.MethodGet)
	reader.HandleFunc("/doctor-availability/{id:[0-9]+}", h.Availability.GetAvailability).Methods(http.MethodGet)

	reader.HandleFunc("/appointments", h.Clinical.GetAllAppointments).Methods(http.MethodGet)
	reader.HandleFunc("/appointments/{id:[0-9]+}", h.Clinical.GetAppointment).Methods(http.MethodGet)

	reader.HandleFunc("/admissions", h.Clinical.GetAllAdmissions).Methods(http.MethodGet)
	reader.HandleFunc("/admissions/{id:[0-9]+}", h.Clinical.GetAdmission).Methods(http.MethodGet)

	reader.HandleFunc("/patient-tests", h.Clinical.GetAllTests).Methods(http.MethodGet)
	reader.HandleFunc("/patient-tests/{id:[0-9]+}", h.Clinical.GetTest).Methods(http.MethodGet)

	reader.HandleFunc("/operation-theaters", h.Theater.GetAllTheaters).Methods(http.MethodGet)
	reader.HandleFunc("/operation-theaters/{id:[0-9]+}", h.Theater.GetTheater).Methods(http.MethodGet)

	reader.HandleFunc("/operation-theatre-bookings", h.Booking.GetAllBookings).Methods(http.MethodGet)
	reader.HandleFunc("/operation-theatre-bookings/{id:[0-9]+}", h.Booking.GetBooking).Methods(http.MethodGet)

	reader.HandleFunc("/hospital-staff", h.Staff.GetAllStaff).Methods(http.MethodGet)
	reader.HandleFunc("/hospital-staff/{id:[0-9]+}", h.Staff.GetStaff).Methods(http.MethodGet)

	reader.HandleFunc("/payments", h.Payment.GetPayments).Methods(http.MethodGet)
	reader.HandleFunc("/payments/{id:[0-9]+}", h.Payment.GetPayment).Methods(http.MethodGet)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
