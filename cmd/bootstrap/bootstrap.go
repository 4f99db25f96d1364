package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-backend/config"
	deliveryHttp "hospital-backend/internal/delivery/http"
	"hospital-backend/internal/delivery/http/handler"
	"hospital-backend/internal/delivery/http/middleware"
	"hospital-backend/internal/infrastructure/cache"
	"hospital-backend/internal/infrastructure/database"
	"hospital-backend/internal/repository"
	"hospital-backend/internal/service"
	"hospital-backend/internal/usecase"
	"hospital-backend/pkg/jwt"
	"hospital-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// NewLogger builds the process logger: JSON to stdout at the configured level.
func NewLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Warnf("Unknown log level %q, using info", cfg.Log.Level)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

// New creates a new App instance with all dependencies initialized
func New(cfg *config.Config) (*App, error) {
	log := NewLogger(cfg)
	app := &App{Config: cfg, Log: log}

	db, err := database.NewPostgresConnection(cfg.DB, cfg.IsProduction())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	log.Info("Database connected successfully")

	redisClient, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.RedisClient = redisClient

	app.Server = initializeServer(cfg, log, db, redisClient)
	return app, nil
}

// initializeServer wires repositories, services, usecases and handlers into the HTTP server.
func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	doctorRepo := repository.NewDoctorRepository()
	availabilityRepo := repository.NewDoctorAvailabilityRepository()
	patientRepo := repository.NewPatientRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	admissionRepo := repository.NewAdmissionRepository()
	testRepo := repository.NewPatientTestRepository()
	theaterRepo := repository.NewOperationTheaterRepository()
	bookingRepo := repository.NewOperationTheaterBookingRepository()
	staffRepo := repository.NewHospitalStaffRepository()
	dutyRepo := repository.NewDutyRepository()
	attendanceRepo := repository.NewStaffAttendanceRepository()
	paymentRepo := repository.NewPaymentRepository()
	analyticsRepo := repository.NewAnalyticsRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Services
	auditService := service.NewAuditService(log, auditLogRepo)
	tokenStore := service.NewTokenStore(redisClient)
	statsCache := service.NewRedisStatsCache(redisClient, log, cfg.Stats.CacheTTL)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, tokenStore, auditService)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo, roleRepo, doctorRepo, tokenStore, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, auditService)
	availabilityUsecase := usecase.NewDoctorAvailabilityUsecase(db, log, availabilityRepo, doctorRepo, auditService)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, doctorRepo, userRepo, testRepo, appointmentRepo, admissionRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, patientRepo, doctorRepo, auditService)
	admissionUsecase := usecase.NewAdmissionUsecase(db, log, admissionRepo, patientRepo, auditService)
	testUsecase := usecase.NewPatientTestUsecase(db, log, testRepo, patientRepo, auditService)
	theaterUsecase := usecase.NewOperationTheaterUsecase(db, log, theaterRepo, auditService)
	bookingUsecase := usecase.NewOperationTheaterBookingUsecase(db, log, doctorRepo, availabilityRepo, theaterRepo, bookingRepo, auditService, statsCache)
	staffUsecase := usecase.NewHospitalStaffUsecase(db, log, staffRepo, auditService)
	dutyUsecase := usecase.NewStaffDutyUsecase(db, log, staffRepo, dutyRepo, attendanceRepo, auditService)
	paymentUsecase := usecase.NewPaymentUsecase(db, log, paymentRepo, patientRepo, auditService, statsCache)
	analyticsUsecase := usecase.NewAnalyticsUsecase(db, log, analyticsRepo, paymentRepo, dutyRepo, testRepo, bookingRepo, staffRepo)
	dashboardUsecase := usecase.NewDashboardUsecase(db, log, analyticsRepo, statsCache)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	handlers := deliveryHttp.Handlers{
		Auth:         handler.NewAuthHandler(authUsecase, customValidator),
		User:         handler.NewUserHandler(userUsecase, customValidator),
		Patient:      handler.NewPatientHandler(patientUsecase, customValidator),
		Doctor:       handler.NewDoctorHandler(doctorUsecase, customValidator),
		Availability: handler.NewDoctorAvailabilityHandler(availabilityUsecase, customValidator),
		Clinical:     handler.NewClinicalHandler(appointmentUsecase, admissionUsecase, testUsecase, customValidator),
		Theater:      handler.NewOperationTheaterHandler(theaterUsecase, customValidator),
		Booking:      handler.NewBookingHandler(bookingUsecase, customValidator),
		Staff:        handler.NewHospitalStaffHandler(staffUsecase, dutyUsecase, customValidator),
		Payment:      handler.NewPaymentHandler(paymentUsecase, customValidator),
		Analytics:    handler.NewAnalyticsHandler(analyticsUsecase, dashboardUsecase, customValidator),
		AuditLog:     handler.NewAuditLogHandler(auditLogUsecase),
	}

	router := deliveryHttp.NewRouter(
		handlers,
		middleware.NewAuthMiddleware(jwtService, tokenStore),
		middleware.NewCORSMiddleware(cfg.App.CORSOrigin),
		middleware.NewLoggingMiddleware(log),
	)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and blocks until SIGINT/SIGTERM, then shuts down gracefully.
func (app *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		app.Log.Infof("Server starting on port %s (%s)", app.Config.App.Port, app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		app.Close()
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()
	app.Log.Info("Server shutdown complete")
	return nil
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
