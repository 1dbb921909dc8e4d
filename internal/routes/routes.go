package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/serenitylabs/medspa-scheduler/internal/audit"
	"github.com/serenitylabs/medspa-scheduler/internal/cache"
	"github.com/serenitylabs/medspa-scheduler/internal/config"
	"github.com/serenitylabs/medspa-scheduler/internal/handlers"
	infraRepo "github.com/serenitylabs/medspa-scheduler/internal/infra/repository"
	"github.com/serenitylabs/medspa-scheduler/internal/middleware"
	ucAppointment "github.com/serenitylabs/medspa-scheduler/internal/usecase/appointment"
	ucMedspa "github.com/serenitylabs/medspa-scheduler/internal/usecase/medspa"
	ucService "github.com/serenitylabs/medspa-scheduler/internal/usecase/service"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cacheClient *cache.Client, cfg *config.Config) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	medspaRepo := infraRepo.NewMedspaGormRepository(db)
	serviceRepo := infraRepo.NewServiceGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)

	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	medspaUC := ucMedspa.New(medspaRepo, cacheClient)
	serviceUC := ucService.New(serviceRepo, medspaRepo, cacheClient)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	medspaHandler := handlers.NewMedspaHandler(medspaUC)
	serviceHandler := handlers.NewServiceHandler(serviceUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		getAppointmentUC,
		updateStatusUC,
		listAppointmentsUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// MEDSPAS
		// ------------------------------
		api.POST("/medspas", medspaHandler.Create)
		api.GET("/medspas", medspaHandler.List)
		api.GET("/medspas/:medspa_id", medspaHandler.Get)

		// ------------------------------
		// SERVICES
		// ------------------------------
		api.POST("/medspas/:medspa_id/services", serviceHandler.Create)
		api.GET("/medspas/:medspa_id/services", serviceHandler.ListByMedspa)
		api.GET("/services/:service_id", serviceHandler.Get)
		api.PATCH("/services/:service_id", serviceHandler.Update)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.POST("/medspas/:medspa_id/appointments", appointmentHandler.Create)
		api.GET("/appointments", appointmentHandler.List)
		api.GET("/appointments/:appointment_id", appointmentHandler.Get)
		api.PATCH("/appointments/:appointment_id/status", appointmentHandler.UpdateStatus)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
