package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/VetCareServices/vetclinic-api/internal/audit"
	"github.com/VetCareServices/vetclinic-api/internal/config"
	"github.com/VetCareServices/vetclinic-api/internal/handlers"
	infraRepo "github.com/VetCareServices/vetclinic-api/internal/infra/repository"
	"github.com/VetCareServices/vetclinic-api/internal/logger"
	"github.com/VetCareServices/vetclinic-api/internal/middleware"
	"github.com/VetCareServices/vetclinic-api/internal/payments"
	"github.com/VetCareServices/vetclinic-api/internal/storage"
	"github.com/VetCareServices/vetclinic-api/internal/tokens"
	ucAppointment "github.com/VetCareServices/vetclinic-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	clinicRepo := infraRepo.NewClinicGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	tokenStore := tokens.NewStore(cfg)
	blobStore := storage.NewS3Store(cfg)

	var charger payments.Charger
	if cfg.MercadoPagoToken != "" {
		mp, err := payments.NewMercadoPago(cfg.MercadoPagoToken)
		if err != nil {
			logger.L().Warn("payment gateway unavailable", zap.Error(err))
		} else {
			charger = mp
		}
	}

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		clinicRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		clinicRepo,
		auditDispatcher,
	)

	payAppointmentUC := ucAppointment.NewPayAppointment(
		clinicRepo,
		charger,
		auditDispatcher,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(clinicRepo)
	getAppointmentUC := ucAppointment.NewGetAppointment(clinicRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, tokenStore)
	meHandler := handlers.NewMeHandler(db)

	clientHandler := handlers.NewClientHandler(db)
	animalHandler := handlers.NewAnimalHandler(db)
	mediaHandler := handlers.NewMediaHandler(db, blobStore, auditDispatcher)
	treatmentHandler := handlers.NewTreatmentHandler(db, auditDispatcher)
	userHandler := handlers.NewUserHandler(db, auditDispatcher)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		payAppointmentUC,
		listAppointmentsUC,
		getAppointmentUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// OPERATIONAL
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/animals", animalHandler.List)
		api.GET("/animals/:id", animalHandler.Get)
		api.GET("/media/:id", mediaHandler.Get)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, tokenStore))
		{
			secured.POST("/auth/logout", authHandler.Logout)
			secured.GET("/me", meHandler.Me)

			secured.GET("/clients", clientHandler.List)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.POST("/clients", clientHandler.Create)
			secured.PUT("/clients/:id", clientHandler.Update)

			secured.POST("/animals", animalHandler.Create)
			secured.PUT("/animals/:id", animalHandler.Update)

			secured.POST("/media", mediaHandler.Upload)

			secured.GET("/treatments", treatmentHandler.List)
			secured.GET("/treatments/:id", treatmentHandler.Get)
			secured.POST("/treatments", treatmentHandler.Create)
			secured.PUT("/treatments/:id", treatmentHandler.Update)
			secured.DELETE("/treatments/:id", treatmentHandler.Delete)

			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.POST("/appointments/:id/pay", appointmentHandler.Pay)

			secured.GET("/users", userHandler.List)
			secured.GET("/users/:id", userHandler.Get)
			secured.PUT("/users/:id", userHandler.Update)
			secured.DELETE("/users/:id", userHandler.Delete)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
