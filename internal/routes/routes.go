package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-booking/internal/audit"
	"github.com/BruksfildServices01/studio-booking/internal/auth"
	"github.com/BruksfildServices01/studio-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/studio-booking/internal/db"
	"github.com/BruksfildServices01/studio-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/studio-booking/internal/infra/repository"
	"github.com/BruksfildServices01/studio-booking/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/studio-booking/internal/usecase/appointment"
	ucAuth "github.com/BruksfildServices01/studio-booking/internal/usecase/auth"
	ucCatalog "github.com/BruksfildServices01/studio-booking/internal/usecase/catalog"
	ucSetting "github.com/BruksfildServices01/studio-booking/internal/usecase/setting"
)

// Deps are the process-wide singletons the router needs. The caller owns
// their lifecycle.
type Deps struct {
	Logger     *slog.Logger
	Limiter    middleware.Limiter
	Dispatcher *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, deps Deps) {

	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Limiter == nil {
		deps.Limiter = middleware.NewMemoryLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)
	}

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(deps.Logger),
		middleware.Recovery(),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	)

	// ======================================================
	// INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	settingRepo := infraRepo.NewSettingGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)
	serviceRepo := infraRepo.NewServiceGormRepository(db)

	auditLogger := audit.New(db)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret)

	// ======================================================
	// USE CASES
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(appointmentRepo, deps.Dispatcher)
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	updateStatusUC := ucAppointment.NewUpdateStatus(appointmentRepo, deps.Dispatcher)
	listCustomersUC := ucAppointment.NewListCustomers(appointmentRepo)

	listSettingsUC := ucSetting.NewListSettings(settingRepo)
	upsertSettingsUC := ucSetting.NewUpsertSettings(settingRepo, deps.Dispatcher)

	listServicesUC := ucCatalog.NewListActiveServices(serviceRepo)

	loginUC := ucAuth.NewLogin(userRepo, tokens, deps.Dispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(
		listSettingsUC,
		listServicesUC,
		availabilityUC,
		bookUC,
	)
	authHandler := handlers.NewAuthHandler(loginUC)
	meHandler := handlers.NewMeHandler()
	settingHandler := handlers.NewSettingHandler(upsertSettingsUC)
	appointmentHandler := handlers.NewAppointmentHandler(
		listAppointmentsUC,
		updateStatusUC,
		listCustomersUC,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)
	appWebHandler := handlers.NewAppWebHandler(cfg.PublicDir)

	// ======================================================
	// HEALTH
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		if err := dbpkg.Ping(db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// WEB
	// ======================================================
	r.GET("/", appWebHandler.Index)
	r.GET("/admin", appWebHandler.Admin)
	r.NoRoute(appWebHandler.Asset)

	// ======================================================
	// API
	// ======================================================
	requireAuth := middleware.AuthMiddleware(tokens)
	requireAdmin := middleware.RequireAdmin()

	api := r.Group("/api")
	api.Use(middleware.RateLimit(deps.Limiter))
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/settings", publicHandler.Settings)
		api.GET("/services", publicHandler.Services)
		api.GET("/available-slots", publicHandler.AvailableSlots)
		api.POST("/appointments", publicHandler.CreateAppointment)

		api.POST("/login", authHandler.Login)

		api.PUT("/settings", requireAuth, requireAdmin, settingHandler.Update)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(requireAuth, requireAdmin)
		{
			admin.GET("/me", meHandler.GetMe)

			admin.GET("/appointments", appointmentHandler.List)
			admin.PUT("/appointments/:id", appointmentHandler.UpdateStatus)
			admin.GET("/customers", appointmentHandler.Customers)

			admin.PUT("/settings", settingHandler.UpdateBatch)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
