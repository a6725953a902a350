package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/harramos25/GlamBook/internal/audit"
	"github.com/harramos25/GlamBook/internal/config"
	"github.com/harramos25/GlamBook/internal/handlers"
	"github.com/harramos25/GlamBook/internal/infra/cache"
	infraRepo "github.com/harramos25/GlamBook/internal/infra/repository"
	"github.com/harramos25/GlamBook/internal/middleware"
	"github.com/harramos25/GlamBook/internal/models"
	ucBooking "github.com/harramos25/GlamBook/internal/usecase/booking"
	ucCatalog "github.com/harramos25/GlamBook/internal/usecase/catalog"
)

// Infra carries the optional collaborators built by the binary. Nil fields
// disable the matching feature.
type Infra struct {
	Audit  *audit.Dispatcher
	Redis  *redis.Client
	Images ucCatalog.ImageSaver
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, infra Infra) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Recovery(),
		middleware.CORSMiddleware(cfg.CORSOrigins...),
	)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	catalogRepo := cache.NewCatalogCache(
		infraRepo.NewCatalogGormRepository(db),
		infra.Redis,
		cfg.CatalogCacheTTL,
	)
	auditRepo := infraRepo.NewAuditLogGormRepository(db)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, infra.Audit)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	dashboardStatsUC := ucBooking.NewDashboardStats(bookingRepo)
	listDayBookingsUC := ucBooking.NewListDayBookings(bookingRepo)

	listCatalogUC := ucCatalog.NewListCatalog(catalogRepo)
	manageCatalogUC := ucCatalog.NewManageCatalog(catalogRepo, infra.Images, infra.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	catalogHandler := handlers.NewCatalogHandler(listCatalogUC)
	bookingHandler := handlers.NewBookingHandler(createBookingUC, listBookingsUC)
	dashboardHandler := handlers.NewDashboardHandler(dashboardStatsUC)
	authHandler := handlers.NewAuthHandler(bookingRepo, cfg, infra.Audit)

	calendarHandler := handlers.NewCalendarHandler(listDayBookingsUC, listCatalogUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditRepo)
	adminCatalogHandler := handlers.NewAdminCatalogHandler(manageCatalogUC)

	r.NoRoute(handlers.NoRoute)

	if sqlDB, err := db.DB(); err == nil {
		r.GET("/health", handlers.NewHealthHandler(sqlDB).Check)
	} else {
		log.Error().Err(err).Msg("health check disabled: no sql.DB behind gorm")
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/services", catalogHandler.ListServices)
		api.GET("/stylists", catalogHandler.ListStylists)

		api.GET("/bookings", bookingHandler.List)
		api.POST("/bookings", bookingHandler.Create)

		api.GET("/dashboard/stats", dashboardHandler.Stats)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(
			middleware.AuthMiddleware(cfg),
			middleware.RequireRole(models.RoleAdmin),
		)
		{
			admin.GET("/calendar", calendarHandler.Day)
			admin.GET("/audit-logs", auditLogsHandler.List)

			admin.POST("/services", adminCatalogHandler.CreateService)
			admin.POST("/stylists", adminCatalogHandler.CreateStylist)
		}
	}
}
