package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appcatalog "github.com/barberia/backend/internal/application/catalog"
	apppartner "github.com/barberia/backend/internal/application/partner"
	appregister "github.com/barberia/backend/internal/application/register"
	appstaff "github.com/barberia/backend/internal/application/staff"
	"github.com/barberia/backend/internal/infrastructure/auth"
	"github.com/barberia/backend/internal/infrastructure/cache"
	"github.com/barberia/backend/internal/infrastructure/config"
	"github.com/barberia/backend/internal/infrastructure/event"
	"github.com/barberia/backend/internal/infrastructure/logger"
	"github.com/barberia/backend/internal/infrastructure/persistence"
	"github.com/barberia/backend/internal/interfaces/http/handler"
	"github.com/barberia/backend/internal/interfaces/http/middleware"
	"github.com/barberia/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting barbershop backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	jobRepo := persistence.NewGormJobRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	closeRepo := persistence.NewGormDailyCloseRepository(db.DB)
	barberRepo := persistence.NewGormBarberRepository(db.DB)
	inviteRepo := persistence.NewGormInvitationCodeRepository(db.DB)
	offeringRepo := persistence.NewGormServiceOfferingRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)

	// Application services
	registerService := appregister.NewRegisterService(jobRepo, expenseRepo, closeRepo, barberRepo)
	jobService := appregister.NewJobService(jobRepo, barberRepo, offeringRepo)
	expenseService := appregister.NewExpenseService(expenseRepo)
	barberService := appstaff.NewBarberService(barberRepo)
	inviteService := appstaff.NewInviteService(inviteRepo, barberRepo)
	offeringService := appcatalog.NewOfferingService(offeringRepo)
	customerService := apppartner.NewCustomerService(customerRepo)

	// Event bus for domain events
	eventBus := event.NewInMemoryEventBus(log)
	registerService.SetEventPublisher(eventBus)
	jobService.SetEventPublisher(eventBus)
	expenseService.SetEventPublisher(eventBus)
	barberService.SetEventPublisher(eventBus)

	eventBus.Subscribe(appregister.NewActivityLogHandler(log))
	log.Info("Event handlers registered")

	// Day-summary cache is optional; the services fall back to computing
	// summaries from the database when it is absent or unreachable.
	if cfg.Cache.Enabled {
		summaryCache, err := cache.NewRedisSummaryCache(cfg.Redis, cfg.Cache.SummaryTTL)
		if err != nil {
			log.Warn("Summary cache unavailable, continuing without it", zap.Error(err))
		} else {
			defer func() {
				if err := summaryCache.Close(); err != nil {
					log.Error("Error closing summary cache", zap.Error(err))
				}
			}()
			registerService.SetSummaryCache(summaryCache)
			jobService.SetSummaryCache(summaryCache)
			expenseService.SetSummaryCache(summaryCache)
			log.Info("Summary cache enabled",
				zap.String("addr", cfg.Redis.Addr()),
				zap.Duration("ttl", cfg.Cache.SummaryTTL),
			)
		}
	}

	jwtService := auth.NewJWTService(cfg.JWT)

	// HTTP handlers
	registerHandler := handler.NewRegisterHandler(registerService)
	jobHandler := handler.NewJobHandler(jobService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	barberHandler := handler.NewBarberHandler(barberService)
	inviteHandler := handler.NewInviteHandler(inviteService)
	catalogHandler := handler.NewCatalogHandler(offeringService)
	customerHandler := handler.NewCustomerHandler(customerService)
	systemHandler := handler.NewSystemHandler(db)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Public endpoints
	engine.GET("/health", systemHandler.Health)
	engine.GET("/api/v1/ping", systemHandler.Ping)

	// Everything under /api/v1 requires a valid bearer token
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.JWTAuthMiddleware(jwtService))

	owner := middleware.RequireOwner()

	registerRoutes := router.NewGroup("/register")
	registerRoutes.GET("/summary", registerHandler.Summary)
	registerRoutes.POST("/close", owner, registerHandler.CloseDay)
	registerRoutes.GET("/closes", registerHandler.RecentCloses)

	jobRoutes := router.NewGroup("/jobs")
	jobRoutes.POST("", jobHandler.Create)
	jobRoutes.GET("", jobHandler.List)
	jobRoutes.GET("/:id", jobHandler.GetByID)

	expenseRoutes := router.NewGroup("/expenses")
	expenseRoutes.POST("", owner, expenseHandler.Create)
	expenseRoutes.GET("", expenseHandler.List)
	expenseRoutes.GET("/:id", expenseHandler.GetByID)

	barberRoutes := router.NewGroup("/barbers")
	barberRoutes.POST("", owner, barberHandler.Create)
	barberRoutes.GET("", barberHandler.List)
	barberRoutes.GET("/:id", barberHandler.GetByID)
	barberRoutes.PUT("/:id", owner, barberHandler.UpdateProfile)
	barberRoutes.PUT("/:id/commission", owner, barberHandler.UpdateCommission)
	barberRoutes.PUT("/:id/active", owner, barberHandler.SetActive)
	barberRoutes.DELETE("/:id", owner, barberHandler.Delete)

	inviteRoutes := router.NewGroup("/invites")
	inviteRoutes.POST("", owner, inviteHandler.Generate)
	inviteRoutes.GET("", owner, inviteHandler.List)
	inviteRoutes.POST("/redeem", inviteHandler.Redeem)

	serviceRoutes := router.NewGroup("/services")
	serviceRoutes.POST("", owner, catalogHandler.Create)
	serviceRoutes.GET("", catalogHandler.List)
	serviceRoutes.GET("/:id", catalogHandler.GetByID)
	serviceRoutes.PUT("/:id", owner, catalogHandler.Update)
	serviceRoutes.DELETE("/:id", owner, catalogHandler.Delete)

	customerRoutes := router.NewGroup("/customers")
	customerRoutes.POST("", customerHandler.Create)
	customerRoutes.GET("", customerHandler.List)
	customerRoutes.GET("/:id", customerHandler.GetByID)
	customerRoutes.PUT("/:id", customerHandler.Update)
	customerRoutes.DELETE("/:id", customerHandler.Delete)

	systemRoutes := router.NewGroup("/system")
	systemRoutes.GET("/info", systemHandler.Info)

	r.Register(registerRoutes).
		Register(jobRoutes).
		Register(expenseRoutes).
		Register(barberRoutes).
		Register(inviteRoutes).
		Register(serviceRoutes).
		Register(customerRoutes).
		Register(systemRoutes)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
