package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"madeasy/config"
	"madeasy/database"
	"madeasy/handlers"
	"madeasy/middleware"
	"madeasy/routes"
	"madeasy/services/booking"
	"madeasy/services/storage"
	"madeasy/utils"
)

// newDraftPersistence builds the backend named by DRAFT_STORE and returns the
// clients the health monitor should ping.
func newDraftPersistence(ctx context.Context, cfg config.Config, logger *zap.Logger) (storage.DraftPersistence, *redis.Client, *mongo.Client) {
	codec := storage.NewCodec(cfg.DraftEncryptionKey)
	if cfg.DraftEncryptionKey == "" {
		logger.Warn("DRAFT_ENCRYPTION_KEY is empty; booking drafts are stored unencrypted")
	}

	switch cfg.DraftStore {
	case "mongo":
		db, err := database.InitDB(ctx, cfg)
		if err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		store := storage.NewMongoDraftStore(db, codec, cfg.DraftTTL)
		if err := store.EnsureIndexes(ctx); err != nil {
			logger.Sugar().Fatalf("main: failed to create draft indexes: %v", err)
		}
		return store, nil, database.MongoClient
	case "memory":
		logger.Warn("using in-memory draft store; sessions will not survive a restart")
		return storage.NewMemoryDraftStore(codec), nil, nil
	default:
		client := utils.GetDraftCacheClient()
		return storage.NewRedisDraftStore(client, codec, cfg.DraftTTL), client, nil
	}
}

func newBookingCreator(cfg config.Config, logger *zap.Logger) booking.BookingCreator {
	if cfg.BookingAPIURL == "" {
		logger.Info("BOOKING_API_URL not set; booking ids are issued locally")
		return booking.LocalBookingCreator{}
	}
	return booking.NewHTTPBookingCreator(cfg.BookingAPIURL, cfg.BookingAPITimeout)
}

// newWizardService restores drafts for as long as the backend keeps them.
func newWizardService(cfg config.Config, persistence storage.DraftPersistence, logger *zap.Logger, metrics *utils.WizardMetrics) *booking.DefaultWizardService {
	return &booking.DefaultWizardService{
		Persistence:   persistence,
		Creator:       newBookingCreator(cfg, logger),
		Logger:        logger.Named("wizard"),
		Metrics:       metrics,
		Currency:      cfg.Currency,
		SubmitTimeout: cfg.BookingAPITimeout,
		RestoreWindow: cfg.DraftTTL,
	}
}

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	persistence, redisClient, mongoClient := newDraftPersistence(ctx, cfg, logger)
	metrics := utils.NewWizardMetrics(prometheus.DefaultRegisterer)

	var monitor *utils.HealthMonitor
	if redisClient != nil || mongoClient != nil {
		monitor = utils.NewHealthMonitor(redisClient, mongoClient)
		monitor.Start(ctx, 30*time.Second)
	}

	wizardService := newWizardService(cfg, persistence, logger, metrics)

	var geocoder booking.Geocoder
	if cfg.GoogleAPIKey != "" {
		geocoder = booking.NewGoogleGeocoder(cfg.GoogleAPIKey)
	}
	bookingHandler := handlers.NewBookingHandler(wizardService, booking.StaticSuggester{}, geocoder, cfg.Currency)

	handlerBundle := handlers.NewHandlerBundle(
		bookingHandler,
		handlers.HealthHandler(monitor),
		gin.WrapH(promhttp.Handler()),
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle, cfg.RequireAuth)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	stop()

	if redisClient != nil {
		_ = redisClient.Close()
	}
	if err := database.Close(shutdownCtx); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
