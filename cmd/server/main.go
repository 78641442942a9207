package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/business/dataset"
	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/business/news"
	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/business/report"
	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/platform/config"
	firestoreclient "github.com/tcphan/Medicare-Utilization-Dashboard/internal/platform/firestore"
	apirouter "github.com/tcphan/Medicare-Utilization-Dashboard/internal/platform/http"
	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/platform/logging"
	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/platform/metrics"
	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/platform/newsapi"
	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/repository"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load(".env.local", ".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer logger.Sync()

	for _, w := range cfg.Warnings() {
		logger.Warn(w)
	}

	gin.SetMode(cfg.GinMode)
	m := metrics.New()

	start := time.Now()
	loader := dataset.NewLoader(dataset.NewHTTPFetcher(cfg.DatasetFetchTimeout), logger)
	snap, err := loader.Load(ctx, dataset.Sources{
		HomeHealth: cfg.HomeHealthData,
		Hospice:    cfg.HospiceData,
		Hospital:   cfg.HospitalData,
	})
	if err != nil {
		logger.Fatal("dataset load", zap.Error(err))
	}
	m.SetLoadDuration(time.Since(start))
	for _, st := range snap.Stats {
		m.SetDatasetRows(st.Dataset, st.Rows)
		if st.MissingValues > 0 || st.InvalidPeriods > 0 {
			logger.Warn("dataset coercion issues",
				zap.String("dataset", st.Dataset),
				zap.Int("missingValues", st.MissingValues),
				zap.Int("invalidPeriods", st.InvalidPeriods))
		}
	}
	dash := report.NewDashboard(snap)

	newsClient := newsapi.New(nil, newsapi.Config{
		APIKey:     cfg.NewsAPIKey,
		BaseURL:    cfg.NewsBaseURL,
		Timeout:    cfg.NewsTimeout,
		Mock:       cfg.NewsMock,
		RatePerSec: cfg.NewsRatePerSec,
		Burst:      cfg.NewsBurst,
	})
	adapter := news.NewAdapter(newsClient, logger, m, cfg.NewsTimeout)

	deps := apirouter.Deps{
		Dashboard:      dash,
		News:           adapter,
		Metrics:        m,
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
	}

	if cfg.FirestoreEnabled() {
		conn, err := firestoreclient.Connect(ctx, cfg)
		if err != nil {
			logger.Fatal("firestore init", zap.Error(err))
		}
		defer conn.Close()

		if err := conn.Ping(ctx, repository.SummaryCollection); err != nil {
			logger.Fatal("firestore ping", zap.Error(err))
		}
		logger.Info("connected to Firestore",
			zap.String("project", conn.Project),
			zap.String("credentials", conn.CredentialSource))
		deps.Publisher = repository.NewSummaryRepository(conn.Client)
	}

	router := apirouter.NewRouter(deps)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()
	logger.Info("server listening", zap.String("port", cfg.Port))

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
	logger.Info("server exited")
}
