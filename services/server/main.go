package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"net/http/pprof"

	"github.com/RuvinSL/content-seo-check/pkg/config"
	"github.com/RuvinSL/content-seo-check/pkg/httpclient"
	"github.com/RuvinSL/content-seo-check/pkg/interfaces"
	"github.com/RuvinSL/content-seo-check/pkg/logger"
	"github.com/RuvinSL/content-seo-check/pkg/metrics"
	"github.com/RuvinSL/content-seo-check/services/server/core"
	"github.com/RuvinSL/content-seo-check/services/server/handlers"
	"github.com/RuvinSL/content-seo-check/services/server/middleware"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const serviceName = "seo-check-server"

func main() {
	// Configuration (.env + environment)
	cfg := config.Load()

	// Initialize structured logger
	log := logger.New(serviceName, cfg.LogLevel)

	// Initialize metrics
	metricsCollector := metrics.NewPrometheusCollector(serviceName)
	prometheus.MustRegister(metricsCollector.GetCollectors()...)

	// Proxy vs mock is decided once at startup: an engine client only
	// exists when CORE_ENGINE_URL is set.
	var engineClient interfaces.EngineClient
	if cfg.MockMode() {
		log.Info("No core engine configured, running in mock mode")
	} else {
		httpClient := httpclient.New(cfg.EngineTimeout, log)
		engineClient = handlers.NewEngineClient(cfg.CoreEngineURL, httpClient, cfg.EngineTimeout, log)
		log.Info("Forwarding analysis requests to core engine", "engine_url", cfg.CoreEngineURL)
	}

	synthesizer := core.NewMockSynthesizer(cfg.MockDelay, log)

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler(engineClient, synthesizer, log, metricsCollector)
	webHandler := handlers.NewWebHandler(log)
	healthHandler := handlers.NewHealthHandler(serviceName, engineClient)

	// Setup routes
	router := mux.NewRouter()

	// Apply middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging(log))
	router.Use(middleware.Metrics(metricsCollector))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS())

	// API routes
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/analyze", analyzeHandler.Analyze).Methods("POST", "OPTIONS")

	// Web UI routes, with the home page as the fallback for unmatched paths
	router.HandleFunc("/", webHandler.HomePage).Methods("GET")
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("./web/static"))))
	router.NotFoundHandler = http.HandlerFunc(webHandler.HomePage)

	// Health and monitoring routes
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.Handle("/metrics", promhttp.Handler())

	// pprof routes for profiling
	router.HandleFunc("/debug/pprof/", pprof.Index)
	router.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	router.HandleFunc("/debug/pprof/profile", pprof.Profile)
	router.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	router.HandleFunc("/debug/pprof/trace", pprof.Trace)
	router.Handle("/debug/pprof/heap", pprof.Handler("heap"))
	router.Handle("/debug/pprof/goroutine", pprof.Handler("goroutine"))

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Starting content SEO check server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	log.Info("Server exited")
}
