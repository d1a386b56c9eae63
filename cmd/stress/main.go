// Command stress drives the thread package end to end: it spawns a
// configurable number of threads that each bump a shared counter, joins them
// all, and reports the result. With METRICS_ADDR set it also exposes
// Prometheus metrics while running.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Tateev/threadapi/internal/infrastructure/config"
	"github.com/Tateev/threadapi/internal/infrastructure/monitoring"
	"github.com/Tateev/threadapi/internal/logging"
	"github.com/Tateev/threadapi/thread"
)

func main() {
	cfg := config.LoadOrDefault()

	workers := flag.Int("workers", cfg.Stress.Workers, "Number of threads to spawn")
	limit := flag.Int64("limit", cfg.Threads.Limit, "Max concurrently live threads (0 = unlimited)")
	metricsAddr := flag.String("metrics", cfg.Metrics.Addr, "Metrics listen address (empty = disabled)")
	flag.Parse()

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		OutputPaths: []string{"stdout"},
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	reg := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(reg)

	spawner := thread.NewSpawner(
		thread.WithLimit(*limit),
		thread.WithLogger(logger.Logger),
		thread.WithObserver(metrics),
	)

	if *metricsAddr != "" {
		go serveMetrics(*metricsAddr, reg, logger.Logger)
	}

	logger.Info("stress starting",
		zap.Int("workers", *workers),
		zap.Int64("limit", *limit),
		zap.Stringer("main_thread", thread.Current()),
	)

	var counter atomic.Int64
	start := time.Now()

	handles := make([]*thread.Thread, 0, *workers)
	for i := 0; i < *workers; i++ {
		t, err := spawner.Spawn(func() {
			counter.Add(1)
		})
		if err != nil {
			logger.Error("spawn refused", zap.Error(err))
			continue
		}
		handles = append(handles, t)
	}

	for _, t := range handles {
		if err := t.Join(); err != nil {
			logger.Error("join failed", zap.Error(err))
		}
	}

	logger.Info("stress finished",
		zap.Int64("counter", counter.Load()),
		zap.Int("spawned", len(handles)),
		zap.Duration("elapsed", time.Since(start)),
	)

	if *metricsAddr != "" {
		logger.Info("serving metrics until interrupted", zap.String("addr", *metricsAddr))
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		logger.Info("shutting down")
	}
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *zap.Logger) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if err := router.Run(addr); err != nil {
		logger.Error("metrics server stopped", zap.Error(err))
	}
}
