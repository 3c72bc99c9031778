package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/hydro-report-etl/internal/adapter/csvsink"
	"github.com/couchcryptid/hydro-report-etl/internal/adapter/httpserver"
	"github.com/couchcryptid/hydro-report-etl/internal/adapter/kafkasink"
	"github.com/couchcryptid/hydro-report-etl/internal/observability"
	"github.com/couchcryptid/hydro-report-etl/internal/pipeline"
	"github.com/couchcryptid/hydro-report-etl/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Continuously process reports dropped into a directory",
	Long: `Run as a service: watch a directory for new or modified rational
method report files and extract each one as it settles. Health,
readiness, and Prometheus metrics endpoints are served over HTTP, and
records can additionally be published to Kafka (set KAFKA_BROKERS).

Example:
  hydroparse watch /srv/hydrology/incoming`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := observability.NewMetrics()

	sinks := []pipeline.Sink{csvsink.NewWriter(digits, logger)}
	var kafkaWriter *kafkasink.Writer
	if cfg.KafkaEnabled() {
		kafkaWriter = kafkasink.NewWriter(cfg, logger)
		sinks = append(sinks, kafkaWriter)
		logger.Info("kafka sink enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	p := pipeline.New(newExtractor(), sinks, logger, metrics)

	watcher, err := watch.New(args[0], p, cfg.WatchDebounce, logger)
	if err != nil {
		return err
	}

	srv := httpserver.NewServer(cfg.HTTPAddr, p, logger)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	metrics.WatcherRunning.Set(1)
	runErr := watcher.Run(ctx)
	metrics.WatcherRunning.Set(0)

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := watcher.Close(); err != nil {
		logger.Error("watcher close error", "error", err)
	}
	if kafkaWriter != nil {
		if err := kafkaWriter.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}
	return runErr
}
