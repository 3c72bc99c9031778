// Package kafkasink publishes extracted records to a Kafka topic.
package kafkasink

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/hydro-report-etl/internal/config"
	"github.com/couchcryptid/hydro-report-etl/internal/domain"
)

// Writer produces one message per extracted record.
// It implements pipeline.Sink.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// Write publishes every record of the file in a single WriteMessages call.
func (w *Writer) Write(ctx context.Context, result domain.FileResult) error {
	if len(result.Records) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(result.Records))
	for i, r := range result.Records {
		msg, err := serializeToMessage(result, r)
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("publish records: %w", err)
	}
	w.logger.Debug("records published", "file", result.SourceFile, "count", len(msgs))
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals one record into a Kafka message. The key joins
// the report's base name with the node label so records from re-processed
// files land on stable partitions.
func serializeToMessage(result domain.FileResult, record domain.Record) (kafkago.Message, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize record: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(filepath.Base(result.SourceFile) + "|" + record.Label),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "county", Value: []byte(result.County.DisplayName())},
			{Key: "processed_at", Value: []byte(result.ProcessedAt.Format(time.RFC3339))},
		},
	}, nil
}
