// Package pipeline orchestrates the extract-and-sink cycle over report files.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/hydro-report-etl/internal/domain"
	"github.com/couchcryptid/hydro-report-etl/internal/observability"
)

// FileExtractor turns one report file into its extracted records.
type FileExtractor interface {
	ExtractFile(ctx context.Context, path string) (domain.FileResult, error)
}

// Sink receives the result of one file. A pipeline may fan out to several
// sinks (CSV, console, Kafka); each receives every result.
type Sink interface {
	Write(ctx context.Context, result domain.FileResult) error
}

// FileFailure records one file that could not be processed.
type FileFailure struct {
	Path string
	Err  error
}

// Summary aggregates a pipeline run over a set of files.
type Summary struct {
	Processed int
	Failed    int
	Records   int
	Failures  []FileFailure
}

// Pipeline runs extraction over report files and fans results out to sinks.
// Failures are isolated per file: one bad report never stops the batch.
type Pipeline struct {
	extractor FileExtractor
	sinks     []Sink
	logger    *slog.Logger
	metrics   *observability.Metrics
	ready     atomic.Bool
}

// New creates a Pipeline with the given extractor, sinks, and observability.
func New(e FileExtractor, sinks []Sink, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		extractor: e,
		sinks:     sinks,
		logger:    logger,
		metrics:   metrics,
	}
}

// Ready reports whether the pipeline has processed at least one file.
func (p *Pipeline) Ready() bool {
	return p.ready.Load()
}

// CheckReadiness returns nil once the pipeline has processed at least one
// file, or an error describing why the service is not yet ready.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("pipeline has not processed any files yet")
	}
	return nil
}

// Run processes each path in order and returns the aggregate summary. The
// returned error is non-nil only when the context was cancelled; per-file
// failures are reported through the summary.
func (p *Pipeline) Run(ctx context.Context, paths []string) (Summary, error) {
	var sum Summary
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		result, err := p.processFile(ctx, path)
		if err != nil {
			sum.Failed++
			sum.Failures = append(sum.Failures, FileFailure{Path: path, Err: err})
			continue
		}
		sum.Processed++
		sum.Records += len(result.Records)
	}
	return sum, nil
}

// ProcessFile extracts one file and writes the result to every sink.
func (p *Pipeline) ProcessFile(ctx context.Context, path string) error {
	_, err := p.processFile(ctx, path)
	return err
}

func (p *Pipeline) processFile(ctx context.Context, path string) (domain.FileResult, error) {
	start := time.Now()

	result, err := p.extractor.ExtractFile(ctx, path)
	if err != nil {
		p.metrics.FilesFailed.Inc()
		p.metrics.ExtractErrors.WithLabelValues(domain.ErrorKind(err)).Inc()
		p.logger.Error("extraction failed", "file", path, "error", err)
		return domain.FileResult{}, err
	}

	for _, sink := range p.sinks {
		if err := sink.Write(ctx, result); err != nil {
			p.metrics.FilesFailed.Inc()
			p.logger.Error("sink write failed", "file", path, "error", err)
			return domain.FileResult{}, err
		}
	}

	p.metrics.FilesProcessed.Inc()
	p.metrics.RecordsExtracted.Add(float64(len(result.Records)))
	p.metrics.SectionsDiscarded.Add(float64(result.DiscardedSections))
	p.metrics.FileProcessingDuration.Observe(time.Since(start).Seconds())
	p.ready.Store(true)

	p.logger.Info("file processed",
		"file", path,
		"county", result.County,
		"records", len(result.Records),
		"discarded_sections", result.DiscardedSections,
	)
	return result, nil
}
