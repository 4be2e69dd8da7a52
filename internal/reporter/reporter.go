package reporter

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"load-harness/internal/models"
)

// Reporter owns the result output: it prints one stdout line per successful
// exchange and optionally appends every result to a CSV file.
type Reporter struct {
	ctx         context.Context
	wg          *sync.WaitGroup
	resultsChan <-chan models.ExchangeResult
	out         io.Writer
	outputFile  string
	runID       string
	logger      *slog.Logger
}

// New creates a new Reporter instance. out is the stream for the
// per-connection result lines, normally os.Stdout.
func New(ctx context.Context, wg *sync.WaitGroup, resultsChan <-chan models.ExchangeResult, out io.Writer, outputFile, runID string, logger *slog.Logger) *Reporter {
	return &Reporter{ctx, wg, resultsChan, out, outputFile, runID, logger}
}

// Run starts the reporter. It listens for results until the channel closes.
func (r *Reporter) Run() {
	defer r.wg.Done()
	reporterLogger := r.logger.With(slog.String("component", "reporter"))

	var writer *csv.Writer
	if r.outputFile != "" {
		file, err := os.Create(r.outputFile)
		if err != nil {
			// Results still go to stdout; only the CSV copy is lost.
			reporterLogger.Error("Failed to create output file, continuing without CSV.", "file", r.outputFile, "error", err)
		} else {
			defer file.Close()
			writer = csv.NewWriter(file)
			defer writer.Flush()
			if err := writer.Write(models.CSVHeader()); err != nil {
				reporterLogger.Error("Failed to write CSV header.", "error", err)
				writer = nil
			}
		}
	}
	reporterLogger.Debug("Reporter started.", "file", r.outputFile)

	emit := func(result models.ExchangeResult) {
		if result.Err == nil {
			fmt.Fprintf(r.out, "Connection took %f seconds\n", result.Latency.Seconds())
		} else {
			// Failed workers produce no stdout line.
			reporterLogger.Warn("Worker exchange failed.", "worker_id", result.WorkerID, "error", result.Err)
		}
		if writer != nil {
			if err := writer.Write(result.ToCSVRow(r.runID)); err != nil {
				reporterLogger.Error("Failed to write record.", "error", err)
			}
		}
	}

	for {
		select {
		case result, ok := <-r.resultsChan:
			if !ok {
				reporterLogger.Debug("Results channel closed. Shutting down.")
				return
			}
			emit(result)
		case <-r.ctx.Done():
			reporterLogger.Info("Shutdown signal received. Draining remaining results...")
			for result := range r.resultsChan {
				emit(result)
			}
			return
		}
	}
}
