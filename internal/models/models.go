package models

import (
	"fmt"
	"strconv"
	"time"
)

// ExchangeResult holds the outcome of a single worker's connection exchange.
type ExchangeResult struct {
	Timestamp time.Time
	WorkerID  int
	Latency   time.Duration
	Err       error
}

// ToCSVRow converts an ExchangeResult into a slice of strings for CSV writing.
func (r *ExchangeResult) ToCSVRow(runID string) []string {
	status := "OK"
	if r.Err != nil {
		status = fmt.Sprintf("ERROR: %v", r.Err)
	}
	return []string{
		r.Timestamp.Format(time.RFC3339),
		runID,
		strconv.Itoa(r.WorkerID),
		fmt.Sprintf("%.6f", r.Latency.Seconds()),
		status,
	}
}

// CSVHeader returns the header row for the results CSV file.
func CSVHeader() []string {
	return []string{"timestamp", "run_id", "worker_id", "latency_s", "status"}
}
