package client

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"net"
	"sync"
	"time"

	"load-harness/internal/models"
)

// payload is the fixed message every worker sends exactly once per connection.
const payload = "Hello, World!"

// readBufSize matches the server contract: both the welcome banner and the
// response are at most 1024 bytes.
const readBufSize = 1024

// Exchanger defines the interface for one scripted client exchange.
type Exchanger interface {
	Exchange(ctx context.Context, workerID int) models.ExchangeResult
}

// ConnExchanger dials a real TCP connection for every exchange.
type ConnExchanger struct {
	Addr     string
	MaxStall time.Duration // upper bound of each random idle stall
	Timeout  time.Duration // per-operation deadline; 0 disables deadlines
	Logger   *slog.Logger
}

// NewConnExchanger creates a new instance of a ConnExchanger.
func NewConnExchanger(addr string, maxStall, timeout time.Duration, logger *slog.Logger) *ConnExchanger {
	return &ConnExchanger{Addr: addr, MaxStall: maxStall, Timeout: timeout, Logger: logger}
}

// Exchange performs the full scripted exchange on a fresh connection: read
// the welcome banner, stall, send the payload, read the response, stall
// again, close. Only the send/response pair is timed; both stalls fall
// outside the measured window. Any failure aborts the exchange and is
// carried in the result; there are no retries.
func (e *ConnExchanger) Exchange(ctx context.Context, workerID int) models.ExchangeResult {
	result := models.ExchangeResult{Timestamp: time.Now(), WorkerID: workerID}

	e.Logger.Debug("Attempting to dial target.",
		"worker_id", workerID,
		"addr", e.Addr,
		"timeout", e.Timeout,
	)

	dialer := net.Dialer{Timeout: e.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", e.Addr)
	if err != nil {
		result.Err = fmt.Errorf("connect %s: %w", e.Addr, err)
		e.Logger.Debug("Failed to dial target.", "worker_id", workerID, "addr", e.Addr, "error", err)
		return result
	}
	defer conn.Close()

	buf := make([]byte, readBufSize)

	// Welcome banner; contents are discarded.
	if err := e.armDeadline(conn); err != nil {
		result.Err = err
		return result
	}
	if _, err := conn.Read(buf); err != nil {
		result.Err = fmt.Errorf("read welcome: %w", err)
		return result
	}

	e.stall()

	if err := e.armDeadline(conn); err != nil {
		result.Err = err
		return result
	}
	start := time.Now()
	if _, err := conn.Write([]byte(payload)); err != nil {
		result.Err = fmt.Errorf("send payload: %w", err)
		return result
	}
	if _, err := conn.Read(buf); err != nil {
		result.Err = fmt.Errorf("read response: %w", err)
		return result
	}
	result.Latency = time.Since(start)

	e.stall()

	e.Logger.Debug("Exchange complete.",
		"worker_id", workerID,
		"addr", e.Addr,
		"latency_ms", result.Latency.Seconds()*1000,
	)
	return result
}

func (e *ConnExchanger) armDeadline(conn net.Conn) error {
	if e.Timeout <= 0 {
		return nil
	}
	return conn.SetDeadline(time.Now().Add(e.Timeout))
}

// stall sleeps for a uniformly random duration in [0, MaxStall).
func (e *ConnExchanger) stall() {
	if e.MaxStall <= 0 {
		return
	}
	time.Sleep(time.Duration(rand.Int63n(int64(e.MaxStall))))
}

// Worker is a goroutine that performs exactly one exchange and reports its
// result. Each worker exclusively owns its connection from open to close, so
// a failure never affects sibling workers.
func Worker(ctx context.Context, wg *sync.WaitGroup, id int, parentLogger *slog.Logger, e Exchanger, results chan<- models.ExchangeResult) {
	defer wg.Done()
	workerLogger := parentLogger.With(slog.Int("worker_id", id))
	workerLogger.Debug("Worker started.")

	result := e.Exchange(ctx, id)

	select {
	case results <- result:
	case <-ctx.Done():
		workerLogger.Warn("Context canceled. Dropping result.")
		return
	}
	workerLogger.Debug("Worker finished.")
}
