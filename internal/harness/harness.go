package harness

import (
	"context"
	"io"
	"log/slog"
	"net"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"

	"load-harness/config"
	"load-harness/internal/client"
	"load-harness/internal/models"
	"load-harness/internal/reporter"
)

// Harness launches the configured number of concurrent connection workers
// and blocks until every worker and the reporter have finished.
type Harness struct {
	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer
	runID  string
}

// New creates a new Harness. out receives the per-connection result lines,
// normally os.Stdout.
func New(cfg *config.Config, logger *slog.Logger, out io.Writer, runID string) *Harness {
	return &Harness{cfg: cfg, logger: logger, out: out, runID: runID}
}

// Run performs one complete harness run. In the default mode worker faults
// are logged and swallowed and Run always returns nil; in strict mode the
// first worker fault is returned after all workers have completed.
func (h *Harness) Run(ctx context.Context) error {
	if h.cfg.Connections == 0 {
		h.logger.Info("No connections requested, nothing to do.")
		return nil
	}

	addr := net.JoinHostPort(h.cfg.Host, strconv.Itoa(h.cfg.Port))
	exchanger := client.NewConnExchanger(addr, h.cfg.MaxStall, h.cfg.Timeout, h.logger)

	// Buffered to the worker count so no worker ever blocks on reporting.
	resultsChan := make(chan models.ExchangeResult, h.cfg.Connections)
	var reporterWg sync.WaitGroup

	reporterWg.Add(1)
	go reporter.New(ctx, &reporterWg, resultsChan, h.out, h.cfg.OutputFile, h.runID, h.logger).Run()

	h.logger.Info("Launching workers.", "connections", h.cfg.Connections, "addr", addr, "strict", h.cfg.Strict)

	var runErr error
	if h.cfg.Strict {
		// Plain group, not errgroup.WithContext: a failing worker must not
		// cancel its siblings mid-exchange.
		g := new(errgroup.Group)
		for i := 1; i <= h.cfg.Connections; i++ {
			id := i
			g.Go(func() error {
				result := exchanger.Exchange(ctx, id)
				resultsChan <- result
				return result.Err
			})
		}
		runErr = g.Wait()
	} else {
		var wg sync.WaitGroup
		for i := 1; i <= h.cfg.Connections; i++ {
			wg.Add(1)
			go client.Worker(ctx, &wg, i, h.logger, exchanger, resultsChan)
		}
		wg.Wait()
	}

	close(resultsChan)
	reporterWg.Wait()
	h.logger.Info("All workers finished.")
	return runErr
}
