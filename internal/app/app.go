package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	batchstore "github.com/heartmarshall/vaxsim/internal/adapter/memory/batch"
	memclock "github.com/heartmarshall/vaxsim/internal/adapter/memory/clock"
	inoculationlog "github.com/heartmarshall/vaxsim/internal/adapter/memory/inoculation"
	"github.com/heartmarshall/vaxsim/internal/config"
	"github.com/heartmarshall/vaxsim/internal/metrics"
	"github.com/heartmarshall/vaxsim/internal/service/batch"
	"github.com/heartmarshall/vaxsim/internal/service/clock"
	"github.com/heartmarshall/vaxsim/internal/service/inoculation"
	"github.com/heartmarshall/vaxsim/internal/transport/cli"
	"github.com/heartmarshall/vaxsim/internal/transport/rest"
)

// App owns the simulator state and the transports that drive it.
type App struct {
	cfg        *config.Config
	log        *slog.Logger
	dispatcher *cli.Dispatcher

	ops         *http.Server
	opsListener net.Listener
}

// New wires the stores, services and transports. Command results are
// written to out. When the ops server is enabled its address is bound here,
// so a busy port fails before any command is read.
func New(cfg *config.Config, log *slog.Logger, out io.Writer) (*App, error) {
	start, err := cfg.Clock.Start()
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	lang, err := cli.ParseLanguage(cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	// Stores.
	batches := batchstore.New(cfg.Store.MaxBatches)
	history := inoculationlog.New()
	today := memclock.New(start)

	// Services.
	batchService := batch.NewService(log, batches, today)
	inoculationService := inoculation.NewService(log, batches, history, today)
	clockService := clock.NewService(log, today)

	// Metrics.
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	dispatcher := cli.NewDispatcher(log, out, cli.NewMessages(lang),
		batchService, inoculationService, clockService,
	).WithMetrics(m, func() (int, int) { return batches.Len(), history.Len() })

	a := &App{cfg: cfg, log: log, dispatcher: dispatcher}

	if cfg.Ops.Enabled() {
		ln, err := net.Listen("tcp", cfg.Ops.Addr)
		if err != nil {
			return nil, fmt.Errorf("app: ops listen %s: %w", cfg.Ops.Addr, err)
		}
		a.opsListener = ln
		a.ops = &http.Server{
			Handler:           rest.NewRouter(log, rest.NewHealthHandler(BuildVersion()), reg),
			ReadHeaderTimeout: cfg.Ops.ReadHeaderTimeout,
		}
	}

	log.Info("simulator ready",
		slog.String("version", BuildVersion()),
		slog.String("language", lang.String()),
		slog.Int("max_batches", cfg.Store.MaxBatches),
		slog.String("start_date", start.String()),
		slog.Bool("ops_enabled", a.ops != nil),
	)

	return a, nil
}

// OpsAddr returns the bound address of the ops server, or "" when disabled.
func (a *App) OpsAddr() string {
	if a.opsListener == nil {
		return ""
	}
	return a.opsListener.Addr().String()
}

// Run processes commands from in until quit, end of input or ctx is done,
// then stops the ops server. A cancelled ctx is a normal shutdown; the
// command being read at that moment is abandoned.
func (a *App) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	serverErr := make(chan error, 1)
	if a.ops != nil {
		go func() {
			a.log.Info("ops server starting", slog.String("address", a.OpsAddr()))
			err := a.ops.Serve(a.opsListener)
			if errors.Is(err, http.ErrServerClosed) {
				err = nil
			}
			serverErr <- err
		}()
	}

	done := make(chan error, 1)
	go func() {
		done <- a.dispatcher.Run(ctx, in)
	}()

	var err error
	select {
	case err = <-done:
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	case err = <-serverErr:
		if err != nil {
			err = fmt.Errorf("app: ops server: %w", err)
		}
	case <-ctx.Done():
		a.log.Info("interrupted, shutting down")
	}

	if shutdownErr := a.shutdown(); shutdownErr != nil && err == nil {
		err = shutdownErr
	}
	return err
}

func (a *App) shutdown() error {
	if a.ops == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Ops.ShutdownTimeout)
	defer cancel()

	a.log.Info("shutting down ops server gracefully")
	if err := a.ops.Shutdown(ctx); err != nil {
		return fmt.Errorf("app: ops shutdown: %w", err)
	}
	return nil
}
