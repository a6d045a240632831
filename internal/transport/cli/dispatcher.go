// Package cli implements the line-oriented command protocol of the simulator:
// one command per input line, zero or more result lines per command.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/vaxsim/internal/domain"
	"github.com/heartmarshall/vaxsim/internal/metrics"
	"github.com/heartmarshall/vaxsim/internal/service/batch"
	"github.com/heartmarshall/vaxsim/internal/service/clock"
	"github.com/heartmarshall/vaxsim/internal/service/inoculation"
	"github.com/heartmarshall/vaxsim/pkg/ctxutil"
)

type batchService interface {
	CreateBatch(ctx context.Context, input batch.CreateBatchInput) (*domain.Batch, error)
	ListBatches(ctx context.Context, input batch.ListBatchesInput) []batch.Listing
	RemoveBatch(ctx context.Context, input batch.RemoveBatchInput) (int, error)
}

type inoculationService interface {
	ApplyVaccine(ctx context.Context, input inoculation.ApplyVaccineInput) (*domain.Inoculation, error)
	ListHistory(ctx context.Context, input inoculation.ListHistoryInput) ([]domain.Inoculation, error)
	DeleteHistory(ctx context.Context, input inoculation.DeleteHistoryInput) (int, error)
}

type clockService interface {
	AdvanceClock(ctx context.Context, input clock.AdvanceClockInput) (domain.Date, error)
}

// SizeFunc reports the current number of batches and inoculation records.
type SizeFunc func() (batches, inoculations int)

// Dispatcher reads commands, runs them against the services and writes the
// result lines. It is not safe for concurrent use.
type Dispatcher struct {
	batches      batchService
	inoculations inoculationService
	clock        clockService
	msgs         Messages
	log          *slog.Logger

	metrics *metrics.Metrics
	sizes   SizeFunc

	out *bufio.Writer
}

// NewDispatcher creates a Dispatcher writing to out.
func NewDispatcher(
	log *slog.Logger,
	out io.Writer,
	msgs Messages,
	batches batchService,
	inoculations inoculationService,
	clock clockService,
) *Dispatcher {
	return &Dispatcher{
		batches:      batches,
		inoculations: inoculations,
		clock:        clock,
		msgs:         msgs,
		log:          log.With("transport", "cli"),
		out:          bufio.NewWriter(out),
	}
}

// WithMetrics makes the dispatcher count every handled command on m and
// refresh the size gauges from sizes after each one.
func (d *Dispatcher) WithMetrics(m *metrics.Metrics, sizes SizeFunc) *Dispatcher {
	d.metrics = m
	d.sizes = sizes
	return d
}

// Run handles lines from r until a quit command, end of input or ctx is done.
// Only read and write failures are returned; command errors are reported on
// the output stream.
func (d *Dispatcher) Run(ctx context.Context, r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("read command: %w", readErr)
		}
		line = strings.TrimRight(line, "\r\n")

		if line != "" {
			quit, err := d.Handle(ctx, line)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}

		if readErr != nil {
			return nil
		}
	}
}

// Handle runs a single command line. quit is true for the quit command.
// Unrecognized and malformed lines produce no output.
func (d *Dispatcher) Handle(ctx context.Context, line string) (quit bool, err error) {
	name, ok := commandName(line)
	if !ok {
		d.log.DebugContext(ctx, "unrecognized command ignored", slog.String("line", line))
		return false, nil
	}
	if name == cmdQuit {
		d.observe(name, nil)
		return true, nil
	}

	ctx = ctxutil.WithCommandID(ctx, uuid.New())
	ctx = ctxutil.WithCommandName(ctx, name)

	cmdErr := d.exec(ctx, name, args(line))
	if errors.Is(cmdErr, errMalformed) {
		d.log.DebugContext(ctx, "malformed command ignored", ctxutil.LogAttrs(ctx, slog.String("line", line))...)
		return false, d.out.Flush()
	}

	d.observe(name, cmdErr)
	if cmdErr != nil {
		if err := d.report(ctx, cmdErr); err != nil {
			return false, err
		}
	}
	if err := d.out.Flush(); err != nil {
		return false, fmt.Errorf("write output: %w", err)
	}
	return false, nil
}

func (d *Dispatcher) exec(ctx context.Context, name, rest string) error {
	switch name {
	case cmdCreate:
		return d.createBatch(ctx, rest)
	case cmdList:
		return d.listBatches(ctx, rest)
	case cmdApply:
		return d.applyVaccine(ctx, rest)
	case cmdRemove:
		return d.removeBatch(ctx, rest)
	case cmdDeleteHistory:
		return d.deleteHistory(ctx, rest)
	case cmdUserHistory:
		return d.userHistory(ctx, rest)
	case cmdTime:
		return d.advanceClock(ctx, rest)
	}
	return errMalformed
}

// ---------------------------------------------------------------------------
// Commands
// ---------------------------------------------------------------------------

func (d *Dispatcher) createBatch(ctx context.Context, rest string) error {
	input, err := parseCreate(rest)
	if err != nil {
		return err
	}
	b, err := d.batches.CreateBatch(ctx, input)
	if err != nil {
		return err
	}
	return d.println(b.ID)
}

// listBatches reports per-name failures inline so the remaining names are
// still listed.
func (d *Dispatcher) listBatches(ctx context.Context, rest string) error {
	for _, l := range d.batches.ListBatches(ctx, parseList(rest)) {
		if l.Err != nil {
			if err := d.report(ctx, l.Err); err != nil {
				return err
			}
			continue
		}
		for _, b := range l.Batches {
			if err := d.println(formatBatch(b)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Dispatcher) applyVaccine(ctx context.Context, rest string) error {
	input, err := parseApply(rest)
	if err != nil {
		return err
	}
	rec, err := d.inoculations.ApplyVaccine(ctx, input)
	if err != nil {
		return err
	}
	if d.metrics != nil {
		d.metrics.DosesApplied.Inc()
	}
	return d.println(rec.BatchID)
}

func (d *Dispatcher) removeBatch(ctx context.Context, rest string) error {
	input, err := parseRemove(rest)
	if err != nil {
		return err
	}
	applications, err := d.batches.RemoveBatch(ctx, input)
	if err != nil {
		return err
	}
	return d.println(strconv.Itoa(applications))
}

func (d *Dispatcher) deleteHistory(ctx context.Context, rest string) error {
	input, err := parseDeleteHistory(rest)
	if err != nil {
		return err
	}
	deleted, err := d.inoculations.DeleteHistory(ctx, input)
	if err != nil {
		return err
	}
	return d.println(strconv.Itoa(deleted))
}

func (d *Dispatcher) userHistory(ctx context.Context, rest string) error {
	input, err := parseUserHistory(rest)
	if err != nil {
		return err
	}
	records, err := d.inoculations.ListHistory(ctx, input)
	if err != nil {
		return err
	}
	for _, rec := range records {
		if err := d.println(formatInoculation(rec)); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dispatcher) advanceClock(ctx context.Context, rest string) error {
	today, err := d.clock.AdvanceClock(ctx, parseTime(rest))
	if err != nil {
		return err
	}
	return d.println(today.String())
}

// ---------------------------------------------------------------------------
// Output
// ---------------------------------------------------------------------------

// report writes the localized line of a command error. Errors outside the
// command taxonomy are logged and produce no output.
func (d *Dispatcher) report(ctx context.Context, cmdErr error) error {
	var wErr *writeError
	if errors.As(cmdErr, &wErr) {
		return wErr
	}

	line, ok := d.msgs.Line(cmdErr)
	if !ok {
		d.log.ErrorContext(ctx, "command failed", ctxutil.LogAttrs(ctx, slog.String("error", cmdErr.Error()))...)
		return nil
	}
	d.log.DebugContext(ctx, "command rejected", ctxutil.LogAttrs(ctx, slog.String("code", domain.Code(cmdErr)))...)
	return d.println(line)
}

// writeError marks a failure of the output stream, which ends the run.
type writeError struct{ err error }

func (e *writeError) Error() string { return "write output: " + e.err.Error() }
func (e *writeError) Unwrap() error { return e.err }

func (d *Dispatcher) println(s string) error {
	if _, err := d.out.WriteString(s); err != nil {
		return &writeError{err: err}
	}
	if err := d.out.WriteByte('\n'); err != nil {
		return &writeError{err: err}
	}
	return nil
}

func (d *Dispatcher) observe(name string, err error) {
	if d.metrics == nil {
		return
	}
	d.metrics.ObserveCommand(name, domain.Code(err))
	if d.sizes != nil {
		d.metrics.SetSizes(d.sizes())
	}
}

func formatBatch(b domain.Batch) string {
	return fmt.Sprintf("%s %s %s %d %d", b.Name, b.ID, b.Expiry, b.Doses, b.Applications)
}

func formatInoculation(rec domain.Inoculation) string {
	return fmt.Sprintf("%s %s %s", rec.UserName, rec.BatchID, rec.AppliedOn)
}
