// Package app runs gohead over a list of sources.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/sgaunet/gohead/pkg/config"
	"github.com/sgaunet/gohead/pkg/constants"
	"github.com/sgaunet/gohead/pkg/copier"
	"github.com/sgaunet/gohead/pkg/source"
)

// ErrSourcesFailed is returned by Run when at least one source could not be
// opened or copied. It wraps every per-source error.
var ErrSourcesFailed = errors.New("some sources could not be read")

// Logger is the logging interface used by App.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Info(msg string, args ...any)
}

// App prints the head of each source to stdout.
type App struct {
	cfg    config.RunConfig
	opener source.Opener
	stdout *bufio.Writer
	stderr io.Writer
	log    Logger
}

// NewApp returns an App. Content and headers go to stdout, diagnostics to stderr.
func NewApp(cfg config.RunConfig, opener source.Opener, stdout, stderr io.Writer) *App {
	return &App{
		cfg:    cfg,
		opener: opener,
		stdout: bufio.NewWriterSize(stdout, constants.OutputBufferSize),
		stderr: stderr,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// SetLogger sets the logger.
func (a *App) SetLogger(l Logger) {
	a.log = l
}

// Run processes args in order. No args means standard input. A source that
// fails is reported on stderr and skipped; Run then returns ErrSourcesFailed
// once every source has been tried.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{constants.StdinArg}
	}
	headers := a.cfg.ShowHeaders(len(args))
	a.log.Debug("starting", "sources", len(args), "unit", a.cfg.BoundaryKind, "count", a.cfg.Magnitude, "headers", headers)

	var errs []error
	for i, arg := range args {
		if err := a.process(ctx, arg, headers); err != nil {
			errs = append(errs, err)
			if ferr := a.report(err); ferr != nil {
				errs = append(errs, ferr)
			}
		}
		if i < len(args)-1 {
			if err := a.stdout.WriteByte('\n'); err != nil {
				errs = append(errs, fmt.Errorf("%w: %w", copier.ErrWrite, err))
			}
		}
	}
	if err := a.stdout.Flush(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", copier.ErrWrite, err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrSourcesFailed, errors.Join(errs...))
	}
	return nil
}

// process copies one source. The source is closed before returning.
func (a *App) process(ctx context.Context, arg string, header bool) error {
	src, err := a.opener.Open(ctx, arg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			a.log.Warn("failed to close source", "source", src.Label(), "error", cerr)
		}
	}()

	if header {
		if err := a.writeHeader(src.Label()); err != nil {
			return err
		}
	}
	n, err := copier.Copy(a.stdout, src, a.cfg.BoundaryKind, a.cfg.Magnitude)
	a.log.Debug("source copied", "source", src.Label(), "bytes", n)
	if err != nil {
		return fmt.Errorf("%s: %w", src.Label(), err)
	}
	return nil
}

func (a *App) writeHeader(label string) error {
	_, err := a.stdout.WriteString(constants.HeaderPrefix + label + constants.HeaderSuffix + "\n")
	if err != nil {
		return fmt.Errorf("%w: %w", copier.ErrWrite, err)
	}
	return nil
}

// report prints a diagnostic for err after whatever output preceded it. It
// returns the error of flushing that output, if any.
func (a *App) report(err error) error {
	var ferr error
	if flushErr := a.stdout.Flush(); flushErr != nil {
		a.log.Warn("failed to flush output", "error", flushErr)
		ferr = fmt.Errorf("%w: %w", copier.ErrWrite, flushErr)
	}
	fmt.Fprintf(a.stderr, "%s: %v\n", constants.ProgramName, err)
	a.log.Debug("source failed", "error", err)
	return ferr
}
