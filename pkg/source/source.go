// Package source resolves command-line arguments into readable inputs.
package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/sgaunet/gohead/pkg/constants"
)

var (
	// ErrSourceOpen is returned when an argument cannot be opened for reading.
	ErrSourceOpen = errors.New("cannot open")
	// ErrNoRemote is returned for s3:// arguments when no S3 opener is configured.
	ErrNoRemote = errors.New("no S3 source configured")
)

// Source is an opened input together with the label used in its header.
// Reads go through a bounded buffer.
type Source struct {
	label  string
	r      *bufio.Reader
	closer io.Closer
}

// New returns a Source reading from r. A nil closer marks a source whose
// lifetime is not owned by the caller, such as standard input. If r is
// already a large enough *bufio.Reader it is read directly.
func New(label string, r io.Reader, closer io.Closer) *Source {
	return &Source{
		label:  label,
		r:      bufio.NewReaderSize(r, constants.CopyBufferSize),
		closer: closer,
	}
}

// Label returns the header label of the source.
func (s *Source) Label() string {
	return s.label
}

func (s *Source) Read(p []byte) (int, error) {
	return s.r.Read(p)
}

// ReadByte reads a single byte.
func (s *Source) ReadByte() (byte, error) {
	return s.r.ReadByte()
}

// Buffered returns the number of bytes that can be read without touching the
// underlying handle.
func (s *Source) Buffered() int {
	return s.r.Buffered()
}

// Close releases the underlying handle. Closing standard input is a no-op.
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// Opener opens a single positional argument.
type Opener interface {
	Open(ctx context.Context, arg string) (*Source, error)
}

// Resolver dispatches arguments: "-" to standard input, s3:// URIs to the
// remote opener and everything else to the local file system.
type Resolver struct {
	stdin  *bufio.Reader
	remote Opener
}

// NewResolver returns a Resolver reading standard input from stdin. The
// reader is buffered once so data read ahead for one "-" argument is still
// there for the next.
func NewResolver(stdin io.Reader) *Resolver {
	return &Resolver{
		stdin: bufio.NewReaderSize(stdin, constants.CopyBufferSize),
	}
}

// SetRemote sets the opener used for s3:// arguments.
func (r *Resolver) SetRemote(o Opener) {
	r.remote = o
}

// Open opens arg for reading.
func (r *Resolver) Open(ctx context.Context, arg string) (*Source, error) {
	switch {
	case arg == constants.StdinArg:
		return New(constants.StdinLabel, r.stdin, nil), nil
	case strings.HasPrefix(arg, constants.S3Scheme):
		if r.remote == nil {
			return nil, fmt.Errorf("%w %q: %w", ErrSourceOpen, arg, ErrNoRemote)
		}
		return r.remote.Open(ctx, arg)
	default:
		return openFile(arg)
	}
}

func openFile(path string) (*Source, error) {
	f, err := os.Open(path) //nolint:gosec // G304: reading user-named files is the point
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = pathErr.Err
		}
		return nil, fmt.Errorf("%w %q: %w", ErrSourceOpen, path, err)
	}
	return New(path, f, f), nil
}
