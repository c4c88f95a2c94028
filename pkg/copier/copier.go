// Package copier streams the head of a source: bytes are copied one at a time
// until a number of boundary units has been emitted or the source runs dry.
package copier

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/sgaunet/gohead/pkg/constants"
)

var (
	// ErrRead is returned when the source fails before the boundary is reached.
	ErrRead = errors.New("failed to read from source")
	// ErrWrite is returned when the destination rejects output.
	ErrWrite = errors.New("failed to write to destination")
)

// BoundaryKind selects which byte counts as one unit.
type BoundaryKind int

const (
	// Byte counts every byte.
	Byte BoundaryKind = iota
	// Line counts newline characters.
	Line
	// ZeroDelimited counts NUL bytes.
	ZeroDelimited
)

func (k BoundaryKind) String() string {
	switch k {
	case Byte:
		return "bytes"
	case Line:
		return "lines"
	case ZeroDelimited:
		return "zero-terminated records"
	default:
		return fmt.Sprintf("BoundaryKind(%d)", int(k))
	}
}

// counts reports whether writing c consumes one unit.
func (k BoundaryKind) counts(c byte) bool {
	switch k {
	case Byte:
		return true
	case Line:
		return c == '\n'
	case ZeroDelimited:
		return c == 0
	default:
		return false
	}
}

// BufferedReader is a byte reader that can tell whether the next read may block.
type BufferedReader interface {
	io.ByteReader
	Buffered() int
}

// countdown tracks the units left to emit. Once remaining hits zero it stays there.
type countdown struct {
	kind      BoundaryKind
	remaining uint64
}

func (c *countdown) done() bool {
	return c.remaining == 0
}

func (c *countdown) observe(b byte) {
	if c.remaining > 0 && c.kind.counts(b) {
		c.remaining--
	}
}

// Copy writes the first magnitude units of src to dst and returns the number of
// bytes written. A final unterminated line or record is copied in full. With a
// magnitude of zero nothing is read or written.
//
// If src is a BufferedReader (such as a *bufio.Reader) it is used as is, so
// bytes it buffered past the boundary stay available to the next caller. A
// *bufio.Writer passed as dst is likewise used directly. Output is flushed
// before Copy returns and before every read that may block.
func Copy(dst io.Writer, src io.Reader, kind BoundaryKind, magnitude uint64) (int64, error) {
	if magnitude == 0 {
		return 0, nil
	}
	br, ok := src.(BufferedReader)
	if !ok {
		br = bufio.NewReaderSize(src, constants.CopyBufferSize)
	}
	bw := bufio.NewWriterSize(dst, constants.OutputBufferSize)

	var written int64
	cd := countdown{kind: kind, remaining: magnitude}
	for !cd.done() {
		if br.Buffered() == 0 {
			if err := bw.Flush(); err != nil {
				return written, fmt.Errorf("%w: %w", ErrWrite, err)
			}
		}
		c, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			if ferr := bw.Flush(); ferr != nil {
				return written, fmt.Errorf("%w: %w", ErrWrite, ferr)
			}
			return written, fmt.Errorf("%w: %w", ErrRead, err)
		}
		if err := bw.WriteByte(c); err != nil {
			return written, fmt.Errorf("%w: %w", ErrWrite, err)
		}
		written++
		cd.observe(c)
	}
	if err := bw.Flush(); err != nil {
		return written, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return written, nil
}
