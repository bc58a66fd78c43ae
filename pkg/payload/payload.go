// Package payload ingests the operator-supplied byte sequence destined
// for execution: bounded buffered reads from stdin or a named file.
package payload

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/isol8r/sandtrap/pkg/memzero"
)

// MaxSize caps the accepted payload length in bytes.
const MaxSize = 4096

// ErrTooLarge reports a stream still holding bytes after MaxSize were read.
var ErrTooLarge = errors.New("payload: exceeds 4096 bytes")

// ErrUsage reports more positional arguments than the source selection
// understands.
var ErrUsage = errors.New("payload: too many arguments")

// Buffer holds one ingested payload. It is exclusively owned by the
// admission controller after Read returns.
type Buffer struct {
	Data      []byte
	FromStdin bool
}

// Zero wipes the payload bytes in place.
func (b *Buffer) Zero() {
	memzero.Clear(b.Data)
}

// HasNull reports whether the payload contains a 0x00 byte.
func (b *Buffer) HasNull() bool {
	return bytes.IndexByte(b.Data, 0) >= 0
}

// Open resolves the payload source from the positional arguments: no
// argument or "-" selects stdin, a single path selects the named file
// opened for binary read. The caller closes the returned file unless it
// is stdin.
func Open(args []string) (f *os.File, fromStdin bool, err error) {
	switch len(args) {
	case 0:
		return os.Stdin, true, nil
	case 1:
		if args[0] == "-" {
			return os.Stdin, true, nil
		}
		f, err := os.Open(args[0])
		if err != nil {
			return nil, false, err
		}
		return f, false, nil
	default:
		return nil, false, ErrUsage
	}
}

// Read fills a buffer with up to MaxSize bytes from r, stopping at
// end-of-stream or a zero-byte read. ErrTooLarge is returned when the
// stream still has bytes once the cap is reached; a stream of exactly
// MaxSize bytes is accepted.
func Read(r io.Reader, fromStdin bool) (*Buffer, error) {
	data := make([]byte, MaxSize)
	total := 0
	for total < MaxSize {
		n, err := r.Read(data[total:])
		total += n
		if err == io.EOF || (n == 0 && err == nil) {
			return &Buffer{Data: data[:total], FromStdin: fromStdin}, nil
		}
		if err != nil {
			return nil, err
		}
	}

	// cap reached; probe whether the stream ends right here
	var probe [1]byte
	n, err := r.Read(probe[:])
	if n > 0 {
		return nil, ErrTooLarge
	}
	if err != nil && err != io.EOF {
		return nil, err
	}
	return &Buffer{Data: data, FromStdin: fromStdin}, nil
}
