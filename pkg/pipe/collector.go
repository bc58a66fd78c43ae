// Package pipe collects a bounded amount of child process output
// through an os pipe.
package pipe

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Collector owns the read end of the pipe; W is handed to the child as
// stdout or stderr and must be closed by the caller once the child has
// started. Bytes and Truncated are valid after Wait returns.
type Collector struct {
	W    *os.File
	max  int64
	buf  *bytes.Buffer
	done chan struct{}
}

// NewCollector creates the pipe and starts draining its read end. Up to
// max+1 bytes are retained so overflow stays observable; the remainder
// is discarded to keep the writer from blocking.
func NewCollector(max int64) (*Collector, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	c := &Collector{
		W:    w,
		max:  max,
		buf:  new(bytes.Buffer),
		done: make(chan struct{}),
	}
	go func() {
		io.CopyN(c.buf, r, max+1)
		close(c.done)
		io.Copy(io.Discard, r)
		r.Close()
	}()
	return c, nil
}

// Wait blocks until the write side has been closed by every holder.
func (c *Collector) Wait() {
	<-c.done
}

// Bytes returns the collected output clamped to max.
func (c *Collector) Bytes() []byte {
	b := c.buf.Bytes()
	if int64(len(b)) > c.max {
		return b[:c.max]
	}
	return b
}

// Truncated reports whether the producer wrote more than max bytes.
func (c *Collector) Truncated() bool {
	return int64(c.buf.Len()) > c.max
}

func (c *Collector) String() string {
	return fmt.Sprintf("Collector[%d/%d]", c.buf.Len(), c.max)
}
