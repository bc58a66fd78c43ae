// Package echofilter implements the single-shot sandboxed echo: one
// line in, one line out, with alert entries in the bait log for
// anything matching the keyword set.
package echofilter

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/isol8r/sandtrap/pkg/baitlog"
)

// DefaultLogPath is the echo side bait log sink. Distinct from the
// harness sink in the observed deployment.
const DefaultLogPath = "/tmp/bait.log"

// MaxLine caps the input line, terminator excluded.
const MaxLine = 511

// keywords trip the alert path on any case-sensitive substring hit.
var keywords = []string{
	"flag",
	"FLAG",
	"Flag",
	"syscall",
	"ptrace",
	"open",
	"read",
	"write",
	"mmap",
	"exec",
	"binsh",
	"cat /",
	"sh",
	"bash",
}

// Suspicious reports whether line contains any alert keyword.
func Suspicious(line string) bool {
	for _, k := range keywords {
		if strings.Contains(line, k) {
			return true
		}
	}
	return false
}

// Filter is the echo pipeline for one invocation.
type Filter struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Log    *baitlog.Logger

	// Interactive records whether stdin is connected to a terminal.
	Interactive bool
}

// Run processes exactly one line and returns the process exit code.
func (f *Filter) Run() int {
	if f.Interactive {
		f.Log.Entry("notice", "stdin connected to tty; someone is poking the sandbox manually")
	}

	line, ok, err := readLine(f.Stdin)
	if err != nil {
		f.Log.Entry("error", "failed to read stdin")
		fmt.Fprintln(f.Stderr, "[sandboxed_echo] fatal: unable to read input")
		return 1
	}
	if !ok {
		f.Log.Entry("warning", "received empty stdin")
		fmt.Fprintln(f.Stdout, "[sandboxed] no input received")
		return 0
	}

	if i := strings.IndexAny(line, "\r\n"); i >= 0 {
		line = line[:i]
	}

	fmt.Fprintln(f.Stdout, line)
	f.Log.Entry("echo", line)

	if Suspicious(line) {
		fmt.Fprintf(f.Stderr, "[TRAP] User tried command: %s\n", line)
		f.Log.Entry("alert", line)
		fmt.Fprintln(f.Stderr, "[sandboxed_echo] suspicious content detected; event logged")
	} else {
		fmt.Fprintln(f.Stderr, "[sandboxed_echo] input classified as boring")
	}
	return 0
}

// readLine reads up to MaxLine bytes, stopping after a newline. ok is
// false when the stream ends before any byte arrives.
func readLine(r io.Reader) (line string, ok bool, err error) {
	br := bufio.NewReader(r)
	var sb strings.Builder
	for sb.Len() < MaxLine {
		c, err := br.ReadByte()
		if err == io.EOF {
			if sb.Len() == 0 {
				return "", false, nil
			}
			break
		}
		if err != nil {
			return "", false, err
		}
		sb.WriteByte(c)
		if c == '\n' {
			break
		}
	}
	return sb.String(), true, nil
}
