// Package baitlog appends honeypot trail entries to the flat bait log.
//
// Two line schemas co-exist as contracts for existing log consumers: the
// harness schema stamps lines with "2006-01-02 15:04:05" while the echo
// schema uses "2006-01-02T15:04:05Z". Logging never terminates the
// caller; an unopenable log yields a single stderr diagnostic.
package baitlog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

const (
	harnessLayout = "2006-01-02 15:04:05"
	echoLayout    = "2006-01-02T15:04:05Z"

	// fallbackStamp substitutes a wall clock that cannot be formatted.
	fallbackStamp = "1970-01-01 00:00:00"

	// previewBytes caps the hex dump of an offending payload.
	previewBytes = 16
)

// Logger appends newline-terminated entries to the log at Path.
// Zero values of Stderr and Now fall back to os.Stderr and time.Now.
type Logger struct {
	Path   string
	Prefix string // diagnostic prefix, e.g. "[tiny_vmmgr]"
	Stderr io.Writer
	Now    func() time.Time
}

func (l *Logger) stderr() io.Writer {
	if l.Stderr != nil {
		return l.Stderr
	}
	return os.Stderr
}

func (l *Logger) stamp(layout string) string {
	now := time.Now
	if l.Now != nil {
		now = l.Now
	}
	t := now().UTC()
	if t.IsZero() {
		return fallbackStamp
	}
	return t.Format(layout)
}

// Append writes each line followed by a newline as a single append
// session: open, write, flush, close. Failures are swallowed after one
// diagnostic so logging can never take the binary down.
func (l *Logger) Append(lines ...string) {
	f, err := os.OpenFile(l.Path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		fmt.Fprintf(l.stderr(), "%s Warning: unable to open bait log at '%s': %v\n", l.Prefix, l.Path, err)
		return
	}
	defer f.Close()

	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	io.WriteString(f, sb.String())
}

// BaitEvent records a detector hit as three harness-schema lines: the
// pattern header, a hex preview of the payload and the fake flag
// dispense notice. flagPath is reported with a leading "/app/" stripped.
func (l *Logger) BaitEvent(pattern string, payload []byte, flagPath string) {
	t := l.stamp(harnessLayout)
	l.Append(
		fmt.Sprintf("[BAIT] [VMMGR] Pattern '%s' detected in payload (length=%d) at %s", pattern, len(payload), t),
		fmt.Sprintf("[BAIT] [VMMGR] Payload hex dump: %s at %s", HexPreview(payload), t),
		fmt.Sprintf("[BAIT] [VMMGR] Fake flag dispensed at %s at %s", displayPath(flagPath), t),
	)
}

// Entry records one echo-schema line: "{T} | {tag} | {line}".
func (l *Logger) Entry(tag, line string) {
	l.Append(fmt.Sprintf("%s | %s | %s", l.stamp(echoLayout), tag, line))
}

// HexPreview renders the first min(16, len(b)) bytes as space-separated
// lowercase hex, with " ..." appended when the payload is longer than
// the preview. An empty payload renders as "(empty)".
func HexPreview(b []byte) string {
	if len(b) == 0 {
		return "(empty)"
	}
	n := len(b)
	if n > previewBytes {
		n = previewBytes
	}
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", b[i])
	}
	if len(b) > n {
		sb.WriteString(" ...")
	}
	return sb.String()
}

func displayPath(p string) string {
	if strings.HasPrefix(p, "/app/") && len(p) > 5 {
		return p[5:]
	}
	return p
}
