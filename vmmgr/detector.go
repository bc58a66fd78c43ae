package vmmgr

import "github.com/isol8r/sandtrap/pkg/scanner"

// Detector is one denylist entry: either a literal substring (Needle)
// or a raw byte sequence (Raw), with the quip shown to the operator on
// a hit.
type Detector struct {
	Description string
	Message     string
	Needle      string // literal substring form; empty when Raw is set
	Raw         []byte // raw byte sequence form
}

// Match reports whether the detector's pattern occurs in buf.
func (d *Detector) Match(buf []byte) bool {
	if d.Needle != "" {
		return scanner.ContainsString(buf, d.Needle)
	}
	return scanner.ContainsBytes(buf, d.Raw)
}

// detectors is scanned in declared order; only the first hit is ever
// reported.
var detectors = []Detector{
	{
		Description: "/bin/sh",
		Message:     "[VMMGR] A classic. Predictable. Blocked.",
		Needle:      "/bin/sh",
	},
	{
		Description: "execve",
		Message:     "[VMMGR] execve? How original. Try again.",
		Needle:      "execve",
	},
	{
		Description: "syscall (0x0f 0x05)",
		Message:     "[VMMGR] Forbidden fruits are the juiciest. But no.",
		Raw:         []byte{0x0f, 0x05},
	},
	{
		Description: "syscall",
		Message:     "[VMMGR] 'syscall' spelled out? Subtlety is a virtue.",
		Needle:      "syscall",
	},
	{
		Description: "flag",
		Message:     "[VMMGR] The flag is in another castle. Blocked.",
		Needle:      "flag",
	},
}

// Inspect returns the first detector matching buf, or nil when the
// payload is clean.
func Inspect(buf []byte) *Detector {
	for i := range detectors {
		if detectors[i].Match(buf) {
			return &detectors[i]
		}
	}
	return nil
}
