// Package decoy maintains the fake flag file rewritten on every bait
// trigger, so curious analysts always find something plausible.
package decoy

import "os"

// Content is the single line every dispensed fake flag contains.
const Content = "flag{virtual_machine_this_is_not}\n"

// DefaultPath is the honeypot flag location inside the challenge container.
const DefaultPath = "/app/data/fake_flags/vm_flag.txt"

// Drop truncates the file at path and writes the fixed literal.
// Last writer wins across concurrent bait events.
func Drop(path string) error {
	return os.WriteFile(path, []byte(Content), 0644)
}
