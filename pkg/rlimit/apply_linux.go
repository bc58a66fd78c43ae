//go:build linux

package rlimit

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Apply installs the configured limits on the process pid.
func (r *RLimits) Apply(pid int) error {
	for _, rl := range r.PrepareRLimit() {
		if err := unix.Prlimit(pid, rl.Res, &rl.Rlim, nil); err != nil {
			return fmt.Errorf("rlimit: prlimit %v: %v", rl, err)
		}
	}
	return nil
}
