// Package rlimit provides data structures for the resource limits the
// sandbox runner installs on an already started child via prlimit.
package rlimit

import (
	"fmt"
	"strings"

	"golang.org/x/sys/unix"
)

// RLimits defines the limits applied to the sandboxed echo child.
type RLimits struct {
	CPU          uint64 // in s
	FileSize     uint64 // in bytes
	AddressSpace uint64 // in bytes
	DisableCore  bool   // set core to 0
}

// RLimit is one resource / limit pair as understood by prlimit.
type RLimit struct {
	// Res is the resource type (e.g. unix.RLIMIT_CPU)
	Res int
	// Rlim is the limit applied to that resource
	Rlim unix.Rlimit
}

func getRlimit(cur, max uint64) unix.Rlimit {
	return unix.Rlimit{Cur: cur, Max: max}
}

// PrepareRLimit flattens the configured limits into prlimit entries.
func (r *RLimits) PrepareRLimit() []RLimit {
	var ret []RLimit
	if r.CPU > 0 {
		ret = append(ret, RLimit{
			Res:  unix.RLIMIT_CPU,
			Rlim: getRlimit(r.CPU, r.CPU+1),
		})
	}
	if r.FileSize > 0 {
		ret = append(ret, RLimit{
			Res:  unix.RLIMIT_FSIZE,
			Rlim: getRlimit(r.FileSize, r.FileSize),
		})
	}
	if r.AddressSpace > 0 {
		ret = append(ret, RLimit{
			Res:  unix.RLIMIT_AS,
			Rlim: getRlimit(r.AddressSpace, r.AddressSpace),
		})
	}
	if r.DisableCore {
		ret = append(ret, RLimit{
			Res:  unix.RLIMIT_CORE,
			Rlim: getRlimit(0, 0),
		})
	}
	return ret
}

func (r RLimit) String() string {
	switch r.Res {
	case unix.RLIMIT_CPU:
		return fmt.Sprintf("CPU[%d s:%d s]", r.Rlim.Cur, r.Rlim.Max)
	case unix.RLIMIT_FSIZE:
		return fmt.Sprintf("File[%d:%d]", r.Rlim.Cur, r.Rlim.Max)
	case unix.RLIMIT_AS:
		return fmt.Sprintf("AddressSpace[%d:%d]", r.Rlim.Cur, r.Rlim.Max)
	case unix.RLIMIT_CORE:
		return fmt.Sprintf("Core[%d:%d]", r.Rlim.Cur, r.Rlim.Max)
	default:
		return fmt.Sprintf("Unknown[%d:%d]", r.Rlim.Cur, r.Rlim.Max)
	}
}

func (r RLimits) String() string {
	var sb strings.Builder
	sb.WriteString("RLimits[")
	for i, rl := range r.PrepareRLimit() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(rl.String())
	}
	sb.WriteString("]")
	return sb.String()
}
