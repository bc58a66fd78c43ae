// Package vmmgr sequences the payload admission pipeline: denylist
// screening, RWX page provisioning and the indirect jump into freshly
// mapped memory. A payload triggering any detector never reaches a
// mapping; the source buffer is zeroed on every terminating path.
package vmmgr

import (
	"fmt"
	"io"
	"os"

	"github.com/isol8r/sandtrap/pkg/baitlog"
	"github.com/isol8r/sandtrap/pkg/decoy"
	"github.com/isol8r/sandtrap/pkg/execmem"
	"github.com/isol8r/sandtrap/pkg/payload"
)

// DefaultLogPath is the harness side bait log sink.
const DefaultLogPath = "/app/logs/bait.log"

// Manager owns a payload buffer from screening to the indirect jump.
type Manager struct {
	Log      *baitlog.Logger
	FlagPath string
	Stderr   io.Writer

	// Enter overrides the jump into the sealed region; tests inject it.
	// nil enters the region for real.
	Enter func(r *execmem.Region)
}

func (m *Manager) stderr() io.Writer {
	if m.Stderr != nil {
		return m.Stderr
	}
	return os.Stderr
}

// Run screens buf and, if clean, copies it into an executable region
// and transfers control to it. The buffer is zeroed before Run returns
// or jumps, on every path.
func (m *Manager) Run(buf *payload.Buffer) Status {
	if len(buf.Data) == 0 {
		fmt.Fprintln(m.stderr(), "[tiny_vmmgr] Empty payload provided. Even no-ops deserve a byte.")
		buf.Zero()
		return StatusEmpty
	}

	if d := Inspect(buf.Data); d != nil {
		m.Log.BaitEvent(d.Description, buf.Data, m.FlagPath)
		if err := decoy.Drop(m.FlagPath); err != nil {
			fmt.Fprintf(m.stderr(), "[tiny_vmmgr] Warning: unable to write fake flag at '%s': %v\n", m.FlagPath, err)
		}
		fmt.Fprintln(m.stderr(), d.Message)
		buf.Zero()
		return StatusBait
	}

	hasNull := buf.HasNull()

	region, err := execmem.Map()
	if err != nil {
		fmt.Fprintf(m.stderr(), "[tiny_vmmgr] %v\n", err)
		buf.Zero()
		return StatusMapError
	}
	region.Fill(buf.Data)
	buf.Zero()

	if err := region.Seal(); err != nil {
		fmt.Fprintf(m.stderr(), "[tiny_vmmgr] %v\n", err)
		region.Unmap()
		return StatusMapError
	}

	if hasNull {
		fmt.Fprintln(m.stderr(), "[tiny_vmmgr] Caution: payload contains null bytes. Hope your loader likes NULs.")
	}

	if m.Enter != nil {
		m.Enter(region)
	} else {
		region.Enter()
	}

	region.Unmap()
	return StatusAdmitted
}
