//go:build linux

// Package jailrun drives the sandboxed echo binary on behalf of the
// containment layer: trimmed environment, wall-clock deadline, resource
// limits on the child and a metadata trail in the bait log.
package jailrun

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/isol8r/sandtrap/pkg/baitlog"
	"github.com/isol8r/sandtrap/pkg/pipe"
	"github.com/isol8r/sandtrap/pkg/rlimit"
)

// trailLayout stamps the metadata header written before each run.
const trailLayout = "2006-01-02 15:04:05"

// defaultMaxOutput caps collected stdout and stderr per stream.
const defaultMaxOutput = 64 << 10

// Runner configures one sandbox execution.
type Runner struct {
	// Binary is the sandboxed echo executable; Args is normally empty,
	// the echo binary takes no arguments.
	Binary string
	Args   []string

	Log    *baitlog.Logger
	Limits rlimit.RLimits

	// MaxOutput caps collected stdout and stderr, 64 KiB when zero.
	MaxOutput int64
}

// Run feeds payload to the sandbox binary and collects its verdict.
// The from tag records the requesting client in the log trail. A nil
// error means the binary ran to completion or was killed by the
// context deadline; inspect Result for the verdict.
func (r *Runner) Run(ctx context.Context, payload, from string) (*Result, error) {
	start := time.Now()

	if _, err := os.Stat(r.Binary); err != nil {
		r.Log.Append(fmt.Sprintf("failure=sandbox binary missing at %s", r.Binary))
		return nil, fmt.Errorf("jailrun: sandbox binary missing at %s: %w", r.Binary, err)
	}

	trimmed := strings.TrimSpace(payload)
	if trimmed == "" {
		trimmed = "<blank>"
	}
	r.Log.Append(
		fmt.Sprintf("[%s] sandbox exec from=%s", start.Format(trailLayout), from),
		"payload="+trimmed,
	)

	max := r.MaxOutput
	if max == 0 {
		max = defaultMaxOutput
	}
	outBuf, err := pipe.NewCollector(max)
	if err != nil {
		return nil, fmt.Errorf("jailrun: stdout pipe: %v", err)
	}
	defer outBuf.W.Close()
	errBuf, err := pipe.NewCollector(max)
	if err != nil {
		return nil, fmt.Errorf("jailrun: stderr pipe: %v", err)
	}
	defer errBuf.W.Close()

	cmd := exec.CommandContext(ctx, r.Binary, r.Args...)
	cmd.Dir = filepath.Dir(r.Binary)
	cmd.Env = []string{
		"PATH=/usr/bin:/bin",
		"ISOL8R_RUNTIME=project-sandtrap",
	}
	cmd.Stdout = outBuf.W
	cmd.Stderr = errBuf.W
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("jailrun: stdin pipe: %v", err)
	}

	if err := cmd.Start(); err != nil {
		r.Log.Append(fmt.Sprintf("status=exception detail=%v", err))
		return nil, fmt.Errorf("jailrun: start: %v", err)
	}

	// the child blocks on its first stdin read, so the limits land
	// before it does any real work
	if err := r.Limits.Apply(cmd.Process.Pid); err != nil {
		r.Log.Append(fmt.Sprintf("failure=%v", err))
	}

	// the write end may break if the child exits early; that is the
	// child's verdict to report, not ours
	io.WriteString(stdin, payload)
	stdin.Close()

	waitErr := cmd.Wait()
	outBuf.W.Close()
	errBuf.W.Close()
	outBuf.Wait()
	errBuf.Wait()

	res := &Result{
		Stdout:   string(outBuf.Bytes()),
		Stderr:   string(errBuf.Bytes()),
		Duration: time.Since(start),
	}

	var exitErr *exec.ExitError
	switch {
	case ctx.Err() == context.DeadlineExceeded:
		res.TimedOut = true
		res.ExitCode = -1
		res.Stderr += "\n[isol8r] execution timed out"
		r.Log.Append("status=timeout")
	case waitErr == nil:
		r.Log.Append("status=completed returncode=0")
	case errors.As(waitErr, &exitErr):
		res.ExitCode = exitErr.ExitCode()
		r.Log.Append(fmt.Sprintf("status=completed returncode=%d", res.ExitCode))
	default:
		r.Log.Append(fmt.Sprintf("status=exception detail=%v", waitErr))
		return nil, fmt.Errorf("jailrun: wait: %v", waitErr)
	}

	r.Log.Append(fmt.Sprintf("duration=%.3fs", res.Duration.Seconds()))
	if res.Stdout != "" {
		r.Log.Append("stdout=" + strings.TrimRight(res.Stdout, "\n"))
	}
	if res.Stderr != "" {
		r.Log.Append("stderr=" + strings.TrimRight(res.Stderr, "\n"))
	}
	return res, nil
}
