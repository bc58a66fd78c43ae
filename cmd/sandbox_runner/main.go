// Command sandbox_runner pushes untrusted experiment text through the
// sandboxed echo binary with a wall-clock deadline and resource limits,
// leaving a metadata trail in the bait log.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/isol8r/sandtrap/jailrun"
	"github.com/isol8r/sandtrap/pkg/baitlog"
	"github.com/isol8r/sandtrap/pkg/rlimit"
)

var (
	binPath = flag.String("bin", "/app/core/jail_binaries/sandboxed_echo", "path to the sandboxed echo binary")
	logPath = flag.String("log", "/app/logs/bait.log", "bait log sink")
	from    = flag.String("from", "local", "client identifier recorded in the log trail")
	timeout = flag.Duration("timeout", 4*time.Second, "wall clock limit for the sandbox run")
)

func main() {
	flag.Parse()

	text, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "[sandbox_runner] read stdin:", err)
		os.Exit(1)
	}

	r := &jailrun.Runner{
		Binary: *binPath,
		Log:    &baitlog.Logger{Path: *logPath, Prefix: "[sandbox_runner]"},
		Limits: rlimit.RLimits{
			CPU:         2,
			FileSize:    1 << 20,
			DisableCore: true,
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	res, err := r.Run(ctx, string(text), *from)
	if err != nil {
		fmt.Fprintln(os.Stderr, "[sandbox_runner]", err)
		os.Exit(1)
	}

	fmt.Println(res.Summary())
	if res.TimedOut {
		os.Exit(1)
	}
}
