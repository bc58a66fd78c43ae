// Command sandboxed_echo reads exactly one line from stdin, echoes it
// back and tattles to the bait log if the line smells suspicious.
package main

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/isol8r/sandtrap/echofilter"
	"github.com/isol8r/sandtrap/pkg/baitlog"
)

func main() {
	f := &echofilter.Filter{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Log: &baitlog.Logger{
			Path:   echofilter.DefaultLogPath,
			Prefix: "[sandboxed_echo]",
		},
		Interactive: isatty.IsTerminal(os.Stdin.Fd()),
	}
	os.Exit(f.Run())
}
