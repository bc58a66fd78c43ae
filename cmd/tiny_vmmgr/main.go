// Command tiny_vmmgr ingests a raw shellcode payload, screens it
// against the bait denylist and, when clean, jumps into a fresh RWX
// page. Every failure path exits 1; 0 means the payload ran and came
// back.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/isol8r/sandtrap/pkg/baitlog"
	"github.com/isol8r/sandtrap/pkg/decoy"
	"github.com/isol8r/sandtrap/pkg/payload"
	"github.com/isol8r/sandtrap/vmmgr"
)

func main() {
	os.Exit(run(os.Args))
}

func run(argv []string) int {
	printBanner()

	args := argv[1:]
	in, fromStdin, err := payload.Open(args)
	if err != nil {
		if errors.Is(err, payload.ErrUsage) {
			printUsage(argv[0])
		} else {
			fmt.Fprintf(os.Stderr, "[tiny_vmmgr] Failed to open '%s': %v\n", args[0], err)
		}
		return 1
	}

	buf, err := payload.Read(in, fromStdin)
	if !fromStdin {
		in.Close()
	}
	if err != nil {
		if errors.Is(err, payload.ErrTooLarge) {
			fmt.Fprintf(os.Stderr, "[tiny_vmmgr] Payload exceeds %d bytes. Please behave.\n", payload.MaxSize)
		} else {
			fmt.Fprintf(os.Stderr, "[tiny_vmmgr] read: %v\n", err)
		}
		return 1
	}

	m := &vmmgr.Manager{
		Log: &baitlog.Logger{
			Path:   vmmgr.DefaultLogPath,
			Prefix: "[tiny_vmmgr]",
		},
		FlagPath: decoy.DefaultPath,
		Stderr:   os.Stderr,
	}
	if m.Run(buf) != vmmgr.StatusAdmitted {
		return 1
	}
	return 0
}

func printBanner() {
	fmt.Println("===============================================")
	fmt.Println(" tiny_vmmgr :: ISOL8R Virtual Machine Harness ")
	fmt.Println("===============================================")
}

func printUsage(name string) {
	fmt.Fprintf(os.Stderr,
		"Usage: %s [shellcode_file|-]\n"+
			"  - If no argument is provided, shellcode is read from stdin.\n"+
			"  - Passing '-' explicitly also reads from stdin.\n"+
			"  - Any other single argument is treated as a file path.\n",
		name)
}
