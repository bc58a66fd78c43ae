//go:build linux

// Package execmem provisions the anonymous page admitted payloads
// execute from. A region starts writable, is elevated to
// read+write+execute exactly once and is never stepped back down.
// Enter is the single data-to-code cast in the repository.
package execmem

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// PageSize is the fixed size of an executable region.
const PageSize = 4096

// Region is one anonymous private page.
type Region struct {
	mem []byte
}

// Map obtains a fresh read+write page from the kernel.
func Map() (*Region, error) {
	mem, err := unix.Mmap(-1, 0, PageSize,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("execmem: mmap %v", err)
	}
	return &Region{mem: mem}, nil
}

// Fill copies code into the page prefix and returns the copied length.
func (r *Region) Fill(code []byte) int {
	return copy(r.mem, code)
}

// Seal elevates the page to read+write+execute. One-shot; there is no
// step-down API.
func (r *Region) Seal() error {
	if err := unix.Mprotect(r.mem, unix.PROT_READ|unix.PROT_WRITE|unix.PROT_EXEC); err != nil {
		return fmt.Errorf("execmem: mprotect %v", err)
	}
	return nil
}

// Enter transfers control to the page base as a parameterless function
// with no return value. Valid only after Seal; the callee may never
// return.
func (r *Region) Enter() {
	entry := unsafe.Pointer(&r.mem[0])
	entryPtr := unsafe.Pointer(&entry)
	fn := *(*func())(unsafe.Pointer(&entryPtr))
	fn()
}

// Unmap releases the page. Safe to call twice.
func (r *Region) Unmap() error {
	if r.mem == nil {
		return nil
	}
	mem := r.mem
	r.mem = nil
	if err := unix.Munmap(mem); err != nil {
		return fmt.Errorf("execmem: munmap %v", err)
	}
	return nil
}
