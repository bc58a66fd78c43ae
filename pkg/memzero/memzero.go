// Package memzero overwrites byte ranges with zero bytes in a way the
// compiler is not allowed to eliminate.
package memzero

import "runtime"

// Clear sets every byte of b to zero. The buffer stays reachable until
// the last store has happened, so dead-store elimination cannot drop the
// wipe even when b is about to be released.
func Clear(b []byte) {
	if len(b) == 0 {
		return
	}
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b[0])
}
