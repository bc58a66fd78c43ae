// Package scanner provides the linear payload scans used by the bait
// detectors. The enforced payload cap keeps a plain scan sufficient.
package scanner

import "bytes"

// ContainsBytes reports whether pattern occurs as a contiguous
// subsequence of buf. An empty buffer or empty pattern never matches.
func ContainsBytes(buf, pattern []byte) bool {
	if len(buf) == 0 || len(pattern) == 0 {
		return false
	}
	return bytes.Contains(buf, pattern)
}

// ContainsString matches needle against buf on its byte length; no
// terminator takes part in the comparison.
func ContainsString(buf []byte, needle string) bool {
	return ContainsBytes(buf, []byte(needle))
}
