package vmmgr

// Status is the admission pipeline outcome.
type Status int

// Admission results for the harness
const (
	StatusInvalid  Status = iota // 0 not initialized
	StatusAdmitted               // 1 payload executed and returned
	StatusEmpty                  // 2 zero-length payload
	StatusBait                   // 3 detector hit
	StatusMapError               // 4 mmap / mprotect failed
)

var statusString = []string{
	"Invalid",
	"Admitted",
	"Empty Payload",
	"Bait Triggered",
	"Mapping Error",
}

func (s Status) String() string {
	i := int(s)
	if i >= 0 && i < len(statusString) {
		return statusString[i]
	}
	return statusString[0]
}

func (s Status) Error() string {
	return s.String()
}
