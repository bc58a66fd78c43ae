package decoy

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDrop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vm_flag.txt")

	// repeated drops keep exactly one line
	for i := 0; i < 3; i++ {
		if err := Drop(path); err != nil {
			t.Fatalf("Drop #%d: %v", i, err)
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read flag: %v", err)
	}
	if string(b) != Content {
		t.Errorf("flag file = %q, want %q", b, Content)
	}
}

func TestDropOverwritesLongerContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vm_flag.txt")
	if err := os.WriteFile(path, []byte("stale junk that is much longer than the flag line\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Drop(path); err != nil {
		t.Fatalf("Drop: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != Content {
		t.Errorf("flag file = %q, want truncated rewrite %q", b, Content)
	}
}

func TestDropUnwritablePath(t *testing.T) {
	err := Drop(filepath.Join(t.TempDir(), "no", "such", "dir", "vm_flag.txt"))
	if err == nil {
		t.Error("Drop on missing directory: expected error")
	}
}
