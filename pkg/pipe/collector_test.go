package pipe

import (
	"io"
	"strings"
	"testing"
	"time"
)

func TestCollector(t *testing.T) {
	c, err := NewCollector(10)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}
	defer c.W.Close()

	input := "hello"
	if _, err := c.W.Write([]byte(input)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	c.W.Close()
	c.Wait()

	if got := string(c.Bytes()); got != input {
		t.Errorf("Bytes() = %q, want %q", got, input)
	}
	if c.Truncated() {
		t.Error("Truncated() = true for in-bounds output")
	}
}

func TestCollectorTruncates(t *testing.T) {
	const max = 5
	c, err := NewCollector(max)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}
	defer c.W.Close()

	input := "toolonginput"
	if _, err := io.Copy(c.W, strings.NewReader(input)); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	c.W.Close()
	c.Wait()

	if got := string(c.Bytes()); got != input[:max] {
		t.Errorf("Bytes() = %q, want %q", got, input[:max])
	}
	if !c.Truncated() {
		t.Error("Truncated() = false for oversized output")
	}
}

func TestCollectorString(t *testing.T) {
	c, err := NewCollector(8)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}
	defer c.W.Close()

	_, _ = c.W.Write([]byte("abc"))
	c.W.Close()
	c.Wait()

	if want := "Collector[3/8]"; c.String() != want {
		t.Errorf("String() = %q, want %q", c.String(), want)
	}
}

func TestCollectorWaitUnblocks(t *testing.T) {
	c, err := NewCollector(4)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}
	go func() {
		_, _ = c.W.Write([]byte("test"))
		c.W.Close()
	}()

	done := make(chan struct{})
	go func() {
		c.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for collector")
	}
}
