// ABOUTME: Tests for the Virtual terminal double: scripted input, captured output, mode tracking
// ABOUTME: Mirrors the contract the picker relies on for its unit tests

package terminal

import (
	"errors"
	"testing"
)

func TestVirtual_RawModeTracking(t *testing.T) {
	t.Parallel()

	v := NewVirtual(80, 24)
	if v.IsRawMode() {
		t.Fatal("new virtual terminal must start cooked")
	}

	if err := v.EnterRawMode(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.IsRawMode() {
		t.Error("expected raw mode after EnterRawMode")
	}

	if err := v.ExitRawMode(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.IsRawMode() {
		t.Error("expected cooked mode after ExitRawMode")
	}
	if v.EnterCount() != 1 || v.ExitCount() != 1 {
		t.Errorf("transition counts = (%d, %d), want (1, 1)", v.EnterCount(), v.ExitCount())
	}
}

func TestVirtual_ScriptedInput(t *testing.T) {
	t.Parallel()

	v := NewVirtual(80, 24)
	v.FeedString("ab")
	v.Feed(0x0d)

	for _, want := range []byte{'a', 'b', 0x0d} {
		b, err := v.ReadByte()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b != want {
			t.Errorf("ReadByte = 0x%02x, want 0x%02x", b, want)
		}
	}

	if _, err := v.ReadByte(); !errors.Is(err, ErrNoInput) {
		t.Errorf("expected ErrNoInput when exhausted, got %v", err)
	}
}

func TestVirtual_CapturesOutput(t *testing.T) {
	t.Parallel()

	v := NewVirtual(80, 24)
	if _, err := v.Write([]byte("hello ")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := v.Write([]byte("world")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := v.Output(); got != "hello world" {
		t.Errorf("Output() = %q", got)
	}
}

func TestVirtual_Size(t *testing.T) {
	t.Parallel()

	v := NewVirtual(132, 43)
	w, h, err := v.Size()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != 132 || h != 43 {
		t.Errorf("Size() = (%d, %d), want (132, 43)", w, h)
	}
}
