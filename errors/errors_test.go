package errors

import (
	"strings"
	"testing"
)

func TestSentinelIdentity(t *testing.T) {
	wrapped := Wrap(ErrInvalidReference, "edge e1: target ghost")

	if !Is(wrapped, ErrInvalidReference) {
		t.Error("wrapped error should match ErrInvalidReference")
	}
	if Is(wrapped, ErrNotFound) {
		t.Error("wrapped error should not match ErrNotFound")
	}
}

func TestIsInvalidReferenceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"bare sentinel", ErrInvalidReference, true},
		{"wrapped sentinel", Wrap(ErrInvalidReference, "context"), true},
		{"double wrapped", Wrap(Wrap(ErrInvalidReference, "inner"), "outer"), true},
		{"constructor", NewInvalidReferenceError("edge %s: source %s unknown", "e9", "zz"), true},
		{"unrelated error", New("boom"), false},
		{"other sentinel", ErrCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInvalidReferenceError(tt.err); got != tt.expected {
				t.Errorf("IsInvalidReferenceError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNewInvalidReferenceErrorMessage(t *testing.T) {
	err := NewInvalidReferenceError("edge %s: target %s unknown", "e3", "ghost")

	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if msg == "" {
		t.Error("expected non-empty message")
	}
	// Formatted context must survive the wrap
	if !strings.Contains(msg, "e3") || !strings.Contains(msg, "ghost") {
		t.Errorf("message %q missing formatted context", msg)
	}
}

func TestWrapPreservesChain(t *testing.T) {
	base := New("base failure")
	wrapped := Wrapf(base, "while filtering %d nodes", 500)

	if !Is(wrapped, base) {
		t.Error("Wrapf should preserve error identity")
	}
}
