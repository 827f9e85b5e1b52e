package internal

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

func TestIsTerminal(t *testing.T) {
	if isTerminal(&bytes.Buffer{}) {
		t.Error("a bytes.Buffer is not a terminal")
	}

	f, err := os.CreateTemp(t.TempDir(), "not-a-tty")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()
	if isTerminal(f) {
		t.Error("a regular file is not a terminal")
	}
}

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	original := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = original }()

	fn()
	w.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("failed to read captured output: %v", err)
	}
	return string(data)
}

func TestPrintError_PlainWhenNotTerminal(t *testing.T) {
	got := captureStderr(t, func() { PrintError("archive is broken") })
	if !strings.Contains(got, "archive is broken") {
		t.Errorf("PrintError output = %q, want the message", got)
	}
	if strings.Contains(got, "✗") {
		t.Errorf("PrintError output = %q, should not be styled off a terminal", got)
	}
}

func TestPrintWarning_PlainWhenNotTerminal(t *testing.T) {
	got := captureStderr(t, func() { PrintWarning("2 conversation(s) failed") })
	if !strings.HasPrefix(got, "WARNING: ") {
		t.Errorf("PrintWarning output = %q, want WARNING: prefix", got)
	}
}
