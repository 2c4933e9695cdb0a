//nolint:testpackage // using package name 'glintio' to access unexported fields for testing
package glintio

import (
	"bytes"
	"strings"
	"testing"
)

func TestManagerStreamOverrides(t *testing.T) {
	var out, errBuf bytes.Buffer
	in := strings.NewReader("hello")

	m := New().WithIn(in).WithOut(&out).WithErr(&errBuf)

	if m.In() != in {
		t.Error("Expected overridden input reader")
	}
	if m.Out() != &out {
		t.Error("Expected overridden output writer")
	}
	if m.Err() != &errBuf {
		t.Error("Expected overridden error writer")
	}
}

func TestColorEnabledForced(t *testing.T) {
	var buf bytes.Buffer

	if !New().WithOut(&buf).ForceColor().ColorEnabled() {
		t.Error("Expected ForceColor to override stream detection")
	}
	if New().WithOut(&buf).NoColor().ColorEnabled() {
		t.Error("Expected NoColor to disable color")
	}
}

func TestColorEnabledBufferIsNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	if New().WithOut(&buf).ColorEnabled() {
		t.Error("Expected color disabled for a non-terminal writer")
	}
}

func TestColorEnabledRespectsNoColorEnv(t *testing.T) {
	var buf bytes.Buffer
	t.Setenv("NO_COLOR", "1")

	if New().WithOut(&buf).ForceColor().ColorAuto().ColorEnabled() {
		t.Error("Expected NO_COLOR to disable auto color detection")
	}
}

func TestForceAndNoColorAreExclusive(t *testing.T) {
	var buf bytes.Buffer

	m := New().WithOut(&buf).NoColor().ForceColor()
	if !m.ColorEnabled() {
		t.Error("Expected the later ForceColor call to win")
	}

	m = New().WithOut(&buf).ForceColor().NoColor()
	if m.ColorEnabled() {
		t.Error("Expected the later NoColor call to win")
	}
}
