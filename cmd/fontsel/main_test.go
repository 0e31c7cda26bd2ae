package main

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseCodepoints(t *testing.T) {
	tests := []struct {
		args []string
		want []rune
	}{
		{nil, nil},
		{[]string{"U+4E2D"}, []rune{0x4E2D}},
		{[]string{"u+41", "0x42"}, []rune{'A', 'B'}},
		{[]string{"hé"}, []rune{'h', 'é'}},
		{[]string{"U+"}, []rune{'U', '+'}},
	}
	for _, tt := range tests {
		got, err := parseCodepoints(tt.args)
		if err != nil {
			t.Errorf("parseCodepoints(%q) failed: %v", tt.args, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("parseCodepoints(%q) mismatch (-want +got):\n%s", tt.args, diff)
		}
	}
}

func TestParseCodepointsErrors(t *testing.T) {
	if _, err := parseCodepoints([]string{"U+ZZ"}); err == nil {
		t.Error("parseCodepoints(U+ZZ) succeeded")
	}
	if _, err := parseCodepoints([]string{"U+110000"}); !errors.Is(err, errCodepointRange) {
		t.Errorf("error = %v, want errCodepointRange", err)
	}
	if _, err := parseCodepoints([]string{"0x0"}); !errors.Is(err, errCodepointRange) {
		t.Errorf("error = %v, want errCodepointRange", err)
	}
}

func TestLabel(t *testing.T) {
	for cp, want := range map[rune]string{0: "-", 'A': "U+0041 A", '\n': "U+000A"} {
		if got := label(cp); got != want {
			t.Errorf("label(%q) = %q, want %q", cp, got, want)
		}
	}
}
