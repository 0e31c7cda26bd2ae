package familyspec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want []string
	}{
		{"empty", "", nil},
		{"single", "Arial", []string{"Arial"}},
		{"quoted and spaced", `A, "B C" ,D`, []string{"A", "B C", "D"}},
		{"mixed", "Arial, \"DejaVu Sans\" , Noto", []string{"Arial", "DejaVu Sans", "Noto"}},
		{"whitespace tokens dropped", " , \t,A,, ", []string{"A"}},
		{"tabs trimmed", "\tSerif\t", []string{"Serif"}},
		{"empty quotes dropped", `"", A`, []string{"A"}},
		{"unmatched leading quote", `"Foo, Bar`, []string{`"Foo`, "Bar"}},
		{"unmatched trailing quote", `Foo"`, []string{`Foo"`}},
		{"lone quote", `"`, []string{`"`}},
		{"inner spaces kept", `" Padded "`, []string{" Padded "}},
		{"only one pair stripped", `""x""`, []string{`"x"`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.spec)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.spec, diff)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	names := []string{"Arial", "DejaVu Sans", "Noto"}
	spec := Join(names)
	if spec != `Arial, "DejaVu Sans", Noto` {
		t.Errorf("Join = %q", spec)
	}
	if diff := cmp.Diff(names, Parse(spec)); diff != "" {
		t.Errorf("Parse(Join) mismatch (-want +got):\n%s", diff)
	}
	if Join(nil) != "" {
		t.Error("Join(nil) not empty")
	}
}
