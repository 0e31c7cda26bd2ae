package facecache

import "testing"

func TestSourceString(t *testing.T) {
	tests := []struct {
		src  Source
		want string
	}{
		{FileSource("/usr/share/fonts/DejaVuSans.ttf"), "/usr/share/fonts/DejaVuSans.ttf"},
		{AttachmentSource(3), ":/3"},
		{StreamSource(12), ":dw/12"},
	}
	for _, tt := range tests {
		if got := tt.src.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		back, err := ParseSource(tt.want)
		if err != nil {
			t.Errorf("ParseSource(%q) failed: %v", tt.want, err)
			continue
		}
		if back != tt.src {
			t.Errorf("ParseSource(%q) = %+v, want %+v", tt.want, back, tt.src)
		}
	}
}

func TestParseSourceErrors(t *testing.T) {
	for _, s := range []string{"", ":/", ":/x", ":/-1", ":dw/", ":dw/abc"} {
		if _, err := ParseSource(s); err == nil {
			t.Errorf("ParseSource(%q) succeeded", s)
		}
	}
}

func TestKeyString(t *testing.T) {
	k := NewKey(AttachmentSource(1), 2, PixelSize{Height: 20, Width: 10})
	if got, want := k.String(), ":/1 - 2 - 20 - 10"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSourceKindString(t *testing.T) {
	if SourceStream.String() != "stream" || SourceKind(9).String() != "SourceKind(9)" {
		t.Error("unexpected SourceKind names")
	}
	if !(Source{}).IsZero() || FileSource("x").IsZero() {
		t.Error("IsZero mismatch")
	}
}
