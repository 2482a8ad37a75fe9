package color

import (
	"errors"
	"testing"

	errs "github.com/matzehuels/graphbridge/pkg/errors"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"#ff0000", RGB{255, 0, 0}},
		{"#F00", RGB{255, 0, 0}},
		{"#abc", RGB{0xaa, 0xbb, 0xcc}},
		{"00ff00", RGB{0, 255, 0}},
		{"abc", RGB{0xaa, 0xbb, 0xcc}},
		{"#0000ff80", RGB{0, 0, 255}},
		{"#f008", RGB{255, 0, 0}},
		{"red", RGB{255, 0, 0}},
		{"  Blue ", RGB{0, 0, 255}},
		{"teal", RGB{0, 128, 128}},
		{"rgb(1,2,3)", RGB{1, 2, 3}},
		{"rgb( 10 , 20 , 30 )", RGB{10, 20, 30}},
		{"rgba(10,20,30,0.5)", RGB{10, 20, 30}},
		{"rgb(100%,0%,50%)", RGB{255, 0, 128}},
		{"rgb(300,-4,12.6)", RGB{255, 0, 13}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Normalize(tt.in)
			if err != nil {
				t.Fatalf("Normalize(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_Invalid(t *testing.T) {
	for _, in := range []string{"", "notacolor", "#12", "#ggg", "ff0000ff", "f00f", "rgb(1,2)", "rgb(a,b,c)"} {
		t.Run(in, func(t *testing.T) {
			_, err := Normalize(in)
			if err == nil {
				t.Fatalf("Normalize(%q) succeeded, want error", in)
			}
			if !errs.Is(err, errs.ErrCodeInvalidColor) {
				t.Errorf("code = %v, want %v", errs.GetCode(err), errs.ErrCodeInvalidColor)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error %v is not a *ParseError", err)
			}
			if pe.Input != in {
				t.Errorf("Input = %q, want %q", pe.Input, in)
			}
		})
	}
}

func TestNormalizeAny(t *testing.T) {
	if c, err := NormalizeAny("#000"); err != nil || c != (RGB{}) {
		t.Errorf("NormalizeAny(#000) = %v, %v", c, err)
	}
	if _, err := NormalizeAny(42.0); err == nil {
		t.Error("NormalizeAny(42) succeeded, want error")
	}
}

func TestRGB_String(t *testing.T) {
	if got := (RGB{1, 22, 255}).String(); got != "rgb(1,22,255)" {
		t.Errorf("String() = %q, want rgb(1,22,255)", got)
	}
}

func TestRGB_Hex(t *testing.T) {
	if got := (RGB{255, 0, 16}).Hex(); got != "#ff0010" {
		t.Errorf("Hex() = %q, want #ff0010", got)
	}
}

func TestCanonicalIsStable(t *testing.T) {
	c, err := Normalize("orange")
	if err != nil {
		t.Fatal(err)
	}
	again, err := Normalize(c.String())
	if err != nil {
		t.Fatal(err)
	}
	if again != c {
		t.Errorf("re-normalized %v, want %v", again, c)
	}
}

func TestFromComponents(t *testing.T) {
	if got := FromComponents(12.4, 300, -1); got != (RGB{12, 255, 0}) {
		t.Errorf("FromComponents = %v, want {12 255 0}", got)
	}
}
