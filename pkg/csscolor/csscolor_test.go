package csscolor

import (
	"errors"
	"image/color"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  color.RGBA
	}{
		{"#ff0000", color.RGBA{R: 255, A: 255}},
		{"#F00", color.RGBA{R: 255, A: 255}},
		{"#00ff0080", color.RGBA{G: 128, A: 128}},
		{"#0000", color.RGBA{}},
		{"rgb(0, 0, 255)", color.RGBA{B: 255, A: 255}},
		{"rgb(100%, 0%, 0%)", color.RGBA{R: 255, A: 255}},
		{"rgba(255, 255, 255, 0)", color.RGBA{}},
		{"RGBA(0,0,0,1)", color.RGBA{A: 255}},
		{"rgb(0 128 0)", color.RGBA{G: 128, A: 255}},
		{"white", color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{"  Navy ", color.RGBA{B: 128, A: 255}},
		{"transparent", color.RGBA{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_Unsupported(t *testing.T) {
	inputs := []string{
		"",
		"#12",
		"#12345",
		"notacolor",
		"rgb(1, 2)",
		"hsl(0, 100%, 50%)",
		"rgb(1, 2, 3",
	}

	for _, input := range inputs {
		_, err := Parse(input)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("Parse(%q): expected ErrUnsupportedFormat, got %v", input, err)
		}
	}
}

func TestParse_PremultipliesAlpha(t *testing.T) {
	got, err := Parse("rgba(255, 0, 0, 0.5)")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got.A != 128 || got.R != 128 {
		t.Errorf("expected premultiplied red at half alpha, got %v", got)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		c    color.Color
		want string
	}{
		{color.RGBA{R: 255, A: 255}, "#ff0000"},
		{color.White, "#ffffff"},
		{color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0x80}, "#123456"},
	}

	for _, tt := range tests {
		if got := Hex(tt.c); got != tt.want {
			t.Errorf("Hex(%v) = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestHex_RoundTrip(t *testing.T) {
	c, err := Parse(Hex(color.RGBA{R: 10, G: 20, B: 30, A: 255}))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if c != (color.RGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("unexpected color %v", c)
	}
}
