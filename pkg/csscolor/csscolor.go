// Package csscolor parses CSS color strings.
package csscolor

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ErrUnsupportedFormat is returned for color strings that cannot be resolved.
var ErrUnsupportedFormat = errors.New("unsupported color format")

var (
	colorLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Hex", Pattern: `#[0-9a-fA-F]+`},
		{Name: "Number", Pattern: `[-+]?(?:\d+\.?\d*|\.\d+)%?`},
		{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9-]*`},
		{Name: "Punct", Pattern: `[(),/]`},
	})

	colorParser = participle.MustBuild[expr](
		participle.Lexer(colorLexer),
		participle.Elide("Whitespace"),
		participle.CaseInsensitive("Ident"),
	)
)

type expr struct {
	Hex   *string   `parser:"  @Hex"`
	Func  *function `parser:"| @@"`
	Named *string   `parser:"| @Ident"`
}

type function struct {
	Name string   `parser:"@('rgb' | 'rgba')"`
	Args []string `parser:"'(' @Number ( ( ',' | '/' )? @Number )* ')'"`
}

// Parse resolves s to a color. Errors wrap ErrUnsupportedFormat.
func Parse(s string) (color.RGBA, error) {
	e, err := colorParser.ParseString("", strings.TrimSpace(s))
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q: %v", ErrUnsupportedFormat, s, err)
	}

	var c color.RGBA
	switch {
	case e.Hex != nil:
		c, err = parseHex(*e.Hex)
	case e.Func != nil:
		c, err = parseFunc(e.Func)
	case e.Named != nil:
		var ok bool
		c, ok = named[strings.ToLower(*e.Named)]
		if !ok {
			err = fmt.Errorf("unknown color name %q", *e.Named)
		}
	default:
		err = errors.New("empty color")
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q: %v", ErrUnsupportedFormat, s, err)
	}
	return c, nil
}

// MustParse is like Parse but panics on error. Intended for literals.
func MustParse(s string) color.RGBA {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats c as "#rrggbb", dropping alpha.
func Hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

func parseHex(s string) (color.RGBA, error) {
	digits := s[1:]

	var expanded string
	switch len(digits) {
	case 3, 4:
		var b strings.Builder
		for _, r := range digits {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		expanded = b.String()
	case 6, 8:
		expanded = digits
	default:
		return color.RGBA{}, fmt.Errorf("hex color must have 3, 4, 6 or 8 digits")
	}
	if len(expanded) == 6 {
		expanded += "ff"
	}

	v, err := strconv.ParseUint(expanded, 16, 32)
	if err != nil {
		return color.RGBA{}, err
	}
	n := color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return color.RGBAModel.Convert(n).(color.RGBA), nil
}

func parseFunc(f *function) (color.RGBA, error) {
	if len(f.Args) != 3 && len(f.Args) != 4 {
		return color.RGBA{}, fmt.Errorf("%s() takes 3 or 4 arguments, got %d", f.Name, len(f.Args))
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		v, err := channel(f.Args[i])
		if err != nil {
			return color.RGBA{}, err
		}
		channels[i] = v
	}

	alpha := uint8(255)
	if len(f.Args) == 4 {
		a, err := unit(f.Args[3])
		if err != nil {
			return color.RGBA{}, err
		}
		alpha = uint8(math.Round(a * 255))
	}

	n := color.NRGBA{R: channels[0], G: channels[1], B: channels[2], A: alpha}
	return color.RGBAModel.Convert(n).(color.RGBA), nil
}

// channel parses an rgb() component: 0-255 or a percentage.
func channel(s string) (uint8, error) {
	if strings.HasSuffix(s, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return 0, err
		}
		return uint8(math.Round(clamp(v/100, 0, 1) * 255)), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return uint8(math.Round(clamp(v, 0, 255))), nil
}

// unit parses an alpha component: 0-1 or a percentage.
func unit(s string) (float64, error) {
	if strings.HasSuffix(s, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return 0, err
		}
		return clamp(v/100, 0, 1), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return clamp(v, 0, 1), nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
