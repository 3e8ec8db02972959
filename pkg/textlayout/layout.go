// Package textlayout measures and wraps text for a drawing surface.
//
// Measurement is delegated to a Measurer; this package only decides where
// lines break.
package textlayout

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Options selects the font and line spacing of a text run.
type Options struct {
	FontName   string
	FontSize   float64
	LineHeight float64
}

// Validate checks that sizes are positive.
func (o Options) Validate() error {
	if o.FontSize <= 0 {
		return fmt.Errorf("font size must be positive, got %v", o.FontSize)
	}
	if o.LineHeight <= 0 {
		return fmt.Errorf("line height must be positive, got %v", o.LineHeight)
	}
	return nil
}

// Metrics describes the measured extent of a text run.
type Metrics struct {
	Ascent  float64
	Descent float64
	Width   float64
}

// Height is the glyph height: ascent plus descent.
func (m Metrics) Height() float64 {
	return m.Ascent + m.Descent
}

// Line is one wrapped line of text and its metrics.
type Line struct {
	Text    string
	Metrics Metrics
}

// Measurer measures a single line of text.
type Measurer interface {
	MeasureText(text string, opts Options) Metrics
}

// MeasurerFunc adapts a function to Measurer.
type MeasurerFunc func(text string, opts Options) Metrics

// MeasureText implements Measurer.
func (f MeasurerFunc) MeasureText(text string, opts Options) Metrics {
	return f(text, opts)
}

// whitespace matches the ASCII spaces plus the Unicode space separators,
// so text separated by ideographic or no-break spaces still wraps.
var whitespace = regexp.MustCompile(`[\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}]`)

// Wrap breaks text into lines no wider than maxWidth where possible.
//
// Each newline-separated paragraph is wrapped on its own. Words are
// accumulated greedily; a word that does not fit starts a new line, and a
// word wider than maxWidth is emitted whole on its own line.
func Wrap(m Measurer, text string, maxWidth float64, opts Options) []Line {
	var lines []Line

	for _, raw := range strings.Split(text, "\n") {
		words := whitespace.Split(raw, -1)

		current := words[0]
		metrics := m.MeasureText(current, opts)

		for _, word := range words[1:] {
			candidate := current + " " + word
			candidateMetrics := m.MeasureText(candidate, opts)

			if candidateMetrics.Width > maxWidth {
				lines = append(lines, Line{Text: current, Metrics: metrics})
				current = word
				metrics = m.MeasureText(word, opts)
			} else {
				current = candidate
				metrics = candidateMetrics
			}
		}

		lines = append(lines, Line{Text: current, Metrics: metrics})
	}

	return lines
}

// FontString formats opts as a CSS-style font shorthand, "{size}px {name}".
func FontString(opts Options) string {
	return strconv.FormatFloat(opts.FontSize, 'f', -1, 64) + "px " + opts.FontName
}

var fontPattern = regexp.MustCompile(`^\s*([0-9]*\.?[0-9]+)px\s+(.+?)\s*$`)

// ParseFontString is the inverse of FontString.
func ParseFontString(font string) (name string, size float64, err error) {
	m := fontPattern.FindStringSubmatch(font)
	if m == nil {
		return "", 0, fmt.Errorf("malformed font %q", font)
	}
	size, err = strconv.ParseFloat(m[1], 64)
	if err != nil {
		return "", 0, fmt.Errorf("malformed font size in %q: %w", font, err)
	}
	return m[2], size, nil
}
