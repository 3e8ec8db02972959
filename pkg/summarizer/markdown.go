package summarizer

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// MarkdownFormatter renders a Summary as a Markdown report.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format implements the Formatter interface.
func (f *MarkdownFormatter) Format(s *Summary) string {
	var b strings.Builder

	b.WriteString("# Render Summary\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", s.GeneratedAt.UTC().Format(time.RFC3339))

	b.WriteString("## Script\n\n")
	b.WriteString("| Item | Value |\n|------|-------|\n")
	fmt.Fprintf(&b, "| Path | %s |\n", orDash(s.Script.Path))
	fmt.Fprintf(&b, "| Ops | %d |\n", s.Script.OpCount)
	for _, kind := range sortedKeys(s.Script.OpKinds) {
		fmt.Fprintf(&b, "| `%s` | %d |\n", kind, s.Script.OpKinds[kind])
	}
	b.WriteString("\n")

	b.WriteString("## Output\n\n")
	b.WriteString("| Item | Value |\n|------|-------|\n")
	fmt.Fprintf(&b, "| Path | %s |\n", orDash(s.Output.Path))
	fmt.Fprintf(&b, "| Size | %dx%d |\n", s.Output.Width, s.Output.Height)
	fmt.Fprintf(&b, "| File Size | %s |\n", formatBytes(s.Output.FileSize))
	fmt.Fprintf(&b, "| Duration | %d ms |\n", s.Timing.TotalDurationMs)
	b.WriteString("\n")

	b.WriteString("## Settings\n\n")
	b.WriteString("| Item | Value |\n|------|-------|\n")
	fmt.Fprintf(&b, "| Backend | %s |\n", orDash(s.Settings.Backend))
	fmt.Fprintf(&b, "| Format | %s |\n", orDash(s.Settings.Format))
	if strings.EqualFold(s.Settings.Format, "jpeg") {
		fmt.Fprintf(&b, "| Quality | %d |\n", s.Settings.Quality)
	}
	fmt.Fprintf(&b, "| Scale Factor | %g |\n", s.Settings.ScaleFactor)
	if len(s.Settings.Fonts) > 0 {
		fmt.Fprintf(&b, "| Fonts | %s |\n", strings.Join(s.Settings.Fonts, ", "))
	}
	if s.Settings.Debug {
		b.WriteString("| Debug | enabled |\n")
	}

	return b.String()
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// formatBytes formats a byte count with binary units.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(n)/float64(div), "KMGT"[exp])
}

var _ Formatter = (*MarkdownFormatter)(nil)
