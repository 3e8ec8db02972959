// Package summarizer builds the report written by render --summary: what
// the script contained, how long rendering took, which settings were in
// effect and what was written.
package summarizer

// Formatter renders a finished Summary as the text of a report file.
// Implementations must accept summaries with empty sections; Builder
// leaves a section zero when the run did not produce it.
type Formatter interface {
	Format(summary *Summary) string
}

// FormatFunc adapts a plain function to Formatter.
type FormatFunc func(summary *Summary) string

// Format calls f.
func (f FormatFunc) Format(summary *Summary) string {
	return f(summary)
}
