// Package summarizer provides summary generation for render results.
package summarizer

import "time"

// Summary contains all data collected during a render.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Script information
	Script ScriptInfo

	// Timing results
	Timing TimingInfo

	// Render settings
	Settings Settings

	// Output details
	Output OutputInfo
}

// ScriptInfo describes the rendered script.
type ScriptInfo struct {
	Path    string
	OpCount int
	OpKinds map[string]int // op name -> count
}

// TimingInfo contains timing measurements.
type TimingInfo struct {
	TotalDurationMs int
}

// Settings contains the render configuration.
type Settings struct {
	Backend     string
	Format      string
	Quality     int
	ScaleFactor float64
	Fonts       []string
	Debug       bool
}

// OutputInfo contains information about the output file.
type OutputInfo struct {
	Path     string
	FileSize int64
	Width    int
	Height   int
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithScript sets script information. kinds is copied.
func (b *Builder) WithScript(path string, opCount int, kinds map[string]int) *Builder {
	copied := make(map[string]int, len(kinds))
	for k, v := range kinds {
		copied[k] = v
	}
	b.summary.Script = ScriptInfo{
		Path:    path,
		OpCount: opCount,
		OpKinds: copied,
	}
	return b
}

// WithTiming sets timing information.
func (b *Builder) WithTiming(totalDuration time.Duration) *Builder {
	b.summary.Timing = TimingInfo{
		TotalDurationMs: int(totalDuration.Milliseconds()),
	}
	return b
}

// WithSettings sets render settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithOutput sets output information.
func (b *Builder) WithOutput(output OutputInfo) *Builder {
	b.summary.Output = output
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
