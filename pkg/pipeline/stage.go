// Package pipeline defines the render stages and the values passed
// between them: a draw script goes into the draw stage, and the finished
// surface goes into the export stage.
package pipeline

import "context"

// Stage turns one render step's input into its output. The orchestrator
// runs the draw stage and then the export stage, and stops at the first
// error or when ctx is canceled.
type Stage[In, Out any] interface {
	Execute(ctx context.Context, input In) (Out, error)
}

// StageFunc lets a plain function stand in for a stage, typically a fake
// draw or export step in orchestrator tests.
type StageFunc[In, Out any] func(ctx context.Context, input In) (Out, error)

// Execute calls f.
func (f StageFunc[In, Out]) Execute(ctx context.Context, input In) (Out, error) {
	return f(ctx, input)
}
