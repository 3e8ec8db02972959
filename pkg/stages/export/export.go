// Package export implements the stage that encodes a drawn target.
package export

import (
	"context"
	"fmt"

	"github.com/user/mosaic/pkg/adapters/ggcanvas"
	"github.com/user/mosaic/pkg/drawing"
	"github.com/user/mosaic/pkg/pipeline"
	"github.com/user/mosaic/pkg/ports"
)

// DefaultQuality is used when the input leaves the JPEG quality unset.
const DefaultQuality = 90

// Stage encodes a target into PNG, JPEG or PDF.
type Stage struct {
	logger ports.Logger
}

// NewStage creates a new export stage.
func NewStage(logger ports.Logger) *Stage {
	return &Stage{logger: logger.WithComponent("export")}
}

// Execute encodes the target. Targets that export themselves are asked
// first; otherwise raster targets are encoded from their image.
func (s *Stage) Execute(ctx context.Context, input pipeline.ExportInput) (pipeline.ExportResult, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.ExportResult{}, err
	}
	if input.Target == nil {
		return pipeline.ExportResult{}, fmt.Errorf("export: %w: no target", drawing.ErrInvalidArgument)
	}

	quality := input.Quality
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}

	var (
		data []byte
		err  error
	)
	switch t := input.Target.(type) {
	case ports.Exporter:
		data, err = t.Export(input.Format, quality)
	case ports.ImageTarget:
		data, err = ggcanvas.EncodeImage(t.Image(), input.Format, quality)
	default:
		err = fmt.Errorf("target %T cannot be exported", input.Target)
	}
	if err != nil {
		return pipeline.ExportResult{}, fmt.Errorf("export %s: %w: %v", input.Format, drawing.ErrUnsupportedFormat, err)
	}

	s.logger.Debug("Exported %s: %d bytes", input.Format, len(data))
	return pipeline.ExportResult{Data: data, Format: input.Format}, nil
}
