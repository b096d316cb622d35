package port

import (
	"context"

	"github.com/bnema/vodpipe/internal/domain"
)

// MediaEngine is the external media-processing capability. All calls block
// until the underlying process exits or ctx is done.
type MediaEngine interface {
	Probe(ctx context.Context, inputPath string) (*domain.ProbeResult, error)
	Thumbnail(ctx context.Context, inputPath, outDir string, atPercent float64) (thumbPath string, err error)
	Segment(ctx context.Context, inputPath, outDir string) (manifestPath string, err error)
}
