package port

import (
	"context"

	"github.com/bnema/vodpipe/internal/domain"
)

// AssetStore persists MediaAsset records. Every Mark* method is a guarded
// forward transition and returns domain.ErrInvalidTransition when the stored
// state does not allow it.
type AssetStore interface {
	Create(ctx context.Context, a *domain.MediaAsset) error
	Get(ctx context.Context, id string) (*domain.MediaAsset, error)
	MarkProcessing(ctx context.Context, id string) error
	MarkProcessed(ctx context.Context, id string, r domain.ProcessedResult) error
	MarkFailed(ctx context.Context, id string, reason string) error
	ListByState(ctx context.Context, states []domain.AssetState) ([]*domain.MediaAsset, error)
	Ping(ctx context.Context) error
	Close() error
}
