package ports

import (
	"context"

	"sitehound/internal/domain"
)

// ResolutionRepository stores resolution requests and their outcomes.
type ResolutionRepository interface {
	Create(ctx context.Context, query string) (resolutionID string, err error)
	Get(ctx context.Context, resolutionID string) (res domain.Resolution, found bool, err error)
	SaveOutcome(ctx context.Context, resolutionID string, out domain.Outcome) error
}
