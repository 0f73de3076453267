package ports

import "context"

type ResolveJob struct {
	ID           string
	ResolutionID string
	Query        string
}

// JobRepository supports claiming and updating resolution jobs.
type JobRepository interface {
	ClaimNext(ctx context.Context) (job ResolveJob, found bool, err error)
	MarkCompleted(ctx context.Context, jobID string) error
	MarkFailed(ctx context.Context, jobID string, reason string) error
	StartJobForResolution(ctx context.Context, resolutionID string) (job ResolveJob, err error)
}
