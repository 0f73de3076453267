package resolverunner

import (
	"context"
	"log"
	"time"

	"sitehound/internal/domain"
	"sitehound/internal/ports"
)

// Processor performs the resolution work for a claimed job.
type Processor interface {
	Process(ctx context.Context, job ports.ResolveJob) error
}

// Pipeline resolves one query to an outcome.
type Pipeline interface {
	Resolve(ctx context.Context, query string) domain.Outcome
}

// PipelineProcessor runs the resolver pipeline and persists the outcome.
type PipelineProcessor struct {
	Pipeline Pipeline
	Repo     ports.ResolutionRepository
}

func (p PipelineProcessor) Process(ctx context.Context, job ports.ResolveJob) error {
	out := p.Pipeline.Resolve(ctx, job.Query)
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.Repo.SaveOutcome(ctx, job.ResolutionID, out)
}

// Run starts worker goroutines that claim jobs and process them.
func Run(ctx context.Context, repo ports.JobRepository, processor Processor, concurrency int, pollInterval time.Duration) {
	if concurrency < 1 {
		return
	}
	jobsCh := make(chan ports.ResolveJob, concurrency)

	// dispatcher loop
	go func() {
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				close(jobsCh)
				return
			case <-ticker.C:
				for {
					job, found, err := repo.ClaimNext(ctx)
					if err != nil {
						log.Printf("job claim error: %v", err)
						break
					}
					if !found {
						break
					}
					jobsCh <- job
				}
			}
		}
	}()

	// workers
	for i := 0; i < concurrency; i++ {
		go func(idx int) {
			for job := range jobsCh {
				if err := processor.Process(ctx, job); err != nil {
					_ = repo.MarkFailed(ctx, job.ID, err.Error())
					log.Printf("worker %d: job %s failed: %v", idx, job.ID, err)
					continue
				}
				if err := repo.MarkCompleted(ctx, job.ID); err != nil {
					log.Printf("worker %d: complete err: %v", idx, err)
				}
			}
		}(i)
	}
}

// ProcessInline starts and processes a specific resolution synchronously
// using the same processor logic as the background workers.
func ProcessInline(ctx context.Context, repo ports.JobRepository, processor Processor, resolutionID string) error {
	job, err := repo.StartJobForResolution(ctx, resolutionID)
	if err != nil {
		return err
	}
	if err := processor.Process(ctx, job); err != nil {
		_ = repo.MarkFailed(ctx, job.ID, err.Error())
		return err
	}
	return repo.MarkCompleted(ctx, job.ID)
}
