package resolverunner

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitehound/internal/domain"
	"sitehound/internal/ports"
)

type memJobs struct {
	mu        sync.Mutex
	queued    []ports.ResolveJob
	completed []string
	failed    map[string]string
}

func newMemJobs(jobs ...ports.ResolveJob) *memJobs {
	return &memJobs{queued: jobs, failed: map[string]string{}}
}

func (m *memJobs) ClaimNext(context.Context) (ports.ResolveJob, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.queued) == 0 {
		return ports.ResolveJob{}, false, nil
	}
	job := m.queued[0]
	m.queued = m.queued[1:]
	return job, true, nil
}

func (m *memJobs) MarkCompleted(_ context.Context, jobID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.completed = append(m.completed, jobID)
	return nil
}

func (m *memJobs) MarkFailed(_ context.Context, jobID, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failed[jobID] = reason
	return nil
}

func (m *memJobs) StartJobForResolution(_ context.Context, resolutionID string) (ports.ResolveJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, job := range m.queued {
		if job.ResolutionID == resolutionID {
			m.queued = append(m.queued[:i], m.queued[i+1:]...)
			return job, nil
		}
	}
	return ports.ResolveJob{}, errors.New("no queued job")
}

func (m *memJobs) completedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.completed)
}

type recordingProcessor struct {
	mu   sync.Mutex
	jobs []ports.ResolveJob
	err  error
}

func (p *recordingProcessor) Process(_ context.Context, job ports.ResolveJob) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.jobs = append(p.jobs, job)
	return p.err
}

func TestRunProcessesQueuedJobs(t *testing.T) {
	repo := newMemJobs(
		ports.ResolveJob{ID: "j1", ResolutionID: "r1", Query: "Acme Corp"},
		ports.ResolveJob{ID: "j2", ResolutionID: "r2", Query: "Globex"},
	)
	proc := &recordingProcessor{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	Run(ctx, repo, proc, 2, 5*time.Millisecond)

	require.Eventually(t, func() bool { return repo.completedCount() == 2 },
		2*time.Second, 10*time.Millisecond)
}

func TestRunMarksFailedJobs(t *testing.T) {
	repo := newMemJobs(ports.ResolveJob{ID: "j1", ResolutionID: "r1", Query: "Acme"})
	proc := &recordingProcessor{err: errors.New("boom")}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	Run(ctx, repo, proc, 1, 5*time.Millisecond)

	require.Eventually(t, func() bool {
		repo.mu.Lock()
		defer repo.mu.Unlock()
		return repo.failed["j1"] == "boom"
	}, 2*time.Second, 10*time.Millisecond)
	assert.Zero(t, repo.completedCount())
}

func TestProcessInline(t *testing.T) {
	repo := newMemJobs(ports.ResolveJob{ID: "j1", ResolutionID: "r1", Query: "Acme"})
	proc := &recordingProcessor{}

	require.NoError(t, ProcessInline(context.Background(), repo, proc, "r1"))
	assert.Equal(t, []string{"j1"}, repo.completed)
	require.Len(t, proc.jobs, 1)
	assert.Equal(t, "Acme", proc.jobs[0].Query)
}

func TestProcessInlineFailure(t *testing.T) {
	repo := newMemJobs(ports.ResolveJob{ID: "j1", ResolutionID: "r1", Query: "Acme"})
	proc := &recordingProcessor{err: errors.New("boom")}

	err := ProcessInline(context.Background(), repo, proc, "r1")
	assert.Error(t, err)
	assert.Equal(t, "boom", repo.failed["j1"])
}

func TestProcessInlineUnknownResolution(t *testing.T) {
	repo := newMemJobs()
	err := ProcessInline(context.Background(), repo, &recordingProcessor{}, "missing")
	assert.Error(t, err)
}

type memResolutions struct {
	mu       sync.Mutex
	outcomes map[string]domain.Outcome
}

func (m *memResolutions) Create(context.Context, string) (string, error) { return "", nil }
func (m *memResolutions) Get(context.Context, string) (domain.Resolution, bool, error) {
	return domain.Resolution{}, false, nil
}
func (m *memResolutions) SaveOutcome(_ context.Context, id string, out domain.Outcome) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.outcomes == nil {
		m.outcomes = map[string]domain.Outcome{}
	}
	m.outcomes[id] = out
	return nil
}

type stubPipeline struct{ out domain.Outcome }

func (s stubPipeline) Resolve(context.Context, string) domain.Outcome { return s.out }

func TestPipelineProcessorSavesOutcome(t *testing.T) {
	repo := &memResolutions{}
	out := domain.Outcome{URL: "https://acmecorp.io", Domain: "acmecorp", Tier: domain.TierExact, Validation: domain.ValidationFine}
	proc := PipelineProcessor{Pipeline: stubPipeline{out: out}, Repo: repo}

	require.NoError(t, proc.Process(context.Background(), ports.ResolveJob{ID: "j1", ResolutionID: "r1", Query: "Acme"}))
	assert.Equal(t, out, repo.outcomes["r1"])
}

func TestPipelineProcessorCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	proc := PipelineProcessor{Pipeline: stubPipeline{}, Repo: &memResolutions{}}
	err := proc.Process(ctx, ports.ResolveJob{ID: "j1", ResolutionID: "r1"})
	assert.ErrorIs(t, err, context.Canceled)
}
