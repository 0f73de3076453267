package httpadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitehound/internal/domain"
	"sitehound/internal/ports"
	resolutionsvc "sitehound/internal/services/resolutions"
)

// memBackend fakes the resolutions service, job repository and processor in
// one in-memory store.
type memBackend struct {
	mu   sync.Mutex
	recs map[string]*domain.Resolution
	n    int
	out  domain.Outcome
}

func newMemBackend(out domain.Outcome) *memBackend {
	return &memBackend{recs: map[string]*domain.Resolution{}, out: out}
}

func (m *memBackend) Enqueue(_ context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", resolutionsvc.ErrEmptyQuery
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.n++
	id := fmt.Sprintf("r%d", m.n)
	m.recs[id] = &domain.Resolution{ID: id, Query: query, Status: domain.StatusQueued}
	return id, nil
}

func (m *memBackend) Get(_ context.Context, id string) (domain.Resolution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.recs[id]
	if !ok {
		return domain.Resolution{}, resolutionsvc.ErrNotFound
	}
	return *rec, nil
}

func (m *memBackend) ClaimNext(context.Context) (ports.ResolveJob, bool, error) {
	return ports.ResolveJob{}, false, nil
}

func (m *memBackend) StartJobForResolution(_ context.Context, id string) (ports.ResolveJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.recs[id]
	if !ok {
		return ports.ResolveJob{}, resolutionsvc.ErrNotFound
	}
	rec.Status = domain.StatusRunning
	return ports.ResolveJob{ID: "j-" + id, ResolutionID: id, Query: rec.Query}, nil
}

func (m *memBackend) MarkCompleted(_ context.Context, jobID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := strings.TrimPrefix(jobID, "j-")
	if rec, ok := m.recs[id]; ok {
		rec.Status = domain.StatusCompleted
	}
	return nil
}

func (m *memBackend) MarkFailed(_ context.Context, jobID, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := strings.TrimPrefix(jobID, "j-")
	if rec, ok := m.recs[id]; ok {
		rec.Status = domain.StatusFailed
	}
	return nil
}

func (m *memBackend) Process(_ context.Context, job ports.ResolveJob) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := m.recs[job.ResolutionID]
	rec.ResultURL = m.out.URL
	rec.ResultDomain = m.out.Domain
	rec.Tier = m.out.Tier
	rec.Validation = m.out.Validation
	return nil
}

func newTestServer(t *testing.T, backend *memBackend) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(New(backend, backend, backend).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func TestGetHealthz(t *testing.T) {
	srv := newTestServer(t, newMemBackend(domain.Outcome{}))
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPostResolutionsAccepted(t *testing.T) {
	srv := newTestServer(t, newMemBackend(domain.Outcome{}))

	resp, err := http.Post(srv.URL+"/resolutions", "application/json",
		strings.NewReader(`{"query":"Acme Corp"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var body struct {
		ResolutionID string `json:"resolution_id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.ResolutionID)
}

func TestPostResolutionsWait(t *testing.T) {
	out := domain.Outcome{
		URL:        "https://acmecorp.io/x",
		Domain:     "acmecorp",
		Tier:       domain.TierExact,
		Validation: domain.ValidationFine,
	}
	srv := newTestServer(t, newMemBackend(out))

	resp, err := http.Post(srv.URL+"/resolutions?wait=true", "application/json",
		strings.NewReader(`{"query":"Acme Corp"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Status    string  `json:"status"`
		Result    *string `json:"result"`
		MatchTier *string `json:"match_tier"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "completed", body.Status)
	require.NotNil(t, body.Result)
	assert.Equal(t, "https://acmecorp.io/x", *body.Result)
	require.NotNil(t, body.MatchTier)
	assert.Equal(t, "exact match", *body.MatchTier)
}

func TestGetResolutionsIdNotFound(t *testing.T) {
	srv := newTestServer(t, newMemBackend(domain.Outcome{}))
	resp, err := http.Get(srv.URL + "/resolutions/nope")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetResolutionsId(t *testing.T) {
	backend := newMemBackend(domain.Outcome{})
	id, err := backend.Enqueue(context.Background(), "Acme Corp")
	require.NoError(t, err)

	srv := newTestServer(t, backend)
	resp, err := http.Get(srv.URL + "/resolutions/" + id)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		ID     string `json:"id"`
		Query  string `json:"query"`
		Status string `json:"status"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, id, body.ID)
	assert.Equal(t, "Acme Corp", body.Query)
	assert.Equal(t, "queued", body.Status)
}
