package resolutions

import (
	"context"
	"strings"

	"sitehound/internal/domain"
	"sitehound/internal/ports"
)

type Service struct {
	repo ports.ResolutionRepository
}

func New(repo ports.ResolutionRepository) *Service { return &Service{repo: repo} }

// Enqueue stores a resolution request and its queued job.
func (s *Service) Enqueue(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", ErrEmptyQuery
	}
	return s.repo.Create(ctx, query)
}

func (s *Service) Get(ctx context.Context, resolutionID string) (domain.Resolution, error) {
	res, found, err := s.repo.Get(ctx, resolutionID)
	if err != nil {
		return domain.Resolution{}, err
	}
	if !found {
		return domain.Resolution{}, ErrNotFound
	}
	return res, nil
}

var (
	ErrNotFound   = errString("not found")
	ErrEmptyQuery = errString("empty query")
)

type errString string

func (e errString) Error() string { return string(e) }
