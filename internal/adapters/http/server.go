package httpadapter

import (
	"context"
	"errors"
	"time"

	"github.com/go-chi/chi/v5"

	api "sitehound/internal/api"
	"sitehound/internal/domain"
	"sitehound/internal/ports"
	resolutionsvc "sitehound/internal/services/resolutions"
	"sitehound/internal/workers/resolverunner"
)

// Server implements the generated StrictServerInterface.
type Server struct {
	resolutions ports.Resolutions
	jobs        ports.JobRepository
	processor   resolverunner.Processor
}

func New(resolutions ports.Resolutions, jobs ports.JobRepository, processor resolverunner.Processor) *Server {
	return &Server{resolutions: resolutions, jobs: jobs, processor: processor}
}

// Routes returns a chi.Router mounting the generated handlers.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	// Generated handler wiring
	handler := api.NewStrictHandler(s, nil)
	api.HandlerFromMux(handler, r)
	return r
}

// Strict handler methods

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	ok := "ok"
	return api.GetHealthz200JSONResponse{Status: &ok}, nil
}

func (s *Server) PostResolutions(ctx context.Context, req api.PostResolutionsRequestObject) (api.PostResolutionsResponseObject, error) {
	if req.Body == nil {
		return nil, errors.New("missing body")
	}
	id, err := s.resolutions.Enqueue(ctx, req.Body.Query)
	if err != nil {
		return nil, err
	}
	// Blocking path for small batches and testing
	wait := false
	if req.Params.Wait != nil {
		wait = *req.Params.Wait
	}
	if wait {
		// Apply optional timeout
		timeout := 30
		if req.Params.Timeout != nil && *req.Params.Timeout > 0 {
			timeout = *req.Params.Timeout
		}
		ctx2, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
		defer cancel()
		// Use the same processor the workers use to keep logic DRY
		if err := resolverunner.ProcessInline(ctx2, s.jobs, s.processor, id); err != nil {
			return nil, err
		}
		res, err := s.resolutions.Get(ctx2, id)
		if err != nil {
			return nil, err
		}
		return api.PostResolutions200JSONResponse(toAPI(res)), nil
	}
	return api.PostResolutions202JSONResponse(api.ResolutionAccepted{ResolutionId: id}), nil
}

func (s *Server) GetResolutionsId(ctx context.Context, req api.GetResolutionsIdRequestObject) (api.GetResolutionsIdResponseObject, error) {
	res, err := s.resolutions.Get(ctx, req.Id)
	if err != nil {
		if err == resolutionsvc.ErrNotFound {
			return api.GetResolutionsId404Response{}, nil
		}
		return nil, err
	}
	return api.GetResolutionsId200JSONResponse(toAPI(res)), nil
}

func toAPI(res domain.Resolution) api.Resolution {
	out := api.Resolution{Id: res.ID, Query: res.Query, Status: api.ResolutionStatus(res.Status)}
	if res.ResultURL != "" {
		out.Result = &res.ResultURL
	}
	if res.ResultDomain != "" {
		out.ResultDomain = &res.ResultDomain
	}
	if res.Tier != "" {
		tier := string(res.Tier)
		out.MatchTier = &tier
	}
	if res.Validation != "" {
		validation := string(res.Validation)
		out.Validation = &validation
	}
	return out
}
