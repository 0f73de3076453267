package domain

import "time"

// Core domain models used internally. API types are generated from OpenAPI and
// sit in internal/api; keep these decoupled where helpful.

// MatchTier labels the matching rule that selected a candidate, in
// decreasing strictness.
type MatchTier string

const (
	TierExact  MatchTier = "exact match"
	TierSemi   MatchTier = "semi match"
	TierLetter MatchTier = "letter match"
	TierNone   MatchTier = "no result"
)

// ValidationStatus classifies the title check of a winning URL.
// ValidationNone means the pipeline never reached validation.
type ValidationStatus string

const (
	ValidationFine  ValidationStatus = "fine"
	ValidationCheck ValidationStatus = "check"
	ValidationNone  ValidationStatus = "no result"
)

// NoResultURL is the sentinel standing in for a URL when resolution fails.
const NoResultURL = "-"

// Resolution lifecycle states.
const (
	StatusQueued    = "queued"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Candidate pairs a search-result URL with the normalized root-domain label
// extracted from it. Candidate slices keep search rank order; the matcher's
// tie-break depends on that order.
type Candidate struct {
	URL    string
	Domain string
}

// Outcome is the structured result of one pipeline run.
type Outcome struct {
	URL        string
	Domain     string
	Tier       MatchTier
	Validation ValidationStatus
}

// NoResult returns the absorbing failure outcome.
func NoResult() Outcome {
	return Outcome{URL: NoResultURL, Domain: NoResultURL, Tier: TierNone, Validation: ValidationNone}
}

// Strings renders the legacy (result, status) pair: the validation status
// once validation was reached, the match tier label otherwise.
func (o Outcome) Strings() (string, string) {
	if o.Tier == TierNone {
		return NoResultURL, string(TierNone)
	}
	if o.Validation != ValidationNone {
		return o.URL, string(o.Validation)
	}
	return o.URL, string(o.Tier)
}

// Resolution is a stored resolution request and, once completed, its outcome.
type Resolution struct {
	ID           string
	Query        string
	Status       string // queued|running|completed|failed
	ResultURL    string
	ResultDomain string
	Tier         MatchTier
	Validation   ValidationStatus
	CreatedAt    time.Time
	FinishedAt   *time.Time
}

// Outcome rebuilds the structured outcome from a stored resolution.
func (r Resolution) Outcome() Outcome {
	return Outcome{URL: r.ResultURL, Domain: r.ResultDomain, Tier: r.Tier, Validation: r.Validation}
}
