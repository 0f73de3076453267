package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"sitehound/internal/domain"
)

// ResolutionRepository

func (db *DB) Create(ctx context.Context, query string) (string, error) {
	var id string
	err := db.Pool.QueryRow(ctx, `
        INSERT INTO resolutions (query, status)
        VALUES ($1, 'queued')
        RETURNING id
    `, query).Scan(&id)
	if err != nil {
		return "", err
	}
	// create job row
	_, err = db.Pool.Exec(ctx, `INSERT INTO resolution_jobs (resolution_id) VALUES ($1)`, id)
	return id, err
}

func (db *DB) Get(ctx context.Context, resolutionID string) (domain.Resolution, bool, error) {
	var res domain.Resolution
	var resultURL, resultDomain, tier, validation *string
	err := db.Pool.QueryRow(ctx, `
        SELECT id, query, status, result_url, result_domain, match_tier, validation, created_at, finished_at
        FROM resolutions WHERE id = $1
    `, resolutionID).Scan(&res.ID, &res.Query, &res.Status, &resultURL, &resultDomain, &tier, &validation, &res.CreatedAt, &res.FinishedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return res, false, nil
	}
	if err != nil {
		return res, false, err
	}
	if resultURL != nil {
		res.ResultURL = *resultURL
	}
	if resultDomain != nil {
		res.ResultDomain = *resultDomain
	}
	if tier != nil {
		res.Tier = domain.MatchTier(*tier)
	}
	if validation != nil {
		res.Validation = domain.ValidationStatus(*validation)
	}
	return res, true, nil
}

func (db *DB) SaveOutcome(ctx context.Context, resolutionID string, out domain.Outcome) error {
	_, err := db.Pool.Exec(ctx, `
        UPDATE resolutions
        SET result_url=$2, result_domain=$3, match_tier=$4, validation=$5
        WHERE id=$1
    `, resolutionID, out.URL, out.Domain, string(out.Tier), string(out.Validation))
	return err
}
