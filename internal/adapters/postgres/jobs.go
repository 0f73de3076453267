package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"sitehound/internal/ports"
)

// ClaimNext selects the next queued job using SKIP LOCKED and marks it running.
func (db *DB) ClaimNext(ctx context.Context) (job ports.ResolveJob, found bool, err error) {
	// Use explicit transaction to safely lock and transition state
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return job, false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	// Lock the next queued job; the join carries the query so workers skip a
	// second lookup.
	err = tx.QueryRow(ctx, `
        SELECT j.id, j.resolution_id, r.query
        FROM resolution_jobs j
        JOIN resolutions r ON r.id = j.resolution_id
        WHERE j.status = 'queued'
        ORDER BY j.queued_at
        FOR UPDATE OF j SKIP LOCKED
        LIMIT 1
    `).Scan(&job.ID, &job.ResolutionID, &job.Query)
	if errors.Is(err, pgx.ErrNoRows) {
		return job, false, nil
	}
	if err != nil {
		return job, false, err
	}

	if _, err = tx.Exec(ctx, `
        UPDATE resolution_jobs SET status='running', started_at=now(), attempts=attempts+1 WHERE id=$1
    `, job.ID); err != nil {
		return job, false, err
	}
	if _, err = tx.Exec(ctx, `
        UPDATE resolutions SET status='running', started_at=COALESCE(started_at, now()) WHERE id=$1
    `, job.ResolutionID); err != nil {
		return job, false, err
	}
	return job, true, nil
}

func (db *DB) MarkCompleted(ctx context.Context, jobID string) error {
	// complete job and resolution atomically
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	var resolutionID string
	if err = tx.QueryRow(ctx, `SELECT resolution_id FROM resolution_jobs WHERE id=$1`, jobID).Scan(&resolutionID); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `UPDATE resolution_jobs SET status='completed', finished_at=now() WHERE id=$1`, jobID); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `UPDATE resolutions SET status='completed', finished_at=now() WHERE id=$1`, resolutionID); err != nil {
		return err
	}
	return nil
}

func (db *DB) MarkFailed(ctx context.Context, jobID string, reason string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()
	var resolutionID string
	if err = tx.QueryRow(ctx, `SELECT resolution_id FROM resolution_jobs WHERE id=$1`, jobID).Scan(&resolutionID); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `UPDATE resolution_jobs SET status='failed', reason=$2, finished_at=now() WHERE id=$1`, jobID, reason); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `UPDATE resolutions SET status='failed', finished_at=now() WHERE id=$1`, resolutionID); err != nil {
		return err
	}
	return nil
}

// StartJobForResolution marks the queued job for a specific resolution as
// running and returns it, for the synchronous wait path.
func (db *DB) StartJobForResolution(ctx context.Context, resolutionID string) (job ports.ResolveJob, err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return job, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	// lock the specific job row if queued
	err = tx.QueryRow(ctx, `
        SELECT j.id, j.resolution_id, r.query
        FROM resolution_jobs j
        JOIN resolutions r ON r.id = j.resolution_id
        WHERE j.resolution_id = $1 AND j.status = 'queued'
        FOR UPDATE OF j SKIP LOCKED
    `, resolutionID).Scan(&job.ID, &job.ResolutionID, &job.Query)
	if err != nil {
		return job, err
	}
	if _, err = tx.Exec(ctx, `UPDATE resolution_jobs SET status='running', started_at=now(), attempts=attempts+1 WHERE id=$1`, job.ID); err != nil {
		return job, err
	}
	if _, err = tx.Exec(ctx, `UPDATE resolutions SET status='running', started_at=COALESCE(started_at, now()) WHERE id=$1`, job.ResolutionID); err != nil {
		return job, err
	}
	return job, nil
}
