package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"Shibaboard/internal/core/reports"
)

type postgresReportRepo struct {
	db *sql.DB
}

// NewReportRepository creates a new PostgreSQL report repository
func NewReportRepository(db *sql.DB) reports.Repository {
	return &postgresReportRepo{db: db}
}

func (r *postgresReportRepo) Create(ctx context.Context, report *reports.Report) error {
	query := `
		INSERT INTO reports (reporter_id, target_kind, target_id, reason, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		report.ReporterID, report.TargetKind, report.TargetID,
		report.Reason, report.Status,
	).Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt)
	if err != nil {
		return wrapErr("insert report", err)
	}
	return nil
}

// HasRecent checks the sliding dedup window: any report by this reporter on
// this target created at or after since counts, regardless of status
func (r *postgresReportRepo) HasRecent(ctx context.Context, reporterID int64, targetKind string, targetID int64, since time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM reports
			WHERE reporter_id = $1
				AND target_kind = $2
				AND target_id = $3
				AND created_at >= $4
		)
	`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, reporterID, targetKind, targetID, since).Scan(&exists)
	if err != nil {
		return false, wrapErr("check recent reports", err)
	}
	return exists, nil
}

// UpdateStatus transitions the report inside one transaction. The row is
// locked and re-read before the transition is validated, so a resolution
// committed by a concurrent admin is seen here, not overwritten.
func (r *postgresReportRepo) UpdateStatus(ctx context.Context, id int64, status string) (*reports.Report, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, wrapErr("begin transaction", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && rollbackErr != sql.ErrTxDone {
			log.Printf("Failed to rollback transaction: %v", rollbackErr)
		}
	}()

	var report reports.Report
	err = tx.QueryRowContext(ctx, `
		SELECT id, reporter_id, target_kind, target_id, reason, status, created_at
		FROM reports
		WHERE id = $1
		FOR UPDATE
	`, id).Scan(
		&report.ID, &report.ReporterID, &report.TargetKind, &report.TargetID,
		&report.Reason, &report.Status, &report.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, reports.ErrReportNotFound
	}
	if err != nil {
		return nil, wrapErr("lock report", err)
	}

	if !reports.AllowedTransition(report.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", reports.ErrInvalidTransition, report.Status, status)
	}

	err = tx.QueryRowContext(ctx, `
		UPDATE reports
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING status, updated_at
	`, id, status).Scan(&report.Status, &report.UpdatedAt)
	if err != nil {
		return nil, wrapErr("update report status", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, wrapErr("commit report status", err)
	}
	return &report, nil
}
