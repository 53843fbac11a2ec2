// Package job репозиторий очереди отложенного завершения бронирований.
// Записи создаются триггером БД при вставке бронирования; сервис их
// только читает и помечает обработанными.
package job

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-PitchBookingService/internal/domain"
	"github.com/m04kA/SMC-PitchBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PitchBookingService/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с очередью booking_jobs
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория задач
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetDuePending возвращает до limit ожидающих задач, чьё время наступило (run_at <= now)
func (r *Repository) GetDuePending(ctx context.Context, now time.Time, limit uint64) ([]*domain.BookingJob, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_id",
		"run_at",
		"status",
		"processed_at",
		"created_at",
	).
		From("booking_jobs").
		Where(squirrel.Eq{"status": domain.JobStatusPending}).
		Where(squirrel.LtOrEq{"run_at": now}).
		OrderBy("run_at ASC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDuePending - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDuePending - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	jobs := make([]*domain.BookingJob, 0)
	for rows.Next() {
		var j domain.BookingJob
		var processedAt sql.NullTime
		var createdAt sql.NullTime

		err := rows.Scan(
			&j.ID,
			&j.BookingID,
			&j.RunAt,
			&j.Status,
			&processedAt,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetDuePending - scan row: %v", ErrScanRow, err)
		}

		if processedAt.Valid {
			t := processedAt.Time
			j.ProcessedAt = &t
		}
		j.CreatedAt = createdAt.Time

		jobs = append(jobs, &j)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetDuePending - rows error: %v", ErrScanRow, err)
	}

	return jobs, nil
}

// MarkProcessed помечает задачу обработанной. Условие status='pending'
// гарантирует, что задача логически обрабатывается не более одного раза.
func (r *Repository) MarkProcessed(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_jobs").
		Set("status", domain.JobStatusProcessed).
		Set("processed_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.JobStatusPending}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkProcessed - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkProcessed - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkProcessed - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrJobNotFound
	}

	return nil
}
