package pitch

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-PitchBookingService/internal/domain"
	"github.com/m04kA/SMC-PitchBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PitchBookingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-PitchBookingService/pkg/types"
)

type DBExecutor = dbmetrics.DBExecutor

var pitchColumns = []string{
	"id",
	"name",
	"location",
	"capacity",
	"open_time",
	"close_time",
	"sort_order",
	"created_at",
}

// Repository репозиторий для работы с площадками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все площадки, упорядоченные по sort_order и имени
func (r *Repository) List(ctx context.Context) ([]*domain.Pitch, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(pitchColumns...).
		From("pitches").
		OrderBy("sort_order ASC", "name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	pitches := make([]*domain.Pitch, 0)
	for rows.Next() {
		pitch, err := scanPitch(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		pitches = append(pitches, pitch)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return pitches, nil
}

// GetByID получает площадку по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Pitch, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(pitchColumns...).
		From("pitches").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	pitch, err := scanPitch(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPitchNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan pitch: %v", ErrScanRow, err)
	}

	return pitch, nil
}

// Create создает новую площадку
func (r *Repository) Create(ctx context.Context, pitch *domain.Pitch) (*domain.Pitch, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("pitches").
		Columns(
			"name",
			"location",
			"capacity",
			"open_time",
			"close_time",
			"sort_order",
		).
		Values(
			pitch.Name,
			pitch.Location,
			pitch.Capacity,
			pitch.OpenTime,
			pitch.CloseTime,
			pitch.SortOrder,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&pitch.ID,
		&createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	pitch.CreatedAt = createdAt.Time

	return pitch, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPitch(row rowScanner) (*domain.Pitch, error) {
	var pitch domain.Pitch
	var openTime, closeTime sql.NullString
	var sortOrder sql.NullInt64
	var createdAt sql.NullTime

	err := row.Scan(
		&pitch.ID,
		&pitch.Name,
		&pitch.Location,
		&pitch.Capacity,
		&openTime,
		&closeTime,
		&sortOrder,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	// Пустые часы работы допустимы: генератор подставит дефолтный час
	if openTime.Valid {
		pitch.OpenTime = types.TimeString(openTime.String)
	}
	if closeTime.Valid {
		pitch.CloseTime = types.TimeString(closeTime.String)
	}
	pitch.SortOrder = int(sortOrder.Int64)
	pitch.CreatedAt = createdAt.Time

	return &pitch, nil
}
