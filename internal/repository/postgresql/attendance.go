package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sejin-enc/laborcost-backend-go/internal/domain/attendance"
	"github.com/sejin-enc/laborcost-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.EntrySource {
	return &attendanceRepository{db: db}
}

const entryColumns = `id, work_date, site_id, site_name, worker_id, worker_name, team_name, role, man_day, unit_price, created_at, updated_at`

func scanEntry(row pgx.Row) (attendance.Entry, error) {
	var e attendance.Entry
	err := row.Scan(
		&e.ID, &e.WorkDate, &e.SiteID, &e.SiteName, &e.WorkerID, &e.WorkerName,
		&e.TeamName, &e.Role, &e.ManDay, &e.UnitPrice, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *attendanceRepository) Create(ctx context.Context, entry attendance.Entry) (attendance.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_entries (id, work_date, site_id, site_name, worker_id, worker_name, team_name, role, man_day, unit_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + entryColumns

	created, err := scanEntry(q.QueryRow(ctx, query,
		entry.ID, entry.WorkDate, entry.SiteID, entry.SiteName, entry.WorkerID,
		entry.WorkerName, entry.TeamName, entry.Role, entry.ManDay, entry.UnitPrice,
	))
	if err != nil {
		return attendance.Entry{}, fmt.Errorf("failed to create attendance entry: %w", err)
	}

	return created, nil
}

func (r *attendanceRepository) CreateBatch(ctx context.Context, entries []attendance.Entry) ([]attendance.Entry, error) {
	var created []attendance.Entry

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO attendance_entries (id, work_date, site_id, site_name, worker_id, worker_name, team_name, role, man_day, unit_price)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING ` + entryColumns

		for _, entry := range entries {
			e, err := scanEntry(tx.QueryRow(ctx, query,
				entry.ID, entry.WorkDate, entry.SiteID, entry.SiteName, entry.WorkerID,
				entry.WorkerName, entry.TeamName, entry.Role, entry.ManDay, entry.UnitPrice,
			))
			if err != nil {
				return fmt.Errorf("failed to create attendance entry: %w", err)
			}
			created = append(created, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + entryColumns + ` FROM attendance_entries WHERE id = $1`

	e, err := scanEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Entry{}, attendance.ErrEntryNotFound
		}
		return attendance.Entry{}, fmt.Errorf("failed to get attendance entry: %w", err)
	}

	return e, nil
}

func (r *attendanceRepository) FetchRange(ctx context.Context, start, end time.Time, siteID, workerID *string) ([]attendance.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entryColumns + `
		FROM attendance_entries
		WHERE work_date >= $1 AND work_date <= $2
	`
	args := []interface{}{start, end}
	argIdx := 3

	if siteID != nil {
		query += fmt.Sprintf(" AND site_id = $%d", argIdx)
		args = append(args, *siteID)
		argIdx++
	}
	if workerID != nil {
		query += fmt.Sprintf(" AND worker_id = $%d", argIdx)
		args = append(args, *workerID)
		argIdx++
	}
	query += " ORDER BY work_date, worker_name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance entries: %w", err)
	}
	defer rows.Close()

	var entries []attendance.Entry
	for rows.Next() {
		var e attendance.Entry
		if err := rows.Scan(
			&e.ID, &e.WorkDate, &e.SiteID, &e.SiteName, &e.WorkerID, &e.WorkerName,
			&e.TeamName, &e.Role, &e.ManDay, &e.UnitPrice, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrEntryNotFound
	}

	return nil
}
