package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sejin-enc/laborcost-backend-go/internal/domain/registry"
	"github.com/sejin-enc/laborcost-backend-go/internal/pkg/database"
)

type workerRepository struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) registry.WorkerRepository {
	return &workerRepository{db: db}
}

const workerColumns = `id, name, phone, address, bank_name, bank_account, category, team_name, created_at, updated_at`

func (r *workerRepository) Create(ctx context.Context, worker registry.Worker) (registry.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workers (id, name, phone, address, bank_name, bank_account, category, team_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + workerColumns

	var w registry.Worker
	err := q.QueryRow(ctx, query,
		worker.ID, worker.Name, worker.Phone, worker.Address,
		worker.BankName, worker.BankAccount, worker.Category, worker.TeamName,
	).Scan(
		&w.ID, &w.Name, &w.Phone, &w.Address, &w.BankName, &w.BankAccount,
		&w.Category, &w.TeamName, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return registry.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return w, nil
}

func (r *workerRepository) GetByID(ctx context.Context, id string) (registry.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workerColumns + ` FROM workers WHERE id = $1`

	var w registry.Worker
	err := q.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.Name, &w.Phone, &w.Address, &w.BankName, &w.BankAccount,
		&w.Category, &w.TeamName, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return registry.Worker{}, registry.ErrWorkerNotFound
		}
		return registry.Worker{}, fmt.Errorf("failed to get worker: %w", err)
	}

	return w, nil
}

func (r *workerRepository) GetByIDs(ctx context.Context, ids []string) (map[string]registry.Worker, error) {
	result := make(map[string]registry.Worker)
	if len(ids) == 0 {
		return result, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workerColumns + ` FROM workers WHERE id = ANY($1)`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get workers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var w registry.Worker
		if err := rows.Scan(
			&w.ID, &w.Name, &w.Phone, &w.Address, &w.BankName, &w.BankAccount,
			&w.Category, &w.TeamName, &w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		result[w.ID] = w
	}

	return result, nil
}

func (r *workerRepository) List(ctx context.Context) ([]registry.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workerColumns + ` FROM workers ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []registry.Worker
	for rows.Next() {
		var w registry.Worker
		if err := rows.Scan(
			&w.ID, &w.Name, &w.Phone, &w.Address, &w.BankName, &w.BankAccount,
			&w.Category, &w.TeamName, &w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}

	return workers, nil
}
