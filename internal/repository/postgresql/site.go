package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/sejin-enc/laborcost-backend-go/internal/domain/registry"
	"github.com/sejin-enc/laborcost-backend-go/internal/pkg/database"
)

type siteRepository struct {
	db *database.DB
}

func NewSiteRepository(db *database.DB) registry.SiteRepository {
	return &siteRepository{db: db}
}

func (r *siteRepository) Create(ctx context.Context, site registry.Site) (registry.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sites (id, name, address, active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, address, active, created_at, updated_at
	`

	var s registry.Site
	err := q.QueryRow(ctx, query, site.ID, site.Name, site.Address, site.Active).Scan(
		&s.ID, &s.Name, &s.Address, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_sites_name") {
			return registry.Site{}, registry.ErrSiteNameExists
		}
		return registry.Site{}, fmt.Errorf("failed to create site: %w", err)
	}

	return s, nil
}

func (r *siteRepository) GetByID(ctx context.Context, id string) (registry.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, address, active, created_at, updated_at FROM sites WHERE id = $1`

	var s registry.Site
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Address, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return registry.Site{}, registry.ErrSiteNotFound
		}
		return registry.Site{}, fmt.Errorf("failed to get site: %w", err)
	}

	return s, nil
}

func (r *siteRepository) List(ctx context.Context, activeOnly bool) ([]registry.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, address, active, created_at, updated_at FROM sites`
	if activeOnly {
		query += " WHERE active = true"
	}
	query += " ORDER BY name"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	defer rows.Close()

	var sites []registry.Site
	for rows.Next() {
		var s registry.Site
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan site: %w", err)
		}
		sites = append(sites, s)
	}

	return sites, nil
}
