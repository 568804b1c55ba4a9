package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rajat8876/VendorIQ2/internal/domain"
)

type CatalogRepository struct {
	db *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) ListIndustries(ctx context.Context) ([]domain.Industry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, slug, is_active FROM industries
		WHERE is_active=TRUE ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Industry
	for rows.Next() {
		var ind domain.Industry
		if err := rows.Scan(&ind.ID, &ind.Name, &ind.Slug, &ind.IsActive); err != nil {
			return nil, err
		}
		out = append(out, ind)
	}
	return out, rows.Err()
}

func (r *CatalogRepository) ListCategories(ctx context.Context, industryID int64) ([]domain.Category, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, industry_id, name, slug, is_active FROM categories
		WHERE industry_id=$1 AND is_active=TRUE ORDER BY name
	`, industryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.IndustryID, &c.Name, &c.Slug, &c.IsActive); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
