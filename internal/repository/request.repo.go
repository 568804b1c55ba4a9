package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rajat8876/VendorIQ2/internal/domain"
)

type ServiceRequestRepository struct {
	db *pgxpool.Pool
}

func NewServiceRequestRepository(db *pgxpool.Pool) *ServiceRequestRepository {
	return &ServiceRequestRepository{db: db}
}

func (r *ServiceRequestRepository) Create(ctx context.Context, req *domain.ServiceRequest) error {
	custom, err := json.Marshal(req.CustomFields)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO service_requests (id, user_id, category_id, title, description,
			custom_fields, status, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,NOW(),NOW())
	`, req.ID, req.UserID, req.CategoryID, req.Title, req.Description, custom, req.Status)
	return err
}
