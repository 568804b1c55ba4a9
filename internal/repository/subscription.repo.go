package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rajat8876/VendorIQ2/internal/domain"
)

type SubscriptionRepository struct {
	db *pgxpool.Pool
}

func NewSubscriptionRepository(db *pgxpool.Pool) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Create(ctx context.Context, s *domain.Subscription) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO subscriptions (id, user_id, plan_name, amount, currency, status,
			starts_at, ends_at, payment_method, payment_id, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,NOW())
	`, s.ID, s.UserID, s.PlanName, s.Amount, s.Currency, s.Status,
		s.StartsAt, s.EndsAt, s.PaymentMethod, s.PaymentID)
	return err
}
