package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rajat8876/VendorIQ2/internal/domain"
	"github.com/rajat8876/VendorIQ2/pkg/xerrors"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, business_name, contact_person, phone, email, location, industries,
	password_hash, email_verified_at, phone_verified_at, subscription_status, trial_ends_at,
	is_active, created_at, updated_at`

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, business_name, contact_person, phone, email, location,
			industries, password_hash, subscription_status, trial_ends_at, is_active, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,NOW(),NOW())
	`, u.ID, u.BusinessName, u.ContactPerson, u.Phone, u.Email, u.Location,
		u.Industries, u.PasswordHash, u.SubscriptionStatus, u.TrialEndsAt, u.IsActive)
	if err != nil && xerrors.ParsePGErrorCode(err) == "23505" {
		return xerrors.ErrUserAlreadyExists
	}
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id)
}

// GetByIdentifier looks a user up by email or phone, whichever the value is.
func (r *UserRepository) GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email=$1 OR phone=$1`, identifier)
}

func (r *UserRepository) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email=$1 OR phone=$2)`, email, phone,
	).Scan(&exists)
	return exists, err
}

func (r *UserRepository) MarkEmailVerified(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET email_verified_at=$2, updated_at=NOW() WHERE id=$1`, id, at)
	return err
}

func (r *UserRepository) MarkPhoneVerified(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET phone_verified_at=$2, updated_at=NOW() WHERE id=$1`, id, at)
	return err
}

func (r *UserRepository) SetSubscriptionStatus(ctx context.Context, id, status string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET subscription_status=$2, updated_at=NOW() WHERE id=$1`, id, status)
	return err
}

func (r *UserRepository) getOne(ctx context.Context, query string, args ...interface{}) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.BusinessName, &u.ContactPerson, &u.Phone, &u.Email, &u.Location,
		&u.Industries, &u.PasswordHash, &u.EmailVerifiedAt, &u.PhoneVerifiedAt,
		&u.SubscriptionStatus, &u.TrialEndsAt, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
