package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rajat8876/VendorIQ2/internal/domain"
	"github.com/rajat8876/VendorIQ2/pkg/xerrors"
)

type FileRepository struct {
	db *pgxpool.Pool
}

func NewFileRepository(db *pgxpool.Pool) *FileRepository {
	return &FileRepository{db: db}
}

func (r *FileRepository) Create(ctx context.Context, f *domain.StoredFile) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO files (id, user_id, object_key, file_name, content_type, size_bytes, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,NOW())
	`, f.ID, f.UserID, f.ObjectKey, f.FileName, f.ContentType, f.SizeBytes)
	return err
}

func (r *FileRepository) GetByID(ctx context.Context, id string) (*domain.StoredFile, error) {
	var f domain.StoredFile
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, object_key, file_name, content_type, size_bytes, created_at
		FROM files WHERE id=$1
	`, id).Scan(&f.ID, &f.UserID, &f.ObjectKey, &f.FileName, &f.ContentType, &f.SizeBytes, &f.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}
