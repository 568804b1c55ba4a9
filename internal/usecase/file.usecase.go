package usecase

import (
	"context"
	"crypto/rand"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/rajat8876/VendorIQ2/internal/domain"
)

type FileStore interface {
	Create(ctx context.Context, f *domain.StoredFile) error
	GetByID(ctx context.Context, id string) (*domain.StoredFile, error)
}

// FileUsecase writes uploads to local disk under lexically sortable
// object keys and records their metadata.
type FileUsecase struct {
	files     FileStore
	uploadDir string
	logger    *zap.Logger
}

func NewFileUsecase(files FileStore, uploadDir string, logger *zap.Logger) *FileUsecase {
	return &FileUsecase{files: files, uploadDir: uploadDir, logger: logger}
}

// Save streams the upload to disk and persists a metadata row. The
// object key embeds a ULID so listings sort by upload time.
func (uc *FileUsecase) Save(ctx context.Context, userID, fileName, contentType string, src io.Reader) (*domain.StoredFile, error) {
	key := ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String() + filepath.Ext(fileName)

	if err := os.MkdirAll(uc.uploadDir, 0o755); err != nil {
		return nil, err
	}
	dst, err := os.Create(filepath.Join(uc.uploadDir, key))
	if err != nil {
		return nil, err
	}
	size, err := io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(filepath.Join(uc.uploadDir, key))
		return nil, err
	}

	f := &domain.StoredFile{
		ID:          ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String(),
		UserID:      userID,
		ObjectKey:   key,
		FileName:    fileName,
		ContentType: contentType,
		SizeBytes:   size,
	}
	if err := uc.files.Create(ctx, f); err != nil {
		os.Remove(filepath.Join(uc.uploadDir, key))
		return nil, err
	}
	uc.logger.Info("file stored",
		zap.String("file_id", f.ID),
		zap.String("object_key", key),
		zap.Int64("size", size))
	return f, nil
}

// Open resolves a stored file's metadata and opens its content.
func (uc *FileUsecase) Open(ctx context.Context, id string) (*domain.StoredFile, io.ReadCloser, error) {
	f, err := uc.files.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, err := os.Open(filepath.Join(uc.uploadDir, f.ObjectKey))
	if err != nil {
		return nil, nil, err
	}
	return f, rc, nil
}
