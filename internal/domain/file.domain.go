package domain

import "time"

type StoredFile struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ObjectKey   string    `json:"object_key"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
}
