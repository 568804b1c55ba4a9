package domain

import "time"

type ServiceRequest struct {
	ID           string                 `json:"id"`
	UserID       string                 `json:"user_id"`
	CategoryID   int64                  `json:"category_id"`
	Title        string                 `json:"title"`
	Description  string                 `json:"description,omitempty"`
	CustomFields map[string]interface{} `json:"custom_fields,omitempty"`
	Status       string                 `json:"status"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}
