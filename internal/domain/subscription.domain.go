package domain

import "time"

type Subscription struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	PlanName      string    `json:"plan_name"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	StartsAt      time.Time `json:"starts_at"`
	EndsAt        time.Time `json:"ends_at"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	PaymentID     string    `json:"payment_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
