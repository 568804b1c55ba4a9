package domain

import "time"

type User struct {
	ID                 string     `json:"id"`
	BusinessName       string     `json:"business_name"`
	ContactPerson      string     `json:"contact_person"`
	Phone              string     `json:"phone"`
	Email              string     `json:"email"`
	Location           string     `json:"location,omitempty"`
	Industries         []string   `json:"industries,omitempty"`
	PasswordHash       *string    `json:"-"`
	EmailVerifiedAt    *time.Time `json:"email_verified_at,omitempty"`
	PhoneVerifiedAt    *time.Time `json:"phone_verified_at,omitempty"`
	SubscriptionStatus string     `json:"subscription_status"`
	TrialEndsAt        *time.Time `json:"trial_ends_at,omitempty"`
	IsActive           bool       `json:"is_active"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func (u *User) IsTrialActive() bool {
	return u.SubscriptionStatus == "trial" &&
		u.TrialEndsAt != nil &&
		u.TrialEndsAt.After(time.Now())
}

func (u *User) CanPostRequests() bool {
	return u.SubscriptionStatus == "active" || u.IsTrialActive()
}
