package xerrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func ParsePGErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code // e.g. 23505 for unique_violation
	}
	return "unknown"
}

// Generic
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInternalServer = errors.New("internal server error")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrNotFound       = errors.New("not found")
)

// Registration / Login
var (
	ErrUserAlreadyExists  = errors.New("user already exists with this phone or email")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid password")
	ErrPasswordNotSet     = errors.New("password not set")
	ErrInvalidEmailFormat = errors.New("valid email address is required")
	ErrIdentifierRequired = errors.New("identifier required")
)

// Verification / OTP
var (
	ErrNoActiveOTP = errors.New("otp expired or invalid")
	ErrInvalidOTP  = errors.New("invalid otp")
	ErrExpiredOTP  = errors.New("otp expired")
)

// Subscriptions / payments
var (
	ErrUnknownPlan          = errors.New("unknown subscription plan")
	ErrSubscriptionRequired = errors.New("active subscription or trial required")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrInvalidSignature     = errors.New("payment signature verification failed")
)
