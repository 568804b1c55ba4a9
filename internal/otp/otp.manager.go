package otp

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

// CodeTTL is how long an issued passcode stays valid. Not configurable
// per call.
const CodeTTL = 5 * time.Minute

const codeDigits = 6

// Notifier delivers a passcode out-of-band. Delivery is best-effort:
// failures are logged by the manager and never affect issuance.
type Notifier interface {
	Send(ctx context.Context, identifier, code string) error
}

type record struct {
	Code        string    `json:"code"`
	IssuedAt    time.Time `json:"issued_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	SubjectHint string    `json:"subject_hint,omitempty"`
}

type VerifyReason string

const (
	ReasonOK           VerifyReason = "ok"
	ReasonNoActiveCode VerifyReason = "no-active-code"
	ReasonMismatch     VerifyReason = "mismatch"
	ReasonExpired      VerifyReason = "expired"
)

type VerifyResult struct {
	OK          bool
	Reason      VerifyReason
	SubjectHint string
}

// Manager issues, verifies and invalidates 6-digit passcodes keyed by a
// caller-supplied identifier (email or phone, opaque here). A new code for
// the same identifier supersedes the previous one.
type Manager struct {
	store    Store
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time
}

func NewManager(store Store, notifier Notifier, logger *zap.Logger) *Manager {
	return &Manager{
		store:    store,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Issue generates and stores a fresh passcode for the identifier and kicks
// off delivery in the background. The identifier's format is the caller's
// responsibility. The returned code must never reach the HTTP response;
// only the notifier (and the debug log) sees it.
func (m *Manager) Issue(ctx context.Context, identifier, subjectHint string) (string, time.Time, error) {
	code := randomCode(codeDigits)
	now := m.now()
	rec := record{
		Code:        code,
		IssuedAt:    now,
		ExpiresAt:   now.Add(CodeTTL),
		SubjectHint: subjectHint,
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return "", time.Time{}, err
	}
	if err := m.store.Set(ctx, identifier, string(payload), CodeTTL); err != nil {
		return "", time.Time{}, err
	}

	m.logger.Debug("issued passcode",
		zap.String("identifier", identifier),
		zap.String("code", code),
		zap.Time("expires_at", rec.ExpiresAt))

	go func() {
		if err := m.notifier.Send(context.Background(), identifier, code); err != nil {
			m.logger.Warn("passcode delivery failed",
				zap.String("identifier", identifier), zap.Error(err))
		}
	}()

	return code, rec.ExpiresAt, nil
}

// Verify checks a submitted code against the live record. A mismatch does
// not consume the record; success deletes it from every backend. "Never
// issued" and "issued but gone" are indistinguishable by design.
func (m *Manager) Verify(ctx context.Context, identifier, submitted string) VerifyResult {
	payload, ok, err := m.store.Get(ctx, identifier)
	if err != nil {
		m.logger.Warn("passcode lookup failed",
			zap.String("identifier", identifier), zap.Error(err))
		return VerifyResult{Reason: ReasonNoActiveCode}
	}
	if !ok {
		return VerifyResult{Reason: ReasonNoActiveCode}
	}

	var rec record
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		m.logger.Warn("corrupt passcode record",
			zap.String("identifier", identifier), zap.Error(err))
		return VerifyResult{Reason: ReasonNoActiveCode}
	}

	if submitted != rec.Code {
		return VerifyResult{Reason: ReasonMismatch}
	}
	if m.now().After(rec.ExpiresAt) {
		return VerifyResult{Reason: ReasonExpired}
	}

	if err := m.store.Delete(ctx, identifier); err != nil {
		m.logger.Warn("passcode cleanup failed",
			zap.String("identifier", identifier), zap.Error(err))
	}
	return VerifyResult{OK: true, Reason: ReasonOK, SubjectHint: rec.SubjectHint}
}
