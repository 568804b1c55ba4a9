package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rajat8876/VendorIQ2/internal/domain"
	"github.com/rajat8876/VendorIQ2/internal/formfield"
	"github.com/rajat8876/VendorIQ2/pkg/id"
	"github.com/rajat8876/VendorIQ2/pkg/xerrors"
)

type fakeRequestStore struct {
	mu      sync.Mutex
	created []*domain.ServiceRequest
}

func (f *fakeRequestStore) Create(_ context.Context, r *domain.ServiceRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, r)
	return nil
}

type fixedSchemaRepo struct {
	fields []formfield.FieldDefinition
}

func (f *fixedSchemaRepo) ListActiveFields(_ context.Context, _ int64) ([]formfield.FieldDefinition, error) {
	return f.fields, nil
}

func newTestRequestUC(t *testing.T, users *fakeUserStore, fields ...formfield.FieldDefinition) (*RequestUsecase, *fakeRequestStore) {
	t.Helper()
	store := &fakeRequestStore{}
	validator := formfield.NewValidator(&fixedSchemaRepo{fields: fields}, zap.NewNop())
	sf, err := id.NewSnowflake(1)
	require.NoError(t, err)
	return NewRequestUsecase(store, users, validator, sf, zap.NewNop()), store
}

func trialUser(t *testing.T, users *fakeUserStore) *domain.User {
	t.Helper()
	trialEnd := time.Now().Add(7 * 24 * time.Hour)
	u := &domain.User{
		ID:                 "u-1",
		BusinessName:       "B",
		Phone:              "+911",
		Email:              "b@example.com",
		SubscriptionStatus: "trial",
		TrialEndsAt:        &trialEnd,
		IsActive:           true,
	}
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func TestSubmitValidRequest(t *testing.T) {
	users := newFakeUserStore()
	u := trialUser(t, users)
	uc, store := newTestRequestUC(t, users,
		formfield.FieldDefinition{Name: "guests", Label: "Guests", Kind: formfield.KindNumber, Required: true},
	)

	created, fieldErrs, err := uc.Submit(context.Background(), u.ID, SubmitRequestInput{
		Title:        "Catering for 200",
		CategoryID:   7,
		CustomFields: map[string]interface{}{"guests": float64(200)},
	})
	require.NoError(t, err)
	require.Nil(t, fieldErrs)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "open", created.Status)
	assert.Equal(t, float64(200), created.CustomFields["guests"])
	require.Len(t, store.created, 1)
}

func TestSubmitValidationFailure(t *testing.T) {
	users := newFakeUserStore()
	u := trialUser(t, users)
	uc, store := newTestRequestUC(t, users,
		formfield.FieldDefinition{Name: "guests", Label: "Guests", Kind: formfield.KindNumber, Required: true},
	)

	created, fieldErrs, err := uc.Submit(context.Background(), u.ID, SubmitRequestInput{
		Title:      "Catering",
		CategoryID: 7,
	})
	require.NoError(t, err)
	assert.Nil(t, created)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "Guests is required", fieldErrs[0].Message)
	assert.Empty(t, store.created, "nothing persisted on validation failure")
}

func TestSubmitRequiresEntitlement(t *testing.T) {
	users := newFakeUserStore()
	expired := time.Now().Add(-24 * time.Hour)
	require.NoError(t, users.Create(context.Background(), &domain.User{
		ID: "u-2", Email: "x@example.com", Phone: "+912",
		SubscriptionStatus: "trial", TrialEndsAt: &expired, IsActive: true,
	}))
	uc, _ := newTestRequestUC(t, users)

	_, _, err := uc.Submit(context.Background(), "u-2", SubmitRequestInput{Title: "T", CategoryID: 1})
	assert.ErrorIs(t, err, xerrors.ErrSubscriptionRequired)
}

func TestSubmitRequiresTitle(t *testing.T) {
	users := newFakeUserStore()
	u := trialUser(t, users)
	uc, _ := newTestRequestUC(t, users)

	_, fieldErrs, err := uc.Submit(context.Background(), u.ID, SubmitRequestInput{CategoryID: 1})
	require.NoError(t, err)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "title", fieldErrs[0].Field)
}
