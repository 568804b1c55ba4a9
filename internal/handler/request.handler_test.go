package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rajat8876/VendorIQ2/internal/domain"
	"github.com/rajat8876/VendorIQ2/internal/formfield"
	"github.com/rajat8876/VendorIQ2/internal/middleware"
	"github.com/rajat8876/VendorIQ2/internal/usecase"
	"github.com/rajat8876/VendorIQ2/pkg/id"
	"github.com/rajat8876/VendorIQ2/pkg/jwtutil"
)

type stubRequestStore struct {
	created []*domain.ServiceRequest
}

func (s *stubRequestStore) Create(_ context.Context, r *domain.ServiceRequest) error {
	s.created = append(s.created, r)
	return nil
}

type stubSchemaRepo struct {
	fields []formfield.FieldDefinition
}

func (s *stubSchemaRepo) ListActiveFields(_ context.Context, _ int64) ([]formfield.FieldDefinition, error) {
	return s.fields, nil
}

func newRequestFixture(t *testing.T, fields ...formfield.FieldDefinition) (*authFixture, string) {
	t.Helper()
	users := newMemUserStore()
	trialEnd := time.Now().Add(7 * 24 * time.Hour)
	require.NoError(t, users.Create(context.Background(), &domain.User{
		ID: "u-1", Email: "b@example.com", Phone: "+911",
		SubscriptionStatus: "trial", TrialEndsAt: &trialEnd, IsActive: true,
	}))

	signer := jwtutil.NewSigner("test-secret", "vendoriq", time.Hour)
	token, err := signer.Sign("u-1", "b@example.com")
	require.NoError(t, err)

	validator := formfield.NewValidator(&stubSchemaRepo{fields: fields}, zap.NewNop())
	sf, err := id.NewSnowflake(1)
	require.NoError(t, err)
	uc := usecase.NewRequestUsecase(&stubRequestStore{}, users, validator, sf, zap.NewNop())
	h := NewRequestHandler(uc, zap.NewNop())

	r := chi.NewRouter()
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RequireAuth(signer))
		pr.Post("/categories/{categoryID}/requests", h.Submit)
	})
	return &authFixture{router: r, signer: signer}, token
}

func TestSubmitRequestEndpoint(t *testing.T) {
	f, token := newRequestFixture(t,
		formfield.FieldDefinition{Name: "guests", Label: "Guests", Kind: formfield.KindNumber, Required: true},
	)

	rec := f.do(t, http.MethodPost, "/categories/7/requests", map[string]interface{}{
		"title":         "Catering for 200",
		"custom_fields": map[string]interface{}{"guests": 200},
	}, map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "open", data["status"])
	assert.NotEmpty(t, data["id"])
}

func TestSubmitRequestValidationErrors(t *testing.T) {
	f, token := newRequestFixture(t,
		formfield.FieldDefinition{Name: "guests", Label: "Guests", Kind: formfield.KindNumber, Required: true},
		formfield.FieldDefinition{Name: "color", Label: "Color", Kind: formfield.KindSelect,
			Options: []string{"red", "blue"}},
	)

	rec := f.do(t, http.MethodPost, "/categories/7/requests", map[string]interface{}{
		"title":         "T",
		"custom_fields": map[string]interface{}{"color": "green"},
	}, map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	errs := body["data"].(map[string]interface{})["errors"].([]interface{})
	require.Len(t, errs, 2)
	messages := []string{}
	for _, e := range errs {
		messages = append(messages, e.(map[string]interface{})["message"].(string))
	}
	assert.Contains(t, messages, "Guests is required")
	assert.Contains(t, messages, "Color must be one of: red, blue")
}

func TestSubmitRequestUnauthorized(t *testing.T) {
	f, _ := newRequestFixture(t)

	rec := f.do(t, http.MethodPost, "/categories/7/requests", map[string]interface{}{"title": "T"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
