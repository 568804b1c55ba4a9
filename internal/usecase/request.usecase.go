package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/rajat8876/VendorIQ2/internal/domain"
	"github.com/rajat8876/VendorIQ2/internal/formfield"
	"github.com/rajat8876/VendorIQ2/pkg/id"
	"github.com/rajat8876/VendorIQ2/pkg/xerrors"
)

type RequestStore interface {
	Create(ctx context.Context, r *domain.ServiceRequest) error
}

// RequestUsecase validates a submission against its category's field
// schema before persisting it.
type RequestUsecase struct {
	requests  RequestStore
	users     UserStore
	validator *formfield.Validator
	sf        *id.Snowflake
	logger    *zap.Logger
}

func NewRequestUsecase(requests RequestStore, users UserStore, validator *formfield.Validator, sf *id.Snowflake, logger *zap.Logger) *RequestUsecase {
	return &RequestUsecase{requests: requests, users: users, validator: validator, sf: sf, logger: logger}
}

type SubmitRequestInput struct {
	Title        string                 `json:"title"`
	Description  string                 `json:"description"`
	CategoryID   int64                  `json:"category_id"`
	CustomFields map[string]interface{} `json:"custom_fields"`
}

// Submit checks posting entitlement, runs the dynamic field validation
// and stores the request. Validation failures come back as field errors
// with a nil request.
func (uc *RequestUsecase) Submit(ctx context.Context, userID string, in SubmitRequestInput) (*domain.ServiceRequest, []formfield.FieldError, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if !user.CanPostRequests() {
		return nil, nil, xerrors.ErrSubscriptionRequired
	}
	if in.Title == "" {
		return nil, []formfield.FieldError{{Field: "title", Message: "Title is required"}}, nil
	}

	outcome := uc.validator.Validate(ctx, in.CategoryID, in.CustomFields)
	if !outcome.Valid {
		return nil, outcome.Errors, nil
	}

	req := &domain.ServiceRequest{
		ID:           uc.sf.Generate(),
		UserID:       userID,
		CategoryID:   in.CategoryID,
		Title:        in.Title,
		Description:  in.Description,
		CustomFields: outcome.Values,
		Status:       "open",
	}
	if err := uc.requests.Create(ctx, req); err != nil {
		return nil, nil, err
	}
	uc.logger.Info("service request posted",
		zap.String("request_id", req.ID),
		zap.Int64("category_id", req.CategoryID))
	return req, nil, nil
}
