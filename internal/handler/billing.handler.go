package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/rajat8876/VendorIQ2/internal/middleware"
	"github.com/rajat8876/VendorIQ2/internal/usecase"
	"github.com/rajat8876/VendorIQ2/pkg/response"
	"github.com/rajat8876/VendorIQ2/pkg/xerrors"
)

type BillingHandler struct {
	uc     *usecase.BillingUsecase
	logger *zap.Logger
}

func NewBillingHandler(uc *usecase.BillingUsecase, logger *zap.Logger) *BillingHandler {
	return &BillingHandler{uc: uc, logger: logger}
}

type createOrderRequest struct {
	Plan     string `json:"plan"`
	Duration string `json:"duration"`
}

func (h *BillingHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, xerrors.ErrUnauthorized.Error())
		return
	}

	var req createOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.uc.CreateOrder(r.Context(), userID, req.Plan, req.Duration)
	if err != nil {
		switch {
		case errors.Is(err, xerrors.ErrUnknownPlan):
			response.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, xerrors.ErrGatewayNotConfigured):
			response.Error(w, http.StatusServiceUnavailable, err.Error())
		default:
			h.logger.Error("order creation failed",
				zap.String("user_id", userID), zap.Error(err))
			response.Error(w, http.StatusInternalServerError, xerrors.ErrInternalServer.Error())
		}
		return
	}

	response.JSON(w, http.StatusCreated, order)
}

func (h *BillingHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, xerrors.ErrUnauthorized.Error())
		return
	}

	var req usecase.ConfirmPaymentInput
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
		response.Error(w, http.StatusBadRequest, "order_id, payment_id and signature are required")
		return
	}

	sub, err := h.uc.Confirm(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, xerrors.ErrInvalidSignature):
			response.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, xerrors.ErrUnknownPlan):
			response.Error(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("payment confirmation failed",
				zap.String("user_id", userID), zap.Error(err))
			response.Error(w, http.StatusInternalServerError, xerrors.ErrInternalServer.Error())
		}
		return
	}

	response.Message(w, http.StatusOK, "Subscription activated", sub)
}
