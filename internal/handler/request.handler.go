package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rajat8876/VendorIQ2/internal/middleware"
	"github.com/rajat8876/VendorIQ2/internal/usecase"
	"github.com/rajat8876/VendorIQ2/pkg/response"
	"github.com/rajat8876/VendorIQ2/pkg/xerrors"
)

type RequestHandler struct {
	uc     *usecase.RequestUsecase
	logger *zap.Logger
}

func NewRequestHandler(uc *usecase.RequestUsecase, logger *zap.Logger) *RequestHandler {
	return &RequestHandler{uc: uc, logger: logger}
}

func (h *RequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, xerrors.ErrUnauthorized.Error())
		return
	}

	categoryID, err := strconv.ParseInt(chi.URLParam(r, "categoryID"), 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid category id")
		return
	}

	var req usecase.SubmitRequestInput
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.CategoryID = categoryID

	created, fieldErrs, err := h.uc.Submit(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, xerrors.ErrSubscriptionRequired):
			response.Error(w, http.StatusForbidden, err.Error())
		case errors.Is(err, xerrors.ErrUserNotFound):
			response.Error(w, http.StatusUnauthorized, xerrors.ErrUnauthorized.Error())
		default:
			h.logger.Error("request submission failed",
				zap.String("user_id", userID), zap.Error(err))
			response.Error(w, http.StatusInternalServerError, xerrors.ErrInternalServer.Error())
		}
		return
	}
	if fieldErrs != nil {
		response.Fail(w, http.StatusUnprocessableEntity, "Validation failed", map[string]interface{}{
			"errors": fieldErrs,
		})
		return
	}

	response.Message(w, http.StatusCreated, "Request posted successfully", created)
}
