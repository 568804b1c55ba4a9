package handler

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/rajat8876/VendorIQ2/internal/middleware"
	"github.com/rajat8876/VendorIQ2/internal/usecase"
	"github.com/rajat8876/VendorIQ2/pkg/response"
	"github.com/rajat8876/VendorIQ2/pkg/xerrors"
)

type AuthHandler struct {
	uc     *usecase.AuthUsecase
	logger *zap.Logger
}

func NewAuthHandler(uc *usecase.AuthUsecase, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req usecase.RegisterInput
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !isValidEmail(req.Email) {
		response.Error(w, http.StatusBadRequest, xerrors.ErrInvalidEmailFormat.Error())
		return
	}
	if req.BusinessName == "" || req.Phone == "" {
		response.Error(w, http.StatusBadRequest, "business name and phone are required")
		return
	}

	user, otpExpiresAt, err := h.uc.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, xerrors.ErrUserAlreadyExists) {
			response.Error(w, http.StatusConflict, err.Error())
			return
		}
		h.logger.Error("registration failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, xerrors.ErrInternalServer.Error())
		return
	}

	response.Message(w, http.StatusCreated, "Registration successful. Please verify your email.", map[string]interface{}{
		"user":           user,
		"otp_expires_at": otpExpiresAt,
	})
}

type otpRequest struct {
	Identifier string `json:"identifier"`
	OTP        string `json:"otp,omitempty"`
}

func (h *AuthHandler) RequestOTP(w http.ResponseWriter, r *http.Request) {
	var req otpRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Identifier = strings.TrimSpace(req.Identifier)
	if req.Identifier == "" {
		response.Error(w, http.StatusBadRequest, xerrors.ErrIdentifierRequired.Error())
		return
	}
	if strings.Contains(req.Identifier, "@") && !isValidEmail(req.Identifier) {
		response.Error(w, http.StatusBadRequest, xerrors.ErrInvalidEmailFormat.Error())
		return
	}

	expiresAt, err := h.uc.RequestOTP(r.Context(), req.Identifier)
	if err != nil {
		h.logger.Error("otp issue failed",
			zap.String("identifier", maskRecipient(req.Identifier)), zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "failed to send OTP")
		return
	}

	// The code itself never leaves via the API.
	response.Message(w, http.StatusOK, "OTP sent successfully", map[string]interface{}{
		"identifier": maskRecipient(req.Identifier),
		"expires_at": expiresAt,
	})
}

func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req otpRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Identifier = strings.TrimSpace(req.Identifier)
	if req.Identifier == "" || req.OTP == "" {
		response.Error(w, http.StatusBadRequest, "identifier and otp are required")
		return
	}

	user, token, err := h.uc.VerifyOTP(r.Context(), req.Identifier, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, xerrors.ErrNoActiveOTP),
			errors.Is(err, xerrors.ErrInvalidOTP),
			errors.Is(err, xerrors.ErrExpiredOTP):
			response.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, xerrors.ErrUserNotFound):
			response.Error(w, http.StatusNotFound, err.Error())
		default:
			h.logger.Error("otp verification failed",
				zap.String("identifier", maskRecipient(req.Identifier)), zap.Error(err))
			response.Error(w, http.StatusInternalServerError, xerrors.ErrInternalServer.Error())
		}
		return
	}

	response.Message(w, http.StatusOK, "Verification successful", map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Identifier == "" {
		response.Error(w, http.StatusBadRequest, xerrors.ErrIdentifierRequired.Error())
		return
	}

	// No password means OTP login: issue a code and let the client finish
	// on the verify endpoint.
	if req.Password == "" {
		expiresAt, err := h.uc.RequestLoginOTP(r.Context(), req.Identifier)
		if err != nil {
			if errors.Is(err, xerrors.ErrUserNotFound) {
				response.Error(w, http.StatusNotFound, err.Error())
				return
			}
			h.logger.Error("login otp issue failed",
				zap.String("identifier", maskRecipient(req.Identifier)), zap.Error(err))
			response.Error(w, http.StatusInternalServerError, "failed to send OTP")
			return
		}
		response.Message(w, http.StatusOK, "OTP sent successfully", map[string]interface{}{
			"identifier": maskRecipient(req.Identifier),
			"expires_at": expiresAt,
		})
		return
	}

	user, token, err := h.uc.PasswordLogin(r.Context(), req.Identifier, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, xerrors.ErrUserNotFound),
			errors.Is(err, xerrors.ErrInvalidCredentials):
			response.Error(w, http.StatusUnauthorized, "invalid credentials")
		case errors.Is(err, xerrors.ErrPasswordNotSet):
			response.Error(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("login failed", zap.Error(err))
			response.Error(w, http.StatusInternalServerError, xerrors.ErrInternalServer.Error())
		}
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, xerrors.ErrUnauthorized.Error())
		return
	}
	user, err := h.uc.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, xerrors.ErrUserNotFound) {
			response.Error(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Error("profile lookup failed", zap.String("user_id", userID), zap.Error(err))
		response.Error(w, http.StatusInternalServerError, xerrors.ErrInternalServer.Error())
		return
	}
	response.JSON(w, http.StatusOK, user)
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, xerrors.ErrUnauthorized.Error())
		return
	}
	token, err := h.uc.RefreshToken(r.Context(), userID)
	if err != nil {
		if errors.Is(err, xerrors.ErrUserNotFound) {
			response.Error(w, http.StatusUnauthorized, xerrors.ErrUnauthorized.Error())
			return
		}
		h.logger.Error("token refresh failed", zap.String("user_id", userID), zap.Error(err))
		response.Error(w, http.StatusInternalServerError, xerrors.ErrInternalServer.Error())
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"token": token})
}

// Logout is stateless; clients drop the token. Kept so the API shape
// matches what frontends expect.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	response.Message(w, http.StatusOK, "Logged out successfully", nil)
}
