package handler

import (
	"errors"
	"io"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rajat8876/VendorIQ2/internal/middleware"
	"github.com/rajat8876/VendorIQ2/internal/usecase"
	"github.com/rajat8876/VendorIQ2/pkg/response"
	"github.com/rajat8876/VendorIQ2/pkg/xerrors"
)

const maxUploadBytes = 10 << 20 // 10 MiB

type FileHandler struct {
	uc     *usecase.FileUsecase
	logger *zap.Logger
}

func NewFileHandler(uc *usecase.FileUsecase, logger *zap.Logger) *FileHandler {
	return &FileHandler{uc: uc, logger: logger}
}

func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, xerrors.ErrUnauthorized.Error())
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.Error(w, http.StatusBadRequest, "file too large or malformed upload")
		return
	}
	src, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer src.Close()

	contentType := header.Header.Get("Content-Type")
	stored, err := h.uc.Save(r.Context(), userID, header.Filename, contentType, src)
	if err != nil {
		h.logger.Error("file upload failed",
			zap.String("user_id", userID),
			zap.String("file_name", header.Filename),
			zap.Error(err))
		response.Error(w, http.StatusInternalServerError, xerrors.ErrInternalServer.Error())
		return
	}

	response.Message(w, http.StatusCreated, "File uploaded", stored)
}

func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	fileID := chi.URLParam(r, "fileID")
	meta, rc, err := h.uc.Open(r.Context(), fileID)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			response.Error(w, http.StatusNotFound, "file not found")
			return
		}
		h.logger.Error("file download failed", zap.String("file_id", fileID), zap.Error(err))
		response.Error(w, http.StatusInternalServerError, xerrors.ErrInternalServer.Error())
		return
	}
	defer rc.Close()

	if meta.ContentType != "" {
		w.Header().Set("Content-Type", meta.ContentType)
	}
	w.Header().Set("Content-Length", strconv.FormatInt(meta.SizeBytes, 10))
	w.Header().Set("Content-Disposition", `inline; filename="`+meta.FileName+`"`)
	if _, err := io.Copy(w, rc); err != nil {
		h.logger.Warn("file stream interrupted", zap.String("file_id", fileID), zap.Error(err))
	}
}
