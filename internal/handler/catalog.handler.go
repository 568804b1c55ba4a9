package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rajat8876/VendorIQ2/internal/repository"
	"github.com/rajat8876/VendorIQ2/pkg/response"
	"github.com/rajat8876/VendorIQ2/pkg/xerrors"
)

// CatalogHandler serves the industry/category taxonomy and the dynamic
// field schema for a category. Reads only, so it talks to the
// repositories directly.
type CatalogHandler struct {
	catalog *repository.CatalogRepository
	fields  *repository.FormFieldRepository
	logger  *zap.Logger
}

func NewCatalogHandler(catalog *repository.CatalogRepository, fields *repository.FormFieldRepository, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, fields: fields, logger: logger}
}

func (h *CatalogHandler) ListIndustries(w http.ResponseWriter, r *http.Request) {
	industries, err := h.catalog.ListIndustries(r.Context())
	if err != nil {
		h.logger.Error("industry listing failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, xerrors.ErrInternalServer.Error())
		return
	}
	response.JSON(w, http.StatusOK, industries)
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	industryID, err := strconv.ParseInt(chi.URLParam(r, "industryID"), 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid industry id")
		return
	}
	categories, err := h.catalog.ListCategories(r.Context(), industryID)
	if err != nil {
		h.logger.Error("category listing failed",
			zap.Int64("industry_id", industryID), zap.Error(err))
		response.Error(w, http.StatusInternalServerError, xerrors.ErrInternalServer.Error())
		return
	}
	response.JSON(w, http.StatusOK, categories)
}

func (h *CatalogHandler) ListFormFields(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseInt(chi.URLParam(r, "categoryID"), 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid category id")
		return
	}
	fields, err := h.fields.ListActiveFields(r.Context(), categoryID)
	if err != nil {
		h.logger.Error("form field listing failed",
			zap.Int64("category_id", categoryID), zap.Error(err))
		response.Error(w, http.StatusInternalServerError, xerrors.ErrInternalServer.Error())
		return
	}
	response.JSON(w, http.StatusOK, fields)
}
