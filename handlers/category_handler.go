package handlers

import (
	"log/slog"
	"net/http"

	"ecommerce-api/helper"
	"ecommerce-api/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService services.CategoryService
	Helper          *helper.HTTPHelper
	logger          *slog.Logger
}

func NewCategoryHandler(categoryService services.CategoryService, h *helper.HTTPHelper, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, Helper: h, logger: logger}
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.GetCategories(c.Request.Context())
	if err != nil {
		h.logger.Error("list categories", "error", err)
		h.Helper.SendDatabaseError(c, "Failed to fetch categories", err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid category ID")
		return
	}

	category, err := h.categoryService.GetCategory(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendServiceError(c, err, "Category not found")
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, category)
}
