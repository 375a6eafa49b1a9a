package handlers

import (
	"log/slog"
	"net/http"

	"ecommerce-api/helper"
	"ecommerce-api/services"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagService services.TagService
	Helper     *helper.HTTPHelper
	logger     *slog.Logger
}

func NewTagHandler(tagService services.TagService, h *helper.HTTPHelper, logger *slog.Logger) *TagHandler {
	return &TagHandler{tagService: tagService, Helper: h, logger: logger}
}

func (h *TagHandler) GetTags(c *gin.Context) {
	tags, err := h.tagService.GetTags(c.Request.Context())
	if err != nil {
		h.logger.Error("list tags", "error", err)
		h.Helper.SendDatabaseError(c, "Failed to fetch tags", err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, tags)
}

func (h *TagHandler) GetTag(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid tag ID")
		return
	}

	tag, err := h.tagService.GetTag(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendServiceError(c, err, "Tag not found")
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, tag)
}
