package handlers

import (
	"log/slog"
	"net/http"

	"ecommerce-api/helper"
	"ecommerce-api/models"
	"ecommerce-api/services"

	"github.com/gin-gonic/gin"
)

const (
	msgProductNotFound = "Product not found"
	msgInvalidProduct  = "Invalid product ID"
)

type ProductHandler struct {
	productService services.ProductService
	Helper         *helper.HTTPHelper
	logger         *slog.Logger
}

func NewProductHandler(productService services.ProductService, h *helper.HTTPHelper, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{productService: productService, Helper: h, logger: logger}
}

func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.productService.GetProducts(c.Request.Context())
	if err != nil {
		h.logger.Error("list products", "error", err)
		h.Helper.SendDatabaseError(c, "Failed to fetch products", err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, msgInvalidProduct)
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.logError("get product", id, err)
		h.Helper.SendServiceError(c, err, msgProductNotFound)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		h.logError("create product", 0, err)
		h.Helper.SendServiceError(c, err, msgProductNotFound)
		return
	}

	h.Helper.SendSuccess(c, http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, msgInvalidProduct)
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	if err := h.productService.UpdateProduct(c.Request.Context(), id, req); err != nil {
		h.logError("update product", id, err)
		h.Helper.SendServiceError(c, err, msgProductNotFound)
		return
	}

	h.Helper.SendMessage(c, http.StatusOK, "Product updated successfully")
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, msgInvalidProduct)
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		h.logError("delete product", id, err)
		h.Helper.SendServiceError(c, err, msgProductNotFound)
		return
	}

	h.Helper.SendMessage(c, http.StatusOK, "Product deleted successfully")
}

// logError logs store failures only; not-found and validation outcomes are
// expected responses.
func (h *ProductHandler) logError(op string, id uint, err error) {
	if h.Helper.GetStatusCode(err) != http.StatusInternalServerError {
		return
	}
	h.logger.Error(op, "product_id", id, "error", err)
}
