package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecommerce-api/config"
	"ecommerce-api/helper"
	"ecommerce-api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type fakeProductService struct {
	products map[uint]models.Product

	createErr   error
	updateErr   error
	lastCreate  *models.CreateProductRequest
	lastUpdate  *models.UpdateProductRequest
	updateCalls int
}

func (f *fakeProductService) GetProducts(ctx context.Context) ([]models.Product, error) {
	out := []models.Product{}
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &p, nil
}

func (f *fakeProductService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	f.lastCreate = &req
	if f.createErr != nil {
		return nil, f.createErr
	}
	p := models.Product{ID: 100, ProductName: req.ProductName, Price: *req.Price, Stock: models.DefaultStock, Tags: []models.Tag{}}
	for _, id := range req.TagIDs {
		p.Tags = append(p.Tags, models.Tag{ID: id})
	}
	return &p, nil
}

func (f *fakeProductService) UpdateProduct(ctx context.Context, id uint, req models.UpdateProductRequest) error {
	f.updateCalls++
	f.lastUpdate = &req
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.products[id]; !ok {
		return models.ErrNotFound
	}
	return nil
}

func (f *fakeProductService) DeleteProduct(ctx context.Context, id uint) error {
	if _, ok := f.products[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

type ProductHandlerTestSuite struct {
	suite.Suite
	service *fakeProductService
	router  *gin.Engine
}

func (suite *ProductHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (suite *ProductHandlerTestSuite) SetupTest() {
	suite.service = &fakeProductService{
		products: map[uint]models.Product{
			1: {ID: 1, ProductName: "Plain T-Shirt", Price: decimal.RequireFromString("19.99"), Stock: 10, Tags: []models.Tag{{ID: 1, TagName: "Cotton"}}},
		},
	}

	validator := config.NewValidator()
	validator.UseWithGin()
	h := NewProductHandler(suite.service, &helper.HTTPHelper{Translator: validator.Translator()}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	suite.router = gin.New()
	products := suite.router.Group("/api/products")
	products.GET("", h.GetProducts)
	products.GET("/:id", h.GetProduct)
	products.POST("", h.CreateProduct)
	products.PUT("/:id", h.UpdateProduct)
	products.DELETE("/:id", h.DeleteProduct)
}

func (suite *ProductHandlerTestSuite) do(method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var decoded map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &decoded)
	return w, decoded
}

func (suite *ProductHandlerTestSuite) TestGetProducts() {
	w, _ := suite.do(http.MethodGet, "/api/products", "")
	suite.Equal(http.StatusOK, w.Code)

	var products []map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &products))
	suite.Require().Len(products, 1)
	suite.Equal(19.99, products[0]["price"], "price is a JSON number")
	suite.Len(products[0]["tags"], 1)
}

func (suite *ProductHandlerTestSuite) TestGetProduct_NotFound() {
	w, body := suite.do(http.MethodGet, "/api/products/999", "")
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal(map[string]interface{}{"message": "Product not found"}, body)
}

func (suite *ProductHandlerTestSuite) TestGetProduct_InvalidID() {
	for _, id := range []string{"abc", "0", "-1"} {
		w, body := suite.do(http.MethodGet, "/api/products/"+id, "")
		suite.Equal(http.StatusBadRequest, w.Code, id)
		suite.Equal("Invalid product ID", body["message"], id)
	}
}

func (suite *ProductHandlerTestSuite) TestCreateProduct() {
	w, body := suite.do(http.MethodPost, "/api/products", `{"product_name":"Basketball","price":200.00,"tagIds":[5,6]}`)
	suite.Equal(http.StatusCreated, w.Code)
	suite.Equal("Basketball", body["product_name"])
	suite.EqualValues(100, body["id"])
	suite.Len(body["tags"], 2)
	suite.Require().NotNil(suite.service.lastCreate)
	suite.Equal([]uint{5, 6}, suite.service.lastCreate.TagIDs)
}

func (suite *ProductHandlerTestSuite) TestCreateProduct_ValidationFailed() {
	w, body := suite.do(http.MethodPost, "/api/products", `{"stock":-1}`)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Validation failed", body["message"])

	fields, ok := body["errors"].(map[string]interface{})
	suite.Require().True(ok)
	suite.Contains(fields, "product_name")
	suite.Contains(fields, "price")
	suite.Contains(fields, "stock")
	suite.Nil(suite.service.lastCreate)
}

func (suite *ProductHandlerTestSuite) TestCreateProduct_MalformedBody() {
	w, body := suite.do(http.MethodPost, "/api/products", `{"product_name":`)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.NotEmpty(body["message"])
	suite.Nil(suite.service.lastCreate)
}

func (suite *ProductHandlerTestSuite) TestCreateProduct_ServiceErrors() {
	tests := []struct {
		err  error
		code int
	}{
		{err: fmt.Errorf("%w: unknown tag ids [77]", models.ErrValidation), code: http.StatusBadRequest},
		{err: errors.New("connection refused"), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		suite.service.createErr = tt.err
		w, body := suite.do(http.MethodPost, "/api/products", `{"product_name":"Cap","price":1}`)
		suite.Equal(tt.code, w.Code)
		suite.NotEmpty(body["message"])
		if tt.code == http.StatusInternalServerError {
			suite.Equal("connection refused", body["error"])
		}
	}
}

func (suite *ProductHandlerTestSuite) TestUpdateProduct_WithoutTagIDs() {
	w, body := suite.do(http.MethodPut, "/api/products/1", `{"price":9.99}`)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Product updated successfully", body["message"])

	req := suite.service.lastUpdate
	suite.Require().NotNil(req)
	suite.Nil(req.TagIDs, "omitted tagIds must not trigger reconciliation")
	suite.True(req.Price.Equal(decimal.RequireFromString("9.99")))
}

func (suite *ProductHandlerTestSuite) TestUpdateProduct_EmptyTagIDs() {
	w, _ := suite.do(http.MethodPut, "/api/products/1", `{"tagIds":[]}`)
	suite.Equal(http.StatusOK, w.Code)

	req := suite.service.lastUpdate
	suite.Require().NotNil(req)
	suite.Require().NotNil(req.TagIDs)
	suite.Empty(*req.TagIDs)
}

func (suite *ProductHandlerTestSuite) TestUpdateProduct_NotFound() {
	w, body := suite.do(http.MethodPut, "/api/products/999", `{"stock":3}`)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Product not found", body["message"])
}

func (suite *ProductHandlerTestSuite) TestUpdateProduct_InvalidID() {
	w, _ := suite.do(http.MethodPut, "/api/products/x", `{"stock":3}`)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Zero(suite.service.updateCalls)
}

func (suite *ProductHandlerTestSuite) TestDeleteProduct() {
	w, body := suite.do(http.MethodDelete, "/api/products/1", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Product deleted successfully", body["message"])

	w, body = suite.do(http.MethodDelete, "/api/products/1", "")
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal(map[string]interface{}{"message": "Product not found"}, body)
}

func TestProductHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}
