package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/catalog-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/catalog-service/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ProductHandler handles product HTTP requests
type ProductHandler struct {
	products usecase.ProductUseCase
	logger   coreport.Logger
}

// NewProductHandler creates a new product handler instance
func NewProductHandler(products usecase.ProductUseCase, logger coreport.Logger) *ProductHandler {
	return &ProductHandler{
		products: products,
		logger:   logger,
	}
}

// Create handles POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	product, err := h.products.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewProductResponse(product))
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	detail, err := h.products.Get(c.Request.Context(), id, currentUser(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewProductDetailResponse(detail))
}

// List handles GET /products
func (h *ProductHandler) List(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		return
	}

	products, err := h.products.List(c.Request.Context(), page)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewProductListResponse(products))
}

// Update handles PUT and PATCH /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	product, err := h.products.Update(c.Request.Context(), id, currentUser(c), req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewProductResponse(product))
}

// Delete handles DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.products.Delete(c.Request.Context(), id, currentUser(c)); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
