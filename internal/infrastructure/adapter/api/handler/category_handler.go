package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/catalog-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/catalog-service/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// CategoryHandler handles category HTTP requests
type CategoryHandler struct {
	categories usecase.CategoryUseCase
	logger     coreport.Logger
}

// NewCategoryHandler creates a new category handler instance
func NewCategoryHandler(categories usecase.CategoryUseCase, logger coreport.Logger) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
		logger:     logger,
	}
}

// Create handles POST /categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	category, err := h.categories.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewCategoryResponse(category))
}

// Get handles GET /categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	category, err := h.categories.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCategoryResponse(category))
}

// List handles GET /categories
func (h *CategoryHandler) List(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		return
	}

	categories, err := h.categories.List(c.Request.Context(), page)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCategoryListResponse(categories))
}

// Update handles PUT and PATCH /categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}
	input, err := req.ToInput()
	if err != nil {
		badRequest(c, "Invalid parent_id: "+err.Error())
		return
	}

	category, err := h.categories.Update(c.Request.Context(), id, currentUser(c), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCategoryResponse(category))
}

// Delete handles DELETE /categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.categories.Delete(c.Request.Context(), id, currentUser(c)); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
