package handler

import (
	"net/http"
	"strconv"

	coreport "github.com/amirhossein-jamali/catalog-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/catalog-service/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// CommentHandler handles comment HTTP requests
type CommentHandler struct {
	comments usecase.CommentUseCase
	logger   coreport.Logger
}

// NewCommentHandler creates a new comment handler instance
func NewCommentHandler(comments usecase.CommentUseCase, logger coreport.Logger) *CommentHandler {
	return &CommentHandler{
		comments: comments,
		logger:   logger,
	}
}

// Create handles POST /comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	comment, err := h.comments.Create(c.Request.Context(), req.Product, currentUser(c), req.Body)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewCommentResponse(comment))
}

// Get handles GET /comments/:id
func (h *CommentHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	comment, err := h.comments.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCommentResponse(comment))
}

// List handles GET /comments?product=&user=&limit=&offset=
func (h *CommentHandler) List(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		return
	}
	filter, ok := parseCommentFilter(c)
	if !ok {
		return
	}

	comments, err := h.comments.List(c.Request.Context(), filter, page)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCommentListResponse(comments))
}

// Update handles PUT and PATCH /comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	comment, err := h.comments.Update(c.Request.Context(), id, currentUser(c), req.Body)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCommentResponse(comment))
}

// Delete handles DELETE /comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.comments.Delete(c.Request.Context(), id, currentUser(c)); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseCommentFilter(c *gin.Context) (persistence.CommentFilter, bool) {
	var filter persistence.CommentFilter
	for _, q := range []struct {
		name string
		dst  *uint64
	}{{"product", &filter.ProductID}, {"user", &filter.UserID}} {
		raw := c.Query(q.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || v == 0 {
			badRequest(c, "Invalid "+q.name+" parameter")
			return filter, false
		}
		*q.dst = v
	}
	return filter, true
}
