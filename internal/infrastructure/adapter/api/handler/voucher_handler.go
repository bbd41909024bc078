package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/catalog-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/catalog-service/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// VoucherHandler handles voucher HTTP requests
type VoucherHandler struct {
	vouchers usecase.VoucherUseCase
	logger   coreport.Logger
}

// NewVoucherHandler creates a new voucher handler instance
func NewVoucherHandler(vouchers usecase.VoucherUseCase, logger coreport.Logger) *VoucherHandler {
	return &VoucherHandler{
		vouchers: vouchers,
		logger:   logger,
	}
}

// Claim handles POST /products/:id/claim_voucher
func (h *VoucherHandler) Claim(c *gin.Context) {
	productID, ok := parseID(c, "id")
	if !ok {
		return
	}

	voucher, err := h.vouchers.Claim(c.Request.Context(), productID, currentUser(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewVoucherResponse(voucher))
}

// Get handles GET /vouchers/:id. Another user's voucher reads as not found.
func (h *VoucherHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	voucher, err := h.vouchers.GetForUser(c.Request.Context(), id, currentUser(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewVoucherResponse(voucher))
}

// ListMine handles GET /vouchers
func (h *VoucherHandler) ListMine(c *gin.Context) {
	vouchers, err := h.vouchers.ListForUser(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewVoucherListResponse(vouchers))
}
