package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/bloomlavka/bloom_api/internal/models"
	"github.com/bloomlavka/bloom_api/internal/service"
	"github.com/bloomlavka/bloom_api/internal/utils"
)

// OrderHandler handles the order submission endpoint.
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// CreateOrder validates the order payload and relays it to the merchant.
// The response shape is the storefront contract: {success:true} or {error}.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order data is incomplete"})
		return
	}

	err := h.orderService.Submit(c.Request.Context(), &req)
	switch {
	case errors.Is(err, utils.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "order data is incomplete"})
	case err != nil:
		log.Error().Err(err).Msg("Order dispatch failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send the order"})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
