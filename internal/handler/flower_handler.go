package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/bloomlavka/bloom_api/internal/service"
	"github.com/bloomlavka/bloom_api/internal/utils"
)

// FlowerHandler handles catalog HTTP endpoints.
type FlowerHandler struct {
	catalogService *service.CatalogService
}

// NewFlowerHandler constructs a FlowerHandler.
func NewFlowerHandler(catalogService *service.CatalogService) *FlowerHandler {
	return &FlowerHandler{catalogService: catalogService}
}

// GetFlowers returns the full catalog as a plain JSON array.
func (h *FlowerHandler) GetFlowers(c *gin.Context) {
	flowers, err := h.catalogService.ListFlowers()
	if err != nil {
		log.Error().Err(err).Msg("Failed to read catalog")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
		return
	}
	c.JSON(http.StatusOK, flowers)
}

// GetQuote prices a quantity of one flower for the storefront quantity input.
func (h *FlowerHandler) GetQuote(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flower id"})
		return
	}
	quantity, err := strconv.Atoi(c.DefaultQuery("quantity", "0"))
	if err != nil || quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quantity"})
		return
	}

	quote, err := h.catalogService.QuoteFlower(id, quantity)
	if errors.Is(err, utils.ErrFlowerNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "flower not found"})
		return
	}
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("Failed to quote flower")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
		return
	}
	c.JSON(http.StatusOK, quote)
}
