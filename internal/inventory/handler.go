package inventory

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Merchant: refresh stock count
// --------------------------------------------------
func (h *Handler) UpdateStock(c *gin.Context) {
	var req struct {
		Stock *int `json:"stock"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Stock == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "stock is required"})
		return
	}

	err := h.service.RefreshStock(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
		*req.Stock,
	)
	if err != nil {
		switch {
		case errors.Is(err, ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		case err.Error() == "unauthorized":
			c.JSON(http.StatusForbidden, gin.H{"error": "unauthorized"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"product_id": c.Param("id"), "stock": *req.Stock})
}
