package offers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Public: offers published by one shop.
func (h *Handler) ListShopOffers(c *gin.Context) {
	out, err := h.service.ListByShop(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch offers"})
		return
	}
	c.JSON(http.StatusOK, out)
}
