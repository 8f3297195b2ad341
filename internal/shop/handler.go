package shop

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
// Merchant: create shop
// --------------------------------------------------
func (h *Handler) CreateShop(c *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		Category    string `json:"category"`
		Governorate string `json:"governorate"`
		City        string `json:"city"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	shop, err := h.service.CreateShop(
		c.Request.Context(),
		req.Name,
		req.Category,
		req.Governorate,
		req.City,
		c.GetString("userID"),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, shop)
}

// --------------------------------------------------
// Merchant: list own shops
// --------------------------------------------------
func (h *Handler) ListMyShops(c *gin.Context) {
	shops, err := h.service.ListMyShops(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch shops"})
		return
	}
	c.JSON(http.StatusOK, shops)
}

// --------------------------------------------------
// Public: shop preview by slug
// --------------------------------------------------
func (h *Handler) Preview(c *gin.Context) {
	preview, err := h.service.Preview(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrShopNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "shop not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch shop"})
		return
	}
	c.JSON(http.StatusOK, preview)
}

// --------------------------------------------------
// Merchant: upload gallery media
// --------------------------------------------------
func (h *Handler) UploadGalleryMedia(c *gin.Context) {
	file, err := c.FormFile("media")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "media file is required"})
		return
	}

	item, err := h.service.UploadGalleryMedia(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
		file,
		c.PostForm("caption"),
	)
	if err != nil {
		if err.Error() == "unauthorized" {
			c.JSON(http.StatusForbidden, gin.H{"error": "unauthorized"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}
