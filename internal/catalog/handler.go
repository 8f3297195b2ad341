package catalog

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
// Public: product by id (with resolved dimension)
// --------------------------------------------------
func (h *Handler) GetProduct(c *gin.Context) {
	snap, err := h.service.SnapshotFor(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch product"})
		return
	}

	c.JSON(http.StatusOK, snapshotPayload(snap))
}

// --------------------------------------------------
// Public: shop catalog
// --------------------------------------------------
func (h *Handler) ListShopProducts(c *gin.Context) {
	products, err := h.service.ListByShop(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch products"})
		return
	}

	out := make([]gin.H, 0, len(products))
	for _, p := range products {
		out = append(out, productPayload(p))
	}
	c.JSON(http.StatusOK, out)
}

func snapshotPayload(snap *Snapshot) gin.H {
	payload := productPayload(&snap.Product)
	payload["effective_price"] = snap.BasePrice
	if len(snap.AddonGroups) > 0 {
		payload["addons"] = snap.AddonGroups
	}
	return payload
}

func productPayload(p *Product) gin.H {
	payload := gin.H{
		"id":       p.ID,
		"shop_id":  p.ShopID,
		"name":     p.Name,
		"price":    p.Price,
		"stock":    p.Stock,
		"category": p.Category,
	}
	if p.ImageURL != "" {
		payload["image_url"] = p.ImageURL
	}
	if p.Unit != "" {
		payload["unit"] = p.Unit
	}

	switch dim := p.Dimension.(type) {
	case *MenuDimension:
		payload["menu_variants"] = dim.Types
	case *FashionDimension:
		payload["colors"] = dim.Colors
		payload["sizes"] = dim.Sizes
	case *PackDimension:
		payload["pack_options"] = dim.Packs
	}

	return payload
}
