package cart

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sayedtaha55/ray-eg/internal/catalog"
	"github.com/Sayedtaha55/ray-eg/internal/configurator"
)

type Handler struct {
	service  *Service
	catalog  *catalog.Service
	sessions *configurator.SessionManager
}

func NewHandler(
	service *Service,
	catalogService *catalog.Service,
	sessions *configurator.SessionManager,
) *Handler {
	return &Handler{
		service:  service,
		catalog:  catalogService,
		sessions: sessions,
	}
}

// --------------------------------------------------
// Simple add (NO VARIANTS)
// --------------------------------------------------
func (h *Handler) AddItem(c *gin.Context) {
	var req struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
		return
	}

	snap, err := h.catalog.SnapshotFor(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
		return
	}

	// Configurable products go through a session instead.
	if configurator.HasVariants(snap) {
		c.JSON(http.StatusConflict, gin.H{
			"error":                  "product requires configuration",
			"requires_configuration": true,
		})
		return
	}

	owner := c.GetString("userID")
	line, err := h.service.AddSimple(c.Request.Context(), owner, snap, req.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add to cart"})
		return
	}
	if line == nil {
		c.JSON(http.StatusOK, gin.H{"added": false, "reason": "out of stock"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"added": true, "line": line})
}

// --------------------------------------------------
// Commit open configurator session
// --------------------------------------------------
func (h *Handler) CommitSession(c *gin.Context) {
	owner := c.GetString("userID")

	session, err := h.sessions.Take(owner)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	line, err := h.service.Commit(c.Request.Context(), owner, session.Snapshot, &session.State, 1)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add to cart"})
		return
	}
	if line == nil {
		c.JSON(http.StatusOK, gin.H{"added": false, "reason": "out of stock"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"added": true, "line": line})
}

// --------------------------------------------------
// Cart reads & quantity updates
// --------------------------------------------------
func (h *Handler) GetCart(c *gin.Context) {
	owner := c.GetString("userID")
	h.service.Hydrate(c.Request.Context(), owner)

	lines := h.service.Lines(owner)
	var total float64
	for _, l := range lines {
		total += l.Price * float64(l.Quantity)
	}

	c.JSON(http.StatusOK, gin.H{
		"lines": lines,
		"total": total,
	})
}

func (h *Handler) UpdateQuantity(c *gin.Context) {
	var req struct {
		Delta int `json:"delta"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Delta == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "delta is required"})
		return
	}

	owner := c.GetString("userID")
	line, ok := h.service.UpdateQuantity(c.Request.Context(), owner, c.Param("lineId"), req.Delta)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "line not found"})
		return
	}
	if line == nil {
		c.JSON(http.StatusOK, gin.H{"removed": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{"line": line})
}

func (h *Handler) RemoveLine(c *gin.Context) {
	owner := c.GetString("userID")
	if !h.service.Remove(c.Request.Context(), owner, c.Param("lineId")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "line not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": true})
}
