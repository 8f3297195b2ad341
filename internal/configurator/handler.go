package configurator

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sayedtaha55/ray-eg/internal/catalog"
)

type Handler struct {
	sessions *SessionManager
	catalog  *catalog.Service
}

func NewHandler(sessions *SessionManager, catalogService *catalog.Service) *Handler {
	return &Handler{sessions: sessions, catalog: catalogService}
}

// --------------------------------------------------
// Open session (LAST-OPEN-WINS)
// --------------------------------------------------
func (h *Handler) Open(c *gin.Context) {
	var req struct {
		ProductID string `json:"product_id"`
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

	session := h.sessions.Open(c.GetString("userID"), snap)
	c.JSON(http.StatusCreated, h.sessionPayload(session))
}

// --------------------------------------------------
// Pick variant
// --------------------------------------------------
func (h *Handler) PickVariant(c *gin.Context) {
	var req struct {
		Kind       string `json:"kind"`
		TypeID     string `json:"type_id"`
		SizeID     string `json:"size_id"`
		ColorValue string `json:"color_value"`
		SizeLabel  string `json:"size_label"`
		PackID     string `json:"pack_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var choice VariantChoice
	switch req.Kind {
	case "menu":
		choice = MenuSelection{TypeID: req.TypeID, SizeID: req.SizeID}
	case "fashion":
		choice = FashionSelection{ColorValue: req.ColorValue, SizeLabel: req.SizeLabel}
	case "pack":
		choice = PackSelection{PackID: req.PackID}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown variant kind"})
		return
	}

	owner := c.GetString("userID")
	if err := h.sessions.PickVariant(owner, choice); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	h.respondState(c, owner)
}

// --------------------------------------------------
// Toggle add-on
// --------------------------------------------------
func (h *Handler) ToggleAddon(c *gin.Context) {
	var req struct {
		OptionID  string `json:"option_id"`
		VariantID string `json:"variant_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.OptionID == "" || req.VariantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "option_id and variant_id are required"})
		return
	}

	owner := c.GetString("userID")
	if err := h.sessions.ToggleAddon(owner, req.OptionID, req.VariantID); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	h.respondState(c, owner)
}

// --------------------------------------------------
// Current state / cancel
// --------------------------------------------------
func (h *Handler) GetState(c *gin.Context) {
	h.respondState(c, c.GetString("userID"))
}

func (h *Handler) Cancel(c *gin.Context) {
	h.sessions.Cancel(c.GetString("userID"))
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

func (h *Handler) respondState(c *gin.Context, owner string) {
	session, err := h.sessions.Get(owner)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.sessionPayload(session))
}

func (h *Handler) sessionPayload(session *Session) gin.H {
	return gin.H{
		"product_id":      session.Snapshot.Product.ID,
		"has_variants":    HasVariants(session.Snapshot),
		"selection":       session.State,
		"effective_price": EffectivePrice(session.Snapshot, &session.State),
	}
}
