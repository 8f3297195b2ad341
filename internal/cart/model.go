package cart

import (
	"time"

	"github.com/Sayedtaha55/ray-eg/internal/configurator"
)

// LineItem is one resolved purchase intent. Variant and Addons are
// copied out of the catalog at commit time and never re-read; changing a
// configuration means committing a new line, not mutating this one.
type LineItem struct {
	ID        string                        `json:"id"`
	ProductID string                        `json:"product_id"`
	Name      string                        `json:"name"`
	Price     float64                       `json:"price"`
	Quantity  int                           `json:"quantity"`
	Variant   *configurator.ResolvedVariant `json:"variant_selection,omitempty"`
	Addons    []configurator.ResolvedAddon  `json:"addons,omitempty"`
	AddedAt   time.Time                     `json:"added_at"`
}
