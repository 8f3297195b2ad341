package offers

import "time"

// Offer is a per-product discount published by a shop. NewPrice wins
// when set; otherwise Discount (percent) is applied to the list price.
type Offer struct {
	ID        string     `json:"id"`
	ShopID    string     `json:"shop_id"`
	ProductID string     `json:"product_id"`
	Title     string     `json:"title"`
	Discount  float64    `json:"discount"`
	OldPrice  float64    `json:"old_price,omitempty"`
	NewPrice  float64    `json:"new_price,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
}

// Expired reports whether the offer has passed its expiry, if any.
func (o *Offer) Expired(now time.Time) bool {
	return o.ExpiresAt != nil && now.After(*o.ExpiresAt)
}
