package shop

import "time"

type Shop struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"-"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Category    string    `json:"category"`
	Governorate string    `json:"governorate,omitempty"`
	City        string    `json:"city,omitempty"`
	LogoURL     string    `json:"logo_url,omitempty"`
	Status      string    `json:"status"` // pending | approved | rejected | suspended
	CreatedAt   time.Time `json:"created_at"`
}

// GalleryItem is one media entry on a shop's public profile.
type GalleryItem struct {
	ID        string    `json:"id"`
	ShopID    string    `json:"shop_id"`
	URL       string    `json:"url"`
	MediaType string    `json:"media_type"` // IMAGE | VIDEO
	Caption   string    `json:"caption,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
