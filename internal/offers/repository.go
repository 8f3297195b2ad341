package offers

import "context"

type Repository interface {
	// ActiveForProduct returns the newest active offer for a product,
	// or nil when none applies.
	ActiveForProduct(ctx context.Context, productID string) (*Offer, error)

	ListByShop(ctx context.Context, shopID string) ([]*Offer, error)
}
