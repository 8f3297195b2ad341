package core

import "context"

// StockReader supplies the current stock count for a product.
// The cart never writes stock; refresh happens through inventory.
type StockReader interface {
	StockFor(ctx context.Context, productID string) (int, error)
}

// OfferResolver resolves the effective base price of a product,
// folding in the currently active discount offer (if any).
type OfferResolver interface {
	EffectiveBasePrice(ctx context.Context, productID string, listPrice float64) (float64, error)
}
