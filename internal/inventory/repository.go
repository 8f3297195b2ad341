package inventory

import (
	"context"
	"errors"
)

var ErrProductNotFound = errors.New("product not found")

// Repository reads and refreshes per-product stock counts. The cart only
// ever reads; refresh belongs to the merchant surface.
type Repository interface {
	StockFor(ctx context.Context, productID string) (int, error)
	UpdateStock(ctx context.Context, productID string, stock int) error
	OwnsProduct(ctx context.Context, productID, userID string) (bool, error)
}
