package catalog

import (
	"context"
	"errors"
)

var ErrProductNotFound = errors.New("product not found")

// Repository defines read access to the catalog. The configurator and
// cart never write through it; the catalog is owned elsewhere.
type Repository interface {
	GetProduct(ctx context.Context, productID string) (*Product, error)
	ListByShop(ctx context.Context, shopID string) ([]*Product, error)

	// Shop-level add-on groups, already normalized.
	ShopAddonGroups(ctx context.Context, shopID string) ([]AddonGroup, error)
}
