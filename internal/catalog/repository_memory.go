package catalog

import "context"

// InMemoryRepository backs tests and local runs without Postgres.
type InMemoryRepository struct {
	products map[string]*Product
	addons   map[string][]AddonGroup
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		products: make(map[string]*Product),
		addons:   make(map[string][]AddonGroup),
	}
}

func (r *InMemoryRepository) PutProduct(p *Product) {
	r.products[p.ID] = p
}

func (r *InMemoryRepository) PutShopAddons(shopID string, groups []AddonGroup) {
	r.addons[shopID] = groups
}

func (r *InMemoryRepository) GetProduct(
	ctx context.Context,
	productID string,
) (*Product, error) {
	p, ok := r.products[productID]
	if !ok {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (r *InMemoryRepository) ListByShop(
	ctx context.Context,
	shopID string,
) ([]*Product, error) {
	var out []*Product
	for _, p := range r.products {
		if p.ShopID == shopID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) ShopAddonGroups(
	ctx context.Context,
	shopID string,
) ([]AddonGroup, error) {
	return r.addons[shopID], nil
}
