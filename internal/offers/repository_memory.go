package offers

import (
	"context"
	"time"
)

type InMemoryRepository struct {
	offers []*Offer
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Put(o *Offer) {
	r.offers = append(r.offers, o)
}

func (r *InMemoryRepository) ActiveForProduct(
	ctx context.Context,
	productID string,
) (*Offer, error) {
	now := time.Now()
	for i := len(r.offers) - 1; i >= 0; i-- {
		o := r.offers[i]
		if o.ProductID == productID && o.Active && !o.Expired(now) {
			return o, nil
		}
	}
	return nil, nil
}

func (r *InMemoryRepository) ListByShop(
	ctx context.Context,
	shopID string,
) ([]*Offer, error) {
	var out []*Offer
	for _, o := range r.offers {
		if o.ShopID == shopID {
			out = append(out, o)
		}
	}
	return out, nil
}
