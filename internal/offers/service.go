package offers

import (
	"context"
	"math"
	"time"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Effective base price (PRE-RESOLVED FOR THE CONFIGURATOR)
// --------------------------------------------------

// EffectiveBasePrice folds the active offer into a product's listed
// price. The configurator's price calculator receives the result and
// stays offer-unaware. No offer, an expired offer, or a lookup error
// all resolve to the listed price.
func (s *Service) EffectiveBasePrice(
	ctx context.Context,
	productID string,
	listPrice float64,
) (float64, error) {

	offer, err := s.repo.ActiveForProduct(ctx, productID)
	if err != nil || offer == nil {
		return listPrice, err
	}
	if offer.Expired(time.Now()) {
		return listPrice, nil
	}

	if offer.NewPrice > 0 {
		return offer.NewPrice, nil
	}
	if offer.Discount > 0 && offer.Discount < 100 {
		discounted := listPrice * (1 - offer.Discount/100)
		return math.Round(discounted*100) / 100, nil
	}

	return listPrice, nil
}

func (s *Service) ListByShop(
	ctx context.Context,
	shopID string,
) ([]*Offer, error) {
	return s.repo.ListByShop(ctx, shopID)
}
