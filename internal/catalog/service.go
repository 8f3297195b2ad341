package catalog

import (
	"context"

	"github.com/Sayedtaha55/ray-eg/internal/core"
)

type Service struct {
	repo   Repository
	offers core.OfferResolver
}

func NewService(repo Repository, offers core.OfferResolver) *Service {
	return &Service{repo: repo, offers: offers}
}

func (s *Service) GetProduct(
	ctx context.Context,
	productID string,
) (*Product, error) {
	return s.repo.GetProduct(ctx, productID)
}

func (s *Service) ListByShop(
	ctx context.Context,
	shopID string,
) ([]*Product, error) {
	return s.repo.ListByShop(ctx, shopID)
}

// --------------------------------------------------
// Snapshot (READ VIEW FOR ONE SESSION)
// --------------------------------------------------

// SnapshotFor assembles the immutable view a configurator session prices
// against: the normalized product, the offer-resolved base price, and the
// shop add-on groups when the category permits them. Offer resolution
// failures fall back to the listed price; they never block a session.
func (s *Service) SnapshotFor(
	ctx context.Context,
	productID string,
) (*Snapshot, error) {

	product, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	base := product.Price
	if s.offers != nil {
		if resolved, err := s.offers.EffectiveBasePrice(ctx, product.ID, product.Price); err == nil {
			base = resolved
		}
	}

	var groups []AddonGroup
	if product.Category == CategoryRestaurant {
		groups, _ = s.repo.ShopAddonGroups(ctx, product.ShopID)
	}

	return &Snapshot{
		Product:     *product,
		BasePrice:   base,
		AddonGroups: groups,
	}, nil
}
