package inventory

import (
	"context"
	"errors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// StockFor satisfies core.StockReader for the cart.
func (s *Service) StockFor(ctx context.Context, productID string) (int, error) {
	return s.repo.StockFor(ctx, productID)
}

// RefreshStock sets a product's stock count after an ownership check.
func (s *Service) RefreshStock(
	ctx context.Context,
	productID string,
	userID string,
	stock int,
) error {

	if stock < 0 {
		return errors.New("stock cannot be negative")
	}

	owns, err := s.repo.OwnsProduct(ctx, productID, userID)
	if err != nil {
		return err
	}
	if !owns {
		return errors.New("unauthorized")
	}

	return s.repo.UpdateStock(ctx, productID, stock)
}
