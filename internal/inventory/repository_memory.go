package inventory

import "context"

type InMemoryRepository struct {
	stock  map[string]int
	owners map[string]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		stock:  make(map[string]int),
		owners: make(map[string]string),
	}
}

func (r *InMemoryRepository) SetStock(productID string, stock int) {
	r.stock[productID] = stock
}

func (r *InMemoryRepository) SetOwner(productID, userID string) {
	r.owners[productID] = userID
}

func (r *InMemoryRepository) StockFor(
	ctx context.Context,
	productID string,
) (int, error) {
	stock, ok := r.stock[productID]
	if !ok {
		return 0, ErrProductNotFound
	}
	return stock, nil
}

func (r *InMemoryRepository) UpdateStock(
	ctx context.Context,
	productID string,
	stock int,
) error {
	if _, ok := r.stock[productID]; !ok {
		return ErrProductNotFound
	}
	r.stock[productID] = stock
	return nil
}

func (r *InMemoryRepository) OwnsProduct(
	ctx context.Context,
	productID string,
	userID string,
) (bool, error) {
	return r.owners[productID] == userID, nil
}
