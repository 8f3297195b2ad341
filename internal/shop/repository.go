package shop

import (
	"context"
	"errors"
)

var ErrShopNotFound = errors.New("shop not found")

type Repository interface {
	Create(ctx context.Context, shop *Shop) error
	ListByOwner(ctx context.Context, ownerID string) ([]*Shop, error)
	GetBySlug(ctx context.Context, slug string) (*Shop, error)
	IsOwner(ctx context.Context, shopID, userID string) (bool, error)

	AddGalleryItem(ctx context.Context, item *GalleryItem) error
	ListGallery(ctx context.Context, shopID string) ([]*GalleryItem, error)
}
