package shop

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Create shop
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, shop *Shop) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO shops (
			id,
			owner_id,
			name,
			slug,
			category,
			governorate,
			city,
			logo_url,
			status
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING created_at
	`,
		shop.ID,
		shop.OwnerID,
		shop.Name,
		shop.Slug,
		shop.Category,
		shop.Governorate,
		shop.City,
		shop.LogoURL,
		shop.Status,
	).Scan(&shop.CreatedAt)
}

// --------------------------------------------------
// List shops owned by user
// --------------------------------------------------
func (r *PostgresRepository) ListByOwner(
	ctx context.Context,
	ownerID string,
) ([]*Shop, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, owner_id, name, slug, category,
		       COALESCE(governorate, ''), COALESCE(city, ''),
		       COALESCE(logo_url, ''), status, created_at
		FROM shops
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shops []*Shop
	for rows.Next() {
		var s Shop
		if err := rows.Scan(
			&s.ID, &s.OwnerID, &s.Name, &s.Slug, &s.Category,
			&s.Governorate, &s.City, &s.LogoURL, &s.Status, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		shops = append(shops, &s)
	}
	return shops, rows.Err()
}

func (r *PostgresRepository) GetBySlug(
	ctx context.Context,
	slug string,
) (*Shop, error) {

	var s Shop
	err := r.db.QueryRow(ctx, `
		SELECT id, owner_id, name, slug, category,
		       COALESCE(governorate, ''), COALESCE(city, ''),
		       COALESCE(logo_url, ''), status, created_at
		FROM shops
		WHERE slug = $1
	`, slug).Scan(
		&s.ID, &s.OwnerID, &s.Name, &s.Slug, &s.Category,
		&s.Governorate, &s.City, &s.LogoURL, &s.Status, &s.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrShopNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *PostgresRepository) IsOwner(
	ctx context.Context,
	shopID string,
	userID string,
) (bool, error) {

	var owns bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM shops WHERE id = $1 AND owner_id = $2
		)
	`, shopID, userID).Scan(&owns)

	return owns, err
}

// --------------------------------------------------
// Gallery
// --------------------------------------------------
func (r *PostgresRepository) AddGalleryItem(
	ctx context.Context,
	item *GalleryItem,
) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO shop_gallery (id, shop_id, url, media_type, caption)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING created_at
	`,
		item.ID,
		item.ShopID,
		item.URL,
		item.MediaType,
		item.Caption,
	).Scan(&item.CreatedAt)
}

func (r *PostgresRepository) ListGallery(
	ctx context.Context,
	shopID string,
) ([]*GalleryItem, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, shop_id, url, media_type, COALESCE(caption, ''), created_at
		FROM shop_gallery
		WHERE shop_id = $1
		ORDER BY created_at DESC
	`, shopID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*GalleryItem
	for rows.Next() {
		var item GalleryItem
		if err := rows.Scan(
			&item.ID, &item.ShopID, &item.URL,
			&item.MediaType, &item.Caption, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}
