package catalog

import (
	"context"
	"encoding/json"
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
// GET PRODUCT (normalized)
// --------------------------------------------------
func (r *PostgresRepository) GetProduct(
	ctx context.Context,
	productID string,
) (*Product, error) {

	row := r.db.QueryRow(ctx, `
		SELECT
			p.id,
			p.shop_id,
			p.name,
			p.price,
			p.stock,
			COALESCE(p.image_url, ''),
			COALESCE(p.unit, ''),
			s.category,
			COALESCE(p.menu_variants, 'null'),
			COALESCE(p.colors, 'null'),
			COALESCE(p.sizes, 'null'),
			COALESCE(p.pack_options, 'null')
		FROM products p
		JOIN shops s ON s.id = p.shop_id
		WHERE p.id = $1
	`, productID)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// --------------------------------------------------
// LIST PRODUCTS BY SHOP
// --------------------------------------------------
func (r *PostgresRepository) ListByShop(
	ctx context.Context,
	shopID string,
) ([]*Product, error) {

	rows, err := r.db.Query(ctx, `
		SELECT
			p.id,
			p.shop_id,
			p.name,
			p.price,
			p.stock,
			COALESCE(p.image_url, ''),
			COALESCE(p.unit, ''),
			s.category,
			COALESCE(p.menu_variants, 'null'),
			COALESCE(p.colors, 'null'),
			COALESCE(p.sizes, 'null'),
			COALESCE(p.pack_options, 'null')
		FROM products p
		JOIN shops s ON s.id = p.shop_id
		WHERE p.shop_id = $1
		ORDER BY p.created_at ASC
	`, shopID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

// --------------------------------------------------
// SHOP ADD-ON GROUPS
// --------------------------------------------------
func (r *PostgresRepository) ShopAddonGroups(
	ctx context.Context,
	shopID string,
) ([]AddonGroup, error) {

	var raw []byte
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(addons, 'null')
		FROM shops
		WHERE id = $1
	`, shopID).Scan(&raw)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return NormalizeAddonGroups(raw)
}

// scanProduct reads one product row (columns in the SELECT order above)
// and normalizes the JSONB variant columns into the canonical model.
func scanProduct(row pgx.Row) (*Product, error) {
	var (
		src      ProductSource
		category string
		menuRaw  []byte
		colorRaw []byte
		sizeRaw  []byte
		packRaw  []byte
	)

	if err := row.Scan(
		&src.ID,
		&src.ShopID,
		&src.Name,
		(*float64)(&src.Price),
		&src.Stock,
		&src.ImageURL,
		&src.Unit,
		&category,
		&menuRaw,
		&colorRaw,
		&sizeRaw,
		&packRaw,
	); err != nil {
		return nil, err
	}

	// Stored JSON may still carry either spelling inside the documents;
	// Normalize handles that. A malformed column degrades to no dimension.
	_ = json.Unmarshal(menuRaw, &src.MenuVariants)
	_ = json.Unmarshal(colorRaw, &src.Colors)
	_ = json.Unmarshal(sizeRaw, &src.Sizes)
	_ = json.Unmarshal(packRaw, &src.PackOptions)

	product := src.Normalize(category)
	return &product, nil
}
