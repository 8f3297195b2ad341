package offers

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

func (r *PostgresRepository) ActiveForProduct(
	ctx context.Context,
	productID string,
) (*Offer, error) {

	var o Offer
	err := r.db.QueryRow(ctx, `
		SELECT
			id,
			shop_id,
			product_id,
			title,
			discount,
			COALESCE(old_price, 0),
			COALESCE(new_price, 0),
			expires_at,
			active,
			created_at
		FROM offers
		WHERE product_id = $1
		  AND active = TRUE
		  AND (expires_at IS NULL OR expires_at > NOW())
		ORDER BY created_at DESC
		LIMIT 1
	`, productID).Scan(
		&o.ID,
		&o.ShopID,
		&o.ProductID,
		&o.Title,
		&o.Discount,
		&o.OldPrice,
		&o.NewPrice,
		&o.ExpiresAt,
		&o.Active,
		&o.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *PostgresRepository) ListByShop(
	ctx context.Context,
	shopID string,
) ([]*Offer, error) {

	rows, err := r.db.Query(ctx, `
		SELECT
			id,
			shop_id,
			product_id,
			title,
			discount,
			COALESCE(old_price, 0),
			COALESCE(new_price, 0),
			expires_at,
			active,
			created_at
		FROM offers
		WHERE shop_id = $1
		ORDER BY created_at DESC
	`, shopID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Offer
	for rows.Next() {
		var o Offer
		if err := rows.Scan(
			&o.ID,
			&o.ShopID,
			&o.ProductID,
			&o.Title,
			&o.Discount,
			&o.OldPrice,
			&o.NewPrice,
			&o.ExpiresAt,
			&o.Active,
			&o.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &o)
	}
	return out, rows.Err()
}
