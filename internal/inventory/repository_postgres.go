package inventory

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

func (r *PostgresRepository) StockFor(
	ctx context.Context,
	productID string,
) (int, error) {

	var stock int
	err := r.db.QueryRow(ctx, `
		SELECT stock FROM products WHERE id = $1
	`, productID).Scan(&stock)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrProductNotFound
		}
		return 0, err
	}
	return stock, nil
}

func (r *PostgresRepository) UpdateStock(
	ctx context.Context,
	productID string,
	stock int,
) error {

	tag, err := r.db.Exec(ctx, `
		UPDATE products SET stock = $2 WHERE id = $1
	`, productID, stock)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *PostgresRepository) OwnsProduct(
	ctx context.Context,
	productID string,
	userID string,
) (bool, error) {

	var owns bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM products p
			JOIN shops s ON s.id = p.shop_id
			WHERE p.id = $1 AND s.owner_id = $2
		)
	`, productID, userID).Scan(&owns)

	return owns, err
}
