package cart

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sayedtaha55/ray-eg/internal/configurator"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// UPSERT LINE (snapshots stored as JSONB, never re-resolved)
// --------------------------------------------------
func (r *PostgresRepository) SaveLine(
	ctx context.Context,
	owner string,
	line *LineItem,
) error {

	var variantDoc []byte
	if line.Variant != nil {
		var err error
		variantDoc, err = json.Marshal(line.Variant)
		if err != nil {
			return err
		}
	}

	addonsDoc, err := json.Marshal(line.Addons)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO cart_lines (
			id,
			owner_id,
			product_id,
			name,
			price,
			quantity,
			variant_selection,
			addons,
			added_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (id, owner_id)
		DO UPDATE SET quantity = EXCLUDED.quantity
	`,
		line.ID,
		owner,
		line.ProductID,
		line.Name,
		line.Price,
		line.Quantity,
		variantDoc,
		addonsDoc,
		line.AddedAt,
	)
	return err
}

func (r *PostgresRepository) DeleteLine(
	ctx context.Context,
	owner string,
	lineID string,
) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM cart_lines
		WHERE id = $1 AND owner_id = $2
	`, lineID, owner)
	return err
}

// --------------------------------------------------
// LIST LINES (insertion order)
// --------------------------------------------------
func (r *PostgresRepository) ListByOwner(
	ctx context.Context,
	owner string,
) ([]LineItem, error) {

	rows, err := r.db.Query(ctx, `
		SELECT
			id,
			product_id,
			name,
			price,
			quantity,
			variant_selection,
			addons,
			added_at
		FROM cart_lines
		WHERE owner_id = $1
		ORDER BY added_at ASC
	`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []LineItem
	for rows.Next() {
		var (
			line       LineItem
			variantDoc []byte
			addonsDoc  []byte
		)
		if err := rows.Scan(
			&line.ID,
			&line.ProductID,
			&line.Name,
			&line.Price,
			&line.Quantity,
			&variantDoc,
			&addonsDoc,
			&line.AddedAt,
		); err != nil {
			return nil, err
		}

		if len(variantDoc) > 0 {
			var variant configurator.ResolvedVariant
			if err := json.Unmarshal(variantDoc, &variant); err == nil {
				line.Variant = &variant
			}
		}
		if len(addonsDoc) > 0 {
			_ = json.Unmarshal(addonsDoc, &line.Addons)
		}

		lines = append(lines, line)
	}
	return lines, rows.Err()
}
