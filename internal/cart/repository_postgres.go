package cart

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SKxrda3/sb-voice/internal/order"
)

type PostgresCommitter struct {
	db *pgxpool.Pool
}

func NewPostgresCommitter(db *pgxpool.Pool) *PostgresCommitter {
	return &PostgresCommitter{db: db}
}

// Commit resolves the item's pricing attribute row (0 when none exists),
// serializes the selections and writes exactly one cart row.
func (c *PostgresCommitter) Commit(
	ctx context.Context,
	userID int,
	storeID int,
	item order.CompletedItem,
	visible Visibility,
) error {

	var attributeID int
	err := c.db.QueryRow(ctx, `
		SELECT id FROM product_attributes
		WHERE product_id = $1 AND store_id = $2
		LIMIT 1
	`, item.Item.ID, storeID).Scan(&attributeID)

	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		attributeID = 0
	}

	variation, err := MarshalVariation(item)
	if err != nil {
		return err
	}

	title := item.Item.Name
	if title == "" {
		title = "Unnamed Product"
	}

	_, err = c.db.Exec(ctx, `
		INSERT INTO cart_data (
			uid, store_id, product_id, attribute_id, quantity, price,
			product_title, product_img, cart_type, variation, visible, subscription_data
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NULL)
	`,
		userID,
		storeID,
		item.Item.ID,
		attributeID,
		item.Quantity,
		item.Price,
		title,
		item.Item.Image,
		"normal",
		variation,
		int(visible),
	)

	return err
}
