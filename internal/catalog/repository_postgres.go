package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"log"

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
// STORE MENU
// --------------------------------------------------

func (r *PostgresRepository) StoreMenu(
	ctx context.Context,
	storeID int,
) ([]Item, error) {

	rows, err := r.db.Query(ctx, `
		SELECT
			p.id,
			p.title,
			p.store_id,
			COALESCE(s.title, ''),
			COALESCE(main.title, ''),
			COALESCE(sub.name, ''),
			COALESCE(pa.title, ''),
			COALESCE(p.image, '')
		FROM products p
		LEFT JOIN subcategories sub ON sub.id = p.subcategory_id
		LEFT JOIN categories main   ON main.id = sub.category_id
		LEFT JOIN stores s          ON s.id = p.store_id
		LEFT JOIN product_attributes pa ON pa.product_id = p.id
		WHERE p.store_id = $1 AND p.status = 1
	`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(
			&it.ID,
			&it.Name,
			&it.StoreID,
			&it.StoreName,
			&it.Category,
			&it.Subcategory,
			&it.AttributeTitle,
			&it.Image,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

// --------------------------------------------------
// ITEM DETAILS (options + add-ons + flat price)
// --------------------------------------------------

func (r *PostgresRepository) ItemDetails(
	ctx context.Context,
	itemID int,
) (*ItemDetails, error) {

	details := &ItemDetails{}

	rows, err := r.db.Query(ctx, `
		SELECT option_name, option_values, is_required, max_selections
		FROM product_options
		WHERE product_id = $1 AND status = 1
	`, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			group OptionGroup
			raw   []byte
		)
		if err := rows.Scan(&group.Name, &raw, &group.Required, &group.MaxSelections); err != nil {
			return nil, err
		}

		// An undecodable payload means no usable values for this group,
		// never a hard failure.
		if err := json.Unmarshal(raw, &group.Values); err != nil {
			log.Printf("catalog: bad option payload for item %d group %q: %v", itemID, group.Name, err)
			continue
		}
		details.Options = append(details.Options, group)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	addonRows, err := r.db.Query(ctx, `
		SELECT addon_name, addon_price, COALESCE(addon_category, ''), is_required
		FROM product_addons
		WHERE product_id = $1 AND status = 1
	`, itemID)
	if err != nil {
		return nil, err
	}
	defer addonRows.Close()

	for addonRows.Next() {
		var a AddOn
		if err := addonRows.Scan(&a.Name, &a.Price, &a.Category, &a.Required); err != nil {
			return nil, err
		}
		details.AddOns = append(details.AddOns, a)
	}
	if err := addonRows.Err(); err != nil {
		return nil, err
	}

	var price *float64
	err = r.db.QueryRow(ctx, `
		SELECT normal_price FROM product_attributes WHERE product_id = $1
	`, itemID).Scan(&price)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	details.NormalPrice = price

	return details, nil
}

// --------------------------------------------------
// ITEM QUESTIONS
// --------------------------------------------------

func (r *PostgresRepository) ItemQuestions(
	ctx context.Context,
	itemID int,
) ([]Question, error) {

	rows, err := r.db.Query(ctx, `
		SELECT question_text, question_type, required, sort_order
		FROM menu_questions
		WHERE item_id = $1
		ORDER BY sort_order
	`, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []Question
	for rows.Next() {
		var q Question
		if err := rows.Scan(&q.Text, &q.Type, &q.Required, &q.SortOrder); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}

	return questions, rows.Err()
}

// --------------------------------------------------
// DISCOUNT
// --------------------------------------------------

func (r *PostgresRepository) Discount(
	ctx context.Context,
	itemID int,
) (float64, error) {

	var discount *float64
	err := r.db.QueryRow(ctx, `
		SELECT discount FROM product_attributes WHERE product_id = $1
	`, itemID).Scan(&discount)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	if discount == nil {
		return 0, nil
	}
	return *discount, nil
}

// --------------------------------------------------
// DISPLAY NAMES
// --------------------------------------------------

func (r *PostgresRepository) UserName(
	ctx context.Context,
	userID int,
) (string, error) {

	var name string
	err := r.db.QueryRow(ctx, `
		SELECT name FROM users WHERE id = $1 AND ustatus = 1
	`, userID).Scan(&name)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "Customer", nil
		}
		return "", err
	}
	if name == "" {
		return "Customer", nil
	}
	return name, nil
}

func (r *PostgresRepository) StoreName(
	ctx context.Context,
	storeID int,
) (string, error) {

	var title string
	err := r.db.QueryRow(ctx, `
		SELECT title FROM stores WHERE id = $1 AND status = 1
	`, storeID).Scan(&title)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "Store", nil
		}
		return "", err
	}
	if title == "" {
		return "Store", nil
	}
	return title, nil
}
