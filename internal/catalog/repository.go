package catalog

import "context"

// Repository defines the read-only catalog lookups the engine consumes.
// Implementations surface store failures as errors; the engine apologizes
// and aborts the turn without mutating conversation state.
type Repository interface {

	// Active menu items for one store, with enough fields for resolution
	// and summary display.
	StoreMenu(ctx context.Context, storeID int) ([]Item, error)

	// Option groups, add-ons and flat price for one item.
	ItemDetails(ctx context.Context, itemID int) (*ItemDetails, error)

	// Configured clarifying questions for one item, in sort order.
	ItemQuestions(ctx context.Context, itemID int) ([]Question, error)

	// Discount percentage for one item; 0 when absent.
	Discount(ctx context.Context, itemID int) (float64, error)

	// Display names with generic fallbacks when absent.
	UserName(ctx context.Context, userID int) (string, error)
	StoreName(ctx context.Context, storeID int) (string, error)
}
