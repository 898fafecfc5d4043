package cart

// Visibility is the persisted cart-row marker.
type Visibility int

const (
	Hidden Visibility = 0 // suppressed line, never written by this engine
	Active Visibility = 1 // confirmed cart line
	Draft  Visibility = 2 // deferred order saved as draft
)

// Line is one persisted cart row. One completed item maps to exactly one
// line; completed items are never aggregated.
type Line struct {
	UserID      int
	StoreID     int
	ProductID   int
	AttributeID int
	Quantity    int
	Price       float64
	Title       string
	Image       string
	CartType    string
	Variation   []byte // JSON payload, nil when the item has no selections
	Visible     Visibility
}
