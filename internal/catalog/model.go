package catalog

// Item is one purchasable catalog entry, an immutable snapshot fetched per
// conversation. The engine never mutates it.
type Item struct {
	ID             int    `json:"item_id"`
	Name           string `json:"item_name"`
	StoreID        int    `json:"store_id"`
	StoreName      string `json:"store_name,omitempty"`
	Category       string `json:"category_name,omitempty"`
	Subcategory    string `json:"subcategory_name,omitempty"`
	AttributeTitle string `json:"attribute_title,omitempty"` // free-text tag, sometimes a JSON list
	Image          string `json:"image,omitempty"`
}

// OptionValue is one purchasable variant inside an option group.
type OptionValue struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// OptionGroup is a named set of variants (e.g. "Size") with per-value prices.
type OptionGroup struct {
	Name          string        `json:"option_name"`
	Values        []OptionValue `json:"option_values"`
	Required      bool          `json:"is_required"`
	MaxSelections int           `json:"max_selections"`
}

// AddOn is an optional, independently priced extra.
type AddOn struct {
	Name     string  `json:"addon_name"`
	Price    float64 `json:"addon_price"`
	Category string  `json:"addon_category,omitempty"`
	Required bool    `json:"is_required"`
}

// ItemDetails carries everything needed to question and price one item.
// NormalPrice is nil when the item is priced only through its option groups.
type ItemDetails struct {
	Options     []OptionGroup `json:"options"`
	AddOns      []AddOn       `json:"addons"`
	NormalPrice *float64      `json:"normal_price"`
}

// Question is a configured clarifying prompt tied to an item.
type Question struct {
	Text      string `json:"question_text"`
	Type      string `json:"question_type"` // "options" or "boolean"
	Required  bool   `json:"required"`
	SortOrder int    `json:"sort_order"`
}
