package order

import "github.com/SKxrda3/sb-voice/internal/catalog"

// SizeSelection is one resolved option-group choice with its count.
type SizeSelection struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// AddOnSelection is one accepted add-on.
type AddOnSelection struct {
	Name  string  `json:"addon_name"`
	Price float64 `json:"addon_price"`
}

type QuestionKind string

const (
	QuestionOptions  QuestionKind = "options"
	QuestionBoolean  QuestionKind = "boolean"
	QuestionQuantity QuestionKind = "quantity"
)

// PendingQuestion is one outstanding clarifying question. The queue is
// consumed front to back; questions are never reordered, and are skipped
// only when prefilled data already answered them.
type PendingQuestion struct {
	Kind   QuestionKind         `json:"kind"`
	Prompt string               `json:"prompt"`
	Group  *catalog.OptionGroup `json:"group,omitempty"`
	AddOn  *catalog.AddOn       `json:"addon,omitempty"`
}

// InProgressItem is one resolved item still being questioned. Owned by
// exactly one conversation.
type InProgressItem struct {
	Item     catalog.Item        `json:"item"`
	Details  catalog.ItemDetails `json:"details"`
	Queue    []PendingQuestion   `json:"pending_questions"`
	Sizes    []SizeSelection     `json:"selected_options"`
	AddOns   []AddOnSelection    `json:"selected_addons"`
	Quantity int                 `json:"quantity"` // explicit or prefilled; 0 = unset
}

// CompletedItem is an item whose questions are all answered. Immutable once
// appended to the conversation's completed list.
type CompletedItem struct {
	Item     catalog.Item     `json:"item"`
	Quantity int              `json:"quantity"`
	Sizes    []SizeSelection  `json:"selected_options"`
	AddOns   []AddOnSelection `json:"selected_addons"`
	Price    float64          `json:"price"`
}

// Prefill carries answers already present in the original utterance
// ("2 large extra cheese pizza").
type Prefill struct {
	Quantity int               // 0 = not mentioned
	Options  map[string]string // option group name (lowercase) -> mentioned value
	AddOns   map[string]bool   // add-on name (lowercase) -> mentioned
}
