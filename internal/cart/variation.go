package cart

import (
	"encoding/json"
	"fmt"

	"github.com/SKxrda3/sb-voice/internal/order"
)

// variationEntry is the persisted shape of one selection: size selections
// carry a synthetic "Quantity: n" label, add-ons the fixed "Add-on" label.
type variationEntry struct {
	Name   string          `json:"name"`
	Values variationValues `json:"values"`
}

type variationValues struct {
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

// MarshalVariation serializes an item's selections for the cart row.
// Items with no selections persist a NULL variation.
func MarshalVariation(item order.CompletedItem) ([]byte, error) {
	if len(item.Sizes) == 0 && len(item.AddOns) == 0 {
		return nil, nil
	}

	entries := make([]variationEntry, 0, len(item.Sizes)+len(item.AddOns))

	for _, s := range item.Sizes {
		entries = append(entries, variationEntry{
			Name: s.Name,
			Values: variationValues{
				Label: fmt.Sprintf("Quantity: %d", s.Quantity),
				Price: s.Price,
			},
		})
	}

	for _, a := range item.AddOns {
		entries = append(entries, variationEntry{
			Name: a.Name,
			Values: variationValues{
				Label: "Add-on",
				Price: a.Price,
			},
		})
	}

	return json.Marshal(entries)
}
