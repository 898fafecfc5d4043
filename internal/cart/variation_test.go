package cart

import (
	"encoding/json"
	"testing"

	"github.com/SKxrda3/sb-voice/internal/order"
)

func TestMarshalVariationEmptySelections(t *testing.T) {
	raw, err := MarshalVariation(order.CompletedItem{Quantity: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw != nil {
		t.Fatalf("expected nil variation for an item with no selections, got %s", raw)
	}
}

func TestMarshalVariationShape(t *testing.T) {
	item := order.CompletedItem{
		Sizes:  []order.SizeSelection{{Name: "Large", Quantity: 2, Price: 300}},
		AddOns: []order.AddOnSelection{{Name: "Extra Cheese", Price: 40}},
	}

	raw, err := MarshalVariation(item)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var entries []struct {
		Name   string `json:"name"`
		Values struct {
			Label string  `json:"label"`
			Price float64 `json:"price"`
		} `json:"values"`
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		t.Fatalf("variation is not valid JSON: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "Large" || entries[0].Values.Label != "Quantity: 2" || entries[0].Values.Price != 300 {
		t.Fatalf("unexpected size entry: %+v", entries[0])
	}
	if entries[1].Name != "Extra Cheese" || entries[1].Values.Label != "Add-on" || entries[1].Values.Price != 40 {
		t.Fatalf("unexpected add-on entry: %+v", entries[1])
	}
}
