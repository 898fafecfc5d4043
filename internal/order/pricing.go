package order

import "github.com/SKxrda3/sb-voice/internal/catalog"

// PriceItem computes one item's aggregate quantity and discounted total.
//
// With size selections the base is the sum of per-size price × quantity and
// the total quantity is the sum of size quantities (floor 1). Without them
// the flat catalog price × quantity applies. Add-ons contribute their summed
// price once per unit. The discount rate is a percentage; values stay in
// floating point with no intermediate rounding.
func PriceItem(
	details *catalog.ItemDetails,
	sizes []SizeSelection,
	addons []AddOnSelection,
	quantity int,
	discountRate float64,
) (float64, int) {

	var base float64
	var totalQty int

	if len(sizes) > 0 {
		for _, s := range sizes {
			base += s.Price * float64(s.Quantity)
			totalQty += s.Quantity
		}
		if totalQty < 1 {
			totalQty = 1
		}
	} else {
		if quantity < 1 {
			quantity = 1
		}
		var flat float64
		if details != nil && details.NormalPrice != nil {
			flat = *details.NormalPrice
		}
		base = flat * float64(quantity)
		totalQty = quantity
	}

	var addonSum float64
	for _, a := range addons {
		addonSum += a.Price
	}

	preDiscount := base + addonSum*float64(totalQty)
	return preDiscount * (1 - discountRate/100), totalQty
}

// PriceCompleted re-prices a completed item, e.g. for summary display.
func PriceCompleted(details *catalog.ItemDetails, item CompletedItem, discountRate float64) (float64, int) {
	return PriceItem(details, item.Sizes, item.AddOns, item.Quantity, discountRate)
}
