package order

import (
	"fmt"
	"strings"

	"github.com/SKxrda3/sb-voice/internal/catalog"
	"github.com/SKxrda3/sb-voice/internal/lex"
)

// --------------------------------------------------
// QUESTION BUILDING
// --------------------------------------------------

// BuildQuestions produces the ordered question queue for one item:
// one options question per option group, then one boolean question per
// add-on, in catalog order. An item with no option groups but a flat price
// gets a single synthetic quantity question instead.
// Configured question rows override the default boolean prompt when their
// text mentions the add-on by name.
func BuildQuestions(details *catalog.ItemDetails, configured []catalog.Question) []PendingQuestion {
	var queue []PendingQuestion

	if len(details.Options) > 0 {
		for i := range details.Options {
			group := &details.Options[i]

			choices := make([]string, 0, len(group.Values))
			for _, v := range group.Values {
				choices = append(choices, fmt.Sprintf("%s (₹%g)", v.Name, v.Price))
			}

			queue = append(queue, PendingQuestion{
				Kind:   QuestionOptions,
				Prompt: fmt.Sprintf("Please select your %s. Options are: %s", group.Name, strings.Join(choices, ", ")),
				Group:  group,
			})
		}
	} else if details.NormalPrice != nil {
		queue = append(queue, PendingQuestion{
			Kind:   QuestionQuantity,
			Prompt: "What quantity would you like?",
		})
	}

	for i := range details.AddOns {
		addon := &details.AddOns[i]

		prompt := fmt.Sprintf("Would you like to add %s (₹%g)?", addon.Name, addon.Price)
		for _, q := range configured {
			if q.Type == "boolean" && strings.Contains(strings.ToLower(q.Text), strings.ToLower(addon.Name)) {
				prompt = q.Text
				break
			}
		}

		queue = append(queue, PendingQuestion{
			Kind:   QuestionBoolean,
			Prompt: prompt,
			AddOn:  addon,
		})
	}

	return queue
}

// NewInProgressItem builds the in-progress record for a freshly resolved
// item and consumes any prefilled answers so those questions are not asked.
func NewInProgressItem(
	item catalog.Item,
	details *catalog.ItemDetails,
	configured []catalog.Question,
	prefill Prefill,
) *InProgressItem {

	ipi := &InProgressItem{
		Item:     item,
		Details:  *details,
		Queue:    BuildQuestions(details, configured),
		Quantity: prefill.Quantity,
	}
	ipi.applyPrefill(prefill)
	return ipi
}

func (ipi *InProgressItem) applyPrefill(prefill Prefill) {
	if len(prefill.Options) == 0 && len(prefill.AddOns) == 0 && prefill.Quantity == 0 {
		return
	}

	var remaining []PendingQuestion
	for _, q := range ipi.Queue {
		switch q.Kind {
		case QuestionOptions:
			value, ok := prefill.Options[strings.ToLower(q.Group.Name)]
			if !ok {
				remaining = append(remaining, q)
				continue
			}
			qty := prefill.Quantity
			if qty < 1 {
				qty = 1
			}
			if !ipi.selectOption(q.Group, value, qty) {
				remaining = append(remaining, q)
			}

		case QuestionBoolean:
			if !prefill.AddOns[strings.ToLower(q.AddOn.Name)] {
				remaining = append(remaining, q)
				continue
			}
			ipi.AddOns = append(ipi.AddOns, AddOnSelection{Name: q.AddOn.Name, Price: q.AddOn.Price})

		case QuestionQuantity:
			if prefill.Quantity < 1 {
				remaining = append(remaining, q)
				continue
			}
			ipi.Quantity = prefill.Quantity

		default:
			remaining = append(remaining, q)
		}
	}
	ipi.Queue = remaining
}

// --------------------------------------------------
// ANSWER APPLICATION
// --------------------------------------------------

// CurrentQuestion returns the front of the queue.
func (ipi *InProgressItem) CurrentQuestion() (PendingQuestion, bool) {
	if len(ipi.Queue) == 0 {
		return PendingQuestion{}, false
	}
	return ipi.Queue[0], true
}

// ApplyAnswer applies the raw answer text to the front question and reports
// whether the question was consumed. A required options question answered
// with nothing that matches its allowed values is not consumed; the caller
// re-asks the identical question.
func (ipi *InProgressItem) ApplyAnswer(raw string) bool {
	q, ok := ipi.CurrentQuestion()
	if !ok {
		return false
	}

	switch q.Kind {
	case QuestionOptions:
		names := make([]string, 0, len(q.Group.Values))
		for _, v := range q.Group.Values {
			names = append(names, v.Name)
		}

		parsed := lex.ParseMultiQuantities(raw, names)
		matched := false
		for _, p := range parsed {
			if ipi.selectOption(q.Group, p.Label, p.Quantity) {
				matched = true
			}
		}
		if !matched && q.Group.Required {
			return false
		}

	case QuestionBoolean:
		if lex.ParseBooleanIntent(raw) {
			ipi.AddOns = append(ipi.AddOns, AddOnSelection{Name: q.AddOn.Name, Price: q.AddOn.Price})
		}
		// A declined add-on is simply omitted.

	case QuestionQuantity:
		qty := lex.ExtractQuantity(raw)
		if qty < 1 {
			qty = 1
		}
		ipi.Quantity = qty
	}

	ipi.Queue = ipi.Queue[1:]
	return true
}

// selectOption records one size selection with its catalog price.
func (ipi *InProgressItem) selectOption(group *catalog.OptionGroup, name string, qty int) bool {
	for _, v := range group.Values {
		if strings.EqualFold(v.Name, name) {
			ipi.Sizes = append(ipi.Sizes, SizeSelection{Name: v.Name, Quantity: qty, Price: v.Price})
			return true
		}
	}
	return false
}

// --------------------------------------------------
// COMPLETION
// --------------------------------------------------

// TotalQuantity applies the aggregate rule: size quantities win when any
// size was selected, otherwise the explicit or prefilled quantity, floor 1.
func (ipi *InProgressItem) TotalQuantity() int {
	if len(ipi.Sizes) > 0 {
		sum := 0
		for _, s := range ipi.Sizes {
			sum += s.Quantity
		}
		if sum < 1 {
			return 1
		}
		return sum
	}
	if ipi.Quantity >= 1 {
		return ipi.Quantity
	}
	return 1
}

// Complete promotes the item once its queue is drained. Price is filled in
// by the pricing engine.
func (ipi *InProgressItem) Complete(price float64) CompletedItem {
	return CompletedItem{
		Item:     ipi.Item,
		Quantity: ipi.TotalQuantity(),
		Sizes:    ipi.Sizes,
		AddOns:   ipi.AddOns,
		Price:    price,
	}
}
