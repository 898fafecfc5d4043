package dialog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/SKxrda3/sb-voice/internal/cart"
	"github.com/SKxrda3/sb-voice/internal/catalog"
	"github.com/SKxrda3/sb-voice/internal/lex"
	"github.com/SKxrda3/sb-voice/internal/order"
	"github.com/SKxrda3/sb-voice/internal/resolve"
)

// Engine drives the conversation automaton. Step is a pure transition over
// the passed-in state apart from the declared catalog and cart calls; the
// blocking script driver loops it in place, the HTTP driver persists the
// state between invocations.
type Engine struct {
	catalog   catalog.Repository
	resolver  *resolve.Resolver
	committer cart.Committer

	// Resolution policy for free-form collection.
	Threshold int
	Band      int
}

func NewEngine(cat catalog.Repository, resolver *resolve.Resolver, committer cart.Committer) *Engine {
	if resolver == nil {
		resolver = resolve.NewResolver(nil)
	}
	return &Engine{
		catalog:   cat,
		resolver:  resolver,
		committer: committer,
		Threshold: resolve.CollectThreshold,
		Band:      resolve.NarrowBand,
	}
}

// --------------------------------------------------
// CONVERSATION START
// --------------------------------------------------

// Start opens a conversation and produces the greeting turn.
func (e *Engine) Start(ctx context.Context, userID, storeID int) (*ConversationState, *Reply, error) {
	userName, err := e.catalog.UserName(ctx, userID)
	if err != nil {
		return nil, storeFailureReply(), err
	}
	storeName, err := e.catalog.StoreName(ctx, storeID)
	if err != nil {
		return nil, storeFailureReply(), err
	}

	st := &ConversationState{
		ID:      uuid.NewString(),
		UserID:  userID,
		StoreID: storeID,
		Status:  StatusCollecting,
	}

	msg := fmt.Sprintf(
		"Hello %s! You're chatting with %s's assistant. What would you like to eat today?",
		userName, storeName,
	)
	return st, &Reply{Status: string(StatusCollecting), Message: msg}, nil
}

// --------------------------------------------------
// TURN STEP
// --------------------------------------------------

// Step consumes one user utterance and advances the conversation. On a
// returned error the reply still carries a user-facing apology and the
// conversation stays in a state the user can retry from.
func (e *Engine) Step(ctx context.Context, st *ConversationState, input string) (*Reply, error) {
	switch st.Status {
	case StatusClarification:
		return e.stepClarification(ctx, st, input)
	case StatusPending:
		return e.stepConfirmation(ctx, st, input)
	case StatusAsking:
		return e.stepAnswer(ctx, st, input)
	default:
		return e.stepCollect(ctx, st, input)
	}
}

// --------------------------------------------------
// COLLECTING ITEMS
// --------------------------------------------------

func (e *Engine) stepCollect(ctx context.Context, st *ConversationState, input string) (*Reply, error) {
	trimmed := strings.TrimSpace(input)

	// Failed recognition arrives as empty input; show the menu instead.
	if trimmed == "" {
		menu, err := e.catalog.StoreMenu(ctx, st.StoreID)
		if err != nil {
			return storeFailureReply(), err
		}
		if len(menu) == 0 {
			return &Reply{Status: ReplyError, Message: "Sorry, the menu is currently unavailable."}, nil
		}
		names := uniqueSortedNames(menu)
		return &Reply{
			Status:  ReplyAwaitingSelection,
			Message: "I didn't catch that. Here is what we have on the menu:\n" + numberedList(names),
			Menu:    names,
		}, nil
	}

	lower := strings.ToLower(trimmed)
	if lower == "no" || lower == "that's all" || lower == "thats all" {
		if len(st.Completed) == 0 {
			return &Reply{
				Status:  string(StatusCollecting),
				Message: "Your cart is empty. What would you like to order?",
			}, nil
		}
		return e.moveToSummary(ctx, st)
	}

	return e.processFragments(ctx, st, SegmentUtterance(trimmed), nil)
}

// processFragments resolves each fragment in turn. Ambiguity or an open
// question queue suspends the pipeline; the unprocessed tail is stashed in
// the state and resumed on later turns.
func (e *Engine) processFragments(
	ctx context.Context,
	st *ConversationState,
	fragments []Fragment,
	notices []string,
) (*Reply, error) {

	menu, err := e.catalog.StoreMenu(ctx, st.StoreID)
	if err != nil {
		return storeFailureReply(), err
	}

	names := make([]string, len(menu))
	for i, it := range menu {
		names[i] = it.Name
	}

	for i, frag := range fragments {
		kept := e.resolver.ResolveWithAmbiguity(frag.Text, names, e.Threshold, e.Band)

		if len(kept) == 0 {
			notices = append(notices, fmt.Sprintf("Sorry, I couldn't find anything like '%s'.", frag.Text))
			continue
		}

		if len(kept) > 1 {
			st.Status = StatusClarification
			st.Candidates = candidateItems(kept, menu)
			pending := frag
			st.PendingFragment = &pending
			st.QueuedFragments = append([]Fragment(nil), fragments[i+1:]...)

			reply := clarifyReply("I found a few options, which one did you mean?", st.Candidates)
			reply.Message = withNotices(notices, reply.Message)
			return reply, nil
		}

		reply, done, err := e.beginItem(ctx, st, menu[kept[0].Index], frag)
		if err != nil {
			return reply, err
		}
		if !done {
			st.QueuedFragments = append([]Fragment(nil), fragments[i+1:]...)
			reply.Message = withNotices(notices, reply.Message)
			return reply, nil
		}
	}

	st.QueuedFragments = nil

	if st.InProgress == nil && len(st.Completed) == 0 {
		msg := "Sorry, I couldn't find anything on the menu matching that."
		if len(notices) > 0 {
			msg = strings.Join(notices, "\n")
		}
		return &Reply{Status: ReplyNotFound, Message: msg}, nil
	}

	reply, err := e.moveToSummary(ctx, st)
	if err != nil {
		return reply, err
	}
	reply.Message = withNotices(notices, reply.Message)
	return reply, nil
}

// beginItem fetches details, builds the question queue and either starts
// asking or, with nothing left to ask, completes the item immediately.
func (e *Engine) beginItem(
	ctx context.Context,
	st *ConversationState,
	item catalog.Item,
	frag Fragment,
) (*Reply, bool, error) {

	details, err := e.catalog.ItemDetails(ctx, item.ID)
	if err != nil {
		return storeFailureReply(), false, err
	}
	configured, err := e.catalog.ItemQuestions(ctx, item.ID)
	if err != nil {
		return storeFailureReply(), false, err
	}

	ipi := order.NewInProgressItem(item, details, configured, buildPrefill(frag, details))

	if q, ok := ipi.CurrentQuestion(); ok {
		st.InProgress = ipi
		st.Status = StatusAsking
		return &Reply{Status: string(StatusAsking), Message: q.Prompt}, false, nil
	}

	if err := e.completeItem(ctx, st, ipi); err != nil {
		return storeFailureReply(), false, err
	}
	return nil, true, nil
}

// buildPrefill detects option values, add-on names and an explicit quantity
// already mentioned in the fragment text.
func buildPrefill(frag Fragment, details *catalog.ItemDetails) order.Prefill {
	prefill := order.Prefill{
		Quantity: frag.Quantity,
		Options:  map[string]string{},
		AddOns:   map[string]bool{},
	}

	text := strings.ToLower(frag.Text)
	for _, group := range details.Options {
		for _, v := range group.Values {
			if strings.Contains(text, strings.ToLower(v.Name)) {
				prefill.Options[strings.ToLower(group.Name)] = v.Name
				break
			}
		}
	}
	for _, addon := range details.AddOns {
		if strings.Contains(text, strings.ToLower(addon.Name)) {
			prefill.AddOns[strings.ToLower(addon.Name)] = true
		}
	}

	return prefill
}

// --------------------------------------------------
// ASKING QUESTIONS
// --------------------------------------------------

func (e *Engine) stepAnswer(ctx context.Context, st *ConversationState, input string) (*Reply, error) {
	ipi := st.InProgress
	if ipi == nil {
		st.Status = StatusCollecting
		return e.stepCollect(ctx, st, input)
	}

	current, ok := ipi.CurrentQuestion()
	if !ok {
		// Every question is already answered; finish the item before
		// reading any new input.
		if err := e.completeItem(ctx, st, ipi); err != nil {
			return storeFailureReply(), err
		}
		return e.resumeOrSummarize(ctx, st)
	}

	// Snapshot so a failed completion does not consume the answer.
	saved := *ipi

	if !ipi.ApplyAnswer(input) {
		st.Retries++
		msg := "Please try again.\n" + current.Prompt
		if current.Group != nil {
			msg = fmt.Sprintf(
				"A selection for %s is required. Please try again.\n%s",
				current.Group.Name, current.Prompt,
			)
		}
		return &Reply{Status: string(StatusAsking), Message: msg}, nil
	}
	st.Retries = 0

	if next, ok := ipi.CurrentQuestion(); ok {
		return &Reply{Status: string(StatusAsking), Message: next.Prompt}, nil
	}

	if err := e.completeItem(ctx, st, ipi); err != nil {
		*ipi = saved
		return storeFailureReply(), err
	}

	return e.resumeOrSummarize(ctx, st)
}

// resumeOrSummarize continues with fragments stashed from an earlier
// utterance, or moves to confirmation when none remain.
func (e *Engine) resumeOrSummarize(ctx context.Context, st *ConversationState) (*Reply, error) {
	if len(st.QueuedFragments) > 0 {
		pending := st.QueuedFragments
		st.QueuedFragments = nil
		return e.processFragments(ctx, st, pending, nil)
	}
	return e.moveToSummary(ctx, st)
}

// completeItem prices the finished item and promotes it.
func (e *Engine) completeItem(ctx context.Context, st *ConversationState, ipi *order.InProgressItem) error {
	discount, err := e.catalog.Discount(ctx, ipi.Item.ID)
	if err != nil {
		return err
	}

	price, _ := order.PriceItem(&ipi.Details, ipi.Sizes, ipi.AddOns, ipi.TotalQuantity(), discount)
	st.Completed = append(st.Completed, ipi.Complete(price))
	st.InProgress = nil
	st.Status = StatusCollecting
	return nil
}

// --------------------------------------------------
// CLARIFICATION
// --------------------------------------------------

func (e *Engine) stepClarification(ctx context.Context, st *ConversationState, input string) (*Reply, error) {
	candidates := st.Candidates

	var chosen *catalog.Item

	// A reply that is wholly a number is a 1-based index; anything else,
	// including an out-of-range number, is rematched by name.
	if n, ok := lex.NormalizeChoice(input); ok && n >= 1 && n <= len(candidates) {
		chosen = &candidates[n-1]
	} else {
		names := make([]string, len(candidates))
		for i, c := range candidates {
			names[i] = c.Name
		}
		if m, ok := e.resolver.Rematch(input, names); ok {
			chosen = &candidates[m.Index]
		}
	}

	if chosen == nil {
		st.Retries++
		return clarifyReply(
			"Sorry, I didn't get that. Please choose a number or name from the list:",
			candidates,
		), nil
	}
	st.Retries = 0

	var frag Fragment
	if st.PendingFragment != nil {
		frag = *st.PendingFragment
	}
	st.Candidates = nil
	st.PendingFragment = nil

	reply, done, err := e.beginItem(ctx, st, *chosen, frag)
	if err != nil {
		return reply, err
	}
	if !done {
		return reply, nil
	}

	return e.resumeOrSummarize(ctx, st)
}

// --------------------------------------------------
// CONFIRMATION
// --------------------------------------------------

func (e *Engine) stepConfirmation(ctx context.Context, st *ConversationState, input string) (*Reply, error) {
	intent, ok := lex.ParseConfirmIntent(input)
	if !ok {
		st.Retries++
		return &Reply{
			Status:  string(StatusPending),
			Message: "Sorry, I didn't get that. Would you like to confirm this order? (yes / no / maybe)",
		}, nil
	}
	st.Retries = 0

	switch intent {
	case "yes":
		if err := e.commitAll(ctx, st, cart.Active); err != nil {
			return commitFailureReply(), err
		}
		st.Status = StatusConfirmed
		return &Reply{
			Status:  ReplyOrderConfirmed,
			Message: "Thank you! Your order has been placed in your cart.",
		}, nil

	case "maybe":
		if err := e.commitAll(ctx, st, cart.Draft); err != nil {
			return commitFailureReply(), err
		}
		st.Status = StatusDeferred
		return &Reply{
			Status:  ReplyOrderDeferred,
			Message: "Okay! Your order has been saved as a draft.",
		}, nil

	default:
		// Nothing is persisted on cancellation, in both drivers.
		st.Status = StatusCancelled
		return &Reply{
			Status:  ReplyOrderCancelled,
			Message: "Okay, I've cancelled your order.",
		}, nil
	}
}

func (e *Engine) commitAll(ctx context.Context, st *ConversationState, visible cart.Visibility) error {
	for _, item := range st.Completed {
		if err := e.committer.Commit(ctx, st.UserID, st.StoreID, item, visible); err != nil {
			return err
		}
	}
	return nil
}

// --------------------------------------------------
// SUMMARY
// --------------------------------------------------

func (e *Engine) moveToSummary(ctx context.Context, st *ConversationState) (*Reply, error) {
	summary, err := e.buildSummary(ctx, st)
	if err != nil {
		return storeFailureReply(), err
	}
	st.Status = StatusPending
	st.Retries = 0

	lines := make([]string, len(summary.Items))
	for i, item := range summary.Items {
		lines[i] = item.LineItem
	}

	msg := "Here is your order summary:\n- " + strings.Join(lines, "\n- ") +
		fmt.Sprintf("\n\nYour total is ₹%.2f. Should I confirm this order?", summary.Total)

	return &Reply{Status: string(StatusPending), Message: msg, Summary: summary}, nil
}

func (e *Engine) buildSummary(ctx context.Context, st *ConversationState) (*Summary, error) {
	summary := &Summary{}

	for i := range st.Completed {
		item := &st.Completed[i]

		details, err := e.catalog.ItemDetails(ctx, item.Item.ID)
		if err != nil {
			return nil, err
		}
		discount, err := e.catalog.Discount(ctx, item.Item.ID)
		if err != nil {
			return nil, err
		}

		price, qty := order.PriceCompleted(details, *item, discount)
		item.Price = price
		item.Quantity = qty
		summary.Total += price

		line := fmt.Sprintf("%d %s", qty, item.Item.Name)
		if len(item.Sizes) > 0 {
			sizes := make([]string, len(item.Sizes))
			for j, s := range item.Sizes {
				sizes[j] = fmt.Sprintf("%d %s", s.Quantity, s.Name)
			}
			line += " | sizes: " + strings.Join(sizes, ", ")
		}
		if len(item.AddOns) > 0 {
			addons := make([]string, len(item.AddOns))
			for j, a := range item.AddOns {
				addons[j] = fmt.Sprintf("%s (+₹%.2f)", a.Name, a.Price)
			}
			line += ", " + strings.Join(addons, ", ")
		}

		summary.Items = append(summary.Items, SummaryLine{
			LineItem: line,
			Price:    fmt.Sprintf("%.2f", price),
		})
	}

	return summary, nil
}

// --------------------------------------------------
// HELPERS
// --------------------------------------------------

func candidateItems(matches []resolve.Match, menu []catalog.Item) []catalog.Item {
	items := make([]catalog.Item, len(matches))
	for i, m := range matches {
		items[i] = menu[m.Index]
	}
	return items
}

func clarifyReply(lead string, candidates []catalog.Item) *Reply {
	options := make([]ClarifyOption, len(candidates))
	lines := make([]string, len(candidates))

	for i, c := range candidates {
		options[i] = ClarifyOption{
			ItemID:   c.ID,
			ItemName: strings.TrimSpace(c.Name),
			Label:    fmt.Sprintf("%d. %s - %s", i+1, strings.TrimSpace(c.Name), attributeLabel(c.AttributeTitle)),
		}
		lines[i] = options[i].Label
	}

	return &Reply{
		Status:  string(StatusClarification),
		Message: lead + "\n" + strings.Join(lines, "\n"),
		Options: options,
	}
}

func withNotices(notices []string, msg string) string {
	if len(notices) == 0 {
		return msg
	}
	return strings.Join(notices, "\n") + "\n" + msg
}

func uniqueSortedNames(menu []catalog.Item) []string {
	seen := map[string]bool{}
	var names []string
	for _, it := range menu {
		name := strings.TrimSpace(it.Name)
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func numberedList(names []string) string {
	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = fmt.Sprintf("%d. %s", i+1, name)
	}
	return strings.Join(lines, "\n")
}

func storeFailureReply() *Reply {
	return &Reply{
		Status:  ReplyError,
		Message: "I am unable to reach the menu at this time. Please try again later.",
	}
}

func commitFailureReply() *Reply {
	return &Reply{
		Status:  ReplyError,
		Message: "Sorry, something went wrong while saving your order. Please try again.",
	}
}
