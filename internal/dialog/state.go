package dialog

import (
	"github.com/SKxrda3/sb-voice/internal/catalog"
	"github.com/SKxrda3/sb-voice/internal/order"
)

// Status is the conversation's position in the automaton.
type Status string

const (
	StatusCollecting    Status = "collecting_item"
	StatusClarification Status = "clarification_needed"
	StatusAsking        Status = "asking_questions"
	StatusPending       Status = "pending_confirmation"
	StatusConfirmed     Status = "confirmed"
	StatusCancelled     Status = "cancelled"
	StatusDeferred      Status = "deferred"
)

// Reply status tags exposed to the driving shell, beyond the states above.
const (
	ReplyAwaitingSelection = "awaiting_item_selection"
	ReplyOrderConfirmed    = "order_confirmed"
	ReplyOrderCancelled    = "order_cancelled"
	ReplyOrderDeferred     = "order_deferred"
	ReplyNotFound          = "not_found"
	ReplyError             = "error"
)

// Fragment is one segment of a multi-item utterance.
type Fragment struct {
	Text     string `json:"text"`
	Quantity int    `json:"quantity"` // explicit mention only; 0 = absent
}

// ConversationState is everything one conversation carries between turns.
// A single session key owns exactly one of these; turns within a session
// are serialized by the session store's caller.
type ConversationState struct {
	ID      string `json:"session_id"`
	UserID  int    `json:"user_id"`
	StoreID int    `json:"store_id"`
	Status  Status `json:"status"`

	InProgress *order.InProgressItem `json:"item_in_progress,omitempty"`
	Completed  []order.CompletedItem `json:"completed_items"`

	// Clarification context; non-nil only in clarification_needed.
	Candidates      []catalog.Item `json:"clarification_options,omitempty"`
	PendingFragment *Fragment      `json:"pending_fragment,omitempty"`
	QueuedFragments []Fragment     `json:"queued_fragments,omitempty"`

	// Consecutive unparseable replies in the current state; drivers decide
	// whether and when to fall back.
	Retries int `json:"retries"`
}

// ClarifyOption is one candidate shown to the user during clarification.
type ClarifyOption struct {
	ItemID   int    `json:"item_id"`
	ItemName string `json:"item_name"`
	Label    string `json:"label"`
}

// SummaryLine is one priced line of the order summary.
type SummaryLine struct {
	LineItem string `json:"line_item"`
	Price    string `json:"price"`
}

// Summary is the structured order summary payload.
type Summary struct {
	Items []SummaryLine `json:"summary_items"`
	Total float64       `json:"total_price"`
}

// Reply is the engine's per-turn output to the driving shell.
type Reply struct {
	Status  string          `json:"status"`
	Message string          `json:"assistant_response"`
	Options []ClarifyOption `json:"options,omitempty"`
	Menu    []string        `json:"menu_items,omitempty"`
	Summary *Summary        `json:"summary,omitempty"`
}
