package cart

import (
	"context"

	"github.com/SKxrda3/sb-voice/internal/order"
)

// Committer turns one finalized item into one persisted cart line.
// Failures are surfaced to the caller, never retried silently.
type Committer interface {
	Commit(
		ctx context.Context,
		userID int,
		storeID int,
		item order.CompletedItem,
		visible Visibility,
	) error
}
