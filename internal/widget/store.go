package widget

import (
	"context"
	"errors"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrInternalServer = errors.New("internal server error")
)

// Store is the persisted per-widget state plus the saved-quote ledger.
// All operations are local and fast; nothing here touches the network.
// Writes to different fields of the same widget must not lose each other,
// so the granularity of every setter is a single field.
type Store interface {
	// Get returns the state for a widget, creating a defaulted entry when
	// absent. Absence is not an error.
	Get(ctx context.Context, widgetID int) (SurfaceState, error)

	// Surfaces lists the ids of every known widget.
	Surfaces(ctx context.Context) ([]int, error)

	SetCurrentQuote(ctx context.Context, widgetID int, q Quote) error
	SetNextQuote(ctx context.Context, widgetID int, q Quote) error
	ClearNextQuote(ctx context.Context, widgetID int) error
	SetSaved(ctx context.Context, widgetID int, saved bool) error
	SetConfig(ctx context.Context, widgetID int, cfg SurfaceConfig) error

	// PromoteNext atomically moves the warmed next quote into the current
	// slot, clearing the saved flag and the next slot. The boolean reports
	// whether a warmed quote existed.
	PromoteNext(ctx context.Context, widgetID int) (Quote, bool, error)

	// ToggleSaved flips the saved flag. On a false→true transition with a
	// populated current quote it also appends a ledger entry. A true→false
	// transition never removes ledger entries. Returns the new flag value.
	ToggleSaved(ctx context.Context, widgetID int) (bool, error)

	// Remove purges every key for the widget. Idempotent.
	Remove(ctx context.Context, widgetID int) error

	// SavedQuotes lists ledger entries in ascending position order.
	SavedQuotes(ctx context.Context) ([]SavedQuote, error)

	// SavedQuoteAt returns the entry at a position, or ErrNotFound.
	SavedQuoteAt(ctx context.Context, position int) (SavedQuote, error)

	// RemoveSavedAt deletes the entry at a position and compacts every
	// higher position down by one. Returns ErrNotFound when out of range.
	RemoveSavedAt(ctx context.Context, position int) error
}
