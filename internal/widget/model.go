package widget

import "github.com/tundeakins/quote-widget-api/internal/catalog"

const (
	DefaultTheme      = catalog.DefaultTheme
	DefaultAppearance = "light"
)

// Quote aliases the catalog quote value; the engine never defines its own
// quote shape.
type Quote = catalog.Quote

// SurfaceConfig is the user-chosen configuration for one widget surface.
type SurfaceConfig struct {
	Theme                string `json:"theme"`
	Appearance           string `json:"appearance"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
}

func DefaultConfig() SurfaceConfig {
	return SurfaceConfig{
		Theme:                DefaultTheme,
		Appearance:           DefaultAppearance,
		NotificationsEnabled: true,
	}
}

// SurfaceState is the full per-widget display state. Current and Next are
// nil until a quote has been resolved or warmed.
type SurfaceState struct {
	WidgetID int            `json:"widget_id"`
	Current  *catalog.Quote `json:"current,omitempty"`
	Next     *catalog.Quote `json:"next,omitempty"`
	IsSaved  bool           `json:"is_saved"`
	Config   SurfaceConfig  `json:"config"`
}

// SavedQuote is one ledger entry. Position is a dense 0-based index that
// is only stable until the next delete.
type SavedQuote struct {
	Quote     string `json:"quote"`
	Reference string `json:"reference"`
	Theme     string `json:"theme"`
	Position  int    `json:"position"`
}

// ShareText renders a saved quote for sharing. Pure formatting, no state
// change.
func ShareText(sq SavedQuote) string {
	return sq.Quote + "\n\n" + sq.Reference + "\n\nShared from Bible Quote Widget"
}

// DisplayPayload is what a rendering surface consumes.
type DisplayPayload struct {
	QuoteText     string `json:"quote_text"`
	ReferenceText string `json:"reference_text"`
	ThemeLabel    string `json:"theme_label"`
	IsSaved       bool   `json:"is_saved"`
}

// UpdateConfigRequest is the inbound body for a config write.
type UpdateConfigRequest struct {
	Theme                string `json:"theme" validate:"required,oneof=hope love strength motivation wisdom comfort philosophical"`
	Appearance           string `json:"appearance" validate:"required,oneof=light dark"`
	NotificationsEnabled *bool  `json:"notifications_enabled" validate:"required"`
}
