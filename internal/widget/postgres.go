package widget

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tundeakins/quote-widget-api/internal/database"
)

// Persisted key layout. State lives in one flat key-value table so it maps
// one-to-one onto the widget host's preference namespace:
//
//	widget_<id>_current_quote / _current_reference / _current_translation /
//	widget_<id>_current_theme / _is_saved
//	widget_<id>_next_quote / _next_reference / _next_translation / _next_theme
//	theme_<id>, appearance_<id>, notifications_<id>
//	saved_quote_<i>, saved_reference_<i>, saved_theme_<i>, saved_quotes_count
const (
	keyCountSaved = "saved_quotes_count"
)

type postgresStore struct {
	db *sql.DB
}

// NewPostgresStore builds the Postgres-backed store and bootstraps its
// schema.
func NewPostgresStore(dbService database.Service) (Store, error) {
	s := &postgresStore{db: dbService.DB()}

	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS widget_prefs (
			pref_key   TEXT PRIMARY KEY,
			pref_value TEXT NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("create widget_prefs: %w", err)
	}
	return s, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func widgetKey(widgetID int, field string) string {
	return fmt.Sprintf("widget_%d_%s", widgetID, field)
}

func setPref(ctx context.Context, q execer, key, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO widget_prefs (pref_key, pref_value)
		VALUES ($1, $2)
		ON CONFLICT (pref_key) DO UPDATE SET pref_value = EXCLUDED.pref_value
	`, key, value)
	if err != nil {
		return ErrInternalServer
	}
	return nil
}

func getPref(ctx context.Context, q execer, key string) (string, bool, error) {
	var value string
	err := q.QueryRowContext(ctx,
		`SELECT pref_value FROM widget_prefs WHERE pref_key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, ErrInternalServer
	}
	return value, true, nil
}

func delPref(ctx context.Context, q execer, keys ...string) error {
	for _, key := range keys {
		if _, err := q.ExecContext(ctx,
			`DELETE FROM widget_prefs WHERE pref_key = $1`, key); err != nil {
			return ErrInternalServer
		}
	}
	return nil
}

func (s *postgresStore) Get(ctx context.Context, widgetID int) (SurfaceState, error) {
	state := SurfaceState{WidgetID: widgetID, Config: DefaultConfig()}

	pattern := fmt.Sprintf(`widget\_%d\_%%`, widgetID)
	rows, err := s.db.QueryContext(ctx, `
		SELECT pref_key, pref_value FROM widget_prefs
		WHERE pref_key LIKE $1 ESCAPE '\' OR pref_key IN ($2, $3, $4)
	`, pattern,
		fmt.Sprintf("theme_%d", widgetID),
		fmt.Sprintf("appearance_%d", widgetID),
		fmt.Sprintf("notifications_%d", widgetID),
	)
	if err != nil {
		return SurfaceState{}, ErrInternalServer
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return SurfaceState{}, ErrInternalServer
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return SurfaceState{}, ErrInternalServer
	}

	if _, known := values[fmt.Sprintf("theme_%d", widgetID)]; !known {
		// First sight of this widget: persist the defaulted config.
		if err := s.SetConfig(ctx, widgetID, state.Config); err != nil {
			return SurfaceState{}, err
		}
		return state, nil
	}

	state.Config.Theme = values[fmt.Sprintf("theme_%d", widgetID)]
	if v, ok := values[fmt.Sprintf("appearance_%d", widgetID)]; ok {
		state.Config.Appearance = v
	}
	if v, ok := values[fmt.Sprintf("notifications_%d", widgetID)]; ok {
		state.Config.NotificationsEnabled = v == "true"
	}
	state.IsSaved = values[widgetKey(widgetID, "is_saved")] == "true"

	if text := values[widgetKey(widgetID, "current_quote")]; text != "" {
		state.Current = &Quote{
			Text:        text,
			Reference:   values[widgetKey(widgetID, "current_reference")],
			Translation: values[widgetKey(widgetID, "current_translation")],
			Theme:       values[widgetKey(widgetID, "current_theme")],
		}
	}
	if text := values[widgetKey(widgetID, "next_quote")]; text != "" {
		state.Next = &Quote{
			Text:        text,
			Reference:   values[widgetKey(widgetID, "next_reference")],
			Translation: values[widgetKey(widgetID, "next_translation")],
			Theme:       values[widgetKey(widgetID, "next_theme")],
		}
	}
	return state, nil
}

func (s *postgresStore) Surfaces(ctx context.Context) ([]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT pref_key FROM widget_prefs WHERE pref_key LIKE 'theme\_%' ESCAPE '\'`)
	if err != nil {
		return nil, ErrInternalServer
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, ErrInternalServer
		}
		id, err := strconv.Atoi(strings.TrimPrefix(key, "theme_"))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, ErrInternalServer
	}
	sort.Ints(ids)
	return ids, nil
}

func (s *postgresStore) setQuoteSlot(ctx context.Context, q execer, widgetID int, slot string, quote Quote) error {
	fields := map[string]string{
		slot + "_quote":       quote.Text,
		slot + "_reference":   quote.Reference,
		slot + "_translation": quote.Translation,
		slot + "_theme":       quote.Theme,
	}
	for field, value := range fields {
		if err := setPref(ctx, q, widgetKey(widgetID, field), value); err != nil {
			return err
		}
	}
	return nil
}

func (s *postgresStore) SetCurrentQuote(ctx context.Context, widgetID int, quote Quote) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ErrInternalServer
	}
	defer tx.Rollback()

	if err := s.setQuoteSlot(ctx, tx, widgetID, "current", quote); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *postgresStore) SetNextQuote(ctx context.Context, widgetID int, quote Quote) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ErrInternalServer
	}
	defer tx.Rollback()

	if err := s.setQuoteSlot(ctx, tx, widgetID, "next", quote); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *postgresStore) ClearNextQuote(ctx context.Context, widgetID int) error {
	return delPref(ctx, s.db,
		widgetKey(widgetID, "next_quote"),
		widgetKey(widgetID, "next_reference"),
		widgetKey(widgetID, "next_translation"),
		widgetKey(widgetID, "next_theme"),
	)
}

func (s *postgresStore) SetSaved(ctx context.Context, widgetID int, saved bool) error {
	return setPref(ctx, s.db, widgetKey(widgetID, "is_saved"), strconv.FormatBool(saved))
}

func (s *postgresStore) SetConfig(ctx context.Context, widgetID int, cfg SurfaceConfig) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ErrInternalServer
	}
	defer tx.Rollback()

	if err := setPref(ctx, tx, fmt.Sprintf("theme_%d", widgetID), cfg.Theme); err != nil {
		return err
	}
	if err := setPref(ctx, tx, fmt.Sprintf("appearance_%d", widgetID), cfg.Appearance); err != nil {
		return err
	}
	if err := setPref(ctx, tx, fmt.Sprintf("notifications_%d", widgetID),
		strconv.FormatBool(cfg.NotificationsEnabled)); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *postgresStore) PromoteNext(ctx context.Context, widgetID int) (Quote, bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Quote{}, false, ErrInternalServer
	}
	defer tx.Rollback()

	text, ok, err := getPref(ctx, tx, widgetKey(widgetID, "next_quote"))
	if err != nil {
		return Quote{}, false, err
	}
	if !ok || text == "" {
		return Quote{}, false, nil
	}

	reference, _, err := getPref(ctx, tx, widgetKey(widgetID, "next_reference"))
	if err != nil {
		return Quote{}, false, err
	}
	translation, _, err := getPref(ctx, tx, widgetKey(widgetID, "next_translation"))
	if err != nil {
		return Quote{}, false, err
	}
	theme, _, err := getPref(ctx, tx, widgetKey(widgetID, "next_theme"))
	if err != nil {
		return Quote{}, false, err
	}

	quote := Quote{Text: text, Reference: reference, Translation: translation, Theme: theme}
	if err := s.setQuoteSlot(ctx, tx, widgetID, "current", quote); err != nil {
		return Quote{}, false, err
	}
	if err := setPref(ctx, tx, widgetKey(widgetID, "is_saved"), "false"); err != nil {
		return Quote{}, false, err
	}
	if err := delPref(ctx, tx,
		widgetKey(widgetID, "next_quote"),
		widgetKey(widgetID, "next_reference"),
		widgetKey(widgetID, "next_translation"),
		widgetKey(widgetID, "next_theme"),
	); err != nil {
		return Quote{}, false, err
	}

	if err := tx.Commit(); err != nil {
		return Quote{}, false, ErrInternalServer
	}
	return quote, true, nil
}

func (s *postgresStore) ToggleSaved(ctx context.Context, widgetID int) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, ErrInternalServer
	}
	defer tx.Rollback()

	savedValue, _, err := getPref(ctx, tx, widgetKey(widgetID, "is_saved"))
	if err != nil {
		return false, err
	}

	if savedValue == "true" {
		if err := setPref(ctx, tx, widgetKey(widgetID, "is_saved"), "false"); err != nil {
			return false, err
		}
		if err := tx.Commit(); err != nil {
			return false, ErrInternalServer
		}
		return false, nil
	}

	text, _, err := getPref(ctx, tx, widgetKey(widgetID, "current_quote"))
	if err != nil {
		return false, err
	}
	reference, _, err := getPref(ctx, tx, widgetKey(widgetID, "current_reference"))
	if err != nil {
		return false, err
	}
	if text == "" || reference == "" {
		return false, tx.Commit()
	}
	theme, _, err := getPref(ctx, tx, widgetKey(widgetID, "current_theme"))
	if err != nil {
		return false, err
	}

	if err := setPref(ctx, tx, widgetKey(widgetID, "is_saved"), "true"); err != nil {
		return false, err
	}

	count, err := savedCount(ctx, tx)
	if err != nil {
		return false, err
	}
	if err := setPref(ctx, tx, fmt.Sprintf("saved_quote_%d", count), text); err != nil {
		return false, err
	}
	if err := setPref(ctx, tx, fmt.Sprintf("saved_reference_%d", count), reference); err != nil {
		return false, err
	}
	if err := setPref(ctx, tx, fmt.Sprintf("saved_theme_%d", count), theme); err != nil {
		return false, err
	}
	if err := setPref(ctx, tx, keyCountSaved, strconv.Itoa(count+1)); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, ErrInternalServer
	}
	return true, nil
}

func savedCount(ctx context.Context, q execer) (int, error) {
	value, ok, err := getPref(ctx, q, keyCountSaved)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	count, err := strconv.Atoi(value)
	if err != nil {
		return 0, ErrInternalServer
	}
	return count, nil
}

func (s *postgresStore) Remove(ctx context.Context, widgetID int) error {
	pattern := fmt.Sprintf(`widget\_%d\_%%`, widgetID)
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM widget_prefs
		WHERE pref_key LIKE $1 ESCAPE '\' OR pref_key IN ($2, $3, $4)
	`, pattern,
		fmt.Sprintf("theme_%d", widgetID),
		fmt.Sprintf("appearance_%d", widgetID),
		fmt.Sprintf("notifications_%d", widgetID),
	)
	if err != nil {
		return ErrInternalServer
	}
	return nil
}

func (s *postgresStore) SavedQuotes(ctx context.Context) ([]SavedQuote, error) {
	count, err := savedCount(ctx, s.db)
	if err != nil {
		return nil, err
	}

	entries := make([]SavedQuote, 0, count)
	for i := 0; i < count; i++ {
		entry, err := s.savedAt(ctx, s.db, i)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *postgresStore) savedAt(ctx context.Context, q execer, position int) (SavedQuote, error) {
	text, _, err := getPref(ctx, q, fmt.Sprintf("saved_quote_%d", position))
	if err != nil {
		return SavedQuote{}, err
	}
	reference, _, err := getPref(ctx, q, fmt.Sprintf("saved_reference_%d", position))
	if err != nil {
		return SavedQuote{}, err
	}
	theme, _, err := getPref(ctx, q, fmt.Sprintf("saved_theme_%d", position))
	if err != nil {
		return SavedQuote{}, err
	}
	return SavedQuote{Quote: text, Reference: reference, Theme: theme, Position: position}, nil
}

func (s *postgresStore) SavedQuoteAt(ctx context.Context, position int) (SavedQuote, error) {
	count, err := savedCount(ctx, s.db)
	if err != nil {
		return SavedQuote{}, err
	}
	if position < 0 || position >= count {
		return SavedQuote{}, ErrNotFound
	}
	return s.savedAt(ctx, s.db, position)
}

func (s *postgresStore) RemoveSavedAt(ctx context.Context, position int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ErrInternalServer
	}
	defer tx.Rollback()

	count, err := savedCount(ctx, tx)
	if err != nil {
		return err
	}
	if position < 0 || position >= count {
		return ErrNotFound
	}

	// Shift every higher entry down by one, then drop the tail slot.
	for i := position + 1; i < count; i++ {
		entry, err := s.savedAt(ctx, tx, i)
		if err != nil {
			return err
		}
		if err := setPref(ctx, tx, fmt.Sprintf("saved_quote_%d", i-1), entry.Quote); err != nil {
			return err
		}
		if err := setPref(ctx, tx, fmt.Sprintf("saved_reference_%d", i-1), entry.Reference); err != nil {
			return err
		}
		if err := setPref(ctx, tx, fmt.Sprintf("saved_theme_%d", i-1), entry.Theme); err != nil {
			return err
		}
	}

	if err := delPref(ctx, tx,
		fmt.Sprintf("saved_quote_%d", count-1),
		fmt.Sprintf("saved_reference_%d", count-1),
		fmt.Sprintf("saved_theme_%d", count-1),
	); err != nil {
		return err
	}
	if err := setPref(ctx, tx, keyCountSaved, strconv.Itoa(count-1)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return ErrInternalServer
	}
	return nil
}
