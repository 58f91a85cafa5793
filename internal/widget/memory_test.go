package widget

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tundeakins/quote-widget-api/internal/catalog"
)

func testQuote(reference, theme string) Quote {
	return Quote{
		Text:      "text of " + reference,
		Reference: reference,
		Theme:     theme,
	}
}

func TestMemoryStoreGetCreatesDefaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()

	state, err := store.Get(ctx, 42)
	require.NoError(t, err)
	require.Equal(t, 42, state.WidgetID)
	require.Nil(t, state.Current)
	require.Nil(t, state.Next)
	require.False(t, state.IsSaved)
	require.Equal(t, catalog.DefaultTheme, state.Config.Theme)
	require.Equal(t, "light", state.Config.Appearance)
	require.True(t, state.Config.NotificationsEnabled)

	ids, err := store.Surfaces(ctx)
	require.NoError(t, err)
	require.Equal(t, []int{42}, ids)
}

func TestMemoryStoreRemoveIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Get(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, store.SetCurrentQuote(ctx, 1, testQuote("John 3:16", "love")))

	require.NoError(t, store.Remove(ctx, 1))
	ids, err := store.Surfaces(ctx)
	require.NoError(t, err)
	require.Empty(t, ids)

	require.NoError(t, store.Remove(ctx, 1))
	ids, err = store.Surfaces(ctx)
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestMemoryStoreToggleSavedRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.SetCurrentQuote(ctx, 7, testQuote("Psalm 28:7", "strength")))

	saved, err := store.ToggleSaved(ctx, 7)
	require.NoError(t, err)
	require.True(t, saved)

	saved, err = store.ToggleSaved(ctx, 7)
	require.NoError(t, err)
	require.False(t, saved)

	// Unsaving does not remove the ledger entry, and exactly one entry was
	// appended across the round trip.
	entries, err := store.SavedQuotes(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "Psalm 28:7", entries[0].Reference)
	require.Equal(t, 0, entries[0].Position)
}

func TestMemoryStoreToggleSavedWithoutCurrentQuote(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()

	saved, err := store.ToggleSaved(ctx, 3)
	require.NoError(t, err)
	require.False(t, saved)

	entries, err := store.SavedQuotes(ctx)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestMemoryStoreLedgerCompaction(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()

	for i, ref := range []string{"John 3:16", "Psalm 28:7", "Proverbs 2:6"} {
		require.NoError(t, store.SetCurrentQuote(ctx, i+1, testQuote(ref, "wisdom")))
		saved, err := store.ToggleSaved(ctx, i+1)
		require.NoError(t, err)
		require.True(t, saved)
	}

	require.NoError(t, store.RemoveSavedAt(ctx, 1))

	entries, err := store.SavedQuotes(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "John 3:16", entries[0].Reference)
	require.Equal(t, 0, entries[0].Position)
	require.Equal(t, "Proverbs 2:6", entries[1].Reference)
	require.Equal(t, 1, entries[1].Position)

	require.ErrorIs(t, store.RemoveSavedAt(ctx, 2), ErrNotFound)
	require.ErrorIs(t, store.RemoveSavedAt(ctx, -1), ErrNotFound)
}

func TestMemoryStorePromoteNext(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()

	_, promoted, err := store.PromoteNext(ctx, 5)
	require.NoError(t, err)
	require.False(t, promoted)

	warmed := testQuote("Isaiah 40:31", "hope")
	require.NoError(t, store.SetCurrentQuote(ctx, 5, testQuote("John 3:16", "love")))
	require.NoError(t, store.SetSaved(ctx, 5, true))
	require.NoError(t, store.SetNextQuote(ctx, 5, warmed))

	q, promoted, err := store.PromoteNext(ctx, 5)
	require.NoError(t, err)
	require.True(t, promoted)
	require.Equal(t, warmed, q)

	state, err := store.Get(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, warmed, *state.Current)
	require.Nil(t, state.Next)
	require.False(t, state.IsSaved)
}

func TestMemoryStoreConcurrentFieldWrites(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()

	quote := testQuote("Jeremiah 29:11", "hope")
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			_ = store.SetCurrentQuote(ctx, 9, quote)
		}()
		go func() {
			defer wg.Done()
			_ = store.SetSaved(ctx, 9, true)
		}()
		go func() {
			defer wg.Done()
			_, _ = store.Get(ctx, 9)
		}()
	}
	wg.Wait()

	state, err := store.Get(ctx, 9)
	require.NoError(t, err)
	require.Equal(t, quote, *state.Current)
	require.True(t, state.IsSaved)
}
