package widget

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/tundeakins/quote-widget-api/internal/database"
)

func setupPostgresStore(t *testing.T) Store {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping Postgres integration test in short mode")
	}

	ctx := context.Background()
	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("quote_widget"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(ctr) })

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.NewWithDSN(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store, err := NewPostgresStore(db)
	require.NoError(t, err)
	return store
}

func TestPostgresStore(t *testing.T) {
	store := setupPostgresStore(t)
	ctx := context.Background()

	t.Run("get creates defaults", func(t *testing.T) {
		state, err := store.Get(ctx, 42)
		require.NoError(t, err)
		require.Nil(t, state.Current)
		require.False(t, state.IsSaved)
		require.Equal(t, DefaultTheme, state.Config.Theme)
		require.Equal(t, DefaultAppearance, state.Config.Appearance)
		require.True(t, state.Config.NotificationsEnabled)

		ids, err := store.Surfaces(ctx)
		require.NoError(t, err)
		require.Equal(t, []int{42}, ids)
	})

	t.Run("config round trip", func(t *testing.T) {
		cfg := SurfaceConfig{Theme: "love", Appearance: "dark", NotificationsEnabled: false}
		require.NoError(t, store.SetConfig(ctx, 42, cfg))

		state, err := store.Get(ctx, 42)
		require.NoError(t, err)
		require.Equal(t, cfg, state.Config)
	})

	t.Run("current quote and toggle saved", func(t *testing.T) {
		quote := Quote{Text: "We love because he first loved us.", Reference: "1 John 4:19", Translation: "KJV", Theme: "love"}
		require.NoError(t, store.SetCurrentQuote(ctx, 42, quote))

		state, err := store.Get(ctx, 42)
		require.NoError(t, err)
		require.Equal(t, quote, *state.Current)

		saved, err := store.ToggleSaved(ctx, 42)
		require.NoError(t, err)
		require.True(t, saved)

		saved, err = store.ToggleSaved(ctx, 42)
		require.NoError(t, err)
		require.False(t, saved)

		entries, err := store.SavedQuotes(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Equal(t, "1 John 4:19", entries[0].Reference)
	})

	t.Run("promote next", func(t *testing.T) {
		_, promoted, err := store.PromoteNext(ctx, 42)
		require.NoError(t, err)
		require.False(t, promoted)

		warmed := Quote{Text: "Rejoice in hope", Reference: "Romans 12:12", Translation: "KJV", Theme: "hope"}
		require.NoError(t, store.SetNextQuote(ctx, 42, warmed))

		q, promoted, err := store.PromoteNext(ctx, 42)
		require.NoError(t, err)
		require.True(t, promoted)
		require.Equal(t, warmed, q)

		state, err := store.Get(ctx, 42)
		require.NoError(t, err)
		require.Equal(t, warmed, *state.Current)
		require.Nil(t, state.Next)
		require.False(t, state.IsSaved)
	})

	t.Run("ledger compaction", func(t *testing.T) {
		for i, ref := range []string{"John 3:16", "Psalm 28:7"} {
			require.NoError(t, store.SetCurrentQuote(ctx, 100+i, Quote{
				Text: "text " + ref, Reference: ref, Theme: "wisdom",
			}))
			saved, err := store.ToggleSaved(ctx, 100+i)
			require.NoError(t, err)
			require.True(t, saved)
		}

		entries, err := store.SavedQuotes(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 3)

		require.NoError(t, store.RemoveSavedAt(ctx, 0))

		entries, err = store.SavedQuotes(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		require.Equal(t, "John 3:16", entries[0].Reference)
		require.Equal(t, 0, entries[0].Position)
		require.Equal(t, "Psalm 28:7", entries[1].Reference)

		require.ErrorIs(t, store.RemoveSavedAt(ctx, 5), ErrNotFound)
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		require.NoError(t, store.Remove(ctx, 42))
		require.NoError(t, store.Remove(ctx, 42))

		ids, err := store.Surfaces(ctx)
		require.NoError(t, err)
		require.NotContains(t, ids, 42)
	})
}
