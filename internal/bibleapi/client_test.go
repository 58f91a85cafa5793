package bibleapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/tundeakins/quote-widget-api/internal/catalog"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	c := NewClient(catalog.New(), zerolog.Nop(), WithBaseURL(ts.URL))
	return c, ts
}

func TestFetchRandomSuccess(t *testing.T) {
	t.Parallel()

	var gotPath string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"reference":"John 3:16","text":"  For God so loved the world\n","translation_name":"King James Version"}`))
	})

	q, err := c.FetchRandom(context.Background(), "JHN")
	require.NoError(t, err)
	require.Equal(t, "/data/kjv/random/JHN", gotPath)
	require.Equal(t, "For God so loved the world", q.Text)
	require.Equal(t, "John 3:16", q.Reference)
	require.Equal(t, "King James Version", q.Translation)
	require.Equal(t, "love", q.Theme)
}

func TestFetchRandomServerError(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.FetchRandom(context.Background(), "JHN")
	require.Error(t, err)
	require.True(t, IsServerError(err))

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, http.StatusInternalServerError, fe.StatusCode)
}

func TestFetchRandomParseError(t *testing.T) {
	t.Parallel()

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		})

		_, err := c.FetchRandom(context.Background(), "JHN")
		require.True(t, IsParseError(err))
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"translation_name":"KJV"}`))
		})

		_, err := c.FetchRandom(context.Background(), "JHN")
		require.True(t, IsParseError(err))
	})
}

func TestFetchRandomNetworkError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := NewClient(catalog.New(), zerolog.Nop(), WithBaseURL(ts.URL))
	ts.Close()

	_, err := c.FetchRandom(context.Background(), "JHN")
	require.True(t, IsNetworkError(err))
}

func TestFetchByThemePicksConfiguredBook(t *testing.T) {
	t.Parallel()

	var gotPath string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"reference":"John 15:13","text":"Greater love","translation_name":"KJV"}`))
	})

	_, err := c.FetchByTheme(context.Background(), "love")
	require.NoError(t, err)
	require.Contains(t, []string{
		"/data/kjv/random/1CO",
		"/data/kjv/random/1JN",
		"/data/kjv/random/SNG",
		"/data/kjv/random/JHN",
	}, gotPath)
}

func TestFetchByThemeUnknownThemeUsesBroadFilter(t *testing.T) {
	t.Parallel()

	var gotPath string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"reference":"Mark 1:1","text":"The beginning","translation_name":"KJV"}`))
	})

	_, err := c.FetchByTheme(context.Background(), "no-such-theme")
	require.NoError(t, err)
	require.Equal(t, "/data/kjv/random/NT", gotPath)
}

func TestWithTranslation(t *testing.T) {
	t.Parallel()

	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"reference":"Mark 1:1","text":"The beginning","translation_name":"WEB"}`))
	}))
	t.Cleanup(ts.Close)

	c := NewClient(catalog.New(), zerolog.Nop(), WithBaseURL(ts.URL), WithTranslation("web"))
	_, err := c.FetchRandom(context.Background(), "NT")
	require.NoError(t, err)
	require.Equal(t, "/data/web/random/NT", gotPath)
}
