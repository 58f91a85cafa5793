// Package bibleapi fetches random verses from bible-api.com and classifies
// them into catalog themes. Fetches are best-effort: callers must never
// block a display path on this package.
package bibleapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tundeakins/quote-widget-api/internal/catalog"
)

const (
	// DefaultBaseURL is the public bible-api.com host.
	DefaultBaseURL = "https://bible-api.com"

	// DefaultTranslation is the translation code used for every request.
	DefaultTranslation = "kjv"

	// broadFilter is used when a theme has no configured books.
	broadFilter = "NT"

	defaultTimeout  = 15 * time.Second
	maxResponseBody = 1 << 20
)

// verseResponse mirrors the JSON object returned by the random-verse
// endpoint.
type verseResponse struct {
	Reference       string `json:"reference"`
	Text            string `json:"text"`
	TranslationName string `json:"translation_name"`
}

type Client struct {
	baseURL     string
	translation string
	http        *http.Client
	catalog     *catalog.Catalog
	log         zerolog.Logger
}

// Option mutates the client during construction.
type Option func(*Client)

// WithBaseURL overrides the API host, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/") }
}

// WithTranslation overrides the translation code.
func WithTranslation(code string) Option {
	return func(c *Client) { c.translation = code }
}

// WithHTTPClient installs a custom http.Client. The caller owns the
// timeout in that case.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func NewClient(cat *catalog.Catalog, log zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:     DefaultBaseURL,
		translation: DefaultTranslation,
		http:        &http.Client{Timeout: defaultTimeout},
		catalog:     cat,
		log:         log,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// FetchRandom requests a single random verse, optionally restricted to a
// book filter ("JHN", "NT", ...). It never panics past this boundary:
// every failure is a *FetchError.
func (c *Client) FetchRandom(ctx context.Context, bookFilter string) (catalog.Quote, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	url := fmt.Sprintf("%s/data/%s/random/%s", c.baseURL, c.translation, bookFilter)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return catalog.Quote{}, &FetchError{Kind: KindNetwork, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return catalog.Quote{}, &FetchError{Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return catalog.Quote{}, &FetchError{Kind: KindServer, StatusCode: resp.StatusCode}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return catalog.Quote{}, &FetchError{Kind: KindNetwork, Err: err}
	}

	var vr verseResponse
	if err := json.Unmarshal(raw, &vr); err != nil {
		return catalog.Quote{}, &FetchError{Kind: KindParse, Err: err}
	}
	if vr.Reference == "" || strings.TrimSpace(vr.Text) == "" {
		return catalog.Quote{}, &FetchError{Kind: KindParse, Err: fmt.Errorf("missing reference or text")}
	}

	q := catalog.Quote{
		Text:        strings.TrimSpace(vr.Text),
		Reference:   vr.Reference,
		Translation: vr.TranslationName,
		Theme:       c.catalog.Classify(vr.Reference),
	}

	c.log.Debug().Str("reference", q.Reference).Str("theme", q.Theme).Msg("fetched remote quote")
	return q, nil
}

// FetchByTheme picks a uniform random book among the theme's configured
// book codes and delegates to FetchRandom. Unrecognized themes fall back
// to a broad New Testament filter instead of failing.
func (c *Client) FetchByTheme(ctx context.Context, theme string) (catalog.Quote, error) {
	books := c.catalog.BooksFor(theme)
	if len(books) == 0 {
		return c.FetchRandom(ctx, broadFilter)
	}
	return c.FetchRandom(ctx, books[rand.Intn(len(books))])
}
