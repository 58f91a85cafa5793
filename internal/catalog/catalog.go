// Package catalog holds the curated quote collection and the theme
// machinery shared by the local fallback path and the remote source.
package catalog

import (
	"math/rand"
	"strings"
)

// DefaultTheme is the universal fallback: unknown themes resolve to it and
// classification defaults to it.
const DefaultTheme = "wisdom"

// Quote is an immutable quote value. Translation is empty for quotes that
// come from the local catalog.
type Quote struct {
	Text        string `json:"text"`
	Reference   string `json:"reference"`
	Translation string `json:"translation"`
	Theme       string `json:"theme"`
}

type themeEntry struct {
	name   string
	books  []string
	quotes []Quote
}

// Catalog is built once at process start and never mutated afterwards.
// Classification walks the themes in their declared order, so results are
// stable across calls.
type Catalog struct {
	themes []themeEntry
	index  map[string]int
}

func New() *Catalog {
	c := &Catalog{index: make(map[string]int, len(themeOrder))}
	for i, name := range themeOrder {
		c.themes = append(c.themes, themeEntry{
			name:   name,
			books:  booksByTheme[name],
			quotes: quotesByTheme[name],
		})
		c.index[name] = i
	}
	return c
}

// Themes returns the theme names in their declared order.
func (c *Catalog) Themes() []string {
	names := make([]string, len(c.themes))
	for i, t := range c.themes {
		names[i] = t.name
	}
	return names
}

// IsKnownTheme reports whether theme is one of the declared themes
// (case-insensitive).
func (c *Catalog) IsKnownTheme(theme string) bool {
	_, ok := c.index[strings.ToLower(theme)]
	return ok
}

// QuotesFor returns the quote list for a theme. Unknown themes fall back to
// the wisdom list, so the result is never empty. Callers must not mutate
// the returned slice.
func (c *Catalog) QuotesFor(theme string) []Quote {
	i, ok := c.index[strings.ToLower(theme)]
	if !ok {
		i = c.index[DefaultTheme]
	}
	return c.themes[i].quotes
}

// RandomQuote draws a uniform random quote from the theme's list, falling
// back to wisdom for unknown themes.
func (c *Catalog) RandomQuote(theme string) Quote {
	quotes := c.QuotesFor(theme)
	return quotes[rand.Intn(len(quotes))]
}

// RandomAny picks a uniform random theme, then a uniform random quote
// within it.
func (c *Catalog) RandomAny() Quote {
	t := c.themes[rand.Intn(len(c.themes))]
	return t.quotes[rand.Intn(len(t.quotes))]
}

// BooksFor returns the book codes associated with a theme, or nil when the
// theme is unknown. Callers must not mutate the returned slice.
func (c *Catalog) BooksFor(theme string) []string {
	i, ok := c.index[strings.ToLower(theme)]
	if !ok {
		return nil
	}
	return c.themes[i].books
}

// Classify maps a reference like "John 3:16" to a theme: the leading word
// is resolved to a book code, then the first theme (in declared order)
// whose book list contains that code wins. Unmatched references classify
// as wisdom.
func (c *Catalog) Classify(reference string) string {
	code := extractBookCode(reference)
	for _, t := range c.themes {
		for _, b := range t.books {
			if b == code {
				return t.name
			}
		}
	}
	return DefaultTheme
}

// extractBookCode takes the leading word of the reference up to the first
// space and resolves it to a canonical 3-letter code. Unmapped names fall
// back to their first 3 letters; this is a display-only heuristic and may
// collide for obscure books.
func extractBookCode(reference string) string {
	book := reference
	if i := strings.IndexByte(reference, ' '); i >= 0 {
		book = reference[:i]
	}
	book = strings.ToUpper(book)

	if code, ok := bookCodes[book]; ok {
		return code
	}
	if len(book) > 3 {
		return book[:3]
	}
	return book
}
