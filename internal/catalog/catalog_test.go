package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuotesForEveryTheme(t *testing.T) {
	t.Parallel()
	cat := New()

	for _, theme := range cat.Themes() {
		quotes := cat.QuotesFor(theme)
		require.NotEmpty(t, quotes, "theme %q must have quotes", theme)
		for _, q := range quotes {
			require.Equal(t, theme, q.Theme)
			require.NotEmpty(t, q.Text)
			require.NotEmpty(t, q.Reference)
		}
	}
}

func TestQuotesForUnknownThemeFallsBackToWisdom(t *testing.T) {
	t.Parallel()
	cat := New()

	require.Equal(t, cat.QuotesFor("wisdom"), cat.QuotesFor("no-such-theme"))
	require.Equal(t, "wisdom", cat.RandomQuote("no-such-theme").Theme)
}

func TestQuotesForIsCaseInsensitive(t *testing.T) {
	t.Parallel()
	cat := New()

	require.Equal(t, cat.QuotesFor("love"), cat.QuotesFor("LOVE"))
	require.Equal(t, "love", cat.RandomQuote("Love").Theme)
}

func TestRandomQuoteMatchesTheme(t *testing.T) {
	t.Parallel()
	cat := New()

	for i := 0; i < 20; i++ {
		require.Equal(t, "hope", cat.RandomQuote("hope").Theme)
	}
}

func TestRandomAnyDrawsFromDeclaredThemes(t *testing.T) {
	t.Parallel()
	cat := New()

	known := make(map[string]bool)
	for _, theme := range cat.Themes() {
		known[theme] = true
	}
	for i := 0; i < 20; i++ {
		q := cat.RandomAny()
		require.True(t, known[q.Theme], "unexpected theme %q", q.Theme)
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()
	cat := New()

	cases := []struct {
		reference string
		theme     string
	}{
		{"John 3:16", "love"},
		{"Proverbs 9:10", "wisdom"},
		{"Psalm 28:7", "hope"},     // PSA appears first under hope
		{"Isaiah 41:10", "hope"},   // ISA appears first under hope
		{"Matthew 5:4", "comfort"},
		{"Joshua 1:9", "motivation"},
		{"Hebrews 11:1", "motivation"},
		{"Ecclesiastes 1:9", "wisdom"},
		{"Romans 15:13", "hope"},
		{"Galatians 6:9", "wisdom"},       // GAL not in any book list
		{"1 Corinthians 13:12", "wisdom"}, // leading word "1" never matches
		{"Zephaniah 3:17", "wisdom"},      // unmapped book, 3-letter fallback
	}

	for _, tc := range cases {
		require.Equal(t, tc.theme, cat.Classify(tc.reference), "reference %q", tc.reference)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	t.Parallel()
	cat := New()

	first := cat.Classify("Psalm 23:1")
	for i := 0; i < 50; i++ {
		require.Equal(t, first, cat.Classify("Psalm 23:1"))
	}
}

func TestBooksFor(t *testing.T) {
	t.Parallel()
	cat := New()

	require.Equal(t, []string{"ROM", "PSA", "ISA", "JER"}, cat.BooksFor("hope"))
	require.Nil(t, cat.BooksFor("no-such-theme"))
}
