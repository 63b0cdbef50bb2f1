package htmlsplit_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/gosegment/pkg/htmlsplit"
	"github.com/jonesrussell/gosegment/pkg/model"
	"github.com/jonesrussell/gosegment/pkg/segmenter"
)

// testParser breaks before every "a" so chunk positions are predictable:
// "abcdeabcd" -> ["abcde", "abcd"].
func testParser(t *testing.T) *segmenter.Parser {
	t.Helper()

	m := model.New()
	m.Set(model.UW4, "a", 10000)
	return segmenter.New(m)
}

func TestTranslateHTMLStringZWSP(t *testing.T) {
	t.Parallel()

	p := htmlsplit.New(testParser(t), htmlsplit.Options{})

	out, err := p.TranslateHTMLString("<p>abcdeabcd</p>")
	require.NoError(t, err)

	assert.Equal(t, "<p>abcde"+htmlsplit.ZeroWidthSpace+"abcd</p>", out)
}

func TestTranslateHTMLStringWrap(t *testing.T) {
	t.Parallel()

	p := htmlsplit.New(testParser(t), htmlsplit.Options{
		Strategy:  htmlsplit.StrategyWrap,
		WrapClass: "chunk",
	})

	out, err := p.TranslateHTMLString("<p>abcdeabcd</p>")
	require.NoError(t, err)

	assert.Equal(t, `<p><span class="chunk">abcde</span><span class="chunk">abcd</span></p>`, out)
}

func TestTranslateHTMLStringWrapCustomTag(t *testing.T) {
	t.Parallel()

	p := htmlsplit.New(testParser(t), htmlsplit.Options{
		Strategy: htmlsplit.StrategyWrap,
		WrapTag:  "i",
	})

	out, err := p.TranslateHTMLString("<p>abcdeabcd</p>")
	require.NoError(t, err)

	assert.Equal(t, "<p><i>abcde</i><i>abcd</i></p>", out)
}

func TestTranslateHTMLStringEmptyInput(t *testing.T) {
	t.Parallel()

	p := htmlsplit.New(testParser(t), htmlsplit.Options{})

	out, err := p.TranslateHTMLString("")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestTranslateHTMLStringUnsegmentedTextUntouched(t *testing.T) {
	t.Parallel()

	p := htmlsplit.New(testParser(t), htmlsplit.Options{})

	out, err := p.TranslateHTMLString("<p>xyz xyz</p>")
	require.NoError(t, err)
	assert.Equal(t, "<p>xyz xyz</p>", out)
}

func TestTranslateHTMLStringSkipTags(t *testing.T) {
	t.Parallel()

	p := htmlsplit.New(testParser(t), htmlsplit.Options{})

	cases := []string{
		"<pre>abcdeabcd</pre>",
		`<script>var s = "abcdeabcd";</script>`,
		"<style>.abcdeabcd{color:red}</style>",
		"<code>abcdeabcd</code>",
		"<textarea>abcdeabcd</textarea>",
	}
	for _, input := range cases {
		out, err := p.TranslateHTMLString(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, input, out, "skip-tag content must be byte-identical")
	}
}

func TestTranslateHTMLStringLeadingMetadataKept(t *testing.T) {
	t.Parallel()

	p := htmlsplit.New(testParser(t), htmlsplit.Options{})

	// Metadata elements at the top of the input must survive into the
	// output instead of being hoisted out of the fragment by the parser.
	cases := []string{
		"<style>.abcdeabcd{color:red}</style>",
		`<meta charset="utf-8"/><p>xyz</p>`,
		"<title>abcdeabcd</title><p>xyz</p>",
	}
	for _, input := range cases {
		out, err := p.TranslateHTMLString(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, input, out, "input %q", input)
	}
}

func TestTranslateHTMLStringSkipSubtree(t *testing.T) {
	t.Parallel()

	p := htmlsplit.New(testParser(t), htmlsplit.Options{})

	// Text under a non-skip descendant of a skip element stays untouched too.
	input := "<pre><span>abcdeabcd</span></pre>"
	out, err := p.TranslateHTMLString(input)
	require.NoError(t, err)
	assert.Equal(t, input, out)
}

func TestTranslateHTMLStringCustomSkipTags(t *testing.T) {
	t.Parallel()

	p := htmlsplit.New(testParser(t), htmlsplit.Options{
		SkipTags: []string{"em"},
	})

	out, err := p.TranslateHTMLString("<p>abcdeabcd<em>abcdeabcd</em></p>")
	require.NoError(t, err)

	// pre is no longer skipped, em now is.
	assert.Equal(t, "<p>abcde"+htmlsplit.ZeroWidthSpace+"abcd<em>abcdeabcd</em></p>", out)
}

func TestTranslateHTMLStringPreservesStructure(t *testing.T) {
	t.Parallel()

	p := htmlsplit.New(testParser(t), htmlsplit.Options{})

	input := `<div id="root" data-kind="demo"><p class="body">abcdeabcd</p><p>xyz</p></div>`
	out, err := p.TranslateHTMLString(input)
	require.NoError(t, err)

	before, err := goquery.NewDocumentFromReader(strings.NewReader(input))
	require.NoError(t, err)
	after, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)

	assert.Equal(t, before.Find("*").Length(), after.Find("*").Length())

	id, _ := after.Find("div").Attr("id")
	assert.Equal(t, "root", id)
	kind, _ := after.Find("div").Attr("data-kind")
	assert.Equal(t, "demo", kind)
	class, _ := after.Find("p").First().Attr("class")
	assert.Equal(t, "body", class)

	assert.Equal(t, "xyz", after.Find("p").Eq(1).Text())
}

func TestTranslateHTMLStringNestedTextNodes(t *testing.T) {
	t.Parallel()

	p := htmlsplit.New(testParser(t), htmlsplit.Options{})

	out, err := p.TranslateHTMLString("<p>abcde<b>abcd</b>abc</p>")
	require.NoError(t, err)

	// Each text node is segmented independently.
	assert.Equal(t, "<p>abcde<b>abcd</b>abc</p>", out)

	out, err = p.TranslateHTMLString("<p>abcdeabcd<b>abcdabc</b></p>")
	require.NoError(t, err)
	zwsp := htmlsplit.ZeroWidthSpace
	assert.Equal(t, "<p>abcde"+zwsp+"abcd<b>abcd"+zwsp+"abc</b></p>", out)
}

func TestTranslateHTMLStringMalformedMarkup(t *testing.T) {
	t.Parallel()

	p := htmlsplit.New(testParser(t), htmlsplit.Options{})

	out, err := p.TranslateHTMLString("<p>abcdeabcd")
	require.NoError(t, err)
	assert.Equal(t, "<p>abcde"+htmlsplit.ZeroWidthSpace+"abcd</p>", out)
}

func TestTranslateHTMLStringBareText(t *testing.T) {
	t.Parallel()

	p := htmlsplit.New(testParser(t), htmlsplit.Options{})

	out, err := p.TranslateHTMLString("abcdeabcd")
	require.NoError(t, err)
	assert.Equal(t, "abcde"+htmlsplit.ZeroWidthSpace+"abcd", out)
}

func TestTranslateHTMLStringVendoredJapanese(t *testing.T) {
	t.Parallel()

	ja, err := model.Load(model.Japanese)
	require.NoError(t, err)
	p := htmlsplit.New(segmenter.New(ja), htmlsplit.Options{})

	out, err := p.TranslateHTMLString("<p>今日は良い天気です</p>")
	require.NoError(t, err)

	zwsp := htmlsplit.ZeroWidthSpace
	assert.Equal(t, "<p>今日は"+zwsp+"良い"+zwsp+"天気です</p>", out)
}
