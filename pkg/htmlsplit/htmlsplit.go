// Package htmlsplit applies boundary segmentation to the text content of an
// HTML document while preserving its structure. Text nodes outside the
// configured skip tags are split into chunks and rewritten with either
// zero-width-space markers or wrapping inline elements; everything else
// passes through untouched.
package htmlsplit

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/jonesrussell/gosegment/pkg/segmenter"
)

// ZeroWidthSpace is the marker inserted between chunks by StrategyZWSP.
const ZeroWidthSpace = "​"

// Strategy selects how chunk boundaries are marked in the output document.
type Strategy string

const (
	// StrategyZWSP joins consecutive chunks with a zero-width space.
	StrategyZWSP Strategy = "zwsp"
	// StrategyWrap wraps each chunk in an inline element.
	StrategyWrap Strategy = "wrap"
)

// DefaultWrapTag is the inline element used by StrategyWrap when no tag is
// configured.
const DefaultWrapTag = "span"

// Options configures a Processor.
type Options struct {
	// SkipTags lists element names whose text subtrees pass through
	// unmodified. Nil means DefaultSkipTags; an empty non-nil slice skips
	// nothing.
	SkipTags []string
	// Strategy selects the boundary-marking strategy (default StrategyZWSP).
	Strategy Strategy
	// WrapTag is the element name used by StrategyWrap (default "span").
	WrapTag string
	// WrapClass, when set, is added as the class attribute of wrap elements.
	WrapClass string
}

// DefaultSkipTags returns the element names whose text content is never
// segmented: non-rendering content (scripts, styles, metadata) and elements
// whose text must stay verbatim (preformatted blocks, code, form controls).
func DefaultSkipTags() []string {
	return []string{
		"abbr", "area", "base", "basefont", "button", "code", "datalist",
		"head", "iframe", "input", "link", "listing", "meta", "noembed",
		"noframes", "noscript", "param", "plaintext", "pre", "rp", "rt",
		"script", "select", "style", "template", "textarea", "time", "title",
		"var", "xmp",
	}
}

// Processor rewrites HTML by segmenting text nodes outside skip tags.
// It holds only immutable configuration and is safe for concurrent use.
type Processor struct {
	parser    *segmenter.Parser
	skip      map[string]struct{}
	strategy  Strategy
	wrapTag   string
	wrapClass string
}

// New creates a Processor over a boundary parser.
func New(parser *segmenter.Parser, opts Options) *Processor {
	tags := opts.SkipTags
	if tags == nil {
		tags = DefaultSkipTags()
	}
	skip := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		skip[strings.ToLower(tag)] = struct{}{}
	}

	strategy := opts.Strategy
	if strategy == "" {
		strategy = StrategyZWSP
	}
	wrapTag := opts.WrapTag
	if wrapTag == "" {
		wrapTag = DefaultWrapTag
	}

	return &Processor{
		parser:    parser,
		skip:      skip,
		strategy:  strategy,
		wrapTag:   strings.ToLower(wrapTag),
		wrapClass: opts.WrapClass,
	}
}

// TranslateHTMLString rewrites an HTML string with boundary markers. The
// document is built with standard error recovery, so malformed markup never
// hard-fails; the output is the rewritten body fragment. Element count,
// attributes, and node ordering are preserved: only text nodes outside skip
// subtrees are expanded.
func (p *Processor) TranslateHTMLString(input string) (string, error) {
	if input == "" {
		return "", nil
	}

	// Parsed bare, leading metadata elements (style, script, title, meta)
	// would be hoisted into <head> and lost from the body fragment. An
	// explicit body wrapper keeps them in place.
	doc, err := goquery.NewDocumentFromReader(
		strings.NewReader("<!doctype html><html><body>" + input + "</body></html>"))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	body := doc.Find("body")
	if len(body.Nodes) == 0 {
		return input, nil
	}
	p.Apply(body.Nodes[0])

	out, err := body.Html()
	if err != nil {
		return "", fmt.Errorf("serialize html: %w", err)
	}
	return out, nil
}

// Apply rewrites the text nodes under an already-parsed node in place.
// Candidate text nodes are collected before any splicing so the traversal
// never walks a child list it is mutating.
func (p *Processor) Apply(root *html.Node) {
	var texts []*html.Node
	p.collectTextNodes(root, &texts)
	for _, n := range texts {
		p.spliceTextNode(n)
	}
}

// collectTextNodes gathers text nodes depth-first, pruning skip subtrees.
func (p *Processor) collectTextNodes(n *html.Node, out *[]*html.Node) {
	switch n.Type {
	case html.TextNode:
		*out = append(*out, n)
		return
	case html.ElementNode:
		if _, skip := p.skip[n.Data]; skip {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.collectTextNodes(c, out)
	}
}

// spliceTextNode replaces one text node with the ordered replacement nodes
// for its chunks. A text that yields fewer than two chunks stays untouched.
func (p *Processor) spliceTextNode(n *html.Node) {
	parent := n.Parent
	if parent == nil {
		return
	}
	chunks := p.parser.Parse(n.Data)
	if len(chunks) < 2 {
		return
	}
	for _, replacement := range p.replacements(chunks) {
		parent.InsertBefore(replacement, n)
	}
	parent.RemoveChild(n)
}

// replacements builds one node per chunk, joined per the configured
// marking strategy.
func (p *Processor) replacements(chunks []string) []*html.Node {
	nodes := make([]*html.Node, 0, len(chunks))
	for i, chunk := range chunks {
		switch p.strategy {
		case StrategyWrap:
			nodes = append(nodes, p.wrapNode(chunk))
		default:
			if i > 0 {
				chunk = ZeroWidthSpace + chunk
			}
			nodes = append(nodes, &html.Node{Type: html.TextNode, Data: chunk})
		}
	}
	return nodes
}

// wrapNode builds <tag [class=...]>chunk</tag>.
func (p *Processor) wrapNode(chunk string) *html.Node {
	elem := &html.Node{
		Type:     html.ElementNode,
		Data:     p.wrapTag,
		DataAtom: atom.Lookup([]byte(p.wrapTag)),
	}
	if p.wrapClass != "" {
		elem.Attr = []html.Attribute{{Key: "class", Val: p.wrapClass}}
	}
	elem.AppendChild(&html.Node{Type: html.TextNode, Data: chunk})
	return elem
}
