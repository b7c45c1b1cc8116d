package textproc

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blockAtoms are elements whose boundaries separate words. Removing an
// inline tag (<strong>, <em>, <a>) must not split the surrounding text,
// but adjacent block elements (<p>foo</p><p>bar</p>) must not merge
// their words either.
var blockAtoms = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true,
	atom.Blockquote: true, atom.Br: true, atom.Dd: true, atom.Div: true,
	atom.Dl: true, atom.Dt: true, atom.Fieldset: true, atom.Figure: true,
	atom.Footer: true, atom.Form: true, atom.H1: true, atom.H2: true,
	atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Header: true, atom.Hr: true, atom.Li: true, atom.Main: true,
	atom.Nav: true, atom.Ol: true, atom.P: true, atom.Pre: true,
	atom.Section: true, atom.Table: true, atom.Td: true, atom.Th: true,
	atom.Tr: true, atom.Ul: true,
}

// CleanHTML strips markup from s, keeping the inner text of nested
// tags, decoding standard HTML entities and collapsing whitespace runs
// (including whitespace introduced by removing block-level tags) to
// single spaces. Script, style and noscript subtrees are dropped
// entirely. Empty input yields an empty string; CleanHTML never fails.
func CleanHTML(s string) string {
	if s == "" {
		return ""
	}

	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// html.Parse only fails on reader errors, which a
		// strings.Reader cannot produce. Degrade to whitespace
		// collapsing on the raw input.
		return collapseWhitespace(s)
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Noscript:
				return
			}
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		block := n.Type == html.ElementNode && blockAtoms[n.DataAtom]
		if block {
			b.WriteByte('\n')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if block {
			b.WriteByte('\n')
		}
	}
	walk(doc)

	return collapseWhitespace(b.String())
}

// NormalizeCase lower-cases every letter in s; non-letter characters
// pass through unchanged.
func NormalizeCase(s string) string {
	return strings.ToLower(s)
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
