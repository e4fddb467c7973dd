// ABOUTME: Summarizes violation markup down to the offending element tag
// ABOUTME: Uses golang.org/x/net/html; falls back to collapsed raw input

package render

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ElementTag returns the opening tag of the first element in an HTML
// fragment, attributes included, dropping nested markup. Scanners often
// report whole subtrees; the list only needs the element itself. Input
// that parses to no element comes back whitespace-collapsed instead.
func ElementTag(fragment string) string {
	trimmed := strings.TrimSpace(fragment)
	if trimmed == "" {
		return ""
	}

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(trimmed), body)
	if err != nil {
		return collapseSpace(trimmed)
	}

	for _, n := range nodes {
		if elem := firstElement(n); elem != nil {
			return openingTag(elem)
		}
	}
	return collapseSpace(trimmed)
}

func firstElement(n *html.Node) *html.Node {
	if n.Type == html.ElementNode {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if elem := firstElement(c); elem != nil {
			return elem
		}
	}
	return nil
}

// openingTag reconstructs "<tag attr="v" bare>" from a parsed element.
func openingTag(n *html.Node) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(n.Data)
	for _, a := range n.Attr {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		if a.Val != "" {
			b.WriteString(`="`)
			b.WriteString(a.Val)
			b.WriteByte('"')
		}
	}
	b.WriteByte('>')
	return b.String()
}

// collapseSpace folds runs of whitespace into single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
