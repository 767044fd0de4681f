package testsupport

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// Elements parses fragment and returns every element node with the given tag
// name, in document order.
func Elements(t *testing.T, fragment, tag string) []*html.Node {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}

	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return out
}

// Attr returns the value of an element attribute, or "".
func Attr(n *html.Node, name string) string {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return attr.Val
		}
	}
	return ""
}

// HasAttr reports whether the element carries the attribute, even when empty.
func HasAttr(n *html.Node, name string) bool {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return true
		}
	}
	return false
}

// Text returns the concatenated text content of n.
func Text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// AssertNoScripts fails the test when fragment contains a script element or
// an inline event handler attribute.
func AssertNoScripts(t *testing.T, fragment string) {
	t.Helper()

	if scripts := Elements(t, fragment, "script"); len(scripts) > 0 {
		t.Fatalf("unexpected script element in %q", fragment)
	}

	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, attr := range n.Attr {
				if strings.HasPrefix(strings.ToLower(attr.Key), "on") {
					t.Fatalf("unexpected event handler %s on <%s> in %q", attr.Key, n.Data, fragment)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
}
