package testsupport

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// MustParseFragment parses rendered markup into a node tree rooted at a
// synthetic document.
func MustParseFragment(t *testing.T, markup []byte) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(string(markup)))
	if err != nil {
		t.Fatalf("parse markup: %v", err)
	}
	return doc
}

// ElementsWithClass returns every element carrying class in its class list.
func ElementsWithClass(root *html.Node, class string) []*html.Node {
	var out []*html.Node
	walk(root, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		for _, token := range strings.Fields(Attr(n, "class")) {
			if token == class {
				out = append(out, n)
				return
			}
		}
	})
	return out
}

// ElementsByTag returns every element with the given tag name.
func ElementsByTag(root *html.Node, tag string) []*html.Node {
	var out []*html.Node
	walk(root, func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
	})
	return out
}

// ElementByID returns the first element whose id equals id.
func ElementByID(root *html.Node, id string) *html.Node {
	var found *html.Node
	walk(root, func(n *html.Node) {
		if found == nil && n.Type == html.ElementNode && Attr(n, "id") == id {
			found = n
		}
	})
	return found
}

// TextNodes returns the trimmed, non-empty text nodes under root.
func TextNodes(root *html.Node) []string {
	var out []string
	walk(root, func(n *html.Node) {
		if n.Type != html.TextNode {
			return
		}
		if text := strings.TrimSpace(n.Data); text != "" {
			out = append(out, text)
		}
	})
	return out
}

// CountText returns how many text nodes equal text after trimming.
func CountText(root *html.Node, text string) int {
	count := 0
	for _, node := range TextNodes(root) {
		if node == text {
			count++
		}
	}
	return count
}

// Attr returns the value of key on n, or "".
func Attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// HasAttr reports whether n carries key.
func HasAttr(n *html.Node, key string) bool {
	if n == nil {
		return false
	}
	for _, attr := range n.Attr {
		if attr.Key == key {
			return true
		}
	}
	return false
}

func walk(n *html.Node, visit func(*html.Node)) {
	if n == nil {
		return
	}
	visit(n)
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		walk(child, visit)
	}
}
