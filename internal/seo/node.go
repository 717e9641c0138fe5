package seo

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

type nodeDocument struct {
	root *html.Node
}

// ParseNode builds a Document from a golang.org/x/net/html tree, matching
// elements with cascadia selectors.
func ParseNode(markup string) Document {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return emptyDocument{}
	}
	return nodeDocument{root: root}
}

func (d nodeDocument) First(tag string) (Element, bool) {
	sel, err := cascadia.Compile(tag)
	if err != nil {
		return nil, false
	}
	n := cascadia.Query(d.root, sel)
	if n == nil {
		return nil, false
	}
	return nodeElement{n: n}, true
}

func (d nodeDocument) FirstWithAttr(tag, attr, value string, fold bool) (Element, bool) {
	sel, err := cascadia.Compile(tag + "[" + attr + "]")
	if err != nil {
		return nil, false
	}
	for _, n := range cascadia.QueryAll(d.root, sel) {
		if v, _ := nodeAttr(n, attr); attrEquals(v, value, fold) {
			return nodeElement{n: n}, true
		}
	}
	return nil, false
}

type nodeElement struct {
	n *html.Node
}

func (e nodeElement) Text() string {
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
	walk(e.n)
	return b.String()
}

func (e nodeElement) Attr(name string) (string, bool) { return nodeAttr(e.n, name) }

func nodeAttr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}
