package sortable

import (
	"bytes"
	"errors"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseList parses markup holding a single list element (for example a <ul>)
// and returns that element detached from any document.
func ParseList(content string) (*html.Node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			return n, nil
		}
	}
	return nil, errors.New("markup contains no element")
}

// RenderNode converts a node tree back to a string.
func RenderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// elementChildren lists the element children of parent, skipping text and
// comment nodes so that indices match what a browser reports for
// parent.children.
func elementChildren(parent *html.Node) []*html.Node {
	var children []*html.Node
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, c)
		}
	}
	return children
}

// elementAt returns the index-th element child of parent, or nil.
func elementAt(parent *html.Node, index int) *html.Node {
	if index < 0 {
		return nil
	}
	count := 0
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if count == index {
			return c
		}
		count++
	}
	return nil
}

// elementIndex returns the index of n among its parent's element children.
func elementIndex(n *html.Node) int {
	if n == nil || n.Parent == nil {
		return -1
	}
	count := 0
	for c := n.Parent.FirstChild; c != nil; c = c.NextSibling {
		if c == n {
			return count
		}
		if c.Type == html.ElementNode {
			count++
		}
	}
	return -1
}

func nextElementSibling(n *html.Node) *html.Node {
	for c := n.NextSibling; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

func getAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// moveElementTo detaches child and reinserts it so that it ends up as the
// index-th element child of parent.
func moveElementTo(parent, child *html.Node, index int) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	// Indices are counted after removal, so the element now at index is the
	// one child must precede.
	ref := elementAt(parent, index)
	if ref != nil {
		parent.InsertBefore(child, ref)
	} else {
		parent.AppendChild(child)
	}
}
