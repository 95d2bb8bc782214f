package tei

import (
	"encoding/xml"
	"strings"
)

// NodeType discriminates the kinds of nodes kept in a parsed document.
type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
)

// Node is one node of a parsed TEI document. Element nodes carry their
// resolved namespace URI in Name.Space; text nodes hold character data in
// Data. Comments and processing instructions are not retained.
type Node struct {
	Type     NodeType
	Name     xml.Name
	Attr     []xml.Attr
	Data     string
	Parent   *Node
	Children []*Node
}

// AppendChild adds c as the last child of n and sets its parent link.
func (n *Node) AppendChild(c *Node) {
	c.Parent = n
	n.Children = append(n.Children, c)
}

// attrValue returns the value of the named un-prefixed attribute, or "".
func attrValue(n *Node, local string) string {
	for _, a := range n.Attr {
		if a.Name.Space == "" && a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// textContent concatenates all character data beneath n in document order,
// with no separators inserted.
func textContent(n *Node) string {
	var buf strings.Builder
	var walk func(*Node)
	walk = func(n *Node) {
		if n.Type == TextNode {
			buf.WriteString(n.Data)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}

// findAll returns every element below n (excluding n itself) whose resolved
// name matches, in document order.
func findAll(n *Node, name xml.Name) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(n *Node) {
		for _, c := range n.Children {
			if c.Type == ElementNode && c.Name == name {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// findFirst returns the first matching element below n in document order.
func findFirst(n *Node, name xml.Name) *Node {
	for _, c := range n.Children {
		if c.Type != ElementNode {
			continue
		}
		if c.Name == name {
			return c
		}
		if m := findFirst(c, name); m != nil {
			return m
		}
	}
	return nil
}

// hasAncestor reports whether any element on the parent chain of n, all the
// way to the document root, matches name.
func hasAncestor(n *Node, name xml.Name) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == ElementNode && p.Name == name {
			return true
		}
	}
	return false
}

// hasAncestorWithin reports whether an element matching name sits on the
// parent chain of n strictly below top.
func hasAncestorWithin(n *Node, name xml.Name, top *Node) bool {
	for p := n.Parent; p != nil && p != top; p = p.Parent {
		if p.Type == ElementNode && p.Name == name {
			return true
		}
	}
	return false
}
