package tei

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ErrNoTree reports input from which no element tree could be recovered.
var ErrNoTree = errors.New("no usable element tree")

// Document is a parsed TEI document.
type Document struct {
	nodes []*Node
}

// Root returns the outermost element of the document, or nil when parsing
// recovered no element at all.
func (d *Document) Root() *Node {
	for _, n := range d.nodes {
		if n.Type == ElementNode {
			return n
		}
	}
	return nil
}

// Parse builds a document tree from TEI XML source. The XML decoder runs in
// non-strict mode and a mid-stream syntax error keeps whatever was parsed
// before it; input the decoder cannot tokenize at all is reparsed with the
// HTML parser. Parse fails only when neither pass yields an element.
func Parse(src string) (*Document, error) {
	doc := decodeXML(strings.NewReader(src))
	if doc.Root() != nil {
		return doc, nil
	}
	doc, err := salvageHTML(strings.NewReader(src))
	if err != nil || doc.Root() == nil {
		return nil, fmt.Errorf("parse tei: %w", ErrNoTree)
	}
	return doc, nil
}

func decodeXML(r io.Reader) *Document {
	dec := xml.NewDecoder(r)
	dec.Strict = false
	dec.AutoClose = xml.HTMLAutoClose
	dec.Entity = xml.HTMLEntity
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	doc := &Document{}
	var stack []*Node
	add := func(n *Node) {
		if len(stack) == 0 {
			doc.nodes = append(doc.nodes, n)
			return
		}
		stack[len(stack)-1].AppendChild(n)
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			// io.EOF or a syntax error past recovery. Keep the tree
			// built so far.
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Type: ElementNode, Name: t.Name, Attr: t.Copy().Attr}
			add(n)
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			add(&Node{Type: TextNode, Data: string(t)})
		}
	}
	return doc
}

// htmlWrappers are the elements the HTML parser synthesizes around foreign
// content. They carry no structure of their own and are skipped over.
var htmlWrappers = map[string]bool{"html": true, "head": true, "body": true}

func salvageHTML(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	doc := &Document{}
	convertHTML(root, nil, doc, map[string]string{})
	return doc, nil
}

// convertHTML rebuilds an html.Node subtree as tei Nodes, resolving xmlns
// declarations the HTML parser leaves as plain attributes. The scope map
// carries prefix bindings inherited from enclosing elements; the empty key
// holds the default namespace.
func convertHTML(h *html.Node, parent *Node, doc *Document, scope map[string]string) {
	add := func(n *Node) {
		if parent == nil {
			doc.nodes = append(doc.nodes, n)
			return
		}
		parent.AppendChild(n)
	}

	switch h.Type {
	case html.DocumentNode:
		for c := h.FirstChild; c != nil; c = c.NextSibling {
			convertHTML(c, parent, doc, scope)
		}
	case html.TextNode:
		add(&Node{Type: TextNode, Data: h.Data})
	case html.ElementNode:
		if htmlWrappers[h.Data] {
			for c := h.FirstChild; c != nil; c = c.NextSibling {
				convertHTML(c, parent, doc, scope)
			}
			return
		}

		ns := scope
		for _, a := range h.Attr {
			if a.Key == "xmlns" || strings.HasPrefix(a.Key, "xmlns:") {
				ns = make(map[string]string, len(scope)+1)
				for k, v := range scope {
					ns[k] = v
				}
				break
			}
		}

		attrs := make([]xml.Attr, 0, len(h.Attr))
		for _, a := range h.Attr {
			switch {
			case a.Key == "xmlns":
				ns[""] = a.Val
				attrs = append(attrs, xml.Attr{Name: xml.Name{Local: "xmlns"}, Value: a.Val})
			case strings.HasPrefix(a.Key, "xmlns:"):
				pfx := a.Key[len("xmlns:"):]
				ns[pfx] = a.Val
				attrs = append(attrs, xml.Attr{Name: xml.Name{Space: "xmlns", Local: pfx}, Value: a.Val})
			default:
				pfx, local, ok := strings.Cut(a.Key, ":")
				if !ok {
					attrs = append(attrs, xml.Attr{Name: xml.Name{Local: a.Key}, Value: a.Val})
					continue
				}
				attrs = append(attrs, xml.Attr{Name: xml.Name{Space: resolvePrefix(ns, pfx), Local: local}, Value: a.Val})
			}
		}

		name := xml.Name{Local: h.Data}
		if pfx, local, ok := strings.Cut(h.Data, ":"); ok {
			name = xml.Name{Space: resolvePrefix(ns, pfx), Local: local}
		} else if def, ok := ns[""]; ok {
			name.Space = def
		}

		n := &Node{Type: ElementNode, Name: name, Attr: attrs}
		add(n)
		for c := h.FirstChild; c != nil; c = c.NextSibling {
			convertHTML(c, n, doc, ns)
		}
	}
	// Comments and doctypes are dropped.
}

const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

// resolvePrefix maps a namespace prefix to its URI. Unknown prefixes stay as
// the literal prefix, matching what the XML decoder does.
func resolvePrefix(ns map[string]string, pfx string) string {
	if pfx == "xml" {
		return xmlNamespace
	}
	if uri, ok := ns[pfx]; ok {
		return uri
	}
	return pfx
}
