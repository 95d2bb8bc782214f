package tei

// Units returns the structural units dialogue is collected from: every
// act-typed div in document order, or every scene-typed div when the
// document marks no acts at all. The two kinds are never mixed.
func Units(doc *Document, ns Namespaces) []*Node {
	root := doc.Root()
	if root == nil {
		return nil
	}
	units := divsOfType(root, ns, "act")
	if len(units) == 0 {
		units = divsOfType(root, ns, "scene")
	}
	return units
}

func divsOfType(root *Node, ns Namespaces, typ string) []*Node {
	var out []*Node
	for _, div := range findAll(root, ns.Name("div")) {
		if attrValue(div, "type") == typ {
			out = append(out, div)
		}
	}
	return out
}
