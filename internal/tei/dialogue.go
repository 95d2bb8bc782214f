package tei

import "strings"

// Fragments collects the spoken fragments of one structural unit in document
// order, whitespace-normalized, blanks dropped.
//
// The primary pass takes every verse line inside a speech, skipping lines
// nested anywhere under a stage direction. When that pass matches no line
// element at all, the unit falls back to walking each speech's immediate
// children, skipping stage directions and speaker labels, for encodings that
// put prose or unwrapped text directly under the speech. The choice is made
// per unit.
func Fragments(unit *Node, ns Namespaces) []string {
	speech := ns.Name("sp")
	stage := ns.Name("stage")

	var out []string
	matched := 0
	for _, line := range findAll(unit, ns.Name("l")) {
		if !hasAncestorWithin(line, speech, unit) || hasAncestor(line, stage) {
			continue
		}
		matched++
		if t := CollapseSpace(textContent(line)); t != "" {
			out = append(out, t)
		}
	}
	if matched > 0 {
		return out
	}

	for _, sp := range findAll(unit, speech) {
		for _, child := range sp.Children {
			if child.Type != ElementNode {
				continue
			}
			local := strings.ToLower(child.Name.Local)
			if local == "stage" || local == "speaker" {
				continue
			}
			if t := CollapseSpace(textContent(child)); t != "" {
				out = append(out, t)
			}
		}
	}
	return out
}

// ActTexts renders every unit of the document down to its dialogue text.
// Units whose dialogue comes out empty are dropped, so positions in the
// result correspond to the surviving acts in order.
func ActTexts(doc *Document, ns Namespaces) []string {
	var out []string
	for _, unit := range Units(doc, ns) {
		text := strings.TrimSpace(strings.Join(Fragments(unit, ns), "\n"))
		if text != "" {
			out = append(out, text)
		}
	}
	return out
}
