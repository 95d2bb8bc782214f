package tei

import "encoding/xml"

// TEINamespace is the canonical TEI namespace URI, assumed for documents
// that declare no default namespace.
const TEINamespace = "http://www.tei-c.org/ns/1.0"

// Namespaces maps prefix aliases to namespace URIs for element matching.
type Namespaces map[string]string

// Resolve builds the alias table from the namespace declarations on the
// document root. The default namespace is exposed under the "tei" alias and
// wins over an explicit xmlns:tei declaration, so documents using either
// convention are queried uniformly. When neither is declared the alias falls
// back to the canonical TEI URI. Elements of a document that declares no
// namespaces at all resolve to the empty URI and match nothing.
func Resolve(root *Node) Namespaces {
	ns := Namespaces{}
	if root != nil {
		var def string
		for _, a := range root.Attr {
			switch {
			case a.Name.Space == "" && a.Name.Local == "xmlns":
				def = a.Value
			case a.Name.Space == "xmlns":
				ns[a.Name.Local] = a.Value
			}
		}
		if def != "" {
			ns["tei"] = def
		}
	}
	if _, ok := ns["tei"]; !ok {
		ns["tei"] = TEINamespace
	}
	return ns
}

// Name returns the resolved element name for a local name under the tei
// alias.
func (ns Namespaces) Name(local string) xml.Name {
	return xml.Name{Space: ns["tei"], Local: local}
}
