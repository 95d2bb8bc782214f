package tei

import (
	"errors"
	"reflect"
	"testing"
)

func mustParse(t *testing.T, src string) (*Document, Namespaces) {
	t.Helper()
	doc, err := Parse(src)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return doc, Resolve(doc.Root())
}

func TestParse_WellFormedDocument(t *testing.T) {
	doc, ns := mustParse(t, `<TEI xmlns="http://www.tei-c.org/ns/1.0"><text><body>
<div type="act"><sp><speaker>MEDEA</speaker><l>Quid agis?</l></sp></div>
</body></text></TEI>`)

	root := doc.Root()
	if root == nil {
		t.Fatal("expected a root element")
	}
	if root.Name.Local != "TEI" || root.Name.Space != TEINamespace {
		t.Errorf("unexpected root name: %+v", root.Name)
	}
	want := []string{"Quid agis?"}
	if got := ActTexts(doc, ns); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestParse_TruncatedDocumentKeepsPrefix(t *testing.T) {
	// Input cut off mid-document: every element parsed before the end of
	// input survives.
	doc, ns := mustParse(t, `<TEI xmlns="http://www.tei-c.org/ns/1.0"><text><body>
<div type="act"><sp><l>Quid agis?</l><l>Nescio.</l></sp></div>
<div type="act"><sp><l>Venio.</l>`)

	want := []string{"Quid agis?\nNescio.", "Venio."}
	if got := ActTexts(doc, ns); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestParse_MalformedMarkupKeepsPrefix(t *testing.T) {
	// A bare < in character data stops the XML decoder. Everything parsed
	// before it is kept.
	doc, ns := mustParse(t, `<TEI xmlns="http://www.tei-c.org/ns/1.0"><text><body>
<div type="act"><sp><l>Quid agis?</l><l>Nescio.</l></sp></div>
<div type="act"><sp><l>Venio ad 5 < te</l></sp></div>
</body></text></TEI>`)

	acts := ActTexts(doc, ns)
	if len(acts) == 0 {
		t.Fatal("expected at least the first act to survive")
	}
	if acts[0] != "Quid agis?\nNescio." {
		t.Errorf("expected first act %q, got %q", "Quid agis?\nNescio.", acts[0])
	}
}

func TestParse_SalvageEngine(t *testing.T) {
	// Garbage before the root element makes the XML decoder give up before
	// it has built anything; the HTML pass still recovers the document.
	doc, ns := mustParse(t, `< not xml at all
<TEI xmlns="http://www.tei-c.org/ns/1.0"><text><body><div type="act"><sp><l>Venio.</l></sp></div></body></text></TEI>`)

	want := []string{"Venio."}
	if got := ActTexts(doc, ns); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestParse_SalvagePrefixedNames(t *testing.T) {
	doc, ns := mustParse(t, `< broken prefix
<tei:TEI xmlns:tei="http://www.tei-c.org/ns/1.0"><tei:text><tei:body><tei:div type="act"><tei:sp><tei:l>Adsum.</tei:l></tei:sp></tei:div></tei:body></tei:text></tei:TEI>`)

	want := []string{"Adsum."}
	if got := ActTexts(doc, ns); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestParse_NoUsableTree(t *testing.T) {
	_, err := Parse("plain prose with no markup whatsoever")
	if !errors.Is(err, ErrNoTree) {
		t.Fatalf("expected ErrNoTree, got %v", err)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := Parse("")
	if !errors.Is(err, ErrNoTree) {
		t.Fatalf("expected ErrNoTree, got %v", err)
	}
}

func TestParse_DropsComments(t *testing.T) {
	doc, ns := mustParse(t, `<TEI xmlns="http://www.tei-c.org/ns/1.0"><text><body>
<div type="act"><sp><l>Quid <!-- editorial note --> agis?</l></sp></div>
</body></text></TEI>`)

	want := []string{"Quid agis?"}
	if got := ActTexts(doc, ns); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestParse_HTMLEntities(t *testing.T) {
	// Corpus files occasionally use HTML entities without declaring them.
	doc, ns := mustParse(t, `<TEI xmlns="http://www.tei-c.org/ns/1.0"><text><body>
<div type="act"><sp><l>Quid&nbsp;agis?</l></sp></div>
</body></text></TEI>`)

	want := []string{"Quid agis?"}
	if got := ActTexts(doc, ns); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}
