package tei

import (
	"reflect"
	"testing"
)

func TestUnits_ActsTakePrecedence(t *testing.T) {
	// Scenes are ignored whenever the document marks acts, even when both
	// appear.
	doc, ns := mustParse(t, `<TEI xmlns="http://www.tei-c.org/ns/1.0"><text><body>
<div type="act"><div type="scene"><sp><l>One.</l></sp></div></div>
<div type="act"><sp><l>Two.</l></sp></div>
<div type="scene"><sp><l>Stray scene.</l></sp></div>
</body></text></TEI>`)

	units := Units(doc, ns)
	if len(units) != 2 {
		t.Fatalf("expected 2 units, got %d", len(units))
	}
	for i, u := range units {
		if attrValue(u, "type") != "act" {
			t.Errorf("unit[%d]: expected type act, got %q", i, attrValue(u, "type"))
		}
	}
	want := []string{"One.", "Two."}
	if got := ActTexts(doc, ns); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestUnits_SceneFallback(t *testing.T) {
	doc, ns := mustParse(t, `<TEI xmlns="http://www.tei-c.org/ns/1.0"><text><body>
<div type="scene"><sp><l>First scene.</l></sp></div>
<div type="scene"><sp><l>Second scene.</l></sp></div>
</body></text></TEI>`)

	units := Units(doc, ns)
	if len(units) != 2 {
		t.Fatalf("expected 2 units, got %d", len(units))
	}
	for i, u := range units {
		if attrValue(u, "type") != "scene" {
			t.Errorf("unit[%d]: expected type scene, got %q", i, attrValue(u, "type"))
		}
	}
}

func TestUnits_NoStructuralDivs(t *testing.T) {
	doc, ns := mustParse(t, `<TEI xmlns="http://www.tei-c.org/ns/1.0"><text><body>
<div type="prologue"><sp><l>Neither act nor scene.</l></sp></div>
</body></text></TEI>`)

	if got := Units(doc, ns); len(got) != 0 {
		t.Errorf("expected no units, got %d", len(got))
	}
}
