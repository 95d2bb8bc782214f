package tei

import "testing"

func TestHeaderInfo_TitleAndAuthor(t *testing.T) {
	doc, ns := mustParse(t, `<TEI xmlns="http://www.tei-c.org/ns/1.0">
<teiHeader><fileDesc><titleStmt>
  <title>
    Ecerinis
  </title>
  <author><persName>Albertino <surname>Mussato</surname></persName></author>
</titleStmt></fileDesc></teiHeader>
<text><body><div type="act"><sp><l>Adsum.</l></sp></div></body></text></TEI>`)

	title, author := HeaderInfo(doc, ns)
	if title != "Ecerinis" {
		t.Errorf("expected title %q, got %q", "Ecerinis", title)
	}
	if author != "Albertino Mussato" {
		t.Errorf("expected author %q, got %q", "Albertino Mussato", author)
	}
}

func TestHeaderInfo_FirstTitleWins(t *testing.T) {
	doc, ns := mustParse(t, `<TEI xmlns="http://www.tei-c.org/ns/1.0">
<teiHeader><fileDesc><titleStmt>
  <title type="main">Medea</title>
  <title type="sub">A Tragedy</title>
</titleStmt></fileDesc></teiHeader>
<text><body/></text></TEI>`)

	title, _ := HeaderInfo(doc, ns)
	if title != "Medea" {
		t.Errorf("expected title %q, got %q", "Medea", title)
	}
}

func TestHeaderInfo_AuthorOutsideTitleStmt(t *testing.T) {
	// The title statement names no author here; the first author element
	// elsewhere in the header fills the gap.
	doc, ns := mustParse(t, `<TEI xmlns="http://www.tei-c.org/ns/1.0">
<teiHeader><fileDesc>
<titleStmt><title>Octavia</title></titleStmt>
<sourceDesc><bibl><author>Pseudo-Seneca</author></bibl></sourceDesc>
</fileDesc></teiHeader>
<text><body/></text></TEI>`)

	title, author := HeaderInfo(doc, ns)
	if title != "Octavia" {
		t.Errorf("expected title %q, got %q", "Octavia", title)
	}
	if author != "Pseudo-Seneca" {
		t.Errorf("expected author %q, got %q", "Pseudo-Seneca", author)
	}
}

func TestHeaderInfo_MissingHeader(t *testing.T) {
	doc, ns := mustParse(t, `<TEI xmlns="http://www.tei-c.org/ns/1.0"><text><body/></text></TEI>`)

	title, author := HeaderInfo(doc, ns)
	if title != "" || author != "" {
		t.Errorf("expected empty metadata, got title=%q author=%q", title, author)
	}
}
