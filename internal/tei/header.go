package tei

// HeaderInfo pulls the play title and author from the document's TEI header,
// for documents whose metadata is not supplied out of band. The title is the
// first one inside the title statement; the author is the first anywhere in
// the header. Either value may come back empty.
func HeaderInfo(doc *Document, ns Namespaces) (title, author string) {
	root := doc.Root()
	if root == nil {
		return "", ""
	}
	header := findFirst(root, ns.Name("teiHeader"))
	if header == nil {
		return "", ""
	}
	if stmt := findFirst(header, ns.Name("titleStmt")); stmt != nil {
		if t := findFirst(stmt, ns.Name("title")); t != nil {
			title = CollapseSpace(textContent(t))
		}
	}
	if a := findFirst(header, ns.Name("author")); a != nil {
		author = CollapseSpace(textContent(a))
	}
	return title, author
}
