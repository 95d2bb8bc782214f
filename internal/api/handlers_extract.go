package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/nchagti/Topic-Modeling/internal/pipeline"
	"github.com/nchagti/Topic-Modeling/internal/tei"
)

// maxDocumentBytes bounds a posted TEI document. Corpus sources top out
// around a couple of megabytes.
const maxDocumentBytes = 16 << 20

// handleExtract runs act extraction on a single TEI document posted as the
// request body. The slug, title and author query parameters override the
// document's own header metadata.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxDocumentBytes)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		jsonError(w, "read body: "+err.Error(), http.StatusRequestEntityTooLarge)
		return
	}
	if len(data) == 0 {
		jsonError(w, "request body is required", http.StatusBadRequest)
		return
	}

	doc, err := tei.Parse(string(data))
	if err != nil {
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	ns := tei.Resolve(doc.Root())

	slug := r.URL.Query().Get("slug")
	if slug == "" {
		slug = "document"
	}
	title := r.URL.Query().Get("title")
	author := r.URL.Query().Get("author")
	if title == "" || author == "" {
		headerTitle, headerAuthor := tei.HeaderInfo(doc, ns)
		if title == "" {
			title = headerTitle
		}
		if author == "" {
			author = headerAuthor
		}
	}

	records := pipeline.Records(doc, ns, slug, title, author)
	if records == nil {
		records = []pipeline.Record{}
	}

	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(map[string]any{
		"count":   len(records),
		"records": records,
	})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
