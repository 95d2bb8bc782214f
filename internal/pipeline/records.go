package pipeline

import (
	"fmt"
	"strings"

	"github.com/nchagti/Topic-Modeling/internal/dracor"
	"github.com/nchagti/Topic-Modeling/internal/tei"
)

// Record is one act of one play, flattened for downstream indexing.
type Record struct {
	ID       string `json:"id"`
	PlaySlug string `json:"play_slug"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Act      int    `json:"act"`
	Text     string `json:"text"`
}

// Problem is a per-document failure that did not stop the batch.
type Problem struct {
	Slug    string
	Message string
}

func (p Problem) String() string { return p.Slug + ": " + p.Message }

// Result is the outcome of one harvest run.
type Result struct {
	Records  []Record
	Problems []Problem
}

// Select filters a corpus listing down to the plays worth fetching: slug and
// title present, first author containing the filter substring
// case-insensitively. An empty filter keeps every play.
func Select(plays []dracor.PlayMeta, authorFilter string) []dracor.PlayMeta {
	filter := strings.ToLower(authorFilter)
	var out []dracor.PlayMeta
	for _, m := range plays {
		if m.Name == "" || strings.TrimSpace(m.Title) == "" {
			continue
		}
		if !strings.Contains(strings.ToLower(m.FirstAuthor), filter) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Records turns one parsed play into its act records. Acts are numbered
// 1..k over the acts that survived extraction, so the numbering is
// contiguous even when empty acts were dropped.
func Records(doc *tei.Document, ns tei.Namespaces, slug, title, author string) []Record {
	var out []Record
	for i, text := range tei.ActTexts(doc, ns) {
		act := i + 1
		out = append(out, Record{
			ID:       fmt.Sprintf("%s_act%d", slug, act),
			PlaySlug: slug,
			Title:    title,
			Author:   author,
			Act:      act,
			Text:     text,
		})
	}
	return out
}
