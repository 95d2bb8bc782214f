package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/nchagti/Topic-Modeling/internal/config"
	"github.com/nchagti/Topic-Modeling/internal/dracor"
	"github.com/nchagti/Topic-Modeling/internal/tei"
)

// Harvester runs the corpus-to-JSON extraction batch.
type Harvester struct {
	client *dracor.Client
	cfg    config.Config
	log    *slog.Logger
}

func New(client *dracor.Client, cfg config.Config, log *slog.Logger) *Harvester {
	return &Harvester{client: client, cfg: cfg, log: log}
}

// Run fetches the corpus metadata, extracts per-act dialogue from every
// matching play plus the configured local documents, and writes the combined
// records to the output path. Documents that fail to fetch, read or parse
// are recorded as problems and the batch carries on; only the metadata
// fetch, cancellation and the final write abort the run. The output is
// written even when some documents failed.
func (h *Harvester) Run(ctx context.Context) (*Result, error) {
	plays, err := h.client.Metadata(ctx, h.cfg.Corpus)
	if err != nil {
		return nil, fmt.Errorf("corpus metadata: %w", err)
	}

	selected := Select(plays, h.cfg.AuthorFilter)
	h.log.Info("selected plays",
		"corpus", h.cfg.Corpus,
		"author_filter", h.cfg.AuthorFilter,
		"total", len(plays),
		"selected", len(selected),
	)

	res := &Result{}
	for _, m := range selected {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		recs, err := h.playRecords(ctx, m)
		if err != nil {
			h.log.Warn("play failed", "slug", m.Name, "error", err)
			res.Problems = append(res.Problems, Problem{Slug: m.Name, Message: err.Error()})
			continue
		}
		if len(recs) == 0 {
			h.log.Info("no dialogue extracted", "slug", m.Name)
		}
		res.Records = append(res.Records, recs...)
	}

	for _, d := range h.cfg.LocalDocuments {
		recs, err := h.localRecords(d)
		if err != nil {
			h.log.Warn("local document failed", "slug", d.Slug, "path", d.Path, "error", err)
			res.Problems = append(res.Problems, Problem{Slug: d.Slug, Message: err.Error()})
			continue
		}
		if len(recs) == 0 {
			h.log.Info("no dialogue extracted", "slug", d.Slug)
		}
		res.Records = append(res.Records, recs...)
	}

	if err := WriteRecords(h.cfg.OutputPath, res.Records); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}

	h.log.Info("harvest complete",
		"records", len(res.Records),
		"output", h.cfg.OutputPath,
		"problems", len(res.Problems),
	)
	for _, p := range res.Problems {
		h.log.Warn("issue", "slug", p.Slug, "error", p.Message)
	}
	return res, nil
}

func (h *Harvester) playRecords(ctx context.Context, m dracor.PlayMeta) ([]Record, error) {
	src, err := h.client.PlayTEI(ctx, h.cfg.Corpus, m.Name)
	if err != nil {
		return nil, err
	}
	doc, err := tei.Parse(src)
	if err != nil {
		return nil, err
	}
	ns := tei.Resolve(doc.Root())
	return Records(doc, ns, m.Name, m.Title, m.FirstAuthor), nil
}

func (h *Harvester) localRecords(d config.LocalDocument) ([]Record, error) {
	data, err := os.ReadFile(d.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", d.Path, err)
	}
	doc, err := tei.Parse(string(data))
	if err != nil {
		return nil, err
	}
	ns := tei.Resolve(doc.Root())

	title, author := d.Title, d.Author
	if title == "" || author == "" {
		headerTitle, headerAuthor := tei.HeaderInfo(doc, ns)
		if title == "" {
			title = headerTitle
		}
		if author == "" {
			author = headerAuthor
		}
	}
	return Records(doc, ns, d.Slug, title, author), nil
}
