package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/nchagti/Topic-Modeling/internal/config"
	"github.com/nchagti/Topic-Modeling/internal/dracor"
	"github.com/nchagti/Topic-Modeling/internal/pipeline"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch the corpus and write per-act records",
	Long: `Run fetches the corpus metadata, keeps the plays whose first author matches
the filter, extracts each play's spoken dialogue act by act, folds in any
locally configured TEI files, and writes every act as one JSON record.
Per-document failures are reported at the end without stopping the batch.`,
	RunE: runHarvest,
}

var (
	outputPath string
	corpus     string
	author     string
	apiBase    string
)

func init() {
	runCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output JSON path")
	runCmd.Flags().StringVar(&corpus, "corpus", "", "corpus name")
	runCmd.Flags().StringVar(&author, "author", "", "first-author substring filter (empty keeps every play)")
	runCmd.Flags().StringVar(&apiBase, "api-base", "", "corpus API base URL")
	rootCmd.AddCommand(runCmd)
}

func runHarvest(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if outputPath != "" {
		cfg.OutputPath = outputPath
	}
	if corpus != "" {
		cfg.Corpus = corpus
	}
	if cmd.Flags().Changed("author") {
		cfg.AuthorFilter = author
	}
	if apiBase != "" {
		cfg.APIBase = apiBase
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := dracor.NewClient(cfg.APIBase, cfg.MetadataTimeout, cfg.DocumentTimeout)
	defer client.Close()

	res, err := pipeline.New(client, cfg, slog.Default()).Run(ctx)
	if err != nil {
		return err
	}
	if len(res.Problems) > 0 {
		slog.Warn("completed with issues", "count", len(res.Problems))
	}
	return nil
}
