package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LocalDocument is a TEI file on disk folded into the harvest alongside the
// corpus plays. Title and Author may be left blank to take them from the
// file's TEI header.
type LocalDocument struct {
	Path   string `yaml:"path"`
	Slug   string `yaml:"slug"`
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
}

// Config holds the harvester configuration.
type Config struct {
	// Corpus API
	APIBase string `yaml:"api_base"`
	Corpus  string `yaml:"corpus"`

	// Play selection: substring of the first author, matched
	// case-insensitively. Empty keeps every play.
	AuthorFilter string `yaml:"author_filter"`

	OutputPath string `yaml:"output"`

	// Request timeouts, environment-only.
	MetadataTimeout time.Duration `yaml:"-"`
	DocumentTimeout time.Duration `yaml:"-"`

	// Serve mode
	ListenAddr string `yaml:"listen_addr"`

	LocalDocuments []LocalDocument `yaml:"local_documents"`
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment, in that order of precedence. A .env file in the working
// directory is read into the environment first.
func Load(path string) (Config, error) {
	godotenv.Load()

	cfg := Config{
		APIBase:         "https://dracor.org/api/v1",
		Corpus:          "rom",
		AuthorFilter:    "seneca",
		OutputPath:      "latin_tragedies_acts.json",
		MetadataTimeout: 30 * time.Second,
		DocumentTimeout: 60 * time.Second,
		ListenAddr:      ":8090",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.APIBase = envOr("ACTHARVEST_API_BASE", cfg.APIBase)
	cfg.Corpus = envOr("ACTHARVEST_CORPUS", cfg.Corpus)
	cfg.AuthorFilter = envOr("ACTHARVEST_AUTHOR", cfg.AuthorFilter)
	cfg.OutputPath = envOr("ACTHARVEST_OUTPUT", cfg.OutputPath)
	cfg.MetadataTimeout = envDuration("ACTHARVEST_METADATA_TIMEOUT", cfg.MetadataTimeout)
	cfg.DocumentTimeout = envDuration("ACTHARVEST_DOCUMENT_TIMEOUT", cfg.DocumentTimeout)
	cfg.ListenAddr = envOr("ACTHARVEST_LISTEN_ADDR", cfg.ListenAddr)

	return cfg, nil
}

func (c Config) Validate() error {
	if c.APIBase == "" {
		return fmt.Errorf("api base URL is required")
	}
	if c.Corpus == "" {
		return fmt.Errorf("corpus is required")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}
	if c.MetadataTimeout <= 0 || c.DocumentTimeout <= 0 {
		return fmt.Errorf("request timeouts must be positive")
	}
	for _, d := range c.LocalDocuments {
		if d.Path == "" || d.Slug == "" {
			return fmt.Errorf("local document needs both path and slug (got path=%q slug=%q)", d.Path, d.Slug)
		}
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
