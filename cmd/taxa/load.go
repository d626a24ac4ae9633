package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kaytchjam/taxa/internal/markup"
	"github.com/kaytchjam/taxa/internal/taxonomy"
)

// resolveDataset picks the markup source: --file flag, then the config
// file's dataset entry, then the embedded sample.
func resolveDataset(cli *CLI, cfg Config) (io.ReadCloser, string, error) {
	path := cli.File
	if path == "" {
		path = cfg.Dataset
	}
	if path == "" {
		slog.Debug("using embedded sample dataset")
		return io.NopCloser(bytes.NewReader(sampleDataset)), "embedded sample", nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open dataset: %w", err)
	}
	return f, path, nil
}

// loadTree builds the indexed taxonomy from the resolved dataset.
func loadTree(cli *CLI) (*taxonomy.Tree, error) {
	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return nil, err
	}

	src, name, err := resolveDataset(cli, cfg)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	root, err := markup.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	tree, err := taxonomy.Build(root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	slog.Debug("taxonomy loaded", "dataset", name, "taxa", tree.Len())
	return tree, nil
}
