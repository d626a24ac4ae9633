package main

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

//go:embed primates.xml
var sampleDataset []byte

// CLI is the top-level command structure for taxa.
type CLI struct {
	Debug  bool   `env:"TAXA_DEBUG" help:"Enable debug logging."`
	File   string `short:"f" type:"path" help:"Path to the taxonomy markup file."`
	Config string `type:"path" help:"Path to the config file."`

	Lookup  LookupCmd  `cmd:"" help:"Look up a taxon by clade name."`
	Rank    RankCmd    `cmd:"" help:"List every taxon at a given rank."`
	Ranks   RanksCmd   `cmd:"" help:"Print the rank sequence."`
	Tree    TreeCmd    `cmd:"" help:"Render the whole hierarchy."`
	Explore ExploreCmd `cmd:"" help:"Browse the hierarchy interactively."`
	MCP     MCPCmd     `cmd:"" name:"mcp" help:"Serve taxonomy queries over MCP stdio."`
}

func main() {
	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name("taxa"),
		kong.Description("Query a ranked taxonomy built from a markup tree."),
		kong.UsageOnError(),
		kong.Exit(func(code int) {
			os.Exit(code)
		}),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "taxa: %v\n", err)
		os.Exit(1)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	setupLogger(cli.Debug)

	err = ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
