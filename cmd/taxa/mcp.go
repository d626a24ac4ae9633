package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kaytchjam/taxa/internal/taxonomy"
)

// MCPCmd serves taxonomy queries over MCP stdio. The tree is loaded once at
// startup; every tool reads the same in-memory index.
type MCPCmd struct{}

type lookupArgs struct {
	Name string `json:"name" jsonschema:"Clade name to look up, matched case-insensitively"`
}

type rankArgs struct {
	Rank string `json:"rank" jsonschema:"Rank label, e.g. FAMILY"`
}

// taxonSummary is the JSON shape returned by the MCP tools.
type taxonSummary struct {
	Rank           string   `json:"rank"`
	Clade          string   `json:"clade"`
	Classification string   `json:"classification"`
	Branches       []string `json:"branches"`
}

func summarize(tx *taxonomy.Taxon) taxonSummary {
	branches := []string{}
	for _, b := range tx.Branches() {
		branches = append(branches, b.Clade())
	}
	return taxonSummary{
		Rank:           tx.Rank().String(),
		Clade:          tx.Clade(),
		Classification: tx.Classification(),
		Branches:       branches,
	}
}

func textResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(out)},
		},
	}, nil
}

func (cmd *MCPCmd) Run(cli *CLI) error {
	tree, err := loadTree(cli)
	if err != nil {
		return err
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "taxa",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "taxon_lookup",
		Description: "Look up a taxon by clade name. Returns its rank, full classification and branches, or null when no taxon has that name.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args lookupArgs) (*mcp.CallToolResult, any, error) {
		slog.Debug("taxon_lookup called", "name", args.Name)
		tx, err := tree.Taxon(args.Name)
		if err != nil {
			return nil, nil, err
		}
		if tx == nil {
			res, err := textResult(nil)
			return res, nil, err
		}
		res, err := textResult(summarize(tx))
		return res, nil, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "taxons_of_rank",
		Description: "List every taxon at a given rank. Returns a JSON array of taxon summaries; empty when the rank is absent from the tree.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args rankArgs) (*mcp.CallToolResult, any, error) {
		slog.Debug("taxons_of_rank called", "rank", args.Rank)
		taxa, err := tree.TaxonsOfRankName(args.Rank)
		if err != nil {
			return nil, nil, err
		}
		summaries := []taxonSummary{}
		for _, tx := range taxa {
			summaries = append(summaries, summarize(tx))
		}
		res, err := textResult(summaries)
		return res, nil, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "classification",
		Description: "Return the full root-to-taxon classification string for a clade name.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args lookupArgs) (*mcp.CallToolResult, any, error) {
		slog.Debug("classification called", "name", args.Name)
		tx, err := tree.Taxon(args.Name)
		if err != nil {
			return nil, nil, err
		}
		if tx == nil {
			return nil, nil, fmt.Errorf("no taxon named %q", args.Name)
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: tx.Classification()},
			},
		}, nil, nil
	})

	slog.Debug("starting MCP server")
	return server.Run(context.Background(), &mcp.StdioTransport{})
}
