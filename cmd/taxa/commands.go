package main

import (
	"fmt"
	"os"

	"github.com/kaytchjam/taxa/internal/taxonomy"
	"golang.org/x/term"
)

// LookupCmd looks up a single taxon by clade name.
type LookupCmd struct {
	Name string `arg:"" help:"Clade name, matched case-insensitively."`
	Full bool   `help:"Also print the full classification."`
}

func (cmd *LookupCmd) Run(cli *CLI) error {
	tree, err := loadTree(cli)
	if err != nil {
		return err
	}

	tx, err := tree.Taxon(cmd.Name)
	if err != nil {
		return err
	}
	if tx == nil {
		fmt.Printf("no taxon named %q\n", cmd.Name)
		return nil
	}

	fmt.Println(tx)
	if cmd.Full {
		fmt.Println(tx.Classification())
	}
	return nil
}

// RankCmd lists every taxon at a given rank.
type RankCmd struct {
	Rank string `arg:"" help:"Rank label, e.g. FAMILY."`
}

func (cmd *RankCmd) Run(cli *CLI) error {
	tree, err := loadTree(cli)
	if err != nil {
		return err
	}

	taxa, err := tree.TaxonsOfRankName(cmd.Rank)
	if err != nil {
		return err
	}
	for _, tx := range taxa {
		fmt.Println(tx)
	}
	return nil
}

// RanksCmd prints the fixed rank sequence, shallowest first.
type RanksCmd struct{}

func (cmd *RanksCmd) Run() error {
	for _, r := range taxonomy.Ranks() {
		fmt.Printf("%d %s\n", r.Position(), r)
	}
	return nil
}

// TreeCmd renders the whole hierarchy as an indented tree.
type TreeCmd struct {
	Width int `help:"Output width; defaults to the terminal width."`
}

func (cmd *TreeCmd) Run(cli *CLI) error {
	tree, err := loadTree(cli)
	if err != nil {
		return err
	}

	width := cmd.Width
	if width <= 0 {
		width = terminalWidth()
	}
	renderTree(os.Stdout, tree.Root(), width)
	return nil
}

// terminalWidth probes stdout for its width, defaulting to 80 when stdout is
// not a terminal or too narrow to be plausible.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 80
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w < 20 {
		return 80
	}
	return w
}
