package taxonomy

import (
	"fmt"
	"strings"

	"github.com/kaytchjam/taxa/internal/markup"
)

// Tree wraps a taxon hierarchy with a name index and answers by-name and
// by-rank queries. The index holds non-owning references into the tree.
type Tree struct {
	root    *Taxon
	byClade map[string]*Taxon
}

// New indexes an already-built taxon tree. One iterative stack traversal
// visits every taxon exactly once and records it under its uppercased clade
// name.
func New(root *Taxon) (*Tree, error) {
	if root == nil {
		return nil, fmt.Errorf("root taxon must not be nil: %w", ErrInvalidRoot)
	}

	byClade := make(map[string]*Taxon)
	stack := []*Taxon{root}
	for len(stack) > 0 {
		at := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		byClade[strings.ToUpper(at.clade)] = at
		stack = append(stack, at.branches...)
	}

	return &Tree{root: root, byClade: byClade}, nil
}

// Build constructs the taxon tree from a markup element and indexes it.
func Build(el *markup.Element) (*Tree, error) {
	root, err := NewTaxon(el)
	if err != nil {
		return nil, err
	}
	return New(root)
}

// Root returns the tree's root taxon.
func (t *Tree) Root() *Taxon {
	return t.root
}

// Len returns the number of indexed taxa.
func (t *Tree) Len() int {
	return len(t.byClade)
}

// Taxon returns the taxon whose clade name matches name, compared
// case-insensitively. A nil taxon with a nil error means no taxon has that
// name. When two taxa share a name the index keeps whichever was written
// last during an unspecified traversal order; callers that need
// reproducibility must keep names unique.
func (t *Tree) Taxon(name string) (*Taxon, error) {
	if name == "" {
		return nil, fmt.Errorf("name must not be empty: %w", ErrInvalidArgument)
	}
	return t.byClade[strings.ToUpper(name)], nil
}

// TaxonsOfRank returns every taxon at rank r, in an unspecified but
// deterministic order. The traversal stops expanding once it reaches the
// rank directly above the target: those nodes' branches are already at the
// answer rank under the one-rank-per-level invariant, so only nodes at or
// above the target are ever visited.
func (t *Tree) TaxonsOfRank(r Rank) []*Taxon {
	if r == t.root.rank {
		return []*Taxon{t.root}
	}
	if r.Position() < t.root.rank.Position() {
		return nil
	}

	var result []*Taxon
	stack := []*Taxon{t.root}
	for len(stack) > 0 {
		at := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if at.rank.Position() >= r.Position()-1 {
			result = append(result, at.branches...)
		} else {
			stack = append(stack, at.branches...)
		}
	}
	return result
}

// TaxonsOfRankName resolves a rank label case-insensitively and returns
// every taxon at that rank.
func (t *Tree) TaxonsOfRankName(name string) ([]*Taxon, error) {
	r, err := ParseRank(name)
	if err != nil {
		return nil, err
	}
	return t.TaxonsOfRank(r), nil
}

// Walk visits every taxon once, root first within each subtree.
func (t *Tree) Walk(fn func(*Taxon)) {
	stack := []*Taxon{t.root}
	for len(stack) > 0 {
		at := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(at)
		for i := len(at.branches) - 1; i >= 0; i-- {
			stack = append(stack, at.branches[i])
		}
	}
}
