package taxonomy

import (
	"fmt"
	"strings"

	"github.com/kaytchjam/taxa/internal/markup"
)

// Taxon is one node of the hierarchy: a rank, a clade name, a navigational
// pointer to its precursor, and its owned branches. The parent pointer is
// never used for ownership, only for ancestry walks.
type Taxon struct {
	rank     Rank
	clade    string
	parent   *Taxon
	branches []*Taxon
}

// NewTaxon builds the taxon tree rooted at el. The root rank is resolved
// from the element's tag; each level below it sits exactly one rank deeper,
// and any child element whose tag does not resolve to that rank aborts
// construction. The taxon name is taken verbatim from the element's first
// attribute.
func NewTaxon(el *markup.Element) (*Taxon, error) {
	if el == nil {
		return nil, fmt.Errorf("element must not be nil: %w", ErrInvalidArgument)
	}
	rank, err := ParseRank(el.Tag)
	if err != nil {
		return nil, fmt.Errorf("root element <%s>: %w", el.Tag, err)
	}
	return build(el, nil, rank)
}

func build(el *markup.Element, parent *Taxon, rank Rank) (*Taxon, error) {
	name, ok := el.FirstAttr()
	if !ok || name == "" {
		return nil, fmt.Errorf("element <%s> has no name attribute: %w", el.Tag, ErrInvalidArgument)
	}

	t := &Taxon{rank: rank, clade: name, parent: parent}

	for _, child := range el.Children {
		ce, ok := child.(*markup.Element)
		if !ok {
			// Interstitial text, not domain content.
			continue
		}
		if len(ce.Attrs) == 0 {
			// Unattributed elements are formatting noise as well.
			continue
		}

		next, err := rank.Next()
		if err != nil {
			return nil, fmt.Errorf("child <%s> of %s %s: %w", ce.Tag, t.rank, t.clade, err)
		}
		got, err := ParseRank(ce.Tag)
		if err != nil {
			return nil, fmt.Errorf("child of %s %s: %w", t.rank, t.clade, err)
		}
		if got != next {
			return nil, fmt.Errorf("element <%s> under %s %s: want rank %s: %w",
				ce.Tag, t.rank, t.clade, next, ErrUnknownRank)
		}

		b, err := build(ce, t, next)
		if err != nil {
			return nil, err
		}
		t.branches = append(t.branches, b)
	}

	return t, nil
}

// Rank returns the taxon's rank.
func (t *Taxon) Rank() Rank {
	return t.rank
}

// Clade returns the taxon's name.
func (t *Taxon) Clade() string {
	return t.clade
}

// Precursor returns the taxon's parent, or nil for the root.
func (t *Taxon) Precursor() *Taxon {
	return t.parent
}

// Branches returns the taxon's children in source order. The returned slice
// is owned by the taxon and must not be modified.
func (t *Taxon) Branches() []*Taxon {
	return t.branches
}

// HasPrecursor reports whether the taxon has a parent.
func (t *Taxon) HasPrecursor() bool {
	return t.parent != nil
}

// HasBranches reports whether the taxon has any children.
func (t *Taxon) HasBranches() bool {
	return len(t.branches) > 0
}

// String returns the taxon summary: "<RANK> <NAME> <marker>", where the
// marker opens with '{' when the taxon has a precursor and '[' when it is
// the root, followed by one '-' per branch.
func (t *Taxon) String() string {
	var sb strings.Builder
	sb.WriteString(t.rank.String())
	sb.WriteByte(' ')
	sb.WriteString(t.clade)
	sb.WriteByte(' ')
	if t.HasPrecursor() {
		sb.WriteByte('{')
	} else {
		sb.WriteByte('[')
	}
	for range t.branches {
		sb.WriteByte('-')
	}
	return sb.String()
}

// Classification returns the "<RANK> <NAME>" pairs from the outermost
// ancestor down to this taxon, separated by single spaces.
func (t *Taxon) Classification() string {
	var chain []*Taxon
	for at := t; at != nil; at = at.parent {
		chain = append(chain, at)
	}

	var sb strings.Builder
	for i := len(chain) - 1; i >= 0; i-- {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(chain[i].rank.String())
		sb.WriteByte(' ')
		sb.WriteString(chain[i].clade)
	}
	return sb.String()
}
