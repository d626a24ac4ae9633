// Package taxonomy builds an immutable ranked hierarchy from a generic
// markup element tree and answers name lookups and rank queries over it.
// The whole structure is built once and never mutated, so a Taxon or Tree
// can be shared read-only across goroutines without synchronization.
package taxonomy

import (
	"fmt"
	"strings"
)

// Rank is a position in the fixed hierarchy sequence. Its position defines
// the exact depth a taxon of that rank sits below the root rank: every
// parent-child edge descends by exactly one rank.
type Rank int

const (
	Order Rank = iota
	Semiorder
	Suborder
	Infraorder
	Superfamily
	Family
	Genus
	Species
)

var rankNames = [...]string{
	"ORDER",
	"SEMIORDER",
	"SUBORDER",
	"INFRAORDER",
	"SUPERFAMILY",
	"FAMILY",
	"GENUS",
	"SPECIES",
}

// String returns the uppercase rank label used in textual summaries.
func (r Rank) String() string {
	if r < 0 || int(r) >= len(rankNames) {
		return fmt.Sprintf("RANK(%d)", int(r))
	}
	return rankNames[r]
}

// Position returns the rank's depth from the root rank.
func (r Rank) Position() int {
	return int(r)
}

// Next returns the rank one level deeper. It fails when the successor would
// fall past the deepest rank in the sequence.
func (r Rank) Next() (Rank, error) {
	if r < 0 || int(r)+1 >= len(rankNames) {
		return 0, fmt.Errorf("no rank below %s: %w", r, ErrUnknownRank)
	}
	return r + 1, nil
}

// ParseRank resolves a rank label case-insensitively.
func ParseRank(s string) (Rank, error) {
	u := strings.ToUpper(strings.TrimSpace(s))
	for i, name := range rankNames {
		if name == u {
			return Rank(i), nil
		}
	}
	return 0, fmt.Errorf("rank %q: %w", s, ErrUnknownRank)
}

// Ranks returns the full rank sequence, shallowest first.
func Ranks() []Rank {
	out := make([]Rank, len(rankNames))
	for i := range out {
		out[i] = Rank(i)
	}
	return out
}
