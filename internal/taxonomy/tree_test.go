package taxonomy

import (
	"errors"
	"testing"
)

// buildTree indexes a taxon tree parsed from a markup snippet.
func buildTree(t *testing.T, src string) *Tree {
	t.Helper()
	tree, err := New(buildTaxon(t, src))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return tree
}

const primates = `<order name="Primates">
	<semiorder name="Haplorrhini">
		<suborder name="Simiiformes">
			<infraorder name="Catarrhini">
				<superfamily name="Hominoidea">
					<family name="Hominidae">
						<genus name="Homo">
							<species name="Homo sapiens"/>
						</genus>
						<genus name="Pan">
							<species name="Pan troglodytes"/>
							<species name="Pan paniscus"/>
						</genus>
					</family>
					<family name="Hylobatidae"/>
				</superfamily>
			</infraorder>
		</suborder>
		<suborder name="Tarsiiformes"/>
	</semiorder>
	<semiorder name="Strepsirrhini"/>
</order>`

func TestNew_NilRoot(t *testing.T) {
	_, err := New(nil)
	if !errors.Is(err, ErrInvalidRoot) {
		t.Fatalf("New(nil) error = %v, want ErrInvalidRoot", err)
	}
}

func TestNew_IndexesEveryTaxon(t *testing.T) {
	tree := buildTree(t, primates)

	if tree.Len() != 14 {
		t.Errorf("Len = %d, want 14", tree.Len())
	}

	var visited int
	tree.Walk(func(*Taxon) { visited++ })
	if visited != tree.Len() {
		t.Errorf("Walk visited %d taxa, index holds %d", visited, tree.Len())
	}
}

func TestTaxon_CaseInsensitive(t *testing.T) {
	tree := buildTree(t, primates)

	for _, name := range []string{"hominidae", "HOMINIDAE", "Hominidae"} {
		tx, err := tree.Taxon(name)
		if err != nil {
			t.Fatalf("Taxon(%q): %v", name, err)
		}
		if tx == nil {
			t.Fatalf("Taxon(%q) = nil", name)
		}
		if tx.Clade() != "Hominidae" {
			t.Errorf("Taxon(%q).Clade = %q", name, tx.Clade())
		}
	}
}

func TestTaxon_NotFoundIsNotAnError(t *testing.T) {
	tree := buildTree(t, primates)

	tx, err := tree.Taxon("Felidae")
	if err != nil {
		t.Fatalf("Taxon: %v", err)
	}
	if tx != nil {
		t.Errorf("Taxon = %v, want nil", tx)
	}
}

func TestTaxon_EmptyName(t *testing.T) {
	tree := buildTree(t, primates)

	_, err := tree.Taxon("")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Taxon(\"\") error = %v, want ErrInvalidArgument", err)
	}
}

func TestTaxonsOfRank_RootRankIsSingleton(t *testing.T) {
	tree := buildTree(t, primates)

	got := tree.TaxonsOfRank(Order)
	if len(got) != 1 || got[0] != tree.Root() {
		t.Fatalf("TaxonsOfRank(ORDER) = %v, want [root]", got)
	}
}

func TestTaxonsOfRank_SetEquality(t *testing.T) {
	tree := buildTree(t, primates)

	cases := []struct {
		rank Rank
		want []string
	}{
		{Semiorder, []string{"Haplorrhini", "Strepsirrhini"}},
		{Suborder, []string{"Simiiformes", "Tarsiiformes"}},
		{Family, []string{"Hominidae", "Hylobatidae"}},
		{Genus, []string{"Homo", "Pan"}},
		{Species, []string{"Homo sapiens", "Pan troglodytes", "Pan paniscus"}},
	}
	for _, c := range cases {
		got := tree.TaxonsOfRank(c.rank)
		if len(got) != len(c.want) {
			t.Errorf("TaxonsOfRank(%v): %d taxa, want %d", c.rank, len(got), len(c.want))
			continue
		}
		seen := make(map[string]bool, len(got))
		for _, tx := range got {
			seen[tx.Clade()] = true
		}
		for _, name := range c.want {
			if !seen[name] {
				t.Errorf("TaxonsOfRank(%v): missing %q", c.rank, name)
			}
		}
	}
}

func TestTaxonsOfRank_AbsentRankIsEmpty(t *testing.T) {
	tree := buildTree(t, `<order name="Primates"><semiorder name="Haplorrhini"/></order>`)

	if got := tree.TaxonsOfRank(Species); len(got) != 0 {
		t.Errorf("TaxonsOfRank(SPECIES) = %v, want empty", got)
	}
}

func TestTaxonsOfRankName(t *testing.T) {
	tree := buildTree(t, `<order name="Primates"><semiorder name="Haplorrhini"/></order>`)

	got, err := tree.TaxonsOfRankName("semiorder")
	if err != nil {
		t.Fatalf("TaxonsOfRankName: %v", err)
	}
	if len(got) != 1 || got[0].Clade() != "Haplorrhini" {
		t.Fatalf("TaxonsOfRankName(semiorder) = %v, want [Haplorrhini]", got)
	}
}

func TestTaxonsOfRankName_Unknown(t *testing.T) {
	tree := buildTree(t, primates)

	_, err := tree.TaxonsOfRankName("NOTAREALRANK")
	if !errors.Is(err, ErrUnknownRank) {
		t.Fatalf("TaxonsOfRankName error = %v, want ErrUnknownRank", err)
	}
}

func TestBuild_FromElement(t *testing.T) {
	tree := buildTree(t, primates)

	tx, err := tree.Taxon("Homo sapiens")
	if err != nil {
		t.Fatalf("Taxon: %v", err)
	}
	if tx == nil || tx.Rank() != Species {
		t.Fatalf("Taxon(Homo sapiens) = %v", tx)
	}
	want := "ORDER Primates SEMIORDER Haplorrhini SUBORDER Simiiformes " +
		"INFRAORDER Catarrhini SUPERFAMILY Hominoidea FAMILY Hominidae " +
		"GENUS Homo SPECIES Homo sapiens"
	if got := tx.Classification(); got != want {
		t.Errorf("Classification = %q, want %q", got, want)
	}
}

func TestDuplicateNames_LastWriteWins(t *testing.T) {
	tree := buildTree(t, `<order name="Primates">
		<semiorder name="Twin">
			<suborder name="Shared"/>
		</semiorder>
		<semiorder name="Other">
			<suborder name="Shared"/>
		</semiorder>
	</order>`)

	tx, err := tree.Taxon("Shared")
	if err != nil {
		t.Fatalf("Taxon: %v", err)
	}
	if tx == nil {
		t.Fatal("Taxon(Shared) = nil, want one of the duplicates")
	}
	if tx.Clade() != "Shared" {
		t.Errorf("Clade = %q, want Shared", tx.Clade())
	}
}
