package catalog_test

import (
	"testing"

	"dunestore/internal/catalog"
	"dunestore/internal/domain"
)

func cat(id, name string, parent *string) domain.Category {
	return domain.Category{ID: id, Name: name, ParentID: parent}
}

func sp(s string) *string { return &s }

func TestBuildNestedForest(t *testing.T) {
	f := catalog.Build([]domain.Category{
		cat("c1", "Electronics", nil),
		cat("c2", "Phones", sp("c1")),
		cat("c3", "Laptops", sp("c1")),
		cat("c4", "Accessories", sp("c2")),
		cat("c5", "Home", nil),
	})
	if len(f.Issues) != 0 {
		t.Fatalf("unexpected issues: %v", f.Issues)
	}
	if len(f.Roots) != 2 {
		t.Fatalf("want 2 roots, got %d", len(f.Roots))
	}
	elec := f.Roots[0]
	if elec.Category.Name != "Electronics" || len(elec.Children) != 2 {
		t.Fatalf("bad root: %+v", elec)
	}
	if elec.Children[0].Category.Name != "Phones" || len(elec.Children[0].Children) != 1 {
		t.Fatalf("Phones subtree wrong: %+v", elec.Children[0])
	}
}

func TestNamesInScope(t *testing.T) {
	f := catalog.Build([]domain.Category{
		cat("c1", "Electronics", nil),
		cat("c2", "Phones", sp("c1")),
		cat("c3", "Laptops", sp("c1")),
	})

	scope := f.NamesInScope("Electronics")
	for _, want := range []string{"Electronics", "Phones", "Laptops"} {
		if _, ok := scope[want]; !ok {
			t.Fatalf("scope missing %q: %v", want, scope)
		}
	}
	if len(scope) != 3 {
		t.Fatalf("want 3 names, got %v", scope)
	}

	leaf := f.NamesInScope("Phones")
	if len(leaf) != 1 {
		t.Fatalf("leaf scope should be itself only, got %v", leaf)
	}
	if _, ok := leaf["Phones"]; !ok {
		t.Fatalf("leaf scope missing Phones: %v", leaf)
	}

	if got := f.NamesInScope(""); len(got) != 0 {
		t.Fatalf("empty target must give empty set, got %v", got)
	}
	if got := f.NamesInScope("Nope"); len(got) != 0 {
		t.Fatalf("unknown target must give empty set, got %v", got)
	}
}

func TestFlattenIndentedPreorder(t *testing.T) {
	f := catalog.Build([]domain.Category{
		cat("c1", "Electronics", nil),
		cat("c2", "Phones", sp("c1")),
		cat("c4", "Cases", sp("c2")),
		cat("c3", "Laptops", sp("c1")),
		cat("c5", "Home", nil),
	})
	rows := f.FlattenIndented()
	wantNames := []string{"Electronics", "Phones", "Cases", "Laptops", "Home"}
	wantLevels := []int{0, 1, 2, 1, 0}
	if len(rows) != len(wantNames) {
		t.Fatalf("want %d rows, got %d: %+v", len(wantNames), len(rows), rows)
	}
	for i, r := range rows {
		if r.Name != wantNames[i] || r.Level != wantLevels[i] {
			t.Fatalf("row %d = %+v, want %s@%d", i, r, wantNames[i], wantLevels[i])
		}
	}
}

func TestBuildReportsCycles(t *testing.T) {
	f := catalog.Build([]domain.Category{
		cat("a", "A", sp("b")),
		cat("b", "B", sp("a")),
		cat("r", "Root", nil),
	})
	if len(f.Roots) != 1 || f.Roots[0].Category.Name != "Root" {
		t.Fatalf("want only Root placed, got %+v", f.Roots)
	}
	if len(f.Issues) == 0 {
		t.Fatal("cycle must be reported as an issue")
	}
}

func TestBuildReportsDanglingParent(t *testing.T) {
	f := catalog.Build([]domain.Category{
		cat("c1", "Top", nil),
		cat("c2", "Orphan", sp("ghost")),
	})
	if len(f.Roots) != 1 {
		t.Fatalf("orphan must not attach anywhere: %+v", f.Roots)
	}
	if len(f.Issues) == 0 {
		t.Fatal("dangling parent must be reported")
	}
}
