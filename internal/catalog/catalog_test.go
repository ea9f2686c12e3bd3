package catalog

import (
	"sort"
	"strings"
	"testing"
)

func TestAll_CatalogShape(t *testing.T) {
	skills := All()
	if len(skills) != 10 {
		t.Fatalf("expected 10 skills, got %d", len(skills))
	}
	for _, s := range skills {
		if s.Name == "" || s.Category == "" || s.Creator == "" {
			t.Errorf("skill %+v is missing required fields", s)
		}
		if s.InstallCommand == "" {
			t.Errorf("skill %s has no install command", s.Name)
		}
	}
}

func TestCreators_CatalogShape(t *testing.T) {
	creators := Creators()
	if len(creators) != 5 {
		t.Fatalf("expected 5 creators, got %d", len(creators))
	}
	for _, c := range creators {
		if c.Handle == "" || c.Name == "" {
			t.Errorf("creator %+v is missing required fields", c)
		}
	}
}

func TestCategories_SortedAndDistinct(t *testing.T) {
	categories := Categories()
	if len(categories) != 6 {
		t.Fatalf("expected 6 categories, got %d: %v", len(categories), categories)
	}
	if !sort.StringsAreSorted(categories) {
		t.Errorf("categories not sorted: %v", categories)
	}
	seen := map[string]bool{}
	for _, c := range categories {
		if seen[c] {
			t.Errorf("duplicate category %q", c)
		}
		seen[c] = true
	}
}

func TestByCategory_AllSkillsAccountedFor(t *testing.T) {
	total := 0
	for _, category := range Categories() {
		skills := ByCategory(category)
		if len(skills) == 0 {
			t.Errorf("category %q has no skills", category)
		}
		for _, s := range skills {
			if s.Category != category {
				t.Errorf("skill %s in wrong category bucket %q", s.Name, category)
			}
		}
		total += len(skills)
	}
	if total != len(All()) {
		t.Errorf("category buckets hold %d skills, catalog has %d", total, len(All()))
	}
}

func TestPopular_DescendingInstalls(t *testing.T) {
	popular := Popular()
	if len(popular) != len(All()) {
		t.Fatalf("popular list has %d skills, catalog has %d", len(popular), len(All()))
	}
	if popular[0].Name != "docx" {
		t.Errorf("expected docx first, got %s", popular[0].Name)
	}
	if popular[0].Installs != 2341 {
		t.Errorf("expected docx installs 2341, got %d", popular[0].Installs)
	}
	for i := 1; i < len(popular); i++ {
		if popular[i].Installs > popular[i-1].Installs {
			t.Errorf("popular list out of order at %d: %d > %d", i, popular[i].Installs, popular[i-1].Installs)
		}
	}
}

func TestPopular_DoesNotMutateCatalogOrder(t *testing.T) {
	before := make([]string, 0, len(All()))
	for _, s := range All() {
		before = append(before, s.Name)
	}

	Popular()

	for i, s := range All() {
		if s.Name != before[i] {
			t.Fatalf("catalog order changed at %d: %s != %s", i, s.Name, before[i])
		}
	}
}

func TestByName(t *testing.T) {
	skill, ok := ByName("dev-browser")
	if !ok {
		t.Fatal("dev-browser not found")
	}
	if skill.Creator != "SawyerHood" {
		t.Errorf("dev-browser creator = %q, want SawyerHood", skill.Creator)
	}

	if _, ok := ByName("no-such-skill"); ok {
		t.Error("expected miss for unknown skill")
	}
}

func TestCreatorByHandle(t *testing.T) {
	creator, ok := CreatorByHandle("anthropic")
	if !ok {
		t.Fatal("anthropic not found")
	}
	if creator.Name != "Anthropic" {
		t.Errorf("creator name = %q, want Anthropic", creator.Name)
	}

	if _, ok := CreatorByHandle("nobody"); ok {
		t.Error("expected miss for unknown handle")
	}
}

func TestByCreator(t *testing.T) {
	total := 0
	for _, c := range Creators() {
		skills := ByCreator(c.Handle)
		if len(skills) == 0 {
			t.Errorf("creator %s has no skills", c.Handle)
		}
		for _, s := range skills {
			if s.Creator != c.Handle {
				t.Errorf("skill %s attributed to %s", s.Name, c.Handle)
			}
		}
		total += len(skills)
	}
	if total != len(All()) {
		t.Errorf("creator buckets hold %d skills, catalog has %d", total, len(All()))
	}
}

func TestSearch(t *testing.T) {
	if got := Search(""); got != nil {
		t.Errorf("empty query should match nothing, got %d results", len(got))
	}

	results := Search("python")
	found := false
	for _, s := range results {
		if s.Name == "python-development" {
			found = true
		}
	}
	if !found {
		t.Errorf("search(python) missing python-development: %v", results)
	}

	// Case insensitive, and description text counts too.
	if len(Search("PYTHON")) != len(results) {
		t.Error("search should be case insensitive")
	}

	for _, s := range Search("documents") {
		lower := strings.ToLower(s.Name + " " + s.Description)
		if !strings.Contains(lower, "documents") {
			t.Errorf("result %s does not contain query", s.Name)
		}
	}
}

func TestFormatInstalls(t *testing.T) {
	cases := []struct {
		installs int
		want     string
	}{
		{203, "203"},
		{999, "999"},
		{1286, "1.3k"},
		{2341, "2.3k"},
	}
	for _, c := range cases {
		if got := FormatInstalls(c.installs); got != c.want {
			t.Errorf("FormatInstalls(%d) = %q, want %q", c.installs, got, c.want)
		}
	}
}

func TestFormatInstallsExact(t *testing.T) {
	cases := []struct {
		installs int
		want     string
	}{
		{203, "203"},
		{2341, "2,341"},
		{1000000, "1,000,000"},
	}
	for _, c := range cases {
		if got := FormatInstallsExact(c.installs); got != c.want {
			t.Errorf("FormatInstallsExact(%d) = %q, want %q", c.installs, got, c.want)
		}
	}
}
