package views

import (
	"testing"

	"skillscout/internal/catalog"
)

// checkPair verifies the Count/At contract: At answers ok exactly for
// indices inside [0, count).
func checkPair(t *testing.T, name string, count int, at func(int) bool) {
	t.Helper()
	for i := 0; i < count; i++ {
		if !at(i) {
			t.Errorf("%s: At(%d) missed with count %d", name, i, count)
		}
	}
	if at(-1) {
		t.Errorf("%s: At(-1) should miss", name)
	}
	if at(count) {
		t.Errorf("%s: At(%d) should miss with count %d", name, count, count)
	}
}

func TestCountAtContract(t *testing.T) {
	filters := []string{"", "e", "python", "zzz-no-match"}

	for _, f := range filters {
		checkPair(t, "popular/"+f, PopularCount(f), func(i int) bool {
			_, ok := PopularAt(i, f)
			return ok
		})
		checkPair(t, "browse/"+f, BrowseCount(f), func(i int) bool {
			_, ok := CategoryAt(i, f)
			return ok
		})
		checkPair(t, "search/"+f, SearchCount(f), func(i int) bool {
			_, ok := SearchAt(i, f)
			return ok
		})
		checkPair(t, "creators/"+f, CreatorsCount(f), func(i int) bool {
			_, ok := CreatorAt(i, f)
			return ok
		})
	}

	for _, category := range catalog.Categories() {
		checkPair(t, "category/"+category, CategorySkillCount(category, ""), func(i int) bool {
			_, ok := CategorySkillAt(category, i, "")
			return ok
		})
	}

	for _, c := range catalog.Creators() {
		handle := c.Handle
		checkPair(t, "creator/"+handle, CreatorSkillCount(handle), func(i int) bool {
			_, ok := CreatorSkillAt(handle, i)
			return ok
		})
	}
}

func TestPopularAt_FirstIsMostInstalled(t *testing.T) {
	skill, ok := PopularAt(0, "")
	if !ok {
		t.Fatal("empty filter should show the whole catalog")
	}
	if skill.Name != "docx" {
		t.Errorf("top popular skill = %s, want docx", skill.Name)
	}
}

func TestSearchCount_EmptyFilterShowsNothing(t *testing.T) {
	if n := SearchCount(""); n != 0 {
		t.Errorf("search with empty filter should be empty, got %d", n)
	}
	if _, ok := SearchAt(0, ""); ok {
		t.Error("SearchAt should miss with empty filter")
	}
}

func TestPopularCount_FilterNarrows(t *testing.T) {
	all := PopularCount("")
	if all != 10 {
		t.Fatalf("unfiltered popular count = %d, want 10", all)
	}
	if n := PopularCount("pdf"); n == 0 || n >= all {
		t.Errorf("filter pdf should narrow the list, got %d of %d", n, all)
	}
	if n := PopularCount("zzz-no-match"); n != 0 {
		t.Errorf("impossible filter matched %d skills", n)
	}
}

func TestCategorySkillAt_RespectsFilter(t *testing.T) {
	// python-development lives in Development.
	found := false
	for i := 0; i < CategorySkillCount("Development", "python"); i++ {
		if s, ok := CategorySkillAt("Development", i, "python"); ok && s.Name == "python-development" {
			found = true
		}
	}
	if !found {
		t.Error("python filter should keep python-development in Development")
	}

	if n := CategorySkillCount("Development", "zzz-no-match"); n != 0 {
		t.Errorf("impossible filter matched %d skills", n)
	}
}

func TestCreatorSkillAt_UnknownHandle(t *testing.T) {
	if n := CreatorSkillCount("nobody"); n != 0 {
		t.Errorf("unknown creator has %d skills", n)
	}
	if _, ok := CreatorSkillAt("nobody", 0); ok {
		t.Error("CreatorSkillAt should miss for unknown handle")
	}
}

func TestCommandCountAt(t *testing.T) {
	if n := CommandCount("/"); n != 1 {
		t.Fatalf("bare slash should list every command, got %d", n)
	}
	cmd, ok := CommandAt(0, "/sk")
	if !ok {
		t.Fatal("prefix /sk should match /skills")
	}
	if cmd.Name != "/skills" {
		t.Errorf("matched %s, want /skills", cmd.Name)
	}

	if n := CommandCount("/nope"); n != 0 {
		t.Errorf("impossible command filter matched %d", n)
	}
	if _, ok := CommandAt(0, "/nope"); ok {
		t.Error("CommandAt should miss when nothing matches")
	}
}
