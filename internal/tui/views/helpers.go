package views

import (
	"strings"

	"skillscout/internal/catalog"
)

// Each list-like view exposes a Count/At pair built on the exact predicate
// its renderer uses, so the state machine can clamp cursors without
// rendering. At(i, f) returns ok=false iff i is outside [0, Count(f)).

func matchesSkill(s catalog.Skill, filter string) bool {
	if filter == "" {
		return true
	}
	f := strings.ToLower(filter)
	return strings.Contains(strings.ToLower(s.Name), f) ||
		strings.Contains(strings.ToLower(s.Description), f)
}

func filterSkills(skills []catalog.Skill, filter string) []catalog.Skill {
	if filter == "" {
		return skills
	}
	var out []catalog.Skill
	for _, s := range skills {
		if matchesSkill(s, filter) {
			out = append(out, s)
		}
	}
	return out
}

// PopularCount returns the number of popular-tab rows for the filter.
func PopularCount(filter string) int {
	return len(filterSkills(catalog.Popular(), filter))
}

// PopularAt returns the popular-tab skill at index under the filter.
func PopularAt(index int, filter string) (catalog.Skill, bool) {
	skills := filterSkills(catalog.Popular(), filter)
	if index < 0 || index >= len(skills) {
		return catalog.Skill{}, false
	}
	return skills[index], true
}

func filterCategories(filter string) []string {
	cats := catalog.Categories()
	if filter == "" {
		return cats
	}
	f := strings.ToLower(filter)
	var out []string
	for _, c := range cats {
		if strings.Contains(strings.ToLower(c), f) {
			out = append(out, c)
		}
	}
	return out
}

// BrowseCount returns the number of categories matching the filter.
func BrowseCount(filter string) int {
	return len(filterCategories(filter))
}

// CategoryAt returns the browse-tab category at index under the filter.
func CategoryAt(index int, filter string) (string, bool) {
	cats := filterCategories(filter)
	if index < 0 || index >= len(cats) {
		return "", false
	}
	return cats[index], true
}

// SearchCount returns the number of search results; no filter means none.
func SearchCount(filter string) int {
	return len(catalog.Search(filter))
}

// SearchAt returns the search result at index.
func SearchAt(index int, filter string) (catalog.Skill, bool) {
	skills := catalog.Search(filter)
	if index < 0 || index >= len(skills) {
		return catalog.Skill{}, false
	}
	return skills[index], true
}

func filterCreators(filter string) []catalog.Creator {
	creators := catalog.Creators()
	if filter == "" {
		return creators
	}
	f := strings.ToLower(filter)
	var out []catalog.Creator
	for _, c := range creators {
		if strings.Contains(strings.ToLower(c.Handle), f) ||
			strings.Contains(strings.ToLower(c.Name), f) {
			out = append(out, c)
		}
	}
	return out
}

// CreatorsCount returns the number of creators matching the filter.
func CreatorsCount(filter string) int {
	return len(filterCreators(filter))
}

// CreatorAt returns the creators-tab entry at index under the filter.
func CreatorAt(index int, filter string) (catalog.Creator, bool) {
	creators := filterCreators(filter)
	if index < 0 || index >= len(creators) {
		return catalog.Creator{}, false
	}
	return creators[index], true
}

// CategorySkillCount intersects category membership with the free-text
// filter.
func CategorySkillCount(category, filter string) int {
	return len(filterSkills(catalog.ByCategory(category), filter))
}

// CategorySkillAt returns the category-detail skill at index.
func CategorySkillAt(category string, index int, filter string) (catalog.Skill, bool) {
	skills := filterSkills(catalog.ByCategory(category), filter)
	if index < 0 || index >= len(skills) {
		return catalog.Skill{}, false
	}
	return skills[index], true
}

// CreatorSkillCount returns the size of a creator's skill list. Creator
// lists are not text-filterable.
func CreatorSkillCount(handle string) int {
	return len(catalog.ByCreator(handle))
}

// CreatorSkillAt returns the creator-detail skill at index.
func CreatorSkillAt(handle string, index int) (catalog.Skill, bool) {
	skills := catalog.ByCreator(handle)
	if index < 0 || index >= len(skills) {
		return catalog.Skill{}, false
	}
	return skills[index], true
}
