package views

import (
	"fmt"
	"strings"

	"skillscout/internal/catalog"
	"skillscout/internal/tui/styles"
)

// listItem renders one selectable row: an optional prefix, a padded label,
// and a muted description.
func listItem(label, description string, selected bool, prefix string, labelWidth int) string {
	padded := fmt.Sprintf("%-*s", labelWidth, label)
	var row string
	if selected {
		row = styles.SelectedItem.Render(padded)
	} else {
		row = styles.NormalItem.Render(padded)
	}
	if prefix != "" {
		row = fmt.Sprintf("%3s ", prefix) + row
	} else {
		row = "    " + row
	}
	if description != "" {
		row += "  " + styles.Muted.Render(description)
	}
	return row
}

// RenderPopular renders the popular tab: skills by install count descending.
func RenderPopular(cursor int, filter string) string {
	skills := filterSkills(catalog.Popular(), filter)
	if len(skills) == 0 {
		if filter != "" {
			return "  " + styles.Muted.Render("No matching skills")
		}
		return ""
	}

	var b strings.Builder
	for i, s := range skills {
		desc := fmt.Sprintf("%s · %s installs", s.Category, catalog.FormatInstalls(s.Installs))
		b.WriteString(listItem(s.Name, desc, i == cursor, fmt.Sprintf("%d.", i+1), 22))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderBrowse renders the browse tab: one row per category.
func RenderBrowse(cursor int, filter string) string {
	cats := filterCategories(filter)
	if len(cats) == 0 {
		if filter != "" {
			return "  " + styles.Muted.Render("No matching categories")
		}
		return ""
	}

	var b strings.Builder
	for i, cat := range cats {
		n := len(catalog.ByCategory(cat))
		desc := fmt.Sprintf("%d skill%s", n, plural(n))
		b.WriteString(listItem(cat, desc, i == cursor, "", 25))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderSearch renders the search tab. Results appear only once the user
// has typed something.
func RenderSearch(cursor int, filter string) string {
	if filter == "" {
		return "  " + styles.Muted.Render("Type to search skills by name or description")
	}
	skills := catalog.Search(filter)
	if len(skills) == 0 {
		return "  " + styles.Muted.Render(fmt.Sprintf("No results for %q", filter))
	}

	var b strings.Builder
	for i, s := range skills {
		b.WriteString(listItem(s.Name, s.Category, i == cursor, "", 22))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderCreators renders the creators tab.
func RenderCreators(cursor int, filter string) string {
	creators := filterCreators(filter)
	if len(creators) == 0 {
		if filter != "" {
			return "  " + styles.Muted.Render("No matching creators")
		}
		return ""
	}

	var b strings.Builder
	for i, c := range creators {
		b.WriteString(listItem("@"+c.Handle, c.Name, i == cursor, "", 20))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
