package views

import (
	"fmt"
	"strings"

	"skillscout/internal/catalog"
	"skillscout/internal/tui/styles"
)

// SkillDetailActions is the number of selectable actions on the skill
// detail view: Install and View Creator.
const SkillDetailActions = 2

// RenderSkillDetail renders a single skill with its two actions. A stale
// skill name renders an inline not-found message instead of failing.
func RenderSkillDetail(skillName string, cursor int, copied bool) string {
	skill, ok := catalog.ByName(skillName)
	if !ok {
		return styles.ErrorMsg.Render("Skill not found: " + skillName)
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(skill.Name))
	b.WriteString("\n\n")
	b.WriteString(styles.SearchPrompt.Render("By @" + skill.Creator))
	b.WriteString(styles.Muted.Render(fmt.Sprintf(" · %s · %s installs",
		skill.Category, catalog.FormatInstallsExact(skill.Installs))))
	b.WriteString("\n\n")
	b.WriteString(skill.Description)
	b.WriteString("\n")

	if skill.Difficulty != "" {
		b.WriteString("\n" + styles.Muted.Render("Difficulty: "+skill.Difficulty))
	}
	if len(skill.GoodFor) > 0 {
		b.WriteString("\n" + styles.Muted.Render("Good for: "+strings.Join(skill.GoodFor, ", ")))
	}
	if skill.ExamplePrompt != "" {
		b.WriteString("\n" + styles.Muted.Render("Try: "+skill.ExamplePrompt))
	}
	b.WriteString("\n\n")

	installDesc := skill.InstallCommand
	if copied {
		installDesc = styles.SuccessMsg.Render("Copied to clipboard!")
	}
	b.WriteString(listItem("Install", installDesc, cursor == 0, "", 18))
	b.WriteString("\n")
	b.WriteString(listItem("View Creator", fmt.Sprintf("See @%s's profile", skill.Creator), cursor == 1, "", 18))
	return b.String()
}

// RenderCategoryDetail renders the skills of one category, filterable.
func RenderCategoryDetail(category string, cursor int, filter string) string {
	skills := filterSkills(catalog.ByCategory(category), filter)

	var b strings.Builder
	b.WriteString(styles.Title.Render(category))
	n := CategorySkillCount(category, "")
	b.WriteString(styles.Muted.Render(fmt.Sprintf(" · %d skill%s", n, plural(n))))
	b.WriteString("\n\n")

	if len(skills) == 0 {
		if filter != "" {
			b.WriteString("  " + styles.Muted.Render("No matching skills"))
		} else {
			b.WriteString("  " + styles.Muted.Render("No skills in this category"))
		}
		return b.String()
	}

	for i, s := range skills {
		desc := catalog.FormatInstalls(s.Installs) + " installs"
		b.WriteString(listItem(s.Name, desc, i == cursor, "", 22))
		if i < len(skills)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderCreatorDetail renders a creator profile with their skill list.
func RenderCreatorDetail(handle string, cursor int) string {
	creator, ok := catalog.CreatorByHandle(handle)
	if !ok {
		return styles.ErrorMsg.Render("Creator not found: @" + handle)
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("@" + creator.Handle))
	b.WriteString(styles.Muted.Render(" · " + creator.Name))
	b.WriteString("\n\n")
	b.WriteString(creator.Bio)
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("github.com/" + creator.GitHub))
	b.WriteString("\n\n")

	skills := catalog.ByCreator(handle)
	if len(skills) == 0 {
		b.WriteString("  " + styles.Muted.Render("No published skills"))
		return b.String()
	}
	for i, s := range skills {
		desc := fmt.Sprintf("%s · %s installs", s.Category, catalog.FormatInstalls(s.Installs))
		b.WriteString(listItem(s.Name, desc, i == cursor, "", 22))
		if i < len(skills)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
