// Package catalog provides read-only access to the static skill catalog.
// All accessors are pure: lookups that miss return ok=false, never an error.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Skill is one installable catalog entry.
type Skill struct {
	Name           string   `yaml:"name"`
	Description    string   `yaml:"description"`
	Category       string   `yaml:"category"`
	Creator        string   `yaml:"creator"` // Creator.Handle, by value
	Installs       int      `yaml:"installs"`
	InstallCommand string   `yaml:"install_command"`
	Difficulty     string   `yaml:"difficulty,omitempty"`
	GoodFor        []string `yaml:"good_for,omitempty"`
	ExamplePrompt  string   `yaml:"example_prompt,omitempty"`
	BuiltIn        bool     `yaml:"built_in,omitempty"`
}

// Creator is the author of one or more skills.
type Creator struct {
	Handle string `yaml:"handle"`
	Name   string `yaml:"name"`
	Bio    string `yaml:"bio"`
	GitHub string `yaml:"github"`
}

type index struct {
	Skills   []Skill   `yaml:"skills"`
	Creators []Creator `yaml:"creators"`
}

//go:embed catalog.yaml
var catalogYAML []byte

var data index

func init() {
	if err := yaml.Unmarshal(catalogYAML, &data); err != nil {
		panic(fmt.Sprintf("catalog: bad embedded catalog.yaml: %v", err))
	}
}

// All returns every skill in catalog order.
func All() []Skill {
	return data.Skills
}

// Creators returns every creator in catalog order.
func Creators() []Creator {
	return data.Creators
}

// Categories returns the distinct skill categories, sorted lexicographically.
func Categories() []string {
	seen := map[string]bool{}
	var cats []string
	for _, s := range data.Skills {
		if !seen[s.Category] {
			seen[s.Category] = true
			cats = append(cats, s.Category)
		}
	}
	sort.Strings(cats)
	return cats
}

// ByCategory returns skills in the given category, preserving catalog order.
func ByCategory(category string) []Skill {
	var out []Skill
	for _, s := range data.Skills {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// ByName looks up a skill by its unique name.
func ByName(name string) (Skill, bool) {
	for _, s := range data.Skills {
		if s.Name == name {
			return s, true
		}
	}
	return Skill{}, false
}

// CreatorByHandle looks up a creator by handle.
func CreatorByHandle(handle string) (Creator, bool) {
	for _, c := range data.Creators {
		if c.Handle == handle {
			return c, true
		}
	}
	return Creator{}, false
}

// ByCreator returns the skills published under the given creator handle.
func ByCreator(handle string) []Skill {
	var out []Skill
	for _, s := range data.Skills {
		if s.Creator == handle {
			out = append(out, s)
		}
	}
	return out
}

// Popular returns all skills sorted by installs descending. The sort is
// stable so ties keep catalog order.
func Popular() []Skill {
	out := make([]Skill, len(data.Skills))
	copy(out, data.Skills)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Installs > out[j].Installs
	})
	return out
}

// Search matches the query case-insensitively against skill names and
// descriptions. An empty query matches nothing.
func Search(query string) []Skill {
	if query == "" {
		return nil
	}
	q := strings.ToLower(query)
	var out []Skill
	for _, s := range data.Skills {
		if strings.Contains(strings.ToLower(s.Name), q) ||
			strings.Contains(strings.ToLower(s.Description), q) {
			out = append(out, s)
		}
	}
	return out
}

// FormatInstalls renders an install count compactly (1286 -> "1.3k").
func FormatInstalls(n int) string {
	if n >= 1000 {
		return fmt.Sprintf("%.1fk", float64(n)/1000)
	}
	return fmt.Sprintf("%d", n)
}

// FormatInstallsExact renders an install count with thousands separators
// (2341 -> "2,341").
func FormatInstallsExact(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
