// Package catalog holds the fixed item tables for both drills.
package catalog

import (
	"sort"
	"strings"

	"github.com/verte-zerg/tuidrill/internal/model"
)

// Catalog is an immutable set of categories for one drill.
type Catalog struct {
	App        string
	Title      string
	Kind       model.AnswerKind
	Categories []model.Category

	reference []model.ReferenceEntry
}

// Category returns the category with the given name.
func (c *Catalog) Category(name string) (model.Category, bool) {
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return model.Category{}, false
}

// Reference returns every known prompt/answer pair sorted by group then prompt.
// The returned slice must not be modified.
func (c *Catalog) Reference() []model.ReferenceEntry {
	return c.reference
}

func sortReference(entries []model.ReferenceEntry, groupOrder []string) {
	rank := make(map[string]int, len(groupOrder))
	for i, g := range groupOrder {
		rank[g] = i
	}
	sort.SliceStable(entries, func(i, j int) bool {
		ri, rj := rank[entries[i].Group], rank[entries[j].Group]
		if ri != rj {
			return ri < rj
		}
		return entries[i].Prompt < entries[j].Prompt
	})
}

// fragmentsOf returns the sorted set of words used by the items' answers.
func fragmentsOf(items []model.Item) []string {
	seen := map[string]struct{}{}
	for _, it := range items {
		for _, word := range strings.Fields(it.Answer) {
			seen[word] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for word := range seen {
		out = append(out, word)
	}
	sort.Strings(out)
	return out
}
