package catalog

import (
	"strings"
	"testing"

	"github.com/verte-zerg/tuidrill/internal/model"
)

func TestMorseCategories(t *testing.T) {
	c := Morse()
	cases := []struct {
		name  string
		count int
		first string
		last  string
	}{
		{"Letters A-I", 9, "A", "I"},
		{"Letters J-R", 9, "J", "R"},
		{"Letters S-Z", 8, "S", "Z"},
		{"Digits 0-9", 10, "0", "9"},
		{"Punctuation (part 1)", 9, "!", ","},
		{"Punctuation (part 2)", 9, "-", "_"},
		{"Everything", 54, "A", "_"},
	}
	for _, tc := range cases {
		cat, ok := c.Category(tc.name)
		if !ok {
			t.Fatalf("missing category %q", tc.name)
		}
		if len(cat.Items) != tc.count {
			t.Fatalf("%s: expected %d items, got %d", tc.name, tc.count, len(cat.Items))
		}
		if cat.Items[0].Prompt != tc.first || cat.Items[len(cat.Items)-1].Prompt != tc.last {
			t.Fatalf("%s: unexpected bounds %q..%q", tc.name, cat.Items[0].Prompt, cat.Items[len(cat.Items)-1].Prompt)
		}
		if cat.Kind != model.AnswerSymbols {
			t.Fatalf("%s: expected symbol answers", tc.name)
		}
	}
}

func TestMorseAnswersUseOnlyDotsAndDashes(t *testing.T) {
	for _, entry := range Morse().Reference() {
		if strings.Trim(entry.Answer, ".-") != "" {
			t.Fatalf("unexpected symbol in %q: %q", entry.Prompt, entry.Answer)
		}
	}
}

func TestMorseReferenceOrder(t *testing.T) {
	ref := Morse().Reference()
	if len(ref) != 54 {
		t.Fatalf("expected 54 entries, got %d", len(ref))
	}
	if ref[0].Prompt != "A" || ref[25].Prompt != "Z" {
		t.Fatalf("expected letters first, got %q..%q", ref[0].Prompt, ref[25].Prompt)
	}
	if ref[26].Group != groupDigits || ref[26].Prompt != "0" {
		t.Fatalf("expected digits after letters, got %+v", ref[26])
	}
	if ref[36].Group != groupPunctuation {
		t.Fatalf("expected punctuation last, got %+v", ref[36])
	}
}

func TestVocabFragmentsCoverAnswers(t *testing.T) {
	c := Vocab()
	for _, cat := range c.Categories {
		if cat.Kind != model.AnswerPhrase {
			t.Fatalf("%s: expected phrase answers", cat.Name)
		}
		palette := map[string]bool{}
		for _, f := range cat.Fragments {
			palette[f] = true
		}
		for _, it := range cat.Items {
			for _, word := range strings.Fields(it.Answer) {
				if !palette[word] {
					t.Fatalf("%s: fragment %q of %q missing from palette", cat.Name, word, it.Prompt)
				}
			}
		}
	}
}

func TestVocabPromptsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, entry := range Vocab().Reference() {
		if seen[entry.Prompt] {
			t.Fatalf("duplicate prompt %q", entry.Prompt)
		}
		seen[entry.Prompt] = true
	}
}

func TestCategoryUnknown(t *testing.T) {
	if _, ok := Vocab().Category("Nope"); ok {
		t.Fatalf("expected unknown category lookup to fail")
	}
}
