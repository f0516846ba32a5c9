package catalog

import "github.com/verte-zerg/tuidrill/internal/model"

// VocabApp identifies the terminology drill in the run log.
const VocabApp = "vocab"

type vocabGroup struct {
	name  string
	items []model.Item
}

var vocabGroups = []vocabGroup{
	{
		name: "Safety systems",
		items: []model.Item{
			{Prompt: "ABS", Answer: "anti-lock braking system"},
			{Prompt: "ESP", Answer: "electronic stability program"},
			{Prompt: "TPMS", Answer: "tyre pressure monitoring system"},
			{Prompt: "ACC", Answer: "adaptive cruise control"},
			{Prompt: "AEB", Answer: "autonomous emergency braking"},
			{Prompt: "LDW", Answer: "lane departure warning"},
		},
	},
	{
		name: "Powertrain",
		items: []model.Item{
			{Prompt: "ECU", Answer: "engine control unit"},
			{Prompt: "EGR", Answer: "exhaust gas recirculation"},
			{Prompt: "DPF", Answer: "diesel particulate filter"},
			{Prompt: "CVT", Answer: "continuously variable transmission"},
			{Prompt: "DSG", Answer: "direct shift gearbox"},
			{Prompt: "AWD", Answer: "all wheel drive"},
			{Prompt: "TCU", Answer: "transmission control unit"},
		},
	},
	{
		name: "Diagnostics",
		items: []model.Item{
			{Prompt: "OBD", Answer: "on board diagnostics"},
			{Prompt: "DTC", Answer: "diagnostic trouble code"},
			{Prompt: "MIL", Answer: "malfunction indicator lamp"},
			{Prompt: "CAN", Answer: "controller area network"},
			{Prompt: "MAF", Answer: "mass air flow"},
			{Prompt: "VIN", Answer: "vehicle identification number"},
		},
	},
}

// Vocab builds the automotive terminology catalog.
func Vocab() *Catalog {
	c := &Catalog{
		App:   VocabApp,
		Title: "Automotive terminology drill",
		Kind:  model.AnswerPhrase,
	}
	var all []model.Item
	var entries []model.ReferenceEntry
	order := make([]string, 0, len(vocabGroups))
	for _, g := range vocabGroups {
		items := append([]model.Item(nil), g.items...)
		c.Categories = append(c.Categories, phraseCategory(g.name, items))
		all = append(all, items...)
		order = append(order, g.name)
		for _, it := range items {
			entries = append(entries, model.ReferenceEntry{Group: g.name, Prompt: it.Prompt, Answer: it.Answer})
		}
	}
	c.Categories = append(c.Categories, phraseCategory("Everything", all))
	sortReference(entries, order)
	c.reference = entries
	return c
}

func phraseCategory(name string, items []model.Item) model.Category {
	return model.Category{
		Name:      name,
		Kind:      model.AnswerPhrase,
		Items:     items,
		Fragments: fragmentsOf(items),
	}
}
