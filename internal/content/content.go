package content

import "strings"

// DefaultLang is the language whose copy is authoritative.
const DefaultLang = "pt"

// Item is the copy and icon of a single card.
type Item struct {
	OrderLabel  string // optional sequence marker, e.g. "01"
	Title       string
	Description string
	Icon        string
}

// Plan describes one pricing tier. PriceMinor is in the currency's minor unit.
type Plan struct {
	Name        string
	PriceMinor  int64
	Currency    string
	Period      string
	Description string
	Features    []string
	Highlight   bool
	CTALabel    string
}

// FAQEntry is a question with a markdown answer.
type FAQEntry struct {
	Question string
	Answer   string
}

// Catalog groups every static sequence shown on the landing page for one language.
type Catalog struct {
	HowItWorks []Item
	Features   []Item
	Plans      []Plan
	CTA        []Item
	FAQ        []FAQEntry
}

var catalogs = map[string]Catalog{
	"pt": catalogPT,
	"en": catalogEN,
}

// Languages lists the languages with a catalog, default first.
func Languages() []string {
	return []string{"pt", "en"}
}

// Normalize maps a language tag such as "pt-BR" to a catalog key, falling back to DefaultLang.
func Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i != -1 {
		lang = lang[:i]
	}
	if _, ok := catalogs[lang]; ok {
		return lang
	}
	return DefaultLang
}

// For returns a copy of the catalog for lang. Mutating the result never affects later calls.
func For(lang string) Catalog {
	c := catalogs[Normalize(lang)]
	return Catalog{
		HowItWorks: cloneItems(c.HowItWorks),
		Features:   cloneItems(c.Features),
		Plans:      clonePlans(c.Plans),
		CTA:        cloneItems(c.CTA),
		FAQ:        append([]FAQEntry(nil), c.FAQ...),
	}
}

// HowItWorks returns the ordered step list.
func HowItWorks(lang string) []Item { return cloneItems(catalogs[Normalize(lang)].HowItWorks) }

// Features returns the feature cards.
func Features(lang string) []Item { return cloneItems(catalogs[Normalize(lang)].Features) }

// CTA returns the call-to-action highlights.
func CTA(lang string) []Item { return cloneItems(catalogs[Normalize(lang)].CTA) }

func cloneItems(in []Item) []Item {
	if in == nil {
		return nil
	}
	return append([]Item(nil), in...)
}

func clonePlans(in []Plan) []Plan {
	if in == nil {
		return nil
	}
	out := make([]Plan, len(in))
	for i, p := range in {
		p.Features = append([]string(nil), p.Features...)
		out[i] = p
	}
	return out
}
