package nav

import "strings"

// LoginPath is the route of the external login page.
const LoginPath = "/login"

// Section anchors exposed by the landing page.
const (
	AnchorHowItWorks = "como-funciona"
	AnchorPricing    = "planos"
	AnchorAbout      = "sobre"
	AnchorContact    = "contato"
	AnchorFAQ        = "faq"
)

// Item represents a navigation link. Href is either a route or an in-page "#anchor".
type Item struct {
	Href     string
	LabelKey string // i18n key, e.g. "nav.how"
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href     string
	LabelKey string
	Anchor   bool
	External bool
}

// Group is a titled column of footer links.
type Group struct {
	TitleKey string
	Items    []RenderedItem
}

// Main is the header navigation definition.
var Main = []Item{
	{Href: "#" + AnchorHowItWorks, LabelKey: "nav.how"},
	{Href: "#" + AnchorAbout, LabelKey: "nav.about"},
	{Href: "#" + AnchorPricing, LabelKey: "nav.pricing"},
	{Href: "#" + AnchorFAQ, LabelKey: "nav.faq"},
	{Href: "#" + AnchorContact, LabelKey: "nav.contact"},
}

// Footer lists the footer link columns.
var Footer = []struct {
	TitleKey string
	Items    []Item
}{
	{
		TitleKey: "footer.product",
		Items: []Item{
			{Href: "#" + AnchorHowItWorks, LabelKey: "nav.how"},
			{Href: "#" + AnchorPricing, LabelKey: "nav.pricing"},
			{Href: "#" + AnchorFAQ, LabelKey: "nav.faq"},
		},
	},
	{
		TitleKey: "footer.company",
		Items: []Item{
			{Href: "#" + AnchorAbout, LabelKey: "nav.about"},
			{Href: "#" + AnchorContact, LabelKey: "nav.contact"},
			{Href: LoginPath, LabelKey: "footer.login"},
		},
	},
}

// Build renders the header navigation.
func Build() []RenderedItem {
	return render(Main)
}

// BuildFooter renders the footer link columns.
func BuildFooter() []Group {
	groups := make([]Group, 0, len(Footer))
	for _, g := range Footer {
		groups = append(groups, Group{TitleKey: g.TitleKey, Items: render(g.Items)})
	}
	return groups
}

// Anchors returns every in-page anchor referenced by the header and footer, without "#".
func Anchors() []string {
	seen := map[string]bool{}
	var out []string
	add := func(items []Item) {
		for _, it := range items {
			if a, ok := strings.CutPrefix(it.Href, "#"); ok && !seen[a] {
				seen[a] = true
				out = append(out, a)
			}
		}
	}
	add(Main)
	for _, g := range Footer {
		add(g.Items)
	}
	return out
}

func render(items []Item) []RenderedItem {
	out := make([]RenderedItem, 0, len(items))
	for _, it := range items {
		out = append(out, RenderedItem{
			Href:     it.Href,
			LabelKey: it.LabelKey,
			Anchor:   strings.HasPrefix(it.Href, "#"),
			External: strings.HasPrefix(it.Href, "http://") || strings.HasPrefix(it.Href, "https://"),
		})
	}
	return out
}
