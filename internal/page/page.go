// Package page assembles the landing page: Header, then Hero, HowItWorks,
// Features, Pricing and CTA in that order, then Footer.
package page

import (
	"fmt"
	"html/template"
	"time"

	"mariah.app/web/internal/content"
	"mariah.app/web/internal/format"
	"mariah.app/web/internal/markup"
	"mariah.app/web/internal/nav"
	"mariah.app/web/internal/reveal"
	"mariah.app/web/internal/section"
	"mariah.app/web/internal/seo"
	"mariah.app/web/internal/theme"
)

// Kind identifies a top-level block of the page.
type Kind string

const (
	KindHero       Kind = "hero"
	KindHowItWorks Kind = "how-it-works"
	KindFeatures   Kind = "features"
	KindPricing    Kind = "pricing"
	KindCTA        Kind = "cta"
)

// Order is the fixed top-to-bottom order of blocks.
var Order = []Kind{KindHero, KindHowItWorks, KindFeatures, KindPricing, KindCTA}

const (
	productName = "Mariah"
	heroImage   = "/images/mariah.png"
	heroID      = "inicio"
	ctaID       = "comecar"
)

// Translator looks up chrome copy by key.
type Translator interface {
	T(lang, key string) string
}

// Input carries everything that varies between renders.
type Input struct {
	Lang         string
	Languages    []string
	Now          time.Time
	Policy       reveal.Policy
	BaseURL      string
	ContactEmail string
	Theme        *theme.Theme
}

// Home is the view model of the landing page.
type Home struct {
	Lang      string
	Languages []string
	Theme     template.CSS
	SEO       seo.Meta
	Header    Header
	Blocks    []Block
	Footer    Footer
}

// Block is one top-level section. Exactly one of the pointer fields is set, matching Kind.
type Block struct {
	Kind    Kind
	ID      string
	Hero    *Hero
	Section *section.Section
	Pricing *Pricing
	CTA     *CTA
}

type Header struct {
	Brand      string
	Nav        []nav.RenderedItem
	LoginHref  string
	LoginLabel string
}

type Hero struct {
	Eyebrow        string
	Title          string
	Highlight      string
	Subtitle       string
	CTALabel       string
	CTAHref        string
	SecondaryLabel string
	SecondaryHref  string
	ImageSrc       string
	ImageAlt       string
	Reveal         template.HTMLAttr
}

type Pricing struct {
	Heading      string
	Subheading   string
	PopularLabel string
	Plans        []PlanView
}

type PlanView struct {
	content.Plan
	Price      string
	PriceWhole string
	PriceCents string
	Href       string
	Reveal     template.HTMLAttr
}

type CTA struct {
	Section     section.Section
	ButtonLabel string
	ButtonHref  string
}

type Footer struct {
	Brand        string
	Tagline      string
	Groups       []nav.Group
	FAQ          []FAQView
	ContactEmail string
	LoginHref    string
	Year         int
}

type FAQView struct {
	Question string
	Answer   template.HTML
}

// Compose builds the landing page for in.Lang. It never fails: missing copy
// falls back to the translator's default language and an empty policy
// disables staggering.
func Compose(tr Translator, in Input) Home {
	lang := content.Normalize(in.Lang)
	t := func(key string) string { return tr.T(lang, key) }
	cat := content.For(lang)
	th := in.Theme
	if th == nil {
		th = theme.Default()
	}
	if in.Now.IsZero() {
		in.Now = time.Now()
	}

	h := Home{
		Lang:      lang,
		Languages: in.Languages,
		Theme:     th.CSS(),
		Header: Header{
			Brand:      productName,
			Nav:        nav.Build(),
			LoginHref:  nav.LoginPath,
			LoginLabel: t("header.login"),
		},
	}

	for _, kind := range Order {
		switch kind {
		case KindHero:
			h.Blocks = append(h.Blocks, Block{Kind: kind, ID: heroID, Hero: &Hero{
				Eyebrow:        t("hero.eyebrow"),
				Title:          t("hero.title"),
				Highlight:      t("hero.highlight"),
				Subtitle:       t("hero.subtitle"),
				CTALabel:       t("hero.cta"),
				CTAHref:        nav.LoginPath,
				SecondaryLabel: t("hero.secondary"),
				SecondaryHref:  "#" + nav.AnchorHowItWorks,
				ImageSrc:       heroImage,
				ImageAlt:       t("hero.image_alt"),
				Reveal:         in.Policy.Attrs(0),
			}})
		case KindHowItWorks:
			s := section.Render(nav.AnchorHowItWorks, cat.HowItWorks, in.Policy,
				section.WithHeading(t("how.heading"), t("how.subheading")),
				section.WithConnectors())
			h.Blocks = append(h.Blocks, Block{Kind: kind, ID: s.ID, Section: &s})
		case KindFeatures:
			s := section.Render(nav.AnchorAbout, cat.Features, in.Policy,
				section.WithHeading(t("features.heading"), t("features.subheading")))
			h.Blocks = append(h.Blocks, Block{Kind: kind, ID: s.ID, Section: &s})
		case KindPricing:
			h.Blocks = append(h.Blocks, Block{Kind: kind, ID: nav.AnchorPricing, Pricing: buildPricing(t, cat.Plans, in.Policy)})
		case KindCTA:
			s := section.Render(ctaID, cat.CTA, in.Policy,
				section.WithHeading(t("cta.heading"), t("cta.subheading")))
			h.Blocks = append(h.Blocks, Block{Kind: kind, ID: ctaID, CTA: &CTA{
				Section:     s,
				ButtonLabel: t("cta.button"),
				ButtonHref:  nav.LoginPath,
			}})
		}
	}

	h.Footer = Footer{
		Brand:        productName,
		Tagline:      t("footer.tagline"),
		Groups:       nav.BuildFooter(),
		ContactEmail: in.ContactEmail,
		LoginHref:    nav.LoginPath,
		Year:         in.Now.Year(),
	}
	for _, q := range cat.FAQ {
		h.Footer.FAQ = append(h.Footer.FAQ, FAQView{Question: q.Question, Answer: markup.Render(q.Answer)})
	}

	h.SEO = buildMeta(t, lang, in, cat)
	return h
}

// Kinds returns the kinds of the composed blocks, top to bottom.
func (h Home) Kinds() []Kind {
	out := make([]Kind, 0, len(h.Blocks))
	for _, b := range h.Blocks {
		out = append(out, b.Kind)
	}
	return out
}

func buildPricing(t func(string) string, plans []content.Plan, policy reveal.Policy) *Pricing {
	p := &Pricing{
		Heading:      t("pricing.heading"),
		Subheading:   t("pricing.subheading"),
		PopularLabel: t("pricing.popular"),
		Plans:        make([]PlanView, 0, len(plans)),
	}
	for i, plan := range plans {
		whole, cents := format.PriceParts(plan.PriceMinor, plan.Currency)
		p.Plans = append(p.Plans, PlanView{
			Plan:       plan,
			Price:      format.Currency(plan.PriceMinor, plan.Currency),
			PriceWhole: whole,
			PriceCents: cents,
			Href:       nav.LoginPath,
			Reveal:     policy.Attrs(i),
		})
	}
	return p
}

func buildMeta(t func(string) string, lang string, in Input, cat content.Catalog) seo.Meta {
	home := seo.AbsURL(in.BaseURL, "/")
	image := seo.AbsURL(in.BaseURL, heroImage)
	m := seo.Meta{
		Title:       t("seo.title"),
		Description: t("seo.description"),
		Robots:      "index,follow",
		OG: seo.OpenGraph{
			Title:       t("seo.title"),
			Description: t("seo.description"),
			Image:       image,
			Type:        "website",
			SiteName:    productName,
			Locale:      t("seo.og_locale"),
		},
		Twitter: seo.Twitter{Card: "summary_large_image", Image: image},
	}
	if in.BaseURL != "" {
		m.Canonical = home
		m.OG.URL = home
	}
	for _, l := range in.Languages {
		m.Alternates = append(m.Alternates, seo.Alternate{Href: home + "?hl=" + l, Hreflang: l})
	}

	qa := make([]seo.QA, 0, len(cat.FAQ))
	for _, q := range cat.FAQ {
		qa = append(qa, seo.QA{Question: q.Question, Answer: markup.PlainText(string(markup.Render(q.Answer)))})
	}
	offers := make([]seo.Offer, 0, len(cat.Plans))
	for _, p := range cat.Plans {
		offers = append(offers, seo.Offer{
			Name:     p.Name,
			Price:    fmt.Sprintf("%d.%02d", p.PriceMinor/100, p.PriceMinor%100),
			Currency: p.Currency,
		})
	}
	m.JSONLD = []string{
		seo.JSON(seo.Organization(productName, home, seo.AbsURL(in.BaseURL, "/assets/img/logo.svg"), in.ContactEmail)),
		seo.JSON(seo.WebSite(productName, home, lang)),
		seo.JSON(seo.SoftwareApplication(productName, t("seo.description"), home, offers)),
		seo.JSON(seo.FAQPage(qa)),
	}
	return m
}
