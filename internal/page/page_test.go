package page

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mariah.app/web/internal/reveal"
)

type keyTranslator struct{}

func (keyTranslator) T(lang, key string) string { return lang + ":" + key }

func compose(t *testing.T, in Input) Home {
	t.Helper()
	if in.Now.IsZero() {
		in.Now = time.Date(2031, 3, 4, 10, 0, 0, 0, time.UTC)
	}
	return Compose(keyTranslator{}, in)
}

func TestComposeFixedOrder(t *testing.T) {
	t.Parallel()

	for _, lang := range []string{"pt", "en", "xx"} {
		h := compose(t, Input{Lang: lang, Policy: reveal.Default})
		require.Equal(t, []Kind{KindHero, KindHowItWorks, KindFeatures, KindPricing, KindCTA}, h.Kinds(), lang)
	}
}

func TestComposeBlocksMatchKind(t *testing.T) {
	t.Parallel()

	h := compose(t, Input{Lang: "pt", Policy: reveal.Default})
	for _, b := range h.Blocks {
		switch b.Kind {
		case KindHero:
			require.NotNil(t, b.Hero)
		case KindHowItWorks, KindFeatures:
			require.NotNil(t, b.Section)
			require.Equal(t, b.ID, b.Section.ID)
		case KindPricing:
			require.NotNil(t, b.Pricing)
		case KindCTA:
			require.NotNil(t, b.CTA)
		}
	}
}

func TestComposeAnchors(t *testing.T) {
	t.Parallel()

	h := compose(t, Input{Lang: "pt"})
	ids := map[string]bool{}
	for _, b := range h.Blocks {
		ids[b.ID] = true
	}
	for _, id := range []string{"como-funciona", "sobre", "planos"} {
		require.True(t, ids[id], id)
	}
}

func TestHeroLinksToLogin(t *testing.T) {
	t.Parallel()

	h := compose(t, Input{Lang: "pt"})
	hero := h.Blocks[0].Hero
	require.Equal(t, "/login", hero.CTAHref)
	require.Equal(t, "/images/mariah.png", hero.ImageSrc)
	require.Equal(t, "/login", h.Header.LoginHref)
	require.Equal(t, "/login", h.Footer.LoginHref)
}

func TestFooterYearFromClock(t *testing.T) {
	t.Parallel()

	h := compose(t, Input{Lang: "pt", Now: time.Date(2042, 12, 31, 23, 0, 0, 0, time.UTC)})
	require.Equal(t, 2042, h.Footer.Year)
}

func TestHowItWorksConnectors(t *testing.T) {
	t.Parallel()

	h := compose(t, Input{Lang: "pt", Policy: reveal.Policy{TriggerOnce: true, StaggerDelaySeconds: 0.2}})
	s := h.Blocks[1].Section
	require.Len(t, s.Cards, 4)
	require.Equal(t, "Faça Upload das Fotos", s.Cards[0].Item.Title)
	require.Equal(t, "Baixe e Compartilhe", s.Cards[3].Item.Title)
	for i, c := range s.Cards {
		require.Equal(t, i < 3, c.Connector)
		require.InDelta(t, float64(i)*0.2, c.Delay, 1e-9)
	}
	// feature grid has no connectors
	for _, c := range h.Blocks[2].Section.Cards {
		require.False(t, c.Connector)
	}
}

func TestPricingFormatted(t *testing.T) {
	t.Parallel()

	h := compose(t, Input{Lang: "pt"})
	p := h.Blocks[3].Pricing
	require.Len(t, p.Plans, 3)
	require.Equal(t, "R$ 49,90", p.Plans[0].Price)
	require.Equal(t, "R$ 199", p.Plans[1].PriceWhole)
	require.Equal(t, ",00", p.Plans[1].PriceCents)
	require.True(t, p.Plans[1].Highlight)
}

func TestFAQRenderedAsHTML(t *testing.T) {
	t.Parallel()

	h := compose(t, Input{Lang: "pt"})
	require.NotEmpty(t, h.Footer.FAQ)
	require.Contains(t, string(h.Footer.FAQ[0].Answer), "<strong>")
}

func TestSEO(t *testing.T) {
	t.Parallel()

	h := compose(t, Input{Lang: "en", BaseURL: "https://mariah.app", Languages: []string{"pt", "en"}})
	require.Equal(t, "https://mariah.app/", h.SEO.Canonical)
	require.Len(t, h.SEO.Alternates, 2)
	require.Equal(t, "https://mariah.app/images/mariah.png", h.SEO.OG.Image)
	require.Len(t, h.SEO.JSONLD, 4)
	for _, raw := range h.SEO.JSONLD {
		var v map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &v))
	}
	require.Contains(t, h.SEO.JSONLD[2], `"price":"199.00"`)

	bare := compose(t, Input{Lang: "pt"})
	require.Empty(t, bare.SEO.Canonical)
}

func TestThemeDefaultsWhenNil(t *testing.T) {
	t.Parallel()

	h := compose(t, Input{Lang: "pt"})
	require.Contains(t, string(h.Theme), "--background-primary:")
}
