package content

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHowItWorksOrderPT(t *testing.T) {
	t.Parallel()

	items := HowItWorks("pt-BR")
	titles := make([]string, 0, len(items))
	for _, it := range items {
		titles = append(titles, it.Title)
	}
	require.Equal(t, []string{
		"Faça Upload das Fotos",
		"IA Analisa o Imóvel",
		"Laudo Profissional Gerado",
		"Baixe e Compartilhe",
	}, titles)
}

func TestAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	items := Features("pt")
	items[0].Title = "mutated"
	require.NotEqual(t, "mutated", Features("pt")[0].Title)

	c := For("pt")
	c.Plans[0].Features[0] = "mutated"
	require.NotEqual(t, "mutated", For("pt").Plans[0].Features[0])
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":      "pt",
		"pt-BR": "pt",
		"EN_us": "en",
		"fr":    "pt",
		" en ":  "en",
	}
	for in, want := range cases {
		require.Equal(t, want, Normalize(in), "input %q", in)
	}
}

func TestCatalogsAreComplete(t *testing.T) {
	t.Parallel()

	for _, lang := range Languages() {
		c := For(lang)
		require.Len(t, c.HowItWorks, 4, lang)
		require.Len(t, c.Features, len(catalogPT.Features), lang)
		require.Len(t, c.Plans, len(catalogPT.Plans), lang)
		require.Len(t, c.CTA, len(catalogPT.CTA), lang)
		require.Len(t, c.FAQ, len(catalogPT.FAQ), lang)
		for _, it := range append(c.HowItWorks, c.Features...) {
			require.NotEmpty(t, it.Title, lang)
			require.NotEmpty(t, it.Description, lang)
			require.NotEmpty(t, it.Icon, lang)
		}
	}
}
