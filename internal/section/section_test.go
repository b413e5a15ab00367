package section

import (
	"bytes"
	"html/template"
	"strconv"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"mariah.app/web/internal/content"
	"mariah.app/web/internal/reveal"
)

func renderHTML(t *testing.T, s Section) *goquery.Document {
	t.Helper()
	tmpl, err := template.ParseFiles("../../templates/partials/section.tmpl")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "section", s))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func items(n int) []content.Item {
	out := make([]content.Item, n)
	for i := range out {
		out[i] = content.Item{
			Title:       "Title " + strconv.Itoa(i),
			Description: "Description " + strconv.Itoa(i),
			Icon:        "*",
		}
	}
	return out
}

func TestRenderEmitsOneCardPerItemInOrder(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 3, 6} {
		s := Render("features", items(n), reveal.Default)
		require.Equal(t, n, s.Len())

		doc := renderHTML(t, s)
		cards := doc.Find("[data-card]")
		require.Equal(t, n, cards.Length())
		cards.Each(func(i int, card *goquery.Selection) {
			require.Equal(t, "Title "+strconv.Itoa(i), card.Find(".card__title").Text())
		})
	}
}

func TestRenderStaggersDelays(t *testing.T) {
	t.Parallel()

	policy := reveal.Policy{TriggerOnce: true, StaggerDelaySeconds: 0.15}
	s := Render("steps", items(5), policy)
	for i, c := range s.Cards {
		require.Equal(t, i, c.Index)
		require.InDelta(t, float64(i)*0.15, c.Delay, 1e-9)
	}

	doc := renderHTML(t, s)
	doc.Find("[data-card]").Each(func(i int, card *goquery.Selection) {
		delay, ok := card.Attr("data-reveal-delay")
		require.True(t, ok)
		require.Equal(t, reveal.FormatSeconds(float64(i)*0.15), delay)
		once, _ := card.Attr("data-reveal-once")
		require.Equal(t, "true", once)
	})
}

func TestRenderEmpty(t *testing.T) {
	t.Parallel()

	s := Render("empty", nil, reveal.Default)
	require.Zero(t, s.Len())

	doc := renderHTML(t, s)
	require.Equal(t, 1, doc.Find("section#empty .section__cards").Length())
	require.Zero(t, doc.Find("[data-card]").Length())
}

func TestConnectorsOnAllButLast(t *testing.T) {
	t.Parallel()

	s := Render("como-funciona", content.HowItWorks("pt"), reveal.Default, WithConnectors())
	require.Equal(t, "steps", s.Variant)

	doc := renderHTML(t, s)
	cards := doc.Find("[data-card]")
	require.Equal(t, 4, cards.Length())
	require.Equal(t, []string{
		"Faça Upload das Fotos",
		"IA Analisa o Imóvel",
		"Laudo Profissional Gerado",
		"Baixe e Compartilhe",
	}, cards.Find(".card__title").Map(func(_ int, s *goquery.Selection) string { return s.Text() }))
	cards.Each(func(i int, card *goquery.Selection) {
		has := card.Find("[data-connector]").Length() == 1
		require.Equal(t, i < 3, has, "card %d", i)
	})
}

func TestNegativeStaggerClamped(t *testing.T) {
	t.Parallel()

	s := Render("x", items(3), reveal.Policy{StaggerDelaySeconds: -2})
	for _, c := range s.Cards {
		require.Zero(t, c.Delay)
	}
}

func TestWithHeading(t *testing.T) {
	t.Parallel()

	s := Render("sobre", items(2), reveal.Default, WithHeading("Recursos", "Tudo que você precisa"))
	doc := renderHTML(t, s)
	require.Equal(t, "Recursos", doc.Find("h2.section__title").Text())
	require.Equal(t, "Tudo que você precisa", doc.Find(".section__subtitle").Text())

	bare := renderHTML(t, Render("bare", items(1), reveal.Default))
	require.Zero(t, bare.Find("header").Length())
}
