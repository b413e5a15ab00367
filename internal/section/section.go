// Package section turns an ordered sequence of content items into a grid of cards
// with a staggered entrance animation.
package section

import (
	"html/template"

	"mariah.app/web/internal/content"
	"mariah.app/web/internal/reveal"
)

// Card is one rendered item together with its position and reveal hints.
type Card struct {
	Index     int
	Item      content.Item
	Delay     float64
	Reveal    template.HTMLAttr
	Connector bool // draw a connector to the next card
}

// Section is the view model consumed by the "section" template.
type Section struct {
	ID         string
	Variant    string // "grid" or "steps"
	Heading    string
	Subheading string
	Policy     reveal.Policy
	Cards      []Card
}

// Option customises a Section.
type Option func(*Section)

// WithHeading sets the section heading and subheading.
func WithHeading(heading, sub string) Option {
	return func(s *Section) {
		s.Heading = heading
		s.Subheading = sub
	}
}

// WithConnectors renders the cards as steps linked to each other.
func WithConnectors() Option {
	return func(s *Section) {
		s.Variant = "steps"
		for i := range s.Cards {
			s.Cards[i].Connector = i < len(s.Cards)-1
		}
	}
}

// Render builds a section with one card per item, in input order. Card i
// enters the viewport after i*policy.StaggerDelaySeconds. An empty items
// slice yields a section without cards.
func Render(id string, items []content.Item, policy reveal.Policy, opts ...Option) Section {
	if policy.StaggerDelaySeconds < 0 {
		policy.StaggerDelaySeconds = 0
	}
	s := Section{
		ID:      id,
		Variant: "grid",
		Policy:  policy,
		Cards:   make([]Card, 0, len(items)),
	}
	for i, it := range items {
		s.Cards = append(s.Cards, Card{
			Index:  i,
			Item:   it,
			Delay:  policy.Delay(i),
			Reveal: policy.Attrs(i),
		})
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// Len returns the number of cards.
func (s Section) Len() int { return len(s.Cards) }

// HeaderReveal returns the reveal attributes for the section heading, which always animates first.
func (s Section) HeaderReveal() template.HTMLAttr { return s.Policy.Attrs(0) }
