// Package theme holds the colour and surface tokens consumed by the stylesheet
// as CSS custom properties.
package theme

import (
	"errors"
	"fmt"
	"html/template"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidToken is returned for token names or values that cannot be emitted as CSS.
var ErrInvalidToken = errors.New("theme: invalid token")

var tokenName = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Token is a single named style value.
type Token struct {
	Name  string
	Value string
}

// Theme is an ordered set of tokens. Later Set calls on an existing name keep its position.
type Theme struct {
	tokens []Token
	index  map[string]int
}

// Default returns the built-in light palette.
func Default() *Theme {
	t := &Theme{index: map[string]int{}}
	for _, tok := range []Token{
		{"background-primary", "#ffffff"},
		{"background-secondary", "#f5f7fb"},
		{"text-primary", "#111827"},
		{"text-secondary", "#4b5563"},
		{"border-color", "#e5e7eb"},
		{"accent", "#7c3aed"},
		{"accent-contrast", "#ffffff"},
	} {
		_ = t.Set(tok.Name, tok.Value)
	}
	return t
}

// Set adds or replaces a token.
func (t *Theme) Set(name, value string) error {
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)
	if !tokenName.MatchString(name) {
		return fmt.Errorf("%w: name %q", ErrInvalidToken, name)
	}
	if value == "" || strings.ContainsAny(value, ";{}<>\\\n\r") {
		return fmt.Errorf("%w: value for %q", ErrInvalidToken, name)
	}
	if t.index == nil {
		t.index = map[string]int{}
	}
	if i, ok := t.index[name]; ok {
		t.tokens[i].Value = value
		return nil
	}
	t.index[name] = len(t.tokens)
	t.tokens = append(t.tokens, Token{Name: name, Value: value})
	return nil
}

// Get returns the value for name.
func (t *Theme) Get(name string) (string, bool) {
	if i, ok := t.index[name]; ok {
		return t.tokens[i].Value, true
	}
	return "", false
}

// Tokens returns a copy of the tokens in insertion order.
func (t *Theme) Tokens() []Token {
	return append([]Token(nil), t.tokens...)
}

// CSS renders the tokens as a :root rule.
func (t *Theme) CSS() template.CSS {
	var b strings.Builder
	b.WriteString(":root{")
	for _, tok := range t.tokens {
		b.WriteString("--")
		b.WriteString(tok.Name)
		b.WriteByte(':')
		b.WriteString(tok.Value)
		b.WriteByte(';')
	}
	b.WriteByte('}')
	return template.CSS(b.String())
}

type file struct {
	Tokens yaml.Node `yaml:"tokens"`
}

// Load overlays the tokens found in the YAML file at path onto the defaults.
// An empty path returns the defaults.
//
//	tokens:
//	  background-primary: "#0b1020"
//	  accent: "#a78bfa"
func Load(path string) (*Theme, error) {
	t := Default()
	if strings.TrimSpace(path) == "" {
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme %s: %w", path, err)
	}
	if err := t.apply(raw); err != nil {
		return nil, fmt.Errorf("load theme %s: %w", path, err)
	}
	return t, nil
}

// Parse overlays the tokens in raw YAML onto the defaults.
func Parse(raw []byte) (*Theme, error) {
	t := Default()
	if err := t.apply(raw); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Theme) apply(raw []byte) error {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if f.Tokens.Kind == 0 {
		return nil
	}
	if f.Tokens.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: tokens must be a mapping", ErrInvalidToken)
	}
	// walk the node so file order is preserved
	for i := 0; i+1 < len(f.Tokens.Content); i += 2 {
		k, v := f.Tokens.Content[i], f.Tokens.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("%w: %q must be a scalar", ErrInvalidToken, k.Value)
		}
		if err := t.Set(k.Value, v.Value); err != nil {
			return err
		}
	}
	return nil
}
