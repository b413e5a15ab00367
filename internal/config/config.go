package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config captures all runtime configuration of the web server.
type Config struct {
	Addr         string   `env:"MARIAH_WEB_ADDR"`
	Port         string   `env:"PORT" envDefault:"8080"`
	Env          string   `env:"MARIAH_WEB_ENV" envDefault:"dev"`
	Dev          bool     `env:"MARIAH_WEB_DEV"`
	TemplatesDir string   `env:"MARIAH_WEB_TEMPLATES" envDefault:"templates"`
	PublicDir    string   `env:"MARIAH_WEB_PUBLIC" envDefault:"public"`
	LocalesDir   string   `env:"MARIAH_WEB_LOCALES" envDefault:"locales"`
	ThemeFile    string   `env:"MARIAH_WEB_THEME_FILE"`
	DefaultLang  string   `env:"MARIAH_WEB_DEFAULT_LANG" envDefault:"pt"`
	Languages    []string `env:"MARIAH_WEB_LANGS" envDefault:"pt,en" envSeparator:","`
	BaseURL      string   `env:"MARIAH_WEB_BASE_URL"`
	ContactEmail string   `env:"MARIAH_WEB_CONTACT_EMAIL" envDefault:"contato@mariah.app"`
	LoginURL     string   `env:"MARIAH_WEB_LOGIN_URL"`
	LogLevel     string   `env:"LOG_LEVEL" envDefault:"info"`
	Reveal       RevealConfig
}

// RevealConfig sets the entrance animation policy applied to every section.
type RevealConfig struct {
	Once    bool    `env:"MARIAH_WEB_REVEAL_ONCE" envDefault:"true"`
	Stagger float64 `env:"MARIAH_WEB_REVEAL_STAGGER" envDefault:"0.1"`
}

// Load parses the environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	if c.Addr == "" {
		c.Addr = ":" + c.Port
	}
	c.Env = strings.ToLower(strings.TrimSpace(c.Env))
	c.DefaultLang = strings.ToLower(strings.TrimSpace(c.DefaultLang))
	langs := make([]string, 0, len(c.Languages))
	seen := map[string]bool{}
	for _, l := range c.Languages {
		l = strings.ToLower(strings.TrimSpace(l))
		if l != "" && !seen[l] {
			seen[l] = true
			langs = append(langs, l)
		}
	}
	if !seen[c.DefaultLang] {
		langs = append([]string{c.DefaultLang}, langs...)
	}
	c.Languages = langs
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	c.LoginURL = strings.TrimSpace(c.LoginURL)
}

// Validate reports configuration that would make the server misbehave.
func (c Config) Validate() error {
	var errs []error
	if c.DefaultLang == "" {
		errs = append(errs, errors.New("default language is empty"))
	}
	if c.Reveal.Stagger < 0 {
		errs = append(errs, fmt.Errorf("reveal stagger must not be negative, got %v", c.Reveal.Stagger))
	}
	for name, raw := range map[string]string{"base url": c.BaseURL, "login url": c.LoginURL} {
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Errorf("%s must be an absolute http(s) URL, got %q", name, raw))
		}
	}
	return errors.Join(errs...)
}

// Prod reports whether the server runs in production.
func (c Config) Prod() bool { return c.Env == "prod" }
