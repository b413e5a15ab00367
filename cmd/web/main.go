package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"mariah.app/web/internal/config"
	"mariah.app/web/internal/i18n"
	mw "mariah.app/web/internal/middleware"
	"mariah.app/web/internal/nav"
	"mariah.app/web/internal/observability"
	"mariah.app/web/internal/page"
	"mariah.app/web/internal/reveal"
	"mariah.app/web/internal/theme"
)

var (
	templatesDir = "templates"
	publicDir    = "public"
	// devMode reparses templates on every request (MARIAH_WEB_DEV)
	devMode   bool
	tmplCache *template.Template

	appCfg     config.Config
	i18nBundle *i18n.Bundle
	siteTheme  = theme.Default()
	logger     = zap.NewNop()
	// now is swapped in tests
	now = time.Now
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var addr, tmplPath, pubPath string
	flag.StringVar(&addr, "addr", cfg.Addr, "HTTP listen address")
	flag.StringVar(&tmplPath, "templates", cfg.TemplatesDir, "templates directory")
	flag.StringVar(&pubPath, "public", cfg.PublicDir, "public assets directory")
	flag.Parse()
	cfg.Addr, cfg.TemplatesDir, cfg.PublicDir = addr, tmplPath, pubPath

	lg, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()
	logger = lg

	if err := setup(cfg); err != nil {
		logger.Fatal("startup failed", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newRouter(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()
	logger.Info("web listening",
		zap.String("addr", cfg.Addr),
		zap.Bool("dev", devMode),
		zap.Strings("langs", cfg.Languages),
	)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// setup loads locales, theme and templates described by cfg into the package state.
func setup(cfg config.Config) error {
	appCfg = cfg
	templatesDir = cfg.TemplatesDir
	publicDir = cfg.PublicDir
	devMode = cfg.Dev

	b, err := i18n.Load(cfg.LocalesDir, cfg.DefaultLang, cfg.Languages)
	if err != nil {
		return fmt.Errorf("load locales: %w", err)
	}
	i18nBundle = b

	th, err := theme.Load(cfg.ThemeFile)
	if err != nil {
		return err
	}
	siteTheme = th

	// Parse once in production; dev mode parses per request but still fails fast here.
	tc, err := parseTemplates()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	if !devMode {
		tmplCache = tc
	}
	return nil
}

func newRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP.
	r.Use(middleware.RealIP)
	r.Use(mw.Locale(i18nBundle))
	r.Use(mw.Logger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(30 * time.Second))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Static assets
	r.Handle("/assets/*", http.StripPrefix("/assets", mw.AssetsWithCache(filepath.Join(publicDir, "assets"), "")))
	r.Handle("/images/*", http.StripPrefix("/images", mw.AssetsWithCache(filepath.Join(publicDir, "images"), "86400")))

	r.With(mw.VaryLocale).Get("/", HomeHandler)

	// The login page lives in the app; only redirect when its URL is known.
	if appCfg.LoginURL != "" {
		r.Get(nav.LoginPath, LoginRedirectHandler)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		mw.WriteError(w, r, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	})
	return r
}

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now": now,
		"t": func(lang, key string) string {
			if i18nBundle == nil {
				return key
			}
			return i18nBundle.T(lang, key)
		},
		// JSON produced by seo.JSON escapes <, > and &.
		"jsonld": func(s string) template.JS { return template.JS(s) },
	}
	// Recursively discover and parse all .tmpl files. Note: ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", templatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

// render executes the base layout. In dev mode, templates are reparsed on each request.
func render(w http.ResponseWriter, r *http.Request, data any) {
	var t *template.Template
	if devMode {
		tc, err := parseTemplates()
		if err != nil {
			mw.WriteError(w, r, http.StatusInternalServerError, fmt.Sprintf("template parse error: %v", err))
			return
		}
		t = tc
	} else {
		t = tmplCache
	}
	if t == nil {
		mw.WriteError(w, r, http.StatusInternalServerError, "template not initialized")
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		observability.FromContext(r.Context()).Error("template exec", zap.Error(err))
		mw.WriteError(w, r, http.StatusInternalServerError, "template exec error")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// HomeHandler renders the landing page.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	vm := page.Compose(i18nBundle, page.Input{
		Lang:         mw.Lang(r, appCfg.DefaultLang),
		Languages:    languages(),
		Now:          now(),
		Policy:       reveal.Policy{TriggerOnce: appCfg.Reveal.Once, StaggerDelaySeconds: appCfg.Reveal.Stagger},
		BaseURL:      appCfg.BaseURL,
		ContactEmail: appCfg.ContactEmail,
		Theme:        siteTheme,
	})
	render(w, r, vm)
}

// LoginRedirectHandler forwards to the external login page without carrying the query string.
func LoginRedirectHandler(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, appCfg.LoginURL, http.StatusFound)
}

// languages lists the configured languages that have a loaded bundle, in configuration order.
func languages() []string {
	out := make([]string, 0, len(appCfg.Languages))
	for _, l := range appCfg.Languages {
		if i18nBundle != nil && i18nBundle.IsSupported(l) {
			out = append(out, l)
		}
	}
	return out
}
