package middleware

import (
	"net/http"

	"mariah.app/web/internal/i18n"
)

// LangCookie stores an explicit language choice made with ?hl=.
const LangCookie = "hl"

// Locale resolves the preferred language from ?hl=, the hl cookie or
// Accept-Language, in that order, and stores it in the request context.
func Locale(bundle *i18n.Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ""
			// query override
			if q := bundle.Normalize(r.URL.Query().Get("hl")); q != "" {
				lang = q
				http.SetCookie(w, &http.Cookie{Name: LangCookie, Value: q, Path: "/", SameSite: http.SameSiteLaxMode})
			} else if c, err := r.Cookie(LangCookie); err == nil {
				lang = bundle.Normalize(c.Value)
			}
			if lang == "" {
				lang = bundle.Resolve(r.Header.Get("Accept-Language"))
			}
			// surface Content-Language
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(WithLang(r.Context(), lang)))
		})
	}
}

// Lang returns the language resolved by Locale, or fallback when the middleware did not run.
func Lang(r *http.Request, fallback string) string {
	if v, ok := r.Context().Value(ctxKeyLang).(string); ok && v != "" {
		return v
	}
	return fallback
}
