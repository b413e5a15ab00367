package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"mariah.app/web/internal/observability"
)

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// WriteError logs msg and answers with code. Clients asking for JSON get an error envelope.
func WriteError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	observability.FromContext(r.Context()).Warn("error response", zap.Int("status", code), zap.String("error", msg))
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		rid, _ := RequestID(r.Context())
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: msg, RequestID: rid})
		return
	}
	http.Error(w, msg, code)
}
