package http

import (
	"net/http"
	"os"
	"strings"
)

const defaultAllowedOrigin = "http://localhost:3000"

// CORSMiddleware reflects the request origin when it matches the
// comma-separated ALLOWED_ORIGINS list and answers preflight requests.
func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" && originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		}

		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Max-Age", "3600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func originAllowed(origin string) bool {
	allowed := os.Getenv("ALLOWED_ORIGINS")
	if allowed == "" {
		allowed = defaultAllowedOrigin
	}
	for _, candidate := range strings.Split(allowed, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == origin || candidate == "*" {
			return true
		}
	}
	return false
}
