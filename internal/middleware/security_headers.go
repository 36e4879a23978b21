package middleware

import (
	"net/http"
)

var staticSecurityHeaders = map[string]string{
	"X-Frame-Options":        "DENY",
	"X-Content-Type-Options": "nosniff",
	"Referrer-Policy":        "strict-origin-when-cross-origin",
	"Permissions-Policy":     "camera=(), microphone=(), geolocation=(), payment=()",
}

const hstsValue = "max-age=31536000; includeSubDomains"

// SecurityHeaders sets the fixed browser hardening headers on every response.
// csp is sent when non-empty; hsts should only be enabled behind TLS.
func SecurityHeaders(hsts bool, csp string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headers := w.Header()
			for name, value := range staticSecurityHeaders {
				headers.Set(name, value)
			}
			if csp != "" {
				headers.Set("Content-Security-Policy", csp)
			}
			if hsts {
				headers.Set("Strict-Transport-Security", hstsValue)
			}
			next.ServeHTTP(w, r)
		})
	}
}
