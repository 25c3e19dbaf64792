package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-account-service/internal/logger"
)

const strictTransportHeader = "max-age=31536000; includeSubDomains"

// withStrictTransport redirects plain-HTTP requests to their HTTPS
// equivalent and stamps secure responses with a Strict-Transport-Security
// header. It is a no-op unless HTTPS enforcement is enabled in the server
// configuration, which keeps the middleware inert in tests.
func (h *Handler) withStrictTransport(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.enforceHTTPS {
			next.ServeHTTP(w, r)
			return
		}

		if !isRequestSecure(r) {
			target := "https://" + r.Host + r.URL.RequestURI()

			log := logger.FromRequest(r)
			log.Debug().Str("target", target).Msg("redirecting insecure request")

			http.Redirect(w, r, target, http.StatusMovedPermanently)
			return
		}

		w.Header().Set("Strict-Transport-Security", strictTransportHeader)
		next.ServeHTTP(w, r)
	})
}

// isRequestSecure reports whether the request arrived over HTTPS, either
// directly or via a TLS-terminating proxy that set X-Forwarded-Proto.
func isRequestSecure(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		for _, p := range strings.Split(proto, ",") {
			if strings.EqualFold(strings.TrimSpace(p), "https") {
				return true
			}
		}
	}
	return false
}
