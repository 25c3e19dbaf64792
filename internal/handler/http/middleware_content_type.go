package http

import (
	"mime"
	"net/http"

	"github.com/MKhiriev/go-account-service/internal/logger"
)

const contentTypeJSON = "application/json"

// requireJSONContentType rejects requests whose Content-Type header is not
// "application/json" with 415 Unsupported Media Type. Media type parameters
// such as "; charset=utf-8" are accepted.
func requireJSONContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType := r.Header.Get("Content-Type")

		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != contentTypeJSON {
			log := logger.FromRequest(r)
			log.Warn().Str("content_type", contentType).Msg("unsupported media type")
			http.Error(w, http.StatusText(http.StatusUnsupportedMediaType), http.StatusUnsupportedMediaType)
			return
		}

		next.ServeHTTP(w, r)
	})
}
