package http

import (
	"net/http"

	"github.com/unrolled/secure"

	"github.com/MKhiriev/recipe-keeper/internal/app"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
)

var secureHeaders = secure.New(secure.Options{
	FrameDeny:             true,
	ContentTypeNosniff:    true,
	BrowserXssFilter:      true,
	ReferrerPolicy:        "same-origin",
	ContentSecurityPolicy: "default-src 'none'; img-src 'self'",
	SSLProxyHeaders:       map[string]string{"X-Forwarded-Proto": "https"},
})

// withSecureHeaders sets the security response headers.
func withSecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := secureHeaders.Process(w, r); err != nil {
			logger.FromRequest(r).Warn().Err(err).Str("func", "withSecureHeaders").Msg("secure headers blocked request")
			writeDetail(w, app.MsgServerError, http.StatusInternalServerError)
			return
		}
		next.ServeHTTP(w, r)
	})
}
