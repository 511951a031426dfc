package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	perr "chatlens/internal/platform/errors"
	pnet "chatlens/internal/platform/net"
)

// BearerSecret guards routes with a shared secret carried as a bearer token.
// An empty secret disables the check so local setups keep working
func BearerSecret(secret string, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				next.ServeHTTP(w, r)
				return
			}
			got, ok := bearerToken(r)
			if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
				status, body := pnet.Error(perr.Unauthorizedf("invalid or missing api secret"), pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(h[len(prefix):]), true
}
