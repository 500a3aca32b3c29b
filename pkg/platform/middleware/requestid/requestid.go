// Package requestid assigns a unique ID to every incoming request so log
// lines and error responses for one evaluation can be correlated.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"centseek/pkg/requestcontext"
)

// Header is the response header carrying the assigned request ID.
const Header = "X-Request-ID"

// Middleware honors a client-supplied X-Request-ID, generating a UUID when
// absent, and exposes the value via requestcontext and the response header.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(Header, requestID)
		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
