package middleware

import (
	"net/http"
)

// RequestSizeLimitMiddleware caps request bodies at limit bytes.
//
// A declared Content-Length over the limit is refused up front; otherwise the body is wrapped
// so the JSON decoder fails with *http.MaxBytesError once the limit is crossed.
func RequestSizeLimitMiddleware(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				WriteText(w, http.StatusRequestEntityTooLarge, "Request Body Too Large")
				return
			}

			if r.Body != nil && r.Body != http.NoBody {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
