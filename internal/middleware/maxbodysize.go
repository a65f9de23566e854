package middleware

import "net/http"

// NewMaxBodySizeHandler returns a middleware that limits incoming
// request body sizes to limit bytes. Requests that declare a larger
// Content-Length are rejected with 413 up front; bodies without a
// declared length are capped with http.MaxBytesReader so downstream
// reads fail once the limit is crossed.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
				return
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
