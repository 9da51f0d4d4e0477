package middleware

import "net/http"

// CORS allows the configured browser client origin to call the API with
// credentials (the refresh token cookie).
type CORS struct {
	origin string
}

// NewCORS creates a CORS middleware allowing the given origin.
func NewCORS(origin string) *CORS {
	return &CORS{origin: origin}
}

// Handler sets CORS headers and short-circuits preflight requests.
func (c *CORS) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", c.origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
