package middleware

import "net/http"

// CORS adds CORS headers to responses. Preflight requests are not answered
// here: the routed handler owns every response, so non-GET verbs (OPTIONS
// included) still get the handler's method rejection with headers attached.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		next.ServeHTTP(w, r)
	})
}
