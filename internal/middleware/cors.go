package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows every origin, method and header, with credentials. The request origin is
// echoed back since browsers refuse "*" on credentialed requests.
func CORS(next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowOriginFunc: func(string) bool { return true },
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(next)
}
