package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors reflects any origin. Auth rides in cookies, so credentials must
// be allowed and a wildcard origin would be rejected by browsers.
func Cors() Middleware {
	options := cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
	return cors.New(options).Handler
}
