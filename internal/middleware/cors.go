package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows any origin and header. The request origin is echoed back so
// credentialed requests are accepted as well. Methods are limited to the nine
// standard HTTP methods; a preflight for an extension method is refused.
var CORS = cors.Handler(cors.Options{
	AllowOriginFunc: func(r *http.Request, origin string) bool { return true },
	AllowedMethods: []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
		http.MethodConnect,
		http.MethodTrace,
	},
	AllowedHeaders:   []string{"*"},
	ExposedHeaders:   []string{"*"},
	AllowCredentials: true,
	MaxAge:           3600,
})
