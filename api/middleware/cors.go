package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

var corsOrigins = []string{
	"https://tibiaset.vercel.app",
}

var localCORSOrigins = []string{
	"http://localhost:3000", // local dev frontend
	"http://localhost:5173", // vite dev server
}

// CORS returns middleware that applies the API's allowed origin policy.
// allowLocal admits the localhost dev frontends and is off in production.
func CORS(allowLocal bool) func(http.Handler) http.Handler {
	origins := corsOrigins
	if allowLocal {
		origins = append(append([]string{}, corsOrigins...), localCORSOrigins...)
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
