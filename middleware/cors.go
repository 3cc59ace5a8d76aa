package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows every origin, method and header with credentials. Origins are
// accepted through AllowOriginFunc so the request origin is echoed back
// instead of "*", which browsers refuse on credentialed requests.
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOriginFunc: func(string) bool { return true },
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodHead, http.MethodOptions,
		},
		// "*" is literal for credentialed requests, so the usual headers are
		// listed as well.
		AllowHeaders: []string{
			"*", "Origin", "Content-Type", "Accept", "Authorization",
			"X-Requested-With", RequestIDHeader,
		},
		ExposeHeaders:    []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
