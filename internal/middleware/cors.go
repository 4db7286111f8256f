package middleware

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS permits all origins with the standard method set. Preflight requests
// are answered 200 with no body.
func CORS() gin.HandlerFunc {
	cfg := cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization", "Accept", "Origin"},
	}
	cfg.OptionsResponseStatusCode = http.StatusOK
	return cors.New(cfg)
}
