// Package security provides the hardening middleware for the HTTP surface:
// response headers and request body limits.
package security

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SecurityHeaders adds standard security headers to all responses. HSTS is
// opt-in because it is only meaningful behind TLS.
func SecurityHeaders(enableHSTS bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Permissions-Policy", "geolocation=(), microphone=(), camera=()")

		if enableHSTS {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}

// BodySizeLimit caps request body size. Oversized essays are cut off at the
// transport before JSON binding ever sees them.
func BodySizeLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
