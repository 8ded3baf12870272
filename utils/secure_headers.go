package utils

import "github.com/gin-gonic/gin"

func SecureHeadersMiddleware(c *gin.Context) {
	c.Header("X-Frame-Options", "DENY")
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
	c.Next()
}
