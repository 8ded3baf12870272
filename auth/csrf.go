package auth

import (
	"crypto/subtle"
	"errors"
	"log"
	"net/http"

	"blog/utils"

	"github.com/gin-gonic/gin"
)

const (
	csrfSessionKey = "csrf"
	csrfContextKey = "csrf_token"
	csrfTokenSize  = 32

	CSRFFormField = "csrf_token"
	CSRFHeader    = "X-CSRF-Token"
)

var (
	ErrCSRFTokenMissing = errors.New("CSRF token missing")
	ErrCSRFTokenInvalid = errors.New("CSRF token invalid")
)

// CSRFMiddleware keeps a per-session token and requires it on every unsafe request.
// The token comes from the csrf_token form field or the X-CSRF-Token header.
func CSRFMiddleware(onFailure func(c *gin.Context, err error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := LoadSession(c)
		token, _ := session.Get(csrfSessionKey).(string)

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
			if token == "" {
				token = utils.RandToken(csrfTokenSize)
				session.Set(csrfSessionKey, token)
				if err := session.Save(); err != nil {
					log.Printf("Cannot save CSRF token: %v", err)
				}
			}
			c.Set(csrfContextKey, token)
			c.Next()
			return
		}

		if err := checkCSRFToken(c, token); err != nil {
			onFailure(c, err)
			c.Abort()
			return
		}
		c.Set(csrfContextKey, token)
		c.Next()
	}
}

func checkCSRFToken(c *gin.Context, expected string) error {
	sent := c.GetHeader(CSRFHeader)
	if sent == "" {
		sent = c.PostForm(CSRFFormField)
	}
	if sent == "" || expected == "" {
		return ErrCSRFTokenMissing
	}
	if subtle.ConstantTimeCompare([]byte(sent), []byte(expected)) != 1 {
		return ErrCSRFTokenInvalid
	}
	return nil
}

// CSRFToken is the token to embed in forms rendered for this request
func CSRFToken(c *gin.Context) string {
	return c.GetString(csrfContextKey)
}
