package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"blog/config"
	"blog/db"
	"blog/handlers"
	"blog/models"
	"blog/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName     = "sessionid"
	sessionExpirationTime = 14 * 86400 // 2 weeks
)

func main() {
	db.Init(config.MYSQL_DSN, config.SQLITE_FILE)
	if err := models.Init(); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	router.Use(utils.RequestIDMiddleware)
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(utils.SecureHeadersMiddleware)
	if config.CORS_ORIGINS != "" {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Split(config.CORS_ORIGINS, ","),
			AllowMethods:     []string{"GET", "POST"},
			AllowHeaders:     []string{"Origin"},
			ExposeHeaders:    []string{"Content-Length", utils.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// HTML templates
	router.LoadHTMLGlob(config.TEMPLATES_GLOB)

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_KEY))
	cookieStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   sessionExpirationTime,
		HttpOnly: true,
		Secure:   config.TLS_DOMAINS != "",
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression))
	}
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // Feeds change all the time
	limiter := utils.NewRateLimiter(config.RATE_LIMIT_PER_MINUTE)
	router.Use(limiter.Handler())
	go func() {
		for range time.Tick(time.Minute) {
			limiter.Cleanup()
		}
	}()

	handlers.Register(router)

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
