package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	TLS_DOMAINS           = ""        // e.g. "example.com,example2.com"
	MYSQL_DSN             = ""        // MySQL will be used if this is set
	SQLITE_FILE           = "blog.db" // SQLite will be used if MYSQL_DSN is not configured
	BIND_ADDRESS          = "0.0.0.0:8080"
	SESSION_KEY           = "this is a long key" // Must be overridden in production
	TEMPLATES_GLOB        = "templates/*.tmpl"
	CORS_ORIGINS          = "" // e.g. "https://example.com,https://www.example.com", CORS is off when empty
	DEBUG_MODE            = true
	POSTS_PER_PAGE        = 10
	RATE_LIMIT_PER_MINUTE = 60 // Mutating requests per client IP, 0 disables the limiter
)

func init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvString("TEMPLATES_GLOB", &TEMPLATES_GLOB)
	readEnvString("CORS_ORIGINS", &CORS_ORIGINS)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvInt("POSTS_PER_PAGE", &POSTS_PER_PAGE)
	readEnvInt("RATE_LIMIT_PER_MINUTE", &RATE_LIMIT_PER_MINUTE)
	if POSTS_PER_PAGE < 1 {
		POSTS_PER_PAGE = 10
	}
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
