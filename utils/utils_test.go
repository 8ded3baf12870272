package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestStringToUInt64Ptr(t *testing.T) {
	tests := []struct {
		in   string
		want *uint64
	}{
		{"", nil},
		{"abc", nil},
		{"-1", nil},
		{"42", func() *uint64 { i := uint64(42); return &i }()},
	}
	for _, tt := range tests {
		got := StringToUInt64Ptr(tt.in)
		if (got == nil) != (tt.want == nil) || (got != nil && *got != *tt.want) {
			t.Errorf("StringToUInt64Ptr(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRandToken(t *testing.T) {
	a, b := RandToken(32), RandToken(32)
	if a == b {
		t.Error("RandToken() repeats itself")
	}
	if len(a) != 43 {
		t.Errorf("token length = %d, want 43", len(a))
	}
	if strings.ContainsAny(a, "+/=") {
		t.Errorf("token %q is not URL-safe", a)
	}
}

func TestRateLimiter_Allow(t *testing.T) {
	now := time.Unix(1700000000, 0)
	rl := NewRateLimiter(3)
	rl.now = func() time.Time { return now }

	for i := 1; i <= 3; i++ {
		if !rl.Allow("1.1.1.1") {
			t.Fatalf("request %d was limited", i)
		}
	}
	if rl.Allow("1.1.1.1") {
		t.Error("request over the limit was allowed")
	}
	if !rl.Allow("2.2.2.2") {
		t.Error("another client was limited")
	}

	now = now.Add(rateLimitWindow + time.Second)
	if !rl.Allow("1.1.1.1") {
		t.Error("request in a new window was limited")
	}

	now = now.Add(3 * rateLimitWindow)
	rl.Cleanup()
	if rl.clients.Count() != 0 {
		t.Errorf("clients after cleanup = %d, want 0", rl.clients.Count())
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiter(0)
	for i := 0; i < 100; i++ {
		if !rl.Allow("1.1.1.1") {
			t.Fatal("disabled limiter limited a request")
		}
	}
}

func TestRateLimiter_Handler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(NewRateLimiter(1).Handler())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		method string
		want   int
	}{
		{http.MethodGet, http.StatusOK},
		{http.MethodGet, http.StatusOK},
		{http.MethodPost, http.StatusOK},
		{http.MethodPost, http.StatusTooManyRequests},
		{http.MethodGet, http.StatusOK},
	}
	for i, tt := range tests {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(tt.method, "/", nil))
		if w.Code != tt.want {
			t.Errorf("request %d (%s): status = %d, want %d", i, tt.method, w.Code, tt.want)
		}
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestIDMiddleware)
	var seen string
	router.GET("/", func(c *gin.Context) {
		seen = RequestID(c)
		c.Status(http.StatusOK)
	})

	existing := uuid.NewString()
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"missing", "", false},
		{"invalid", "not a uuid", false},
		{"valid", existing, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			got := w.Header().Get(RequestIDHeader)
			if got != seen {
				t.Errorf("header %q differs from context %q", got, seen)
			}
			if _, err := uuid.Parse(got); err != nil {
				t.Errorf("request id %q is not a uuid", got)
			}
			if tt.keep != (got == tt.incoming) {
				t.Errorf("request id = %q, incoming %q", got, tt.incoming)
			}
		})
	}
}

func TestCacheRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		cacheTime int
		want      string
	}{
		{CacheNoCache, "no-cache"},
		{60, "private, max-age=60"},
		{CacheCustom, ""},
	}
	for _, tt := range tests {
		router := gin.New()
		router.Use((&CacheRouter{CacheTime: tt.cacheTime}).Handler())
		router.Use(SecureHeadersMiddleware)
		router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if got := w.Header().Get("cache-control"); got != tt.want {
			t.Errorf("CacheTime %d: cache-control = %q, want %q", tt.cacheTime, got, tt.want)
		}
		if w.Header().Get("X-Frame-Options") != "DENY" {
			t.Error("secure headers are missing")
		}
	}
}
