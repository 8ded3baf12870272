package handlers

import (
	"log"
	"net/http"
	"net/url"
	"strconv"

	"blog/auth"
	"blog/config"
	"blog/feed"
	"blog/models"
	"blog/utils"

	"github.com/gin-gonic/gin"
)

// Render is the only place templates are executed, tests replace it to inspect the context
var Render = func(c *gin.Context, code int, name string, data gin.H) {
	c.HTML(code, name, data)
}

// render adds the CSRF token every form on the page needs
func render(c *gin.Context, code int, name string, data gin.H) {
	data["csrf_token"] = auth.CSRFToken(c)
	Render(c, code, name, data)
}

// CSRFFailure rejects unsafe requests that lack a valid token
func CSRFFailure(c *gin.Context, err error) {
	log.Printf("Request %s %s (%s) rejected: %v", c.Request.Method, c.Request.URL.Path, utils.RequestID(c), err)
	render(c, http.StatusForbidden, "403.tmpl", gin.H{"reason": err.Error()})
}

func NotFound(c *gin.Context) {
	render(c, http.StatusNotFound, "404.tmpl", gin.H{"path": c.Request.URL.Path})
}

func serverError(c *gin.Context, err error) {
	log.Printf("Request %s %s (%s) failed: %v", c.Request.Method, c.Request.URL.Path, utils.RequestID(c), err)
	render(c, http.StatusInternalServerError, "500.tmpl", gin.H{})
}

// dbError renders 404 for missing records and 500 for anything else
func dbError(c *gin.Context, err error) {
	if models.IsNotFound(err) {
		NotFound(c)
		return
	}
	serverError(c, err)
}

func loadPage(c *gin.Context, scope feed.Scope) (*feed.Page, bool) {
	page, err := feed.Load(scope, c.Query("page"), config.POSTS_PER_PAGE)
	if err != nil {
		serverError(c, err)
		return nil, false
	}
	return &page, true
}

func loadPost(c *gin.Context) (post models.Post, ok bool) {
	id, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		NotFound(c)
		return
	}
	if post, err = models.PostByID(id); err != nil {
		dbError(c, err)
		return
	}
	return post, true
}

func ProfileURL(username string) string {
	return "/profile/" + url.PathEscape(username) + "/"
}

func PostURL(id uint64) string {
	return "/posts/" + strconv.FormatUint(id, 10) + "/"
}
