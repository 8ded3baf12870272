package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func AboutAuthor(c *gin.Context) {
	render(c, http.StatusOK, "about_author.tmpl", gin.H{"title": "About the author"})
}

func AboutTech(c *gin.Context) {
	render(c, http.StatusOK, "about_tech.tmpl", gin.H{"title": "Technologies"})
}
