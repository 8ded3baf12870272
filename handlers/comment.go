package handlers

import (
	"net/http"

	"blog/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type CommentRequest struct {
	Text string `form:"text" binding:"required"`
}

func AddComment(c *gin.Context, user *models.User) {
	post, ok := loadPost(c)
	if !ok {
		return
	}
	r := CommentRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		renderCommentForm(c, &post, r, formError(models.ErrEmptyText))
		return
	}
	if _, err := models.CommentAppend(user, &post, models.CommentInput{Text: r.Text}); err != nil {
		if msg := formError(err); msg != "" {
			renderCommentForm(c, &post, r, msg)
			return
		}
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, PostURL(post.ID))
}

func renderCommentForm(c *gin.Context, post *models.Post, r CommentRequest, msg string) {
	render(c, http.StatusOK, "comment.tmpl", gin.H{
		"form":  r,
		"post":  post,
		"error": msg,
	})
}
