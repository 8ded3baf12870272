package handlers

import (
	"errors"
	"net/http"

	"blog/feed"
	"blog/models"

	"github.com/gin-gonic/gin"
)

func FollowIndex(c *gin.Context, user *models.User) {
	page, ok := loadPage(c, feed.Subscriptions(user.ID))
	if !ok {
		return
	}
	render(c, http.StatusOK, "follow.tmpl", gin.H{
		"title":    "Your subscriptions",
		"page_obj": page,
	})
}

// ProfileFollow silently ignores attempts to follow yourself
func ProfileFollow(c *gin.Context, user *models.User) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		dbError(c, err)
		return
	}
	if err = models.FollowCreate(user.ID, author.ID); err != nil && !errors.Is(err, models.ErrSelfFollow) {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, ProfileURL(author.Username))
}

func ProfileUnfollow(c *gin.Context, user *models.User) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		dbError(c, err)
		return
	}
	if err = models.FollowDelete(user.ID, author.ID); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, ProfileURL(author.Username))
}
