package handlers

import (
	"errors"
	"net/http"

	"blog/auth"
	"blog/feed"
	"blog/models"
	"blog/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type PostRequest struct {
	Text  string `form:"text"`
	Group string `form:"group"` // Group ID, empty for none
	Image string `form:"image"`
}

func (r *PostRequest) input() (in models.PostInput, err error) {
	in.Text = r.Text
	in.Image = r.Image
	if r.Group != "" {
		if in.GroupID = utils.StringToUInt64Ptr(r.Group); in.GroupID == nil {
			return in, models.ErrGroupNotFound
		}
	}
	return in, nil
}

// formError returns an inline message for validation errors, empty string for anything else
func formError(err error) string {
	switch {
	case errors.Is(err, models.ErrEmptyText):
		return "Text is required"
	case errors.Is(err, models.ErrGroupNotFound):
		return "Choose one of the existing groups"
	}
	return ""
}

func Index(c *gin.Context) {
	page, ok := loadPage(c, feed.Global())
	if !ok {
		return
	}
	render(c, http.StatusOK, "index.tmpl", gin.H{
		"title":    "Latest posts",
		"page_obj": page,
	})
}

func GroupPosts(c *gin.Context) {
	group, err := models.GroupBySlug(c.Param("slug"))
	if err != nil {
		dbError(c, err)
		return
	}
	page, ok := loadPage(c, feed.InGroup(group.ID))
	if !ok {
		return
	}
	render(c, http.StatusOK, "group_list.tmpl", gin.H{
		"title":    group.Title,
		"group":    &group,
		"page_obj": page,
	})
}

func Profile(c *gin.Context) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		dbError(c, err)
		return
	}
	page, ok := loadPage(c, feed.ByAuthor(author.ID))
	if !ok {
		return
	}
	viewerID := auth.LoadSession(c).UserID()
	render(c, http.StatusOK, "profile.tmpl", gin.H{
		"author":         &author,
		"posts_quantity": page.Count,
		"following":      models.IsFollowing(viewerID, author.ID),
		"is_self":        viewerID == author.ID,
		"page_obj":       page,
	})
}

func PostDetail(c *gin.Context) {
	post, ok := loadPost(c)
	if !ok {
		return
	}
	renderPostDetail(c, &post, http.StatusOK, gin.H{})
}

func renderPostDetail(c *gin.Context, post *models.Post, code int, extra gin.H) {
	postsQuantity, err := post.User.PostsCount()
	if err != nil {
		serverError(c, err)
		return
	}
	comments, err := models.PostComments(post.ID)
	if err != nil {
		serverError(c, err)
		return
	}
	data := gin.H{
		"post":           post,
		"group":          post.Group,
		"author":         &post.User,
		"posts_quantity": postsQuantity,
		"comments":       comments,
		"is_author":      auth.LoadSession(c).UserID() == post.UserID,
	}
	for k, v := range extra {
		data[k] = v
	}
	render(c, code, "post_detail.tmpl", data)
}

func renderPostForm(c *gin.Context, data gin.H) {
	groups, err := models.GroupList()
	if err != nil {
		serverError(c, err)
		return
	}
	data["groups"] = groups
	render(c, http.StatusOK, "create_post.tmpl", data)
}

func PostCreate(c *gin.Context, user *models.User) {
	r := PostRequest{}
	if c.Request.Method != http.MethodPost {
		renderPostForm(c, gin.H{"form": r})
		return
	}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		renderPostForm(c, gin.H{"form": r, "error": err.Error()})
		return
	}
	in, err := r.input()
	if err == nil {
		_, err = models.PostCreate(user, in)
	}
	if err != nil {
		if msg := formError(err); msg != "" {
			renderPostForm(c, gin.H{"form": r, "error": msg})
			return
		}
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, ProfileURL(user.Username))
}

// PostEdit sends anyone but the author back to the post
func PostEdit(c *gin.Context, user *models.User) {
	post, ok := loadPost(c)
	if !ok {
		return
	}
	if post.UserID != user.ID {
		c.Redirect(http.StatusFound, PostURL(post.ID))
		return
	}
	r := PostRequest{Text: post.Text, Image: post.Image}
	if post.GroupID != nil {
		r.Group = utils.FormatUInt64(*post.GroupID)
	}
	data := gin.H{"is_edit": true, "post": &post}
	if c.Request.Method != http.MethodPost {
		data["form"] = r
		renderPostForm(c, data)
		return
	}
	r = PostRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		data["form"] = r
		data["error"] = err.Error()
		renderPostForm(c, data)
		return
	}
	in, err := r.input()
	if err == nil {
		err = post.Update(user, in)
	}
	if err != nil {
		if msg := formError(err); msg != "" {
			data["form"] = r
			data["error"] = msg
			renderPostForm(c, data)
			return
		}
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, PostURL(post.ID))
}
