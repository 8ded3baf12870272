package handlers

import (
	"errors"
	"net/http"
	"strings"

	"blog/auth"
	"blog/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type UserLoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
	Next     string `form:"next"`
}

type UserSignupRequest struct {
	Username string `form:"username" binding:"required"`
	Name     string `form:"name"`
	Password string `form:"password" binding:"required"`
}

// safeNext only allows redirects within this site
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}

func UserLoginForm(c *gin.Context) {
	render(c, http.StatusOK, "login.tmpl", gin.H{"next": c.Query("next")})
}

func UserLogin(c *gin.Context) {
	r := UserLoginRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		render(c, http.StatusOK, "login.tmpl", gin.H{"next": r.Next, "username": r.Username, "error": "Enter your username and password"})
		return
	}
	user, err := models.UserLogin(r.Username, r.Password)
	if err != nil {
		render(c, http.StatusOK, "login.tmpl", gin.H{"next": r.Next, "username": r.Username, "error": err.Error()})
		return
	}
	if err = auth.LoadSession(c).LoginUser(&user); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, safeNext(r.Next))
}

func UserSignupForm(c *gin.Context) {
	render(c, http.StatusOK, "signup.tmpl", gin.H{})
}

func UserSignup(c *gin.Context) {
	r := UserSignupRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		render(c, http.StatusOK, "signup.tmpl", gin.H{"form": r, "error": "Username and password are required"})
		return
	}
	user, err := models.UserCreate(models.UserInput{
		Username: r.Username,
		Name:     r.Name,
		Password: r.Password,
	})
	if errors.Is(err, models.ErrUsernameTaken) {
		render(c, http.StatusOK, "signup.tmpl", gin.H{"form": r, "error": "This username is already taken"})
		return
	}
	if errors.Is(err, models.ErrBadUsername) || errors.Is(err, models.ErrShortPassword) || errors.Is(err, models.ErrLongPassword) {
		render(c, http.StatusOK, "signup.tmpl", gin.H{"form": r, "error": err.Error()})
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	if err = auth.LoadSession(c).LoginUser(&user); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func UserLogout(c *gin.Context) {
	auth.LoadSession(c).LogoutUser()
	c.Redirect(http.StatusFound, "/")
}
