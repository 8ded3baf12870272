package handlers

import (
	"blog/auth"
	"blog/utils"

	"github.com/gin-gonic/gin"
)

// Register expects the sessions middleware to be installed already
func Register(router *gin.Engine) {
	router.Use(auth.CSRFMiddleware(CSRFFailure))
	// Custom Auth Router, guests get redirected to the login page
	authRouter := &auth.Router{Base: router}

	// Feeds
	router.GET("/", Index)
	router.GET("/group/:slug/", GroupPosts)
	router.GET("/profile/:username/", Profile)
	authRouter.GET("/follow/", FollowIndex)
	// Posts
	router.GET("/posts/:post_id/", PostDetail)
	authRouter.GET("/create/", PostCreate)
	authRouter.POST("/create/", PostCreate)
	authRouter.GET("/posts/:post_id/edit/", PostEdit)
	authRouter.POST("/posts/:post_id/edit/", PostEdit)
	authRouter.POST("/posts/:post_id/comment/", AddComment)
	// Subscriptions
	authRouter.GET("/profile/:username/follow/", ProfileFollow)
	authRouter.GET("/profile/:username/unfollow/", ProfileUnfollow)
	// Users
	router.GET(auth.LoginPath, UserLoginForm)
	router.POST(auth.LoginPath, UserLogin)
	router.GET("/auth/signup/", UserSignupForm)
	router.POST("/auth/signup/", UserSignup)
	router.POST("/auth/logout/", UserLogout)
	// Static pages
	static := (&utils.CacheRouter{CacheTime: utils.CacheStatic}).Handler()
	router.GET("/about/author/", static, AboutAuthor)
	router.GET("/about/tech/", static, AboutTech)

	router.NoRoute(NotFound)
}
