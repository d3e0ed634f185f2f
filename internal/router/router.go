package router

import (
	"tangle/internal/handler"
	"tangle/internal/middleware"
	"tangle/internal/repository/mysql"
	"tangle/internal/repository/redis"

	"github.com/gin-gonic/gin"
)

type Deps struct {
	Auth      *handler.AuthHandler
	Community *handler.CommunityHandler
	Post      *handler.PostHandler
	Comment   *handler.CommentHandler
	Users     *mysql.UserRepository
	Tokens    *redis.TokenRepository
}

func New(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger())

	authRequired := middleware.Auth(d.Users, d.Tokens)
	authOptional := middleware.OptionalAuth(d.Users, d.Tokens)

	auth := r.Group("/auth")
	{
		auth.POST("/register", d.Auth.Register)
		auth.POST("/login", d.Auth.Login)
		auth.POST("/refresh", d.Auth.Refresh)
		auth.POST("/logout", authRequired, d.Auth.Logout)
		auth.GET("/profile", authRequired, d.Auth.Profile)
		auth.PUT("/profile", authRequired, d.Auth.UpdateProfile)
		auth.GET("/stats", authRequired, d.Auth.Stats)
	}

	communities := r.Group("/communities")
	{
		communities.GET("", d.Community.List)
		communities.GET("/search", d.Community.Search)
		communities.GET("/code/:code", d.Community.GetByCode)
		communities.GET("/:id", d.Community.Get)
		communities.POST("", authRequired, d.Community.Create)
		communities.PUT("/:id", authRequired, d.Community.Update)
		communities.DELETE("/:id", authRequired, d.Community.Delete)
	}

	posts := r.Group("/posts")
	{
		posts.GET("", authOptional, d.Post.List)
		posts.GET("/stats", d.Post.Stats)
		posts.GET("/my-posts", authRequired, d.Post.MyPosts)
		posts.GET("/:id", authOptional, d.Post.Get)
		posts.POST("", authRequired, d.Post.Create)
		posts.PUT("/:id", authRequired, d.Post.Update)
		posts.DELETE("/:id", authRequired, d.Post.Delete)
		posts.POST("/:id/report", authRequired, d.Post.Report)
	}

	comments := r.Group("/comments")
	{
		comments.GET("/:postId", d.Comment.List)
		comments.POST("/:postId", authRequired, d.Comment.Create)
		comments.PUT("/:id", authRequired, d.Comment.Update)
		comments.DELETE("/:id", authRequired, d.Comment.Delete)
	}

	return r
}
