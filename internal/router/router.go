package router

import (
	"net/http"

	"newsdesk/internal/handlers"
	"newsdesk/internal/middleware"
	"newsdesk/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Register wires the stores and handlers onto the engine. The database handle
// flows in explicitly; nothing here reaches for package state.
func Register(r *gin.Engine, gdb *gorm.DB) {
	topicStore := store.NewTopicStore(gdb)
	articleStore := store.NewArticleStore(gdb)
	commentStore := store.NewCommentStore(gdb)
	userStore := store.NewUserStore(gdb)

	topicHandler := handlers.NewTopicHandler(topicStore)
	articleHandler := handlers.NewArticleHandler(articleStore)
	commentHandler := handlers.NewCommentHandler(commentStore)
	userHandler := handlers.NewUserHandler(userStore, articleStore)
	authHandler := handlers.NewAuthHandler(userStore)

	api := r.Group("/api")
	{
		api.GET("", handlers.Endpoints)
		api.GET("/topics", topicHandler.List)

		api.GET("/articles", articleHandler.List)
		api.POST("/articles", articleHandler.Create)
		api.GET("/articles/:article_id", articleHandler.GetByID)
		api.PATCH("/articles/:article_id", articleHandler.UpdateVotes)
		api.GET("/articles/:article_id/comments", commentHandler.ListByArticle)
		api.POST("/articles/:article_id/comments", commentHandler.Create)

		api.PATCH("/comments/:comment_id", commentHandler.UpdateVotes)
		api.DELETE("/comments/:comment_id", commentHandler.Delete)

		api.GET("/users", userHandler.List)
		api.POST("/users", authHandler.Signup)
		api.GET("/users/:username", userHandler.GetByUsername)
		api.GET("/users/:username/articles", userHandler.ListArticles)

		api.POST("/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthRequired())
		secured.GET("/secure-data", authHandler.SecureData)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Not Found!"})
	})
}
