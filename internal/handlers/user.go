package handlers

import (
	"net/http"

	"newsdesk/internal/store"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users    *store.UserStore
	articles *store.ArticleStore
}

func NewUserHandler(users *store.UserStore, articles *store.ArticleStore) *UserHandler {
	return &UserHandler{users: users, articles: articles}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *UserHandler) GetByUsername(c *gin.Context) {
	user, err := h.users.GetByUsername(c.Param("username"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.Public()})
}

func (h *UserHandler) ListArticles(c *gin.Context) {
	articles, err := h.articles.ListByAuthor(c.Param("username"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}
