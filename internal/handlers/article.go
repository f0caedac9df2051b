package handlers

import (
	"net/http"

	"newsdesk/internal/apperr"
	"newsdesk/internal/store"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articles *store.ArticleStore
}

func NewArticleHandler(articles *store.ArticleStore) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

func (h *ArticleHandler) GetByID(c *gin.Context) {
	article, err := h.articles.GetByID(c.Param("article_id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.articles.List(c.Query("sort_by"), c.Query("order"), c.Query("topic"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

func (h *ArticleHandler) Create(c *gin.Context) {
	var req struct {
		Title         string `json:"title"`
		Topic         string `json:"topic"`
		Author        string `json:"author"`
		Body          string `json:"body"`
		ArticleImgURL string `json:"article_img_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.BadRequest("Bad Request, Missing required fields"))
		return
	}

	article, err := h.articles.Create(req.Title, req.Topic, req.Author, req.Body, req.ArticleImgURL)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"article": article})
}

func (h *ArticleHandler) UpdateVotes(c *gin.Context) {
	// *int so a numeric string or a missing field both read as "not a number".
	var req struct {
		IncVotes *int `json:"inc_votes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.IncVotes == nil {
		fail(c, apperr.BadRequest("Bad Request inc_votes must be a number"))
		return
	}

	article, err := h.articles.UpdateVotes(c.Param("article_id"), *req.IncVotes)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}
