package handlers

import (
	"net/http"

	"newsdesk/internal/apperr"
	"newsdesk/internal/store"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	comments *store.CommentStore
}

func NewCommentHandler(comments *store.CommentStore) *CommentHandler {
	return &CommentHandler{comments: comments}
}

func (h *CommentHandler) ListByArticle(c *gin.Context) {
	comments, err := h.comments.ListByArticle(c.Param("article_id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (h *CommentHandler) Create(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Body     string `json:"body"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.BadRequest("Bad Request, Missing required fields"))
		return
	}

	comment, err := h.comments.Insert(c.Param("article_id"), req.Username, req.Body)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

func (h *CommentHandler) UpdateVotes(c *gin.Context) {
	var req struct {
		IncVotes *int `json:"inc_votes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.IncVotes == nil {
		fail(c, apperr.BadRequest("Bad Request inc_votes must be a number"))
		return
	}

	comment, err := h.comments.UpdateVotes(c.Param("comment_id"), *req.IncVotes)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.comments.Delete(c.Param("comment_id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
