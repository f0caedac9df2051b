package handlers

import (
	"net/http"

	"newsdesk/internal/store"

	"github.com/gin-gonic/gin"
)

type TopicHandler struct {
	topics *store.TopicStore
}

func NewTopicHandler(topics *store.TopicStore) *TopicHandler {
	return &TopicHandler{topics: topics}
}

func (h *TopicHandler) List(c *gin.Context) {
	topics, err := h.topics.List()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}
