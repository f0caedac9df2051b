package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// endpoints is the catalogue served at GET /api.
var endpoints = gin.H{
	"GET /api":                             "serves a description of all available endpoints",
	"GET /api/topics":                      "serves a list of all topics",
	"GET /api/articles":                    "serves a list of article summaries; accepts sort_by, order and topic queries",
	"POST /api/articles":                   "creates a new article",
	"GET /api/articles/:article_id":        "serves a single article with its comment_count",
	"PATCH /api/articles/:article_id":      "applies an inc_votes delta to an article",
	"GET /api/articles/:article_id/comments":  "serves an article's comments, most recent first",
	"POST /api/articles/:article_id/comments": "adds a comment to an article",
	"PATCH /api/comments/:comment_id":      "applies an inc_votes delta to a comment",
	"DELETE /api/comments/:comment_id":     "deletes a comment",
	"GET /api/users":                       "serves a list of all users",
	"GET /api/users/:username":             "serves a single user",
	"GET /api/users/:username/articles":    "serves the articles written by a user",
	"POST /api/users":                      "signs up a new user and returns a token",
	"POST /api/login":                      "authenticates a user and returns a token",
	"GET /api/secure-data":                 "sample endpoint requiring a bearer token",
}

func Endpoints(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"endpoints": endpoints})
}
