package handlers

import (
	"net/http"

	"newsdesk/internal/apperr"
	"newsdesk/internal/middleware"
	"newsdesk/internal/store"
	"newsdesk/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users *store.UserStore
}

func NewAuthHandler(users *store.UserStore) *AuthHandler {
	return &AuthHandler{users: users}
}

// Signup hashes the credential here, hands the hash to the store, and issues a
// token so a fresh signup is immediately logged in.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req struct {
		Username  string `json:"username"`
		Name      string `json:"name"`
		AvatarURL string `json:"avatar_url"`
		Password  string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.BadRequest("Missing required fields!"))
		return
	}
	if req.Username == "" || req.Name == "" || req.Password == "" {
		fail(c, apperr.BadRequest("Missing required fields!"))
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	user, err := h.users.Create(req.Username, req.Name, req.AvatarURL, hash)
	if err != nil {
		fail(c, err)
		return
	}

	token, err := utils.SignToken(user.Username)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

// Login answers 401 for an unknown username and for a wrong password alike, so
// the response never confirms which half was wrong.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.New(http.StatusUnauthorized, "Invalid Credentials"))
		return
	}

	user, err := h.users.GetByUsername(req.Username)
	if err != nil {
		if apperr.From(err).Status == http.StatusNotFound {
			fail(c, apperr.New(http.StatusUnauthorized, "Invalid Credentials"))
		} else {
			fail(c, err)
		}
		return
	}
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		fail(c, apperr.New(http.StatusUnauthorized, "Invalid Credentials"))
		return
	}

	token, err := utils.SignToken(user.Username)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user.Public()})
}

// SecureData is the sample bearer-protected endpoint.
func (h *AuthHandler) SecureData(c *gin.Context) {
	username := c.MustGet(middleware.UserKey).(string)
	c.JSON(http.StatusOK, gin.H{"msg": "This is protected data", "username": username})
}
