package store

import (
	"errors"

	"newsdesk/internal/apperr"
	"newsdesk/internal/models"

	"gorm.io/gorm"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// List returns the public projection only; the credential column is never selected.
func (s *UserStore) List() ([]models.PublicUser, error) {
	var users []models.PublicUser
	err := s.db.Model(&models.User{}).
		Select("username, name, avatar_url").
		Scan(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetByUsername returns the full row, hash included. Login needs it; every
// handler strips it before responding.
func (s *UserStore) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.db.Take(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("username not found!")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create persists a user whose password has already been hashed by the caller.
func (s *UserStore) Create(username, name, avatarURL, hashedPassword string) (*models.PublicUser, error) {
	if username == "" || name == "" || hashedPassword == "" {
		return nil, apperr.BadRequest("Missing required fields!")
	}

	user := models.User{
		Username:  username,
		Name:      name,
		AvatarURL: avatarURL,
		Password:  hashedPassword,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	public := user.Public()
	return &public, nil
}
