package store

import (
	"newsdesk/internal/models"

	"gorm.io/gorm"
)

type TopicStore struct {
	db *gorm.DB
}

func NewTopicStore(db *gorm.DB) *TopicStore {
	return &TopicStore{db: db}
}

func (s *TopicStore) List() ([]models.Topic, error) {
	var topics []models.Topic
	if err := s.db.Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}
