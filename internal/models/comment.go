package models

import (
	"time"
)

type Comment struct {
	CommentID uint      `gorm:"primaryKey" json:"comment_id"`
	Author    string    `gorm:"index;not null" json:"author"`
	ArticleID uint      `gorm:"index;not null" json:"article_id"`
	Votes     int       `gorm:"default:0" json:"votes"`
	CreatedAt time.Time `json:"created_at"`
	Body      string    `gorm:"type:text;not null" json:"body"`

	AuthorRef  User    `gorm:"foreignKey:Author;references:Username;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	ArticleRef Article `gorm:"foreignKey:ArticleID;references:ArticleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
