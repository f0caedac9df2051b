package models

import (
	"time"
)

type Article struct {
	ArticleID     uint      `gorm:"primaryKey" json:"article_id"`
	Title         string    `gorm:"not null" json:"title"`
	Topic         string    `gorm:"index;not null" json:"topic"`
	Author        string    `gorm:"index;not null" json:"author"`
	Body          string    `gorm:"type:text;not null" json:"body"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `gorm:"default:0" json:"votes"`
	ArticleImgURL string    `gorm:"size:1000" json:"article_img_url"`

	TopicRef  Topic `gorm:"foreignKey:Topic;references:Slug;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	AuthorRef User  `gorm:"foreignKey:Author;references:Username;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`

	// Derived aggregate, filled by the joined queries. Not a column.
	CommentCount int `gorm:"->;-:migration" json:"comment_count"`
}

// ArticleSummary is the list projection: body excluded, comment_count always present.
type ArticleSummary struct {
	ArticleID     uint      `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}
