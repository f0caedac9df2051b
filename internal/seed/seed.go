// Package seed rebuilds the schema and bulk-loads fixture collections in
// dependency order. It is a rebuild pipeline, not a live migration: a failed
// stage aborts the run and the fix is to run it again.
package seed

import (
	"fmt"
	"log"
	"time"

	"newsdesk/internal/models"
	"newsdesk/internal/utils"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Fixture rows reference parents by natural key. Comments name their article by
// title because the surrogate id does not exist until the articles are inserted.
type TopicData struct {
	Slug        string
	Description string
	ImgURL      string
}

type UserData struct {
	Username  string
	Name      string
	AvatarURL string
	Password  string // plaintext in fixtures, hashed during load
}

type ArticleData struct {
	Title         string
	Topic         string
	Author        string
	Body          string
	CreatedAt     int64 // unix milliseconds, normalized during load
	Votes         int
	ArticleImgURL string
}

type CommentData struct {
	Body         string
	ArticleTitle string
	Author       string
	Votes        int
	CreatedAt    int64
}

type Data struct {
	Topics   []TopicData
	Users    []UserData
	Articles []ArticleData
	Comments []CommentData
}

// Migrate builds the four entity tables in dependency order, foreign keys
// included. The server calls this at startup too, so the query services always
// see the same shape the loader produces.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Topic{},
		&models.User{},
		&models.Article{},
		&models.Comment{},
	)
}

// Run drops everything, rebuilds the schema and loads the fixture set. Stages
// are strictly sequential; children load only after the parents they reference.
func Run(db *gorm.DB, data *Data) error {
	if err := drop(db); err != nil {
		return err
	}
	if err := Migrate(db); err != nil {
		return err
	}
	if err := loadTopics(db, data.Topics); err != nil {
		return err
	}
	if err := loadUsers(db, data.Users); err != nil {
		return err
	}
	lookup, err := loadArticles(db, data.Articles)
	if err != nil {
		return err
	}
	if err := loadComments(db, data.Comments, lookup); err != nil {
		return err
	}
	log.Println("Seed completed")
	return nil
}

func drop(db *gorm.DB) error {
	// children first, parents last
	for _, m := range []interface{}{&models.Comment{}, &models.Article{}, &models.Topic{}, &models.User{}} {
		if err := db.Migrator().DropTable(m); err != nil {
			return err
		}
	}
	return nil
}

func loadTopics(db *gorm.DB, data []TopicData) error {
	if len(data) == 0 {
		return nil
	}
	topics := make([]models.Topic, len(data))
	for i, t := range data {
		topics[i] = models.Topic{Slug: t.Slug, Description: t.Description, ImgURL: t.ImgURL}
	}
	return db.Create(&topics).Error
}

// loadUsers hashes every fixture password concurrently, then issues a single
// batched insert once all hashes are in.
func loadUsers(db *gorm.DB, data []UserData) error {
	if len(data) == 0 {
		return nil
	}
	users := make([]models.User, len(data))

	var g errgroup.Group
	for i, u := range data {
		i, u := i, u
		g.Go(func() error {
			hash, err := utils.HashPassword(u.Password)
			if err != nil {
				return err
			}
			users[i] = models.User{
				Username:  u.Username,
				Name:      u.Name,
				AvatarURL: u.AvatarURL,
				Password:  hash,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return db.Create(&users).Error
}

// loadArticles inserts the batch and returns the title→generated-id lookup the
// comment stage needs. The insert writes the generated ids back into the slice.
func loadArticles(db *gorm.DB, data []ArticleData) (map[string]uint, error) {
	lookup := make(map[string]uint, len(data))
	if len(data) == 0 {
		return lookup, nil
	}

	articles := make([]models.Article, len(data))
	for i, a := range data {
		articles[i] = models.Article{
			Title:         a.Title,
			Topic:         a.Topic,
			Author:        a.Author,
			Body:          a.Body,
			CreatedAt:     normalizeTimestamp(a.CreatedAt),
			Votes:         a.Votes,
			ArticleImgURL: a.ArticleImgURL,
		}
	}
	if err := db.Omit(clause.Associations).Create(&articles).Error; err != nil {
		return nil, err
	}

	for _, a := range articles {
		lookup[a.Title] = a.ArticleID
	}
	return lookup, nil
}

func loadComments(db *gorm.DB, data []CommentData, lookup map[string]uint) error {
	if len(data) == 0 {
		return nil
	}
	comments := make([]models.Comment, len(data))
	for i, c := range data {
		articleID, ok := lookup[c.ArticleTitle]
		if !ok {
			return fmt.Errorf("seed: comment references unknown article title %q", c.ArticleTitle)
		}
		comments[i] = models.Comment{
			ArticleID: articleID,
			Body:      c.Body,
			Votes:     c.Votes,
			Author:    c.Author,
			CreatedAt: normalizeTimestamp(c.CreatedAt),
		}
	}
	return db.Omit(clause.Associations).Create(&comments).Error
}

func normalizeTimestamp(ms int64) time.Time {
	if ms == 0 {
		return time.Now()
	}
	return time.UnixMilli(ms).UTC()
}
