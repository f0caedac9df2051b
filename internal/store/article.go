package store

import (
	"errors"

	"newsdesk/internal/apperr"
	"newsdesk/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// defaultArticleImg is used when a new article comes in without an image.
const defaultArticleImg = "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700"

// validSortBy enumerates the only column names that may be interpolated into an
// ORDER BY clause. Sort input is checked against it before a statement is built;
// nothing outside this set ever reaches query text.
var validSortBy = map[string]bool{
	"author":          true,
	"title":           true,
	"article_id":      true,
	"topic":           true,
	"created_at":      true,
	"votes":           true,
	"article_img_url": true,
	"comment_count":   true,
}

var validOrders = map[string]bool{"asc": true, "desc": true}

const summaryColumns = "articles.author, articles.title, articles.article_id, articles.topic, " +
	"articles.created_at, articles.votes, articles.article_img_url, " +
	"COUNT(comments.comment_id) AS comment_count"

type ArticleStore struct {
	db *gorm.DB
}

func NewArticleStore(db *gorm.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// GetByID resolves a single article with its comment_count aggregate. The left
// join keeps zero-comment articles resolving with a count of 0.
func (s *ArticleStore) GetByID(id string) (*models.Article, error) {
	articleID, ok := parseID(id)
	if !ok {
		return nil, apperr.BadRequest("Invalid Identifier")
	}

	var article models.Article
	err := s.db.Model(&models.Article{}).
		Select("articles.*, COUNT(comments.comment_id) AS comment_count").
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
		Where("articles.article_id = ?", articleID).
		Group("articles.article_id").
		Take(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Article Not Found")
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// List returns the article summaries (no body) sorted by a whitelisted column.
// A topic filter is checked against the topics table first, so an unknown topic
// 404s while a known topic with no articles yields an empty list.
func (s *ArticleStore) List(sortBy, order, topic string) ([]models.ArticleSummary, error) {
	if sortBy == "" {
		sortBy = "created_at"
	}
	if order == "" {
		order = "desc"
	}
	if !validSortBy[sortBy] {
		return nil, apperr.BadRequest("Invalid sort_by query")
	}
	if !validOrders[order] {
		return nil, apperr.BadRequest("Invalid order query")
	}

	q := s.db.Model(&models.Article{}).
		Select(summaryColumns).
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
		Group("articles.article_id")

	if topic != "" {
		var t models.Topic
		if err := s.db.Take(&t, "slug = ?", topic).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("Topic Not Found!")
			}
			return nil, err
		}
		q = q.Where("articles.topic = ?", topic)
	}

	// Both values passed the whitelist above. Real columns are qualified so the
	// joined comments table can never make the sort ambiguous.
	orderExpr := "articles." + sortBy
	if sortBy == "comment_count" {
		orderExpr = "comment_count"
	}

	var articles []models.ArticleSummary
	if err := q.Order(orderExpr + " " + order).Scan(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// ListByAuthor distinguishes an unknown user from a known user with no articles:
// the former reads as a missing resource, the latter as an empty portfolio, and
// both 404 with their own message.
func (s *ArticleStore) ListByAuthor(username string) ([]models.ArticleSummary, error) {
	var user models.User
	if err := s.db.Take(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("username not found!")
		}
		return nil, err
	}

	var articles []models.ArticleSummary
	err := s.db.Model(&models.Article{}).
		Select(summaryColumns).
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
		Where("articles.author = ?", username).
		Group("articles.article_id").
		Order("created_at desc").
		Scan(&articles).Error
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, apperr.NotFound("No articles found")
	}
	return articles, nil
}

func (s *ArticleStore) Create(title, topic, author, body, imgURL string) (*models.Article, error) {
	if title == "" || topic == "" || author == "" || body == "" {
		return nil, apperr.BadRequest("Bad Request, Missing required fields")
	}
	if imgURL == "" {
		imgURL = defaultArticleImg
	}

	article := models.Article{
		Title:         title,
		Topic:         topic,
		Author:        author,
		Body:          body,
		ArticleImgURL: imgURL,
	}
	if err := s.db.Omit(clause.Associations).Create(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, apperr.NotFound("topic or author not found")
		}
		return nil, err
	}
	return &article, nil
}

// UpdateVotes applies the delta as a single read-modify-write statement so
// concurrent increments never lose updates.
func (s *ArticleStore) UpdateVotes(id string, incVotes int) (*models.Article, error) {
	articleID, ok := parseID(id)
	if !ok {
		return nil, apperr.BadRequest("Invalid Identifier")
	}

	res := s.db.Model(&models.Article{}).
		Where("article_id = ?", articleID).
		UpdateColumn("votes", gorm.Expr("votes + ?", incVotes))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("Article Not Found")
	}
	return s.GetByID(id)
}
