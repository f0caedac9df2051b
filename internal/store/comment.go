package store

import (
	"errors"

	"newsdesk/internal/apperr"
	"newsdesk/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentStore struct {
	db *gorm.DB
}

func NewCommentStore(db *gorm.DB) *CommentStore {
	return &CommentStore{db: db}
}

// articleExists checks the articles table directly rather than inferring
// existence from comment rows, so an article with no comments still resolves.
func (s *CommentStore) articleExists(id int) error {
	var article models.Article
	err := s.db.Select("article_id").Take(&article, "article_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Article Not Found")
	}
	return err
}

// ListByArticle returns an article's comments, most recent first. That ordering
// is part of the contract, not an accident of insertion order.
func (s *CommentStore) ListByArticle(articleID string) ([]models.Comment, error) {
	id, ok := parseID(articleID)
	if !ok {
		return nil, apperr.BadRequest("Invalid Identifier")
	}
	if err := s.articleExists(id); err != nil {
		return nil, err
	}

	var comments []models.Comment
	if err := s.db.Where("article_id = ?", id).Order("created_at DESC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// Insert validates required fields before touching storage, confirms the target
// article, then writes the row. The returned comment carries the generated id
// and timestamp.
func (s *CommentStore) Insert(articleID, username, body string) (*models.Comment, error) {
	if username == "" || body == "" {
		return nil, apperr.BadRequest("Bad Request, Missing required fields")
	}
	id, ok := parseID(articleID)
	if !ok {
		return nil, apperr.BadRequest("Invalid Identifier")
	}
	if err := s.articleExists(id); err != nil {
		return nil, err
	}

	comment := models.Comment{
		Author:    username,
		ArticleID: uint(id),
		Body:      body,
	}
	if err := s.db.Omit(clause.Associations).Create(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, apperr.NotFound("username not found!")
		}
		return nil, err
	}
	return &comment, nil
}

func (s *CommentStore) UpdateVotes(commentID string, incVotes int) (*models.Comment, error) {
	id, ok := parseID(commentID)
	if !ok {
		return nil, apperr.BadRequest("Invalid Identifier")
	}

	res := s.db.Model(&models.Comment{}).
		Where("comment_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", incVotes))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("Comment Not Found")
	}

	var comment models.Comment
	if err := s.db.Take(&comment, "comment_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// Delete hard-deletes a comment; the row count tells us whether it existed.
func (s *CommentStore) Delete(commentID string) error {
	id, ok := parseID(commentID)
	if !ok {
		return apperr.BadRequest("Invalid Identifier")
	}

	res := s.db.Delete(&models.Comment{}, "comment_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Comment Not Found")
	}
	return nil
}
