package seed

import (
	"strings"
	"testing"

	"newsdesk/internal/models"
	"newsdesk/internal/utils"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	return gdb
}

func count(t *testing.T, gdb *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := gdb.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return n
}

func TestRunLoadsFixturesInDependencyOrder(t *testing.T) {
	gdb := openDB(t)
	data := DevData()

	if err := Run(gdb, data); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if n := count(t, gdb, &models.Topic{}); n != int64(len(data.Topics)) {
		t.Errorf("expected %d topics, got %d", len(data.Topics), n)
	}
	if n := count(t, gdb, &models.User{}); n != int64(len(data.Users)) {
		t.Errorf("expected %d users, got %d", len(data.Users), n)
	}
	if n := count(t, gdb, &models.Article{}); n != int64(len(data.Articles)) {
		t.Errorf("expected %d articles, got %d", len(data.Articles), n)
	}
	if n := count(t, gdb, &models.Comment{}); n != int64(len(data.Comments)) {
		t.Errorf("expected %d comments, got %d", len(data.Comments), n)
	}
}

func TestRunResolvesCommentTitles(t *testing.T) {
	gdb := openDB(t)
	if err := Run(gdb, DevData()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	var article models.Article
	if err := gdb.Take(&article, "title = ?", "Eight pug gifs that remind me of mitch").Error; err != nil {
		t.Fatalf("article lookup failed: %v", err)
	}

	var comment models.Comment
	if err := gdb.Take(&comment, "body = ?", "git push origin master").Error; err != nil {
		t.Fatalf("comment lookup failed: %v", err)
	}
	if comment.ArticleID != article.ArticleID {
		t.Errorf("comment points at article %d, want %d", comment.ArticleID, article.ArticleID)
	}
}

func TestRunHashesPasswords(t *testing.T) {
	gdb := openDB(t)
	if err := Run(gdb, DevData()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	var user models.User
	if err := gdb.Take(&user, "username = ?", "butter_bridge").Error; err != nil {
		t.Fatalf("user lookup failed: %v", err)
	}
	if user.Password == "butter123" {
		t.Fatal("password stored in plaintext")
	}
	if !utils.CheckPasswordHash("butter123", user.Password) {
		t.Error("stored hash does not verify against the fixture password")
	}
}

func TestRunNormalizesTimestamps(t *testing.T) {
	gdb := openDB(t)
	if err := Run(gdb, DevData()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	var article models.Article
	if err := gdb.Take(&article, "title = ?", "Living in the shadow of a great man").Error; err != nil {
		t.Fatalf("article lookup failed: %v", err)
	}
	if article.CreatedAt.UnixMilli() != 1594329060000 {
		t.Errorf("expected fixture timestamp preserved, got %v", article.CreatedAt)
	}
}

func TestRunIsRepeatable(t *testing.T) {
	gdb := openDB(t)

	for i := 0; i < 2; i++ {
		if err := Run(gdb, DevData()); err != nil {
			t.Fatalf("Run #%d failed: %v", i+1, err)
		}
	}

	if n := count(t, gdb, &models.Article{}); n != 6 {
		t.Errorf("expected a clean rebuild with 6 articles, got %d", n)
	}
}

func TestRunRejectsUnknownArticleTitle(t *testing.T) {
	gdb := openDB(t)
	data := DevData()
	data.Comments = append(data.Comments, CommentData{
		Body:         "orphan",
		ArticleTitle: "This article does not exist",
		Author:       "lurker",
	})

	err := Run(gdb, data)
	if err == nil {
		t.Fatal("expected Run to fail on an unresolvable title")
	}
	if !strings.Contains(err.Error(), "unknown article title") {
		t.Errorf("unexpected error: %v", err)
	}
}
