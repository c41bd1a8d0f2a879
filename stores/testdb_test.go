package stores

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"engagement-service/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a per-test in-memory database and migrates the engagement
// tables. cache=shared with a single connection keeps the database alive and
// consistent across the pooled handles GORM opens.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&models.Comment{}, &models.CommentLike{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// seedComment inserts a comment row with an explicit creation time so ordering
// scenarios are deterministic.
func seedComment(t *testing.T, db *gorm.DB, contentID string, parentID *uint64, authorID, body string, createdAt time.Time) models.Comment {
	t.Helper()

	comment := models.Comment{
		ContentID:       contentID,
		ParentCommentID: parentID,
		AuthorID:        authorID,
		Body:            body,
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
		UpdatedBy:       authorID,
	}
	if err := db.Create(&comment).Error; err != nil {
		t.Fatalf("failed to seed comment: %v", err)
	}
	return comment
}

func seedLike(t *testing.T, db *gorm.DB, commentID uint64, userID string) {
	t.Helper()

	like := models.CommentLike{CommentID: commentID, UserID: userID, DateCreated: time.Now()}
	if err := db.Create(&like).Error; err != nil {
		t.Fatalf("failed to seed like: %v", err)
	}
}

func ptr(v uint64) *uint64 { return &v }
