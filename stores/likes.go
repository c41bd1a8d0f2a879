package stores

import (
	"context"
	"errors"
	"fmt"
	"time"

	"engagement-service/models"

	"gorm.io/gorm"
)

// LikeStore manages per-user comment likes. Unlike comments, likes are hard
// rows: unliking removes the record instead of flagging it.
type LikeStore struct {
	db *gorm.DB
}

func NewLikeStore(db *gorm.DB) *LikeStore {
	return &LikeStore{db: db}
}

// Toggle records a like for (commentID, userID), or removes the existing one.
// Returns true when the call resulted in a like, false when it removed one.
func (s *LikeStore) Toggle(ctx context.Context, commentID uint64, userID string) (bool, error) {
	if userID == "" {
		return false, fmt.Errorf("%w: user id is required", ErrInvalidArgument)
	}

	var existing models.CommentLike
	err := s.db.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		var visible int64
		if err := s.db.WithContext(ctx).Model(&models.Comment{}).
			Where("id = ?", commentID).Count(&visible).Error; err != nil {
			return false, err
		}
		if visible == 0 {
			return false, fmt.Errorf("%w: comment %d", ErrNotFound, commentID)
		}
		like := models.CommentLike{
			CommentID:   commentID,
			UserID:      userID,
			DateCreated: time.Now(),
		}
		if err := s.db.WithContext(ctx).Create(&like).Error; err != nil {
			return false, err
		}
		return true, nil
	}
	if err != nil {
		return false, err
	}

	if err := s.db.WithContext(ctx).Delete(&models.CommentLike{}, existing.ID).Error; err != nil {
		return false, err
	}
	return false, nil
}

// Count reports how many users currently like a comment.
func (s *LikeStore) Count(ctx context.Context, commentID uint64) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.CommentLike{}).
		Where("comment_id = ?", commentID).
		Count(&n).Error
	return n, err
}
