package stores

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"engagement-service/models"

	"gorm.io/gorm"
)

// RankedComment is a comment row with its live engagement aggregates attached.
// Popularity is like_count + reply_count, recomputed on every query rather than
// kept as a stored counter, so it can never drift from the underlying rows.
type RankedComment struct {
	ID              uint64    `json:"id"`
	ContentID       string    `json:"contentId"`
	ParentCommentID *uint64   `json:"parentCommentId,omitempty"`
	AuthorID        string    `json:"authorId"`
	Body            string    `json:"content" gorm:"column:body"`
	CreatedAt       time.Time `json:"createdAt"`
	LikeCount       int64     `json:"likeCount"`
	ReplyCount      int64     `json:"replyCount"`
	Popularity      int64     `json:"popularity"`
}

// SortKey returns the cursor that resumes the ranked order directly after this row.
func (r RankedComment) SortKey() Cursor {
	return Cursor{Popularity: r.Popularity, CreatedAt: r.CreatedAt, ID: r.ID}
}

// CommentStore owns every read and write against the comments table. All reads
// go through GORM's soft-delete scope (or repeat the deleted_at IS NULL
// predicate explicitly in raw SQL), so no two paths can disagree about what
// "deleted" means.
type CommentStore struct {
	db *gorm.DB
}

func NewCommentStore(db *gorm.DB) *CommentStore {
	return &CommentStore{db: db}
}

// Create inserts a top-level comment (parentID nil) or a reply. A reply's
// parent must be a visible top-level comment; the reply inherits the parent's
// content id so both always point at the same content item.
func (s *CommentStore) Create(ctx context.Context, contentID, authorID, body string, parentID *uint64) (*models.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("%w: comment body is required", ErrInvalidArgument)
	}
	if len(body) > models.MaxCommentLength {
		return nil, fmt.Errorf("%w: comment body exceeds %d characters", ErrInvalidArgument, models.MaxCommentLength)
	}
	if authorID == "" {
		return nil, fmt.Errorf("%w: author id is required", ErrInvalidArgument)
	}

	if parentID != nil {
		var parent models.Comment
		err := s.db.WithContext(ctx).First(&parent, *parentID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: parent comment %d", ErrNotFound, *parentID)
		}
		if err != nil {
			return nil, err
		}
		if parent.IsReply() {
			return nil, fmt.Errorf("%w: replies cannot be nested", ErrInvalidArgument)
		}
		contentID = parent.ContentID
	}
	if contentID == "" {
		return nil, fmt.Errorf("%w: content id is required", ErrInvalidArgument)
	}

	comment := models.Comment{
		ContentID:       contentID,
		ParentCommentID: parentID,
		AuthorID:        authorID,
		Body:            body,
		UpdatedBy:       authorID,
	}
	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListTopLevel returns one page of top-level comments for a content item,
// most popular first, oldest first among equals. Up to limit+1 rows come back
// so the caller can detect a next page without a second query; the caller
// trims the page and mints the next cursor from its last row.
func (s *CommentStore) ListTopLevel(ctx context.Context, contentID string, cursor *Cursor, limit int) ([]RankedComment, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidArgument, limit)
	}
	scope := s.rankedBase(ctx).Where("c.content_id = ? AND c.parent_comment_id IS NULL", contentID)
	return s.rankedPage(ctx, scope, cursor, limit)
}

// ListReplies pages through the replies of one parent comment with the same
// algorithm. Replies have no children, so their popularity is their like count.
func (s *CommentStore) ListReplies(ctx context.Context, parentCommentID uint64, cursor *Cursor, limit int) ([]RankedComment, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidArgument, limit)
	}
	scope := s.rankedBase(ctx).Where("c.parent_comment_id = ?", parentCommentID)
	return s.rankedPage(ctx, scope, cursor, limit)
}

// rankedBase selects comment rows with their per-row like and reply counts.
// The deleted_at predicates are spelled out because Table() bypasses the
// model's soft-delete scope.
func (s *CommentStore) rankedBase(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Table("comments AS c").
		Select(`c.id, c.content_id, c.parent_comment_id, c.author_id, c.body, c.created_at,
			(SELECT COUNT(*) FROM comment_likes l WHERE l.comment_id = c.id) AS like_count,
			(SELECT COUNT(*) FROM comments r WHERE r.parent_comment_id = c.id AND r.deleted_at IS NULL) AS reply_count`).
		Where("c.deleted_at IS NULL")
}

func (s *CommentStore) rankedPage(ctx context.Context, scope *gorm.DB, cursor *Cursor, limit int) ([]RankedComment, error) {
	q := s.db.WithContext(ctx).
		Table("(?) AS ranked", scope).
		Select("ranked.*, (ranked.like_count + ranked.reply_count) AS popularity")

	if cursor != nil {
		// Strictly after the cursor's sort key. Popularity is live, so a row
		// whose score moved between requests may repeat or be skipped; the
		// position itself is always well-defined.
		q = q.Where(`(ranked.like_count + ranked.reply_count) < ?
			OR ((ranked.like_count + ranked.reply_count) = ?
				AND (ranked.created_at > ? OR (ranked.created_at = ? AND ranked.id > ?)))`,
			cursor.Popularity, cursor.Popularity, cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
	}

	var rows []RankedComment
	err := q.Order("popularity DESC, created_at ASC, id ASC").
		Limit(limit + 1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountReplies reports how many visible replies a comment has.
func (s *CommentStore) CountReplies(ctx context.Context, parentCommentID uint64) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Comment{}).
		Where("parent_comment_id = ?", parentCommentID).
		Count(&n).Error
	return n, err
}

// FindByID returns a single visible comment, or ErrNotFound for missing and
// soft-deleted ids alike.
func (s *CommentStore) FindByID(ctx context.Context, id uint64) (*models.Comment, error) {
	var comment models.Comment
	err := s.db.WithContext(ctx).First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: comment %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindByContentID returns every visible comment on a content item, replies
// included, in insertion order.
func (s *CommentStore) FindByContentID(ctx context.Context, contentID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.WithContext(ctx).
		Where("content_id = ?", contentID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return comments, err
}

// Edit replaces a comment's body and records who touched it.
func (s *CommentStore) Edit(ctx context.Context, id uint64, actorID, body string) error {
	body = strings.TrimSpace(body)
	if body == "" {
		return fmt.Errorf("%w: comment body is required", ErrInvalidArgument)
	}
	if len(body) > models.MaxCommentLength {
		return fmt.Errorf("%w: comment body exceeds %d characters", ErrInvalidArgument, models.MaxCommentLength)
	}
	res := s.db.WithContext(ctx).Model(&models.Comment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"body": body, "updated_by": actorID})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: comment %d", ErrNotFound, id)
	}
	return nil
}

// Delete soft-deletes a comment and stamps the acting user. Deleting a comment
// that is already gone (or never existed) is a no-op, not an error. Replies are
// not cascaded: they stay visible until deleted themselves.
func (s *CommentStore) Delete(ctx context.Context, id uint64, actorID string) error {
	res := s.db.WithContext(ctx).Model(&models.Comment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"deleted_at": time.Now(), "updated_by": actorID})
	return res.Error
}
