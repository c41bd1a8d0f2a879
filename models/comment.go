package models

import (
	"time"

	"gorm.io/gorm"
)

// Same as Instagram caption limit
const MaxCommentLength = 2200

type Comment struct {
	ID              uint64         `json:"id" gorm:"primaryKey;autoIncrement"`
	ContentID       string         `json:"contentId" gorm:"column:content_id;type:varchar(24);not null;index"`
	ParentCommentID *uint64        `json:"parentCommentId,omitempty" gorm:"column:parent_comment_id;index"` // nil for top-level comments
	AuthorID        string         `json:"authorId" gorm:"column:author_id;type:varchar(24);not null"`
	Body            string         `json:"content" gorm:"column:body;type:text;not null"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"-"`
	UpdatedBy       string         `json:"-" gorm:"column:updated_by;type:varchar(24)"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Comment) TableName() string {
	return "comments"
}

// IsReply reports whether the comment sits under a top-level comment.
// Nesting is one level deep: a reply can never be another reply's parent.
func (c *Comment) IsReply() bool {
	return c.ParentCommentID != nil
}

type CommentInput struct {
	Comment string `json:"comment"`
}
