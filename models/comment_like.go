package models

import "time"

// CommentLike is one user's like on one comment. The composite unique index is
// what makes the like endpoint a toggle: a second like from the same user
// removes the row instead of inserting a duplicate.
type CommentLike struct {
	ID          uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	CommentID   uint64    `json:"commentId" gorm:"column:comment_id;not null;uniqueIndex:idx_comment_user"`
	UserID      string    `json:"userID" gorm:"column:user_id;type:varchar(24);not null;uniqueIndex:idx_comment_user"`
	DateCreated time.Time `json:"datecreated" gorm:"column:datecreated;autoCreateTime"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}
