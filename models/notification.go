package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationType int

const (
	LikeNotification NotificationType = iota + 1
	CommentNotification
	ReplyNotification
)

type Notification struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Type        NotificationType   `json:"type" bson:"type"`
	UserID      string             `json:"userid" bson:"userid"`
	InitiatorID string             `json:"initiatorid" bson:"initatorid"` // the person who triggered this notification
	ContentID   string             `json:"contentid" bson:"contentid"`
	Message     string             `json:"message" bson:"message"`
	Status      string             `json:"status" bson:"status"`
	DateCreated time.Time          `json:"datecreated,omitempty" bson:"datecreated,omitempty"`
	UpdatedAt   time.Time          `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}
