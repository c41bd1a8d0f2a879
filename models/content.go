package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Content mirrors the fields of the content catalog this service needs to
// resolve who owns a piece of content. The catalog itself belongs to the
// content subsystem; nothing here writes to it.
type Content struct {
	Id          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID      string             `json:"userID" bson:"userid"`
	Title       string             `json:"title,omitempty" bson:"title,omitempty"`
	Show        bool               `json:"show,omitempty" bson:"show"`
	IsDeleted   bool               `json:"isdeleted,omitempty" bson:"isdeleted"`
	DateCreated time.Time          `json:"datecreated,omitempty" bson:"datecreated"`
}
