package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommentCollection is the collection holding comment documents.
const CommentCollection = "comments"

// CommentModel is the BSON document stored in the 'comments' collection.
type CommentModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Author    string             `bson:"author"`
	Content   string             `bson:"content"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt *time.Time         `bson:"updatedAt,omitempty"`
}
