package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// CommentInfo is the author-supplied payload of a comment.
type CommentInfo struct {
	Comment   string `json:"comment"             bson:"comment"`
	UserEmail string `json:"userEmail,omitempty" bson:"userEmail,omitempty"`
	UserName  string `json:"userName,omitempty"  bson:"userName,omitempty"`
	UserPhoto string `json:"userPhoto,omitempty" bson:"userPhoto,omitempty"`
}

// Comment is embedded in its parent post and addressed by its own id.
type Comment struct {
	ID          bson.ObjectID `json:"_id"         bson:"_id"`
	CommentInfo CommentInfo   `json:"commentInfo" bson:"commentInfo"`
	CreatedAt   time.Time     `json:"createdAt"   bson:"createdAt"`
}

type Post struct {
	ID          bson.ObjectID `json:"_id,omitempty"         bson:"_id,omitempty"`
	Title       string        `json:"title"                 bson:"title"`
	Details     string        `json:"details"               bson:"details"`
	Category    string        `json:"category"              bson:"category"`
	AuthorEmail string        `json:"authorEmail,omitempty" bson:"authorEmail,omitempty"`
	AuthorName  string        `json:"authorName,omitempty"  bson:"authorName,omitempty"`
	Likes       []string      `json:"likes"                 bson:"likes"`
	Dislikes    []string      `json:"dislikes"              bson:"dislikes"`
	Comments    []Comment     `json:"comments"              bson:"comments"`
	CreatedAt   time.Time     `json:"createdAt"             bson:"createdAt"`
}
