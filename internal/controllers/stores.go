package controllers

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Moinuddin-dotcom/roadmap-server/internal/models"
	"github.com/Moinuddin-dotcom/roadmap-server/internal/repository"
)

// UserStore is what the user handlers need from the users collection.
type UserStore interface {
	CreateIfAbsent(ctx context.Context, u models.User) (*mongo.InsertOneResult, bool, error)
	ListAll(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// PostStore is what the post handlers need from the posts collection.
type PostStore interface {
	Create(ctx context.Context, p models.Post) (*mongo.InsertOneResult, error)
	List(ctx context.Context, q repository.ListQuery) ([]models.Post, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*models.Post, error)
	UpdateFields(ctx context.Context, id bson.ObjectID, upd repository.PostUpdate) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id bson.ObjectID) (*mongo.DeleteResult, error)
	ToggleLike(ctx context.Context, id bson.ObjectID, userEmail string) (*repository.LikeResult, error)
	AddComment(ctx context.Context, id bson.ObjectID, info models.CommentInfo) (*models.Comment, error)
	UpdateComment(ctx context.Context, postID, commentID bson.ObjectID, text string) (*mongo.UpdateResult, error)
	DeleteComment(ctx context.Context, postID, commentID bson.ObjectID) (*mongo.UpdateResult, error)
}
