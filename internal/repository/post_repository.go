package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Moinuddin-dotcom/roadmap-server/internal/models"
)

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection("posts")}
}

func (r *PostRepository) Create(ctx context.Context, p models.Post) (*mongo.InsertOneResult, error) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if p.Likes == nil {
		p.Likes = []string{}
	}
	if p.Dislikes == nil {
		p.Dislikes = []string{}
	}
	if p.Comments == nil {
		p.Comments = []models.Comment{}
	}
	return r.col.InsertOne(ctx, p)
}

// List returns posts filtered by category and sorted per the query.
// sortBy=likes goes through an aggregation so the sort key is the
// actual length of the likes array.
func (r *PostRepository) List(ctx context.Context, q ListQuery) ([]models.Post, error) {
	q = normalizeListQuery(q)

	filter := bson.M{}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	dir := sortDirection(q.SortOrder)

	if q.SortBy == sortByLikes {
		pipeline := mongo.Pipeline{
			bson.D{{Key: "$match", Value: filter}},
			bson.D{{Key: "$addFields", Value: bson.M{
				"likesCount": bson.M{"$size": bson.M{"$ifNull": bson.A{"$likes", bson.A{}}}},
			}}},
			bson.D{{Key: "$sort", Value: bson.D{
				{Key: "likesCount", Value: dir},
				{Key: "_id", Value: -1},
			}}},
			bson.D{{Key: "$project", Value: bson.M{"likesCount": 0}}},
		}
		cur, err := r.col.Aggregate(ctx, pipeline)
		if err != nil {
			return nil, err
		}
		defer cur.Close(ctx)

		posts := []models.Post{}
		if err := cur.All(ctx, &posts); err != nil {
			return nil, err
		}
		return posts, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: q.SortBy, Value: dir}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	posts := []models.Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id bson.ObjectID) (*models.Post, error) {
	var p models.Post
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateFields only touches the fields the caller supplied; omitted
// fields keep their stored value.
func (r *PostRepository) UpdateFields(ctx context.Context, id bson.ObjectID, upd PostUpdate) (*mongo.UpdateResult, error) {
	set := upd.setDoc()
	if len(set) == 0 {
		return nil, errors.New("no fields to update")
	}
	return r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
}

func (r *PostRepository) Delete(ctx context.Context, id bson.ObjectID) (*mongo.DeleteResult, error) {
	return r.col.DeleteOne(ctx, bson.M{"_id": id})
}

type LikeResult struct {
	Success    bool `json:"success"`
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likesCount"`
}

// toggleLikePipeline builds the single $set stage of the like toggle:
// liked -> un-like, not liked -> like and drop the user from dislikes.
func toggleLikePipeline(userEmail string) mongo.Pipeline {
	likes := bson.M{"$ifNull": bson.A{"$likes", bson.A{}}}
	dislikes := bson.M{"$ifNull": bson.A{"$dislikes", bson.A{}}}
	alreadyLiked := bson.M{"$in": bson.A{userEmail, likes}}
	without := func(arr bson.M) bson.M {
		// $filter keeps the remaining emails in insertion order
		return bson.M{"$filter": bson.M{
			"input": arr,
			"cond":  bson.M{"$ne": bson.A{"$$this", userEmail}},
		}}
	}

	return mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.M{
			"likes": bson.M{"$cond": bson.A{
				alreadyLiked,
				without(likes),
				bson.M{"$concatArrays": bson.A{likes, bson.A{userEmail}}},
			}},
			"dislikes": bson.M{"$cond": bson.A{
				alreadyLiked,
				dislikes,
				without(dislikes),
			}},
		}}},
	}
}

// ToggleLike flips the user's membership in the likes array in a single
// pipeline update. One round trip, so two concurrent toggles cannot lose
// each other's write, and the two arrays stay disjoint.
func (r *PostRepository) ToggleLike(ctx context.Context, id bson.ObjectID, userEmail string) (*LikeResult, error) {
	update := toggleLikePipeline(userEmail)
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var post models.Post
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &LikeResult{
		Success:    true,
		Liked:      hasEmail(post.Likes, userEmail),
		LikesCount: len(post.Likes),
	}, nil
}

// AddComment appends a fresh comment in one $push; no post, no comment.
func (r *PostRepository) AddComment(ctx context.Context, id bson.ObjectID, info models.CommentInfo) (*models.Comment, error) {
	comment := models.Comment{
		ID:          bson.NewObjectID(),
		CommentInfo: info,
		CreatedAt:   time.Now().UTC(),
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$push": bson.M{"comments": comment}})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return &comment, nil
}

// UpdateComment rewrites the text of the embedded comment matched by id.
func (r *PostRepository) UpdateComment(ctx context.Context, postID, commentID bson.ObjectID, text string) (*mongo.UpdateResult, error) {
	return r.col.UpdateOne(ctx,
		bson.M{"_id": postID, "comments._id": commentID},
		bson.M{"$set": bson.M{"comments.$.commentInfo.comment": text}},
	)
}

func (r *PostRepository) DeleteComment(ctx context.Context, postID, commentID bson.ObjectID) (*mongo.UpdateResult, error) {
	return r.col.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$pull": bson.M{"comments": bson.M{"_id": commentID}}},
	)
}

func hasEmail(list []string, email string) bool {
	for _, e := range list {
		if e == email {
			return true
		}
	}
	return false
}
