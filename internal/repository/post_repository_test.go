package repository

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Moinuddin-dotcom/roadmap-server/internal/models"
)

// The toggle is one $set stage over exactly the likes and dislikes
// fields. Both arms of every $cond are checked against the email so a
// misspelled field name or a swapped branch cannot slip through.
func TestToggleLikePipelineShape(t *testing.T) {
	const email = "a@x.com"
	p := toggleLikePipeline(email)
	require.Len(t, p, 1)

	stage := p[0]
	require.Len(t, stage, 1)
	require.Equal(t, "$set", stage[0].Key)

	set, ok := stage[0].Value.(bson.M)
	require.True(t, ok)
	require.Len(t, set, 2, "the toggle must touch likes and dislikes, nothing else")
	require.Contains(t, set, "likes")
	require.Contains(t, set, "dislikes")

	likesCond, ok := set["likes"].(bson.M)["$cond"].(bson.A)
	require.True(t, ok)
	require.Len(t, likesCond, 3)

	// membership test reads the likes array
	in, ok := likesCond[0].(bson.M)["$in"].(bson.A)
	require.True(t, ok)
	assert.Equal(t, email, in[0])
	assert.Equal(t, bson.M{"$ifNull": bson.A{"$likes", bson.A{}}}, in[1])

	// already liked: the un-like arm filters the email out of likes
	unlike, ok := likesCond[1].(bson.M)["$filter"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, bson.M{"$ifNull": bson.A{"$likes", bson.A{}}}, unlike["input"])
	assert.Equal(t, bson.M{"$ne": bson.A{"$$this", email}}, unlike["cond"])

	// not liked yet: the like arm appends the email to likes
	concat, ok := likesCond[2].(bson.M)["$concatArrays"].(bson.A)
	require.True(t, ok)
	assert.Equal(t, bson.M{"$ifNull": bson.A{"$likes", bson.A{}}}, concat[0])
	assert.Equal(t, bson.A{email}, concat[1])

	dislikesCond, ok := set["dislikes"].(bson.M)["$cond"].(bson.A)
	require.True(t, ok)
	require.Len(t, dislikesCond, 3)

	// both arms share the membership test on likes
	assert.Equal(t, likesCond[0], dislikesCond[0])

	// already liked: dislikes stay as they are
	assert.Equal(t, bson.M{"$ifNull": bson.A{"$dislikes", bson.A{}}}, dislikesCond[1])

	// not liked yet: liking drops the email from dislikes
	undislike, ok := dislikesCond[2].(bson.M)["$filter"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, bson.M{"$ifNull": bson.A{"$dislikes", bson.A{}}}, undislike["input"])
	assert.Equal(t, bson.M{"$ne": bson.A{"$$this", email}}, undislike["cond"])
}

// testRepo connects to a live database when MONGO_URI is set; the
// integration tests below are skipped otherwise.
func testRepo(t *testing.T) *PostRepository {
	t.Helper()
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return NewPostRepository(client.Database("roadmapDB_test"))
}

func TestToggleLikeInvolution(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	res, err := repo.Create(ctx, models.Post{
		Title:    "toggle target",
		Category: models.CategoryTodo,
		Dislikes: []string{"a@x.com"},
	})
	require.NoError(t, err)
	id := res.InsertedID.(bson.ObjectID)
	t.Cleanup(func() { _, _ = repo.Delete(context.Background(), id) })

	// liking moves the user out of dislikes
	first, err := repo.ToggleLike(ctx, id, "a@x.com")
	require.NoError(t, err)
	assert.True(t, first.Liked)
	assert.Equal(t, 1, first.LikesCount)

	post, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.com"}, post.Likes)
	assert.NotContains(t, post.Dislikes, "a@x.com", "likes and dislikes must stay disjoint")

	// toggling again restores the original like set
	second, err := repo.ToggleLike(ctx, id, "a@x.com")
	require.NoError(t, err)
	assert.False(t, second.Liked)
	assert.Equal(t, 0, second.LikesCount)

	post, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, post.Likes)
	assert.NotContains(t, post.Dislikes, "a@x.com")
}

func TestToggleLikeMissingPost(t *testing.T) {
	repo := testRepo(t)

	_, err := repo.ToggleLike(context.Background(), bson.NewObjectID(), "a@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
