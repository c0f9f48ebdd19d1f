package repository

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Moinuddin-dotcom/roadmap-server/internal/models"
)

const sortByLikes = "likes"

// ListQuery carries the raw query parameters of GET /post.
type ListQuery struct {
	Category  string
	SortBy    string
	SortOrder string
}

// normalizeListQuery drops a category outside the board's three columns
// (the list then comes back unfiltered) and defaults the sort to newest
// first.
func normalizeListQuery(q ListQuery) ListQuery {
	if !models.ValidCategory(q.Category) {
		q.Category = ""
	}
	if q.SortBy == "" {
		q.SortBy = "createdAt"
	}
	if q.SortOrder != "asc" && q.SortOrder != "desc" {
		q.SortOrder = "desc"
	}
	return q
}

func sortDirection(order string) int {
	if order == "asc" {
		return 1
	}
	return -1
}

// PostUpdate holds the editable post fields; nil means "leave as is".
type PostUpdate struct {
	Title    *string
	Details  *string
	Category *string
}

func (u PostUpdate) setDoc() bson.M {
	set := bson.M{}
	if u.Title != nil {
		set["title"] = *u.Title
	}
	if u.Details != nil {
		set["details"] = *u.Details
	}
	if u.Category != nil {
		set["category"] = *u.Category
	}
	return set
}

// Empty reports whether the update would touch nothing.
func (u PostUpdate) Empty() bool {
	return u.Title == nil && u.Details == nil && u.Category == nil
}
