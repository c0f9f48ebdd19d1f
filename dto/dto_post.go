package dto

// CreatePostRequest is the writable surface of a new post; likes,
// dislikes and comments always start empty server-side.
type CreatePostRequest struct {
	Title       string `json:"title"`
	Details     string `json:"details"`
	Category    string `json:"category"`
	AuthorEmail string `json:"authorEmail"`
	AuthorName  string `json:"authorName"`
}

// UpdatePostRequest distinguishes an omitted field (nil) from an empty
// one, so a partial edit never wipes the other fields.
type UpdatePostRequest struct {
	Title    *string `json:"title"`
	Details  *string `json:"details"`
	Category *string `json:"category"`
}

type LikeRequest struct {
	UserEmail string `json:"userEmail"`
}

type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
