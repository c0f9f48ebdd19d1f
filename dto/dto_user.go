package dto

type RoleResponse struct {
	Role string `json:"role"`
}

// UserExistsResponse mirrors the sign-in answer for an already known
// email: no insertion happened.
type UserExistsResponse struct {
	Message    string `json:"message"`
	InsertedID any    `json:"insertedId"`
}
