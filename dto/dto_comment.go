package dto

type AddCommentRequest struct {
	Comment   string `json:"comment"`
	UserEmail string `json:"userEmail"`
	UserName  string `json:"userName"`
	UserPhoto string `json:"userPhoto"`
}

type UpdateCommentRequest struct {
	Comment string `json:"comment"`
}
