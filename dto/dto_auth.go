package dto

type TokenRequest struct {
	Email string `json:"email"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
