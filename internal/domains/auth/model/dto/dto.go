package dto

type CreateSessionRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type CreateSessionResponse struct {
	Success bool `json:"success"`
}
