package handler

type createCommentRequest struct {
	MovieID string `json:"movieId" validate:"required"`
	Text    string `json:"text"    validate:"required"`
}
