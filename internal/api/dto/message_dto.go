package dto

// MessageResponse is the body of every error response.
type MessageResponse struct {
	Message string `json:"message"`
}
