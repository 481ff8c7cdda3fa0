package handler

// ErrorResponse.Message is a string or a list of strings.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message any    `json:"message"`
}
