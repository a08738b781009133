package response

// ErrorResponse is the envelope of every failed reply.
type ErrorResponse struct {
	Success bool    `json:"success"`
	Message *string `json:"message,omitempty"`
}

// Error wraps msg in a failure envelope. Non-string messages are reported
// as "Unknown Error".
func Error(msg any) *ErrorResponse {
	message, ok := msg.(string)
	if !ok {
		message = "Unknown Error"
	}
	return &ErrorResponse{
		Success: false,
		Message: &message,
	}
}
