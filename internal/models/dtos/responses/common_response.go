package responses

// ErrorResponse is the body of every failed /api call.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Type    string `json:"type"`
	Details string `json:"details,omitempty"` // development only
}
