package constants

// Data Provider Error Codes
// These constants define specific error scenarios for the Notion API

// Configuration errors
const (
	ErrCodeConfigMissing = "CONFIG_MISSING"
)

// Credential-related errors
const (
	ErrCodeInvalidAPIKey = "INVALID_API_KEY"
	ErrCodeAccessDenied  = "ACCESS_DENIED"
	ErrCodeRateLimited   = "RATE_LIMITED"
	ErrCodeNetworkError  = "NETWORK_ERROR"
)

// Database-related errors
const (
	ErrCodeDatabaseNotFound  = "DATABASE_NOT_FOUND"
	ErrCodeInvalidRequest    = "INVALID_REQUEST"
	ErrCodeUpstreamError     = "UPSTREAM_ERROR"
	ErrCodeMalformedResponse = "MALFORMED_RESPONSE"
)

// Error Messages
// Human-readable messages corresponding to error codes

var DataProviderErrorMessages = map[string]string{
	ErrCodeConfigMissing: "Notion integration is not configured",

	ErrCodeInvalidAPIKey: "The Notion API key is invalid or has been revoked",
	ErrCodeAccessDenied:  "The Notion integration does not have access to this database",
	ErrCodeRateLimited:   "Rate limit exceeded. Please try again later",
	ErrCodeNetworkError:  "Unable to connect to Notion. Please check your internet connection",

	ErrCodeDatabaseNotFound:  "The Notion database was not found or is not shared with the integration",
	ErrCodeInvalidRequest:    "Notion rejected the request",
	ErrCodeUpstreamError:     "Notion returned an unexpected error",
	ErrCodeMalformedResponse: "No data returned from the server",
}

// GetErrorMessage returns the human-readable message for an error code
func GetErrorMessage(code string) string {
	if msg, exists := DataProviderErrorMessages[code]; exists {
		return msg
	}
	return "An unknown error occurred"
}
