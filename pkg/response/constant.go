package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Internal server error"

	// Error codes carried in the JSON body alongside the HTTP status.
	InternalServerErrorCode = 500
	ValidationErrorCode     = 400
	UnavailableErrorCode    = 503
)
