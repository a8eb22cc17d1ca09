package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Internal server error"
	ValidationErrorCode     = 1
	InternalServerErrorCode = 500

	// TimestampFormat is ISO-8601 with millisecond precision.
	TimestampFormat = "2006-01-02T15:04:05.000Z07:00"
)
