package errors

// ErrorCode identifies a console error in API responses
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
)

// Directory error codes (DIRECTORY_*), raised when the storefront backend
// cannot be reached through the console
const (
	DirectoryUnavailable ErrorCode = "DIRECTORY_001"
)

// Console error codes (CONSOLE_*)
const (
	ConsoleUnknownRegion ErrorCode = "CONSOLE_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
	SystemNotFound           ErrorCode = "SYSTEM_005"
)

var errorMessages = map[ErrorCode]string{
	ValidationGeneral:       "Validation failed",
	ValidationInvalidFormat: "Invalid field format",

	DirectoryUnavailable: "Storefront backend is unavailable",

	ConsoleUnknownRegion: "Unknown page region",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemNotFound:           "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
