package response

// Error codes
const (
	ErrCodeBadRequest        = "BAD_REQUEST"
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeUnauthorized      = "UNAUTHORIZED"
	ErrCodeForbidden         = "FORBIDDEN"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeOrganizerNotFound = "ORGANIZER_NOT_FOUND"
	ErrCodeInternal          = "INTERNAL_ERROR"

	ErrCodeMissingIdempotencyKey = "MISSING_IDEMPOTENCY_KEY"
	ErrCodeIdempotencyKeyReused  = "IDEMPOTENCY_KEY_REUSED"
	ErrCodeRequestInProgress     = "REQUEST_IN_PROGRESS"
)

// Response is the JSON envelope returned by every endpoint
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorData  `json:"error,omitempty"`
}

// ErrorData describes a failed request
type ErrorData struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Success wraps data in a success envelope
func Success(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// Error builds an error envelope
func Error(code, message string) Response {
	return Response{
		Success: false,
		Error:   &ErrorData{Code: code, Message: message},
	}
}

// ErrorWithDetails builds an error envelope with extra details
func ErrorWithDetails(code, message string, details interface{}) Response {
	r := Error(code, message)
	r.Error.Details = details
	return r
}

func BadRequest(message string) Response {
	return Error(ErrCodeBadRequest, message)
}

func Unauthorized(message string) Response {
	return Error(ErrCodeUnauthorized, message)
}

func Forbidden(message string) Response {
	return Error(ErrCodeForbidden, message)
}

func NotFound(message string) Response {
	return Error(ErrCodeNotFound, message)
}

// InternalError never leaks the underlying error to the client
func InternalError(message string) Response {
	return Error(ErrCodeInternal, message)
}
