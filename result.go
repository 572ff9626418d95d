package auth

// Result is the uniform response envelope shared by every endpoint gated by
// this core, success and failure alike.
type Result struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

const (
	CodeSuccess          = 200
	CodeFailed           = 500
	CodeValidationFailed = 404
	CodeUnauthorized     = 401
	CodeForbidden        = 403
)

// DefaultUnauthorizedMessage is used when the authorization gate rejects a
// request without a more specific reason.
const DefaultUnauthorizedMessage = "unauthorized access"

// Success wraps data in a success envelope.
func Success(data any) Result {
	return Result{Code: CodeSuccess, Message: "ok", Data: data}
}

// Failed builds a generic failure envelope.
func Failed(message string) Result {
	return Result{Code: CodeFailed, Message: message, Data: nil}
}

// ValidationFailed builds the envelope for rejected input.
func ValidationFailed(message string) Result {
	return Result{Code: CodeValidationFailed, Message: message, Data: nil}
}

// Unauthorized builds the envelope produced when an unauthenticated request
// reaches a protected route. With no message it uses the default.
func Unauthorized(message ...string) Result {
	msg := DefaultUnauthorizedMessage
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}
	return Result{Code: CodeUnauthorized, Message: msg, Data: nil}
}

// Forbidden builds the envelope for authenticated but disallowed requests.
func Forbidden(message string) Result {
	return Result{Code: CodeForbidden, Message: message, Data: nil}
}
