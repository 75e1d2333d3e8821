package errors

const (
	HttpInternalError         = "internal_error"
	HttpInvalidJsonError      = "invalid_json"
	HttpInvalidParameterError = "invalid_parameter"
	HttpInvalidQueryError     = "invalid_query"
	HttpNotFoundError         = "not_found"
	HttpUnavailableError      = "service_unavailable"
)

// ErrorResponse is the error body returned by every API endpoint.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
