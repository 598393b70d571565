package errors

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	Data    any       `json:"data"`
	Meta    *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Code    string       `json:"code"`
	Details any          `json:"details,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
	Meta    *MetaInfo    `json:"meta"`
}
