package domain

// FailureKind classifies a failed operation. It is not serialized.
type FailureKind string

const (
	FailureNone              FailureKind = ""
	FailureValidation        FailureKind = "validation"
	FailureRemote            FailureKind = "remote"
	FailureUnparseableRemote FailureKind = "unparseable_remote"
	FailureTransport         FailureKind = "transport"
	FailureCancelled         FailureKind = "cancelled"
)

// OperationResult is the uniform outcome of a create or update call.
//
// On success Message is set and Error is nil. On failure Error holds either the
// remote service's parsed error body or a string. A zero StatusCode means no
// response was received and is omitted from the JSON form.
type OperationResult struct {
	StatusCode int         `json:"status_code,omitempty"`
	Message    string      `json:"message,omitempty"`
	ID         string      `json:"id,omitempty"`
	Error      any         `json:"error,omitempty"`
	Kind       FailureKind `json:"-"`
}

// OK reports whether the result is a success.
func (r OperationResult) OK() bool {
	return r.Kind == FailureNone && r.Error == nil
}

// Success builds a successful result.
func Success(status int, message, id string) OperationResult {
	return OperationResult{StatusCode: status, Message: message, ID: id}
}

// Failure builds a failed result.
func Failure(kind FailureKind, status int, detail any) OperationResult {
	return OperationResult{StatusCode: status, Error: detail, Kind: kind}
}

// ErrorString renders the failure detail for logs.
func (r OperationResult) ErrorString() string {
	switch e := r.Error.(type) {
	case nil:
		return ""
	case string:
		return e
	case map[string]any:
		if msg, ok := e["message"].(string); ok {
			return msg
		}
	}
	return "remote error"
}
