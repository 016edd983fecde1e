package response

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Success wraps data of a handled request
type Success struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

// Fail reports a client error, or an unexpected one with StatusError
type Fail struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func NewSuccess(data any) Success {
	return Success{Status: StatusSuccess, Data: data}
}

func NewFail(message string) Fail {
	return Fail{Status: StatusFail, Message: message}
}

// NewError hides the cause; it is logged instead.
func NewError() Fail {
	return Fail{Status: StatusError, Message: "internal server error"}
}
