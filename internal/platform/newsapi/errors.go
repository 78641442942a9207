package newsapi

import "fmt"

// ExternalServiceError reports a failed NewsAPI call: a transport error, a
// non-2xx status or a status:"error" payload.
type ExternalServiceError struct {
	Op         string
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *ExternalServiceError) Error() string {
	msg := fmt.Sprintf("newsapi %s", e.Op)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": status %d", e.StatusCode)
	}
	if e.Code != "" {
		msg += fmt.Sprintf(": %s", e.Code)
	}
	if e.Message != "" {
		msg += fmt.Sprintf(": %s", e.Message)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }
