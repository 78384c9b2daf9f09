package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Error is a response the backend answered with a non-2xx status. Message
// carries the server-supplied error message when one was present in the body.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request failed with status code: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("request failed with status code: %d", e.Status)
}

func newError(rs *http.Response) error {
	apiErr := &Error{Status: rs.StatusCode}

	data, err := io.ReadAll(rs.Body)
	if err != nil {
		return apiErr
	}

	// The backend reports errors as {"message": ...}, DRF-style endpoints as
	// {"detail": ...}.
	var body struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err = json.Unmarshal(data, &body); err == nil {
		if body.Message != "" {
			apiErr.Message = body.Message
		} else {
			apiErr.Message = body.Detail
		}
	}
	return apiErr
}
