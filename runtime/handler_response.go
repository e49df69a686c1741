package runtime

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse represents error response data.
type ErrorResponse struct {
	Message string `json:"message"`
}

// newErrorResponse creates a JSON error response for err.
func newErrorResponse(status int, err error) Response {
	body, merr := json.Marshal(struct {
		Error ErrorResponse `json:"error"`
	}{
		Error: ErrorResponse{Message: err.Error()},
	})
	if merr != nil {
		return Response{StatusCode: http.StatusInternalServerError, Header: make(http.Header)}
	}

	header := make(http.Header)
	header.Set("Content-Type", "application/json")

	return Response{
		StatusCode: status,
		Body:       body,
		Header:     header,
	}
}
