package function

import (
	"errors"
	"net/http"

	"github.com/lambda-feedback/samplefn/runtime"
)

var (
	ErrMalformedInput          = errors.New("malformed input")
	ErrRemoteFetchFailed       = errors.New("remote fetch failed")
	ErrMalformedRemoteResponse = errors.New("malformed remote response")
)

// StatusCodes maps the function errors to response status codes.
var StatusCodes = runtime.ErrorStatus{
	ErrMalformedInput:          http.StatusBadRequest,
	ErrRemoteFetchFailed:       http.StatusBadGateway,
	ErrMalformedRemoteResponse: http.StatusBadGateway,
}
