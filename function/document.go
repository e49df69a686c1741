package function

import "encoding/json"

const (
	// Message is the fixed greeting of every response.
	Message = "Hello Open Runtimes 👋"

	// LogMessage is logged once per successful invocation.
	LogMessage = "Sample Log"

	// VariableName is the environment variable echoed as "variable".
	VariableName = "TEST_VARIABLE"
)

// Document is the response body of the function.
type Document struct {
	IsTest   bool            `json:"isTest"`
	Message  string          `json:"message"`
	URL      string          `json:"url"`
	Variable *string         `json:"variable"`
	Todo     json.RawMessage `json:"todo"`
}
