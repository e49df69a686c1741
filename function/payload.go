package function

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed payload.json
var payloadSchemaSource []byte

// Payload is the decoded request body.
type Payload map[string]any

// PayloadDecoder validates request bodies against the payload schema
// and decodes them.
type PayloadDecoder struct {
	schema *gojsonschema.Schema
}

// NewPayloadDecoder compiles the embedded payload schema.
func NewPayloadDecoder() (*PayloadDecoder, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(payloadSchemaSource))
	if err != nil {
		return nil, err
	}

	return &PayloadDecoder{schema: schema}, nil
}

// Decode parses body into a Payload. An empty body decodes to an empty
// payload. Bodies that are not JSON objects, or whose id is neither a
// scalar nor null, fail with ErrMalformedInput.
func (d *PayloadDecoder) Decode(body []byte) (Payload, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return Payload{}, nil
	}

	// the schema loader and the decoder stop after the first value
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: body is not a single JSON value", ErrMalformedInput)
	}

	res, err := d.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	if !res.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrMalformedInput, describe(res.Errors()))
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload Payload
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	return payload, nil
}

// ID returns the payload id as a string. Numbers keep their literal
// JSON form and booleans become "true" or "false". The second result
// is false if the id is absent or null.
func (p Payload) ID() (string, bool) {
	switch v := p["id"].(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	}

	return "", false
}

func describe(errs []gojsonschema.ResultError) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.String())
	}

	return strings.Join(msgs, "; ")
}
