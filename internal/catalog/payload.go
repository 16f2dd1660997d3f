// Package catalog loads the species candidate list. Payloads are validated
// and decoded as data; nothing is ever evaluated.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	appErrors "speciesfilter/internal/errors"
)

// payloadSchema accepts exactly one JSON array of strings.
const payloadSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {"type": "string"}
}`

var schemaLoader = gojsonschema.NewStringLoader(payloadSchema)

// ParsePayload decodes a species payload such as `["Homo sapiens","Mus musculus"]`.
// Anything but an array of strings is rejected.
func ParsePayload(data []byte) ([]string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, appErrors.New(appErrors.CodePayloadInvalid, "species payload is empty", nil)
	}
	if !json.Valid(trimmed) {
		return nil, appErrors.New(appErrors.CodeParseFailed, "species payload is not valid JSON", nil)
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(trimmed))
	if err != nil {
		return nil, appErrors.New(appErrors.CodeParseFailed, fmt.Sprintf("validate species payload: %v", err), err)
	}
	if !result.Valid() {
		reasons := make([]string, 0, len(result.Errors()))
		for _, re := range result.Errors() {
			reasons = append(reasons, re.String())
		}
		return nil, appErrors.New(appErrors.CodePayloadInvalid, "species payload rejected: "+strings.Join(reasons, "; "), nil)
	}

	var names []string
	if err := json.Unmarshal(trimmed, &names); err != nil {
		return nil, appErrors.New(appErrors.CodeParseFailed, fmt.Sprintf("decode species payload: %v", err), err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}
