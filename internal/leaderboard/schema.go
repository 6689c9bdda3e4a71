package leaderboard

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// documentSchema describes the structure a leaderboard document must have.
// Numeric fields are left unconstrained on purpose: a non-numeric value is
// "no data" for that cell, not a malformed document.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["all_runs"],
  "properties": {
    "all_runs": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "id": {"type": ["string", "null"]},
          "name": {"type": ["string", "null"]},
          "optimizer": {"type": ["string", "null"]},
          "measurements": {
            "type": ["array", "null"],
            "items": {
              "type": "object",
              "properties": {
                "instance": {"type": ["string", "null"]}
              }
            }
          }
        }
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(documentSchema)

// ValidateSchema checks raw document bytes against the leaderboard schema.
// Violations are reported as a single error wrapping ErrMalformed.
func ValidateSchema(data []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrMalformed, strings.Join(problems, "; "))
}
