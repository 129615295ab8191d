package schemaio

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// ErrInvalidDocument wraps parse-level failures (malformed JSON/YAML).
var ErrInvalidDocument = errors.New("invalid schema document")

// Parse decodes data into a [Document], auto-detecting JSON vs YAML by
// the first non-whitespace byte: '{' or '[' selects JSON, anything else
// selects YAML (§6.3).
func Parse(data []byte) (*Document, error) {
	var doc Document

	if looksLikeJSON(data) {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}

		return &doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return &doc, nil
}

// looksLikeJSON implements the §6.3 auto-detection rule.
func looksLikeJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '{', '[':
			return true
		default:
			return false
		}
	}

	return false
}
