package schemaio

import (
	"fmt"
	"strings"
)

// ValidationError is a fatal finding: an unknown reference, a missing or
// invalid datatype, a malformed name. Per §7, one or more validation
// errors block all writes; callers receive the full list rather than the
// first failure.
type ValidationError struct {
	Code    string
	Path    string
	Message string
}

func (e ValidationError) String() string {
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Path, e.Message)
}

// ValidationErrors aggregates every [ValidationError] found during a
// single [Validate] call. It implements error so a caller can treat "one
// or more validation errors" uniformly, while still inspecting the full
// list via Errors.
type ValidationErrors struct {
	Errors []ValidationError
}

func (e *ValidationErrors) Error() string {
	lines := make([]string, len(e.Errors))
	for i, ve := range e.Errors {
		lines[i] = ve.String()
	}

	return fmt.Sprintf("%d validation error(s):\n%s", len(e.Errors), strings.Join(lines, "\n"))
}

// ValidationWarning is a non-fatal finding: a required/optional conflict
// that was silently promoted (§4.1), a category with no properties, or a
// property nobody references. Warnings never block writes.
type ValidationWarning struct {
	Code    string
	Path    string
	Message string
}

func (w ValidationWarning) String() string {
	return fmt.Sprintf("%s: %s: %s", w.Code, w.Path, w.Message)
}

// Warning codes.
const (
	WarnPromotedRequired = "promoted-required"
	WarnNoProperties     = "no-properties"
	WarnUnusedProperty   = "unused-property"
	WarnSchemaVersion    = "schema-version"
)

// Error codes.
const (
	ErrCodeMissingSchemaVersion = "missing-schema-version"
	ErrCodeInvalidName          = "invalid-name"
	ErrCodeInvalidDatatype      = "invalid-datatype"
	ErrCodeUnknownReference     = "unknown-reference"
	ErrCodeUnknownParent        = "unknown-parent"
)
