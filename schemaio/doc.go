// Package schemaio parses the on-disk schema file format (§6.3) and
// validates it into the immutable value objects defined in package
// schema. Both JSON and YAML are accepted; the representation is
// auto-detected by the first non-whitespace byte ('{' or '[' selects
// JSON, anything else selects YAML).
//
// Parsing never fails softly: an unparsable document is an error
// wrapping [ErrInvalidDocument]. Once parsed, [Validate] runs structural and
// reference-integrity checks and splits findings into errors (block
// further processing) and warnings (non-fatal; see §7's error taxonomy).
package schemaio
