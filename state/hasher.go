package state

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashContent computes the content hash used throughout the state
// document: SHA-256 over the canonicalized form of s, rendered as
// "sha256:<hex>" (§4.9).
//
// Canonicalization strips trailing whitespace from every line and
// normalizes CRLF/CR line endings to LF before hashing, so a write that
// only differs in the host's line-ending convention or trailing
// whitespace is never reported as drift. This is an explicit resolution
// of the open question in §9: the canonical form favors the content a
// human author would consider unchanged over byte-for-byte identity.
func HashContent(s string) string {
	sum := sha256.Sum256([]byte(canonicalize(s)))
	return "sha256:" + hex.EncodeToString(sum[:])
}

func canonicalize(s string) string {
	normalized := strings.ReplaceAll(s, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	lines := strings.Split(normalized, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.Join(lines, "\n")
}
