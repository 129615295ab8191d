package wikistore

import "strings"

// Marker conventions for generated-artifact regions on otherwise
// human-owned pages (§6.6).
const (
	SchemaRegionStart = "<!-- SemanticSchemas Schema Start -->"
	SchemaRegionEnd   = "<!-- SemanticSchemas Schema End -->"
)

// ManagedBanner is the comment banner a fully managed page (template,
// form, dispatcher) carries, declaring that its entire content is
// generated (§6.6).
const ManagedBanner = "<!-- This page is fully managed by the ontology compiler. Do not edit by hand. -->"

// UpdateWithinMarkers is the invariant-preserving region update (§4.8):
// if startMarker and endMarker both occur in existingContent, in order,
// the content between them is replaced with newRegion, keeping the line
// break that directly follows startMarker (the same layout an appended
// block has); otherwise a new marker block is appended. The markers themselves are
// preserved as comments so they survive parser passes.
func UpdateWithinMarkers(existingContent, newRegion, startMarker, endMarker string) string {
	startIdx := strings.Index(existingContent, startMarker)
	if startIdx < 0 {
		return appendMarkerBlock(existingContent, newRegion, startMarker, endMarker)
	}

	afterStart := startIdx + len(startMarker)
	if strings.HasPrefix(existingContent[afterStart:], "\n") {
		afterStart++
	}

	endIdx := strings.Index(existingContent[afterStart:], endMarker)
	if endIdx < 0 {
		return appendMarkerBlock(existingContent, newRegion, startMarker, endMarker)
	}

	endIdx += afterStart

	var sb strings.Builder

	sb.WriteString(existingContent[:afterStart])
	sb.WriteString(newRegion)
	sb.WriteString(existingContent[endIdx:])

	return sb.String()
}

func appendMarkerBlock(existingContent, newRegion, startMarker, endMarker string) string {
	var sb strings.Builder

	sb.WriteString(existingContent)

	if len(existingContent) > 0 && !strings.HasSuffix(existingContent, "\n") {
		sb.WriteByte('\n')
	}

	if len(existingContent) > 0 {
		sb.WriteByte('\n')
	}

	sb.WriteString(startMarker)
	sb.WriteByte('\n')
	sb.WriteString(newRegion)
	sb.WriteString(endMarker)
	sb.WriteByte('\n')

	return sb.String()
}
