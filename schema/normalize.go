package schema

// NormalizeNames applies the required/optional promotion rule shared by
// [Category] and [Subobject] construction (§4.1): any name present in both
// required and optional is promoted to required and removed from
// optional. The returned slices are newly allocated and preserve the
// first-seen order of their respective inputs (required's own order,
// then optional's order minus promoted names).
//
// promoted lists, in first-seen order, every name that was moved from
// optional to required -- callers (the loader/validator) use this to
// surface a non-fatal warning without re-deriving the diff.
func NormalizeNames(required, optional []string) (normRequired, normOptional, promoted []string) {
	requiredSet := make(map[string]bool, len(required))

	normRequired = dedupe(required)
	for _, r := range normRequired {
		requiredSet[r] = true
	}

	seenOptional := make(map[string]bool, len(optional))

	for _, o := range optional {
		if seenOptional[o] {
			continue
		}

		seenOptional[o] = true

		if requiredSet[o] {
			promoted = append(promoted, o)
			continue
		}

		normOptional = append(normOptional, o)
	}

	return normRequired, normOptional, promoted
}

// dedupe removes duplicate entries from names, preserving first-seen order.
func dedupe(names []string) []string {
	if len(names) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))

	for _, n := range names {
		if seen[n] {
			continue
		}

		seen[n] = true

		out = append(out, n)
	}

	return out
}

// union returns the union of a and b, preserving a's order then b's
// order for names not already present.
func union(a, b []string) []string {
	if len(a) == 0 {
		return dedupe(b)
	}

	if len(b) == 0 {
		return dedupe(a)
	}

	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))

	for _, n := range a {
		if seen[n] {
			continue
		}

		seen[n] = true

		out = append(out, n)
	}

	for _, n := range b {
		if seen[n] {
			continue
		}

		seen[n] = true

		out = append(out, n)
	}

	return out
}

// subtract returns a with every name in remove excluded, preserving order.
func subtract(a, remove []string) []string {
	if len(remove) == 0 {
		return dedupe(a)
	}

	removeSet := make(map[string]bool, len(remove))
	for _, n := range remove {
		removeSet[n] = true
	}

	var out []string

	for _, n := range a {
		if removeSet[n] {
			continue
		}

		out = append(out, n)
	}

	return out
}
