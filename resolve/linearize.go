package resolve

// c3Merge implements the C3 linearization merge step: at each iteration it
// looks for a "good head" -- an item that heads some input list and
// appears in the tail of none of them -- removes it from every list, and
// appends it to the result. It repeats until every list is empty.
//
// When no good head exists the hierarchy is inconsistent. Per §4.2 this
// must not be silently guessed at: the caller records the fact, and the
// merge falls back to the head of the first non-empty list so that a
// repeat invocation over the same input produces the same (deterministic)
// order.
//
// lists is consumed (each slice is copied internally); the caller's
// slices are never mutated.
func c3Merge(lists [][]string) (result []string, inconsistent bool) {
	working := make([][]string, 0, len(lists))

	for _, l := range lists {
		if len(l) == 0 {
			continue
		}

		working = append(working, append([]string(nil), l...))
	}

	for len(working) > 0 {
		head, ok := findGoodHead(working)
		if !ok {
			// Inconsistent: fall back to the head of the first non-empty
			// list, deterministically.
			head = working[0][0]
			inconsistent = true
		}

		result = append(result, head)
		working = removeHeadEverywhere(working, head)
	}

	return result, inconsistent
}

// findGoodHead returns the first list's head that does not appear in the
// tail of any list.
func findGoodHead(lists [][]string) (string, bool) {
	for _, l := range lists {
		candidate := l[0]
		if !inAnyTail(lists, candidate) {
			return candidate, true
		}
	}

	return "", false
}

// inAnyTail reports whether candidate appears in the tail (all but the
// first element) of any list.
func inAnyTail(lists [][]string, candidate string) bool {
	for _, l := range lists {
		for _, item := range l[1:] {
			if item == candidate {
				return true
			}
		}
	}

	return false
}

// removeHeadEverywhere returns a new slice of lists with head removed
// from the front of every list that has it there, dropping lists that
// become empty. head may also appear non-initially in some list (it
// shouldn't, by construction of a good head, but defensive filtering
// keeps the algorithm total).
func removeHeadEverywhere(lists [][]string, head string) [][]string {
	out := make([][]string, 0, len(lists))

	for _, l := range lists {
		filtered := l
		if len(l) > 0 && l[0] == head {
			filtered = l[1:]
		}

		if len(filtered) > 0 {
			out = append(out, filtered)
		}
	}

	return out
}
