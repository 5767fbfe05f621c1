package common

import "sort"

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// SortedUnique returns the distinct members of s in ascending order.
// A nil or empty input yields an empty, non-nil slice.
func SortedUnique(s []string) []string {
	seen := make(map[string]struct{}, len(s))
	out := make([]string, 0, len(s))

	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}

		seen[v] = struct{}{}
		out = append(out, v)
	}

	sort.Strings(out)

	return out
}

// Contains reports whether v is present in s.
func Contains(s []string, v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}

	return false
}

// FirstNonEmpty returns the first non-empty argument, or "".
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
