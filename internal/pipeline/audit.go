package pipeline

import (
	"sort"

	"swagger-typings/internal/naming"
)

// maxSuggestions bounds the alternatives listed for an unknown import.
const maxSuggestions = 3

// Collision is a module path derived from more than one distinct name.
type Collision struct {
	Path  string
	Names []string
}

// Collisions groups names by the module path s derives for them and
// returns the paths shared by two or more distinct names, sorted by path.
// Names resolved through an import mapping are skipped: pointing several
// names at one external module is deliberate.
func Collisions(s Strategy, names []string) []Collision {
	byPath := make(map[string][]string)
	seen := make(map[string]bool, len(names))

	for _, n := range names {
		if seen[n] || isOverridden(s, n) {
			continue
		}

		seen[n] = true

		path := s.DeriveFilename(n)
		byPath[path] = append(byPath[path], n)
	}

	var out []Collision

	for path, ns := range byPath {
		if len(ns) < 2 {
			continue
		}

		sort.Strings(ns)
		out = append(out, Collision{Path: path, Names: ns})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })

	return out
}

func suggest(name string, known []string) []string {
	return naming.Suggest(name, known, maxSuggestions)
}
