package typescript

import (
	"swagger-typings/internal/document"
	"swagger-typings/internal/naming"
)

// TagGrouper finds the declared tag an operation was grouped under.
type TagGrouper struct {
	deriver *Deriver
}

// NewTagGrouper creates a TagGrouper that names groups with d.
func NewTagGrouper(d *Deriver) *TagGrouper {
	return &TagGrouper{deriver: d}
}

// Candidate returns the group name a tag would produce.
func (g *TagGrouper) Candidate(tag string) string {
	return g.deriver.APIName(naming.SanitizeTag(tag))
}

// Match scans tags in declaration order and returns the original name of
// the first one whose candidate equals groupName. Later tags are never
// considered once a match is found.
func (g *TagGrouper) Match(groupName string, tags []document.Tag) (string, bool) {
	for _, t := range tags {
		if g.Candidate(t.Name) == groupName {
			return t.Name, true
		}
	}

	return "", false
}
