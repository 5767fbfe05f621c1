package typescript

import (
	"strings"

	"swagger-typings/internal/common"
	"swagger-typings/internal/document"
)

// CompositeDelimiter joins the members of a union type reference.
const CompositeDelimiter = " | "

// SplitComposite splits a composite reference one level deep.
// Strings without the delimiter come back as a single opaque name;
// empty fragments are dropped.
func SplitComposite(name string) []string {
	if !strings.Contains(name, CompositeDelimiter) {
		return []string{name}
	}

	parts := strings.Split(name, CompositeDelimiter)
	out := parts[:0]

	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}

	return out
}

// ParseImports flattens the model's raw import set, expanding composite
// references. The result is sorted and free of duplicates.
func ParseImports(m *document.Model) []string {
	if common.IsEmpty(m.Imports) {
		return []string{}
	}

	var flat []string
	for _, name := range m.Imports {
		flat = append(flat, SplitComposite(name)...)
	}

	return common.SortedUnique(flat)
}

// ImportResolver builds the import records of generated model files.
type ImportResolver struct {
	deriver *Deriver
}

// NewImportResolver creates an ImportResolver that derives paths with d.
func NewImportResolver(d *Deriver) *ImportResolver {
	return &ImportResolver{deriver: d}
}

// ToTSImports returns one record per name in imports other than the model's
// own classname. Consumers must not depend on record order.
func (r *ImportResolver) ToTSImports(m *document.Model, imports []string) []document.TSImport {
	records := make([]document.TSImport, 0, len(imports))

	for _, name := range imports {
		if name == m.Classname {
			continue
		}

		records = append(records, document.TSImport{
			Classname: name,
			Filename:  r.deriver.DeriveFilename(name),
		})
	}

	return records
}

// Resolve runs ParseImports and ToTSImports for m.
func (r *ImportResolver) Resolve(m *document.Model) []document.TSImport {
	return r.ToTSImports(m, ParseImports(m))
}
