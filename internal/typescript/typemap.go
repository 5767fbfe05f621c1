package typescript

// FileType is the TypeScript type used for binary payloads.
const FileType = "Blob"

// defaultTypeMapping is applied after the upstream stage's own mapping.
var defaultTypeMapping = map[string]string{
	"file": FileType,
	"Set":  "Array",
	"set":  "Array",
}

// primitives are TypeScript types that never need an import.
var primitives = map[string]bool{
	"string":  true,
	"number":  true,
	"boolean": true,
	"any":     true,
	"object":  true,
	"unknown": true,
	"void":    true,
	"null":    true,
	"Date":    true,
	"Array":   true,
	FileType:  true,
}

// TypeMapper substitutes data type descriptors through a fixed table.
type TypeMapper struct {
	table map[string]string
}

// NewTypeMapper returns a mapper over the built-in table plus extra.
// Entries in extra never replace built-in ones.
func NewTypeMapper(extra map[string]string) *TypeMapper {
	table := make(map[string]string, len(defaultTypeMapping)+len(extra))
	for k, v := range extra {
		table[k] = v
	}

	for k, v := range defaultTypeMapping {
		table[k] = v
	}

	return &TypeMapper{table: table}
}

// MapType returns the substitution for t, or t itself.
func (m *TypeMapper) MapType(t string) string {
	if mapped, ok := m.table[t]; ok {
		return mapped
	}

	return t
}

// IsPrimitive reports whether t is a built-in TypeScript type.
func IsPrimitive(t string) bool {
	return primitives[t]
}
