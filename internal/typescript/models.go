package typescript

import (
	"strings"

	"swagger-typings/internal/common"
	"swagger-typings/internal/document"
)

// PatchArrayModel gives array models the parent-chain slot the model
// template iterates over: AllParents is created if absent and Parent is
// appended unless already present, even when Parent is empty. ElementType
// falls back to Parent, or to its type argument when Parent is an
// "Array<X>" instantiation.
// Non-array models are left untouched.
func PatchArrayModel(m *document.Model) {
	if m.Kind != document.KindArray {
		return
	}

	if m.AllParents == nil {
		m.AllParents = []string{}
	}

	if !common.Contains(m.AllParents, m.Parent) {
		m.AllParents = append(m.AllParents, m.Parent)
	}

	if m.ElementType == "" {
		m.ElementType = arrayElement(m.Parent)
	}
}

// arrayElement returns X for "Array<X>" and t unchanged otherwise.
func arrayElement(t string) string {
	inner, ok := strings.CutPrefix(strings.TrimSpace(t), "Array<")
	if !ok || !strings.HasSuffix(inner, ">") {
		return t
	}

	return strings.TrimSpace(strings.TrimSuffix(inner, ">"))
}

// AddAdditionalPropertiesImport maps the model's additional-properties type
// and records it as an import when it names a model rather than a primitive.
func AddAdditionalPropertiesImport(m *document.Model, types *TypeMapper) {
	if m.AdditionalPropertiesType == "" {
		return
	}

	t := types.MapType(m.AdditionalPropertiesType)
	m.AdditionalPropertiesType = t

	if IsPrimitive(t) || common.Contains(m.Imports, t) {
		return
	}

	m.Imports = append(m.Imports, t)
}
