package typescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swagger-typings/internal/document"
)

func TestSplitComposite(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"A", []string{"A"}},
		{"A | B", []string{"A", "B"}},
		{"A | B | C", []string{"A", "B", "C"}},
		// Missing spaces around the pipe: not a composite, kept opaque.
		{"A|B", []string{"A|B"}},
		{"A |B", []string{"A |B"}},
		{"A | ", []string{"A"}},
		{"", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitComposite(tt.input))
		})
	}
}

func TestParseImports(t *testing.T) {
	t.Run("flattens composites", func(t *testing.T) {
		m := &document.Model{Imports: []string{"A | B", "C"}}
		assert.Equal(t, []string{"A", "B", "C"}, ParseImports(m))
	})

	t.Run("deduplicates", func(t *testing.T) {
		m := &document.Model{Imports: []string{"Category", "Tag | Category"}}
		assert.Equal(t, []string{"Category", "Tag"}, ParseImports(m))
	})

	t.Run("fragments are not re-split", func(t *testing.T) {
		// The delimiter is consumed once per member; a fragment that still
		// looks odd after the split is passed through as-is.
		m := &document.Model{Imports: []string{"A |  B"}}
		assert.Equal(t, []string{" B", "A"}, ParseImports(m))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, []string{}, ParseImports(&document.Model{}))
	})
}

func TestImportResolver_ToTSImports(t *testing.T) {
	r := NewImportResolver(newTestDeriver("", "", nil))

	pet := &document.Model{
		Classname: "Pet",
		Imports:   []string{"Category", "Tag | Category"},
	}

	records := r.ToTSImports(pet, ParseImports(pet))

	require.Len(t, records, 2)
	assert.ElementsMatch(t, []document.TSImport{
		{Classname: "Category", Filename: "./Category"},
		{Classname: "Tag", Filename: "./Tag"},
	}, records)

	for _, rec := range records {
		assert.NotEqual(t, "Pet", rec.Classname)
	}
}

func TestImportResolver_ExcludesSelf(t *testing.T) {
	r := NewImportResolver(newTestDeriver("", "", nil))

	node := &document.Model{
		Classname: "Node",
		Imports:   []string{"Node", "Leaf | Node"},
	}

	records := r.Resolve(node)

	require.Len(t, records, 1)
	assert.Equal(t, "Leaf", records[0].Classname)
}

func TestImportResolver_StripsDecoration(t *testing.T) {
	r := NewImportResolver(newTestDeriver("Api", "Dto", map[string]string{"Money": "@shop/money"}))

	m := &document.Model{
		Classname: "ApiOrderDto",
		Imports:   []string{"ApiCustomerDto | Money"},
	}

	assert.ElementsMatch(t, []document.TSImport{
		{Classname: "ApiCustomerDto", Filename: "./Customer"},
		{Classname: "Money", Filename: "@shop/money"},
	}, r.Resolve(m))
}
