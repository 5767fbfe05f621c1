package typescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swagger-typings/internal/document"
)

func TestStrategy(t *testing.T) {
	s := NewStrategy(Options{
		Naming: Naming{
			ImportMapping:   map[string]string{"Money": "@shop/money"},
			ModelNamePrefix: "Api",
			ModelPackage:    "model",
			APIPackage:      "api",
		},
		TypeMappings: map[string]string{"DateTime": "string"},
	})

	assert.Equal(t, GeneratorName, s.Name())
	assert.Equal(t, "string", s.MapType("DateTime"))
	assert.Equal(t, "Blob", s.MapType("file"))
	assert.Equal(t, "./Widget", s.DeriveFilename("ApiWidget"))
	assert.Equal(t, "@shop/money", s.DeriveFilename("Money"))
	assert.Equal(t, "model/Widget", s.Deriver().ModelImport("Widget"))

	t.Run("classify", func(t *testing.T) {
		op := &document.Operation{AllParams: []*document.Parameter{
			{ParamName: "upload", DataType: "Blob", IsFormParam: true, Required: true},
			{ParamName: "tags", DataType: "Array", IsQueryParam: true},
		}}

		s.ClassifyParameters(op)

		require.Len(t, op.XRequestBodyParams, 1)
		require.Len(t, op.XParams, 1)
		assert.True(t, op.IsBodyParamsRequired)
	})

	t.Run("resolve imports with additional properties", func(t *testing.T) {
		m := &document.Model{
			Classname:                "ApiInventory",
			Imports:                  []string{"ApiStock | Money"},
			AdditionalPropertiesType: "ApiWarehouse",
		}

		records := s.ResolveImports(m)

		assert.ElementsMatch(t, []document.TSImport{
			{Classname: "ApiStock", Filename: "./Stock"},
			{Classname: "Money", Filename: "@shop/money"},
			{Classname: "ApiWarehouse", Filename: "./Warehouse"},
		}, records)
	})

	t.Run("group tag", func(t *testing.T) {
		tag, ok := s.GroupTag("Pet", tags("pet", "store"))
		assert.True(t, ok)
		assert.Equal(t, "pet", tag)
	})

	t.Run("patch model", func(t *testing.T) {
		m := &document.Model{Kind: document.KindArray, Parent: "Pet"}
		s.PatchModel(m)
		assert.Equal(t, []string{"Pet"}, m.AllParents)
	})

	t.Run("override", func(t *testing.T) {
		p, ok := s.Override("Money")
		assert.True(t, ok)
		assert.Equal(t, "@shop/money", p)

		_, ok = s.Override("ApiWidget")
		assert.False(t, ok)
	})
}
