package typescript

import "swagger-typings/internal/document"

// GeneratorName identifies this strategy in generated files and logs.
const GeneratorName = "typescript-swagger-js-typings"

// Options configures a Strategy.
type Options struct {
	Naming Naming
	// TypeMappings adds entries to the built-in type substitution table.
	TypeMappings map[string]string
}

// Strategy is the swagger-js typings implementation of the pipeline
// extension points.
type Strategy struct {
	types   *TypeMapper
	deriver *Deriver
	imports *ImportResolver
	tags    *TagGrouper
}

// NewStrategy wires the strategy components from opts.
func NewStrategy(opts Options) *Strategy {
	d := NewDeriver(opts.Naming)

	return &Strategy{
		types:   NewTypeMapper(opts.TypeMappings),
		deriver: d,
		imports: NewImportResolver(d),
		tags:    NewTagGrouper(d),
	}
}

// Name returns GeneratorName.
func (s *Strategy) Name() string {
	return GeneratorName
}

// MapType applies the type substitution table.
func (s *Strategy) MapType(t string) string {
	return s.types.MapType(t)
}

// ClassifyParameters partitions the operation's parameters.
func (s *Strategy) ClassifyParameters(op *document.Operation) {
	ClassifyParameters(op)
}

// GroupTag returns the declared tag that produced groupName.
func (s *Strategy) GroupTag(groupName string, tags []document.Tag) (string, bool) {
	return s.tags.Match(groupName, tags)
}

// PatchModel applies the array-model shim.
func (s *Strategy) PatchModel(m *document.Model) {
	PatchArrayModel(m)
}

// ResolveImports folds the additional-properties type into the model's
// imports and returns its import records.
func (s *Strategy) ResolveImports(m *document.Model) []document.TSImport {
	AddAdditionalPropertiesImport(m, s.types)

	return s.imports.Resolve(m)
}

// DeriveFilename returns the module path for a type name.
func (s *Strategy) DeriveFilename(name string) string {
	return s.deriver.DeriveFilename(name)
}

// Override reports whether name, raw or undecorated, is resolved through
// the import mapping.
func (s *Strategy) Override(name string) (string, bool) {
	return s.deriver.External(name)
}

// Deriver exposes the path rules for the rendering stage.
func (s *Strategy) Deriver() *Deriver {
	return s.deriver
}
