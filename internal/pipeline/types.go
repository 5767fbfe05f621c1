package pipeline

import (
	"swagger-typings/internal/diagnostic"
	"swagger-typings/internal/document"
)

// DefaultNpmVersion is used when no package version is configured.
const DefaultNpmVersion = "1.0.0"

// Supporting files emitted once per run, relative to the output directory.
const (
	FileReadme      = "README.md"
	FilePackageJSON = "package.json"
	FileIndexDTS    = "index.d.ts"
	FileIndexJS     = "index.js"
	FileAPIDTS      = "api.d.ts"
	FileAPIJSON     = "api.json"
)

// DefaultSupportingFiles is the supporting file list in emission order.
var DefaultSupportingFiles = []string{
	FileReadme,
	FilePackageJSON,
	FileIndexDTS,
	FileIndexJS,
	FileAPIDTS,
	FileAPIJSON,
}

// Strategy is the set of language-specific extension points the pipeline
// invokes.
type Strategy interface {
	// MapType substitutes a resolved data type.
	MapType(dataType string) string
	// ClassifyParameters fills the operation's parameter partitions.
	ClassifyParameters(op *document.Operation)
	// GroupTag returns the declared tag that produced groupName.
	GroupTag(groupName string, tags []document.Tag) (string, bool)
	// PatchModel adjusts a model's shape before import resolution.
	PatchModel(m *document.Model)
	// ResolveImports returns the model's import records.
	ResolveImports(m *document.Model) []document.TSImport
	// DeriveFilename returns the module path for a type name.
	DeriveFilename(name string) string
}

// Overrider is implemented by strategies with an import mapping. Names it
// resolves are exempt from collision and unknown-import checks.
type Overrider interface {
	Override(name string) (string, bool)
}

// Config holds pipeline options.
type Config struct {
	// Strict turns filename collisions into errors.
	Strict        bool
	NpmName       string
	NpmVersion    string
	NpmRepository string
}

// Result is the render context handed to the template stage.
type Result struct {
	// Document is the input document, enriched in place.
	Document *document.Document
	// Groups has one entry per operation group, in document order.
	Groups      []GroupContext
	Supporting  SupportingData
	Diagnostics diagnostic.Diagnostics
}

// GroupContext is the per-group render context.
type GroupContext struct {
	Group *document.OperationGroup
	// TagName is the original text of the tag the group was named after.
	// Only meaningful when HasTagName is set.
	TagName    string
	HasTagName bool
}

// SupportingData feeds the manifest and other once-per-run files.
type SupportingData struct {
	AppName        string
	AppDescription string
	AppVersion     string
	NpmName        string
	NpmVersion     string
	// NpmRepository is the private registry URL, empty when unset.
	NpmRepository string
	// DocumentJSON is the canonical JSON encoding of the resolved document.
	DocumentJSON string
	// Files lists the supporting files to render.
	Files []string
}
