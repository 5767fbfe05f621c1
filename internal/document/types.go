package document

import (
	"fmt"
	"sort"
)

// Document is the whole codegen model for one generation run.
type Document struct {
	Info   Info              `json:"info" yaml:"info" toml:"info"`
	Models []*Model          `json:"models" yaml:"models" toml:"models"`
	Groups []*OperationGroup `json:"groups" yaml:"groups" toml:"groups"`
	// Extensions carries vendor extensions (x-*) verbatim from the source document.
	Extensions map[string]any `json:"extensions,omitempty" yaml:"extensions,omitempty" toml:"extensions,omitempty"`
}

// Info describes the API as a whole.
type Info struct {
	Title       string `json:"title" yaml:"title" toml:"title"`
	Version     string `json:"version" yaml:"version" toml:"version"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
}

// Model is a named schema. Kind selects which of the variant fields apply:
// Parent and AllParents for objects, ElementType for arrays.
type Model struct {
	Classname string    `json:"classname" yaml:"classname" toml:"classname"`
	Kind      ModelKind `json:"kind" yaml:"kind" toml:"kind"`
	// IsArray mirrors Kind == KindArray. Documents may set it instead of Kind.
	IsArray     bool   `json:"isArray" yaml:"isArray" toml:"isArray"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Parent      string `json:"parent,omitempty" yaml:"parent,omitempty" toml:"parent,omitempty"`
	// AllParents is nil when the upstream stage did not compute a chain.
	// Array models may carry an empty-string placeholder entry.
	AllParents               []string   `json:"allParents" yaml:"allParents" toml:"allParents"`
	Imports                  []string   `json:"imports,omitempty" yaml:"imports,omitempty" toml:"imports,omitempty"`
	AdditionalPropertiesType string     `json:"additionalPropertiesType,omitempty" yaml:"additionalPropertiesType,omitempty" toml:"additionalPropertiesType,omitempty"`
	ElementType              string     `json:"elementType,omitempty" yaml:"elementType,omitempty" toml:"elementType,omitempty"`
	Vars                     []Property `json:"vars,omitempty" yaml:"vars,omitempty" toml:"vars,omitempty"`

	// TSImports is produced by import resolution.
	TSImports []TSImport `json:"tsImports,omitempty" yaml:"-" toml:"-"`
}

// Property is a single model field.
type Property struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	DataType    string `json:"dataType" yaml:"dataType" toml:"dataType"`
	Required    bool   `json:"required" yaml:"required" toml:"required"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
}

// TSImport is one import statement of a generated model file.
type TSImport struct {
	// Classname is the imported type name.
	Classname string `json:"classname"`
	// Filename is the module path the type is imported from.
	Filename string `json:"filename"`
}

// OperationGroup is the set of operations rendered into one API class.
type OperationGroup struct {
	// Classname is the rendering group name.
	Classname  string       `json:"classname" yaml:"classname" toml:"classname"`
	Operations []*Operation `json:"operations" yaml:"operations" toml:"operations"`
}

// Operation is a single HTTP endpoint.
type Operation struct {
	OperationID string       `json:"operationId" yaml:"operationId" toml:"operationId"`
	Path        string       `json:"path" yaml:"path" toml:"path"`
	HTTPMethod  string       `json:"httpMethod" yaml:"httpMethod" toml:"httpMethod"`
	Summary     string       `json:"summary,omitempty" yaml:"summary,omitempty" toml:"summary,omitempty"`
	Notes       string       `json:"notes,omitempty" yaml:"notes,omitempty" toml:"notes,omitempty"`
	ReturnType  string       `json:"returnType,omitempty" yaml:"returnType,omitempty" toml:"returnType,omitempty"`
	Tags        []Tag        `json:"tags,omitempty" yaml:"tags,omitempty" toml:"tags,omitempty"`
	AllParams   []*Parameter `json:"allParams" yaml:"allParams" toml:"allParams"`

	// Produced by parameter classification.
	XParams              []*Parameter `json:"xParams" yaml:"-" toml:"-"`
	XRequestBodyParams   []*Parameter `json:"xRequestBodyParams" yaml:"-" toml:"-"`
	IsBodyParamsRequired bool         `json:"isBodyParamsRequired" yaml:"-" toml:"-"`
}

// Tag is an operation tag as declared in the source document.
type Tag struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
}

// Parameter is one operation parameter. Exactly one of the Is*Param flags is
// normally set.
type Parameter struct {
	ParamName     string `json:"paramName" yaml:"paramName" toml:"paramName"`
	BaseName      string `json:"baseName,omitempty" yaml:"baseName,omitempty" toml:"baseName,omitempty"`
	DataType      string `json:"dataType" yaml:"dataType" toml:"dataType"`
	Description   string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Required      bool   `json:"required" yaml:"required" toml:"required"`
	IsBodyParam   bool   `json:"isBodyParam" yaml:"isBodyParam" toml:"isBodyParam"`
	IsFormParam   bool   `json:"isFormParam" yaml:"isFormParam" toml:"isFormParam"`
	IsQueryParam  bool   `json:"isQueryParam" yaml:"isQueryParam" toml:"isQueryParam"`
	IsPathParam   bool   `json:"isPathParam" yaml:"isPathParam" toml:"isPathParam"`
	IsHeaderParam bool   `json:"isHeaderParam" yaml:"isHeaderParam" toml:"isHeaderParam"`
}

// String returns "Classname (kind)" for logs and diagnostics.
func (m *Model) String() string {
	if m == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%s (%s)", m.Classname, m.Kind)
}

// IsBodyLike reports whether the parameter is bound to the request payload.
func (p *Parameter) IsBodyLike() bool {
	return p.IsBodyParam || p.IsFormParam
}

// Model returns the model with the given classname, or nil.
func (d *Document) Model(classname string) *Model {
	for _, m := range d.Models {
		if m.Classname == classname {
			return m
		}
	}

	return nil
}

// ModelNames returns all model classnames in ascending order.
func (d *Document) ModelNames() []string {
	names := make([]string, 0, len(d.Models))
	for _, m := range d.Models {
		names = append(names, m.Classname)
	}

	sort.Strings(names)

	return names
}

// OperationCount returns the number of operations across all groups.
func (d *Document) OperationCount() int {
	n := 0
	for _, g := range d.Groups {
		n += len(g.Operations)
	}

	return n
}
