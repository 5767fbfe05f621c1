package typescript

import (
	"strings"

	"swagger-typings/internal/naming"
)

// DefaultImportPrefix marks a model module path as relative.
const DefaultImportPrefix = "./"

// Naming configures module path derivation.
type Naming struct {
	// ImportMapping overrides derivation for exact type names.
	ImportMapping   map[string]string
	ModelNamePrefix string
	ModelNameSuffix string
	ModelPackage    string
	APIPackage      string
	APINamePrefix   string
	APINameSuffix   string
}

// Deriver turns type and group names into module paths.
// All methods are pure functions of the name and the Naming it was built with.
type Deriver struct {
	naming Naming
}

// NewDeriver creates a Deriver. The import mapping is copied.
func NewDeriver(n Naming) *Deriver {
	mapping := make(map[string]string, len(n.ImportMapping))
	for k, v := range n.ImportMapping {
		mapping[k] = v
	}

	n.ImportMapping = mapping

	return &Deriver{naming: n}
}

// Override returns the import-mapping entry for name, if any.
func (d *Deriver) Override(name string) (string, bool) {
	p, ok := d.naming.ImportMapping[name]
	return p, ok
}

// External returns the import-mapping entry for name or, failing that, for
// name with its decoration stripped. Models it resolves get no declaration
// file of their own.
func (d *Deriver) External(name string) (string, bool) {
	if p, ok := d.Override(name); ok {
		return p, true
	}

	return d.Override(d.StripDecoration(name))
}

// StripDecoration removes the configured model name prefix and suffix,
// each compared in capitalized form, when present.
func (d *Deriver) StripDecoration(name string) string {
	result := name

	if prefix := naming.Capitalize(d.naming.ModelNamePrefix); prefix != "" {
		result = strings.TrimPrefix(result, prefix)
	}

	if suffix := naming.Capitalize(d.naming.ModelNameSuffix); suffix != "" {
		result = strings.TrimSuffix(result, suffix)
	}

	return result
}

// ModelFilename returns the relative module path for a model name.
// Example: "pet_category" -> "./PetCategory".
func (d *Deriver) ModelFilename(name string) string {
	if p, ok := d.Override(name); ok {
		return p
	}

	return DefaultImportPrefix + naming.Camelize(naming.SanitizeName(name), false)
}

// ModelImport returns the package-qualified import path for a model name.
// Example: "Pet" -> "model/Pet".
func (d *Deriver) ModelImport(name string) string {
	if p, ok := d.Override(name); ok {
		return p
	}

	return d.naming.ModelPackage + "/" + strings.TrimPrefix(d.ModelFilename(name), DefaultImportPrefix)
}

// DeriveFilename is the module path used in model import records: an
// import-mapping hit on the raw name wins, otherwise the decoration is
// stripped before ModelFilename.
func (d *Deriver) DeriveFilename(name string) string {
	if p, ok := d.Override(name); ok {
		return p
	}

	return d.ModelFilename(d.StripDecoration(name))
}

// APIName returns the API class name for a group or tag name.
// An empty name yields the default API.
func (d *Deriver) APIName(name string) string {
	if name == "" {
		name = "default"
	}

	return naming.Camelize(naming.SanitizeName(d.naming.APINamePrefix+"_"+name+"_"+d.naming.APINameSuffix), false)
}

// APIFilename returns the file stem of an API module.
// Example: "Pet" -> "pet".
func (d *Deriver) APIFilename(name string) string {
	return naming.Camelize(d.APIName(name), true)
}

// APIImport returns the package-qualified import path for the API module
// generated for a group or tag name.
// Example: "Pet" -> "api/pet".
func (d *Deriver) APIImport(name string) string {
	if p, ok := d.Override(name); ok {
		return p
	}

	return d.naming.APIPackage + "/" + d.APIFilename(name)
}

// APIClassImport returns the import path of the API module for an already
// derived API class name, such as an operation group's classname.
// Example: "PetApi" -> "api/petApi".
func (d *Deriver) APIClassImport(classname string) string {
	if p, ok := d.Override(classname); ok {
		return p
	}

	return d.naming.APIPackage + "/" + naming.Camelize(naming.SanitizeName(classname), true)
}
