package document

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is the on-disk encoding of a codegen document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

var (
	// ErrUnsupportedFormat is returned for file extensions with no decoder.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrDuplicateModel is returned when two models share a classname.
	ErrDuplicateModel = errors.New("duplicate model classname")
	// ErrEmptyName is returned for models or groups without a classname.
	ErrEmptyName = errors.New("empty classname")
)

// FormatFromPath picks a Format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.WithHint(
			errors.Wrapf(ErrUnsupportedFormat, "%s", path),
			"use a .yaml, .yml, .json or .toml file")
	}
}

// LoadFile loads and parses a codegen document from the given path.
func LoadFile(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read document %s", path)
	}

	doc, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load document %s", path)
	}

	return doc, nil
}

// Parse decodes data in the given format and normalizes the result.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document

	var err error

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", string(format))
	}

	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s document", format)
	}

	if err := Normalize(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Normalize reconciles Kind with the legacy IsArray flag, drops nil entries
// and checks that classnames are present and unique.
func Normalize(doc *Document) error {
	seen := make(map[string]struct{}, len(doc.Models))

	models := doc.Models[:0]

	for _, m := range doc.Models {
		if m == nil {
			continue
		}

		if m.Classname == "" {
			return errors.Wrap(ErrEmptyName, "model")
		}

		if _, dup := seen[m.Classname]; dup {
			return errors.Wrapf(ErrDuplicateModel, "%s", m.Classname)
		}

		seen[m.Classname] = struct{}{}

		if m.IsArray && m.Kind == KindObject {
			m.Kind = KindArray
		}

		m.IsArray = m.Kind == KindArray
		models = append(models, m)
	}

	doc.Models = models

	groups := doc.Groups[:0]

	for _, g := range doc.Groups {
		if g == nil {
			continue
		}

		if g.Classname == "" {
			return errors.Wrap(ErrEmptyName, "operation group")
		}

		ops := g.Operations[:0]

		for _, op := range g.Operations {
			if op == nil {
				continue
			}

			params := op.AllParams[:0]

			for _, p := range op.AllParams {
				if p != nil {
					params = append(params, p)
				}
			}

			op.AllParams = params
			ops = append(ops, op)
		}

		g.Operations = ops
		groups = append(groups, g)
	}

	doc.Groups = groups

	return nil
}
