package document

import (
	"strings"

	"github.com/cockroachdb/errors"
)

//go:generate go tool stringer -type=ModelKind -linecomment

// ModelKind discriminates the Model variants.
type ModelKind int

const (
	KindObject ModelKind = iota // object
	KindScalar                  // scalar
	KindArray                   // array
)

// ErrUnknownKind is returned when a document names a model kind that does not exist.
var ErrUnknownKind = errors.New("unknown model kind")

// MarshalText encodes the kind by name.
func (k ModelKind) MarshalText() ([]byte, error) {
	if k < KindObject || k > KindArray {
		return nil, errors.Wrapf(ErrUnknownKind, "kind %d", int(k))
	}

	return []byte(k.String()), nil
}

// UnmarshalText accepts "object", "scalar" or "array" in any case.
// An empty value decodes to KindObject.
func (k *ModelKind) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "object":
		*k = KindObject
	case "scalar":
		*k = KindScalar
	case "array":
		*k = KindArray
	default:
		return errors.Wrapf(ErrUnknownKind, "%q", string(text))
	}

	return nil
}
