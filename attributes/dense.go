// Package attributes decodes the raw payloads of static operation attributes (dense 1-D or 2-D grids of
// integers, booleans or floats) into typed Go vectors and matrices.
//
// Decoding validates the rank and element count of the payload against what the operation expects, and fills
// absent optional attributes with their defaults (e.g. strides of 1, paddings of 0), so inference rules never
// have to deal with missing values.
//
// Errors wrap ErrMalformedAttribute (wrong rank or element type) or ErrArityMismatch (wrong number of
// elements), so callers can classify them with errors.Is.
package attributes

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"slices"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/hloinfer/types/shapes"
	"github.com/pkg/errors"
)

var (
	// ErrMalformedAttribute is wrapped by errors about an attribute payload of the wrong rank or element type.
	ErrMalformedAttribute = errors.New("malformed attribute")

	// ErrArityMismatch is wrapped by errors about an attribute with the wrong number of elements.
	ErrArityMismatch = errors.New("attribute arity mismatch")
)

// Dense is the raw payload of a dense attribute: a row-major, little-endian encoded grid of values.
//
// A nil *Dense represents an absent attribute.
type Dense struct {
	DType      dtypes.DType
	Dimensions []int
	Data       []byte
}

// Rank returns the number of axes of the payload.
func (d *Dense) Rank() int {
	return len(d.Dimensions)
}

// Len returns the number of elements of the payload.
func (d *Dense) Len() int {
	n := 1
	for _, dim := range d.Dimensions {
		n *= dim
	}
	return n
}

// Shape returns the shape of the payload.
func (d *Dense) Shape() shapes.Shape {
	return shapes.Make(d.DType, d.Dimensions...)
}

// String implements fmt.Stringer.
func (d *Dense) String() string {
	if d == nil {
		return "<absent>"
	}
	if len(d.Dimensions) == 0 {
		return fmt.Sprintf("Dense(%s)", d.DType)
	}
	return fmt.Sprintf("Dense(%s)%v", d.DType, d.Dimensions)
}

// elementSize returns the number of bytes used per element of the dtype, or 0 if not supported.
func elementSize(dtype dtypes.DType) int {
	switch dtype {
	case dtypes.Bool, dtypes.Int8, dtypes.Uint8:
		return 1
	case dtypes.Int16, dtypes.Uint16, dtypes.Float16, dtypes.BFloat16:
		return 2
	case dtypes.Int32, dtypes.Uint32, dtypes.Float32:
		return 4
	case dtypes.Int64, dtypes.Uint64, dtypes.Float64:
		return 8
	}
	return 0
}

// Validate checks that the payload is well-formed: a supported element type, non-negative dimensions and the
// right amount of data. name is only used in the error message.
func (d *Dense) Validate(name string) error {
	if d == nil {
		return errors.Wrapf(ErrMalformedAttribute, "attribute %q is required", name)
	}
	return d.check(name)
}

// check validates that the data length matches the dtype and dimensions.
func (d *Dense) check(name string) error {
	size := elementSize(d.DType)
	if size == 0 {
		return errors.Wrapf(ErrMalformedAttribute, "attribute %q has unsupported element type %s", name, d.DType)
	}
	for _, dim := range d.Dimensions {
		if dim < 0 {
			return errors.Wrapf(ErrMalformedAttribute, "attribute %q has negative dimension in %v", name, d.Dimensions)
		}
	}
	if len(d.Data) != size*d.Len() {
		return errors.Wrapf(ErrMalformedAttribute, "attribute %q has %d bytes of data, but %s requires %d",
			name, len(d.Data), d, size*d.Len())
	}
	return nil
}

// FromValue encodes a Go value (a scalar or a regular slice, or slice of slices, of bool, ints or floats)
// as a Dense payload.
//
// Example:
//
//	padding, _ := attributes.FromValue([][]int64{{1, 1}, {0, 2}})
func FromValue(value any) (*Dense, error) {
	shape, err := shapes.FromAnyValue(value)
	if err != nil {
		return nil, errors.WithMessage(err, "attributes.FromValue")
	}
	size := elementSize(shape.DType)
	if size == 0 || shape.DType == dtypes.Float16 || shape.DType == dtypes.BFloat16 {
		return nil, errors.Errorf("attributes.FromValue: element type %s not supported", shape.DType)
	}
	d := &Dense{DType: shape.DType, Dimensions: slices.Clone(shape.Dimensions), Data: make([]byte, 0, size*shape.Size())}
	var encode func(v reflect.Value)
	encode = func(v reflect.Value) {
		if v.Kind() == reflect.Slice {
			for ii := range v.Len() {
				encode(v.Index(ii))
			}
			return
		}
		switch v.Kind() {
		case reflect.Bool:
			var b byte
			if v.Bool() {
				b = 1
			}
			d.Data = append(d.Data, b)
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			d.Data = appendUint(d.Data, size, uint64(v.Int()))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			d.Data = appendUint(d.Data, size, v.Uint())
		case reflect.Float32:
			d.Data = binary.LittleEndian.AppendUint32(d.Data, math.Float32bits(float32(v.Float())))
		case reflect.Float64:
			d.Data = binary.LittleEndian.AppendUint64(d.Data, math.Float64bits(v.Float()))
		}
	}
	encode(reflect.ValueOf(value))
	if len(d.Data) != size*shape.Size() {
		return nil, errors.Errorf("attributes.FromValue: value of type %T cannot be encoded", value)
	}
	return d, nil
}

// MustFromValue is like FromValue, but panics on error. Handy for literal attributes.
func MustFromValue(value any) *Dense {
	d, err := FromValue(value)
	if err != nil {
		panic(err)
	}
	return d
}

func appendUint(data []byte, size int, v uint64) []byte {
	switch size {
	case 1:
		return append(data, byte(v))
	case 2:
		return binary.LittleEndian.AppendUint16(data, uint16(v))
	case 4:
		return binary.LittleEndian.AppendUint32(data, uint32(v))
	default:
		return binary.LittleEndian.AppendUint64(data, v)
	}
}
