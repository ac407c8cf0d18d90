package attributes

import (
	"encoding/binary"
	"math"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/pkg/errors"
	"github.com/x448/float16"
	"golang.org/x/exp/constraints"
)

// DecodeInts decodes all elements of an integer payload (any signed or unsigned integer element type) into T,
// in row-major order, regardless of the rank of the payload.
func DecodeInts[T constraints.Integer](attr *Dense, name string) ([]T, error) {
	if err := attr.check(name); err != nil {
		return nil, err
	}
	if !attr.DType.IsInt() {
		return nil, errors.Wrapf(ErrMalformedAttribute, "attribute %q must hold integers, got %s", name, attr.DType)
	}
	size := elementSize(attr.DType)
	values := make([]T, attr.Len())
	for ii := range values {
		raw := attr.Data[ii*size : (ii+1)*size]
		switch attr.DType {
		case dtypes.Int8:
			values[ii] = T(int8(raw[0]))
		case dtypes.Uint8:
			values[ii] = T(raw[0])
		case dtypes.Int16:
			values[ii] = T(int16(binary.LittleEndian.Uint16(raw)))
		case dtypes.Uint16:
			values[ii] = T(binary.LittleEndian.Uint16(raw))
		case dtypes.Int32:
			values[ii] = T(int32(binary.LittleEndian.Uint32(raw)))
		case dtypes.Uint32:
			values[ii] = T(binary.LittleEndian.Uint32(raw))
		case dtypes.Int64:
			values[ii] = T(int64(binary.LittleEndian.Uint64(raw)))
		case dtypes.Uint64:
			values[ii] = T(binary.LittleEndian.Uint64(raw))
		}
	}
	return values, nil
}

// Int1D decodes a per-dimension integer attribute.
//
// If attr is nil (absent), it returns arity copies of defaultValue. Otherwise, attr must be 1-D
// (ErrMalformedAttribute) and, if arity >= 0, hold exactly arity elements (ErrArityMismatch).
func Int1D(attr *Dense, name string, arity int, defaultValue int) ([]int, error) {
	if attr == nil {
		if arity < 0 {
			return nil, nil
		}
		values := make([]int, arity)
		for ii := range values {
			values[ii] = defaultValue
		}
		return values, nil
	}
	if err := attr.check(name); err != nil {
		return nil, err
	}
	if attr.Rank() != 1 {
		return nil, errors.Wrapf(ErrMalformedAttribute, "attribute %q must be 1-dimensional, got %s", name, attr)
	}
	if arity >= 0 && attr.Dimensions[0] != arity {
		return nil, errors.Wrapf(ErrArityMismatch, "attribute %q must have %d elements, got %d", name, arity, attr.Dimensions[0])
	}
	return DecodeInts[int](attr, name)
}

// Int2D decodes a 2-D integer attribute into a matrix (a slice of rows).
//
// attr must be present and 2-D (ErrMalformedAttribute). If rows or cols are >= 0, the corresponding
// dimension must match (ErrArityMismatch).
func Int2D(attr *Dense, name string, rows, cols int) ([][]int, error) {
	if attr == nil {
		return nil, errors.Wrapf(ErrMalformedAttribute, "attribute %q is required", name)
	}
	if err := attr.check(name); err != nil {
		return nil, err
	}
	if attr.Rank() != 2 {
		return nil, errors.Wrapf(ErrMalformedAttribute, "attribute %q must be 2-dimensional, got %s", name, attr)
	}
	if rows >= 0 && attr.Dimensions[0] != rows {
		return nil, errors.Wrapf(ErrArityMismatch, "attribute %q must have %d rows, got %d", name, rows, attr.Dimensions[0])
	}
	if cols >= 0 && attr.Dimensions[1] != cols {
		return nil, errors.Wrapf(ErrArityMismatch, "attribute %q must have %d columns, got %d", name, cols, attr.Dimensions[1])
	}
	flat, err := DecodeInts[int](attr, name)
	if err != nil {
		return nil, err
	}
	numCols := attr.Dimensions[1]
	matrix := make([][]int, attr.Dimensions[0])
	for row := range matrix {
		matrix[row] = flat[row*numCols : (row+1)*numCols : (row+1)*numCols]
	}
	return matrix, nil
}

// Padding decodes a padding attribute of shape [spatialRank, 2] into (low, high) pairs.
// An absent padding decodes to all zeros.
func Padding(attr *Dense, spatialRank int) ([][2]int, error) {
	if attr == nil {
		return make([][2]int, spatialRank), nil
	}
	matrix, err := Int2D(attr, "padding", -1, 2)
	if err != nil {
		return nil, err
	}
	if len(matrix) != spatialRank {
		return nil, errors.Wrapf(ErrArityMismatch, "attribute \"padding\" must have shape [%d, 2], got %s", spatialRank, attr)
	}
	padding := make([][2]int, spatialRank)
	for ii, row := range matrix {
		padding[ii] = [2]int{row[0], row[1]}
	}
	return padding, nil
}

// Bool1D decodes a boolean vector, like the window reversal flags. Absent attributes decode to arity copies of
// defaultValue.
func Bool1D(attr *Dense, name string, arity int, defaultValue bool) ([]bool, error) {
	if attr == nil {
		if arity < 0 {
			return nil, nil
		}
		values := make([]bool, arity)
		for ii := range values {
			values[ii] = defaultValue
		}
		return values, nil
	}
	if err := attr.check(name); err != nil {
		return nil, err
	}
	if attr.DType != dtypes.Bool {
		return nil, errors.Wrapf(ErrMalformedAttribute, "attribute %q must hold booleans, got %s", name, attr.DType)
	}
	if attr.Rank() != 1 {
		return nil, errors.Wrapf(ErrMalformedAttribute, "attribute %q must be 1-dimensional, got %s", name, attr)
	}
	if arity >= 0 && attr.Dimensions[0] != arity {
		return nil, errors.Wrapf(ErrArityMismatch, "attribute %q must have %d elements, got %d", name, arity, attr.Dimensions[0])
	}
	values := make([]bool, attr.Len())
	for ii, b := range attr.Data {
		values[ii] = b != 0
	}
	return values, nil
}

// Float1D decodes a floating point vector (Float16, BFloat16, Float32 or Float64 payloads) into float64.
// Absent attributes decode to nil, and arity < 0 accepts any length.
func Float1D(attr *Dense, name string, arity int) ([]float64, error) {
	if attr == nil {
		return nil, nil
	}
	if err := attr.check(name); err != nil {
		return nil, err
	}
	if !attr.DType.IsFloat() {
		return nil, errors.Wrapf(ErrMalformedAttribute, "attribute %q must hold floats, got %s", name, attr.DType)
	}
	if attr.Rank() != 1 {
		return nil, errors.Wrapf(ErrMalformedAttribute, "attribute %q must be 1-dimensional, got %s", name, attr)
	}
	if arity >= 0 && attr.Dimensions[0] != arity {
		return nil, errors.Wrapf(ErrArityMismatch, "attribute %q must have %d elements, got %d", name, arity, attr.Dimensions[0])
	}
	size := elementSize(attr.DType)
	values := make([]float64, attr.Len())
	for ii := range values {
		raw := attr.Data[ii*size : (ii+1)*size]
		switch attr.DType {
		case dtypes.Float16:
			values[ii] = float64(float16.Frombits(binary.LittleEndian.Uint16(raw)).Float32())
		case dtypes.BFloat16:
			values[ii] = float64(bfloat16.BFloat16(binary.LittleEndian.Uint16(raw)).Float32())
		case dtypes.Float32:
			values[ii] = float64(math.Float32frombits(binary.LittleEndian.Uint32(raw)))
		case dtypes.Float64:
			values[ii] = math.Float64frombits(binary.LittleEndian.Uint64(raw))
		}
	}
	return values, nil
}
