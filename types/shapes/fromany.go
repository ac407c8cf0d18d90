package shapes

import (
	"reflect"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
)

// FromAnyValue returns the shape of a Go value. Accepted values are plain-old-data (POD) types (bool, ints,
// floats, complex) and (multiple levels of) slices of POD.
//
// Slices must be regular (all sub-slices with the same length). An empty slice has dimension 0, and its inner
// dimensions (if any) are also 0.
//
// Example:
//
//	shape, _ := shapes.FromAnyValue([][]int64{{0, 1}, {2, 3}, {4, 5}}) // Returns shape (Int64)[3 2]
func FromAnyValue(v any) (shape Shape, err error) {
	if v == nil {
		return Invalid(), errors.New("cannot convert nil to a shape")
	}
	shape.Dimensions = []int{}
	err = shapeForAnyValueRecursive(&shape, reflect.ValueOf(v), reflect.TypeOf(v))
	if err != nil {
		return Invalid(), err
	}
	return
}

func shapeForAnyValueRecursive(shape *Shape, v reflect.Value, t reflect.Type) error {
	if t.Kind() != reflect.Slice {
		shape.DType = dtypes.FromGoType(t)
		if shape.DType == dtypes.InvalidDType {
			return errors.Errorf("cannot convert type %q to a valid shape", t)
		}
		return nil
	}

	shape.Dimensions = append(shape.Dimensions, v.Len())
	if v.Len() == 0 {
		// Inner dimensions of an empty slice are all 0.
		for t = t.Elem(); t.Kind() == reflect.Slice; t = t.Elem() {
			shape.Dimensions = append(shape.Dimensions, 0)
		}
		return shapeForAnyValueRecursive(shape, reflect.Value{}, t)
	}

	prefix := shape.Clone()
	if err := shapeForAnyValueRecursive(shape, v.Index(0), t.Elem()); err != nil {
		return err
	}
	for ii := 1; ii < v.Len(); ii++ {
		elementShape := prefix.Clone()
		if err := shapeForAnyValueRecursive(&elementShape, v.Index(ii), t.Elem()); err != nil {
			return err
		}
		if !shape.Equal(elementShape) {
			return errors.Errorf("sub-slices have irregular shapes, found shapes %s and %s", shape, elementShape)
		}
	}
	return nil
}
