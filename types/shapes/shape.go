// Package shapes defines Shape, the descriptor of an operand or result of a StableHLO operation.
//
// A Shape holds an element type (DType, from github.com/gomlx/gopjrt/dtypes) and the dimensions
// (also called extents) of each axis. Beyond plain ranked tensors a Shape can also be:
//
//   - Unranked: the rank itself is unknown (the `tensor<*xf32>` type).
//   - Partially known: some dimensions are DimUnknown (the `tensor<?x3xf32>` type).
//   - Quantized: the DType is the storage type and Quantization holds the scale/zero-point metadata.
//   - A tuple of other shapes, or a token.
//
// ## Glossary
//
//   - Rank: number of axes (dimensions) of a shape.
//   - Axis: the index of a dimension. Sometimes used interchangeably with dimension, but here "axis" refers to
//     the index and "dimension" to its size (extent).
//   - DType: the data type of the unit element.
//   - Scalar: a ranked shape with no axes.
package shapes

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
)

// DimUnknown marks a dimension whose extent is not statically known.
const DimUnknown = -1

// Shape describes the type of a value in a StableHLO program.
//
// Use Make, MakeUnranked, MakeTuple or Token to create new shapes.
type Shape struct {
	DType      dtypes.DType
	Dimensions []int

	// Unranked is set for tensors whose rank is not known. Dimensions is then nil.
	Unranked bool

	// Quantization is set for quantized tensors, in which case DType is the storage type.
	Quantization *Quantization

	// TupleShapes are the elements of a tuple. A tuple has DType == dtypes.InvalidDType.
	TupleShapes []Shape

	// IsToken is set for the token type, used to order side-effecting operations.
	IsToken bool
}

// Make returns a ranked Shape with the given dtype and dimensions.
// Dimensions must be non-negative or DimUnknown.
func Make(dtype dtypes.DType, dimensions ...int) Shape {
	s := Shape{DType: dtype, Dimensions: slices.Clone(dimensions)}
	for _, dim := range dimensions {
		if dim < 0 && dim != DimUnknown {
			exceptions.Panicf("shapes.Make(%s): cannot create a shape with a negative dimension %d", dtype, dim)
		}
	}
	return s
}

// MakeUnranked returns a Shape with a known dtype but unknown rank.
func MakeUnranked(dtype dtypes.DType) Shape {
	return Shape{DType: dtype, Unranked: true}
}

// MakeTuple returns a shape representing a tuple of elements with the given shapes.
func MakeTuple(elements ...Shape) Shape {
	tuple := Shape{DType: dtypes.InvalidDType, TupleShapes: make([]Shape, 0, len(elements))}
	for _, element := range elements {
		tuple.TupleShapes = append(tuple.TupleShapes, element.Clone())
	}
	return tuple
}

// Token returns the token shape.
func Token() Shape {
	return Shape{IsToken: true}
}

// Invalid returns an invalid shape.
//
// Invalid().Ok() == false.
func Invalid() Shape {
	return Shape{DType: dtypes.InvalidDType}
}

// Ok returns whether this is a valid Shape. A "zero" shape, that is just instantiating it with Shape{}, is invalid.
func (s Shape) Ok() bool {
	return s.DType != dtypes.InvalidDType || s.TupleShapes != nil || s.IsToken
}

// IsTuple returns whether the shape represents a tuple.
func (s Shape) IsTuple() bool { return s.TupleShapes != nil }

// IsTensor returns whether the shape is a (ranked or unranked) tensor, as opposed to a tuple or token.
func (s Shape) IsTensor() bool { return s.DType != dtypes.InvalidDType && !s.IsTuple() && !s.IsToken }

// IsRanked returns whether the rank of the shape is known.
func (s Shape) IsRanked() bool { return !s.Unranked }

// Rank of the shape, that is, the number of dimensions. It returns DimUnknown for unranked shapes.
func (s Shape) Rank() int {
	if s.Unranked {
		return DimUnknown
	}
	return len(s.Dimensions)
}

// IsScalar returns whether the shape is a ranked tensor with no axes.
func (s Shape) IsScalar() bool { return s.IsTensor() && s.IsRanked() && len(s.Dimensions) == 0 }

// IsStatic returns whether the rank and all dimensions are known.
func (s Shape) IsStatic() bool {
	return s.IsRanked() && !slices.Contains(s.Dimensions, DimUnknown)
}

// IsDynamicDim returns whether the dimension of the given axis is unknown.
func (s Shape) IsDynamicDim(axis int) bool { return s.Dim(axis) == DimUnknown }

// IsQuantized returns whether the element type is quantized.
func (s Shape) IsQuantized() bool { return s.Quantization != nil }

// Dim returns the dimension of the given axis. axis can take negative numbers, in which
// case it counts as starting from the end -- so axis=-1 refers to the last axis.
// Like with a slice indexing, it panics for an out-of-bound axis or an unranked shape.
func (s Shape) Dim(axis int) int {
	if s.Unranked {
		exceptions.Panicf("Shape.Dim(%d) called on unranked shape %s", axis, s)
	}
	adjustedAxis := axis
	if adjustedAxis < 0 {
		adjustedAxis += s.Rank()
	}
	if adjustedAxis < 0 || adjustedAxis >= s.Rank() {
		exceptions.Panicf("Shape.Dim(%d) out-of-bounds for rank %d (shape=%s)", axis, s.Rank(), s)
	}
	return s.Dimensions[adjustedAxis]
}

// Size returns the number of elements of the shape: the product of all dimensions.
// It returns DimUnknown if any dimension (or the rank) is unknown.
func (s Shape) Size() int {
	if !s.IsStatic() {
		return DimUnknown
	}
	size := 1
	for _, d := range s.Dimensions {
		size *= d
	}
	return size
}

// WithDType returns a copy of the shape with a different dtype. The quantization is dropped.
func (s Shape) WithDType(dtype dtypes.DType) Shape {
	s2 := s.Clone()
	s2.DType = dtype
	s2.Quantization = nil
	return s2
}

// WithDimensions returns a ranked copy of the shape (same element type) with the given dimensions.
func (s Shape) WithDimensions(dimensions ...int) Shape {
	s2 := s.Clone()
	s2.Unranked = false
	s2.Dimensions = slices.Clone(dimensions)
	if s2.Dimensions == nil {
		s2.Dimensions = []int{}
	}
	return s2
}

// ElementShape returns the scalar shape with the same element type (including quantization).
func (s Shape) ElementShape() Shape {
	return s.WithDimensions()
}

// Clone returns a new deep copy of the shape.
func (s Shape) Clone() (s2 Shape) {
	s2.DType = s.DType
	s2.Unranked = s.Unranked
	s2.IsToken = s.IsToken
	s2.Dimensions = slices.Clone(s.Dimensions)
	if s.Quantization != nil {
		s2.Quantization = s.Quantization.Clone()
	}
	if s.TupleShapes != nil {
		s2.TupleShapes = make([]Shape, 0, len(s.TupleShapes))
		for _, subShape := range s.TupleShapes {
			s2.TupleShapes = append(s2.TupleShapes, subShape.Clone())
		}
	}
	return
}

// Equal compares two shapes for strict equality: kind, dtype, quantization and dimensions
// (DimUnknown only equals DimUnknown).
func (s Shape) Equal(s2 Shape) bool {
	if s.IsToken || s2.IsToken {
		return s.IsToken == s2.IsToken
	}
	if s.IsTuple() || s2.IsTuple() {
		if len(s.TupleShapes) != len(s2.TupleShapes) || s.IsTuple() != s2.IsTuple() {
			return false
		}
		for ii, element := range s.TupleShapes {
			if !element.Equal(s2.TupleShapes[ii]) {
				return false
			}
		}
		return true
	}
	if s.DType != s2.DType || !s.Quantization.Equal(s2.Quantization) {
		return false
	}
	return s.EqualDimensions(s2)
}

// EqualDimensions compares the rank and dimensions of two tensor shapes. DTypes can be different.
func (s Shape) EqualDimensions(s2 Shape) bool {
	if s.Unranked || s2.Unranked {
		return s.Unranked == s2.Unranked
	}
	return slices.Equal(s.Dimensions, s2.Dimensions)
}

// String implements fmt.Stringer, pretty-prints the shape.
func (s Shape) String() string {
	switch {
	case s.IsToken:
		return "Token"
	case s.IsTuple():
		parts := make([]string, 0, len(s.TupleShapes))
		for _, tuple := range s.TupleShapes {
			parts = append(parts, tuple.String())
		}
		return fmt.Sprintf("Tuple<%s>", strings.Join(parts, ", "))
	}
	dtype := s.DType.String()
	if s.Quantization != nil {
		dtype = s.Quantization.String()
	}
	if s.Unranked {
		return fmt.Sprintf("(%s)[*]", dtype)
	}
	if s.Rank() == 0 {
		return fmt.Sprintf("(%s)", dtype)
	}
	dims := make([]string, len(s.Dimensions))
	for i, dim := range s.Dimensions {
		if dim == DimUnknown {
			dims[i] = "?"
		} else {
			dims[i] = fmt.Sprintf("%d", dim)
		}
	}
	return fmt.Sprintf("(%s)[%s]", dtype, strings.Join(dims, " "))
}

// Shape returns a shallow copy of itself.
func (s Shape) Shape() Shape { return s }
