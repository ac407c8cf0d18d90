package shapes

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
)

// DimsCompatible returns whether two extents are compatible: equal, or at least one of them is DimUnknown.
func DimsCompatible(a, b int) bool {
	return a == b || a == DimUnknown || b == DimUnknown
}

// RefineDim returns the most specific of two compatible extents: a known extent wins over DimUnknown.
func RefineDim(a, b int) int {
	if a == DimUnknown {
		return b
	}
	return a
}

// DTypesCompatible returns whether the element types of a and b are compatible.
//
// They are compatible if they are equal (including quantization parameters) or, if ignoreFpPrecision is set,
// if both are floating point (or both complex) and differ only in their bitwidth.
//
// The ignoreFpPrecision flag is a per-operation policy, see hloinfer.DefaultRelaxedFloatPrecisionOps.
func DTypesCompatible(a, b Shape, ignoreFpPrecision bool) bool {
	if a.IsQuantized() || b.IsQuantized() {
		return a.DType == b.DType && a.Quantization.Equal(b.Quantization)
	}
	if a.DType == b.DType {
		return true
	}
	if !ignoreFpPrecision {
		return false
	}
	return (a.DType.IsFloat() && b.DType.IsFloat()) || (a.DType.IsComplex() && b.DType.IsComplex())
}

// DimensionsCompatible returns whether the rank and dimensions of a and b are compatible.
// Unranked shapes are compatible with any rank.
func DimensionsCompatible(a, b Shape) bool {
	if a.Unranked || b.Unranked {
		return true
	}
	if len(a.Dimensions) != len(b.Dimensions) {
		return false
	}
	for axis, dim := range a.Dimensions {
		if !DimsCompatible(dim, b.Dimensions[axis]) {
			return false
		}
	}
	return true
}

// Compatible returns whether a and b are compatible shapes, that is, there is at least one concrete
// shape that both describe.
//
// Tensors must have compatible element types (see DTypesCompatible) and compatible dimensions. Tuples are
// compared element-wise and tokens are only compatible with tokens.
func Compatible(a, b Shape, ignoreFpPrecision bool) bool {
	if a.IsToken || b.IsToken {
		return a.IsToken && b.IsToken
	}
	if a.IsTuple() || b.IsTuple() {
		if !a.IsTuple() || !b.IsTuple() || len(a.TupleShapes) != len(b.TupleShapes) {
			return false
		}
		for ii, element := range a.TupleShapes {
			if !Compatible(element, b.TupleShapes[ii], ignoreFpPrecision) {
				return false
			}
		}
		return true
	}
	return DTypesCompatible(a, b, ignoreFpPrecision) && DimensionsCompatible(a, b)
}

// Refine returns the pointwise most specific unification of two compatible shapes: known dimensions win over
// DimUnknown and ranked shapes win over unranked ones. The element type is taken from a.
//
// It returns an error if the shapes are not compatible (element types are not checked).
func Refine(a, b Shape) (Shape, error) {
	if a.IsToken || b.IsToken {
		if a.IsToken && b.IsToken {
			return Token(), nil
		}
		return Invalid(), errors.Errorf("cannot refine %s and %s: token is only compatible with token", a, b)
	}
	if a.IsTuple() || b.IsTuple() {
		if !a.IsTuple() || !b.IsTuple() || len(a.TupleShapes) != len(b.TupleShapes) {
			return Invalid(), errors.Errorf("cannot refine %s and %s: mismatching tuples", a, b)
		}
		elements := make([]Shape, len(a.TupleShapes))
		for ii := range a.TupleShapes {
			refined, err := Refine(a.TupleShapes[ii], b.TupleShapes[ii])
			if err != nil {
				return Invalid(), errors.WithMessagef(err, "tuple element #%d", ii)
			}
			elements[ii] = refined
		}
		return MakeTuple(elements...), nil
	}
	if a.Unranked {
		return b.WithElementTypeOf(a), nil
	}
	if b.Unranked {
		return a.Clone(), nil
	}
	if len(a.Dimensions) != len(b.Dimensions) {
		return Invalid(), errors.Errorf("cannot refine %s and %s: ranks differ", a, b)
	}
	refined := a.Clone()
	for axis, dim := range a.Dimensions {
		if !DimsCompatible(dim, b.Dimensions[axis]) {
			return Invalid(), errors.Errorf("cannot refine %s and %s: axis %d has incompatible dimensions %d and %d",
				a, b, axis, dim, b.Dimensions[axis])
		}
		refined.Dimensions[axis] = RefineDim(dim, b.Dimensions[axis])
	}
	return refined, nil
}

// WithElementTypeOf returns a copy of s with the element type (dtype and quantization) of other.
func (s Shape) WithElementTypeOf(other Shape) Shape {
	s2 := s.Clone()
	s2.DType = other.DType
	s2.Quantization = other.Quantization.Clone()
	return s2
}

// ExpressedDType returns the dtype used for arithmetic on the element: the expressed type for quantized shapes,
// or the DType otherwise.
func (s Shape) ExpressedDType() dtypes.DType {
	if s.Quantization != nil {
		return s.Quantization.ExpressedType
	}
	return s.DType
}
