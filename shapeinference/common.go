// Package shapeinference calculates the shapes resulting from StableHLO operations and validates their inputs.
//
// Each operation gets its own function, taking the shapes of the operands and the decoded attributes, and
// returning the shapes of the results or an *Error describing why the operation is ill-formed. The functions
// are pure: they never modify their inputs and hold no state, so they can be called concurrently.
//
// Shapes may be partially known: extents can be shapes.DimUnknown and operands can be unranked. Rules check
// what is statically known and propagate unknowns otherwise.
//
// A few rules compare element types of reducer bodies with a relaxed floating point precision policy, see
// the relaxedFloatPrecision parameter of Reduce, ReduceWindow, Scatter, SelectAndScatter, AllReduce and
// ReduceScatter.
package shapeinference

import (
	"slices"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/hloinfer/internal/utils"
	"github.com/gomlx/hloinfer/types/shapes"
)

// AdjustAxisToRank returns a positive axis, adjusting negative numbers to the correct rank.
func AdjustAxisToRank(axis, rank int) (int, error) {
	if axis < -rank || axis >= rank {
		return -1, errorf(InvalidDimensionMapping, "axis %d is out of range for the rank %d", axis, rank)
	}
	if axis < 0 {
		axis += rank
	}
	return axis, nil
}

// checkTensor returns an error if shape is not a (ranked or unranked) tensor.
func checkTensor(name string, shape shapes.Shape) error {
	if !shape.IsTensor() {
		return errorf(IncompatibleShape, "%s must be a tensor, got %s", name, shape)
	}
	return nil
}

// checkTensors calls checkTensor for each shape, naming them name[i].
func checkTensors(name string, list []shapes.Shape) error {
	for ii, shape := range list {
		if !shape.IsTensor() {
			return errorf(IncompatibleShape, "%s[%d] must be a tensor, got %s", name, ii, shape)
		}
	}
	return nil
}

// checkSameElementType returns an IncompatibleElementType error if the element types of a and b differ.
func checkSameElementType(aName string, a shapes.Shape, bName string, b shapes.Shape) error {
	if !shapes.DTypesCompatible(a, b, false) {
		return errorf(IncompatibleElementType, "%s (%s) and %s (%s) must have the same element type", aName, a, bName, b)
	}
	return nil
}

// checkScalar returns an error if shape is ranked with rank != 0.
func checkScalar(name string, shape shapes.Shape) error {
	if err := checkTensor(name, shape); err != nil {
		return err
	}
	if shape.IsRanked() && shape.Rank() != 0 {
		return errorf(IncompatibleShape, "%s must be a scalar (rank-0), got %s", name, shape)
	}
	return nil
}

// checkAxes validates that axes are unique and within [0, rank).
func checkAxes(name string, axes []int, rank int) error {
	if !utils.AllInRange(axes, rank) {
		return errorf(InvalidDimensionMapping, "%s=%v must be within [0, %d)", name, axes, rank)
	}
	if utils.HasDuplicates(axes) {
		return errorf(InvalidDimensionMapping, "%s=%v cannot have repeated axes", name, axes)
	}
	return nil
}

// checkSortedAxes validates that axes are strictly increasing and within [0, rank).
func checkSortedAxes(name string, axes []int, rank int) error {
	if err := checkAxes(name, axes, rank); err != nil {
		return err
	}
	if !utils.IsSortedUnique(axes) {
		return errorf(InvalidDimensionMapping, "%s=%v must be sorted", name, axes)
	}
	return nil
}

// unknownDims returns rank copies of shapes.DimUnknown.
func unknownDims(rank int) []int {
	dims := make([]int, rank)
	for ii := range dims {
		dims[ii] = shapes.DimUnknown
	}
	return dims
}

// isInteger returns whether the element type (or the storage type of a quantized type) is an integer.
func isInteger(shape shapes.Shape) bool {
	return !shape.IsQuantized() && shape.DType.IsInt()
}

// checkIntegerIndices validates an index operand: a tensor of integer element type.
func checkIntegerIndices(name string, shape shapes.Shape) error {
	if err := checkTensor(name, shape); err != nil {
		return err
	}
	if !isInteger(shape) {
		return errorf(IncompatibleElementType, "%s must have an integer element type, got %s", name, shape)
	}
	return nil
}

// check1DIntegerOperand validates an operand that holds a vector of integer values, like a shape or a list
// of indices. If length >= 0 and the extent of the operand is known, it must be equal to length.
func check1DIntegerOperand(name string, shape shapes.Shape, length int) error {
	if err := checkIntegerIndices(name, shape); err != nil {
		return err
	}
	if shape.IsRanked() {
		if shape.Rank() != 1 {
			return errorf(IncompatibleShape, "%s must be 1-dimensional, got %s", name, shape)
		}
		if length >= 0 && !shapes.DimsCompatible(shape.Dimensions[0], length) {
			return errorf(IncompatibleShape, "%s must have %d elements, got %s", name, length, shape)
		}
	}
	return nil
}

// elementwiseShape unifies the shapes of the operands of an elementwise operation: ranks must be equal and
// extents compatible, with no implicit broadcasting. Unranked operands are compatible with any rank.
//
// The element types are not checked, the result takes the element type of the first operand.
func elementwiseShape(names []string, operands ...shapes.Shape) (shapes.Shape, error) {
	output := operands[0].Clone()
	for ii := 1; ii < len(operands); ii++ {
		operand := operands[ii]
		if !shapes.DimensionsCompatible(output, operand) {
			return shapes.Invalid(), errorf(IncompatibleShape, "%s (%s) and %s (%s) must have the same rank and compatible dimensions",
				names[0], operands[0], names[ii], operand)
		}
		refined, err := shapes.Refine(output, operand)
		if err != nil {
			return shapes.Invalid(), errorf(IncompatibleShape, "%s", err)
		}
		output = refined
	}
	return output, nil
}

// removeAxes returns the dimensions not listed in axes.
func removeAxes(dimensions []int, axes []int) []int {
	kept := make([]int, 0, len(dimensions))
	for axis, dim := range dimensions {
		if !slices.Contains(axes, axis) {
			kept = append(kept, dim)
		}
	}
	return kept
}

// bitWidth returns the number of bits of the dtype.
func bitWidth(dtype dtypes.DType) int {
	if dtype == dtypes.Bool {
		return 1
	}
	return dtype.Bits()
}

// cloneAll returns deep copies of the shapes.
func cloneAll(list []shapes.Shape) []shapes.Shape {
	clones := make([]shapes.Shape, len(list))
	for ii, shape := range list {
		clones[ii] = shape.Clone()
	}
	return clones
}

// asUnranked returns an unranked tensor shape with the element type of shape.
func asUnranked(shape shapes.Shape) shapes.Shape {
	unranked := shape.ElementShape()
	unranked.Dimensions = nil
	unranked.Unranked = true
	return unranked
}

// checkAxesPartial validates that axes are unique and non-negative, and, if rank is known (>= 0), within
// [0, rank). If sorted is set, they must also be strictly increasing.
func checkAxesPartial(name string, axes []int, rank int, sorted bool) error {
	if rank >= 0 {
		if sorted {
			return checkSortedAxes(name, axes, rank)
		}
		return checkAxes(name, axes, rank)
	}
	if slices.ContainsFunc(axes, func(axis int) bool { return axis < 0 }) {
		return errorf(InvalidDimensionMapping, "%s=%v cannot have negative axes", name, axes)
	}
	if utils.HasDuplicates(axes) {
		return errorf(InvalidDimensionMapping, "%s=%v cannot have repeated axes", name, axes)
	}
	if sorted && !utils.IsSortedUnique(axes) {
		return errorf(InvalidDimensionMapping, "%s=%v must be sorted", name, axes)
	}
	return nil
}
