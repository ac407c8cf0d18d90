package shapeinference

import (
	"fmt"

	"github.com/gomlx/hloinfer/types/shapes"
)

// checkStartIndices verifies the start indices of DynamicSlice and DynamicUpdateSlice: one rank-0 integer
// operand per operand axis, all of the same type.
func checkStartIndices(operand shapes.Shape, startIndices []shapes.Shape) error {
	if operand.IsRanked() && len(startIndices) != operand.Rank() {
		return errorf(AttributeArityMismatch, "there must be one start index per operand axis, got %d start indices for operand %s",
			len(startIndices), operand)
	}
	for ii, index := range startIndices {
		name := fmt.Sprintf("start_indices[%d]", ii)
		if err := checkIntegerIndices(name, index); err != nil {
			return err
		}
		if err := checkScalar(name, index); err != nil {
			return err
		}
		if ii > 0 && index.DType != startIndices[0].DType {
			return errorf(IncompatibleElementType, "all start indices must have the same type, got %s and %s",
				startIndices[0], index)
		}
	}
	return nil
}

// DynamicSlice returns the shape of slicing the operand with the given slice sizes, at positions given by
// startIndices (only known at runtime).
func DynamicSlice(operand shapes.Shape, startIndices []shapes.Shape, sliceSizes []int) (output shapes.Shape, err error) {
	if err = checkTensor("operand", operand); err != nil {
		return
	}
	if err = checkStartIndices(operand, startIndices); err != nil {
		return
	}
	if operand.IsRanked() && len(sliceSizes) != operand.Rank() {
		err = errorf(AttributeArityMismatch, "slice_sizes must have one value per operand axis, got %d for operand %s",
			len(sliceSizes), operand)
		return
	}
	if len(sliceSizes) != len(startIndices) {
		err = errorf(AttributeArityMismatch, "slice_sizes (%d values) and start_indices (%d values) must have the same length",
			len(sliceSizes), len(startIndices))
		return
	}
	for axis, size := range sliceSizes {
		if size < 0 {
			err = errorf(IncompatibleShape, "slice_sizes[%d]=%d must be non-negative", axis, size)
			return
		}
		if operand.IsRanked() && operand.Dimensions[axis] != shapes.DimUnknown && size > operand.Dimensions[axis] {
			err = errorf(IncompatibleShape, "slice_sizes[%d]=%d is larger than the operand dimension %d", axis, size, operand.Dimensions[axis])
			return
		}
	}
	return operand.WithDimensions(sliceSizes...), nil
}

// DynamicUpdateSlice returns the operand shape, after checking that the update fits in it and the start indices
// are valid.
func DynamicUpdateSlice(operand, update shapes.Shape, startIndices []shapes.Shape) (output shapes.Shape, err error) {
	if err = checkTensor("operand", operand); err != nil {
		return
	}
	if err = checkTensor("update", update); err != nil {
		return
	}
	if err = checkSameElementType("operand", operand, "update", update); err != nil {
		return
	}
	if err = checkStartIndices(operand, startIndices); err != nil {
		return
	}
	if update.IsRanked() && len(startIndices) != update.Rank() {
		err = errorf(AttributeArityMismatch, "there must be one start index per update axis, got %d start indices for update %s",
			len(startIndices), update)
		return
	}
	if operand.IsRanked() && update.IsRanked() {
		if operand.Rank() != update.Rank() {
			err = errorf(IncompatibleShape, "update %s must have the same rank as the operand %s", update, operand)
			return
		}
		for axis, dim := range update.Dimensions {
			operandDim := operand.Dimensions[axis]
			if dim != shapes.DimUnknown && operandDim != shapes.DimUnknown && dim > operandDim {
				err = errorf(IncompatibleShape, "update dimension %d of axis %d is larger than the operand dimension %d",
					dim, axis, operandDim)
				return
			}
		}
	}
	return operand.Clone(), nil
}

// RealDynamicSlice is a Slice where starts, limits and strides are given by 1-D integer operands, with one value
// per operand axis. The output has the rank of the operand, but its dimensions are unknown.
func RealDynamicSlice(operand, startIndices, limitIndices, strides shapes.Shape) (output shapes.Shape, err error) {
	if err = checkTensor("operand", operand); err != nil {
		return
	}
	rank := operand.Rank()
	for _, arg := range []struct {
		name  string
		shape shapes.Shape
	}{{"start_indices", startIndices}, {"limit_indices", limitIndices}, {"strides", strides}} {
		if err = check1DIntegerOperand(arg.name, arg.shape, rank); err != nil {
			return
		}
		if arg.shape.IsRanked() && rank < 0 {
			rank = arg.shape.Dimensions[0]
		}
	}
	if startIndices.IsRanked() && limitIndices.IsRanked() && strides.IsRanked() {
		if !shapes.DimsCompatible(startIndices.Dimensions[0], limitIndices.Dimensions[0]) ||
			!shapes.DimsCompatible(startIndices.Dimensions[0], strides.Dimensions[0]) {
			err = errorf(IncompatibleShape, "start_indices %s, limit_indices %s and strides %s must have the same number of elements",
				startIndices, limitIndices, strides)
			return
		}
	}
	if err = checkSameElementType("start_indices", startIndices, "limit_indices", limitIndices); err != nil {
		return
	}
	if err = checkSameElementType("start_indices", startIndices, "strides", strides); err != nil {
		return
	}
	if rank < 0 {
		return asUnranked(operand), nil
	}
	return operand.WithDimensions(unknownDims(rank)...), nil
}
