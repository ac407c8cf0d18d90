package shapeinference

import (
	"slices"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/hloinfer/internal/utils"
	"github.com/gomlx/hloinfer/types/shapes"
)

// Broadcast prepends the given sizes to the operand dimensions.
func Broadcast(operand shapes.Shape, broadcastSizes []int) (output shapes.Shape, err error) {
	if err = checkTensor("operand", operand); err != nil {
		return
	}
	for ii, size := range broadcastSizes {
		if size < 0 {
			err = errorf(MalformedAttribute, "Broadcast: broadcast_sizes[%d]=%d must be non-negative", ii, size)
			return
		}
	}
	if operand.Unranked {
		return operand.Clone(), nil
	}
	return operand.WithDimensions(slices.Concat(broadcastSizes, operand.Dimensions)...), nil
}

// BroadcastInDim verifies that the arguments are valid and returns the (declared) target shape.
//
// broadcastDimensions maps each operand axis to a target axis. They must be unique, and the operand dimension
// must be either 1 or compatible with the target dimension.
func BroadcastInDim(operand, targetShape shapes.Shape, broadcastDimensions []int) (output shapes.Shape, err error) {
	if err = checkTensor("operand", operand); err != nil {
		return
	}
	if err = checkTensor("target shape", targetShape); err != nil {
		return
	}
	if err = checkSameElementType("operand", operand, "target shape", targetShape); err != nil {
		return
	}
	if targetShape.Unranked {
		err = errorf(IncompatibleShape, "BroadcastInDim() requires a ranked target shape, got %s", targetShape)
		return
	}
	if err = verifyBroadcastDimensions("BroadcastInDim", operand, targetShape.Dimensions, broadcastDimensions); err != nil {
		return
	}
	return targetShape.Clone(), nil
}

func verifyBroadcastDimensions(opName string, operand shapes.Shape, targetDims, broadcastDimensions []int) error {
	targetRank := len(targetDims)
	if operand.Unranked {
		return checkAxes("broadcast_dimensions", broadcastDimensions, targetRank)
	}
	if targetRank < operand.Rank() {
		return errorf(IncompatibleShape, "%s() cannot be used to shrink the rank of the operand, got operand=%s and target dimensions %v",
			opName, operand, targetDims)
	}
	if len(broadcastDimensions) != operand.Rank() {
		return errorf(AttributeArityMismatch, "%s() requires all operand's axes mappings to be defined, operand has shape %s, but %d axes were given",
			opName, operand, len(broadcastDimensions))
	}
	if err := checkAxes("broadcast_dimensions", broadcastDimensions, targetRank); err != nil {
		return err
	}
	for operandAxis, targetAxis := range broadcastDimensions {
		operandDim := operand.Dimensions[operandAxis]
		targetDim := targetDims[targetAxis]
		if operandDim != 1 && !shapes.DimsCompatible(operandDim, targetDim) {
			return errorf(IncompatibleShape, "%s() requires operand axes to be broadcast to be of dimension 1, but got operand.Dimensions[%d]=%d and target.Dimensions[%d]=%d",
				opName, operandAxis, operandDim, targetAxis, targetDim)
		}
	}
	return nil
}

// DynamicBroadcastInDim is like BroadcastInDim, but the target dimensions are given by the values of the
// outputDimensions operand: a 1-D integer tensor with one element per target axis.
//
// knownExpandingDimensions and knownNonexpandingDimensions are operand axes, and they must be disjoint.
func DynamicBroadcastInDim(operand, outputDimensions shapes.Shape, broadcastDimensions,
	knownExpandingDimensions, knownNonexpandingDimensions []int, targetShape shapes.Shape) (output shapes.Shape, err error) {
	if err = checkTensor("operand", operand); err != nil {
		return
	}
	if err = checkTensor("target shape", targetShape); err != nil {
		return
	}
	if err = checkSameElementType("operand", operand, "target shape", targetShape); err != nil {
		return
	}
	if targetShape.Unranked {
		err = errorf(IncompatibleShape, "DynamicBroadcastInDim() requires a ranked target shape, got %s", targetShape)
		return
	}
	if err = check1DIntegerOperand("output_dimensions", outputDimensions, targetShape.Rank()); err != nil {
		return
	}
	if err = verifyBroadcastDimensions("DynamicBroadcastInDim", operand, targetShape.Dimensions, broadcastDimensions); err != nil {
		return
	}
	if operand.IsRanked() {
		if err = checkAxes("known_expanding_dimensions", knownExpandingDimensions, operand.Rank()); err != nil {
			return
		}
		if err = checkAxes("known_nonexpanding_dimensions", knownNonexpandingDimensions, operand.Rank()); err != nil {
			return
		}
	}
	for _, axis := range knownExpandingDimensions {
		if slices.Contains(knownNonexpandingDimensions, axis) {
			err = errorf(InvalidDimensionMapping, "DynamicBroadcastInDim(): axis %d cannot be both known expanding and known non-expanding", axis)
			return
		}
	}
	return targetShape.Clone(), nil
}

// Concatenate calculates the output shape of a Concatenate operation.
//
// All non-concatenated dimensions must be compatible. The concatenated dimension is the sum of the inputs'
// dimensions, or unknown if any of them is unknown.
func Concatenate(inputs []shapes.Shape, axis int) (output shapes.Shape, err error) {
	if len(inputs) == 0 {
		return shapes.Invalid(), errorf(IncompatibleShape, "Concatenate requires at least one input shape")
	}
	if err = checkTensors("inputs", inputs); err != nil {
		return
	}
	first := inputs[0]
	for ii, input := range inputs[1:] {
		if err = checkSameElementType("inputs[0]", first, "input", input); err != nil {
			return shapes.Invalid(), errorf(IncompatibleElementType, "mismatched element types for Concatenate: input #0 has %s, input #%d has %s",
				first, ii+1, input)
		}
	}

	// Find the rank from the ranked inputs.
	rank := shapes.DimUnknown
	for _, input := range inputs {
		if input.IsRanked() {
			rank = input.Rank()
			break
		}
	}
	if rank == shapes.DimUnknown {
		return first.Clone(), nil
	}
	if axis < 0 || axis >= rank {
		return shapes.Invalid(), errorf(InvalidDimensionMapping, "invalid concatenation axis %d for shapes with rank %d", axis, rank)
	}

	dims := unknownDims(rank)
	concatDim := 0
	firstRanked := -1
	for ii, input := range inputs {
		if input.Unranked {
			concatDim = shapes.DimUnknown
			continue
		}
		if input.Rank() != rank {
			return shapes.Invalid(), errorf(IncompatibleShape, "mismatched ranks for Concatenate: input #%d has rank %d, input #%d has rank %d",
				firstRanked, rank, ii, input.Rank())
		}
		if firstRanked < 0 {
			firstRanked = ii
		}
		for d, dim := range input.Dimensions {
			if d == axis {
				if dim == shapes.DimUnknown || concatDim == shapes.DimUnknown {
					concatDim = shapes.DimUnknown
				} else {
					concatDim += dim
				}
				continue
			}
			if !shapes.DimsCompatible(dims[d], dim) {
				return shapes.Invalid(), errorf(IncompatibleShape, "mismatched dimensions for Concatenate at axis %d (non-concatenation axis): input #%d has %d, input #%d has %d",
					d, firstRanked, dims[d], ii, dim)
			}
			dims[d] = shapes.RefineDim(dims[d], dim)
		}
	}
	dims[axis] = concatDim
	return first.WithDimensions(dims...), nil
}

// Transpose all axes of the operand.
// There must be one value in permutations for each axis in the operand.
// The output will have: output.Shape.Dimension[ii] = operand.Shape.Dimension[permutations[i]].
func Transpose(operand shapes.Shape, permutation []int) (output shapes.Shape, err error) {
	if err = checkTensor("operand", operand); err != nil {
		return
	}
	rank := len(permutation)
	if operand.IsRanked() && rank != operand.Rank() {
		err = errorf(AttributeArityMismatch, "Transpose() requires all axes permutation to be defined, operand has shape %s, but %d permutation were given",
			operand, len(permutation))
		return
	}

	// Check permutation axes are within range and unique.
	if err = checkAxes("permutation", permutation, rank); err != nil {
		return
	}
	if operand.Unranked {
		return operand.WithDimensions(unknownDims(rank)...), nil
	}
	output = operand.Clone()
	for axis, srcAxis := range permutation {
		output.Dimensions[axis] = operand.Dimensions[srcAxis]
	}
	return
}

// Reshape returns the operand reshaped to the given dimensions, which may contain shapes.DimUnknown.
// If the number of elements of the operand and of the output are statically known, they must match.
func Reshape(operand shapes.Shape, dimensions []int) (output shapes.Shape, err error) {
	if err = checkTensor("operand", operand); err != nil {
		return
	}
	for ii, dim := range dimensions {
		if dim < 0 && dim != shapes.DimUnknown {
			err = errorf(MalformedAttribute, "Reshape: dimensions[%d]=%d must be non-negative", ii, dim)
			return
		}
	}
	output = operand.WithDimensions(dimensions...)
	if operand.IsStatic() && output.IsStatic() && operand.Size() != output.Size() {
		err = errorf(IncompatibleShape, "Reshape: operand %s has %d elements, but target dimensions %v have %d",
			operand, operand.Size(), dimensions, output.Size())
		return shapes.Invalid(), err
	}
	if operand.IsQuantized() && operand.Quantization.IsPerAxis() {
		err = errorf(IncompatibleElementType, "Reshape: per-axis quantized operands are not supported, got %s", operand)
		return shapes.Invalid(), err
	}
	return output, nil
}

// DynamicReshape returns the (declared) target shape, after checking outputShape is a 1-D integer tensor with one
// element per target axis.
func DynamicReshape(operand, outputShape, targetShape shapes.Shape) (output shapes.Shape, err error) {
	if err = checkTensor("operand", operand); err != nil {
		return
	}
	if err = checkTensor("target shape", targetShape); err != nil {
		return
	}
	if err = checkSameElementType("operand", operand, "target shape", targetShape); err != nil {
		return
	}
	rank := targetShape.Rank()
	if targetShape.Unranked {
		rank = -1
	}
	if err = check1DIntegerOperand("output_shape", outputShape, rank); err != nil {
		return
	}
	if operand.IsStatic() && targetShape.IsStatic() && operand.Size() != targetShape.Size() {
		err = errorf(IncompatibleShape, "DynamicReshape: operand %s and target shape %s have a different number of elements",
			operand, targetShape)
		return
	}
	return targetShape.Clone(), nil
}

// Pad returns the shape of padding the operand with the scalar paddingValue.
//
// Edge paddings (low and high) can be negative, removing elements, interior padding must be non-negative.
// The resulting dimensions must not be negative.
func Pad(operand, paddingValue shapes.Shape, edgePaddingLow, edgePaddingHigh, interiorPadding []int) (output shapes.Shape, err error) {
	if err = checkTensor("operand", operand); err != nil {
		return
	}
	if err = checkScalar("padding value", paddingValue); err != nil {
		return
	}
	if err = checkSameElementType("operand", operand, "padding value", paddingValue); err != nil {
		return
	}
	rank := len(edgePaddingLow)
	if len(edgePaddingHigh) != rank || len(interiorPadding) != rank || (operand.IsRanked() && operand.Rank() != rank) {
		err = errorf(AttributeArityMismatch, "Pad: number of padding values (%d, %d, %d) must match operand rank %d",
			len(edgePaddingLow), len(edgePaddingHigh), len(interiorPadding), operand.Rank())
		return
	}

	// Check that interior padding values are non-negative.
	for axis := range rank {
		if interiorPadding[axis] < 0 {
			err = errorf(MalformedAttribute, "Pad: interior padding values must be non-negative, got low=%d, high=%d, interior=%d for axis %d",
				edgePaddingLow[axis], edgePaddingHigh[axis], interiorPadding[axis], axis)
			return
		}
	}
	if operand.Unranked {
		return operand.WithDimensions(unknownDims(rank)...), nil
	}

	// Calculate output dimensions.
	outputDims := make([]int, rank)
	for axis := range rank {
		inputDim := operand.Dimensions[axis]
		if inputDim == shapes.DimUnknown {
			outputDims[axis] = shapes.DimUnknown
			continue
		}
		outputDim := edgePaddingLow[axis] + edgePaddingHigh[axis] + inputDim
		if inputDim > 1 {
			outputDim += (inputDim - 1) * interiorPadding[axis]
		}
		if outputDim < 0 {
			err = errorf(IncompatibleShape, "Pad: padding (low=%d, high=%d, interior=%d) of axis %d of %s results in a negative dimension %d",
				edgePaddingLow[axis], edgePaddingHigh[axis], interiorPadding[axis], axis, operand, outputDim)
			return
		}
		outputDims[axis] = outputDim
	}
	return operand.WithDimensions(outputDims...), nil
}

// Slice calculates the output shape for a Slice operation.
// It checks that starts, limits, and strides have the correct length (matching operand rank),
// and that the slice parameters are valid for the operand's dimensions.
// Strides must be positive.
func Slice(operand shapes.Shape, starts, limits, strides []int) (output shapes.Shape, err error) {
	if err = checkTensor("operand", operand); err != nil {
		return
	}
	rank := len(starts)
	if operand.IsRanked() && rank != operand.Rank() {
		return shapes.Invalid(), errorf(AttributeArityMismatch, "Slice: len(start_indices)=%d, but operand rank is %d", rank, operand.Rank())
	}
	if len(limits) != rank {
		return shapes.Invalid(), errorf(AttributeArityMismatch, "Slice: len(limit_indices)=%d, but operand rank is %d", len(limits), rank)
	}
	if len(strides) != rank {
		return shapes.Invalid(), errorf(AttributeArityMismatch, "Slice: len(strides)=%d, but operand rank is %d", len(strides), rank)
	}

	outputDims := make([]int, rank)
	for axis := range rank {
		start, limit, stride := starts[axis], limits[axis], strides[axis]
		dimSize := shapes.DimUnknown
		if operand.IsRanked() {
			dimSize = operand.Dimensions[axis]
		}
		if stride <= 0 {
			return shapes.Invalid(), errorf(MalformedAttribute, "Slice: stride must be positive, but got strides[%d]=%d for operand shape %s",
				axis, stride, operand)
		}
		if start < 0 {
			return shapes.Invalid(), errorf(IncompatibleShape, "Slice: start index %d for axis %d must be non-negative (operand shape %s)",
				start, axis, operand)
		}
		if limit < start {
			return shapes.Invalid(), errorf(IncompatibleShape, "Slice: limit index %d for axis %d must be >= start index %d (operand shape %s)",
				limit, axis, start, operand)
		}
		// Limit can be equal to dimSize.
		if dimSize != shapes.DimUnknown && limit > dimSize {
			return shapes.Invalid(), errorf(IncompatibleShape, "Slice: limit index %d is out of bounds for axis %d with size %d (operand shape %s)",
				limit, axis, dimSize, operand)
		}

		// The first one is always taken, so we use the ceiling of the division.
		outputDims[axis] = (limit - start + (stride - 1)) / stride
	}
	return operand.WithDimensions(outputDims...), nil
}

// Reverse returns the operand shape, after checking the dimensions to reverse are unique and within range.
func Reverse(operand shapes.Shape, dimensions []int) (output shapes.Shape, err error) {
	if err = checkTensor("operand", operand); err != nil {
		return
	}
	if operand.IsRanked() {
		if err = checkAxes("dimensions", dimensions, operand.Rank()); err != nil {
			return
		}
	} else if utils.HasDuplicates(dimensions) {
		err = errorf(InvalidDimensionMapping, "Reverse: dimensions=%v cannot have repeated axes", dimensions)
		return
	}
	return operand.Clone(), nil
}

// Iota returns the (declared) output shape, after checking iotaDimension is one of its axes.
func Iota(output shapes.Shape, iotaDimension int) (shapes.Shape, error) {
	if err := checkTensor("output", output); err != nil {
		return shapes.Invalid(), err
	}
	if output.Unranked {
		return shapes.Invalid(), errorf(IncompatibleShape, "Iota requires a ranked output shape, got %s", output)
	}
	if iotaDimension < 0 || iotaDimension >= output.Rank() {
		return shapes.Invalid(), errorf(InvalidDimensionMapping, "Iota: iota_dimension %d is out of range for output %s", iotaDimension, output)
	}
	return output.Clone(), nil
}

// GetDimensionSize returns an Int32 scalar, after checking the dimension is one of the operand axes.
func GetDimensionSize(operand shapes.Shape, dimension int) (shapes.Shape, error) {
	if err := checkTensor("operand", operand); err != nil {
		return shapes.Invalid(), err
	}
	if dimension < 0 || (operand.IsRanked() && dimension >= operand.Rank()) {
		return shapes.Invalid(), errorf(InvalidDimensionMapping, "GetDimensionSize: dimension %d is out of range for operand %s", dimension, operand)
	}
	return shapes.Make(dtypes.Int32), nil
}

// Tuple returns the tuple of the elements.
func Tuple(elements []shapes.Shape) (shapes.Shape, error) {
	return shapes.MakeTuple(elements...), nil
}

// GetTupleElement returns the shape of the index-th element of the tuple.
func GetTupleElement(tuple shapes.Shape, index int) (shapes.Shape, error) {
	if !tuple.IsTuple() {
		return shapes.Invalid(), errorf(IncompatibleShape, "GetTupleElement requires a tuple operand, got %s", tuple)
	}
	if index < 0 || index >= len(tuple.TupleShapes) {
		return shapes.Invalid(), errorf(InvalidDimensionMapping, "GetTupleElement: index %d is out of range for %s", index, tuple)
	}
	return tuple.TupleShapes[index].Clone(), nil
}

// OptimizationBarrier returns the operands unchanged.
func OptimizationBarrier(operands []shapes.Shape) ([]shapes.Shape, error) {
	return cloneAll(operands), nil
}
