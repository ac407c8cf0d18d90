package shapeinference

import (
	"slices"

	"github.com/gomlx/hloinfer/types"
	"github.com/gomlx/hloinfer/types/shapes"
)

// InferGatherShape returns the result dimensions of a gather-like operation.
//
//   - The slice sizes, with the axes in collapsedSliceDims removed, give the extents of the result axes listed
//     in offsetDims, in order.
//   - The remaining (batch) result axes take, in order, the extents of the start indices axes, skipping
//     indexVectorDim.
//
// collapsedSliceDims must include the operand batching axes, since they are also dropped from the slices.
// The arguments must have been verified already: this function doesn't check anything.
func InferGatherShape(resultRank int, startIndicesDim func(axis int) int, sliceSizes []int,
	offsetDims, collapsedSliceDims []int, indexVectorDim int) []int {
	adjustedSliceSizes := removeAxes(sliceSizes, collapsedSliceDims)
	dims := make([]int, resultRank)
	offsetDimsIdx, batchDimsIdx := 0, 0
	for axis := range resultRank {
		if slices.Contains(offsetDims, axis) {
			dims[axis] = adjustedSliceSizes[offsetDimsIdx]
			offsetDimsIdx++
			continue
		}
		startIndicesAxis := batchDimsIdx
		if startIndicesAxis >= indexVectorDim {
			// Skip the index vector axis.
			startIndicesAxis++
		}
		dims[axis] = startIndicesDim(startIndicesAxis)
		batchDimsIdx++
	}
	return dims
}

// Gather returns the output shape of a Gather operation.
//
// indicesAreSorted doesn't play a role in shape inference.
func Gather(operand, startIndices shapes.Shape, dn types.GatherDimensionNumbers, sliceSizes []int, indicesAreSorted bool) (output shapes.Shape, err error) {
	_ = indicesAreSorted
	if err = checkTensor("operand", operand); err != nil {
		return
	}
	if operand.IsRanked() && len(sliceSizes) != operand.Rank() {
		err = errorf(AttributeArityMismatch, "slice_sizes must have one value per operand axes, so its length (%d) must match operand rank (%d)",
			len(sliceSizes), operand.Rank())
		return
	}
	for axis, sliceSize := range sliceSizes {
		if sliceSize < 0 {
			err = errorf(IncompatibleShape, "slice_sizes[%d]=%d is negative, it must be non-negative", axis, sliceSize)
			return
		}
		if operand.IsRanked() && operand.Dimensions[axis] != shapes.DimUnknown && operand.Dimensions[axis] < sliceSize {
			err = errorf(IncompatibleShape, "slice_sizes[%d]=%d is larger than the corresponding operand dimension %d",
				axis, sliceSize, operand.Dimensions[axis])
			return
		}
	}
	return inferGather(operand, startIndices, dn, sliceSizes)
}

// DynamicGather is like Gather, but the slice sizes are given by the values of the sliceSizes operand, a 1-D
// integer tensor with one element per operand axis. Since the values are not known, the offset dimensions of the
// result are unknown.
func DynamicGather(operand, startIndices, sliceSizes shapes.Shape, dn types.GatherDimensionNumbers) (output shapes.Shape, err error) {
	if err = checkTensor("operand", operand); err != nil {
		return
	}
	if err = check1DIntegerOperand("slice_sizes", sliceSizes, operand.Rank()); err != nil {
		return
	}
	operandRank := operand.Rank()
	if operand.Unranked {
		operandRank = len(dn.OffsetDims) + len(dn.CollapsedSliceDims) + len(dn.OperandBatchingDims)
	}
	return inferGather(operand, startIndices, dn, unknownDims(operandRank))
}

// inferGather verifies the dimension numbers and returns the gather result. Slice sizes values may be unknown,
// and operandRank is assumed to be len(sliceSizes).
func inferGather(operand, startIndices shapes.Shape, dn types.GatherDimensionNumbers, sliceSizes []int) (output shapes.Shape, err error) {
	if err = checkIntegerIndices("start_indices", startIndices); err != nil {
		return
	}
	operandRank := len(sliceSizes)
	if operand.IsScalar() {
		err = errorf(IncompatibleShape, "Gather() requires a non-scalar operand, got %s", operand)
		return
	}

	// Operand axes: collapsed and batching axes.
	if err = checkSortedAxes("collapsed_slice_dims", dn.CollapsedSliceDims, operandRank); err != nil {
		return
	}
	if err = checkSortedAxes("operand_batching_dims", dn.OperandBatchingDims, operandRank); err != nil {
		return
	}
	for _, axis := range dn.CollapsedSliceDims {
		if slices.Contains(dn.OperandBatchingDims, axis) {
			err = errorf(InvalidDimensionMapping, "operand axis %d cannot be both collapsed and batching", axis)
			return
		}
		if sliceSizes[axis] != shapes.DimUnknown && sliceSizes[axis] > 1 {
			err = errorf(InvalidDimensionMapping, "collapsed slice axis %d must have slice size <= 1, but got %d", axis, sliceSizes[axis])
			return
		}
	}
	for _, axis := range dn.OperandBatchingDims {
		if sliceSizes[axis] != shapes.DimUnknown && sliceSizes[axis] > 1 {
			err = errorf(InvalidDimensionMapping, "operand batching axis %d must have slice size <= 1, but got %d", axis, sliceSizes[axis])
			return
		}
	}
	if operandRank != len(dn.OffsetDims)+len(dn.CollapsedSliceDims)+len(dn.OperandBatchingDims) {
		err = errorf(InvalidDimensionMapping, "the number of offset_dims (%d) + the number of collapsed_slice_dims (%d) + the number of operand_batching_dims (%d) must be equal to the operand rank (%d)",
			len(dn.OffsetDims), len(dn.CollapsedSliceDims), len(dn.OperandBatchingDims), operandRank)
		return
	}

	// Start indices axes.
	err = verifyIndexVectorAndBatching(operand, startIndices, dn.IndexVectorDim, "start_indices",
		dn.OperandBatchingDims, dn.StartIndicesBatchingDims)
	if err != nil {
		return
	}
	if err = verifyStartIndexMap("start_index_map", dn.StartIndexMap, operandRank, dn.OperandBatchingDims, startIndices, dn.IndexVectorDim); err != nil {
		return
	}

	if startIndices.Unranked {
		if err = checkAxesPartial("offset_dims", dn.OffsetDims, -1, true); err != nil {
			return
		}
		return asUnranked(operand), nil
	}
	batchRank := startIndices.Rank()
	if dn.IndexVectorDim < startIndices.Rank() {
		batchRank--
	}
	resultRank := batchRank + len(dn.OffsetDims)
	if err = checkSortedAxes("offset_dims", dn.OffsetDims, resultRank); err != nil {
		return
	}
	dims := InferGatherShape(resultRank, func(axis int) int { return startIndices.Dimensions[axis] }, sliceSizes,
		dn.OffsetDims, slices.Concat(dn.CollapsedSliceDims, dn.OperandBatchingDims), dn.IndexVectorDim)
	return operand.WithDimensions(dims...), nil
}

// verifyIndexVectorAndBatching checks the index vector axis of the indices, and that the operand and indices
// batching axes pair up with compatible dimensions. It's shared by Gather and Scatter.
func verifyIndexVectorAndBatching(operand, indices shapes.Shape, indexVectorDim int, indicesName string,
	operandBatchingDims, indicesBatchingDims []int) error {
	indicesRank := indices.Rank()
	if indexVectorDim < 0 || (indices.IsRanked() && indexVectorDim > indicesRank) {
		return errorf(InvalidDimensionMapping, "index_vector_dim=%d is out of range for %s %s", indexVectorDim, indicesName, indices)
	}
	if err := checkAxesPartial(indicesName+"_batching_dims", indicesBatchingDims, indicesRank, false); err != nil {
		return err
	}
	if slices.Contains(indicesBatchingDims, indexVectorDim) {
		return errorf(InvalidDimensionMapping, "%s batching axis %d is the same as index_vector_dim -- the same axis cannot be both",
			indicesName, indexVectorDim)
	}
	if len(operandBatchingDims) != len(indicesBatchingDims) {
		return errorf(InvalidDimensionMapping, "operand and %s batching axes must have the same length, got %d and %d",
			indicesName, len(operandBatchingDims), len(indicesBatchingDims))
	}
	if operand.Unranked || indices.Unranked {
		return nil
	}
	for ii, operandAxis := range operandBatchingDims {
		indicesAxis := indicesBatchingDims[ii]
		if !shapes.DimsCompatible(operand.Dimensions[operandAxis], indices.Dimensions[indicesAxis]) {
			return errorf(IncompatibleShape, "operand batch axis %d has dimension %d, but %s batch axis %d has dimension %d -- they must match",
				operandAxis, operand.Dimensions[operandAxis], indicesName, indicesAxis, indices.Dimensions[indicesAxis])
		}
	}
	return nil
}

// verifyStartIndexMap checks the mapping of the index vector components to operand axes: unique, in range, not
// batching axes, and with one value per component of the index vector.
func verifyStartIndexMap(name string, indexMap []int, operandRank int, operandBatchingDims []int, indices shapes.Shape, indexVectorDim int) error {
	if err := checkAxes(name, indexMap, operandRank); err != nil {
		return err
	}
	for _, axis := range indexMap {
		if slices.Contains(operandBatchingDims, axis) {
			return errorf(InvalidDimensionMapping, "%s=%v cannot contain the operand batching axis %d", name, indexMap, axis)
		}
	}
	if indices.Unranked {
		return nil
	}
	indexVectorSize := 1
	if indexVectorDim < indices.Rank() {
		indexVectorSize = indices.Dimensions[indexVectorDim]
	}
	if !shapes.DimsCompatible(indexVectorSize, len(indexMap)) {
		return errorf(InvalidDimensionMapping, "%s must have one value per element of the index vector, so its length (%d) must match the index vector size (%d)",
			name, len(indexMap), indexVectorSize)
	}
	return nil
}
