package shapeinference

import (
	"slices"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/hloinfer/attributes"
	"github.com/gomlx/hloinfer/internal/utils"
	"github.com/gomlx/hloinfer/types/shapes"
)

// ReplicaGroupPadding marks an unused slot in a row of replica groups, when groups have different sizes but
// are stored in a rectangular attribute.
const ReplicaGroupPadding = -1

// ReplicaGroupsFromDense decodes the 2-D replica groups attribute into a list of groups.
func ReplicaGroupsFromDense(attr *attributes.Dense) ([][]int, error) {
	groups, err := attributes.Int2D(attr, "replica_groups", -1, -1)
	if err != nil {
		return nil, attributeError(err)
	}
	return groups, nil
}

// VerifyReplicaGroups validates the replica groups of a collective operation. The rules are checked in order:
//
//  1. There must be at least one group. If useGlobalDeviceIDs is set, groups can't be empty.
//  2. If allGroupsMustHaveSameSize, all groups must have the same size, and padding is not accepted.
//     Otherwise, ReplicaGroupPadding entries are skipped.
//  3. Ids can't be negative, and can't be repeated.
//  4. The ids must cover [0, N) without gaps, where N is the number of ids.
//  5. If expectedGroupSize >= 0, every group must have expectedGroupSize ids, padding included.
//
// Errors have kind InvalidReplicaGroups.
func VerifyReplicaGroups(groups [][]int, allGroupsMustHaveSameSize, useGlobalDeviceIDs bool, expectedGroupSize int) error {
	if len(groups) == 0 {
		return errorf(InvalidReplicaGroups, "replica groups cannot be empty")
	}
	numIDs := 0
	for _, group := range groups {
		numIDs += len(group)
	}
	if useGlobalDeviceIDs && numIDs == 0 {
		return errorf(InvalidReplicaGroups, "replica groups cannot be empty when using global device ids")
	}
	if allGroupsMustHaveSameSize {
		for ii, group := range groups {
			if len(group) != len(groups[0]) {
				return errorf(InvalidReplicaGroups, "replica groups must all have the same size, but group #0 has %d ids and group #%d has %d",
					len(groups[0]), ii, len(group))
			}
		}
	}

	seen := utils.MakeSet[int](numIDs)
	for ii, group := range groups {
		for _, id := range group {
			if id == ReplicaGroupPadding && !allGroupsMustHaveSameSize {
				continue
			}
			if id < 0 {
				return errorf(InvalidReplicaGroups, "replica group #%d (%v) has a negative id %d", ii, group, id)
			}
			if seen.Has(id) {
				return errorf(InvalidReplicaGroups, "replica id %d appears more than once, the second time in group #%d (%v)", id, ii, group)
			}
			seen.Insert(id)
		}
	}
	for id := range len(seen) {
		if !seen.Has(id) {
			return errorf(InvalidReplicaGroups, "replica groups must cover all ids in [0, %d), but id %d is missing", len(seen), id)
		}
	}

	if expectedGroupSize >= 0 {
		for ii, group := range groups {
			if len(group) != expectedGroupSize {
				return errorf(InvalidReplicaGroups, "replica groups must have %d ids each, got %d in group #%d",
					expectedGroupSize, len(group), ii)
			}
		}
	}
	return nil
}

// groupSize returns the number of (non-padding) ids in the first group.
func groupSize(groups [][]int) int {
	size := 0
	for _, id := range groups[0] {
		if id != ReplicaGroupPadding {
			size++
		}
	}
	return size
}

// AllGather returns the output shapes of an all_gather: the allGatherDim axis of each operand is multiplied
// by the size of the replica groups.
func AllGather(operands []shapes.Shape, allGatherDim int, replicaGroups [][]int, useGlobalDeviceIDs bool) (outputs []shapes.Shape, err error) {
	if len(operands) == 0 {
		return nil, errorf(IncompatibleShape, "AllGather requires at least one operand")
	}
	if err = checkTensors("operands", operands); err != nil {
		return
	}
	if allGatherDim < 0 {
		return nil, errorf(InvalidDimensionMapping, "all_gather_dim %d must be non-negative", allGatherDim)
	}
	if err = VerifyReplicaGroups(replicaGroups, true, useGlobalDeviceIDs, -1); err != nil {
		return
	}
	size := groupSize(replicaGroups)
	outputs = make([]shapes.Shape, len(operands))
	for ii, operand := range operands {
		if operand.Unranked {
			outputs[ii] = operand.Clone()
			continue
		}
		if allGatherDim >= operand.Rank() {
			return nil, errorf(InvalidDimensionMapping, "all_gather_dim %d is out of bounds for operands[%d] %s", allGatherDim, ii, operand)
		}
		outputs[ii] = operand.Clone()
		if dim := operand.Dimensions[allGatherDim]; dim != shapes.DimUnknown {
			outputs[ii].Dimensions[allGatherDim] = dim * size
		}
	}
	return outputs, nil
}

// AllToAll returns the output shapes of an all_to_all: for each operand, the splitDimension axis is divided by
// splitCount and the concatDimension axis is multiplied by it.
func AllToAll(operands []shapes.Shape, splitDimension, concatDimension, splitCount int, replicaGroups [][]int,
	useGlobalDeviceIDs bool) (outputs []shapes.Shape, err error) {
	if len(operands) == 0 {
		return nil, errorf(IncompatibleShape, "AllToAll requires at least one operand")
	}
	if err = checkTensors("operands", operands); err != nil {
		return
	}
	if splitCount <= 0 {
		return nil, errorf(MalformedAttribute, "AllToAll: split_count %d must be positive", splitCount)
	}
	if splitDimension < 0 || concatDimension < 0 {
		return nil, errorf(InvalidDimensionMapping, "AllToAll: split_dimension (%d) and concat_dimension (%d) must be non-negative",
			splitDimension, concatDimension)
	}
	if err = VerifyReplicaGroups(replicaGroups, true, useGlobalDeviceIDs, splitCount); err != nil {
		return
	}
	outputs = make([]shapes.Shape, len(operands))
	for ii, operand := range operands {
		if operand.Unranked {
			outputs[ii] = operand.Clone()
			continue
		}
		if splitDimension >= operand.Rank() {
			return nil, errorf(InvalidDimensionMapping, "AllToAll: split_dimension %d is out of bounds for operands[%d] %s",
				splitDimension, ii, operand)
		}
		if concatDimension >= operand.Rank() {
			return nil, errorf(InvalidDimensionMapping, "AllToAll: concat_dimension %d is out of bounds for operands[%d] %s",
				concatDimension, ii, operand)
		}
		splitDim := operand.Dimensions[splitDimension]
		if splitDim != shapes.DimUnknown && splitDim%splitCount != 0 {
			return nil, errorf(IncompatibleShape, "AllToAll: split_dimension size %d of operands[%d] is not divisible by split_count %d",
				splitDim, ii, splitCount)
		}
		output := operand.Clone()
		if splitDim != shapes.DimUnknown {
			output.Dimensions[splitDimension] = splitDim / splitCount
		}
		if concatDim := output.Dimensions[concatDimension]; concatDim != shapes.DimUnknown {
			output.Dimensions[concatDimension] = concatDim * splitCount
		}
		outputs[ii] = output
	}
	return outputs, nil
}

// AllReduce returns the output shapes of an all_reduce, with the operands' shapes and the element type of the
// reducer results. The reducer body is verified against each operand, with rank-0 parameters.
func AllReduce(operands []shapes.Shape, body Body, replicaGroups [][]int, useGlobalDeviceIDs, relaxedFloatPrecision bool) (
	outputs []shapes.Shape, err error) {
	if len(operands) == 0 {
		return nil, errorf(IncompatibleShape, "AllReduce requires at least one operand")
	}
	if err = checkTensors("operands", operands); err != nil {
		return
	}
	if err = VerifyReplicaGroups(replicaGroups, false, useGlobalDeviceIDs, -1); err != nil {
		return
	}
	outputs = make([]shapes.Shape, len(operands))
	for ii, operand := range operands {
		err = VerifyReducerShape(body, []shapes.Shape{operand}, []shapes.Shape{operand.ElementShape()}, 1, nil,
			operand.Unranked, relaxedFloatPrecision)
		if err != nil {
			return nil, err
		}
		outputs[ii] = operand.WithElementTypeOf(body.Results[0])
	}
	return outputs, nil
}

// ReduceScatter returns the output shape of a reduce_scatter: the scatterDimension axis of the operand is divided
// by the size of the replica groups.
func ReduceScatter(operand shapes.Shape, scatterDimension int, replicaGroups [][]int, useGlobalDeviceIDs bool,
	body Body, relaxedFloatPrecision bool) (output shapes.Shape, err error) {
	if err = checkTensor("operand", operand); err != nil {
		return
	}
	if scatterDimension < 0 || (operand.IsRanked() && scatterDimension >= operand.Rank()) {
		return shapes.Invalid(), errorf(InvalidDimensionMapping, "ReduceScatter: scatter_dimension %d is out of bounds for operand %s",
			scatterDimension, operand)
	}
	if err = VerifyReplicaGroups(replicaGroups, true, useGlobalDeviceIDs, -1); err != nil {
		return
	}
	err = VerifyReducerShape(body, []shapes.Shape{operand}, []shapes.Shape{operand.ElementShape()}, 1, nil,
		operand.Unranked, relaxedFloatPrecision)
	if err != nil {
		return
	}
	output = operand.WithElementTypeOf(body.Results[0])
	if operand.Unranked {
		return output, nil
	}
	size := groupSize(replicaGroups)
	dim := operand.Dimensions[scatterDimension]
	if dim == shapes.DimUnknown {
		return output, nil
	}
	if size == 0 || dim%size != 0 {
		return shapes.Invalid(), errorf(IncompatibleShape, "ReduceScatter: scatter dimension %d of size %d is not divisible by the replica group size %d",
			scatterDimension, dim, size)
	}
	output.Dimensions[scatterDimension] = dim / size
	return output, nil
}

// CollectivePermute returns the operand shape, after validating the source-target pairs: ids must be
// non-negative and no source or target can be repeated.
func CollectivePermute(operand shapes.Shape, sourceTargetPairs [][2]int) (output shapes.Shape, err error) {
	if err = checkTensor("operand", operand); err != nil {
		return
	}
	sources := make([]int, 0, len(sourceTargetPairs))
	targets := make([]int, 0, len(sourceTargetPairs))
	for ii, pair := range sourceTargetPairs {
		if pair[0] < 0 || pair[1] < 0 {
			return shapes.Invalid(), errorf(InvalidReplicaGroups, "source_target_pairs[%d]=%v cannot have negative ids", ii, pair)
		}
		if slices.Contains(sources, pair[0]) {
			return shapes.Invalid(), errorf(InvalidReplicaGroups, "source_target_pairs[%d]=%v: source %d is repeated", ii, pair, pair[0])
		}
		if slices.Contains(targets, pair[1]) {
			return shapes.Invalid(), errorf(InvalidReplicaGroups, "source_target_pairs[%d]=%v: target %d is repeated", ii, pair, pair[1])
		}
		sources = append(sources, pair[0])
		targets = append(targets, pair[1])
	}
	return operand.Clone(), nil
}

// SourceTargetPairsFromDense decodes the [N, 2] source_target_pairs attribute.
func SourceTargetPairsFromDense(attr *attributes.Dense) ([][2]int, error) {
	matrix, err := attributes.Int2D(attr, "source_target_pairs", -1, 2)
	if err != nil {
		return nil, attributeError(err)
	}
	pairs := make([][2]int, len(matrix))
	for ii, row := range matrix {
		pairs[ii] = [2]int{row[0], row[1]}
	}
	return pairs, nil
}

// CollectiveBroadcast returns the operand shape, after validating the replica groups.
func CollectiveBroadcast(operand shapes.Shape, replicaGroups [][]int) (output shapes.Shape, err error) {
	if err = checkTensor("operand", operand); err != nil {
		return
	}
	if err = VerifyReplicaGroups(replicaGroups, false, false, -1); err != nil {
		return shapes.Invalid(), err
	}
	return operand.Clone(), nil
}

// ReplicaId returns the shape of the replica id: a Uint32 scalar.
func ReplicaId() shapes.Shape {
	return shapes.Make(dtypes.Uint32)
}

// PartitionId returns the shape of the partition id: a Uint32 scalar.
func PartitionId() shapes.Shape {
	return shapes.Make(dtypes.Uint32)
}

