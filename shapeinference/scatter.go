package shapeinference

import (
	"fmt"
	"slices"

	"github.com/gomlx/hloinfer/types"
	"github.com/gomlx/hloinfer/types/shapes"
)

// Scatter checks that the parameters are consistent. The output shapes returned are the inputs, with the element
// type of the results of the update computation: the scattered updates are applied to the inputs, but their
// shapes are unchanged.
//
// The update computation (body) is verified as a reducer over the updates, with the input element types as
// initial values. If relaxedFloatPrecision is set, floating point types of different bitwidths are accepted
// when comparing them.
//
// The Scatter attributes indicesAreSorted and uniqueIndices don't play a role in this.
func Scatter(inputs []shapes.Shape, scatterIndices shapes.Shape, updates []shapes.Shape,
	dn types.ScatterDimensionNumbers, body Body, relaxedFloatPrecision bool) (outputs []shapes.Shape, err error) {
	// Check the number of inputs and updates.
	if len(inputs) == 0 {
		return nil, errorf(IncompatibleShape, "Scatter() requires at least one input")
	}
	if len(inputs) != len(updates) {
		return nil, errorf(IncompatibleShape, "Scatter() requires the same number of inputs and updates, got %d inputs and %d updates",
			len(inputs), len(updates))
	}
	if err = checkTensors("inputs", inputs); err != nil {
		return
	}
	if err = checkTensors("updates", updates); err != nil {
		return
	}
	if err = checkIntegerIndices("scatter_indices", scatterIndices); err != nil {
		return
	}

	// All inputs must have compatible dimensions (even if different dtypes), same for updates.
	names := make([]string, len(inputs))
	for ii := range names {
		names[ii] = fmt.Sprintf("inputs[%d]", ii)
	}
	input, err := elementwiseShape(names, inputs...)
	if err != nil {
		return nil, err
	}
	for ii := range names {
		names[ii] = fmt.Sprintf("updates[%d]", ii)
	}
	update, err := elementwiseShape(names, updates...)
	if err != nil {
		return nil, err
	}

	// Check the update computation.
	allUnranked := true
	initValues := make([]shapes.Shape, len(inputs))
	for ii, in := range inputs {
		initValues[ii] = in.ElementShape()
		allUnranked = allUnranked && in.Unranked && updates[ii].Unranked
	}
	if err = VerifyReducerShape(body, updates, initValues, len(inputs), nil, allUnranked, relaxedFloatPrecision); err != nil {
		return nil, err
	}

	if err = verifyScatterDimensionNumbers(input, scatterIndices, update, dn); err != nil {
		return nil, err
	}

	// Build output shapes based on the inputs and the results of the update computation.
	outputs = make([]shapes.Shape, len(inputs))
	for ii, in := range inputs {
		outputs[ii] = in.WithElementTypeOf(body.Results[ii])
	}
	return outputs, nil
}

// verifyScatterDimensionNumbers follows the same structure as the Gather verification, with update window axes
// in the role of offset axes and inserted window axes in the role of collapsed axes.
func verifyScatterDimensionNumbers(input, scatterIndices, update shapes.Shape, dn types.ScatterDimensionNumbers) error {
	inputRank := input.Rank()
	if input.Unranked {
		inputRank = len(dn.UpdateWindowDims) + len(dn.InsertedWindowDims) + len(dn.InputBatchingDims)
	}
	if err := checkAxesPartial("update_window_dims", dn.UpdateWindowDims, update.Rank(), true); err != nil {
		return err
	}
	if err := checkSortedAxes("inserted_window_dims", dn.InsertedWindowDims, inputRank); err != nil {
		return err
	}
	if err := checkSortedAxes("input_batching_dims", dn.InputBatchingDims, inputRank); err != nil {
		return err
	}
	for _, axis := range dn.InsertedWindowDims {
		if slices.Contains(dn.InputBatchingDims, axis) {
			return errorf(InvalidDimensionMapping, "input axis %d cannot be both an inserted window axis and a batching axis", axis)
		}
	}
	if inputRank != len(dn.UpdateWindowDims)+len(dn.InsertedWindowDims)+len(dn.InputBatchingDims) {
		return errorf(InvalidDimensionMapping, "the number of update_window_dims (%d) + the number of inserted_window_dims (%d) "+
			"+ the number of input_batching_dims (%d) must be equal to the number of axes in the inputs (inputs rank is %d)",
			len(dn.UpdateWindowDims), len(dn.InsertedWindowDims), len(dn.InputBatchingDims), inputRank)
	}
	err := verifyIndexVectorAndBatching(input, scatterIndices, dn.IndexVectorDim, "scatter_indices",
		dn.InputBatchingDims, dn.ScatterIndicesBatchingDims)
	if err != nil {
		return err
	}
	err = verifyStartIndexMap("scatter_dims_to_operand_dims", dn.ScatterDimsToOperandDims, inputRank,
		dn.InputBatchingDims, scatterIndices, dn.IndexVectorDim)
	if err != nil {
		return err
	}
	if update.Unranked || scatterIndices.Unranked {
		return nil
	}

	// Updates: update window axes plus the scatter (batch) axes of the indices.
	scatterBatchRank := scatterIndices.Rank()
	if dn.IndexVectorDim < scatterIndices.Rank() {
		scatterBatchRank--
	}
	if update.Rank() != len(dn.UpdateWindowDims)+scatterBatchRank {
		return errorf(IncompatibleShape, "updates rank (%d) must be equal to the number of update_window_dims (%d) plus the scatter batch rank (%d)",
			update.Rank(), len(dn.UpdateWindowDims), scatterBatchRank)
	}
	scatterIndicesAxis := 0
	for axis, dim := range update.Dimensions {
		if slices.Contains(dn.UpdateWindowDims, axis) {
			continue
		}
		if scatterIndicesAxis == dn.IndexVectorDim {
			scatterIndicesAxis++
		}
		indicesDim := scatterIndices.Dimensions[scatterIndicesAxis]
		if !shapes.DimsCompatible(dim, indicesDim) {
			return errorf(IncompatibleShape, "updates scatter axis %d (%d) must match scatter_indices axis %d (%d)",
				axis, dim, scatterIndicesAxis, indicesDim)
		}
		scatterIndicesAxis++
	}
	if input.Unranked {
		return nil
	}

	// Update window extents are bounded by the input window extents.
	inputWindowDims := removeAxes(input.Dimensions, slices.Concat(dn.InsertedWindowDims, dn.InputBatchingDims))
	for ii, updateAxis := range dn.UpdateWindowDims {
		updateDim, inputDim := update.Dimensions[updateAxis], inputWindowDims[ii]
		if updateDim != shapes.DimUnknown && inputDim != shapes.DimUnknown && updateDim > inputDim {
			return errorf(IncompatibleShape, "updates window axis %d has dimension %d, larger than the corresponding input dimension %d",
				updateAxis, updateDim, inputDim)
		}
	}
	return nil
}
