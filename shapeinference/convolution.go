package shapeinference

import (
	"slices"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/hloinfer/internal/utils"
	"github.com/gomlx/hloinfer/types"
	"github.com/gomlx/hloinfer/types/shapes"
)

// dimOrUnknown returns the dimension of the axis, or DimUnknown if the shape is unranked.
func dimOrUnknown(shape shapes.Shape, axis int) int {
	if shape.Unranked {
		return shapes.DimUnknown
	}
	return shape.Dimensions[axis]
}

// checkAxesConfig checks that the given axes are a permutation of [0, rank).
func checkAxesConfig(name string, rank int, spatial []int, others ...int) error {
	axes := slices.Concat(others, spatial)
	if len(axes) != rank || !utils.AllInRange(axes, rank) || utils.HasDuplicates(axes) {
		return errorf(InvalidDimensionMapping, "invalid %s axes configuration: %v (spatial=%v) must be a permutation of the %d axes",
			name, others, spatial, rank)
	}
	return nil
}

// Convolution returns the expected output shape for the Convolution operation.
//
// The window is given by the kernel spatial dimensions, and the remaining window attributes (strides, padding,
// lhsDilation, rhsDilation and reversal) can be nil, in which case they take their default values.
// The axes configuration (dn) gives the spatial rank, and the lhs (input) and rhs (kernel) must have rank
// spatial rank + 2, if they are ranked.
//
// If outputDType is dtypes.InvalidDType the output takes the element type of lhs.
func Convolution(lhs, rhs shapes.Shape, strides []int, padding [][2]int, lhsDilation, rhsDilation []int, reversal []bool,
	dn types.ConvolveAxesConfig, featureGroupCount, batchGroupCount int, outputDType dtypes.DType) (output shapes.Shape, err error) {
	if err = checkTensor("lhs", lhs); err != nil {
		return
	}
	if err = checkTensor("rhs", rhs); err != nil {
		return
	}
	if !lhs.IsQuantized() && !rhs.IsQuantized() {
		if err = checkSameElementType("lhs", lhs, "rhs", rhs); err != nil {
			return
		}
	}

	// Check ranks.
	spatialRank := dn.SpatialRank()
	rank := spatialRank + 2
	if lhs.IsRanked() && lhs.Rank() != rank {
		return shapes.Invalid(), errorf(IncompatibleShape, "Convolution: lhs (input) must have rank %d (batch, channels and %d spatial axes), got %s",
			rank, spatialRank, lhs)
	}
	if rhs.IsRanked() && rhs.Rank() != rank {
		return shapes.Invalid(), errorf(IncompatibleShape, "Convolution: rhs (kernel) must have rank %d (input channels, output channels and %d spatial axes), got %s",
			rank, spatialRank, rhs)
	}

	// Check axes configuration:
	if err = checkAxesConfig("input", rank, dn.InputSpatial, dn.InputBatch, dn.InputChannels); err != nil {
		return
	}
	if err = checkAxesConfig("kernel", rank, dn.KernelSpatial, dn.KernelInputChannels, dn.KernelOutputChannels); err != nil {
		return
	}
	if err = checkAxesConfig("output", rank, dn.OutputSpatial, dn.OutputBatch, dn.OutputChannels); err != nil {
		return
	}

	// Window: unknown kernel sizes are replaced by 1 for validation, and yield unknown output dimensions.
	windowSizes := make([]int, spatialRank)
	for ii, axis := range dn.KernelSpatial {
		windowSizes[ii] = dimOrUnknown(rhs, axis)
		if windowSizes[ii] == shapes.DimUnknown {
			windowSizes[ii] = 1
		}
	}
	window, err := VerifyWindowAttributesAndInferWindowDimensions(windowSizes, strides, padding, lhsDilation, rhsDilation, reversal)
	if err != nil {
		return
	}

	// Check group counts.
	if featureGroupCount < 1 {
		return shapes.Invalid(), errorf(MalformedAttribute, "Convolution: feature_group_count=%d must be >= 1", featureGroupCount)
	}
	if batchGroupCount < 1 {
		return shapes.Invalid(), errorf(MalformedAttribute, "Convolution: batch_group_count=%d must be >= 1", batchGroupCount)
	}
	if featureGroupCount > 1 && batchGroupCount > 1 {
		return shapes.Invalid(), errorf(MalformedAttribute, "Convolution: at most one of feature_group_count (%d) or batch_group_count (%d) can be > 1",
			featureGroupCount, batchGroupCount)
	}
	inputBatch := dimOrUnknown(lhs, dn.InputBatch)
	inputChannels := dimOrUnknown(lhs, dn.InputChannels)
	kernelInputChannels := dimOrUnknown(rhs, dn.KernelInputChannels)
	outputChannels := dimOrUnknown(rhs, dn.KernelOutputChannels)
	if inputChannels != shapes.DimUnknown && inputChannels%featureGroupCount != 0 {
		return shapes.Invalid(), errorf(IncompatibleShape, "Convolution: input channels dimension %d must be divisible by feature_group_count %d",
			inputChannels, featureGroupCount)
	}
	if inputChannels != shapes.DimUnknown && kernelInputChannels != shapes.DimUnknown && inputChannels != kernelInputChannels*featureGroupCount {
		return shapes.Invalid(), errorf(IncompatibleShape, "Convolution: we must have input channels (=%d) = kernel input channels (=%d) * feature_group_count (=%d) -- lhs shape is %s, rhs shape is %s",
			inputChannels, kernelInputChannels, featureGroupCount, lhs, rhs)
	}
	if outputChannels != shapes.DimUnknown && outputChannels%featureGroupCount != 0 {
		return shapes.Invalid(), errorf(IncompatibleShape, "Convolution: kernel output channels dimension %d must be divisible by feature_group_count %d",
			outputChannels, featureGroupCount)
	}
	if inputBatch != shapes.DimUnknown && inputBatch%batchGroupCount != 0 {
		return shapes.Invalid(), errorf(IncompatibleShape, "Convolution: input batch dimension %d must be divisible by batch_group_count %d",
			inputBatch, batchGroupCount)
	}
	if outputChannels != shapes.DimUnknown && outputChannels%batchGroupCount != 0 {
		return shapes.Invalid(), errorf(IncompatibleShape, "Convolution: output channels dimension %d must be divisible by batch_group_count %d",
			outputChannels, batchGroupCount)
	}

	// Find the output shape.
	inputSpatialDims := make([]int, spatialRank)
	for ii, axis := range dn.InputSpatial {
		inputSpatialDims[ii] = dimOrUnknown(lhs, axis)
	}
	outputSpatialDims := InferWindowOutputShape(inputSpatialDims, window)
	for ii, axis := range dn.KernelSpatial {
		if dimOrUnknown(rhs, axis) == shapes.DimUnknown {
			outputSpatialDims[ii] = shapes.DimUnknown
		} else if inputSpatialDims[ii] != shapes.DimUnknown && outputSpatialDims[ii] == shapes.DimUnknown {
			return shapes.Invalid(), errorf(IncompatibleShape, "Convolution: effective kernel %s of spatial axis %d is larger than the padded and dilated input dimension %d -- lhs shape is %s",
				window[ii], ii, inputSpatialDims[ii], lhs)
		}
	}
	dims := make([]int, rank)
	dims[dn.OutputBatch] = inputBatch
	if inputBatch != shapes.DimUnknown {
		dims[dn.OutputBatch] = inputBatch / batchGroupCount
	}
	dims[dn.OutputChannels] = outputChannels
	for ii, axis := range dn.OutputSpatial {
		dims[axis] = outputSpatialDims[ii]
	}
	output = lhs.WithDimensions(dims...)
	if outputDType != dtypes.InvalidDType {
		output = output.WithDType(outputDType)
	}
	return output, nil
}
