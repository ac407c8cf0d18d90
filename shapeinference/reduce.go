package shapeinference

import (
	"fmt"

	"github.com/gomlx/hloinfer/types/shapes"
)

// checkReductionInputs checks there is at least one input, one scalar initial value per input, and that all
// inputs have compatible dimensions. It returns the refined common shape of the inputs.
func checkReductionInputs(opName string, inputs, initValues []shapes.Shape) (shapes.Shape, error) {
	if len(inputs) == 0 {
		return shapes.Invalid(), errorf(IncompatibleShape, "%s requires at least one input", opName)
	}
	if len(initValues) != len(inputs) {
		return shapes.Invalid(), errorf(IncompatibleShape, "%s requires the same number of initial values as inputs, got %d initial values and %d inputs",
			opName, len(initValues), len(inputs))
	}
	if err := checkTensors("inputs", inputs); err != nil {
		return shapes.Invalid(), err
	}
	names := make([]string, len(inputs))
	for ii, initValue := range initValues {
		names[ii] = fmt.Sprintf("inputs[%d]", ii)
		if err := checkScalar(fmt.Sprintf("init_values[%d]", ii), initValue); err != nil {
			return shapes.Invalid(), err
		}
	}
	return elementwiseShape(names, inputs...)
}

// allUnranked returns whether all shapes are unranked.
func allUnranked(list []shapes.Shape) bool {
	for _, shape := range list {
		if shape.IsRanked() {
			return false
		}
	}
	return true
}

// Reduce returns the operation's output shapes and checks all shapes and dtypes are valid.
//
// The reduced axes (dimensions) are removed from the inputs, and the element types of the outputs are the
// ones of the reducer results. The reducer parameters can be scalars or, more generally, shaped after a
// subsequence of the non-reduced dimensions.
func Reduce(inputs, initValues []shapes.Shape, body Body, dimensions []int, relaxedFloatPrecision bool) (outputs []shapes.Shape, err error) {
	base, err := checkReductionInputs("Reduce", inputs, initValues)
	if err != nil {
		return nil, err
	}
	if err = checkAxesPartial("dimensions", dimensions, base.Rank(), false); err != nil {
		return nil, err
	}
	var reducedDims []int
	if base.IsRanked() {
		reducedDims = removeAxes(base.Dimensions, dimensions)
	}
	err = VerifyReducerShape(body, inputs, initValues, len(inputs), reducedDims, allUnranked(inputs), relaxedFloatPrecision)
	if err != nil {
		return nil, err
	}

	// Build the output shapes.
	outputs = make([]shapes.Shape, len(inputs))
	for ii := range inputs {
		if base.Unranked {
			outputs[ii] = asUnranked(body.Results[ii])
			continue
		}
		outputs[ii] = body.Results[ii].WithDimensions(reducedDims...)
	}
	return outputs, nil
}

// ReduceWindow returns the expected output shapes for the operation.
//
// The spatial rank of the window is len(windowDimensions), and it must match the rank of the inputs. The other
// window attributes can be nil, in which case they take their default values.
// The reducer parameters can be scalars, or shaped after a subsequence of the window dimensions.
func ReduceWindow(inputs, initValues []shapes.Shape, body Body,
	windowDimensions, strides, baseDilations, windowDilations []int, padding [][2]int,
	relaxedFloatPrecision bool) (outputs []shapes.Shape, err error) {
	base, err := checkReductionInputs("ReduceWindow", inputs, initValues)
	if err != nil {
		return nil, err
	}
	rank := len(windowDimensions)
	if base.IsRanked() && base.Rank() != rank {
		return nil, errorf(AttributeArityMismatch, "ReduceWindow: len(window_dimensions)=%d, but inputs rank is %d", rank, base.Rank())
	}
	window, err := VerifyWindowAttributesAndInferWindowDimensions(windowDimensions, strides, padding, baseDilations, windowDilations, nil)
	if err != nil {
		return nil, err
	}
	err = VerifyReducerShape(body, inputs, initValues, len(inputs), windowDimensions, allUnranked(inputs), relaxedFloatPrecision)
	if err != nil {
		return nil, err
	}

	baseDims := unknownDims(rank)
	if base.IsRanked() {
		baseDims = base.Dimensions
	}
	outputDims := InferWindowOutputShape(baseDims, window)
	if err = checkWindowFits(baseDims, window, outputDims); err != nil {
		return nil, err
	}
	outputs = make([]shapes.Shape, len(inputs))
	for ii := range inputs {
		outputs[ii] = body.Results[ii].WithDimensions(outputDims...)
	}
	return outputs, nil
}

// SelectAndScatter returns the operand shape, after verifying the selector and scatter bodies, and that the
// source has the shape of the windowed operand.
//
// The window is defined by windowDimensions, strides and padding, with one value per operand axis.
// strides and padding can be nil.
func SelectAndScatter(operand, source, initValue shapes.Shape, selectBody, scatterBody Body,
	windowDimensions, strides []int, padding [][2]int, relaxedFloatPrecision bool) (output shapes.Shape, err error) {
	if err = checkTensor("operand", operand); err != nil {
		return
	}
	if err = checkTensor("source", source); err != nil {
		return
	}
	if err = checkScalar("init_value", initValue); err != nil {
		return
	}
	if err = checkSameElementType("operand", operand, "init_value", initValue); err != nil {
		return
	}
	if err = verifyComparator("select", selectBody, []shapes.Shape{operand}); err != nil {
		return
	}
	err = VerifyReducerShape(scatterBody, []shapes.Shape{source}, []shapes.Shape{initValue}, 1, nil,
		source.Unranked, relaxedFloatPrecision)
	if err != nil {
		return
	}

	rank := len(windowDimensions)
	if operand.IsRanked() && operand.Rank() != rank {
		err = errorf(AttributeArityMismatch, "SelectAndScatter: len(window_dimensions)=%d, but operand rank is %d", rank, operand.Rank())
		return
	}
	window, err := VerifyWindowAttributesAndInferWindowDimensions(windowDimensions, strides, padding, nil, nil, nil)
	if err != nil {
		return
	}
	baseDims := unknownDims(rank)
	if operand.IsRanked() {
		baseDims = operand.Dimensions
	}
	windowedDims := InferWindowOutputShape(baseDims, window)
	if err = checkWindowFits(baseDims, window, windowedDims); err != nil {
		return
	}
	windowed := source.WithDimensions(windowedDims...)
	if !shapes.DimensionsCompatible(source, windowed) {
		err = errorf(IncompatibleShape, "SelectAndScatter: source %s must have the shape of the windowed operand %s", source, windowed)
		return
	}
	return operand.Clone(), nil
}

// Sort returns the shapes of the inputs, after checking the comparator.
//
// dimension can be negative, counting from the end.
// The comparator takes two scalar parameters per input, with the input's element type, and returns a scalar
// boolean.
func Sort(inputs []shapes.Shape, dimension int, comparator Body) (outputs []shapes.Shape, err error) {
	if len(inputs) == 0 {
		return nil, errorf(IncompatibleShape, "Sort requires at least one input")
	}
	if err = checkTensors("inputs", inputs); err != nil {
		return
	}
	names := make([]string, len(inputs))
	for ii := range names {
		names[ii] = fmt.Sprintf("inputs[%d]", ii)
	}
	base, err := elementwiseShape(names, inputs...)
	if err != nil {
		return nil, err
	}
	if base.IsRanked() {
		if _, err = AdjustAxisToRank(dimension, base.Rank()); err != nil {
			return nil, err
		}
	}
	if err = verifyComparator("comparator", comparator, inputs); err != nil {
		return nil, err
	}
	return cloneAll(inputs), nil
}
