package shapeinference

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/hloinfer/attributes"
	"github.com/gomlx/hloinfer/types"
	"github.com/gomlx/hloinfer/types/shapes"
)

// UniformQuantize returns the (declared) quantized result shape, refined with the operand dimensions.
//
// The operand is either a float tensor (quantization) or a quantized tensor (re-quantization).
func UniformQuantize(operand, result shapes.Shape) (output shapes.Shape, err error) {
	if err = checkTensor("operand", operand); err != nil {
		return
	}
	if err = checkTensor("result", result); err != nil {
		return
	}
	if !operand.IsQuantized() && !operand.DType.IsFloat() {
		err = errorf(IncompatibleElementType, "UniformQuantize: operand must be a float or quantized tensor, got %s", operand)
		return
	}
	if !result.IsQuantized() {
		err = errorf(IncompatibleElementType, "UniformQuantize: result must be a quantized tensor, got %s", result)
		return
	}
	if operand.ExpressedDType() != result.ExpressedDType() {
		err = errorf(IncompatibleElementType, "UniformQuantize: operand %s and result %s must have the same expressed type", operand, result)
		return
	}
	if !shapes.DimensionsCompatible(operand, result) {
		err = errorf(IncompatibleShape, "UniformQuantize: operand %s and result %s must have the same dimensions", operand, result)
		return
	}
	return shapes.Refine(result, operand)
}

// UniformDequantize returns the operand shape with its expressed (float) type.
func UniformDequantize(operand shapes.Shape) (output shapes.Shape, err error) {
	if err = checkTensor("operand", operand); err != nil {
		return
	}
	if !operand.IsQuantized() {
		err = errorf(IncompatibleElementType, "UniformDequantize: operand must be a quantized tensor, got %s", operand)
		return
	}
	return operand.WithDType(operand.Quantization.ExpressedType), nil
}

// Rng returns the shape of random numbers generated with the given distribution. The parameters a and b are
// scalars, and shape is a 1-D integer tensor holding the output dimensions: since its values are not known,
// the output dimensions are unknown.
func Rng(a, b, shape shapes.Shape, distribution types.RNGDistribution) (output shapes.Shape, err error) {
	if err = checkScalar("a", a); err != nil {
		return
	}
	if err = checkScalar("b", b); err != nil {
		return
	}
	if err = checkSameElementType("a", a, "b", b); err != nil {
		return
	}
	if err = check1DIntegerOperand("shape", shape, -1); err != nil {
		return
	}
	switch distribution {
	case types.RNGUniform:
		if a.DType != dtypes.Bool && !a.DType.IsInt() && !a.DType.IsFloat() {
			err = errorf(IncompatibleElementType, "Rng: uniform distribution requires bool, integer or float parameters, got %s", a)
			return
		}
	case types.RNGNormal:
		if !a.DType.IsFloat() {
			err = errorf(IncompatibleElementType, "Rng: normal distribution requires float parameters, got %s", a)
			return
		}
	default:
		err = errorf(MalformedAttribute, "Rng: invalid distribution %d", distribution)
		return
	}
	if shape.Unranked || shape.Dimensions[0] == shapes.DimUnknown {
		return asUnranked(a), nil
	}
	return a.WithDimensions(unknownDims(shape.Dimensions[0])...), nil
}

// RngBitGenerator returns the shapes of the new state (same as the initial state) and of the declared output.
//
// The state size depends on the algorithm: 2 for ThreeFry, 2 or 3 for Philox.
func RngBitGenerator(algorithm types.RNGBitGeneratorAlgorithm, initialState, output shapes.Shape) (outputs []shapes.Shape, err error) {
	if err = checkTensor("initial_state", initialState); err != nil {
		return
	}
	if err = checkTensor("output", output); err != nil {
		return
	}
	if initialState.IsRanked() && initialState.Rank() != 1 {
		err = errorf(IncompatibleShape, "RngBitGenerator: initial_state must be 1-D, got %s", initialState)
		return
	}
	if output.Unranked {
		err = errorf(IncompatibleShape, "RngBitGenerator: output must be ranked, got %s", output)
		return
	}
	if !output.DType.IsInt() && !output.DType.IsFloat() {
		err = errorf(IncompatibleElementType, "RngBitGenerator: output must be an integer or float tensor, got %s", output)
		return
	}
	stateSize := shapes.DimUnknown
	if initialState.IsRanked() {
		stateSize = initialState.Dimensions[0]
	}
	switch algorithm {
	case types.RNGDefault:
	case types.RNGThreeFry:
		if stateSize != shapes.DimUnknown && stateSize != 2 {
			err = errorf(IncompatibleShape, "RngBitGenerator: THREE_FRY requires an initial_state of 2 elements, got %s", initialState)
			return
		}
	case types.RNGPhilox:
		if stateSize != shapes.DimUnknown && stateSize != 2 && stateSize != 3 {
			err = errorf(IncompatibleShape, "RngBitGenerator: PHILOX requires an initial_state of 2 or 3 elements, got %s", initialState)
			return
		}
	default:
		err = errorf(MalformedAttribute, "RngBitGenerator: invalid algorithm %d", algorithm)
		return
	}
	return []shapes.Shape{initialState.Clone(), output.Clone()}, nil
}

// Constant returns the shape of the constant value.
func Constant(value *attributes.Dense) (shapes.Shape, error) {
	if err := value.Validate("value"); err != nil {
		return shapes.Invalid(), attributeError(err)
	}
	return value.Shape(), nil
}
