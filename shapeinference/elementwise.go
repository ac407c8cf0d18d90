package shapeinference

import (
	"fmt"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/hloinfer/internal/optypes"
	"github.com/gomlx/hloinfer/internal/utils"
	"github.com/gomlx/hloinfer/types"
	"github.com/gomlx/hloinfer/types/shapes"
)

var (
	// BooleanOrBitwiseOperations take booleans or integers as input, aka. logical operations.
	BooleanOrBitwiseOperations = utils.SetWith(
		optypes.And,
		optypes.Or,
		optypes.Xor,
		optypes.Not,
	)

	// BitwiseOperations operates only on integer (binary) numbers and won't work on floats or complex numbers.
	BitwiseOperations = utils.SetWith(
		optypes.Popcnt,
		optypes.ShiftLeft,
		optypes.ShiftRightArithmetic,
		optypes.ShiftRightLogical,
		optypes.CountLeadingZeros,
	)

	// NumberOperations can take any type of number as input: integers, floats, or complex numbers.
	NumberOperations = utils.SetWith(
		optypes.Add,
		optypes.Subtract,
		optypes.Multiply,
		optypes.Divide,
		optypes.Power,
		optypes.Remainder,

		// Notice Abs and Sign works for unsigned ints: it's just a trivial implementation.
		optypes.Abs,
		optypes.Sign,
	)

	SignedNumberOperations = utils.SetWith(
		optypes.Negate,
	)

	// NumberNotComplexOperations operates on integers and floats, but not on complex numbers.
	NumberNotComplexOperations = utils.SetWith(
		optypes.Maximum,
		optypes.Minimum,
	)

	// FloatOperations operates only on float (and not on complex numbers).
	FloatOperations = utils.SetWith(
		optypes.Atan2,
		optypes.Ceil,
		optypes.Floor,
		optypes.RoundNearestAfz,
		optypes.RoundNearestEven,
		optypes.IsFinite,
		optypes.ReducePrecision,
	)

	// FloatOrComplexOperations operates only on float or complex numbers and won't work on integer or boolean values.
	FloatOrComplexOperations = utils.SetWith(
		optypes.Cbrt,
		optypes.Cosine,
		optypes.Sine,
		optypes.Tan,
		optypes.Tanh,
		optypes.Logistic,
		optypes.Exponential,
		optypes.ExponentialMinusOne,
		optypes.Log,
		optypes.LogPlusOne,
		optypes.Rsqrt,
		optypes.Sqrt,
	)

	// ComplexToRealOperations take a float or complex and return the real component type.
	ComplexToRealOperations = utils.SetWith(
		optypes.Imag,
		optypes.Real,
	)

	// StandardBinaryOperations include all operations that have two operands usually named lhs (left-hand-side) and
	// rhs (right-hand-side), and whose output has the same shape and element type as the operands.
	StandardBinaryOperations = utils.SetWith(
		optypes.Add,
		optypes.Atan2,
		optypes.Subtract,
		optypes.Multiply,
		optypes.Divide,
		optypes.Power,
		optypes.Remainder,
		optypes.And,
		optypes.Or,
		optypes.Xor,
		optypes.Maximum,
		optypes.Minimum,
		optypes.ShiftLeft,
		optypes.ShiftRightArithmetic,
		optypes.ShiftRightLogical,
	)

	// StandardUnaryOperations include all operations that have a single operand as input, and the return shape is the
	// same as the input (so no reductions). Element type may change: see ComplexToRealOperations and IsFinite.
	StandardUnaryOperations = utils.SetWith(
		optypes.Abs,
		optypes.Cbrt,
		optypes.Ceil,
		optypes.CountLeadingZeros,
		optypes.Cosine,
		optypes.Exponential,
		optypes.ExponentialMinusOne,
		optypes.Floor,
		optypes.Imag,
		optypes.IsFinite,
		optypes.Log,
		optypes.LogPlusOne,
		optypes.Logistic,
		optypes.Negate,
		optypes.Not,
		optypes.Popcnt,
		optypes.Real,
		optypes.RoundNearestAfz,
		optypes.RoundNearestEven,
		optypes.Rsqrt,
		optypes.Sign,
		optypes.Sine,
		optypes.Sqrt,
		optypes.Tan,
		optypes.Tanh,
	)
)

// checkDTypeClass validates the element type of an operand against the dtype classes the operation accepts.
// Quantized operands are checked against their expressed type.
func checkDTypeClass(opType optypes.OpType, operand shapes.Shape) error {
	dtype := operand.ExpressedDType()
	switch {
	case dtype == dtypes.InvalidDType:
		return errorf(IncompatibleElementType, "invalid element type for %s operand %s", opType, operand)
	case BooleanOrBitwiseOperations.Has(opType) && dtype != dtypes.Bool && !dtype.IsInt():
		return errorf(IncompatibleElementType, "logical/bitwise %s must have boolean or integer operands, got %s", opType, operand)
	case BitwiseOperations.Has(opType) && !dtype.IsInt():
		return errorf(IncompatibleElementType, "bitwise %s must have an integer (Int8, Uint8, Int32, ...) operand, got %s", opType, operand)
	case SignedNumberOperations.Has(opType) && (dtype.IsUnsigned() || !(dtype.IsInt() || dtype.IsFloat() || dtype.IsComplex())):
		return errorf(IncompatibleElementType, "signed %s must have a signed number operand, got %s", opType, operand)
	case NumberOperations.Has(opType) && !(dtype.IsInt() || dtype.IsFloat() || dtype.IsComplex()):
		return errorf(IncompatibleElementType, "numeric %s must have a number (Int32, Float32, Complex64, ...) operand, got %s", opType, operand)
	case NumberNotComplexOperations.Has(opType) && dtype.IsComplex():
		return errorf(IncompatibleElementType, "%s does not support complex numbers, got %s", opType, operand)
	case FloatOperations.Has(opType) && !dtype.IsFloat():
		return errorf(IncompatibleElementType, "float %s must have a float (Float32, Float64, ...) operand, got %s", opType, operand)
	case FloatOrComplexOperations.Has(opType) && !(dtype.IsFloat() || dtype.IsComplex()):
		return errorf(IncompatibleElementType, "float/complex %s must have a float or complex operand, got %s", opType, operand)
	case ComplexToRealOperations.Has(opType) && !(dtype.IsFloat() || dtype.IsComplex()):
		return errorf(IncompatibleElementType, "%s must have a float or complex operand, got %s", opType, operand)
	}
	return nil
}

// UnaryOp checks the validity of the element type for StandardUnaryOperations and returns either an error or
// the output shape, which has the same dimensions as the operand.
//
// Abs, Real and Imag of complex operands return the real component type, and IsFinite returns booleans.
func UnaryOp(opType optypes.OpType, operand shapes.Shape) (output shapes.Shape, err error) {
	if !StandardUnaryOperations.Has(opType) {
		err = errorf(MalformedAttribute, "operation %s is not in the StandardUnaryOperations set, cannot process it with UnaryOp", opType)
		return
	}
	if err = checkTensor("operand", operand); err != nil {
		return
	}
	if err = checkDTypeClass(opType, operand); err != nil {
		return
	}

	// Special cases:
	switch {
	case opType == optypes.IsFinite:
		return operand.WithDType(dtypes.Bool), nil
	case (opType == optypes.Abs || ComplexToRealOperations.Has(opType)) && operand.DType.IsComplex():
		return operand.WithDType(operand.DType.RealDType()), nil
	}

	// Default: output shape is the same as the operand.
	return operand.Clone(), nil
}

// BinaryOp returns the expected output shape for ops in the StandardBinaryOperations set.
//
// Operands must have the same element type, and the same rank with compatible dimensions: there is no implicit
// broadcasting, not even of scalars. If one operand is unranked, the output takes the rank of the other.
func BinaryOp(opType optypes.OpType, lhs, rhs shapes.Shape) (output shapes.Shape, err error) {
	if !StandardBinaryOperations.Has(opType) {
		err = errorf(MalformedAttribute, "operation %s is not in the StandardBinaryOperations set, cannot process it with BinaryOp", opType)
		return
	}
	if err = checkTensor("lhs", lhs); err != nil {
		return
	}
	if err = checkTensor("rhs", rhs); err != nil {
		return
	}
	if err = checkSameElementType("lhs", lhs, "rhs", rhs); err != nil {
		return
	}
	if err = checkDTypeClass(opType, lhs); err != nil {
		return
	}
	return elementwiseShape([]string{"lhs", "rhs"}, lhs, rhs)
}

// Compare returns the unified shape of the operands with element type Bool.
func Compare(lhs, rhs shapes.Shape, direction types.ComparisonDirection, compareType types.ComparisonType) (output shapes.Shape, err error) {
	if err = checkTensor("lhs", lhs); err != nil {
		return
	}
	if err = checkTensor("rhs", rhs); err != nil {
		return
	}
	if err = checkSameElementType("lhs", lhs, "rhs", rhs); err != nil {
		return
	}
	if !direction.IsAComparisonDirection() {
		err = errorf(MalformedAttribute, "invalid comparison direction for Compare: %s", direction.ToStableHLO())
		return
	}
	dtype := lhs.ExpressedDType()
	switch compareType {
	case types.CompareNotSet:
	case types.CompareFloat:
		if !dtype.IsFloat() && !dtype.IsComplex() {
			err = errorf(IncompatibleElementType, "element type %s is not a float or complex, cannot process it with Compare(%s, %s)", dtype,
				direction.ToStableHLO(), compareType.ToStableHLO())
			return
		}
	case types.CompareTotalOrder:
		if !dtype.IsFloat() {
			err = errorf(IncompatibleElementType, "element type %s is not a float, cannot process it with Compare(%s, %s)", dtype,
				direction.ToStableHLO(), compareType.ToStableHLO())
			return
		}
	case types.CompareSigned:
		if !dtype.IsInt() || dtype.IsUnsigned() {
			err = errorf(IncompatibleElementType, "element type %s is not a signed integer, cannot process it with Compare(%s, %s)", dtype,
				direction.ToStableHLO(), compareType.ToStableHLO())
			return
		}
	case types.CompareUnsigned:
		if !dtype.IsUnsigned() && dtype != dtypes.Bool {
			err = errorf(IncompatibleElementType, "element type %s is not an unsigned integer, cannot process it with Compare(%s, %s)", dtype,
				direction.ToStableHLO(), compareType.ToStableHLO())
			return
		}
	default:
		err = errorf(MalformedAttribute, "invalid comparison type for Compare: %s", compareType.ToStableHLO())
		return
	}
	output, err = elementwiseShape([]string{"lhs", "rhs"}, lhs, rhs)
	if err != nil {
		return
	}
	return output.WithDType(dtypes.Bool), nil
}

// Select returns the shape resulting from the Select operation.
//
// The pred must be boolean and can be a scalar or have a shape compatible with onTrue and onFalse.
// onTrue and onFalse must have compatible shapes and the same element type.
func Select(pred, onTrue, onFalse shapes.Shape) (output shapes.Shape, err error) {
	if err = checkTensor("pred", pred); err != nil {
		return
	}
	if pred.DType != dtypes.Bool {
		err = errorf(IncompatibleElementType, "pred for Select() must be a boolean, got %s instead", pred)
		return
	}
	if err = checkTensor("onTrue", onTrue); err != nil {
		return
	}
	if err = checkTensor("onFalse", onFalse); err != nil {
		return
	}
	if err = checkSameElementType("onTrue", onTrue, "onFalse", onFalse); err != nil {
		return
	}
	output, err = elementwiseShape([]string{"onTrue", "onFalse"}, onTrue, onFalse)
	if err != nil {
		return
	}
	if pred.IsScalar() {
		return output, nil
	}
	if !shapes.DimensionsCompatible(pred, output) {
		err = errorf(IncompatibleShape, "pred for Select() must either be a scalar or match onTrue and onFalse shapes, instead got shapes pred=%s, onTrue=%s and onFalse=%s",
			pred, onTrue, onFalse)
		return
	}
	refined, rErr := shapes.Refine(output, pred)
	if rErr != nil {
		return shapes.Invalid(), errorf(IncompatibleShape, "%s", rErr)
	}
	return refined, nil
}

// Clamp returns the shape resulting from the corresponding operation.
//
// min and max must be scalars or have a shape compatible with the operand.
func Clamp(min, operand, max shapes.Shape) (output shapes.Shape, err error) {
	for _, s := range []struct {
		name  string
		shape shapes.Shape
	}{{"min", min}, {"operand", operand}, {"max", max}} {
		if err = checkTensor(s.name, s.shape); err != nil {
			return
		}
	}
	if !shapes.DTypesCompatible(operand, min, false) || !shapes.DTypesCompatible(operand, max, false) {
		err = errorf(IncompatibleElementType, "operand, min and max for Clamp() must have the same element type, got %s, %s and %s",
			operand, min, max)
		return
	}
	if operand.DType.IsComplex() || operand.DType == dtypes.Bool {
		err = errorf(IncompatibleElementType, "Clamp() does not support complex or boolean element types, got %s", operand)
		return
	}
	output = operand.Clone()
	for _, bound := range []struct {
		name  string
		shape shapes.Shape
	}{{"min", min}, {"max", max}} {
		if bound.shape.IsScalar() {
			continue
		}
		if !shapes.DimensionsCompatible(bound.shape, operand) {
			err = errorf(IncompatibleShape, "%s for Clamp() must either be a scalar or match the operand shape, instead got %s=%s and operand=%s",
				bound.name, bound.name, bound.shape, operand)
			return
		}
		output, err = shapes.Refine(output, bound.shape)
		if err != nil {
			return shapes.Invalid(), errorf(IncompatibleShape, "%s", err)
		}
	}
	return output, nil
}

// Complex returns the shape resulting from the Complex operation: Float32 parts make a Complex64, and Float64
// parts make a Complex128.
func Complex(real, imag shapes.Shape) (output shapes.Shape, err error) {
	if err = checkTensor("real", real); err != nil {
		return
	}
	if err = checkTensor("imag", imag); err != nil {
		return
	}
	if real.DType != imag.DType || real.IsQuantized() || imag.IsQuantized() {
		err = errorf(IncompatibleElementType, "real and imaginary parts for Complex() must have the same element type, got %s and %s",
			real, imag)
		return
	}
	var dtype dtypes.DType
	switch real.DType {
	case dtypes.Float32:
		dtype = dtypes.Complex64
	case dtypes.Float64:
		dtype = dtypes.Complex128
	default:
		err = errorf(IncompatibleElementType, "real and imaginary parts for Complex() must be Float32 or Float64, got %s", real)
		return
	}
	output, err = elementwiseShape([]string{"real", "imag"}, real, imag)
	if err != nil {
		return
	}
	return output.WithDType(dtype), nil
}

// Convert returns the operand shape with the new element type.
func Convert(operand shapes.Shape, dtype dtypes.DType) (output shapes.Shape, err error) {
	if err = checkTensor("operand", operand); err != nil {
		return
	}
	if dtype == dtypes.InvalidDType {
		err = errorf(IncompatibleElementType, "Convert() requires a valid target element type")
		return
	}
	return operand.WithDType(dtype), nil
}

// BitcastConvert returns the shape of reinterpreting the bits of the operand as the target element type.
//
// Converting to a narrower type appends an axis with the ratio of the bit widths, converting to a wider type
// removes the last axis, which must have that ratio as its dimension.
func BitcastConvert(operand shapes.Shape, targetDType dtypes.DType) (output shapes.Shape, err error) {
	if err = checkTensor("operand", operand); err != nil {
		return
	}
	if targetDType == dtypes.InvalidDType {
		err = errorf(IncompatibleElementType, "BitcastConvert: target element type is invalid")
		return
	}
	sourceDType := operand.DType
	output = operand.WithDType(targetDType)
	sourceBits, targetBits := bitWidth(sourceDType), bitWidth(targetDType)
	if sourceDType.IsComplex() != targetDType.IsComplex() {
		err = errorf(IncompatibleElementType, "BitcastConvert: cannot convert between complex and non-complex types (%s to %s)",
			sourceDType, targetDType)
		return
	}
	if sourceBits == targetBits || operand.Unranked {
		// Unranked: the rank change is not expressible.
		return
	}
	if sourceBits > targetBits {
		// Convert to a smaller data type, append to a new dimension.
		output.Dimensions = append(output.Dimensions, sourceBits/targetBits)
		return
	}

	// Convert to a larger data type, shrink the last dimension.
	ratio := targetBits / sourceBits
	if operand.Rank() == 0 {
		return shapes.Invalid(), errorf(IncompatibleShape, "BitcastConvert: cannot convert scalar %s to wider type %s", operand, targetDType)
	}
	if lastDim := operand.Dim(-1); !shapes.DimsCompatible(lastDim, ratio) {
		return shapes.Invalid(), errorf(IncompatibleShape, "BitcastConvert: cannot convert from %d x %s (%d bits) to %s (%d bits)",
			lastDim, sourceDType, sourceBits, targetDType, targetBits)
	}
	output.Dimensions = output.Dimensions[:len(output.Dimensions)-1]
	return
}

// ReducePrecision returns the operand shape, after validating the number of exponent (>= 1) and mantissa (>= 0)
// bits.
func ReducePrecision(operand shapes.Shape, exponentBits, mantissaBits int) (output shapes.Shape, err error) {
	if err = checkTensor("operand", operand); err != nil {
		return
	}
	if err = checkDTypeClass(optypes.ReducePrecision, operand); err != nil {
		return
	}
	if exponentBits < 1 {
		err = errorf(MalformedAttribute, "ReducePrecision: exponent_bits must be >= 1, got %d", exponentBits)
		return
	}
	if mantissaBits < 0 {
		err = errorf(MalformedAttribute, "ReducePrecision: mantissa_bits must be >= 0, got %d", mantissaBits)
		return
	}
	return operand.Clone(), nil
}

// Map returns the shape of applying the scalar computation body elementwise over the inputs.
//
// All inputs must have compatible shapes, dimensions must be [0, ..., rank-1], and the body must take one scalar
// per input (of the same element type) and return one scalar, whose element type is the one of the output.
func Map(inputs []shapes.Shape, body Body, dimensions []int) (output shapes.Shape, err error) {
	if len(inputs) == 0 {
		err = errorf(IncompatibleShape, "Map requires at least one input")
		return
	}
	if err = checkTensors("inputs", inputs); err != nil {
		return
	}
	names := make([]string, len(inputs))
	for ii := range names {
		names[ii] = fmt.Sprintf("inputs[%d]", ii)
	}
	output, err = elementwiseShape(names, inputs...)
	if err != nil {
		return
	}
	if output.IsRanked() && (len(dimensions) != output.Rank() || !utils.IsIota(dimensions)) {
		err = errorf(InvalidDimensionMapping, "Map requires dimensions to be [0, ..., %d], got %v", output.Rank()-1, dimensions)
		return
	}
	if len(body.Params) != len(inputs) {
		err = errorf(ReducerSignatureMismatch, "Map computation must take %d parameters, one per input, got %d", len(inputs), len(body.Params))
		return
	}
	for ii, param := range body.Params {
		if !param.IsTensor() || (param.IsRanked() && param.Rank() != 0) {
			err = paramErrorf(ReducerSignatureMismatch, ii, "Map computation parameter #%d must be a scalar, got %s", ii, param)
			return
		}
		if !shapes.DTypesCompatible(param.ElementShape(), inputs[ii].ElementShape(), false) {
			err = paramErrorf(ReducerSignatureMismatch, ii, "Map computation parameter #%d (%s) must have the element type of input #%d (%s)",
				ii, param, ii, inputs[ii])
			return
		}
	}
	if len(body.Results) != 1 || !body.Results[0].IsTensor() || (body.Results[0].IsRanked() && body.Results[0].Rank() != 0) {
		err = errorf(ReducerSignatureMismatch, "Map computation must return a single scalar, got %v", body.Results)
		return
	}
	return output.WithElementTypeOf(body.Results[0]), nil
}
