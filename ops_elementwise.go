package hloinfer

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/hloinfer/internal/optypes"
	"github.com/gomlx/hloinfer/shapeinference"
	"github.com/gomlx/hloinfer/types"
	"github.com/gomlx/hloinfer/types/shapes"
)

// Unary is any of the standard unary elementwise operations (Abs, Cosine, Negate, IsFinite, ...), see
// shapeinference.StandardUnaryOperations. OpType selects which one.
type Unary struct {
	OpType  OpType
	Operand shapes.Shape
}

func (op *Unary) Type() OpType { return op.OpType }

func (op *Unary) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.UnaryOp(op.OpType, op.Operand))
}

// Binary is any of the standard binary elementwise operations (Add, Maximum, ShiftLeft, ...), see
// shapeinference.StandardBinaryOperations. OpType selects which one.
type Binary struct {
	OpType   OpType
	Lhs, Rhs shapes.Shape
}

func (op *Binary) Type() OpType { return op.OpType }

func (op *Binary) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.BinaryOp(op.OpType, op.Lhs, op.Rhs))
}

// Compare operands elementwise, returning booleans.
type Compare struct {
	Lhs, Rhs    shapes.Shape
	Direction   types.ComparisonDirection
	CompareType types.ComparisonType
}

func (op *Compare) Type() OpType { return optypes.Compare }

func (op *Compare) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.Compare(op.Lhs, op.Rhs, op.Direction, op.CompareType))
}

// Complex builds complex numbers from their real and imaginary parts.
type Complex struct {
	Real, Imag shapes.Shape
}

func (op *Complex) Type() OpType { return optypes.Complex }

func (op *Complex) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.Complex(op.Real, op.Imag))
}

// Select picks elements from OnTrue or OnFalse, according to Pred.
type Select struct {
	Pred, OnTrue, OnFalse shapes.Shape
}

func (op *Select) Type() OpType { return optypes.Select }

func (op *Select) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.Select(op.Pred, op.OnTrue, op.OnFalse))
}

// Clamp limits Operand to the [Min, Max] interval.
type Clamp struct {
	Min, Operand, Max shapes.Shape
}

func (op *Clamp) Type() OpType { return optypes.Clamp }

func (op *Clamp) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.Clamp(op.Min, op.Operand, op.Max))
}

// Convert changes the element type of Operand.
type Convert struct {
	Operand shapes.Shape
	DType   dtypes.DType
}

func (op *Convert) Type() OpType { return optypes.Convert }

func (op *Convert) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.Convert(op.Operand, op.DType))
}

// BitcastConvert reinterprets the bits of Operand as DType.
type BitcastConvert struct {
	Operand shapes.Shape
	DType   dtypes.DType
}

func (op *BitcastConvert) Type() OpType { return optypes.BitcastConvert }

func (op *BitcastConvert) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.BitcastConvert(op.Operand, op.DType))
}

// ReducePrecision rounds Operand to a float with the given number of exponent and mantissa bits.
type ReducePrecision struct {
	Operand                    shapes.Shape
	ExponentBits, MantissaBits int
}

func (op *ReducePrecision) Type() OpType { return optypes.ReducePrecision }

func (op *ReducePrecision) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.ReducePrecision(op.Operand, op.ExponentBits, op.MantissaBits))
}

// Map applies the scalar computation Body elementwise over Inputs.
type Map struct {
	Inputs     []shapes.Shape
	Body       shapeinference.Body
	Dimensions []int
}

func (op *Map) Type() OpType { return optypes.Map }

func (op *Map) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.Map(op.Inputs, op.Body, op.Dimensions))
}
