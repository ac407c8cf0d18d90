package hloinfer

import (
	"github.com/gomlx/hloinfer/internal/optypes"
	"github.com/gomlx/hloinfer/shapeinference"
	"github.com/gomlx/hloinfer/types/shapes"
)

// Broadcast prepends the BroadcastSizes axes to Operand.
type Broadcast struct {
	Operand        shapes.Shape
	BroadcastSizes []int
}

func (op *Broadcast) Type() OpType { return optypes.Broadcast }

func (op *Broadcast) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.Broadcast(op.Operand, op.BroadcastSizes))
}

// BroadcastInDim broadcasts Operand to the declared Result shape, with operand axis i mapped to the result
// axis BroadcastDimensions[i].
type BroadcastInDim struct {
	Operand, Result     shapes.Shape
	BroadcastDimensions []int
}

func (op *BroadcastInDim) Type() OpType { return optypes.BroadcastInDim }

func (op *BroadcastInDim) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.BroadcastInDim(op.Operand, op.Result, op.BroadcastDimensions))
}

// DynamicBroadcastInDim is like BroadcastInDim, but the output dimensions are given by the OutputDimensions
// operand, only known at runtime.
type DynamicBroadcastInDim struct {
	Operand, OutputDimensions, Result        shapes.Shape
	BroadcastDimensions                      []int
	KnownExpandingDims, KnownNonExpandingDims []int
}

func (op *DynamicBroadcastInDim) Type() OpType { return optypes.DynamicBroadcastInDim }

func (op *DynamicBroadcastInDim) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.DynamicBroadcastInDim(op.Operand, op.OutputDimensions, op.BroadcastDimensions,
		op.KnownExpandingDims, op.KnownNonExpandingDims, op.Result))
}

// Concatenate Inputs along Axis.
type Concatenate struct {
	Inputs []shapes.Shape
	Axis   int
}

func (op *Concatenate) Type() OpType { return optypes.Concatenate }

func (op *Concatenate) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.Concatenate(op.Inputs, op.Axis))
}

// Transpose permutes the axes of Operand.
type Transpose struct {
	Operand     shapes.Shape
	Permutation []int
}

func (op *Transpose) Type() OpType { return optypes.Transpose }

func (op *Transpose) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.Transpose(op.Operand, op.Permutation))
}

// Reshape Operand to Dimensions, which can't be unknown if Operand has no unknown dimensions.
type Reshape struct {
	Operand    shapes.Shape
	Dimensions []int
}

func (op *Reshape) Type() OpType { return optypes.Reshape }

func (op *Reshape) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.Reshape(op.Operand, op.Dimensions))
}

// DynamicReshape reshapes Operand to the dimensions held by the OutputShape operand.
type DynamicReshape struct {
	Operand, OutputShape, Result shapes.Shape
}

func (op *DynamicReshape) Type() OpType { return optypes.DynamicReshape }

func (op *DynamicReshape) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.DynamicReshape(op.Operand, op.OutputShape, op.Result))
}

// Pad Operand at the edges (negative padding removes elements) and in between elements.
type Pad struct {
	Operand, PaddingValue                            shapes.Shape
	EdgePaddingLow, EdgePaddingHigh, InteriorPadding []int
}

func (op *Pad) Type() OpType { return optypes.Pad }

func (op *Pad) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.Pad(op.Operand, op.PaddingValue, op.EdgePaddingLow, op.EdgePaddingHigh, op.InteriorPadding))
}

// Slice extracts [StartIndices, LimitIndices) from Operand, with the given Strides (nil means 1).
type Slice struct {
	Operand                             shapes.Shape
	StartIndices, LimitIndices, Strides []int
}

func (op *Slice) Type() OpType { return optypes.Slice }

func (op *Slice) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.Slice(op.Operand, op.StartIndices, op.LimitIndices, op.Strides))
}

// Reverse the order of the elements along Dimensions.
type Reverse struct {
	Operand    shapes.Shape
	Dimensions []int
}

func (op *Reverse) Type() OpType { return optypes.Reverse }

func (op *Reverse) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.Reverse(op.Operand, op.Dimensions))
}

// Iota fills the declared Result shape with increasing values along IotaDimension.
type Iota struct {
	Result        shapes.Shape
	IotaDimension int
}

func (op *Iota) Type() OpType { return optypes.Iota }

func (op *Iota) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.Iota(op.Result, op.IotaDimension))
}

// GetDimensionSize returns the size of one dimension of Operand.
type GetDimensionSize struct {
	Operand   shapes.Shape
	Dimension int
}

func (op *GetDimensionSize) Type() OpType { return optypes.GetDimensionSize }

func (op *GetDimensionSize) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.GetDimensionSize(op.Operand, op.Dimension))
}

// Tuple groups Elements.
type Tuple struct {
	Elements []shapes.Shape
}

func (op *Tuple) Type() OpType { return optypes.Tuple }

func (op *Tuple) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.Tuple(op.Elements))
}

// GetTupleElement extracts element Index from Tuple.
type GetTupleElement struct {
	Tuple shapes.Shape
	Index int
}

func (op *GetTupleElement) Type() OpType { return optypes.GetTupleElement }

func (op *GetTupleElement) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.GetTupleElement(op.Tuple, op.Index))
}

// OptimizationBarrier returns its Operands unchanged.
type OptimizationBarrier struct {
	Operands []shapes.Shape
}

func (op *OptimizationBarrier) Type() OpType { return optypes.OptimizationBarrier }

func (op *OptimizationBarrier) infer(*config) ([]shapes.Shape, error) {
	return shapeinference.OptimizationBarrier(op.Operands)
}
