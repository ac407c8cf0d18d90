package hloinfer

import (
	"github.com/gomlx/hloinfer/internal/optypes"
	"github.com/gomlx/hloinfer/shapeinference"
	"github.com/gomlx/hloinfer/types"
	"github.com/gomlx/hloinfer/types/shapes"
)

// Gather slices of Operand at the positions given by StartIndices.
type Gather struct {
	Operand, StartIndices shapes.Shape
	DimensionNumbers      types.GatherDimensionNumbers
	SliceSizes            []int
	IndicesAreSorted      bool
}

func (op *Gather) Type() OpType { return optypes.Gather }

func (op *Gather) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.Gather(op.Operand, op.StartIndices, op.DimensionNumbers, op.SliceSizes, op.IndicesAreSorted))
}

// DynamicGather is like Gather, but the slice sizes are an operand, only known at runtime.
type DynamicGather struct {
	Operand, StartIndices, SliceSizes shapes.Shape
	DimensionNumbers                  types.GatherDimensionNumbers
}

func (op *DynamicGather) Type() OpType { return optypes.DynamicGather }

func (op *DynamicGather) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.DynamicGather(op.Operand, op.StartIndices, op.SliceSizes, op.DimensionNumbers))
}

// Scatter Updates into Inputs at the positions given by ScatterIndices, combining values with Body.
type Scatter struct {
	Inputs           []shapes.Shape
	ScatterIndices   shapes.Shape
	Updates          []shapes.Shape
	DimensionNumbers types.ScatterDimensionNumbers
	Body             shapeinference.Body
}

func (op *Scatter) Type() OpType { return optypes.Scatter }

func (op *Scatter) infer(cfg *config) ([]shapes.Shape, error) {
	return shapeinference.Scatter(op.Inputs, op.ScatterIndices, op.Updates, op.DimensionNumbers, op.Body,
		cfg.relaxedFloatPrecision(op.Type()))
}

// DynamicSlice extracts a slice of SliceSizes from Operand, starting at the scalar StartIndices.
type DynamicSlice struct {
	Operand      shapes.Shape
	StartIndices []shapes.Shape
	SliceSizes   []int
}

func (op *DynamicSlice) Type() OpType { return optypes.DynamicSlice }

func (op *DynamicSlice) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.DynamicSlice(op.Operand, op.StartIndices, op.SliceSizes))
}

// DynamicUpdateSlice overwrites a slice of Operand with Update, starting at the scalar StartIndices.
type DynamicUpdateSlice struct {
	Operand, Update shapes.Shape
	StartIndices    []shapes.Shape
}

func (op *DynamicUpdateSlice) Type() OpType { return optypes.DynamicUpdateSlice }

func (op *DynamicUpdateSlice) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.DynamicUpdateSlice(op.Operand, op.Update, op.StartIndices))
}

// RealDynamicSlice is a Slice where starts, limits and strides are 1D operands.
type RealDynamicSlice struct {
	Operand, StartIndices, LimitIndices, Strides shapes.Shape
}

func (op *RealDynamicSlice) Type() OpType { return optypes.RealDynamicSlice }

func (op *RealDynamicSlice) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.RealDynamicSlice(op.Operand, op.StartIndices, op.LimitIndices, op.Strides))
}
