package hloinfer

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/hloinfer/attributes"
	"github.com/gomlx/hloinfer/internal/optypes"
	"github.com/gomlx/hloinfer/shapeinference"
	"github.com/gomlx/hloinfer/types"
	"github.com/gomlx/hloinfer/types/shapes"
	"github.com/pkg/errors"
)

// Convolution of Input by Kernel.
//
// The window attributes are kept raw, as they appear in the program, and any of them can be nil (absent).
// Their arity is given by the spatial rank of AxesConfig. Window.BaseDilations holds the lhs_dilation and
// Window.WindowDilations the rhs_dilation. The window dimensions come from the kernel, so
// Window.WindowDimensions is ignored.
//
// If OutputDType is dtypes.InvalidDType, the output takes the element type of Input.
type Convolution struct {
	Input, Kernel shapes.Shape
	Window        shapeinference.WindowAttributes
	AxesConfig    types.ConvolveAxesConfig

	FeatureGroupCount, BatchGroupCount int
	OutputDType                        dtypes.DType
}

func (op *Convolution) Type() OpType { return optypes.Convolution }

func (op *Convolution) infer(*config) ([]shapes.Shape, error) {
	spatialRank := op.AxesConfig.SpatialRank()
	strides, err := attributes.Int1D(op.Window.WindowStrides, "window_strides", spatialRank, 1)
	if err != nil {
		return nil, err
	}
	padding, err := attributes.Padding(op.Window.Padding, spatialRank)
	if err != nil {
		return nil, err
	}
	lhsDilation, err := attributes.Int1D(op.Window.BaseDilations, "lhs_dilation", spatialRank, 1)
	if err != nil {
		return nil, err
	}
	rhsDilation, err := attributes.Int1D(op.Window.WindowDilations, "rhs_dilation", spatialRank, 1)
	if err != nil {
		return nil, err
	}
	reversal, err := attributes.Bool1D(op.Window.WindowReversal, "window_reversal", spatialRank, false)
	if err != nil {
		return nil, err
	}
	return one(shapeinference.Convolution(op.Input, op.Kernel, strides, padding, lhsDilation, rhsDilation, reversal,
		op.AxesConfig, op.FeatureGroupCount, op.BatchGroupCount, op.OutputDType))
}

// windowSizes decodes the required window_dimensions attribute.
func windowSizes(attr *attributes.Dense) ([]int, error) {
	if attr == nil {
		return nil, errors.Wrap(attributes.ErrMalformedAttribute, "attribute \"window_dimensions\" is required")
	}
	return attributes.Int1D(attr, "window_dimensions", -1, 1)
}

// ReduceWindow reduces each window of Inputs with Body.
//
// Window.WindowDimensions is required, the other window attributes can be nil. Window reversal is not
// used by this operation.
type ReduceWindow struct {
	Inputs, InitValues []shapes.Shape
	Body               shapeinference.Body
	Window             shapeinference.WindowAttributes
}

func (op *ReduceWindow) Type() OpType { return optypes.ReduceWindow }

func (op *ReduceWindow) infer(cfg *config) ([]shapes.Shape, error) {
	sizes, err := windowSizes(op.Window.WindowDimensions)
	if err != nil {
		return nil, err
	}
	rank := len(sizes)
	strides, err := attributes.Int1D(op.Window.WindowStrides, "window_strides", rank, 1)
	if err != nil {
		return nil, err
	}
	baseDilations, err := attributes.Int1D(op.Window.BaseDilations, "base_dilations", rank, 1)
	if err != nil {
		return nil, err
	}
	windowDilations, err := attributes.Int1D(op.Window.WindowDilations, "window_dilations", rank, 1)
	if err != nil {
		return nil, err
	}
	padding, err := attributes.Padding(op.Window.Padding, rank)
	if err != nil {
		return nil, err
	}
	return shapeinference.ReduceWindow(op.Inputs, op.InitValues, op.Body, sizes, strides, baseDilations, windowDilations,
		padding, cfg.relaxedFloatPrecision(op.Type()))
}

// SelectAndScatter selects one element of each window of Operand with SelectBody, and scatters Source
// into those positions, combining with ScatterBody.
//
// Window.WindowDimensions is required. Only Window.WindowStrides and Window.Padding are used among the
// other window attributes.
type SelectAndScatter struct {
	Operand, Source, InitValue shapes.Shape
	SelectBody, ScatterBody    shapeinference.Body
	Window                     shapeinference.WindowAttributes
}

func (op *SelectAndScatter) Type() OpType { return optypes.SelectAndScatter }

func (op *SelectAndScatter) infer(cfg *config) ([]shapes.Shape, error) {
	sizes, err := windowSizes(op.Window.WindowDimensions)
	if err != nil {
		return nil, err
	}
	strides, err := attributes.Int1D(op.Window.WindowStrides, "window_strides", len(sizes), 1)
	if err != nil {
		return nil, err
	}
	padding, err := attributes.Padding(op.Window.Padding, len(sizes))
	if err != nil {
		return nil, err
	}
	return one(shapeinference.SelectAndScatter(op.Operand, op.Source, op.InitValue, op.SelectBody, op.ScatterBody,
		sizes, strides, padding, cfg.relaxedFloatPrecision(op.Type())))
}

// Reduce Inputs along Dimensions with Body.
type Reduce struct {
	Inputs, InitValues []shapes.Shape
	Body               shapeinference.Body
	Dimensions         []int
}

func (op *Reduce) Type() OpType { return optypes.Reduce }

func (op *Reduce) infer(cfg *config) ([]shapes.Shape, error) {
	return shapeinference.Reduce(op.Inputs, op.InitValues, op.Body, op.Dimensions, cfg.relaxedFloatPrecision(op.Type()))
}

// Sort Inputs along Dimension, using the Comparator body. Dimension can be negative.
type Sort struct {
	Inputs     []shapes.Shape
	Dimension  int
	Comparator shapeinference.Body
}

func (op *Sort) Type() OpType { return optypes.Sort }

func (op *Sort) infer(*config) ([]shapes.Shape, error) {
	return shapeinference.Sort(op.Inputs, op.Dimension, op.Comparator)
}
