package hloinfer

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/hloinfer/internal/optypes"
	"github.com/gomlx/hloinfer/shapeinference"
	"github.com/gomlx/hloinfer/types"
	"github.com/gomlx/hloinfer/types/shapes"
)

// Dot product of vectors or matrices (rank 1 or 2). If OutputDType is dtypes.InvalidDType, the output takes the
// element type of Lhs.
type Dot struct {
	Lhs, Rhs    shapes.Shape
	OutputDType dtypes.DType
}

func (op *Dot) Type() OpType { return optypes.Dot }

func (op *Dot) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.Dot(op.Lhs, op.Rhs, op.OutputDType))
}

// DotGeneral contracts Lhs and Rhs along the contracting axes, with the batch axes aligned.
// The output is [batch dims..., lhs free dims..., rhs free dims...].
//
// Precision (for lhs and rhs) and Algorithm are optional, and don't change the output shape.
type DotGeneral struct {
	Lhs, Rhs         shapes.Shape
	DimensionNumbers types.DotDimensionNumbers
	OutputDType      dtypes.DType

	Precision [2]types.DotGeneralPrecisionType
	Algorithm *types.DotGeneralAlgorithm
}

func (op *DotGeneral) Type() OpType { return optypes.DotGeneral }

func (op *DotGeneral) infer(*config) ([]shapes.Shape, error) {
	if err := shapeinference.VerifyDotGeneralAlgorithm(op.Precision, op.Algorithm); err != nil {
		return nil, err
	}
	return one(shapeinference.DotGeneral(op.Lhs, op.Rhs, op.DimensionNumbers, op.OutputDType))
}

type Cholesky struct {
	A shapes.Shape
}

func (op *Cholesky) Type() OpType { return optypes.Cholesky }

func (op *Cholesky) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.Cholesky(op.A))
}

// TriangularSolve solves a system of linear equations with the triangular (batched) matrix A.
type TriangularSolve struct {
	A, B       shapes.Shape
	LeftSide   bool
	TransposeA types.TriangularSolveTranspose
}

func (op *TriangularSolve) Type() OpType { return optypes.TriangularSolve }

func (op *TriangularSolve) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.TriangularSolve(op.A, op.B, op.LeftSide, op.TransposeA))
}

// FFT over the last len(Length) axes of X.
type FFT struct {
	X       shapes.Shape
	FFTType types.FFTType
	Length  []int
}

func (op *FFT) Type() OpType { return optypes.FFT }

func (op *FFT) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.FFT(op.X, op.FFTType, op.Length))
}

// BatchNormInference normalizes Operand with the given Mean and Variance, per feature.
type BatchNormInference struct {
	Operand, Scale, Offset, Mean, Variance shapes.Shape
	FeatureIndex                           int
}

func (op *BatchNormInference) Type() OpType { return optypes.BatchNormInference }

func (op *BatchNormInference) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.BatchNormInference(op.Operand, op.Scale, op.Offset, op.Mean, op.Variance, op.FeatureIndex))
}

// BatchNormTraining normalizes Operand and returns also the batch mean and variance.
type BatchNormTraining struct {
	Operand, Scale, Offset shapes.Shape
	FeatureIndex           int
}

func (op *BatchNormTraining) Type() OpType { return optypes.BatchNormTraining }

func (op *BatchNormTraining) infer(*config) ([]shapes.Shape, error) {
	return shapeinference.BatchNormTraining(op.Operand, op.Scale, op.Offset, op.FeatureIndex)
}

// BatchNormGrad returns the gradients of the operand, scale and offset.
type BatchNormGrad struct {
	Operand, Scale, Mean, Variance, GradOutput shapes.Shape
	FeatureIndex                               int
}

func (op *BatchNormGrad) Type() OpType { return optypes.BatchNormGrad }

func (op *BatchNormGrad) infer(*config) ([]shapes.Shape, error) {
	return shapeinference.BatchNormGrad(op.Operand, op.Scale, op.Mean, op.Variance, op.GradOutput, op.FeatureIndex)
}
