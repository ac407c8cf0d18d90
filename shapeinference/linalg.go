package shapeinference

import (
	"fmt"
	"slices"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/hloinfer/types"
	"github.com/gomlx/hloinfer/types/shapes"
)

// Dot returns the shape of the dot product of vectors and/or matrices: it's a DotGeneral contracting the last
// axis of lhs with the first axis of rhs, with no batch axes.
//
// If outputDType is dtypes.InvalidDType the output takes the element type of lhs.
func Dot(lhs, rhs shapes.Shape, outputDType dtypes.DType) (output shapes.Shape, err error) {
	if err = checkTensor("lhs", lhs); err != nil {
		return
	}
	if err = checkTensor("rhs", rhs); err != nil {
		return
	}
	if lhs.Unranked || rhs.Unranked {
		if err = checkSameElementType("lhs", lhs, "rhs", rhs); err != nil {
			return
		}
		output = asUnranked(lhs)
		if outputDType != dtypes.InvalidDType {
			output = output.WithDType(outputDType)
		}
		return output, nil
	}
	if lhs.Rank() < 1 || lhs.Rank() > 2 || rhs.Rank() < 1 || rhs.Rank() > 2 {
		err = errorf(IncompatibleShape, "Dot requires vectors or matrices, got lhs=%s and rhs=%s", lhs, rhs)
		return
	}
	return DotGeneral(lhs, rhs, types.DotDimensionNumbers{
		LhsContractingDims: []int{lhs.Rank() - 1},
		RhsContractingDims: []int{0},
	}, outputDType)
}

// VerifyDotGeneralAlgorithm checks the optional precision config (lhs, rhs) and algorithm of a DotGeneral.
// A nil algorithm is valid.
func VerifyDotGeneralAlgorithm(precision [2]types.DotGeneralPrecisionType, algorithm *types.DotGeneralAlgorithm) error {
	for ii, p := range precision {
		if !p.IsADotGeneralPrecisionType() {
			return errorf(MalformedAttribute, "DotGeneral: invalid %s precision %d", [2]string{"lhs", "rhs"}[ii], int(p))
		}
	}
	if algorithm == nil {
		return nil
	}
	precisionConfig := fmt.Sprintf("precision_config=[%s, %s]", precision[0].ToStableHLO(), precision[1].ToStableHLO())
	for _, pt := range []struct {
		name      string
		precision types.FloatPrecisionType
	}{
		{"lhs_precision_type", algorithm.LhsPrecisionType},
		{"rhs_precision_type", algorithm.RhsPrecisionType},
		{"accumulation_type", algorithm.AccumulationType},
	} {
		if !pt.precision.TF32 && !pt.precision.DType.IsFloat() {
			return errorf(MalformedAttribute, "DotGeneral(%s): algorithm %s must be a float type or tf32, got %s",
				precisionConfig, pt.name, pt.precision.ToStableHLO())
		}
	}
	if algorithm.LhsComponentCount <= 0 || algorithm.RhsComponentCount <= 0 || algorithm.NumPrimitiveOperations <= 0 {
		return errorf(MalformedAttribute, "DotGeneral(%s): algorithm component counts (%d, %d) and number of primitive "+
			"operations (%d) must be positive", precisionConfig, algorithm.LhsComponentCount, algorithm.RhsComponentCount,
			algorithm.NumPrimitiveOperations)
	}
	return nil
}

// DotGeneral returns the shape resulting from the corresponding operations.
//
// The output dimensions are the batch dimensions, followed by the lhs free (non-batch, non-contracting)
// dimensions, followed by the rhs free dimensions.
//
// If outputDType is dtypes.InvalidDType the output takes the element type of lhs.
func DotGeneral(lhs, rhs shapes.Shape, dn types.DotDimensionNumbers, outputDType dtypes.DType) (output shapes.Shape, err error) {
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
	if len(dn.LhsContractingDims) != len(dn.RhsContractingDims) {
		err = errorf(InvalidDimensionMapping, "DotGeneral number of contracting axes for lhs (%d) doesn't match rhs (%d)",
			len(dn.LhsContractingDims), len(dn.RhsContractingDims))
		return
	}
	if len(dn.LhsBatchingDims) != len(dn.RhsBatchingDims) {
		err = errorf(InvalidDimensionMapping, "DotGeneral number of batch axes for lhs (%d) doesn't match rhs (%d)",
			len(dn.LhsBatchingDims), len(dn.RhsBatchingDims))
		return
	}
	lhsAxes := slices.Concat(dn.LhsBatchingDims, dn.LhsContractingDims)
	if err = checkAxesPartial("lhs batching and contracting dims", lhsAxes, lhs.Rank(), false); err != nil {
		return
	}
	rhsAxes := slices.Concat(dn.RhsBatchingDims, dn.RhsContractingDims)
	if err = checkAxesPartial("rhs batching and contracting dims", rhsAxes, rhs.Rank(), false); err != nil {
		return
	}

	setDType := func(s shapes.Shape) shapes.Shape {
		if outputDType != dtypes.InvalidDType {
			return s.WithDType(outputDType)
		}
		return s
	}
	if lhs.Unranked || rhs.Unranked {
		return setDType(asUnranked(lhs)), nil
	}

	// Check that batch and contracting dimensions from lhs and rhs match.
	batchDims := make([]int, len(dn.LhsBatchingDims))
	for ii, lhsAxis := range dn.LhsBatchingDims {
		rhsAxis := dn.RhsBatchingDims[ii]
		lhsDim, rhsDim := lhs.Dimensions[lhsAxis], rhs.Dimensions[rhsAxis]
		if !shapes.DimsCompatible(lhsDim, rhsDim) {
			err = errorf(IncompatibleShape, "DotGeneral batch dimensions don't match: lhs[%d]=%d != rhs[%d]=%d",
				lhsAxis, lhsDim, rhsAxis, rhsDim)
			return
		}
		batchDims[ii] = shapes.RefineDim(lhsDim, rhsDim)
	}
	for ii, lhsAxis := range dn.LhsContractingDims {
		rhsAxis := dn.RhsContractingDims[ii]
		lhsDim, rhsDim := lhs.Dimensions[lhsAxis], rhs.Dimensions[rhsAxis]
		if !shapes.DimsCompatible(lhsDim, rhsDim) {
			err = errorf(IncompatibleShape, "DotGeneral contracting dimensions don't match: lhs[%d]=%d != rhs[%d]=%d",
				lhsAxis, lhsDim, rhsAxis, rhsDim)
			return
		}
	}

	// Resulting dimensions: batch, lhs cross and rhs cross dimensions.
	dims := slices.Concat(batchDims, removeAxes(lhs.Dimensions, lhsAxes), removeAxes(rhs.Dimensions, rhsAxes))
	return setDType(lhs.WithDimensions(dims...)), nil
}

// checkSquareMatrices checks that the operand is a batch of square matrices (the last two axes).
func checkSquareMatrices(opName, name string, operand shapes.Shape) error {
	if operand.Unranked {
		return nil
	}
	if operand.Rank() < 2 {
		return errorf(IncompatibleShape, "%s: %s must have rank >= 2, got %s", opName, name, operand)
	}
	if !shapes.DimsCompatible(operand.Dim(-1), operand.Dim(-2)) {
		return errorf(IncompatibleShape, "%s: the last two axes of %s must be square, got %s", opName, name, operand)
	}
	return nil
}

// checkFloatOrComplex checks the element type of the operand is a float or complex.
func checkFloatOrComplex(opName, name string, operand shapes.Shape) error {
	dtype := operand.ExpressedDType()
	if !dtype.IsFloat() && !dtype.IsComplex() {
		return errorf(IncompatibleElementType, "%s: %s must be a float or complex, got %s", opName, name, operand)
	}
	return nil
}

// Cholesky returns the shape of the Cholesky decomposition of a batch of square matrices: the operand shape.
func Cholesky(a shapes.Shape) (output shapes.Shape, err error) {
	if err = checkTensor("a", a); err != nil {
		return
	}
	if err = checkFloatOrComplex("Cholesky", "a", a); err != nil {
		return
	}
	if err = checkSquareMatrices("Cholesky", "a", a); err != nil {
		return
	}
	return a.Clone(), nil
}

// TriangularSolve returns the shape of the solution x of a·x = b (leftSide) or x·a = b, where a is a batch of
// square triangular matrices: the shape of b.
func TriangularSolve(a, b shapes.Shape, leftSide bool, transposeA types.TriangularSolveTranspose) (output shapes.Shape, err error) {
	if err = checkTensor("a", a); err != nil {
		return
	}
	if err = checkTensor("b", b); err != nil {
		return
	}
	if !transposeA.IsATriangularSolveTranspose() {
		err = errorf(MalformedAttribute, "TriangularSolve: invalid transpose_a value %d", transposeA)
		return
	}
	if err = checkFloatOrComplex("TriangularSolve", "a", a); err != nil {
		return
	}
	if err = checkSameElementType("a", a, "b", b); err != nil {
		return
	}
	if err = checkSquareMatrices("TriangularSolve", "a", a); err != nil {
		return
	}
	if a.Unranked || b.Unranked {
		return b.Clone(), nil
	}
	if a.Rank() != b.Rank() {
		err = errorf(IncompatibleShape, "TriangularSolve: a %s and b %s must have the same rank", a, b)
		return
	}
	for axis := range a.Rank() - 2 {
		if !shapes.DimsCompatible(a.Dimensions[axis], b.Dimensions[axis]) {
			err = errorf(IncompatibleShape, "TriangularSolve: batch axis %d of a %s and b %s don't match", axis, a, b)
			return
		}
	}
	bAxis := -2
	if !leftSide {
		bAxis = -1
	}
	if !shapes.DimsCompatible(a.Dim(-1), b.Dim(bAxis)) {
		err = errorf(IncompatibleShape, "TriangularSolve: a %s is not compatible with b %s (left_side=%v)", a, b, leftSide)
		return
	}
	return b.Clone(), nil
}

// FFT returns the output shape of the FFT operation: fftLength gives the sizes of the trailing axes transformed.
//
//   - FFTForward and FFTInverse: complex in, same shape out.
//   - FFTForwardReal: float in, complex out, with the last axis of size fftLength[-1]/2+1.
//   - FFTInverseReal: complex in with the last axis of size fftLength[-1]/2+1, float out with the last axis of
//     size fftLength[-1].
func FFT(x shapes.Shape, fftType types.FFTType, fftLength []int) (output shapes.Shape, err error) {
	if err = checkTensor("operand", x); err != nil {
		return
	}

	// Check the FFT lengths are valid and match the input rank.
	if len(fftLength) < 1 || len(fftLength) > 3 {
		return shapes.Invalid(), errorf(AttributeArityMismatch, "FFT: number of FFT lengths (%d) must be between 1 and 3", len(fftLength))
	}
	if x.IsRanked() && len(fftLength) > x.Rank() {
		return shapes.Invalid(), errorf(AttributeArityMismatch, "FFT: number of FFT lengths (%d) cannot exceed input rank (%d)", len(fftLength), x.Rank())
	}
	for ii, length := range fftLength {
		if length < 0 {
			return shapes.Invalid(), errorf(MalformedAttribute, "FFT: fft_length[%d]=%d must be non-negative", ii, length)
		}
	}

	// Check input dtype matches FFT type.
	dtype := x.DType
	switch fftType {
	case types.FFTForward, types.FFTInverse, types.FFTInverseReal:
		if !dtype.IsComplex() {
			return shapes.Invalid(), errorf(IncompatibleElementType, "FFT: %s requires complex input, got %s", fftType.ToStableHLO(), x)
		}
	case types.FFTForwardReal:
		if dtype != dtypes.Float32 && dtype != dtypes.Float64 {
			return shapes.Invalid(), errorf(IncompatibleElementType, "FFT: %s requires Float32 or Float64 input, got %s", fftType.ToStableHLO(), x)
		}
	default:
		return shapes.Invalid(), errorf(MalformedAttribute, "FFT: invalid FFT type %s (%d)", fftType.ToStableHLO(), int(fftType))
	}

	// The trailing axes must match the FFT lengths, except the last axis for FFTInverseReal.
	lastLength := fftLength[len(fftLength)-1]
	expected := slices.Clone(fftLength)
	if fftType == types.FFTInverseReal {
		expected[len(expected)-1] = lastLength/2 + 1
	}
	if x.IsRanked() {
		trailing := x.Dimensions[x.Rank()-len(fftLength):]
		for ii, dim := range trailing {
			if !shapes.DimsCompatible(dim, expected[ii]) {
				return shapes.Invalid(), errorf(IncompatibleShape, "FFT: trailing dimensions %v of %s must match %v (fft_length=%v, type %s)",
					trailing, x, expected, fftLength, fftType.ToStableHLO())
			}
		}
	}

	// Calculate output shape:
	output = x.Clone()
	switch fftType {
	case types.FFTForwardReal:
		output = output.WithDType(complexOf(dtype))
		if output.IsRanked() {
			output.Dimensions[output.Rank()-1] = lastLength/2 + 1
		}
	case types.FFTInverseReal:
		output = output.WithDType(dtype.RealDType())
		if output.IsRanked() {
			output.Dimensions[output.Rank()-1] = lastLength
		}
	}
	return output, nil
}

// complexOf returns the complex type whose components have the given float type.
func complexOf(dtype dtypes.DType) dtypes.DType {
	if dtype == dtypes.Float64 {
		return dtypes.Complex128
	}
	return dtypes.Complex64
}

// checkBatchNormOperand checks the operand and feature index of the batch normalization operations, and
// returns the size of the feature axis.
func checkBatchNormOperand(opName string, operand shapes.Shape, featureIndex int) (int, error) {
	if err := checkTensor("operand", operand); err != nil {
		return 0, err
	}
	if !operand.DType.IsFloat() {
		return 0, errorf(IncompatibleElementType, "%s: operand must be a float, got %s", opName, operand)
	}
	if featureIndex < 0 {
		return 0, errorf(InvalidDimensionMapping, "%s: feature_index %d must be non-negative", opName, featureIndex)
	}
	if operand.Unranked {
		return shapes.DimUnknown, nil
	}
	if featureIndex >= operand.Rank() {
		return 0, errorf(InvalidDimensionMapping, "%s: feature_index %d is out of range for operand %s", opName, featureIndex, operand)
	}
	return operand.Dimensions[featureIndex], nil
}

// checkBatchNormFeatureVectors checks that the given shapes (scale, offset, mean, ...) are 1-D with the size of
// the feature axis and the element type of the operand.
func checkBatchNormFeatureVectors(opName string, operand shapes.Shape, featureSize int, names []string, vectors ...shapes.Shape) error {
	for ii, vector := range vectors {
		if err := checkTensor(names[ii], vector); err != nil {
			return err
		}
		if err := checkSameElementType("operand", operand, names[ii], vector); err != nil {
			return err
		}
		if vector.Unranked {
			continue
		}
		if vector.Rank() != 1 || !shapes.DimsCompatible(vector.Dimensions[0], featureSize) {
			return errorf(IncompatibleShape, "%s: %s must be 1-D with the feature dimension %d, got %s", opName, names[ii], featureSize, vector)
		}
	}
	return nil
}

// featureVector returns the 1-D shape of a feature vector, refining its size from the given vectors.
func featureVector(operand shapes.Shape, featureSize int, vectors ...shapes.Shape) shapes.Shape {
	for _, vector := range vectors {
		if vector.IsRanked() {
			featureSize = shapes.RefineDim(featureSize, vector.Dimensions[0])
		}
	}
	return operand.WithDimensions(featureSize)
}

// BatchNormInference returns the operand shape, after checking the scale, offset, mean and variance.
func BatchNormInference(operand, scale, offset, mean, variance shapes.Shape, featureIndex int) (output shapes.Shape, err error) {
	featureSize, err := checkBatchNormOperand("BatchNormInference", operand, featureIndex)
	if err != nil {
		return
	}
	err = checkBatchNormFeatureVectors("BatchNormInference", operand, featureSize,
		[]string{"scale", "offset", "mean", "variance"}, scale, offset, mean, variance)
	if err != nil {
		return
	}
	return operand.Clone(), nil
}

// BatchNormTraining returns the shapes of the normalized operand, and of the batch mean and variance: 1-D
// vectors with the size of the feature axis.
func BatchNormTraining(operand, scale, offset shapes.Shape, featureIndex int) (outputs []shapes.Shape, err error) {
	featureSize, err := checkBatchNormOperand("BatchNormTraining", operand, featureIndex)
	if err != nil {
		return
	}
	if err = checkBatchNormFeatureVectors("BatchNormTraining", operand, featureSize, []string{"scale", "offset"}, scale, offset); err != nil {
		return
	}
	vector := featureVector(operand, featureSize, scale, offset)
	return []shapes.Shape{operand.Clone(), vector, vector.Clone()}, nil
}

// BatchNormGrad returns the shapes of the gradients with respect to the operand, the scale and the offset.
func BatchNormGrad(operand, scale, mean, variance, gradOutput shapes.Shape, featureIndex int) (outputs []shapes.Shape, err error) {
	featureSize, err := checkBatchNormOperand("BatchNormGrad", operand, featureIndex)
	if err != nil {
		return
	}
	err = checkBatchNormFeatureVectors("BatchNormGrad", operand, featureSize,
		[]string{"scale", "mean", "variance"}, scale, mean, variance)
	if err != nil {
		return
	}
	if err = checkTensor("grad_output", gradOutput); err != nil {
		return
	}
	gradOperand, err := elementwiseShape([]string{"operand", "grad_output"}, operand, gradOutput)
	if err != nil {
		return nil, err
	}
	if err = checkSameElementType("operand", operand, "grad_output", gradOutput); err != nil {
		return
	}
	vector := featureVector(operand, featureSize, scale, mean, variance)
	return []shapes.Shape{gradOperand, vector, vector.Clone()}, nil
}

