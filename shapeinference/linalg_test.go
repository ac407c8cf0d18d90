package shapeinference

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/hloinfer/types"
	"github.com/gomlx/hloinfer/types/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDotGeneral(t *testing.T) {
	lhs := S(F32, 2, 3, 4, 5)
	rhs := S(F32, 5, 1, 2, 3)
	dn := types.DotDimensionNumbers{
		LhsBatchingDims: []int{3, 0}, LhsContractingDims: []int{1},
		RhsBatchingDims: []int{0, 2}, RhsContractingDims: []int{3},
	}
	output, err := DotGeneral(lhs, rhs, dn, dtypes.InvalidDType)
	require.NoError(t, err)
	assert.True(t, S(F32, 5, 2, 4, 1).Equal(output), "got %s", output)

	// Output element type and unknown dimensions.
	output, err = DotGeneral(S(dtypes.BFloat16, 2, 3, 4, DimUnknown), S(dtypes.BFloat16, DimUnknown, 1, 2, 3), dn, F32)
	require.NoError(t, err)
	assert.True(t, S(F32, DimUnknown, 2, 4, 1).Equal(output), "got %s", output)
	output, err = DotGeneral(U(F32), rhs, dn, dtypes.InvalidDType)
	require.NoError(t, err)
	assert.True(t, U(F32).Equal(output), "got %s", output)

	t.Run("Errors", func(t *testing.T) {
		_, err := DotGeneral(lhs, S(F32, 5, 1, 2, 4), dn, dtypes.InvalidDType)
		requireKind(t, err, IncompatibleShape)
		_, err = DotGeneral(lhs, S(F32, 4, 1, 2, 3), dn, dtypes.InvalidDType)
		requireKind(t, err, IncompatibleShape)
		_, err = DotGeneral(lhs, rhs.WithDType(I32), dn, dtypes.InvalidDType)
		requireKind(t, err, IncompatibleElementType)

		bad := dn
		bad.RhsContractingDims = nil
		_, err = DotGeneral(lhs, rhs, bad, dtypes.InvalidDType)
		requireKind(t, err, InvalidDimensionMapping)
		bad = dn
		bad.LhsContractingDims = []int{-1}
		_, err = DotGeneral(lhs, rhs, bad, dtypes.InvalidDType)
		requireKind(t, err, InvalidDimensionMapping)
		bad = dn
		bad.LhsContractingDims = []int{0}
		_, err = DotGeneral(lhs, rhs, bad, dtypes.InvalidDType)
		requireKind(t, err, InvalidDimensionMapping)
	})
}

func TestVerifyDotGeneralAlgorithm(t *testing.T) {
	highest := [2]types.DotGeneralPrecisionType{types.DotGeneralPrecisionHighest, types.DotGeneralPrecisionDefault}
	require.NoError(t, VerifyDotGeneralAlgorithm(highest, nil))
	algorithm := &types.DotGeneralAlgorithm{
		LhsPrecisionType:  types.FloatPrecisionType{TF32: true},
		RhsPrecisionType:  types.FloatPrecisionType{TF32: true},
		AccumulationType:  types.FloatPrecisionType{DType: F32},
		LhsComponentCount: 1, RhsComponentCount: 1, NumPrimitiveOperations: 1,
	}
	require.NoError(t, VerifyDotGeneralAlgorithm(highest, algorithm))

	err := VerifyDotGeneralAlgorithm([2]types.DotGeneralPrecisionType{0, 5}, nil)
	requireKind(t, err, MalformedAttribute)
	bad := *algorithm
	bad.AccumulationType = types.FloatPrecisionType{DType: I32}
	err = VerifyDotGeneralAlgorithm(highest, &bad)
	requireKind(t, err, MalformedAttribute)
	assert.ErrorContains(t, err, "DotGeneral(precision_config=[HIGHEST, DEFAULT]): algorithm accumulation_type")
	assert.ErrorContains(t, err, "got i32")
	bad = *algorithm
	bad.NumPrimitiveOperations = 0
	requireKind(t, VerifyDotGeneralAlgorithm(highest, &bad), MalformedAttribute)
}

func TestDot(t *testing.T) {
	testCases := []struct {
		name          string
		lhs, rhs      shapes.Shape
		expectedShape shapes.Shape
	}{
		{"MatMul", S(F32, 3, 4), S(F32, 4, 5), S(F32, 3, 5)},
		{"VectorVector", S(F32, 4), S(F32, 4), S(F32)},
		{"VectorMatrix", S(F32, 4), S(F32, 4, 5), S(F32, 5)},
		{"MatrixVector", S(F32, 3, 4), S(F32, 4), S(F32, 3)},
		{"Unknown", S(F32, DimUnknown, 4), S(F32, DimUnknown, 5), S(F32, DimUnknown, 5)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			output, err := Dot(tc.lhs, tc.rhs, dtypes.InvalidDType)
			require.NoError(t, err)
			assert.True(t, tc.expectedShape.Equal(output), "expected %s, got %s", tc.expectedShape, output)
		})
	}

	_, err := Dot(S(F32, 2, 3, 4), S(F32, 4), dtypes.InvalidDType)
	requireKind(t, err, IncompatibleShape)
	_, err = Dot(S(F32, 3, 4), S(F32, 3, 5), dtypes.InvalidDType)
	requireKind(t, err, IncompatibleShape)
}

func TestCholeskyAndTriangularSolve(t *testing.T) {
	a := S(F32, 2, 3, 3)
	assert.True(t, a.Equal(must1(Cholesky(a))))
	assert.True(t, U(F32).Equal(must1(Cholesky(U(F32)))))
	_, err := Cholesky(S(F32, 3, 4))
	requireKind(t, err, IncompatibleShape)
	_, err = Cholesky(S(F32, 3))
	requireKind(t, err, IncompatibleShape)
	_, err = Cholesky(S(I32, 3, 3))
	requireKind(t, err, IncompatibleElementType)

	b := S(F32, 2, 3, 5)
	assert.True(t, b.Equal(must1(TriangularSolve(a, b, true, types.TransposeNoTranspose))))
	b = S(F32, 2, 5, 3)
	assert.True(t, b.Equal(must1(TriangularSolve(a, b, false, types.TransposeAdjoint))))
	_, err = TriangularSolve(a, b, true, types.TransposeTranspose)
	requireKind(t, err, IncompatibleShape)
	_, err = TriangularSolve(a, S(F32, 3, 5), true, types.TransposeNoTranspose)
	requireKind(t, err, IncompatibleShape)
	_, err = TriangularSolve(a, S(F32, 4, 3, 5), true, types.TransposeNoTranspose)
	requireKind(t, err, IncompatibleShape)
	_, err = TriangularSolve(a, S(F32, 2, 3, 5), true, types.TriangularSolveTranspose(7))
	requireKind(t, err, MalformedAttribute)
	_, err = TriangularSolve(a, S(dtypes.Float64, 2, 3, 5), true, types.TransposeNoTranspose)
	requireKind(t, err, IncompatibleElementType)
}

func TestFFT(t *testing.T) {
	c64 := dtypes.Complex64
	testCases := []struct {
		name          string
		operand       shapes.Shape
		fftType       types.FFTType
		fftLength     []int
		expectedShape shapes.Shape
	}{
		{"Forward", S(c64, 4, 8), types.FFTForward, []int{8}, S(c64, 4, 8)},
		{"Inverse2D", S(c64, 4, 8), types.FFTInverse, []int{4, 8}, S(c64, 4, 8)},
		{"ForwardReal", S(F32, 4, 8), types.FFTForwardReal, []int{8}, S(c64, 4, 5)},
		{"ForwardRealFloat64", S(dtypes.Float64, 9), types.FFTForwardReal, []int{9}, S(dtypes.Complex128, 5)},
		{"InverseReal", S(c64, 4, 5), types.FFTInverseReal, []int{8}, S(F32, 4, 8)},
		{"InverseRealOdd", S(c64, 5), types.FFTInverseReal, []int{9}, S(F32, 9)},
		{"UnknownDimension", S(F32, DimUnknown, DimUnknown), types.FFTForwardReal, []int{8}, S(c64, DimUnknown, 5)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			output, err := FFT(tc.operand, tc.fftType, tc.fftLength)
			require.NoError(t, err)
			assert.True(t, tc.expectedShape.Equal(output), "expected %s, got %s", tc.expectedShape, output)
		})
	}

	t.Run("Errors", func(t *testing.T) {
		_, err := FFT(S(F32, 8), types.FFTForward, []int{8})
		requireKind(t, err, IncompatibleElementType)
		assert.ErrorContains(t, err, "FFT: FFT requires complex input")
		_, err = FFT(S(c64, 8), types.FFTForwardReal, []int{8})
		requireKind(t, err, IncompatibleElementType)
		assert.ErrorContains(t, err, "FFT: RFFT requires Float32 or Float64")
		_, err = FFT(S(c64, 8), types.FFTForward, nil)
		requireKind(t, err, AttributeArityMismatch)
		_, err = FFT(S(c64, 8), types.FFTForward, []int{2, 8})
		requireKind(t, err, AttributeArityMismatch)
		_, err = FFT(S(c64, 8), types.FFTForward, []int{7})
		requireKind(t, err, IncompatibleShape)
		_, err = FFT(S(c64, 8), types.FFTInverseReal, []int{8})
		requireKind(t, err, IncompatibleShape)
		_, err = FFT(S(c64, 8), types.FFTType(9), []int{8})
		requireKind(t, err, MalformedAttribute)
		assert.ErrorContains(t, err, "FFT_UNKNOWN_TYPE")
	})
}

func TestBatchNorm(t *testing.T) {
	operand := S(F32, 2, 3, 4)
	vector := S(F32, 3)
	output, err := BatchNormInference(operand, vector, vector, vector, vector, 1)
	require.NoError(t, err)
	assert.True(t, operand.Equal(output))

	outputs, err := BatchNormTraining(S(F32, 2, DimUnknown, 4), vector, U(F32), 1)
	require.NoError(t, err)
	require.Len(t, outputs, 3)
	assert.True(t, S(F32, 2, DimUnknown, 4).Equal(outputs[0]), "got %s", outputs[0])
	assert.True(t, vector.Equal(outputs[1]), "got %s", outputs[1])
	assert.True(t, vector.Equal(outputs[2]), "got %s", outputs[2])

	outputs, err = BatchNormGrad(S(F32, 2, 3, DimUnknown), vector, vector, vector, S(F32, 2, 3, 4), 1)
	require.NoError(t, err)
	require.Len(t, outputs, 3)
	assert.True(t, S(F32, 2, 3, 4).Equal(outputs[0]), "got %s", outputs[0])
	assert.True(t, vector.Equal(outputs[1]), "got %s", outputs[1])

	_, err = BatchNormInference(operand, S(F32, 4), vector, vector, vector, 1)
	requireKind(t, err, IncompatibleShape)
	_, err = BatchNormInference(operand, vector, vector, vector, S(dtypes.Float64, 3), 1)
	requireKind(t, err, IncompatibleElementType)
	_, err = BatchNormTraining(operand, vector, vector, 3)
	requireKind(t, err, InvalidDimensionMapping)
	_, err = BatchNormTraining(S(I32, 2, 3), S(I32, 3), S(I32, 3), 1)
	requireKind(t, err, IncompatibleElementType)
	_, err = BatchNormGrad(operand, vector, vector, vector, S(F32, 2, 3, 5), 1)
	requireKind(t, err, IncompatibleShape)
}
