package types

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnums(t *testing.T) {
	assert.Equal(t, "#stablehlo<comparison_direction GE>", CompareGE.ToStableHLO())
	assert.Equal(t, "#stablehlo<comparison_type TOTALORDER>", CompareTotalOrder.ToStableHLO())
	assert.Equal(t, "HIGHEST", DotGeneralPrecisionHighest.ToStableHLO())
	assert.Equal(t, "three_fry", RNGThreeFry.String())
	assert.Equal(t, "cross_partition", CrossPartition.String())
	assert.Equal(t, "no_transpose", TransposeNoTranspose.String())
	assert.Equal(t, "IRFFT", FFTInverseReal.ToStableHLO())

	dir, err := ComparisonDirectionString("lt")
	require.NoError(t, err)
	assert.Equal(t, CompareLT, dir)
	_, err = ComparisonDirectionString("XX")
	require.Error(t, err)

	assert.Equal(t, "bf16", FloatPrecisionType{DType: dtypes.BFloat16}.ToStableHLO())
	assert.Equal(t, "tf32", FloatPrecisionType{TF32: true}.ToStableHLO())
}

func TestClone(t *testing.T) {
	conv := ConvolveAxesConfig{InputSpatial: []int{1, 2}, KernelSpatial: []int{0, 1}, OutputSpatial: []int{1, 2}}
	conv2 := conv.Clone()
	conv2.InputSpatial[0] = 7
	assert.Equal(t, 1, conv.InputSpatial[0])
	assert.Equal(t, 2, conv.SpatialRank())

	gather := GatherDimensionNumbers{OffsetDims: []int{1}, StartIndexMap: []int{0, 1}, IndexVectorDim: 1}
	gather2 := gather.Clone()
	gather2.StartIndexMap[1] = 5
	assert.Equal(t, []int{0, 1}, gather.StartIndexMap)
	assert.Equal(t, 1, gather2.IndexVectorDim)
}
