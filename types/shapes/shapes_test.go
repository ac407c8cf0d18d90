package shapes

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	invalidShape := Invalid()
	assert.False(t, invalidShape.Ok())

	shape0 := Make(dtypes.Float64)
	assert.True(t, shape0.Ok())
	assert.True(t, shape0.IsScalar())
	assert.False(t, shape0.IsTuple())
	assert.Equal(t, 0, shape0.Rank())
	assert.Equal(t, 1, shape0.Size())

	shape1 := Make(dtypes.Float32, 4, 3, 2)
	assert.False(t, shape1.IsScalar())
	assert.Equal(t, 3, shape1.Rank())
	assert.Equal(t, 4*3*2, shape1.Size())
	assert.True(t, shape1.IsStatic())

	dynamic := Make(dtypes.Float32, DimUnknown, 3)
	assert.False(t, dynamic.IsStatic())
	assert.True(t, dynamic.IsDynamicDim(0))
	assert.Equal(t, DimUnknown, dynamic.Size())

	unranked := MakeUnranked(dtypes.Int32)
	assert.True(t, unranked.Ok())
	assert.False(t, unranked.IsRanked())
	assert.False(t, unranked.IsScalar())
	assert.Equal(t, DimUnknown, unranked.Rank())

	require.Panics(t, func() { _ = Make(dtypes.Float32, -2) })
}

func TestDim(t *testing.T) {
	shape := Make(dtypes.Float32, 4, 3, 2)
	assert.Equal(t, 4, shape.Dim(0))
	assert.Equal(t, 2, shape.Dim(2))
	assert.Equal(t, 4, shape.Dim(-3))
	assert.Equal(t, 2, shape.Dim(-1))
	assert.Panics(t, func() { _ = shape.Dim(3) })
	assert.Panics(t, func() { _ = shape.Dim(-4) })
	assert.Panics(t, func() { _ = MakeUnranked(dtypes.Float32).Dim(0) })
}

func TestEqual(t *testing.T) {
	assert.True(t, Make(dtypes.Float32, 2, 3).Equal(Make(dtypes.Float32, 2, 3)))
	assert.False(t, Make(dtypes.Float32, 2, 3).Equal(Make(dtypes.Float64, 2, 3)))
	assert.False(t, Make(dtypes.Float32, 2, 3).Equal(Make(dtypes.Float32, 2, DimUnknown)))
	assert.True(t, Make(dtypes.Float32).Equal(Make(dtypes.Float32)))
	assert.True(t, Token().Equal(Token()))
	assert.False(t, Token().Equal(Make(dtypes.Float32)))

	tuple := MakeTuple(Make(dtypes.Float32, 2), Token())
	assert.True(t, tuple.Equal(MakeTuple(Make(dtypes.Float32, 2), Token())))
	assert.False(t, tuple.Equal(MakeTuple(Make(dtypes.Float32, 2))))
	assert.True(t, MakeTuple().IsTuple())

	q := &Quantization{StorageType: dtypes.Int8, ExpressedType: dtypes.Float32, Scales: []float64{0.5}, ZeroPoints: []int64{0}, QuantizedAxis: -1}
	qShape := Make(dtypes.Int8, 3)
	qShape.Quantization = q
	assert.False(t, qShape.Equal(Make(dtypes.Int8, 3)))
	assert.True(t, qShape.Equal(qShape.Clone()))
}

func TestCompatible(t *testing.T) {
	tests := []struct {
		name       string
		a, b       Shape
		relaxed    bool
		compatible bool
	}{
		{"exact match", Make(dtypes.Float32, 1, 2, 3), Make(dtypes.Float32, 1, 2, 3), false, true},
		{"dynamic matches static", Make(dtypes.Float32, DimUnknown, 2, DimUnknown), Make(dtypes.Float32, 1, 2, 3), false, true},
		{"incompatible static", Make(dtypes.Float32, 1, 2, 3), Make(dtypes.Float32, 1, 5, 3), false, false},
		{"different dtypes", Make(dtypes.Float32, 2), Make(dtypes.Float64, 2), false, false},
		{"relaxed float precision", Make(dtypes.Float32, 2), Make(dtypes.Float64, 2), true, true},
		{"relaxed does not cross float/int", Make(dtypes.Float32, 2), Make(dtypes.Int32, 2), true, false},
		{"relaxed complex", Make(dtypes.Complex64, 2), Make(dtypes.Complex128, 2), true, true},
		{"different ranks", Make(dtypes.Float32, 1, 2), Make(dtypes.Float32, 1, 2, 3), false, false},
		{"unranked vs ranked", MakeUnranked(dtypes.Float32), Make(dtypes.Float32, 1, 2, 3), false, true},
		{"token vs tensor", Token(), Make(dtypes.Float32), false, false},
		{"tuples", MakeTuple(Make(dtypes.Int32, DimUnknown)), MakeTuple(Make(dtypes.Int32, 4)), false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.compatible, Compatible(tt.a, tt.b, tt.relaxed))
			assert.Equal(t, tt.compatible, Compatible(tt.b, tt.a, tt.relaxed), "Compatible must be symmetric")
		})
	}
}

func TestRefine(t *testing.T) {
	refined, err := Refine(Make(dtypes.Float32, DimUnknown, 3), Make(dtypes.Float32, 2, DimUnknown))
	require.NoError(t, err)
	assert.True(t, refined.Equal(Make(dtypes.Float32, 2, 3)), "got %s", refined)

	refined, err = Refine(MakeUnranked(dtypes.Float32), Make(dtypes.Float32, 2, DimUnknown))
	require.NoError(t, err)
	assert.True(t, refined.Equal(Make(dtypes.Float32, 2, DimUnknown)), "got %s", refined)

	refined, err = Refine(MakeTuple(Make(dtypes.Int32, DimUnknown), Token()), MakeTuple(Make(dtypes.Int32, 7), Token()))
	require.NoError(t, err)
	assert.True(t, refined.Equal(MakeTuple(Make(dtypes.Int32, 7), Token())), "got %s", refined)

	_, err = Refine(Make(dtypes.Float32, 2), Make(dtypes.Float32, 3))
	require.Error(t, err)
	_, err = Refine(Make(dtypes.Float32, 2), Make(dtypes.Float32, 2, 1))
	require.Error(t, err)
}

func TestToStableHLO(t *testing.T) {
	assert.Equal(t, "tensor<1x10xf32>", Make(dtypes.Float32, 1, 10).ToStableHLO())
	assert.Equal(t, "tensor<i32>", Make(dtypes.Int32).ToStableHLO())
	assert.Equal(t, "tensor<?x3xbf16>", Make(dtypes.BFloat16, DimUnknown, 3).ToStableHLO())
	assert.Equal(t, "tensor<*xi1>", MakeUnranked(dtypes.Bool).ToStableHLO())
	assert.Equal(t, "tuple<tensor<ui8>, !stablehlo.token>", MakeTuple(Make(dtypes.Uint8), Token()).ToStableHLO())

	qShape := Make(dtypes.Int8, 2)
	qShape.Quantization = &Quantization{StorageType: dtypes.Int8, ExpressedType: dtypes.Float32,
		Scales: []float64{0.5}, ZeroPoints: []int64{-3}, QuantizedAxis: -1}
	assert.Equal(t, "tensor<2x!quant.uniform<i8:f32, 0.5:-3>>", qShape.ToStableHLO())
}

func TestFromAnyValue(t *testing.T) {
	shape, err := FromAnyValue([]int32{1, 2, 3})
	require.NoError(t, err)
	assert.True(t, shape.Equal(Make(dtypes.Int32, 3)), "got %s", shape)

	shape, err = FromAnyValue([][][]complex64{{{1, 2, -3}, {3, 4 + 2i, -7 - 1i}}})
	require.NoError(t, err)
	assert.True(t, shape.Equal(Make(dtypes.Complex64, 1, 2, 3)), "got %s", shape)

	shape, err = FromAnyValue([][]int64{})
	require.NoError(t, err)
	assert.True(t, shape.Equal(Make(dtypes.Int64, 0, 0)), "got %s", shape)

	shape, err = FromAnyValue(true)
	require.NoError(t, err)
	assert.True(t, shape.IsScalar())

	// Irregular shape is not accepted:
	_, err = FromAnyValue([][]float32{{1, 2, 3}, {4, 5}})
	require.Error(t, err)
	_, err = FromAnyValue("text")
	require.Error(t, err)
}
