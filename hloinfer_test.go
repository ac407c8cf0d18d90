package hloinfer

import (
	"fmt"
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/hloinfer/attributes"
	"github.com/gomlx/hloinfer/internal/optypes"
	"github.com/gomlx/hloinfer/shapeinference"
	"github.com/gomlx/hloinfer/types"
	"github.com/gomlx/hloinfer/types/mesh"
	"github.com/gomlx/hloinfer/types/shapes"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// Aliases
var (
	Bool = dtypes.Bool
	I8   = dtypes.Int8
	I32  = dtypes.Int32
	F32  = dtypes.Float32
	U64  = dtypes.Uint64

	DimUnknown = shapes.DimUnknown

	S = shapes.Make
	U = shapes.MakeUnranked
)

func scalarReducer(dtypesList ...dtypes.DType) shapeinference.Body {
	var body shapeinference.Body
	for range 2 {
		for _, dtype := range dtypesList {
			body.Params = append(body.Params, S(dtype))
		}
	}
	for _, dtype := range dtypesList {
		body.Results = append(body.Results, S(dtype))
	}
	return body
}

func quantizedI8(dims ...int) shapes.Shape {
	shape := S(I8, dims...)
	shape.Quantization = &shapes.Quantization{
		StorageType:   I8,
		ExpressedType: F32,
		Scales:        []float64{0.5},
		ZeroPoints:    []int64{0},
		QuantizedAxis: -1,
	}
	return shape
}

// exampleOps returns one well-formed operation per non-elementwise operation type, along with the expected
// shape of its first output.
func exampleOps() []struct {
	op       Op
	expected shapes.Shape
} {
	groups := attributes.MustFromValue([][]int64{{0, 1}, {2, 3}})
	token := shapes.Token()
	loopOperands := []shapes.Shape{S(I32), S(F32, 3, 4)}
	convAxes := types.ConvolveAxesConfig{
		InputBatch: 0, InputChannels: 1, InputSpatial: []int{2},
		KernelInputChannels: 0, KernelOutputChannels: 1, KernelSpatial: []int{2},
		OutputBatch: 0, OutputChannels: 1, OutputSpatial: []int{2},
	}
	scatterDN := types.ScatterDimensionNumbers{
		UpdateWindowDims: []int{1}, InsertedWindowDims: []int{0}, ScatterDimsToOperandDims: []int{0}, IndexVectorDim: 1,
	}
	rowsDN := types.GatherDimensionNumbers{
		OffsetDims: []int{1}, CollapsedSliceDims: []int{0}, StartIndexMap: []int{0}, IndexVectorDim: 1,
	}
	return []struct {
		op       Op
		expected shapes.Shape
	}{
		{&Compare{Lhs: S(F32, 2), Rhs: S(F32, 2), Direction: types.CompareLT, CompareType: types.CompareFloat}, S(Bool, 2)},
		{&Complex{Real: S(F32, 3), Imag: S(F32, 3)}, S(dtypes.Complex64, 3)},
		{&Select{Pred: S(Bool), OnTrue: S(F32, 2, 3), OnFalse: S(F32, 2, DimUnknown)}, S(F32, 2, 3)},
		{&Clamp{Min: S(F32), Operand: S(F32, 4, 5), Max: S(F32, 4, 5)}, S(F32, 4, 5)},
		{&Convert{Operand: S(F32, 2, 2), DType: I32}, S(I32, 2, 2)},
		{&BitcastConvert{Operand: S(F32, 3), DType: dtypes.Uint8}, S(dtypes.Uint8, 3, 4)},
		{&ReducePrecision{Operand: S(F32, 2), ExponentBits: 5, MantissaBits: 10}, S(F32, 2)},
		{&Map{
			Inputs:     []shapes.Shape{S(F32, 2, 3), S(F32, 2, 3)},
			Body:       scalarReducer(F32),
			Dimensions: []int{0, 1},
		}, S(F32, 2, 3)},

		{&Broadcast{Operand: S(F32, 4), BroadcastSizes: []int{2, 3}}, S(F32, 2, 3, 4)},
		{&BroadcastInDim{Operand: S(F32, 3, 1), Result: S(F32, 2, 3, 4), BroadcastDimensions: []int{1, 2}}, S(F32, 2, 3, 4)},
		{&DynamicBroadcastInDim{
			Operand: S(F32, 1, 4), OutputDimensions: S(I32, 3), Result: S(F32, DimUnknown, 5, 4),
			BroadcastDimensions: []int{0, 2}, KnownExpandingDims: []int{0}, KnownNonExpandingDims: []int{1},
		}, S(F32, DimUnknown, 5, 4)},
		{&Concatenate{Inputs: []shapes.Shape{S(F32, 2, 3), S(F32, 4, 3)}, Axis: 0}, S(F32, 6, 3)},
		{&Transpose{Operand: S(F32, 2, 3, 4), Permutation: []int{2, 0, 1}}, S(F32, 4, 2, 3)},
		{&Reshape{Operand: S(F32, 2, 3, 4), Dimensions: []int{6, 4}}, S(F32, 6, 4)},
		{&DynamicReshape{Operand: S(F32, 2, 3), OutputShape: S(I32, 2), Result: S(F32, 3, DimUnknown)}, S(F32, 3, DimUnknown)},
		{&Pad{
			Operand: S(F32, 3, 4), PaddingValue: S(F32),
			EdgePaddingLow: []int{1, 0}, EdgePaddingHigh: []int{0, 2}, InteriorPadding: []int{1, 1},
		}, S(F32, 6, 9)},
		{&Slice{Operand: S(I32, 5, 6), StartIndices: []int{1, 2}, LimitIndices: []int{4, 5}, Strides: []int{1, 1}}, S(I32, 3, 3)},
		{&Reverse{Operand: S(F32, 2, 3), Dimensions: []int{0, 1}}, S(F32, 2, 3)},
		{&Iota{Result: S(F32, 2, 3), IotaDimension: 1}, S(F32, 2, 3)},
		{&GetDimensionSize{Operand: S(F32, 2, 3), Dimension: 1}, S(I32)},
		{&Tuple{Elements: []shapes.Shape{S(F32, 2), token}}, shapes.MakeTuple(S(F32, 2), token)},
		{&GetTupleElement{Tuple: shapes.MakeTuple(S(F32, 2), token), Index: 0}, S(F32, 2)},
		{&OptimizationBarrier{Operands: []shapes.Shape{S(F32, 2), token}}, S(F32, 2)},

		{&Convolution{
			Input: S(F32, 2, 3, 5), Kernel: S(F32, 3, 4, 2),
			Window: shapeinference.WindowAttributes{
				WindowStrides: attributes.MustFromValue([]int64{2}),
				Padding:       attributes.MustFromValue([][]int64{{0, 1}}),
			},
			AxesConfig:        convAxes,
			FeatureGroupCount: 1, BatchGroupCount: 1,
		}, S(F32, 2, 4, 3)},
		{&ReduceWindow{
			Inputs: []shapes.Shape{S(F32, 4, 6)}, InitValues: []shapes.Shape{S(F32)},
			Body: scalarReducer(F32),
			Window: shapeinference.WindowAttributes{
				WindowDimensions: attributes.MustFromValue([]int64{2, 2}),
				WindowStrides:    attributes.MustFromValue([]int64{2, 2}),
			},
		}, S(F32, 2, 3)},
		{&SelectAndScatter{
			Operand: S(F32, 4, 6), Source: S(F32, 2, 3), InitValue: S(F32),
			SelectBody:  shapeinference.Body{Params: []shapes.Shape{S(F32), S(F32)}, Results: []shapes.Shape{S(Bool)}},
			ScatterBody: scalarReducer(F32),
			Window: shapeinference.WindowAttributes{
				WindowDimensions: attributes.MustFromValue([]int64{2, 2}),
				WindowStrides:    attributes.MustFromValue([]int64{2, 2}),
			},
		}, S(F32, 4, 6)},

		{&Dot{Lhs: S(F32, 3, 4), Rhs: S(F32, 4, 5)}, S(F32, 3, 5)},
		{&DotGeneral{
			Lhs: S(F32, 2, 3, 4), Rhs: S(F32, 2, 4, 5),
			DimensionNumbers: types.DotDimensionNumbers{
				LhsBatchingDims: []int{0}, RhsBatchingDims: []int{0},
				LhsContractingDims: []int{2}, RhsContractingDims: []int{1},
			},
		}, S(F32, 2, 3, 5)},
		{&Cholesky{A: S(F32, 2, 3, 3)}, S(F32, 2, 3, 3)},
		{&TriangularSolve{A: S(F32, 2, 3, 3), B: S(F32, 2, 3, 5), LeftSide: true, TransposeA: types.TransposeNoTranspose}, S(F32, 2, 3, 5)},
		{&FFT{X: S(F32, 4, 8), FFTType: types.FFTForwardReal, Length: []int{8}}, S(dtypes.Complex64, 4, 5)},
		{&BatchNormInference{
			Operand: S(F32, 2, 3, 4), Scale: S(F32, 3), Offset: S(F32, 3), Mean: S(F32, 3), Variance: S(F32, 3),
			FeatureIndex: 1,
		}, S(F32, 2, 3, 4)},
		{&BatchNormTraining{Operand: S(F32, 2, 3, 4), Scale: S(F32, 3), Offset: S(F32, 3), FeatureIndex: 1}, S(F32, 2, 3, 4)},
		{&BatchNormGrad{
			Operand: S(F32, 2, 3, 4), Scale: S(F32, 3), Mean: S(F32, 3), Variance: S(F32, 3), GradOutput: S(F32, 2, 3, 4),
			FeatureIndex: 1,
		}, S(F32, 2, 3, 4)},

		{&Reduce{
			Inputs: []shapes.Shape{S(F32, 2, 3, 4)}, InitValues: []shapes.Shape{S(F32)},
			Body: scalarReducer(F32), Dimensions: []int{1},
		}, S(F32, 2, 4)},
		{&Sort{
			Inputs:     []shapes.Shape{S(F32, 3, 5)},
			Dimension:  -1,
			Comparator: shapeinference.Body{Params: []shapes.Shape{S(F32), S(F32)}, Results: []shapes.Shape{S(Bool)}},
		}, S(F32, 3, 5)},

		{&Gather{
			Operand: S(F32, 4, 3, 2, 2), StartIndices: S(I8, 3, 3, 2),
			DimensionNumbers: types.GatherDimensionNumbers{
				OffsetDims: []int{0, 3}, CollapsedSliceDims: []int{0, 2}, StartIndexMap: []int{0, 2, 3}, IndexVectorDim: 1,
			},
			SliceSizes: []int{1, 3, 1, 1},
		}, S(F32, 3, 3, 2, 1)},
		{&DynamicGather{Operand: S(F32, 8, 16), StartIndices: S(I32, 8, 1), SliceSizes: S(I32, 2), DimensionNumbers: rowsDN},
			S(F32, 8, DimUnknown)},
		{&Scatter{
			Inputs: []shapes.Shape{S(F32, 4, 5)}, ScatterIndices: S(I8, 2, 1), Updates: []shapes.Shape{S(F32, 2, 5)},
			DimensionNumbers: scatterDN, Body: scalarReducer(F32),
		}, S(F32, 4, 5)},
		{&DynamicSlice{Operand: S(F32, 10, 8), StartIndices: []shapes.Shape{S(I32), S(I32)}, SliceSizes: []int{3, 4}}, S(F32, 3, 4)},
		{&DynamicUpdateSlice{Operand: S(F32, 10, 8), Update: S(F32, 3, 8), StartIndices: []shapes.Shape{S(I32), S(I32)}}, S(F32, 10, 8)},
		{&RealDynamicSlice{Operand: S(F32, 4, 5), StartIndices: S(I32, 2), LimitIndices: S(I32, 2), Strides: S(I32, 2)},
			S(F32, DimUnknown, DimUnknown)},

		{&AllGather{Operands: []shapes.Shape{S(F32, 2, 4)}, AllGatherDim: 1, ReplicaGroups: groups}, S(F32, 2, 8)},
		{&AllReduce{Operands: []shapes.Shape{S(F32, 4)}, Computation: scalarReducer(F32), ReplicaGroups: groups}, S(F32, 4)},
		{&AllToAll{Operands: []shapes.Shape{S(F32, 2, 4)}, SplitDimension: 1, ConcatDimension: 0, SplitCount: 2, ReplicaGroups: groups},
			S(F32, 4, 2)},
		{&ReduceScatter{Operand: S(F32, 8, 3), ScatterDimension: 0, Computation: scalarReducer(F32), ReplicaGroups: groups},
			S(F32, 4, 3)},
		{&CollectivePermute{Operand: S(F32, 2, 3), SourceTargetPairs: attributes.MustFromValue([][]int64{{0, 1}, {1, 0}})},
			S(F32, 2, 3)},
		{&CollectiveBroadcast{Operand: S(F32, 2, 3), ReplicaGroups: groups}, S(F32, 2, 3)},
		{&ReplicaId{}, S(dtypes.Uint32)},
		{&PartitionId{}, S(dtypes.Uint32)},

		{&If{Pred: S(Bool), Branches: [][]shapes.Shape{{S(F32, 2, DimUnknown)}, {S(F32, DimUnknown, 3)}}}, S(F32, 2, 3)},
		{&Case{Index: S(I32), Branches: [][]shapes.Shape{{S(F32, 2)}, {S(F32, 2)}, {U(F32)}}}, S(F32, 2)},
		{&While{
			Operands: loopOperands,
			Cond:     shapeinference.Body{Params: loopOperands, Results: []shapes.Shape{S(Bool)}},
			Body:     shapeinference.Body{Params: loopOperands, Results: loopOperands},
		}, S(I32)},
		{&Return{Operands: []shapes.Shape{S(F32, 3, 4)}, Expected: []shapes.Shape{S(F32, DimUnknown, 4)}}, S(F32, 3, 4)},
		{&AfterAll{Inputs: []shapes.Shape{token, token}}, token},
		{&CreateToken{}, token},
		{&Send{Inputs: []shapes.Shape{S(F32, 2)}, Token: token}, token},
		{&Recv{Token: token, Results: []shapes.Shape{S(F32, 2)}}, S(F32, 2)},
		{&Infeed{Token: token, Results: []shapes.Shape{S(I32)}}, S(I32)},
		{&Outfeed{Inputs: []shapes.Shape{S(F32, 2)}, Token: token}, token},
		{&UniformQuantize{Operand: S(F32, 2, 3), Result: quantizedI8(2, 3)}, quantizedI8(2, 3)},
		{&UniformDequantize{Operand: quantizedI8(2, DimUnknown)}, S(F32, 2, DimUnknown)},
		{&Rng{A: S(F32), B: S(F32), Shape: S(I32, 2), Distribution: types.RNGUniform}, S(F32, DimUnknown, DimUnknown)},
		{&RngBitGenerator{Algorithm: types.RNGThreeFry, InitialState: S(U64, 2), Output: S(F32, 3, 4)}, S(U64, 2)},
		{&Constant{Value: attributes.MustFromValue([][]float32{{1, 2, 3}, {4, 5, 6}})}, S(F32, 2, 3)},
	}
}

// elementwiseOps returns one well-formed Unary or Binary operation for each of the standard elementwise types.
func elementwiseOps() []Op {
	var ops []Op
	for _, opType := range OpTypes() {
		dtype := F32
		if shapeinference.BitwiseOperations.Has(opType) || shapeinference.BooleanOrBitwiseOperations.Has(opType) {
			dtype = I32
		}
		switch {
		case shapeinference.StandardUnaryOperations.Has(opType):
			ops = append(ops, &Unary{OpType: opType, Operand: S(dtype, 2, 3)})
		case shapeinference.StandardBinaryOperations.Has(opType):
			ops = append(ops, &Binary{OpType: opType, Lhs: S(dtype, 2, DimUnknown), Rhs: S(dtype, DimUnknown, 3)})
		}
	}
	return ops
}

func TestInferAllOpTypes(t *testing.T) {
	covered := make(map[OpType]bool)
	for _, example := range exampleOps() {
		opType := example.op.Type()
		t.Run(opType.String(), func(t *testing.T) {
			outputs, err := Infer(example.op)
			require.NoError(t, err)
			require.NotEmpty(t, outputs)
			assert.True(t, example.expected.Equal(outputs[0]), "expected %s, got %s", example.expected, outputs[0])
		})
		covered[opType] = true
	}
	for _, op := range elementwiseOps() {
		outputs, err := Infer(op)
		require.NoErrorf(t, err, "op %s", op.Type())
		require.Len(t, outputs, 1)
		assert.Equal(t, []int{2, 3}, outputs[0].Dimensions, "op %s", op.Type())
		covered[op.Type()] = true
	}
	for _, opType := range OpTypes() {
		assert.Truef(t, covered[opType], "operation %s has no example", opType)
	}
}

func TestOpTypes(t *testing.T) {
	opTypes := OpTypes()
	require.Len(t, opTypes, int(optypes.Last)-1)
	assert.NotContains(t, opTypes, optypes.Invalid)
	assert.NotContains(t, opTypes, optypes.Last)

	opType, err := OpTypeByName("DotGeneral")
	require.NoError(t, err)
	assert.Equal(t, optypes.DotGeneral, opType)
	assert.Equal(t, "stablehlo.dot_general", opType.ToStableHLO())
	_, err = OpTypeByName("Last")
	require.Error(t, err)
	_, err = OpTypeByName("NoSuchOp")
	require.Error(t, err)
}

func TestStableHLOTypes(t *testing.T) {
	outputs := must.M1(Infer(&Recv{Token: shapes.Token(), Results: []shapes.Shape{S(F32, 2, DimUnknown)}}))
	assert.Equal(t, "tensor<2x?xf32>, !stablehlo.token", stableHLOTypes(outputs))
}

func TestInferOne(t *testing.T) {
	output := must.M1(InferOne(&Transpose{Operand: S(F32, 2, 3), Permutation: []int{1, 0}}))
	assert.True(t, S(F32, 3, 2).Equal(output), "got %s", output)

	_, err := InferOne(&BatchNormTraining{Operand: S(F32, 2, 3), Scale: S(F32, 3), Offset: S(F32, 3), FeatureIndex: 1})
	require.Error(t, err)
	_, err = InferOne(&Transpose{Operand: S(F32, 2, 3), Permutation: []int{0, 0}})
	require.True(t, shapeinference.IsKind(err, shapeinference.InvalidDimensionMapping))
}

func TestErrorAnnotation(t *testing.T) {
	_, err := Infer(&Transpose{Operand: S(F32, 2, 3), Permutation: []int{0, 0}}, WithLocation("model.mlir:12:3"))
	require.Error(t, err)
	var e *shapeinference.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, shapeinference.InvalidDimensionMapping, e.Kind)
	assert.Equal(t, "stablehlo.transpose", e.Op)
	assert.Equal(t, "model.mlir:12:3", e.Location)
	assert.Contains(t, err.Error(), "model.mlir:12:3")

	// Malformed attributes are reported with their kind.
	_, err = Infer(&ReduceWindow{
		Inputs: []shapes.Shape{S(F32, 4, 6)}, InitValues: []shapes.Shape{S(F32)},
		Body: scalarReducer(F32),
		Window: shapeinference.WindowAttributes{
			WindowDimensions: attributes.MustFromValue([]int64{2, 2}),
			WindowStrides:    attributes.MustFromValue([]int64{2, 2, 2}),
		},
	})
	require.True(t, shapeinference.IsKind(err, shapeinference.AttributeArityMismatch), "got %v", err)
	_, err = Infer(&ReduceWindow{Inputs: []shapes.Shape{S(F32, 4, 6)}, InitValues: []shapes.Shape{S(F32)}, Body: scalarReducer(F32)})
	require.True(t, shapeinference.IsKind(err, shapeinference.MalformedAttribute), "got %v", err)
	_, err = Infer(&Constant{})
	require.True(t, shapeinference.IsKind(err, shapeinference.MalformedAttribute), "got %v", err)

	_, err = Infer(nil)
	require.Error(t, err)
}

// panickingOp fails with an exception, like an unexpected failure deep in a rule would.
type panickingOp struct{}

func (op *panickingOp) Type() OpType { return optypes.Tuple }

func (op *panickingOp) infer(*config) ([]shapes.Shape, error) {
	exceptions.Panicf("failed to do something")
	return nil, nil
}

func TestInferRecoversPanics(t *testing.T) {
	_, err := Infer(&panickingOp{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to do something")
	var e *shapeinference.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "stablehlo.tuple", e.Op)
}

func TestRelaxedFloatPrecision(t *testing.T) {
	bf16Reduce := &Reduce{
		Inputs: []shapes.Shape{S(dtypes.BFloat16, 8)}, InitValues: []shapes.Shape{S(F32)},
		Body: scalarReducer(F32), Dimensions: []int{0},
	}
	output, err := InferOne(bf16Reduce)
	require.NoError(t, err)
	assert.True(t, S(F32).Equal(output), "got %s", output)

	_, err = Infer(bf16Reduce, WithRelaxedFloatPrecision(optypes.Reduce, false))
	require.True(t, shapeinference.IsKind(err, shapeinference.ReducerSignatureMismatch), "got %v", err)

	// Overriding another operation doesn't change Reduce.
	_, err = Infer(bf16Reduce, WithRelaxedFloatPrecision(optypes.Sort, false))
	require.NoError(t, err)

	bf16AllReduce := &AllReduce{
		Operands:      []shapes.Shape{S(dtypes.BFloat16, 4)},
		Computation:   scalarReducer(F32),
		ReplicaGroups: attributes.MustFromValue([][]int64{{0, 1}}),
	}
	_, err = Infer(bf16AllReduce)
	require.NoError(t, err)
	_, err = Infer(bf16AllReduce, WithRelaxedFloatPrecision(optypes.AllReduce, false))
	require.Error(t, err)
}

func TestCollectiveConfig(t *testing.T) {
	groups := attributes.MustFromValue([][]int64{{0, 1}, {2, 3}})
	channelID := 1
	invalidChannelID := 0
	testCases := []struct {
		name   string
		config *types.CollectiveConfig
		valid  bool
	}{
		{"Default", nil, true},
		{"CrossReplica", &types.CollectiveConfig{ChannelType: types.CrossReplica, ChannelID: &invalidChannelID}, true},
		{"GlobalDeviceIDs", &types.CollectiveConfig{ChannelType: types.CrossPartition, ChannelID: &channelID, UseGlobalDeviceIDs: true}, true},
		{"CrossPartitionWithoutChannel", &types.CollectiveConfig{ChannelType: types.CrossPartition, ChannelID: &invalidChannelID}, false},
		{"GlobalDeviceIDsWithoutChannel", &types.CollectiveConfig{UseGlobalDeviceIDs: true}, false},
		{"InvalidChannelType", &types.CollectiveConfig{ChannelType: types.ChannelType(7)}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Infer(&AllGather{Operands: []shapes.Shape{S(F32, 2, 4)}, AllGatherDim: 1, ReplicaGroups: groups, Config: tc.config})
			if tc.valid {
				require.NoError(t, err)
				return
			}
			require.True(t, shapeinference.IsKind(err, shapeinference.MalformedAttribute), "got %v", err)
		})
	}

	// CollectiveBroadcast doesn't take global device ids.
	_, err := Infer(&CollectiveBroadcast{
		Operand: S(F32, 2), ReplicaGroups: groups,
		Config: &types.CollectiveConfig{ChannelType: types.CrossPartition, ChannelID: &channelID, UseGlobalDeviceIDs: true},
	})
	require.Error(t, err)

	// Replica groups that don't cover all replicas.
	_, err = Infer(&AllGather{
		Operands: []shapes.Shape{S(F32, 2, 4)}, AllGatherDim: 1,
		ReplicaGroups: attributes.MustFromValue([][]int64{{0, 1}, {3, 4}}),
	})
	require.True(t, shapeinference.IsKind(err, shapeinference.InvalidReplicaGroups), "got %v", err)

	// AllToAll with global device ids: the groups are validated as global ids, and sized by split_count.
	globalIDs := &types.CollectiveConfig{ChannelType: types.CrossPartition, ChannelID: &channelID, UseGlobalDeviceIDs: true}
	outputs, err := Infer(&AllToAll{
		Operands: []shapes.Shape{S(F32, 2, 4)}, SplitDimension: 1, ConcatDimension: 0, SplitCount: 2,
		ReplicaGroups: groups, Config: globalIDs,
	})
	require.NoError(t, err)
	require.True(t, S(F32, 4, 2).Equal(outputs[0]), "got %s", outputs[0])
	_, err = Infer(&AllToAll{
		Operands: []shapes.Shape{S(F32, 2, 4)}, SplitDimension: 1, ConcatDimension: 0, SplitCount: 2,
		ReplicaGroups: attributes.MustFromValue([][]int64{{0, 1, 2, 3}}), Config: globalIDs,
	})
	require.True(t, shapeinference.IsKind(err, shapeinference.InvalidReplicaGroups), "got %v", err)
}

func TestCollectivesFromMesh(t *testing.T) {
	m := must.M1(mesh.New([]int{2, 4}, []string{"data", "model"}))
	groups := must.M1(attributes.FromValue(must.M1(m.ReplicaGroups("model"))))
	output := must.M1(InferOne(&ReduceScatter{
		Operand: S(F32, 8, 16), ScatterDimension: 1, Computation: scalarReducer(F32), ReplicaGroups: groups,
	}))
	assert.True(t, S(F32, 8, 4).Equal(output), "got %s", output)

	pairs := must.M1(m.SourceTargetPairs("data", 1))
	pairsMatrix := make([][]int64, len(pairs))
	for ii, pair := range pairs {
		pairsMatrix[ii] = []int64{int64(pair[0]), int64(pair[1])}
	}
	output = must.M1(InferOne(&CollectivePermute{Operand: S(F32, 3), SourceTargetPairs: attributes.MustFromValue(pairsMatrix)}))
	assert.True(t, S(F32, 3).Equal(output), "got %s", output)
}

// TestConcurrentInfer checks that inference can be called concurrently, with the same operations.
func TestConcurrentInfer(t *testing.T) {
	examples := exampleOps()
	var g errgroup.Group
	for worker := range 8 {
		g.Go(func() error {
			for _, example := range examples {
				outputs, err := Infer(example.op, WithLocation(fmt.Sprintf("worker#%d", worker)))
				if err != nil {
					return err
				}
				if !example.expected.Equal(outputs[0]) {
					return fmt.Errorf("%s: expected %s, got %s", example.op.Type(), example.expected, outputs[0])
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
