package shapeinference

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/hloinfer/internal/optypes"
	"github.com/gomlx/hloinfer/types"
	"github.com/gomlx/hloinfer/types/shapes"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

// must1 panics if there is an error.
func must1[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}

func panics(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic, but code did not panic")
		}
	}()
	f()
}

// requireKind fails the test if err is not an error of the given kind.
func requireKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	require.Error(t, err)
	got, found := KindOf(err)
	require.Truef(t, found, "error %v has no kind", err)
	require.Equalf(t, kind, got, "unexpected kind for error %v", err)
}

func TestBinaryOp(t *testing.T) {
	matrix := S(F32, 2, 3)
	require.True(t, matrix.Equal(must1(BinaryOp(optypes.Add, matrix, matrix))))

	// Unknown dimensions are refined.
	output := must1(BinaryOp(optypes.Multiply, S(F32, 2, DimUnknown), S(F32, DimUnknown, 3)))
	require.True(t, matrix.Equal(output), "got %s", output)
	output = must1(BinaryOp(optypes.Subtract, S(F32, 2, DimUnknown), S(F32, 2, DimUnknown)))
	require.True(t, S(F32, 2, DimUnknown).Equal(output), "got %s", output)

	// Unranked operands take the rank of the other.
	output = must1(BinaryOp(optypes.Add, U(F32), matrix))
	require.True(t, matrix.Equal(output), "got %s", output)
	output = must1(BinaryOp(optypes.Add, U(F32), U(F32)))
	require.True(t, U(F32).Equal(output), "got %s", output)

	// No implicit broadcasting.
	_, err := BinaryOp(optypes.Add, matrix, S(F32))
	requireKind(t, err, IncompatibleShape)
	_, err = BinaryOp(optypes.Add, S(F32, 2, 3), S(F32, 3, 2))
	requireKind(t, err, IncompatibleShape)
	_, err = BinaryOp(optypes.Add, S(F32, 2, 3), S(F32, 1, 2, 3))
	requireKind(t, err, IncompatibleShape)

	// Element types.
	_, err = BinaryOp(optypes.Add, S(F32, 2), S(I32, 2))
	requireKind(t, err, IncompatibleElementType)
	_, err = BinaryOp(optypes.And, S(F32, 2), S(F32, 2))
	requireKind(t, err, IncompatibleElementType)
	require.True(t, S(Bool, 2).Equal(must1(BinaryOp(optypes.And, S(Bool, 2), S(Bool, 2)))))
	_, err = BinaryOp(optypes.ShiftLeft, S(F32, 2), S(F32, 2))
	requireKind(t, err, IncompatibleElementType)

	// Not a binary operation.
	_, err = BinaryOp(optypes.Negate, matrix, matrix)
	requireKind(t, err, MalformedAttribute)
}

func TestUnaryOp(t *testing.T) {
	// Invalid data types check.
	panics(t, func() { must1(UnaryOp(optypes.Not, S(F32))) })
	panics(t, func() { must1(UnaryOp(optypes.Not, S(dtypes.Complex64))) })
	panics(t, func() { must1(UnaryOp(optypes.Negate, S(Bool))) })

	// Invalid operation type (not unary op).
	panics(t, func() { must1(UnaryOp(optypes.Add, S(F32))) })
	panics(t, func() { must1(UnaryOp(optypes.Negate, S(U64))) })

	// Valid operations
	boolShape := S(Bool, 2, 3)
	if out := must1(UnaryOp(optypes.Not, boolShape)); !boolShape.Equal(out) {
		t.Errorf("expected %s, got %s", boolShape, out)
	}

	intShape := S(I8, 3, 3)
	if out := must1(UnaryOp(optypes.Not, intShape)); !intShape.Equal(out) {
		t.Errorf("expected %s, got %s", intShape, out)
	}

	floatShape := S(F32, 2, 3)
	if out := must1(UnaryOp(optypes.Exponential, floatShape)); !floatShape.Equal(out) {
		t.Errorf("expected %s, got %s", floatShape, out)
	}
	if out := must1(UnaryOp(optypes.Negate, floatShape)); !floatShape.Equal(out) {
		t.Errorf("expected %s, got %s", floatShape, out)
	}

	// Element type changes.
	assert.True(t, S(Bool, 2, 3).Equal(must1(UnaryOp(optypes.IsFinite, floatShape))))
	assert.True(t, S(F32, 4).Equal(must1(UnaryOp(optypes.Abs, S(dtypes.Complex64, 4)))))
	assert.True(t, S(dtypes.Float64, 4).Equal(must1(UnaryOp(optypes.Real, S(dtypes.Complex128, 4)))))
	assert.True(t, U(F32).Equal(must1(UnaryOp(optypes.Imag, U(dtypes.Complex64)))))
}

func TestCompare(t *testing.T) {
	output := must1(Compare(S(F32, 2, DimUnknown), S(F32, DimUnknown, 3), types.CompareLT, types.CompareFloat))
	require.True(t, S(Bool, 2, 3).Equal(output), "got %s", output)

	output = must1(Compare(U(I32), S(I32, 5), types.CompareEQ, types.CompareNotSet))
	require.True(t, S(Bool, 5).Equal(output), "got %s", output)

	_, err := Compare(S(I32, 2), S(I32, 2), types.CompareLT, types.CompareFloat)
	requireKind(t, err, IncompatibleElementType)
	assert.ErrorContains(t, err, "Compare(#stablehlo<comparison_direction LT>, #stablehlo<comparison_type FLOAT>)")
	_, err = Compare(S(dtypes.Uint8, 2), S(dtypes.Uint8, 2), types.CompareLT, types.CompareSigned)
	requireKind(t, err, IncompatibleElementType)
	_, err = Compare(S(F32, 2), S(F32, 3), types.CompareLT, types.CompareFloat)
	requireKind(t, err, IncompatibleShape)
	_, err = Compare(S(F32, 2), S(F32, 2), types.ComparisonDirection(100), types.CompareFloat)
	requireKind(t, err, MalformedAttribute)
	assert.ErrorContains(t, err, "#stablehlo<comparison_direction UNKNOWN 100>")
	_, err = Compare(S(F32, 2), S(F32, 2), types.CompareLT, types.ComparisonType(100))
	requireKind(t, err, MalformedAttribute)
	assert.ErrorContains(t, err, "#stablehlo<comparison_type UNKNOWN 100>")
}

func TestSelectAndClamp(t *testing.T) {
	output := must1(Select(S(Bool), S(F32, 2, 3), S(F32, 2, DimUnknown)))
	require.True(t, S(F32, 2, 3).Equal(output), "got %s", output)
	output = must1(Select(S(Bool, DimUnknown, 3), S(F32, 2, DimUnknown), S(F32, 2, DimUnknown)))
	require.True(t, S(F32, 2, 3).Equal(output), "got %s", output)
	_, err := Select(S(F32), S(F32, 2), S(F32, 2))
	requireKind(t, err, IncompatibleElementType)
	_, err = Select(S(Bool, 3), S(F32, 2), S(F32, 2))
	requireKind(t, err, IncompatibleShape)

	output = must1(Clamp(S(F32), S(F32, 4, 5), S(F32, 4, 5)))
	require.True(t, S(F32, 4, 5).Equal(output), "got %s", output)
	_, err = Clamp(S(F32), S(F32, 4, 5), S(F32, 5))
	requireKind(t, err, IncompatibleShape)
	_, err = Clamp(S(I32), S(F32, 4, 5), S(F32))
	requireKind(t, err, IncompatibleElementType)
}

func TestConversions(t *testing.T) {
	require.True(t, S(dtypes.Complex64, 3).Equal(must1(Complex(S(F32, 3), S(F32, 3)))))
	require.True(t, S(dtypes.Complex128, 3).Equal(must1(Complex(S(dtypes.Float64, 3), S(dtypes.Float64, DimUnknown)))))
	_, err := Complex(S(I32, 3), S(I32, 3))
	requireKind(t, err, IncompatibleElementType)

	require.True(t, S(I32, 2, 2).Equal(must1(Convert(S(F32, 2, 2), I32))))

	// Narrower: a new axis is appended. Wider: the last axis is consumed.
	require.True(t, S(dtypes.Uint8, 3, 4).Equal(must1(BitcastConvert(S(F32, 3), dtypes.Uint8))))
	require.True(t, S(F32, 3).Equal(must1(BitcastConvert(S(dtypes.Uint8, 3, 4), F32))))
	require.True(t, S(I32, 7).Equal(must1(BitcastConvert(S(F32, 7), I32))))
	_, err = BitcastConvert(S(dtypes.Uint8, 3, 2), F32)
	requireKind(t, err, IncompatibleShape)
	_, err = BitcastConvert(S(dtypes.Uint8), F32)
	requireKind(t, err, IncompatibleShape)

	require.True(t, S(F32, 2).Equal(must1(ReducePrecision(S(F32, 2), 5, 10))))
	_, err = ReducePrecision(S(F32, 2), 0, 10)
	requireKind(t, err, MalformedAttribute)
	_, err = ReducePrecision(S(I32, 2), 5, 10)
	requireKind(t, err, IncompatibleElementType)
}

func TestErrors(t *testing.T) {
	_, err := BinaryOp(optypes.Add, S(F32, 2), S(F32, 3))
	require.True(t, IsKind(err, IncompatibleShape))
	require.False(t, IsKind(err, IncompatibleElementType))

	annotated := Annotate(err, "stablehlo.add", "loc(\"model.py\":10)")
	var e *Error
	require.ErrorAs(t, annotated, &e)
	require.Equal(t, "stablehlo.add", e.Op)
	require.Contains(t, annotated.Error(), "model.py")
	require.Contains(t, annotated.Error(), "IncompatibleShape")

	// Annotation doesn't override a previous one.
	Annotate(annotated, "other", "")
	require.Equal(t, "stablehlo.add", e.Op)

	// Errors from other packages become MalformedAttribute.
	require.True(t, IsKind(Annotate(fmt.Errorf("bad payload"), "op", ""), MalformedAttribute))
	require.NoError(t, Annotate(nil, "op", ""))
	_, found := KindOf(fmt.Errorf("not ours"))
	require.False(t, found)

	// Kinds round-trip through their names.
	for _, kind := range ErrorKindValues() {
		parsed, err := ErrorKindString(kind.String())
		require.NoError(t, err)
		require.Equal(t, kind, parsed)
	}
}

// randomShape returns a random shape with rank in [0, 4) where each dimension has a 1/4 chance of being unknown,
// and the shape has a 1/8 chance of being unranked.
func randomShape(rng *rand.Rand, dtype dtypes.DType) shapes.Shape {
	if rng.IntN(8) == 0 {
		return U(dtype)
	}
	dims := make([]int, rng.IntN(4))
	for ii := range dims {
		dims[ii] = 1 + rng.IntN(5)
		if rng.IntN(4) == 0 {
			dims[ii] = DimUnknown
		}
	}
	return S(dtype, dims...)
}

// TestDeterminism checks that rules are pure: calling them twice yields the same results, and the operands are
// left untouched.
func TestDeterminism(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	for range 200 {
		lhs := randomShape(rng, F32)
		rhs := lhs.Clone()
		if rhs.IsRanked() && rhs.Rank() > 0 && rng.IntN(2) == 0 {
			rhs.Dimensions[rng.IntN(rhs.Rank())] = DimUnknown
		}
		lhsCopy, rhsCopy := lhs.Clone(), rhs.Clone()

		first, err1 := BinaryOp(optypes.Add, lhs, rhs)
		second, err2 := BinaryOp(optypes.Add, lhs, rhs)
		require.NoError(t, err1, "Add(%s, %s)", lhs, rhs)
		require.NoError(t, err2)
		require.True(t, first.Equal(second), "Add(%s, %s) returned %s and then %s", lhs, rhs, first, second)
		require.Empty(t, cmp.Diff(lhsCopy, lhs), "lhs was modified")
		require.Empty(t, cmp.Diff(rhsCopy, rhs), "rhs was modified")

		// Unknown dimensions never become known without a source.
		if first.IsRanked() && lhs.IsRanked() {
			for axis, dim := range first.Dimensions {
				if dim != DimUnknown {
					require.True(t, lhs.Dimensions[axis] == dim || (rhs.IsRanked() && rhs.Dimensions[axis] == dim))
				}
			}
		}

		if lhs.IsRanked() && lhs.Rank() > 0 {
			axis := rng.IntN(lhs.Rank())
			rev1, err := Reverse(lhs, []int{axis})
			require.NoError(t, err)
			rev2 := must1(Reverse(lhs, []int{axis}))
			require.True(t, rev1.Equal(rev2))
			require.Empty(t, cmp.Diff(lhsCopy, lhs))
		}
	}
}

// requireSameResult checks two calls of a rule with the same inputs returned the same output and error.
func requireSameResult(t *testing.T, first, second any, err1, err2 error, msgAndArgs ...any) {
	t.Helper()
	require.Empty(t, cmp.Diff(first, second), msgAndArgs...)
	if err1 == nil || err2 == nil {
		require.Equal(t, err1 == nil, err2 == nil, msgAndArgs...)
		return
	}
	require.Equal(t, err1.Error(), err2.Error(), msgAndArgs...)
	kind1, _ := KindOf(err1)
	kind2, _ := KindOf(err2)
	require.Equal(t, kind1, kind2, msgAndArgs...)
}

func TestDeterminismOfWindowsIndexingAndGroups(t *testing.T) {
	rng := rand.New(rand.NewPCG(17, 3))

	t.Run("Window", func(t *testing.T) {
		for range 200 {
			rank := rng.IntN(4)
			sizes, strides, dilations := make([]int, rank), make([]int, rank), make([]int, rank)
			padding := make([][2]int, rank)
			base := make([]int, rank)
			for axis := range rank {
				sizes[axis] = rng.IntN(4)
				strides[axis] = 1 + rng.IntN(3)
				dilations[axis] = 1 + rng.IntN(2)
				padding[axis] = [2]int{rng.IntN(5) - 2, rng.IntN(5) - 2}
				base[axis] = rng.IntN(8)
				if rng.IntN(4) == 0 {
					base[axis] = DimUnknown
				}
			}
			window1, err1 := VerifyWindowAttributesAndInferWindowDimensions(sizes, strides, padding, nil, dilations, nil)
			window2, err2 := VerifyWindowAttributesAndInferWindowDimensions(sizes, strides, padding, nil, dilations, nil)
			requireSameResult(t, window1, window2, err1, err2, "window sizes=%v", sizes)
			if err1 != nil {
				requireKind(t, err1, NonPositiveWindowAttribute)
				continue
			}
			baseCopy := slices.Clone(base)
			output1 := InferWindowOutputShape(base, window1)
			output2 := InferWindowOutputShape(base, window1)
			require.Equal(t, output1, output2, "base=%v window=%v", base, window1)
			require.Equal(t, baseCopy, base)
			for axis, dim := range output1 {
				if base[axis] == DimUnknown {
					require.Equal(t, DimUnknown, dim)
				}
			}
		}
	})

	t.Run("InferGatherShape", func(t *testing.T) {
		for range 200 {
			operandRank := 1 + rng.IntN(3)
			sliceSizes := make([]int, operandRank)
			var collapsed []int
			for axis := range operandRank {
				sliceSizes[axis] = 1 + rng.IntN(4)
				if rng.IntN(3) == 0 {
					collapsed = append(collapsed, axis)
				}
			}
			numBatch := rng.IntN(3)
			startIndicesDims := make([]int, numBatch+1)
			for axis := range startIndicesDims {
				startIndicesDims[axis] = 1 + rng.IntN(5)
			}
			resultRank := numBatch + operandRank - len(collapsed)
			offsetDims := rng.Perm(resultRank)[:operandRank-len(collapsed)]
			slices.Sort(offsetDims)
			startIndicesDim := func(axis int) int { return startIndicesDims[axis] }
			sliceSizesCopy := slices.Clone(sliceSizes)

			dims1 := InferGatherShape(resultRank, startIndicesDim, sliceSizes, offsetDims, collapsed, numBatch)
			dims2 := InferGatherShape(resultRank, startIndicesDim, sliceSizes, offsetDims, collapsed, numBatch)
			require.Equal(t, dims1, dims2, "slice_sizes=%v offset_dims=%v collapsed=%v", sliceSizes, offsetDims, collapsed)
			require.Len(t, dims1, resultRank)
			require.Equal(t, sliceSizesCopy, sliceSizes)
		}
	})

	t.Run("Concatenate", func(t *testing.T) {
		for range 200 {
			first := randomShape(rng, F32)
			if first.IsRanked() && first.Rank() == 0 {
				first = S(F32, 3)
			}
			inputs := []shapes.Shape{first}
			for range 1 + rng.IntN(3) {
				input := first.Clone()
				if input.IsRanked() {
					input.Dimensions[rng.IntN(input.Rank())] = rng.IntN(4)
				}
				if rng.IntN(6) == 0 {
					input = randomShape(rng, F32)
				}
				inputs = append(inputs, input)
			}
			axis := 0
			if first.IsRanked() {
				axis = rng.IntN(first.Rank())
			}
			inputsCopy := make([]shapes.Shape, len(inputs))
			for ii, input := range inputs {
				inputsCopy[ii] = input.Clone()
			}

			output1, err1 := Concatenate(inputs, axis)
			output2, err2 := Concatenate(inputs, axis)
			requireSameResult(t, output1, output2, err1, err2, "Concatenate(%v, %d)", inputs, axis)
			require.Empty(t, cmp.Diff(inputsCopy, inputs), "inputs were modified")
		}
	})

	t.Run("VerifyReplicaGroups", func(t *testing.T) {
		for range 200 {
			groups := make([][]int, rng.IntN(4))
			for ii := range groups {
				groups[ii] = make([]int, rng.IntN(4))
				for jj := range groups[ii] {
					groups[ii][jj] = rng.IntN(7) - 1
				}
			}
			allSameSize, useGlobalIDs := rng.IntN(2) == 0, rng.IntN(2) == 0
			expectedGroupSize := rng.IntN(5) - 1
			groupsCopy := make([][]int, len(groups))
			for ii, group := range groups {
				groupsCopy[ii] = slices.Clone(group)
			}

			err1 := VerifyReplicaGroups(groups, allSameSize, useGlobalIDs, expectedGroupSize)
			err2 := VerifyReplicaGroups(groups, allSameSize, useGlobalIDs, expectedGroupSize)
			requireSameResult(t, nil, nil, err1, err2, "groups=%v", groups)
			if err1 != nil {
				requireKind(t, err1, InvalidReplicaGroups)
			}
			require.Equal(t, groupsCopy, groups)
		}
	})
}
