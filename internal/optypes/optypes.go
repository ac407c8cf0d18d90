// Package optypes defines OpType and lists the operations whose shapes can be inferred.
package optypes

import (
	"fmt"

	"github.com/gomlx/hloinfer/internal/utils"
)

// OpType is an enum of all StableHLO operations covered by shape inference.
type OpType int

//go:generate go tool enumer -type=OpType -output=gen_optype_enumer.go optypes.go

const (
	Invalid OpType = iota

	// Elementwise unary operations.

	Abs
	Cbrt
	Ceil
	CountLeadingZeros
	Cosine
	Exponential
	ExponentialMinusOne
	Floor
	Imag
	IsFinite
	Log
	LogPlusOne
	Logistic
	Negate
	Not
	Popcnt
	Real
	RoundNearestAfz
	RoundNearestEven
	Rsqrt
	Sign
	Sine
	Sqrt
	Tan
	Tanh
	Convert
	BitcastConvert
	ReducePrecision

	// Elementwise binary operations.

	Add
	And
	Atan2
	Divide
	Maximum
	Minimum
	Multiply
	Or
	Power
	Remainder
	ShiftLeft
	ShiftRightArithmetic
	ShiftRightLogical
	Subtract
	Xor
	Complex
	Compare

	Select
	Clamp
	Map

	// Structural operations.

	Broadcast
	BroadcastInDim
	DynamicBroadcastInDim
	Concatenate
	Transpose
	Reshape
	DynamicReshape
	Pad
	Slice
	Reverse
	Iota
	GetDimensionSize
	Tuple
	GetTupleElement
	OptimizationBarrier

	// Windowed operations.

	Convolution
	ReduceWindow
	SelectAndScatter

	// Linear algebra.

	Dot
	DotGeneral
	Cholesky
	TriangularSolve
	FFT
	BatchNormInference
	BatchNormTraining
	BatchNormGrad

	// Reductions.

	Reduce
	Sort

	// Indexing.

	Gather
	DynamicGather
	Scatter
	DynamicSlice
	DynamicUpdateSlice
	RealDynamicSlice

	// Collectives.

	AllGather
	AllReduce
	AllToAll
	ReduceScatter
	CollectivePermute
	CollectiveBroadcast
	ReplicaId
	PartitionId

	// Control flow.

	If
	Case
	While
	Return

	// Tokens and I/O.

	AfterAll
	CreateToken
	Send
	Recv
	Infeed
	Outfeed

	UniformQuantize
	UniformDequantize
	Rng
	RngBitGenerator
	Constant

	// Last should always be kept the last, it is used as a counter/marker for the number of operations.
	Last
)

// ToStableHLO returns the StableHLO name of the operation, e.g. "stablehlo.broadcast_in_dim".
func (op OpType) ToStableHLO() string {
	return fmt.Sprintf("stablehlo.%s", utils.ToSnakeCase(op.String()))
}
