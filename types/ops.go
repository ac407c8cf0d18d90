// Package types holds the attribute bundles shared by the shape inference rules: comparison and FFT enums,
// dimension numbers for convolution, dot, gather and scatter, and the configuration of collective operations.
package types

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/hloinfer/internal/utils"
)

// ComparisonType enum defined for the Compare op.
type ComparisonType int

//go:generate go tool enumer -type=ComparisonType -output=gen_comparisontype_enumer.go ops.go

const (
	// CompareFloat are used for floating point comparisons.
	CompareFloat ComparisonType = iota

	// CompareTotalOrder version of the operation enforces `-NaN < -Inf < -Finite < -0 < +0 < +Finite < +Inf < +NaN`.
	CompareTotalOrder

	CompareSigned
	CompareUnsigned

	// CompareNotSet means no comparison type was given, and it is inferred from the element type.
	CompareNotSet
)

// ToStableHLO returns the StableHLO representation of the comparison type.
func (c ComparisonType) ToStableHLO() string {
	switch c {
	case CompareFloat:
		return "#stablehlo<comparison_type FLOAT>"
	case CompareTotalOrder:
		return "#stablehlo<comparison_type TOTALORDER>"
	case CompareSigned:
		return "#stablehlo<comparison_type SIGNED>"
	case CompareUnsigned:
		return "#stablehlo<comparison_type UNSIGNED>"
	case CompareNotSet:
		return "#stablehlo<comparison_type NOTYPE>"
	}
	return fmt.Sprintf("#stablehlo<comparison_type UNKNOWN %d>", c)
}

// ComparisonDirection enum defined for the Compare op.
type ComparisonDirection int

//go:generate go tool enumer -type=ComparisonDirection -trimprefix=Compare -output=gen_comparisondirection_enumer.go ops.go

const (
	CompareEQ ComparisonDirection = iota
	CompareGE
	CompareGT
	CompareLE
	CompareLT
	CompareNE
)

func (c ComparisonDirection) ToStableHLO() string {
	if !c.IsAComparisonDirection() {
		return fmt.Sprintf("#stablehlo<comparison_direction UNKNOWN %d>", c)
	}
	return fmt.Sprintf("#stablehlo<comparison_direction %s>", c)
}

// ConvolveAxesConfig defines the interpretation of the input/kernel/output tensor axes, what StableHLO calls
// the convolution dimension numbers.
// There must be the same number of spatial dimensions (axes) for each of the 3 tensors.
// Input and output have batch and channel axes. Kernel has inputChannel and outputChannel axes.
type ConvolveAxesConfig struct {
	InputBatch, InputChannels int
	InputSpatial              []int

	KernelInputChannels, KernelOutputChannels int
	KernelSpatial                             []int

	OutputBatch, OutputChannels int
	OutputSpatial               []int
}

// Clone returns a deep copy of the structure.
func (c ConvolveAxesConfig) Clone() ConvolveAxesConfig {
	c2 := c
	c2.InputSpatial = slices.Clone(c.InputSpatial)
	c2.KernelSpatial = slices.Clone(c.KernelSpatial)
	c2.OutputSpatial = slices.Clone(c.OutputSpatial)
	return c2
}

// SpatialRank returns the number of spatial axes of the input.
func (c ConvolveAxesConfig) SpatialRank() int {
	return len(c.InputSpatial)
}

// DotGeneralPrecisionType defines the precision of the dot product.
//
// It controls the tradeoff between speed and accuracy for computations on accelerator backends.
// At the moment, the semantics of these enum values are underspecified, see
// https://github.com/openxla/stablehlo/issues/755.
type DotGeneralPrecisionType int

//go:generate go tool enumer -type=DotGeneralPrecisionType -trimprefix=DotGeneralPrecision -output=gen_dotgeneralprecisiontype_enumer.go ops.go

const (
	// DotGeneralPrecisionDefault is the fastest calculation, but the least accurate approximation to the original number.
	DotGeneralPrecisionDefault DotGeneralPrecisionType = iota
	DotGeneralPrecisionHigh
	DotGeneralPrecisionHighest
)

func (p DotGeneralPrecisionType) ToStableHLO() string {
	return strings.ToUpper(p.String())
}

// FloatPrecisionType defines the precision used during floating point operations.
// In particular, modern GPUs accept the TF32 type which sacrifices some accuracy for
// significant speed improvements.
type FloatPrecisionType struct {
	// TF32 is used for the TF32 precision type.
	TF32 bool

	// DType is used for non-TF32 precision types.
	// It must be a float type.
	DType dtypes.DType
}

func (f FloatPrecisionType) ToStableHLO() string {
	if f.TF32 {
		return "tf32"
	}
	return utils.DTypeToStableHLO(f.DType)
}

// DotGeneralAlgorithm defines fine-control of the algorithm used for the dot product.
type DotGeneralAlgorithm struct {
	// LhsPrecisionType, RhsPrecisionType that the LHS and RHS of the operation are rounded to.
	LhsPrecisionType, RhsPrecisionType FloatPrecisionType

	// AccumulationType defines the type of the accumulator used for the dot product.
	AccumulationType FloatPrecisionType

	// LhsComponentCount, RhsComponentCount and NumPrimitiveOperations apply when the algorithm decomposes the
	// LHS and/or RHS into multiple components and does multiple "primitive" dot operations on those values.
	// For algorithms with no decomposition, these values should be set to 1.
	LhsComponentCount, RhsComponentCount, NumPrimitiveOperations int

	// AllowImpreciseAccumulation to specify if accumulation in lower precision is permitted for some steps.
	AllowImpreciseAccumulation bool
}

// DotDimensionNumbers lists the batch and contracting axes of the two operands of DotGeneral.
type DotDimensionNumbers struct {
	LhsBatchingDims, RhsBatchingDims       []int
	LhsContractingDims, RhsContractingDims []int
}

// GatherDimensionNumbers describe how the start indices address the operand of Gather, and how the gathered
// slices are laid out in the result.
type GatherDimensionNumbers struct {
	// OffsetDims are the result axes that hold the (non-collapsed) slice axes.
	OffsetDims []int

	// CollapsedSliceDims are operand axes whose slice size is 1 and that are dropped from the result.
	CollapsedSliceDims []int

	// OperandBatchingDims and StartIndicesBatchingDims pair batch axes of the operand and start indices.
	OperandBatchingDims, StartIndicesBatchingDims []int

	// StartIndexMap maps each component of an index vector to an operand axis.
	StartIndexMap []int

	// IndexVectorDim is the axis of the start indices that holds the index vectors. If it is equal to the rank of
	// the start indices, there is an implicit trailing axis of size 1.
	IndexVectorDim int
}

// Clone returns a deep copy.
func (g GatherDimensionNumbers) Clone() GatherDimensionNumbers {
	g2 := g
	g2.OffsetDims = slices.Clone(g.OffsetDims)
	g2.CollapsedSliceDims = slices.Clone(g.CollapsedSliceDims)
	g2.OperandBatchingDims = slices.Clone(g.OperandBatchingDims)
	g2.StartIndicesBatchingDims = slices.Clone(g.StartIndicesBatchingDims)
	g2.StartIndexMap = slices.Clone(g.StartIndexMap)
	return g2
}

// ScatterDimensionNumbers mirror GatherDimensionNumbers for Scatter: update window axes play the role of
// offset axes, and inserted window axes the role of collapsed axes.
type ScatterDimensionNumbers struct {
	UpdateWindowDims                              []int
	InsertedWindowDims                            []int
	InputBatchingDims, ScatterIndicesBatchingDims []int
	ScatterDimsToOperandDims                      []int
	IndexVectorDim                                int
}

// RNGBitGeneratorAlgorithm used by the RngBitGenerator operation.
type RNGBitGeneratorAlgorithm int

const (
	RNGDefault RNGBitGeneratorAlgorithm = iota
	RNGPhilox
	RNGThreeFry
)

//go:generate go tool enumer -type=RNGBitGeneratorAlgorithm -trimprefix=RNG -output=gen_rngbitgeneratoralgorithm_enumer.go -transform=snake ops.go

// RNGDistribution used by the Rng operation.
type RNGDistribution int

const (
	// RNGUniform takes as parameters the interval [a, b).
	RNGUniform RNGDistribution = iota

	// RNGNormal takes as parameters the mean and the standard deviation.
	RNGNormal
)

//go:generate go tool enumer -type=RNGDistribution -trimprefix=RNG -output=gen_rngdistribution_enumer.go ops.go

// FFTType defines the type of the FFT operation, see FFT.
type FFTType int

const (
	// FFTForward - complex in, complex out.
	FFTForward FFTType = iota

	// FFTInverse - complex in, complex out.
	FFTInverse

	// FFTForwardReal - real in, fft_length / 2 + 1 complex out
	FFTForwardReal

	// FFTInverseReal - fft_length / 2 + 1 complex in
	FFTInverseReal
)

//go:generate go tool enumer -type FFTType -trimprefix=FFT -output=gen_ffttype_enumer.go ops.go

// ToStableHLO returns the StableHLO representation of the FFT type.
func (t FFTType) ToStableHLO() string {
	switch t {
	case FFTForward:
		return "FFT"
	case FFTInverse:
		return "IFFT"
	case FFTForwardReal:
		return "RFFT"
	case FFTInverseReal:
		return "IRFFT"
	default:
		return "FFT_UNKNOWN_TYPE"
	}
}

// TriangularSolveTranspose defines what is done to the matrix "a" before solving in TriangularSolve.
type TriangularSolveTranspose int

const (
	TransposeNoTranspose TriangularSolveTranspose = iota
	TransposeTranspose
	TransposeAdjoint
)

//go:generate go tool enumer -type=TriangularSolveTranspose -trimprefix=Transpose -output=gen_triangularsolvetranspose_enumer.go -transform=snake ops.go

// ChannelType defines the communication dimension for a collective op.
type ChannelType int

//go:generate go tool enumer -type=ChannelType -output=gen_channeltype_enumer.go -transform=snake ops.go

const (
	// CrossReplica communicates across replicas (data parallelism).
	// This is the default.
	CrossReplica ChannelType = 0

	// CrossPartition communicates across partitions (model parallelism).
	CrossPartition ChannelType = 1
)

// CollectiveConfig provides advanced, optional configuration for collective operations.
type CollectiveConfig struct {
	// ChannelType specifies the communication dimension.
	// Defaults to CrossReplica (0).
	ChannelType ChannelType

	// ChannelID, if non-nil, is the channel handle. A value <= 0 is only valid for CrossReplica.
	ChannelID *int

	// UseGlobalDeviceIDs changes the interpretation of replica_groups
	// from replica IDs to global device IDs.
	// It requires a ChannelID > 0.
	UseGlobalDeviceIDs bool
}
