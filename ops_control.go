package hloinfer

import (
	"github.com/gomlx/hloinfer/attributes"
	"github.com/gomlx/hloinfer/internal/optypes"
	"github.com/gomlx/hloinfer/shapeinference"
	"github.com/gomlx/hloinfer/types"
	"github.com/gomlx/hloinfer/types/shapes"
)

// If executes one of two branches, given by the result shapes of their regions (true branch first).
type If struct {
	Pred     shapes.Shape
	Branches [][]shapes.Shape
}

func (op *If) Type() OpType { return optypes.If }

func (op *If) infer(*config) ([]shapes.Shape, error) {
	return shapeinference.If(op.Pred, op.Branches)
}

// Case executes the branch selected by the Int32 scalar Index.
type Case struct {
	Index    shapes.Shape
	Branches [][]shapes.Shape
}

func (op *Case) Type() OpType { return optypes.Case }

func (op *Case) infer(*config) ([]shapes.Shape, error) {
	return shapeinference.Case(op.Index, op.Branches)
}

// While loops over Body while Cond returns true. Both regions take the loop-carried Operands.
type While struct {
	Operands   []shapes.Shape
	Cond, Body shapeinference.Body
}

func (op *While) Type() OpType { return optypes.While }

func (op *While) infer(*config) ([]shapes.Shape, error) {
	return shapeinference.While(op.Operands, op.Cond, op.Body)
}

// Return terminates a region, with Expected holding the result shapes the region must produce.
type Return struct {
	Operands, Expected []shapes.Shape
}

func (op *Return) Type() OpType { return optypes.Return }

func (op *Return) infer(*config) ([]shapes.Shape, error) {
	return shapeinference.Return(op.Operands, op.Expected)
}

type AfterAll struct {
	Inputs []shapes.Shape
}

func (op *AfterAll) Type() OpType { return optypes.AfterAll }

func (op *AfterAll) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.AfterAll(op.Inputs))
}

type CreateToken struct{}

func (op *CreateToken) Type() OpType { return optypes.CreateToken }

func (op *CreateToken) infer(*config) ([]shapes.Shape, error) {
	return []shapes.Shape{shapeinference.CreateToken()}, nil
}

// Send Inputs over a channel, ordered by Token. It returns a new token.
type Send struct {
	Inputs []shapes.Shape
	Token  shapes.Shape
}

func (op *Send) Type() OpType { return optypes.Send }

func (op *Send) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.Send(op.Inputs, op.Token))
}

// Recv values with the declared Results shapes. The outputs are the results followed by a new token.
type Recv struct {
	Token   shapes.Shape
	Results []shapes.Shape
}

func (op *Recv) Type() OpType { return optypes.Recv }

func (op *Recv) infer(*config) ([]shapes.Shape, error) {
	return shapeinference.Recv(op.Token, op.Results)
}

// Infeed is like Recv, but reads from the infeed queue.
type Infeed struct {
	Token   shapes.Shape
	Results []shapes.Shape
}

func (op *Infeed) Type() OpType { return optypes.Infeed }

func (op *Infeed) infer(*config) ([]shapes.Shape, error) {
	return shapeinference.Infeed(op.Token, op.Results)
}

// Outfeed is like Send, but writes to the outfeed queue.
type Outfeed struct {
	Inputs []shapes.Shape
	Token  shapes.Shape
}

func (op *Outfeed) Type() OpType { return optypes.Outfeed }

func (op *Outfeed) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.Outfeed(op.Inputs, op.Token))
}

// UniformQuantize converts Operand to the declared quantized Result type. Operand can be a float or already
// quantized, for a re-quantization.
type UniformQuantize struct {
	Operand, Result shapes.Shape
}

func (op *UniformQuantize) Type() OpType { return optypes.UniformQuantize }

func (op *UniformQuantize) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.UniformQuantize(op.Operand, op.Result))
}

// UniformDequantize converts the quantized Operand to its expressed type.
type UniformDequantize struct {
	Operand shapes.Shape
}

func (op *UniformDequantize) Type() OpType { return optypes.UniformDequantize }

func (op *UniformDequantize) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.UniformDequantize(op.Operand))
}

// Rng generates random numbers with the given Distribution. The output dimensions are held by the 1D
// Shape operand, so they are only known at runtime.
type Rng struct {
	A, B, Shape  shapes.Shape
	Distribution types.RNGDistribution
}

func (op *Rng) Type() OpType { return optypes.Rng }

func (op *Rng) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.Rng(op.A, op.B, op.Shape, op.Distribution))
}

// RngBitGenerator returns the updated state and random bits with the declared Output shape.
type RngBitGenerator struct {
	Algorithm    types.RNGBitGeneratorAlgorithm
	InitialState shapes.Shape
	Output       shapes.Shape
}

func (op *RngBitGenerator) Type() OpType { return optypes.RngBitGenerator }

func (op *RngBitGenerator) infer(*config) ([]shapes.Shape, error) {
	return shapeinference.RngBitGenerator(op.Algorithm, op.InitialState, op.Output)
}

// Constant returns the shape of its literal Value.
type Constant struct {
	Value *attributes.Dense
}

func (op *Constant) Type() OpType { return optypes.Constant }

func (op *Constant) infer(*config) ([]shapes.Shape, error) {
	return one(shapeinference.Constant(op.Value))
}
