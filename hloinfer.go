// Package hloinfer infers the result shapes of StableHLO operations, and verifies that the operations are
// well-formed.
//
// Each StableHLO operation has a variant type in this package (e.g. Gather, Reduce, AllToAll), holding the
// shapes of its operands and its attributes. Infer dispatches a variant to its shape inference rule, implemented
// in the shapeinference package:
//
//	outputs, err := hloinfer.Infer(&hloinfer.Transpose{
//		Operand:     shapes.Make(dtypes.Float32, 2, 3),
//		Permutation: []int{1, 0},
//	})
//	// outputs = [(Float32)[3 2]]
//
// Shapes can be partially known: dimensions can be shapes.DimUnknown and operands can be unranked
// (shapes.MakeUnranked). Errors are *shapeinference.Error values, classified by shapeinference.ErrorKind.
//
// Inference is pure and holds no state: it's safe to call Infer concurrently.
//
// See StableHLO documentation and specifications in https://openxla.org/stablehlo/spec
package hloinfer

import (
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/hloinfer/internal/optypes"
	"github.com/gomlx/hloinfer/shapeinference"
	"github.com/gomlx/hloinfer/types/shapes"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// OpType enumerates the StableHLO operations supported by Infer.
type OpType = optypes.OpType

// OpTypeByName returns the OpType for the given operation name, e.g. "DotGeneral".
func OpTypeByName(name string) (OpType, error) {
	opType, err := optypes.OpTypeString(name)
	if err != nil || opType == optypes.Invalid || opType == optypes.Last {
		return optypes.Invalid, errors.Errorf("unknown operation %q", name)
	}
	return opType, nil
}

// OpTypes returns all the operation types supported by Infer.
func OpTypes() []OpType {
	values := optypes.OpTypeValues()
	ops := make([]OpType, 0, len(values))
	for _, opType := range values {
		if opType != optypes.Invalid && opType != optypes.Last {
			ops = append(ops, opType)
		}
	}
	return ops
}

// Op is implemented by all operation variants of this package. It can't be implemented outside of it.
type Op interface {
	// Type of the operation.
	Type() OpType

	infer(cfg *config) ([]shapes.Shape, error)
}

// Infer returns the shapes of the results of the operation, or an error if the operation is ill-formed.
//
// Errors are annotated with the StableHLO name of the operation (and the location, see WithLocation) and
// their kind can be retrieved with shapeinference.KindOf.
func Infer(op Op, options ...Option) (outputs []shapes.Shape, err error) {
	if op == nil {
		return nil, shapeinference.Annotate(errors.New("Infer() called with a nil operation"), "", "")
	}
	cfg := newConfig(options)
	opType := op.Type()
	exception := exceptions.TryCatch[error](func() {
		outputs, err = op.infer(cfg)
	})
	if exception != nil {
		err = errors.WithMessagef(exception, "unexpected failure inferring %s", opType)
	}
	if err != nil {
		err = shapeinference.Annotate(err, opType.ToStableHLO(), cfg.location)
		if klog.V(1).Enabled() {
			kind, _ := shapeinference.KindOf(err)
			klog.Infof("hloinfer: rejected %s (%s): %v", opType, kind, err)
		}
		return nil, err
	}
	if klog.V(2).Enabled() {
		klog.Infof("hloinfer: %s -> (%s)", opType.ToStableHLO(), stableHLOTypes(outputs))
	}
	return outputs, nil
}

// InferOne is like Infer, but for operations with exactly one result.
func InferOne(op Op, options ...Option) (shapes.Shape, error) {
	outputs, err := Infer(op, options...)
	if err != nil {
		return shapes.Invalid(), err
	}
	if len(outputs) != 1 {
		return shapes.Invalid(), errors.Errorf("InferOne(%s): operation has %d results", op.Type(), len(outputs))
	}
	return outputs[0], nil
}

// stableHLOTypes lists the shapes in StableHLO syntax, e.g. "tensor<2x?xf32>, !stablehlo.token".
func stableHLOTypes(shapesList []shapes.Shape) string {
	parts := make([]string, len(shapesList))
	for ii, shape := range shapesList {
		parts[ii] = shape.ToStableHLO()
	}
	return strings.Join(parts, ", ")
}

// one wraps a single output, error pair as a list of outputs.
func one(output shapes.Shape, err error) ([]shapes.Shape, error) {
	if err != nil {
		return nil, err
	}
	return []shapes.Shape{output}, nil
}
