package shapeinference

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/hloinfer/types/shapes"
)

// Body is the signature of a region (a nested computation) of an operation: the reducer of Reduce, the
// comparator of Sort, the body and condition of While, the branches of If, etc.
type Body struct {
	Params, Results []shapes.Shape
}

// VerifyReducerShape validates the signature of the reducer body of a reduction-like operation, with numInputs
// inputs and as many initial values.
//
// The body must take 2*numInputs parameters: numInputs accumulators, followed by numInputs values from the
// inputs. It must return numInputs results, one per accumulator.
//
//   - Accumulator i must be compatible with result i and with initValues[i].
//   - The element type of parameter numInputs+i must be compatible with the element type of inputs[i].
//   - Unless allInputsUnranked, the dimensions of parameter numInputs+i must match, in order, a subsequence
//     of allowedDims. With allowedDims empty (the usual case) they must be scalars (rank-0).
//
// If ignoreFpPrecision is set, floating point element types of different bit widths are considered compatible.
//
// Errors have kind ReducerSignatureMismatch, and point to the offending parameter with Error.Param.
func VerifyReducerShape(body Body, inputs, initValues []shapes.Shape, numInputs int, allowedDims []int,
	allInputsUnranked, ignoreFpPrecision bool) error {
	if len(body.Params) != 2*numInputs {
		return errorf(ReducerSignatureMismatch, "reducer must take 2*%d=%d parameters (accumulators followed by inputs), got %d",
			numInputs, 2*numInputs, len(body.Params))
	}
	if len(body.Results) != numInputs {
		return errorf(ReducerSignatureMismatch, "reducer must return %d results, one per accumulator, got %d",
			numInputs, len(body.Results))
	}
	if len(inputs) != numInputs || len(initValues) != numInputs {
		return errorf(ReducerSignatureMismatch, "reducer requires %d inputs and initial values, got %d inputs and %d initial values",
			numInputs, len(inputs), len(initValues))
	}
	for ii := range numInputs {
		accumulator := body.Params[ii]
		if !shapes.Compatible(accumulator, body.Results[ii], ignoreFpPrecision) {
			return paramErrorf(ReducerSignatureMismatch, ii,
				"reducer accumulator parameter #%d (%s) is not compatible with its result #%d (%s)",
				ii, accumulator, ii, body.Results[ii])
		}
		if !shapes.Compatible(accumulator, initValues[ii], ignoreFpPrecision) {
			return paramErrorf(ReducerSignatureMismatch, ii,
				"reducer accumulator parameter #%d (%s) is not compatible with initial value #%d (%s)",
				ii, accumulator, ii, initValues[ii])
		}

		paramIdx := numInputs + ii
		param := body.Params[paramIdx]
		if !param.IsTensor() || !inputs[ii].IsTensor() ||
			!shapes.DTypesCompatible(param.ElementShape(), inputs[ii].ElementShape(), ignoreFpPrecision) {
			return paramErrorf(ReducerSignatureMismatch, paramIdx,
				"reducer parameter #%d (%s) must have the same element type as input #%d (%s)",
				paramIdx, param, ii, inputs[ii])
		}
		if allInputsUnranked || !param.IsRanked() {
			continue
		}
		if param.Rank() > len(allowedDims) {
			return paramErrorf(ReducerSignatureMismatch, paramIdx,
				"reducer parameter #%d (%s) must have rank <= %d", paramIdx, param, len(allowedDims))
		}
		paramAxis := 0
		for _, allowed := range allowedDims {
			if paramAxis >= param.Rank() {
				break
			}
			if shapes.DimsCompatible(allowed, param.Dimensions[paramAxis]) {
				paramAxis++
			}
		}
		if paramAxis != param.Rank() {
			return paramErrorf(ReducerSignatureMismatch, paramIdx,
				"dimensions of reducer parameter #%d (%s) are not compatible with the input dimensions %v",
				paramIdx, param, allowedDims)
		}
	}
	return nil
}

// verifyComparator validates a comparator (Sort) or selector (SelectAndScatter) body: it takes two scalar
// parameters per input, with the element type of the input, and returns a scalar boolean.
func verifyComparator(name string, body Body, inputs []shapes.Shape) error {
	if len(body.Params) != 2*len(inputs) {
		return errorf(ReducerSignatureMismatch, "%s must take 2*%d=%d parameters, got %d",
			name, len(inputs), 2*len(inputs), len(body.Params))
	}
	for ii, param := range body.Params {
		input := inputs[ii/2]
		if !param.IsTensor() || (param.IsRanked() && param.Rank() != 0) {
			return paramErrorf(ReducerSignatureMismatch, ii, "%s parameter #%d must be a scalar, got %s", name, ii, param)
		}
		if !shapes.DTypesCompatible(param.ElementShape(), input.ElementShape(), false) {
			return paramErrorf(ReducerSignatureMismatch, ii, "%s parameter #%d (%s) must have the element type of input #%d (%s)",
				name, ii, param, ii/2, input)
		}
	}
	if len(body.Results) != 1 || !isScalarBool(body.Results[0]) {
		return errorf(ReducerSignatureMismatch, "%s must return a single scalar boolean, got %v", name, body.Results)
	}
	return nil
}

// isScalarBool returns whether the shape is a rank-0 (or unranked) boolean tensor.
func isScalarBool(shape shapes.Shape) bool {
	return shape.IsTensor() && !shape.IsQuantized() && shape.DType == dtypes.Bool && (!shape.IsRanked() || shape.Rank() == 0)
}
