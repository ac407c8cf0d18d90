package shapeinference

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/hloinfer/types/shapes"
)

// refineBranches checks that all branches return the same number of compatible results, and returns the refined
// results.
func refineBranches(opName string, branches [][]shapes.Shape) ([]shapes.Shape, error) {
	if len(branches) == 0 {
		return nil, errorf(ReducerSignatureMismatch, "%s requires at least one branch", opName)
	}
	results := cloneAll(branches[0])
	for branchIdx, branch := range branches[1:] {
		if len(branch) != len(results) {
			return nil, errorf(IncompatibleShape, "%s: branch #0 returns %d results, but branch #%d returns %d",
				opName, len(results), branchIdx+1, len(branch))
		}
		for ii, result := range branch {
			if !shapes.Compatible(results[ii], result, false) {
				return nil, errorf(IncompatibleShape, "%s: result #%d of branch #%d (%s) is not compatible with the one of the previous branches (%s)",
					opName, ii, branchIdx+1, result, results[ii])
			}
			refined, err := shapes.Refine(results[ii], result)
			if err != nil {
				return nil, errorf(IncompatibleShape, "%s: %v", opName, err)
			}
			results[ii] = refined
		}
	}
	return results, nil
}

// If returns the refined results of the branches (the true and false branches), after checking that pred is a
// scalar boolean.
func If(pred shapes.Shape, branches [][]shapes.Shape) ([]shapes.Shape, error) {
	if !isScalarBool(pred) {
		return nil, errorf(IncompatibleShape, "If: pred must be a scalar boolean, got %s", pred)
	}
	if len(branches) != 2 {
		return nil, errorf(ReducerSignatureMismatch, "If requires 2 branches (true and false), got %d", len(branches))
	}
	return refineBranches("If", branches)
}

// Case returns the refined results of the branches, after checking that index is a scalar Int32.
func Case(index shapes.Shape, branches [][]shapes.Shape) ([]shapes.Shape, error) {
	if err := checkScalar("index", index); err != nil {
		return nil, err
	}
	if index.IsQuantized() || index.DType != dtypes.Int32 {
		return nil, errorf(IncompatibleElementType, "Case: index must be an Int32 scalar, got %s", index)
	}
	return refineBranches("Case", branches)
}

// checkRegionParams checks that the region parameters are compatible with the operands.
func checkRegionParams(name string, params, operands []shapes.Shape) error {
	if len(params) != len(operands) {
		return errorf(ReducerSignatureMismatch, "%s must take %d parameters, one per operand, got %d", name, len(operands), len(params))
	}
	for ii, param := range params {
		if !shapes.Compatible(param, operands[ii], false) {
			return paramErrorf(ReducerSignatureMismatch, ii, "%s parameter #%d (%s) is not compatible with operand #%d (%s)",
				name, ii, param, ii, operands[ii])
		}
	}
	return nil
}

// While returns the shapes of the operands, after checking the condition and the body: they both take one
// parameter per operand, the condition returns a scalar boolean, and the body returns values compatible with
// the operands.
func While(operands []shapes.Shape, cond, body Body) ([]shapes.Shape, error) {
	if err := checkRegionParams("While condition", cond.Params, operands); err != nil {
		return nil, err
	}
	if len(cond.Results) != 1 || !isScalarBool(cond.Results[0]) {
		return nil, errorf(ReducerSignatureMismatch, "While condition must return a single scalar boolean, got %v", cond.Results)
	}
	if err := checkRegionParams("While body", body.Params, operands); err != nil {
		return nil, err
	}
	if len(body.Results) != len(operands) {
		return nil, errorf(ReducerSignatureMismatch, "While body must return %d results, one per operand, got %d",
			len(operands), len(body.Results))
	}
	for ii, result := range body.Results {
		if !shapes.Compatible(result, operands[ii], false) {
			return nil, errorf(ReducerSignatureMismatch, "While body result #%d (%s) is not compatible with operand #%d (%s)",
				ii, result, ii, operands[ii])
		}
	}
	return cloneAll(operands), nil
}

// Return checks that the returned operands are compatible with the results expected by the enclosing region,
// and returns them.
func Return(operands, expected []shapes.Shape) ([]shapes.Shape, error) {
	if len(operands) != len(expected) {
		return nil, errorf(ReducerSignatureMismatch, "Return: the region must return %d values, got %d", len(expected), len(operands))
	}
	for ii, operand := range operands {
		if !shapes.Compatible(operand, expected[ii], false) {
			return nil, errorf(ReducerSignatureMismatch, "Return: value #%d (%s) is not compatible with the expected result %s",
				ii, operand, expected[ii])
		}
	}
	return cloneAll(operands), nil
}
