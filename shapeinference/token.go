package shapeinference

import (
	"fmt"

	"github.com/gomlx/hloinfer/types/shapes"
)

func checkToken(name string, shape shapes.Shape) error {
	if !shape.IsToken {
		return errorf(IncompatibleShape, "%s must be a token, got %s", name, shape)
	}
	return nil
}

// AfterAll returns a token, after checking all inputs are tokens.
func AfterAll(inputs []shapes.Shape) (shapes.Shape, error) {
	for ii, input := range inputs {
		if err := checkToken(fmt.Sprintf("inputs[%d]", ii), input); err != nil {
			return shapes.Invalid(), err
		}
	}
	return shapes.Token(), nil
}

// CreateToken returns a token.
func CreateToken() shapes.Shape {
	return shapes.Token()
}

// Send returns a token, after checking the token operand.
func Send(inputs []shapes.Shape, token shapes.Shape) (shapes.Shape, error) {
	if err := checkToken("token", token); err != nil {
		return shapes.Invalid(), err
	}
	if err := checkTensors("inputs", inputs); err != nil {
		return shapes.Invalid(), err
	}
	return shapes.Token(), nil
}

// Outfeed returns a token, after checking the token operand.
func Outfeed(inputs []shapes.Shape, token shapes.Shape) (shapes.Shape, error) {
	if err := checkToken("token", token); err != nil {
		return shapes.Invalid(), err
	}
	if err := checkTensors("inputs", inputs); err != nil {
		return shapes.Invalid(), err
	}
	return shapes.Token(), nil
}

// Recv returns the declared results followed by a token.
func Recv(token shapes.Shape, results []shapes.Shape) ([]shapes.Shape, error) {
	return receive("Recv", token, results)
}

// Infeed returns the declared results followed by a token.
func Infeed(token shapes.Shape, results []shapes.Shape) ([]shapes.Shape, error) {
	return receive("Infeed", token, results)
}

func receive(opName string, token shapes.Shape, results []shapes.Shape) ([]shapes.Shape, error) {
	if err := checkToken("token", token); err != nil {
		return nil, err
	}
	for ii, result := range results {
		if !result.IsTensor() {
			return nil, errorf(IncompatibleShape, "%s: results[%d] must be a tensor, got %s (the token is appended automatically)",
				opName, ii, result)
		}
	}
	return append(cloneAll(results), shapes.Token()), nil
}
