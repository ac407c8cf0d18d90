package shapes

import (
	"fmt"
	"io"
	"strings"

	"github.com/gomlx/hloinfer/internal/utils"
)

// ToStableHLO returns the StableHLO spelling of the shape's type, e.g. "tensor<?x10xf32>".
func (s Shape) ToStableHLO() string {
	var sb strings.Builder
	_ = s.WriteStableHLO(&sb)
	return sb.String()
}

// WriteStableHLO writes the StableHLO spelling of the shape's type to the given writer.
func (s Shape) WriteStableHLO(writer io.Writer) error {
	var err error
	w := func(format string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(writer, format, args...)
	}

	switch {
	case s.IsToken:
		w("!stablehlo.token")
		return err
	case s.IsTuple():
		w("tuple<")
		for i, subShape := range s.TupleShapes {
			if i > 0 {
				w(", ")
			}
			if err != nil {
				return err
			}
			err = subShape.WriteStableHLO(writer)
		}
		w(">")
		return err
	}

	w("tensor<")
	if s.Unranked {
		w("*x")
	} else if s.Rank() > 0 {
		for _, dim := range s.Dimensions {
			if dim == DimUnknown {
				w("?x")
			} else {
				w("%dx", dim)
			}
		}
	}
	if s.Quantization != nil {
		w("%s", s.Quantization.ToStableHLO())
	} else {
		w("%s", utils.DTypeToStableHLO(s.DType))
	}
	w(">")
	return err
}
