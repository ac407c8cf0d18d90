package shapes

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/hloinfer/internal/utils"
)

// Quantization holds the parameters of a uniformly quantized element type:
// `expressed = (storage - zeroPoint) * scale`.
//
// It is either per-tensor (QuantizedAxis == -1, one scale and zero point) or per-axis (one scale and zero point
// per index of QuantizedAxis).
type Quantization struct {
	StorageType   dtypes.DType
	ExpressedType dtypes.DType

	// StorageMin and StorageMax bound the storage values. Both zero means the full range of StorageType.
	StorageMin, StorageMax int64

	Scales     []float64
	ZeroPoints []int64

	// QuantizedAxis is the axis for per-axis quantization, or -1 for per-tensor quantization.
	QuantizedAxis int
}

// Clone returns a deep copy.
func (q *Quantization) Clone() *Quantization {
	if q == nil {
		return nil
	}
	q2 := *q
	q2.Scales = slices.Clone(q.Scales)
	q2.ZeroPoints = slices.Clone(q.ZeroPoints)
	return &q2
}

// IsPerAxis returns whether this is a per-axis quantization.
func (q *Quantization) IsPerAxis() bool {
	return q != nil && q.QuantizedAxis >= 0
}

// Equal compares all quantization parameters. Two nil values are equal.
func (q *Quantization) Equal(q2 *Quantization) bool {
	if q == nil || q2 == nil {
		return q == q2
	}
	return q.StorageType == q2.StorageType &&
		q.ExpressedType == q2.ExpressedType &&
		q.StorageMin == q2.StorageMin && q.StorageMax == q2.StorageMax &&
		q.QuantizedAxis == q2.QuantizedAxis &&
		slices.Equal(q.Scales, q2.Scales) &&
		slices.Equal(q.ZeroPoints, q2.ZeroPoints)
}

// String returns a short description.
func (q *Quantization) String() string {
	if q == nil {
		return "<nil>"
	}
	if q.IsPerAxis() {
		return fmt.Sprintf("quant<%s:%s, axis=%d, %d scales>", q.StorageType, q.ExpressedType, q.QuantizedAxis, len(q.Scales))
	}
	return fmt.Sprintf("quant<%s:%s>", q.StorageType, q.ExpressedType)
}

// ToStableHLO returns the StableHLO spelling of the quantized element type, e.g.
// `!quant.uniform<i8:f32, 0.5:-3>` or `!quant.uniform<i8:f32:1, {0.5:0,0.25:1}>`.
func (q *Quantization) ToStableHLO() string {
	var sb strings.Builder
	sb.WriteString("!quant.uniform<")
	sb.WriteString(utils.DTypeToStableHLO(q.StorageType))
	if q.StorageMin != 0 || q.StorageMax != 0 {
		_, _ = fmt.Fprintf(&sb, "<%d:%d>", q.StorageMin, q.StorageMax)
	}
	sb.WriteString(":")
	sb.WriteString(utils.DTypeToStableHLO(q.ExpressedType))
	param := func(i int) string {
		var zp int64
		if i < len(q.ZeroPoints) {
			zp = q.ZeroPoints[i]
		}
		var scale float64
		if i < len(q.Scales) {
			scale = q.Scales[i]
		}
		return fmt.Sprintf("%g:%d", scale, zp)
	}
	if q.IsPerAxis() {
		_, _ = fmt.Fprintf(&sb, ":%d, {", q.QuantizedAxis)
		for i := range q.Scales {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(param(i))
		}
		sb.WriteString("}>")
		return sb.String()
	}
	sb.WriteString(", ")
	sb.WriteString(param(0))
	sb.WriteString(">")
	return sb.String()
}
