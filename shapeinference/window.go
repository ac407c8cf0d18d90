package shapeinference

import (
	"fmt"

	"github.com/gomlx/hloinfer/attributes"
	"github.com/gomlx/hloinfer/types/shapes"
)

// WindowDimension holds the window parameters of one spatial axis, for the convolution, ReduceWindow and
// SelectAndScatter operations.
type WindowDimension struct {
	Size                    int
	Stride                  int
	PaddingLow, PaddingHigh int
	WindowDilation          int
	BaseDilation            int
	Reversal                bool
}

// String implements fmt.Stringer.
func (w WindowDimension) String() string {
	return fmt.Sprintf("{size=%d, stride=%d, padding=(%d,%d), window_dilation=%d, base_dilation=%d, reversal=%v}",
		w.Size, w.Stride, w.PaddingLow, w.PaddingHigh, w.WindowDilation, w.BaseDilation, w.Reversal)
}

// VerifyWindowAttributesAndInferWindowDimensions validates the window attributes and returns one WindowDimension
// per spatial axis.
//
// The spatial rank is given by len(windowSizes). The other attributes are optional (nil), in which case they
// take their default values: stride 1, padding 0, dilations 1 and no reversal. If given, they must have one
// value per spatial axis (AttributeArityMismatch).
//
// Window sizes, strides and dilations must be >= 1 (NonPositiveWindowAttribute). Paddings can be negative.
func VerifyWindowAttributesAndInferWindowDimensions(windowSizes, strides []int, padding [][2]int,
	baseDilations, windowDilations []int, reversal []bool) ([]WindowDimension, error) {
	rank := len(windowSizes)
	checkArity := func(name string, length int) error {
		if length != 0 && length != rank {
			return errorf(AttributeArityMismatch, "window has %d spatial axes, but %s has %d values", rank, name, length)
		}
		return nil
	}
	if err := checkArity("strides", len(strides)); err != nil {
		return nil, err
	}
	if err := checkArity("padding", len(padding)); err != nil {
		return nil, err
	}
	if err := checkArity("base dilations", len(baseDilations)); err != nil {
		return nil, err
	}
	if err := checkArity("window dilations", len(windowDilations)); err != nil {
		return nil, err
	}
	if err := checkArity("window reversal", len(reversal)); err != nil {
		return nil, err
	}

	window := make([]WindowDimension, rank)
	for axis, size := range windowSizes {
		dim := &window[axis]
		*dim = WindowDimension{Size: size, Stride: 1, WindowDilation: 1, BaseDilation: 1}
		if size < 1 {
			return nil, errorf(NonPositiveWindowAttribute, "window size of spatial axis %d must be >= 1, got %d", axis, size)
		}
		if len(strides) > 0 {
			dim.Stride = strides[axis]
			if dim.Stride < 1 {
				return nil, errorf(NonPositiveWindowAttribute, "window stride of spatial axis %d must be >= 1, got %d", axis, dim.Stride)
			}
		}
		if len(padding) > 0 {
			dim.PaddingLow, dim.PaddingHigh = padding[axis][0], padding[axis][1]
		}
		if len(windowDilations) > 0 {
			dim.WindowDilation = windowDilations[axis]
			if dim.WindowDilation < 1 {
				return nil, errorf(NonPositiveWindowAttribute, "window dilation of spatial axis %d must be >= 1, got %d", axis, dim.WindowDilation)
			}
		}
		if len(baseDilations) > 0 {
			dim.BaseDilation = baseDilations[axis]
			if dim.BaseDilation < 1 {
				return nil, errorf(NonPositiveWindowAttribute, "base dilation of spatial axis %d must be >= 1, got %d", axis, dim.BaseDilation)
			}
		}
		if len(reversal) > 0 {
			dim.Reversal = reversal[axis]
		}
	}
	return window, nil
}

// WindowAttributes are the raw (not decoded) window attributes of an operation. Any of them can be nil.
type WindowAttributes struct {
	WindowDimensions, WindowStrides, Padding, BaseDilations, WindowDilations, WindowReversal *attributes.Dense
}

// DecodeWindow decodes the raw window attributes for a window of the given spatial rank, filling in the defaults,
// and verifies them with VerifyWindowAttributesAndInferWindowDimensions.
//
// If WindowDimensions is nil, windowSizes is used instead (e.g. for convolutions the window sizes come from
// the kernel).
func DecodeWindow(attrs WindowAttributes, spatialRank int, windowSizes []int) ([]WindowDimension, error) {
	var err error
	if attrs.WindowDimensions != nil {
		windowSizes, err = attributes.Int1D(attrs.WindowDimensions, "window_dimensions", spatialRank, 1)
		if err != nil {
			return nil, attributeError(err)
		}
	}
	if len(windowSizes) != spatialRank {
		return nil, errorf(AttributeArityMismatch, "window must have %d spatial axes, got %d window sizes", spatialRank, len(windowSizes))
	}
	strides, err := attributes.Int1D(attrs.WindowStrides, "window_strides", spatialRank, 1)
	if err != nil {
		return nil, attributeError(err)
	}
	padding, err := attributes.Padding(attrs.Padding, spatialRank)
	if err != nil {
		return nil, attributeError(err)
	}
	baseDilations, err := attributes.Int1D(attrs.BaseDilations, "base_dilations", spatialRank, 1)
	if err != nil {
		return nil, attributeError(err)
	}
	windowDilations, err := attributes.Int1D(attrs.WindowDilations, "window_dilations", spatialRank, 1)
	if err != nil {
		return nil, attributeError(err)
	}
	reversal, err := attributes.Bool1D(attrs.WindowReversal, "window_reversal", spatialRank, false)
	if err != nil {
		return nil, attributeError(err)
	}
	return VerifyWindowAttributesAndInferWindowDimensions(windowSizes, strides, padding, baseDilations, windowDilations, reversal)
}

// DilatedBound returns the extent of a base of extent bound after dilation: (bound-1)*dilation+1.
// Unknown stays unknown, and 0 stays 0.
func DilatedBound(bound, dilation int) int {
	if bound == shapes.DimUnknown {
		return shapes.DimUnknown
	}
	if bound == 0 {
		return 0
	}
	return (bound-1)*dilation + 1
}

// StridedBound returns the number of windows of extent windowSize, placed every stride positions, that fit
// in a base of extent bound: floor((bound-windowSize)/stride)+1, or 0 if the window doesn't fit.
// Unknown stays unknown.
func StridedBound(bound, windowSize, stride int) int {
	if bound == shapes.DimUnknown || windowSize == shapes.DimUnknown {
		return shapes.DimUnknown
	}
	if bound < windowSize {
		return 0
	}
	return (bound-windowSize)/stride + 1
}

// InferWindowOutputShape returns the output extents of sliding the window over a base of the given extents:
//
//	paddedDilatedBase = b + paddingLow + paddingHigh + (b-1)*(baseDilation-1)
//	dilatedWindow = 1 + (size-1)*windowDilation
//	output = floor((paddedDilatedBase - dilatedWindow) / stride) + 1
//
// An unknown base extent yields an unknown output extent. If the padded and dilated base is smaller than
// the dilated window, the output extent is also unknown (never negative): it's up to the caller to decide
// whether that is an error.
//
// baseShape and window must have the same length.
func InferWindowOutputShape(baseShape []int, window []WindowDimension) []int {
	output := make([]int, len(window))
	for axis, dim := range window {
		b := baseShape[axis]
		if b == shapes.DimUnknown {
			output[axis] = shapes.DimUnknown
			continue
		}
		paddedDilatedBase := b + dim.PaddingLow + dim.PaddingHigh + max(b-1, 0)*(dim.BaseDilation-1)
		dilatedWindow := 1 + (dim.Size-1)*dim.WindowDilation
		if paddedDilatedBase < dilatedWindow {
			output[axis] = shapes.DimUnknown
			continue
		}
		output[axis] = (paddedDilatedBase-dilatedWindow)/dim.Stride + 1
	}
	return output
}

// checkWindowFits returns an IncompatibleShape error if any statically known base extent is too small for the
// (padded, dilated) window -- the case where InferWindowOutputShape yields unknown for a known base.
func checkWindowFits(baseShape []int, window []WindowDimension, output []int) error {
	for axis, dim := range window {
		if baseShape[axis] != shapes.DimUnknown && output[axis] == shapes.DimUnknown {
			return errorf(IncompatibleShape,
				"window %s of spatial axis %d doesn't fit the padded and dilated base of extent %d",
				dim, axis, baseShape[axis])
		}
	}
	return nil
}
