package errors

import (
	"math"
	"slices"
)

// Limits applied to caller-supplied parameters.
const (
	MaxVertices = 512
	MaxDepth    = 16
)

// ValidateVertexCount checks the size of a graph to generate.
func ValidateVertexCount(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "vertex count cannot be negative (got %d)", n)
	}
	if n > MaxVertices {
		return New(ErrCodeInvalidInput, "vertex count too large (max %d, got %d)", MaxVertices, n)
	}
	return nil
}

// ValidateProbability checks an edge probability.
func ValidateProbability(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return New(ErrCodeInvalidInput, "probability must be within [0, 1] (got %v)", p)
	}
	return nil
}

// ValidateBound checks a cover size bound, where -1 means unbounded.
func ValidateBound(k int) error {
	if k < -1 {
		return New(ErrCodeInvalidInput, "k must be -1 or non-negative (got %d)", k)
	}
	return nil
}

// ValidateThreshold checks the degree threshold used by the tops operators
// and kernelization.
func ValidateThreshold(k int) error {
	if k < 0 {
		return New(ErrCodeInvalidInput, "k must be non-negative (got %d)", k)
	}
	return nil
}

// ValidateDepth checks a coverage depth.
func ValidateDepth(depth int) error {
	if depth < 1 || depth > MaxDepth {
		return New(ErrCodeInvalidInput, "depth must be within [1, %d] (got %d)", MaxDepth, depth)
	}
	return nil
}

// ValidateFormat checks a render format against the supported list.
func ValidateFormat(format string, supported []string) error {
	if !slices.Contains(supported, format) {
		return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %v)", format, supported)
	}
	return nil
}
