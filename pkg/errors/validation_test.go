package errors

import (
	"math"
	"testing"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{"vertices zero", ValidateVertexCount(0), false},
		{"vertices max", ValidateVertexCount(MaxVertices), false},
		{"vertices negative", ValidateVertexCount(-1), true},
		{"vertices too many", ValidateVertexCount(MaxVertices + 1), true},
		{"probability zero", ValidateProbability(0), false},
		{"probability one", ValidateProbability(1), false},
		{"probability above", ValidateProbability(1.5), true},
		{"probability NaN", ValidateProbability(math.NaN()), true},
		{"bound unbounded", ValidateBound(-1), false},
		{"bound below", ValidateBound(-2), true},
		{"threshold zero", ValidateThreshold(0), false},
		{"threshold negative", ValidateThreshold(-1), true},
		{"depth one", ValidateDepth(1), false},
		{"depth zero", ValidateDepth(0), true},
		{"depth too deep", ValidateDepth(MaxDepth + 1), true},
		{"format ok", ValidateFormat("svg", []string{"svg", "png"}), false},
		{"format unknown", ValidateFormat("gif", []string{"svg", "png"}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if (tt.err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", tt.err, tt.wantErr)
			}
		})
	}
}

func TestValidatorsReturnCodes(t *testing.T) {
	if !Is(ValidateDepth(0), ErrCodeInvalidInput) {
		t.Error("ValidateDepth(0) is not INVALID_INPUT")
	}
	if !Is(ValidateFormat("gif", nil), ErrCodeInvalidFormat) {
		t.Error("ValidateFormat is not INVALID_FORMAT")
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput, ErrCodeInvalidGraph, ErrCodeInvalidFormat,
		ErrCodePrecondition, ErrCodeBudgetExceeded, ErrCodeInfeasible, ErrCodeTimeout,
		ErrCodeNotFound, ErrCodeUnsupported, ErrCodeInternal,
	}
	seen := make(map[Code]bool)
	for _, c := range codes {
		if seen[c] {
			t.Errorf("duplicate code %q", c)
		}
		seen[c] = true
	}
}
