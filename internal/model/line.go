package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is returned when a line parameter is not a finite
// real number, e.g. malformed numeric input from a text field.
var ErrInvalidParameter = errors.New("invalid parameter")

// LineModel holds the current line y = m·x + b. A session has exactly one;
// the parameters are only ever reassigned, never destroyed.
type LineModel struct {
	m, b float64
}

// NewLineModel creates a line with the initial parameters m=1, b=0.
func NewLineModel() *LineModel {
	return &LineModel{m: 1.0, b: 0.0}
}

// Set replaces the line parameters. Non-finite values are rejected with
// ErrInvalidParameter and leave the line unchanged.
func (l *LineModel) Set(m, b float64) error {
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return fmt.Errorf("slope %v: %w", m, ErrInvalidParameter)
	}
	if math.IsNaN(b) || math.IsInf(b, 0) {
		return fmt.Errorf("intercept %v: %w", b, ErrInvalidParameter)
	}
	l.m = m
	l.b = b
	return nil
}

// Params returns the current slope and intercept.
func (l *LineModel) Params() (m, b float64) {
	return l.m, l.b
}

// EvaluateAt returns m·x + b for a single x.
func (l *LineModel) EvaluateAt(x float64) float64 {
	return l.m*x + l.b
}

// Evaluate returns m·x + b for each x, preserving order and length.
func (l *LineModel) Evaluate(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = l.m*x + l.b
	}
	return ys
}

// Format returns the display form "y = m·x ± |b|" with three decimals.
// The sign shown between the terms follows the sign of b.
func (l *LineModel) Format() string {
	sign := "+"
	if l.b < 0 {
		sign = "-"
	}
	return fmt.Sprintf("y = %.3f·x %s %.3f", l.m, sign, math.Abs(l.b))
}
