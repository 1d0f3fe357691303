package curve

import (
	"fmt"
	"math"

	"github.com/AntoniaRiedl/biostats/errs"
)

// Estimator evaluates a fitted calibration curve in both directions.
//
// Estimate is the forward predict function (concentration → OD) handed
// to plotting collaborators for rendering the curve over an arbitrary
// concentration range. Inverse maps a corrected OD back to a
// concentration and is what sample prediction uses.
type Estimator interface {
	// Estimate predicts the OD response at a given concentration.
	Estimate(conc float64) float64
	// Inverse estimates the concentration producing a given OD.
	// Returns errs.ErrDivisionByZeroSlope or errs.ErrPredictionOutOfRange
	// when the curve cannot be inverted at that OD.
	Inverse(od float64) (float64, error)
	// Type returns the model family.
	Type() ModelType
	// Coefficients returns the fitted parameters.
	Coefficients() []float64
}

// LinearEstimator implements the linear model: OD = a*C + b.
type LinearEstimator struct {
	a, b   float64
	coeffs []float64 // cached coefficient slice
}

// NewLinearEstimator creates a linear estimator with slope a and
// intercept b.
func NewLinearEstimator(a, b float64) *LinearEstimator {
	return &LinearEstimator{a: a, b: b, coeffs: make([]float64, 2)}
}

// Estimate predicts OD = a*C + b.
func (l *LinearEstimator) Estimate(conc float64) float64 {
	return l.a*conc + l.b
}

// Inverse solves C = (OD - b) / a. Fails with
// errs.ErrDivisionByZeroSlope when the fitted slope is zero.
func (l *LinearEstimator) Inverse(od float64) (float64, error) {
	if l.a == 0 {
		return 0, errs.ErrDivisionByZeroSlope
	}

	return (od - l.b) / l.a, nil
}

// Type returns ModelTypeLinear.
func (l *LinearEstimator) Type() ModelType {
	return ModelTypeLinear
}

// Coefficients returns [a, b].
func (l *LinearEstimator) Coefficients() []float64 {
	l.coeffs[0] = l.a
	l.coeffs[1] = l.b

	return l.coeffs
}

// FourPLEstimator implements the four-parameter logistic model:
// OD = d + (a-d)/(1+(C/c)^b), with a the response at zero concentration,
// d the response at infinite concentration, c the inflection
// concentration and b the slope factor.
type FourPLEstimator struct {
	a, b, c, d float64
	coeffs     []float64 // cached coefficient slice
}

// NewFourPLEstimator creates a 4PL estimator with the given parameters.
func NewFourPLEstimator(a, b, c, d float64) *FourPLEstimator {
	return &FourPLEstimator{a: a, b: b, c: c, d: d, coeffs: make([]float64, 4)}
}

// Estimate predicts OD = d + (a-d)/(1+(C/c)^b). The result is NaN at
// negative concentrations with a non-integer slope factor, where the
// curve is mathematically undefined.
func (f *FourPLEstimator) Estimate(conc float64) float64 {
	return f.d + (f.a-f.d)/(1+math.Pow(conc/f.c, f.b))
}

// Inverse solves the closed form C = c*((a-d)/(OD-d) - 1)^(1/b).
// Fails with errs.ErrPredictionOutOfRange when OD equals the upper
// asymptote d, when the slope factor is zero, or when the base of the
// fractional power is negative with a non-integer exponent (no real
// solution).
func (f *FourPLEstimator) Inverse(od float64) (float64, error) {
	if od == f.d {
		return 0, fmt.Errorf("%w: OD %g equals asymptote d", errs.ErrPredictionOutOfRange, od)
	}
	if f.b == 0 {
		return 0, fmt.Errorf("%w: slope factor b is zero", errs.ErrPredictionOutOfRange)
	}

	base := (f.a-f.d)/(od-f.d) - 1
	exp := 1 / f.b
	if base < 0 && exp != math.Trunc(exp) {
		return 0, fmt.Errorf("%w: OD %g has no real concentration on this curve", errs.ErrPredictionOutOfRange, od)
	}

	conc := f.c * math.Pow(base, exp)
	if math.IsNaN(conc) || math.IsInf(conc, 0) {
		return 0, fmt.Errorf("%w: OD %g maps to a non-finite concentration", errs.ErrPredictionOutOfRange, od)
	}

	return conc, nil
}

// Type returns ModelTypeFourPL.
func (f *FourPLEstimator) Type() ModelType {
	return ModelTypeFourPL
}

// Coefficients returns [a, b, c, d].
func (f *FourPLEstimator) Coefficients() []float64 {
	f.coeffs[0] = f.a
	f.coeffs[1] = f.b
	f.coeffs[2] = f.c
	f.coeffs[3] = f.d

	return f.coeffs
}

// NewEstimator creates an estimator from a model type and coefficient
// vector. Collaborators use this to rebuild the forward predict
// function from a stored Model descriptor, e.g. for plotting.
//
// Expected coefficients: [a, b] for linear, [a, b, c, d] for 4PL.
func NewEstimator(modelType ModelType, coeffs []float64) (Estimator, error) {
	switch modelType {
	case ModelTypeLinear:
		if len(coeffs) != 2 {
			return nil, fmt.Errorf("linear model expects exactly 2 coefficients, got %d", len(coeffs))
		}

		return NewLinearEstimator(coeffs[0], coeffs[1]), nil
	case ModelTypeFourPL:
		if len(coeffs) != 4 {
			return nil, fmt.Errorf("4PL model expects exactly 4 coefficients, got %d", len(coeffs))
		}

		return NewFourPLEstimator(coeffs[0], coeffs[1], coeffs[2], coeffs[3]), nil
	default:
		return nil, fmt.Errorf("unknown model type: %d", modelType)
	}
}
