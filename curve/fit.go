package curve

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/optimize"

	"github.com/AntoniaRiedl/biostats/errs"
)

// DefaultMaxIterations caps the 4PL solver. The cap guarantees the fit
// terminates in finite time on any input; hitting it yields
// errs.ErrFitDidNotConverge instead of running unbounded.
const DefaultMaxIterations = 2000

// Fit fits both candidate models to the aggregated standard points and
// selects one by R². concs and ods must be the per-concentration
// aggregates in matching order; raw replicate readings never reach this
// function.
//
// Selection rule: the linear model is selected when the 4PL fit did not
// converge, or when its R² is not strictly greater than the linear R²
// (a tie favors linear). The non-converging branch is recorded in
// Result.FourPLErr and is an informational outcome, not a failure of
// Fit itself.
func Fit(concs, ods []float64, maxIterations int) (*Result, error) {
	if len(concs) != len(ods) {
		return nil, fmt.Errorf("mismatched data lengths: %d concentrations vs %d ODs", len(concs), len(ods))
	}

	linear, err := FitLinear(concs, ods)
	if err != nil {
		return nil, err
	}

	result := &Result{Linear: linear}

	fourPL, fitErr := FitFourPL(concs, ods, maxIterations)
	if fitErr != nil {
		result.FourPLErr = fitErr
		result.Selected = linear

		return result, nil
	}

	result.FourPL = fourPL
	if fourPL.RSquared > linear.RSquared {
		result.Selected = fourPL
	} else {
		result.Selected = linear
	}

	return result, nil
}

// FitLinear fits OD = a*C + b by closed-form ordinary least squares.
// Requires at least two distinct concentrations; fails with
// errs.ErrInsufficientPoints otherwise.
func FitLinear(concs, ods []float64) (*Model, error) {
	if distinctCount(concs) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 distinct concentrations, got %d",
			errs.ErrInsufficientPoints, distinctCount(concs))
	}

	n := len(concs)
	var sumX, sumY, sumXY, sumX2 float64
	for i := 0; i < n; i++ {
		sumX += concs[i]
		sumY += ods[i]
		sumXY += concs[i] * ods[i]
		sumX2 += concs[i] * concs[i]
	}

	meanX := sumX / float64(n)
	meanY := sumY / float64(n)
	a := (sumXY - float64(n)*meanX*meanY) / (sumX2 - float64(n)*meanX*meanX)
	b := meanY - a*meanX

	predicted := make([]float64, n)
	for i := 0; i < n; i++ {
		predicted[i] = a*concs[i] + b
	}

	return &Model{
		Type:         ModelTypeLinear,
		Coefficients: []float64{a, b},
		RSquared:     rSquared(ods, predicted),
		Formula:      fmt.Sprintf("OD = %.4g*C + %.4g", a, b),
		Estimator:    NewLinearEstimator(a, b),
	}, nil
}

// FitFourPL fits the four-parameter logistic OD = d + (a-d)/(1+(C/c)^b)
// by minimizing the residual sum of squares with Nelder-Mead, capped at
// maxIterations major iterations (DefaultMaxIterations if <= 0).
//
// The initial guess is a deterministic function of the data — a at the
// observed max OD, d at the observed min OD, c at the median
// concentration, b at 1 — so refitting identical data reproduces the
// same parameters. Iteration-limit or numerical-instability outcomes
// return errs.ErrFitDidNotConverge; they never propagate as panics.
func FitFourPL(concs, ods []float64, maxIterations int) (*Model, error) {
	if distinctCount(concs) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 distinct concentrations, got %d",
			errs.ErrInsufficientPoints, distinctCount(concs))
	}
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	problem := optimize.Problem{
		Func: func(p []float64) float64 {
			return fourPLResidualSS(concs, ods, p)
		},
	}
	settings := &optimize.Settings{MajorIterations: maxIterations}

	sol, err := optimize.Minimize(problem, fourPLInitialGuess(concs, ods), settings, &optimize.NelderMead{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrFitDidNotConverge, err)
	}
	if sol.Status == optimize.IterationLimit {
		return nil, fmt.Errorf("%w: iteration cap of %d reached", errs.ErrFitDidNotConverge, maxIterations)
	}
	if statusErr := sol.Status.Err(); statusErr != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrFitDidNotConverge, statusErr)
	}

	a, b, c, d := sol.X[0], sol.X[1], sol.X[2], sol.X[3]
	if c <= 0 || !finite(a, b, c, d) || math.IsInf(sol.F, 0) || math.IsNaN(sol.F) {
		return nil, fmt.Errorf("%w: solver produced unstable parameters", errs.ErrFitDidNotConverge)
	}

	est := NewFourPLEstimator(a, b, c, d)
	predicted := make([]float64, len(concs))
	for i, conc := range concs {
		predicted[i] = est.Estimate(conc)
		if math.IsNaN(predicted[i]) || math.IsInf(predicted[i], 0) {
			return nil, fmt.Errorf("%w: non-finite residual at concentration %g", errs.ErrFitDidNotConverge, conc)
		}
	}

	return &Model{
		Type:         ModelTypeFourPL,
		Coefficients: []float64{a, b, c, d},
		RSquared:     rSquared(ods, predicted),
		Formula:      fmt.Sprintf("OD = %.4g + (%.4g - %.4g)/(1+(C/%.4g)^%.4g)", d, a, d, c, b),
		Estimator:    est,
	}, nil
}

// fourPLInitialGuess derives the deterministic starting point [a, b, c, d]
// for the solver: a at the observed max OD, d at the observed min OD,
// c at the median concentration, b at 1.
func fourPLInitialGuess(concs, ods []float64) []float64 {
	maxOD, minOD := ods[0], ods[0]
	for _, od := range ods[1:] {
		maxOD = math.Max(maxOD, od)
		minOD = math.Min(minOD, od)
	}

	// concs is validated non-empty by the caller, so Median cannot fail.
	median, err := stats.Median(concs)
	if err != nil || median <= 0 {
		median = 1
	}

	return []float64{maxOD, 1, median, minOD}
}

// fourPLResidualSS is the solver objective: the residual sum of squares
// of the 4PL curve with parameters p = [a, b, c, d] against the
// aggregated points. Parameter vectors outside the model's domain
// (non-positive c, non-finite entries) score +Inf so the simplex backs
// away from them.
func fourPLResidualSS(concs, ods, p []float64) float64 {
	a, b, c, d := p[0], p[1], p[2], p[3]
	if c <= 0 || !finite(a, b, c, d) {
		return math.Inf(1)
	}

	var rss float64
	for i, conc := range concs {
		pred := d + (a-d)/(1+math.Pow(conc/c, b))
		if math.IsNaN(pred) || math.IsInf(pred, 0) {
			return math.Inf(1)
		}
		diff := pred - ods[i]
		rss += diff * diff
	}

	return rss
}

// rSquared computes the coefficient of determination
// R² = 1 - SS_res/SS_tot around the mean of the observed values. With
// zero total variance the fit explains nothing, so 0 is returned.
func rSquared(observed, predicted []float64) float64 {
	var mean float64
	for _, o := range observed {
		mean += o
	}
	mean /= float64(len(observed))

	var ssTot, ssRes float64
	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		ssRes += (observed[i] - predicted[i]) * (observed[i] - predicted[i])
	}
	if ssTot == 0 {
		return 0
	}

	return 1 - ssRes/ssTot
}

func distinctCount(values []float64) int {
	seen := make(map[float64]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}

	return len(seen)
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
