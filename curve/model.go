package curve

import (
	"fmt"
	"strings"
)

// ModelType identifies a calibration-curve family.
type ModelType uint8

const (
	// ModelTypeLinear is the straight-line model OD = a*C + b.
	ModelTypeLinear ModelType = iota
	// ModelTypeFourPL is the four-parameter logistic model
	// OD = d + (a-d)/(1+(C/c)^b).
	ModelTypeFourPL
)

func (mt ModelType) String() string {
	switch mt {
	case ModelTypeLinear:
		return "linear"
	case ModelTypeFourPL:
		return "4PL"
	default:
		return "unknown"
	}
}

// ModelTypeFromString returns the ModelType for a given name.
// Returns ModelType(255) for unknown names.
func ModelTypeFromString(name string) ModelType {
	switch strings.ToLower(name) {
	case "linear":
		return ModelTypeLinear
	case "4pl", "fourpl":
		return ModelTypeFourPL
	default:
		return ModelType(255)
	}
}

// Model is a fitted calibration curve: the model family, its fitted
// parameter vector, the coefficient of determination against the
// aggregated standard points, a human-readable formula, and the
// concrete Estimator for forward and inverse evaluation.
type Model struct {
	// Type is the model family (linear or 4PL).
	Type ModelType
	// Coefficients holds the fitted parameters: [a, b] for linear,
	// [a, b, c, d] for 4PL.
	Coefficients []float64
	// RSquared is the coefficient of determination against the
	// aggregated standard points (never raw replicates).
	RSquared float64
	// Formula is a human-readable representation of the fitted curve.
	Formula string
	// Estimator evaluates the fitted curve.
	Estimator Estimator
}

// String returns a short human-readable summary of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Type: %s, R²: %.4f, Formula: %s}", m.Type, m.RSquared, m.Formula)
}

// Result is the outcome of fitting both candidate models to one set of
// aggregated standard points. Exactly one branch exists in the pipeline:
// either the 4PL fit converged (FourPL non-nil) or it did not (FourPL
// nil, FourPLErr carries errs.ErrFitDidNotConverge and Selected is the
// linear model).
type Result struct {
	// Selected is the model chosen for prediction.
	Selected *Model
	// Linear is the closed-form least-squares line. Always present.
	Linear *Model
	// FourPL is the converged logistic fit, nil when the solver failed.
	FourPL *Model
	// FourPLErr records why the 4PL fit was discarded, nil on success.
	FourPLErr error
}

// String returns a short human-readable summary of the fit result.
func (r *Result) String() string {
	if r.Selected == nil {
		return "Result{Selected: nil}"
	}

	return fmt.Sprintf("Result{Selected: %s}", r.Selected)
}
