// Package errs defines the sentinel errors shared across biostats packages.
//
// Errors fall into two families with different propagation rules:
//
//   - Validation errors (ErrMissingBlank, ErrInvalidConcentrationList,
//     ErrReplicateMismatch, ErrInsufficientPoints, ErrWellNotFound on
//     blank/standard wells) abort the whole analysis; no partial results
//     are produced.
//   - Localized errors (ErrDivisionByZeroSlope, ErrPredictionOutOfRange,
//     ErrWellNotFound on sample wells) mark one sample group's prediction
//     missing and are surfaced as warnings while the rest of the run
//     stays valid.
//
// ErrFitDidNotConverge sits in between: the 4PL fit failing is recovered
// by falling back to the linear model and is reported as an informational
// note, never as an analysis failure.
//
// Callers match with errors.Is:
//
//	result, err := assay.Analyze(ds, roles, concs)
//	if errors.Is(err, errs.ErrReplicateMismatch) {
//	    // standard well count is not a multiple of the concentration count
//	}
package errs

import "errors"

var (
	// ErrMissingBlank indicates the blank well set is empty or every blank
	// well has a missing OD, so no background can be computed.
	ErrMissingBlank = errors.New("no usable blank wells")

	// ErrInvalidConcentrationList indicates the standard concentration list
	// is empty or contains non-positive or non-finite entries.
	ErrInvalidConcentrationList = errors.New("invalid concentration list")

	// ErrReplicateMismatch indicates the number of standard wells is not an
	// exact multiple of the number of concentrations, so wells cannot be
	// partitioned into equal replicate blocks.
	ErrReplicateMismatch = errors.New("standard well count is not a multiple of concentration count")

	// ErrInsufficientPoints indicates there are fewer than two distinct
	// standard points, which is not enough to fit any curve.
	ErrInsufficientPoints = errors.New("insufficient standard points")

	// ErrFitDidNotConverge indicates the 4PL solver hit its iteration cap
	// or ran into numerical instability. Recoverable: the linear model is
	// used instead.
	ErrFitDidNotConverge = errors.New("4PL fit did not converge")

	// ErrDivisionByZeroSlope indicates the linear model has slope zero and
	// cannot be inverted.
	ErrDivisionByZeroSlope = errors.New("linear model has zero slope")

	// ErrPredictionOutOfRange indicates an OD that the fitted curve cannot
	// map back to a real concentration.
	ErrPredictionOutOfRange = errors.New("OD outside invertible range of fitted curve")

	// ErrWellNotFound indicates a referenced well ID is absent from the
	// dataset.
	ErrWellNotFound = errors.New("well not found in dataset")
)
