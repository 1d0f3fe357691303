// Package curve fits calibration (standard) curves to aggregated
// concentration/OD points and inverts them to recover concentrations.
//
// Two model families are supported:
//
//   - Linear: OD = a*C + b, closed-form ordinary least squares.
//   - FourPL: OD = d + (a-d)/(1+(C/c)^b), the four-parameter logistic,
//     fit by nonlinear least squares (Nelder-Mead on the residual sum of
//     squares) with a hard iteration cap.
//
// Fit runs both and selects one by coefficient of determination: the
// 4PL model wins only when it converged and its R² is strictly greater
// than the linear R². A non-converging 4PL fit is a recoverable outcome
// (errs.ErrFitDidNotConverge), never a panic or an aborted analysis.
//
// The fitted Model carries an Estimator usable both as the forward
// predict function (concentration → OD, e.g. for plotting the curve)
// and as the inverse (OD → concentration) used for sample prediction.
//
//	result, err := curve.Fit(concs, meanODs, curve.DefaultMaxIterations)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	conc, err := result.Selected.Estimator.Inverse(0.48)
//
// Fitting consumes only per-concentration aggregates, never raw
// replicate readings; R² is computed against those same aggregates.
package curve
