package assay

import (
	"fmt"

	"github.com/AntoniaRiedl/biostats/curve"
	"github.com/AntoniaRiedl/biostats/plate"
)

// RoleAssignment names the wells participating in one analysis run.
// It is supplied fresh per run by the caller (UI or file collaborator);
// Analyze never stores it.
type RoleAssignment struct {
	// Blanks are the background wells. At least one usable reading is
	// required.
	Blanks []plate.WellID
	// Standards are the wells of known concentration, in selection
	// order. The order defines the replicate-to-concentration mapping:
	// contiguous equal-size blocks, first block first concentration.
	Standards []plate.WellID
	// Samples are the named groups of unknown wells, in caller order.
	Samples []SampleGroup
}

// SampleGroup names a set of wells measuring the same unknown sample.
type SampleGroup struct {
	Name  string
	Wells []plate.WellID
}

// StandardPoint is one aggregated calibration point: a known
// concentration together with the mean and sample standard deviation of
// its replicates' corrected ODs.
type StandardPoint struct {
	// Concentration is the known analyte concentration.
	Concentration float64
	// Wells lists the contributing replicate wells in order.
	Wells []plate.WellID
	// MeanOD is the mean corrected OD across usable replicates.
	MeanOD float64
	// SD is the sample standard deviation (n-1). NaN when the point has
	// fewer than two usable replicates.
	SD float64
}

// SampleResult is the per-group prediction outcome.
type SampleResult struct {
	// Name is the caller-assigned group name.
	Name string
	// Wells lists the contributing wells.
	Wells []plate.WellID
	// MeanOD is the mean corrected OD across usable wells. NaN when the
	// group had no usable reading.
	MeanOD float64
	// SD is the sample standard deviation of corrected ODs, NaN with
	// fewer than two usable wells.
	SD float64
	// Concentration is the predicted concentration, NaN when prediction
	// failed for this group.
	Concentration float64
	// Err carries the localized failure for this group, nil on success.
	Err error
}

// Warning records a localized, non-fatal issue tied to one sample group.
type Warning struct {
	// Group is the affected sample group name.
	Group string
	// Err is the underlying cause; matches one of the errs sentinels.
	Err error
}

func (w Warning) String() string {
	return fmt.Sprintf("sample %q: %v", w.Group, w.Err)
}

// Result is the immutable outcome of one analysis run.
type Result struct {
	// Background is the scalar blank background subtracted from every OD.
	Background float64
	// Standards is the aggregated standard table in concentration-list
	// order.
	Standards []StandardPoint
	// Curve holds both fitted models and the selection outcome. The
	// selected model's Estimator is the reusable forward-predict
	// function for plotting collaborators.
	Curve *curve.Result
	// Samples holds one entry per sample group, in caller order.
	Samples []SampleResult
	// Warnings lists the localized per-sample issues of this run.
	Warnings []Warning
	// Notes lists informational events, e.g. the 4PL fit not converging
	// and the linear model being used instead.
	Notes []string
}

// Model returns the selected fitted model.
func (r *Result) Model() *curve.Model {
	return r.Curve.Selected
}
