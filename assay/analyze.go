package assay

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/AntoniaRiedl/biostats/curve"
	"github.com/AntoniaRiedl/biostats/errs"
	"github.com/AntoniaRiedl/biostats/internal/options"
	"github.com/AntoniaRiedl/biostats/plate"
)

// Analyze runs one full analysis: blank correction, replicate
// aggregation, curve fitting, model selection and per-sample prediction.
//
// concentrations is the ordered list of standard concentrations, all
// positive. roles.Standards must contain an exact multiple of
// len(concentrations) wells; the ordered list is partitioned into
// contiguous equal blocks matched positionally to the concentrations.
//
// Validation failures abort with a single error and no partial results.
// Per-sample prediction failures are localized: the group's
// concentration is NaN, a Warning is recorded, and every other group and
// the standard curve stay valid.
func Analyze(ds *plate.Dataset, roles RoleAssignment, concentrations []float64, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	if err := validateConcentrations(concentrations); err != nil {
		return nil, err
	}
	if len(roles.Standards)%len(concentrations) != 0 {
		return nil, fmt.Errorf("%w: %d standard wells for %d concentrations",
			errs.ErrReplicateMismatch, len(roles.Standards), len(concentrations))
	}
	if len(roles.Standards) == 0 {
		return nil, fmt.Errorf("%w: no standard wells selected", errs.ErrInsufficientPoints)
	}

	background, err := ds.Background(roles.Blanks)
	if err != nil {
		return nil, err
	}
	corrected := ds.Corrected(background)
	if err := assignRoles(corrected, roles); err != nil {
		return nil, err
	}

	standards, err := aggregateStandards(corrected, roles.Standards, concentrations)
	if err != nil {
		return nil, err
	}

	concs := make([]float64, len(standards))
	meanODs := make([]float64, len(standards))
	for i, sp := range standards {
		concs[i] = sp.Concentration
		meanODs[i] = sp.MeanOD
	}

	fit, err := curve.Fit(concs, meanODs, cfg.maxIterations)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Background: background,
		Standards:  standards,
		Curve:      fit,
	}
	if fit.FourPLErr != nil {
		note := fmt.Sprintf("4PL fit discarded, using linear model: %v", fit.FourPLErr)
		result.Notes = append(result.Notes, note)
		cfg.logger.Info().
			Err(fit.FourPLErr).
			Str("selected", fit.Selected.Type.String()).
			Msg("4PL fit did not converge, falling back to linear model")
	}

	result.Samples = make([]SampleResult, 0, len(roles.Samples))
	for _, group := range roles.Samples {
		sr := predictSample(corrected, group, fit.Selected)
		if sr.Err != nil {
			result.Warnings = append(result.Warnings, Warning{Group: group.Name, Err: sr.Err})
			cfg.logger.Warn().
				Err(sr.Err).
				Str("group", group.Name).
				Msg("sample prediction failed")
		}
		result.Samples = append(result.Samples, sr)
	}

	return result, nil
}

// validateConcentrations rejects empty lists and non-positive or
// non-finite entries with errs.ErrInvalidConcentrationList.
func validateConcentrations(concentrations []float64) error {
	if len(concentrations) == 0 {
		return fmt.Errorf("%w: list is empty", errs.ErrInvalidConcentrationList)
	}
	for i, c := range concentrations {
		if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
			return fmt.Errorf("%w: entry %d is %g, want a positive number",
				errs.ErrInvalidConcentrationList, i, c)
		}
	}

	return nil
}

// assignRoles tags every participating well with its role on the working
// copy, enforcing the one-role-per-well invariant. Absent blank or
// standard wells are fatal here; absent sample wells are handled
// per-group during prediction.
func assignRoles(ds *plate.Dataset, roles RoleAssignment) error {
	for _, id := range roles.Blanks {
		if err := ds.Assign(id, plate.RoleBlank); err != nil {
			return err
		}
	}
	for _, id := range roles.Standards {
		if err := ds.Assign(id, plate.RoleStandard); err != nil {
			return err
		}
	}

	return nil
}

// aggregateStandards partitions the ordered standard wells into
// contiguous equal-size blocks, one per concentration, and aggregates
// each block's corrected ODs into a StandardPoint. The mapping is purely
// positional; plate geometry never enters into it.
func aggregateStandards(ds *plate.Dataset, standards []plate.WellID, concentrations []float64) ([]StandardPoint, error) {
	blockSize := len(standards) / len(concentrations)
	points := make([]StandardPoint, len(concentrations))

	for i, conc := range concentrations {
		block := standards[i*blockSize : (i+1)*blockSize]

		usable := make([]float64, 0, len(block))
		for _, id := range block {
			od, ok := ds.OD(id)
			if !ok {
				return nil, fmt.Errorf("%w: standard well %s", errs.ErrWellNotFound, id)
			}
			if math.IsNaN(od) {
				continue
			}
			usable = append(usable, od)
		}
		if len(usable) == 0 {
			return nil, fmt.Errorf("%w: concentration %g has no usable replicate",
				errs.ErrInsufficientPoints, conc)
		}

		sd := math.NaN()
		if len(usable) >= 2 {
			sd = stat.StdDev(usable, nil)
		}
		points[i] = StandardPoint{
			Concentration: conc,
			Wells:         block,
			MeanOD:        stat.Mean(usable, nil),
			SD:            sd,
		}
	}

	return points, nil
}

// predictSample aggregates one sample group's corrected ODs and inverts
// the selected model at the group mean. Any failure is recorded on the
// returned SampleResult and voids only this group's prediction.
func predictSample(ds *plate.Dataset, group SampleGroup, model *curve.Model) SampleResult {
	sr := SampleResult{
		Name:          group.Name,
		Wells:         group.Wells,
		MeanOD:        math.NaN(),
		SD:            math.NaN(),
		Concentration: math.NaN(),
	}

	usable := make([]float64, 0, len(group.Wells))
	for _, id := range group.Wells {
		od, ok := ds.OD(id)
		if !ok {
			sr.Err = fmt.Errorf("%w: sample well %s", errs.ErrWellNotFound, id)
			return sr
		}
		if math.IsNaN(od) {
			continue
		}
		usable = append(usable, od)
	}
	if len(usable) == 0 {
		sr.Err = fmt.Errorf("%w: group has no usable reading", errs.ErrPredictionOutOfRange)
		return sr
	}

	sr.MeanOD = stat.Mean(usable, nil)
	if len(usable) >= 2 {
		sr.SD = stat.StdDev(usable, nil)
	}

	conc, err := model.Estimator.Inverse(sr.MeanOD)
	if err != nil {
		sr.Err = err
		return sr
	}
	sr.Concentration = conc

	return sr
}
