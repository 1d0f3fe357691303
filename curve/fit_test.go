package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AntoniaRiedl/biostats/errs"
)

// fourPL evaluates the logistic reference curve used to generate
// synthetic test data.
func fourPL(conc, a, b, c, d float64) float64 {
	return d + (a-d)/(1+math.Pow(conc/c, b))
}

func TestFitLinear_RecoversNoiselessLine(t *testing.T) {
	// OD = 2*C + 1
	concs := []float64{0.5, 1, 2, 4}
	ods := make([]float64, len(concs))
	for i, c := range concs {
		ods[i] = 2*c + 1
	}

	model, err := FitLinear(concs, ods)
	require.NoError(t, err)
	require.Equal(t, ModelTypeLinear, model.Type)
	require.InDelta(t, 2, model.Coefficients[0], 1e-12, "slope")
	require.InDelta(t, 1, model.Coefficients[1], 1e-12, "intercept")
	require.InDelta(t, 1, model.RSquared, 1e-12)
}

func TestFitLinear_InsufficientPoints(t *testing.T) {
	t.Run("single point", func(t *testing.T) {
		_, err := FitLinear([]float64{1}, []float64{0.4})
		require.ErrorIs(t, err, errs.ErrInsufficientPoints)
	})

	t.Run("repeated concentration", func(t *testing.T) {
		_, err := FitLinear([]float64{1, 1, 1}, []float64{0.4, 0.5, 0.6})
		require.ErrorIs(t, err, errs.ErrInsufficientPoints)
	})
}

func TestFitFourPL_RecoversKnownParameters(t *testing.T) {
	const (
		a = 2.0
		b = 1.3
		c = 1.0
		d = 0.1
	)
	concs := []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8, 16}
	ods := make([]float64, len(concs))
	for i, conc := range concs {
		ods[i] = fourPL(conc, a, b, c, d)
	}

	model, err := FitFourPL(concs, ods, DefaultMaxIterations)
	require.NoError(t, err)
	require.Equal(t, ModelTypeFourPL, model.Type)
	require.InDelta(t, a, model.Coefficients[0], 0.05, "a")
	require.InDelta(t, b, model.Coefficients[1], 0.05, "b")
	require.InDelta(t, c, model.Coefficients[2], 0.05, "c")
	require.InDelta(t, d, model.Coefficients[3], 0.05, "d")
	require.Greater(t, model.RSquared, 0.999)
}

func TestFitFourPL_Deterministic(t *testing.T) {
	concs := []float64{0.1, 0.5, 1, 2, 8}
	ods := make([]float64, len(concs))
	for i, conc := range concs {
		ods[i] = fourPL(conc, 1.8, 1, 0.9, 0.05)
	}

	first, err := FitFourPL(concs, ods, DefaultMaxIterations)
	require.NoError(t, err)
	second, err := FitFourPL(concs, ods, DefaultMaxIterations)
	require.NoError(t, err)

	require.Equal(t, first.Coefficients, second.Coefficients,
		"refitting identical data must reproduce identical parameters")
	require.Equal(t, first.RSquared, second.RSquared)
}

func TestFitFourPL_IterationCap(t *testing.T) {
	concs := []float64{0.1, 0.5, 1, 2, 8}
	ods := make([]float64, len(concs))
	for i, conc := range concs {
		ods[i] = fourPL(conc, 1.8, 1, 0.9, 0.05)
	}

	_, err := FitFourPL(concs, ods, 1)
	require.ErrorIs(t, err, errs.ErrFitDidNotConverge,
		"hitting the iteration cap is a recoverable non-convergence, not a panic")
}

func TestFit_SelectsFourPLOnSigmoidData(t *testing.T) {
	concs := []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8, 16}
	ods := make([]float64, len(concs))
	for i, conc := range concs {
		ods[i] = fourPL(conc, 2.0, 1.3, 1.0, 0.1)
	}

	result, err := Fit(concs, ods, DefaultMaxIterations)
	require.NoError(t, err)
	require.NotNil(t, result.FourPL)
	require.NoError(t, result.FourPLErr)
	require.Equal(t, ModelTypeFourPL, result.Selected.Type,
		"4PL should win on sigmoid data where its R² is strictly higher")
	require.Greater(t, result.FourPL.RSquared, result.Linear.RSquared)
}

func TestFit_FallsBackToLinearWhenFourPLFails(t *testing.T) {
	// A one-iteration cap forces the 4PL branch to fail regardless of
	// how well it could have fit.
	concs := []float64{0.5, 1, 2, 4}
	ods := make([]float64, len(concs))
	for i, c := range concs {
		ods[i] = 0.3*c + 0.05
	}

	result, err := Fit(concs, ods, 1)
	require.NoError(t, err, "a non-converging 4PL fit must not abort the analysis")
	require.Nil(t, result.FourPL)
	require.ErrorIs(t, result.FourPLErr, errs.ErrFitDidNotConverge)
	require.Equal(t, ModelTypeLinear, result.Selected.Type)
}

func TestFit_TieFavorsLinear(t *testing.T) {
	// On a noiseless line the linear fit reaches R² = 1; the 4PL fit can
	// at best tie, and a tie must select linear.
	concs := []float64{0.5, 1, 2}
	ods := []float64{0.2, 0.4, 0.8}

	result, err := Fit(concs, ods, DefaultMaxIterations)
	require.NoError(t, err)
	require.InDelta(t, 1, result.Linear.RSquared, 1e-12)
	require.Equal(t, ModelTypeLinear, result.Selected.Type)
}

func TestFit_MismatchedLengths(t *testing.T) {
	_, err := Fit([]float64{1, 2}, []float64{0.1}, DefaultMaxIterations)
	require.Error(t, err)
}

func TestRSquared(t *testing.T) {
	t.Run("perfect fit", func(t *testing.T) {
		obs := []float64{1, 2, 3}
		require.InDelta(t, 1, rSquared(obs, obs), 1e-12)
	})

	t.Run("zero variance", func(t *testing.T) {
		obs := []float64{2, 2, 2}
		pred := []float64{2, 2, 2}
		require.Zero(t, rSquared(obs, pred))
	})
}
