package validation_test

import (
	"testing"

	"github.com/katalvlaran/ivivc/diag"
	"github.com/katalvlaran/ivivc/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries(pred ...float64) []validation.Entry {
	ids := []string{"F1", "F2", "F3", "F4"}
	out := make([]validation.Entry, len(pred))
	for i, p := range pred {
		out[i] = validation.Entry{Subject: ids[i], Predicted: p, Observed: 100}
	}

	return out
}

func TestPercentError(t *testing.T) {
	pe, err := validation.PercentError(110, 100)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, pe, 1e-12)

	pe, err = validation.PercentError(80, 100)
	require.NoError(t, err)
	assert.InDelta(t, -20.0, pe, 1e-12)

	_, err = validation.PercentError(1, 0)
	assert.ErrorIs(t, err, diag.ErrDomain)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name             string
		pred             []float64
		th               validation.Thresholds
		passMean, passIn bool
		outliers         []string
	}{
		{"AllWithin", []float64{110, 95}, validation.DefaultThresholds(), true, true, nil},
		{"IndividualOutlier", []float64{120, 100, 100}, validation.DefaultThresholds(), true, false, []string{"F1"}},
		{"MeanTooHigh", []float64{112, 88, 112}, validation.DefaultThresholds(), false, true, nil},
		{"LooserThresholds", []float64{120, 100}, validation.Thresholds{MeanAbsPE: 20, IndividualAbsPE: 25}, true, true, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := validation.Validate(entries(tc.pred...), tc.th)
			require.NoError(t, err)
			assert.Equal(t, tc.passMean, res.PassesMean, "mean criterion")
			assert.Equal(t, tc.passIn, res.PassesIndividual, "individual criterion")
			assert.Equal(t, tc.passMean && tc.passIn, res.Pass)
			assert.Equal(t, tc.outliers, res.Outliers)
			assert.Equal(t, validation.Internal, res.Mode)
			assert.Len(t, res.Outcomes, len(tc.pred))
		})
	}
}

// TestValidate_OutlierFailsDespiteMean: 120 vs 100 is a 20 %PE and fails the
// individual limit even though the mean is fine.
func TestValidate_OutlierFailsDespiteMean(t *testing.T) {
	res, err := validation.Validate(entries(120, 100, 100, 100), validation.DefaultThresholds())
	require.NoError(t, err)
	assert.InDelta(t, 5.0, res.MeanAbsPE, 1e-12)
	assert.InDelta(t, 20.0, res.MaxAbsPE, 1e-12)
	assert.True(t, res.PassesMean)
	assert.False(t, res.Pass)
	assert.Equal(t, "fail", res.Verdict())
	assert.Equal(t, []string{"F1"}, res.Outliers)
	assert.False(t, res.Outcomes[0].Pass)
	assert.True(t, res.Outcomes[1].Pass)
}

func TestValidate_PerMetricMean(t *testing.T) {
	es := []validation.Entry{
		{Subject: "F1", Metric: validation.MetricCmax, Predicted: 101, Observed: 100},
		{Subject: "F2", Metric: validation.MetricCmax, Predicted: 99, Observed: 100},
		{Subject: "F1", Metric: validation.MetricAUC, Predicted: 113, Observed: 100},
		{Subject: "F2", Metric: validation.MetricAUC, Predicted: 113, Observed: 100},
	}
	res, err := validation.Validate(es, validation.DefaultThresholds())
	require.NoError(t, err)
	require.Len(t, res.Metrics, 2)
	assert.Equal(t, validation.MetricCmax, res.Metrics[0].Metric)
	assert.True(t, res.Metrics[0].PassesMean)
	assert.False(t, res.Metrics[1].PassesMean)
	assert.False(t, res.PassesMean, "AUC mean is 13")
	assert.True(t, res.PassesIndividual)
	assert.InDelta(t, 7.0, res.MeanAbsPE, 1e-12)
}

func TestValidate_Errors(t *testing.T) {
	_, err := validation.Validate(nil, validation.DefaultThresholds())
	assert.ErrorIs(t, err, diag.ErrInsufficientData)

	_, err = validation.Validate(entries(100), validation.Thresholds{})
	assert.ErrorIs(t, err, diag.ErrDomain)

	_, err = validation.Validate([]validation.Entry{{Subject: "Z", Predicted: 1, Observed: 0}}, validation.DefaultThresholds())
	require.ErrorIs(t, err, diag.ErrDomain)
	var de *diag.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "Z", de.Subject)
}

func TestValidateExternal(t *testing.T) {
	res, err := validation.ValidateExternal(entries(108), validation.DefaultThresholds())
	require.NoError(t, err)
	assert.Equal(t, validation.External, res.Mode)
	assert.True(t, res.Pass)
	assert.Equal(t, "pass", res.Verdict())
}
