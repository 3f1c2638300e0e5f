package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecorders(t *testing.T) {
	before := testutil.ToFloat64(runsTotal.WithLabelValues("error"))
	RecordRun(errors.New("boom"))
	require.Equal(t, before+1, testutil.ToFloat64(runsTotal.WithLabelValues("error")))

	p := testutil.ToFloat64(placements.WithLabelValues("reseed"))
	RecordPlacement("reseed")
	require.Equal(t, p+1, testutil.ToFloat64(placements.WithLabelValues("reseed")))

	RecordIteration("improved", 0.25, 7)
	require.Equal(t, 0.25, testutil.ToFloat64(temperature))
	require.Equal(t, 7.0, testutil.ToFloat64(bestSeats))

	w := testutil.ToFloat64(warnings.WithLabelValues("non_contiguous"))
	RecordWarning("non_contiguous")
	require.Equal(t, w+1, testutil.ToFloat64(warnings.WithLabelValues("non_contiguous")))

	ObservePhase("grow", 0.01)
	require.Equal(t, 1, testutil.CollectAndCount(phaseDuration, "redistrict_plan_phase_duration_seconds"))
}
