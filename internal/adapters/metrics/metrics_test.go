package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/logodir/internal/ports"
)

func gather(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}

	t.Fatalf("metric %s not found", name)

	return nil
}

func TestNoopRecorder_AllMethods(t *testing.T) {
	recorder := NewNoopRecorder()

	assert.NotPanics(t, func() {
		recorder.RecordSearch(true, 0)
		recorder.RecordLookup(ports.LookupFound)
		recorder.RecordSnippet("react")
		recorder.RecordCatalogLoad("file", 10, time.Millisecond, nil)
		recorder.RecordCacheLookup(true)
	})
}

func TestPrometheusRecorder_RecordSearch(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder := NewPrometheusRecorderWithRegistry(reg)

	recorder.RecordSearch(true, 120)
	recorder.RecordSearch(false, 3)
	recorder.RecordSearch(false, 0)

	assert.InDelta(t, 1, testutil.ToFloat64(recorder.searchRequests.WithLabelValues("blank")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(recorder.searchRequests.WithLabelValues("text")), 0)

	hist := gather(t, reg, "logodir_search_results").GetMetric()[0].GetHistogram()
	assert.Equal(t, uint64(3), hist.GetSampleCount())
	assert.InDelta(t, 123, hist.GetSampleSum(), 0)
}

func TestPrometheusRecorder_RecordLookupAndSnippet(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder := NewPrometheusRecorderWithRegistry(reg)

	recorder.RecordLookup(ports.LookupFound)
	recorder.RecordLookup(ports.LookupFound)
	recorder.RecordLookup(ports.LookupNotFound)
	recorder.RecordSnippet("react")

	assert.InDelta(t, 2, testutil.ToFloat64(recorder.logoLookups.WithLabelValues("found")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.logoLookups.WithLabelValues("not_found")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.snippets.WithLabelValues("react")), 0)
}

func TestPrometheusRecorder_RecordCatalogLoad(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder := NewPrometheusRecorderWithRegistry(reg)

	recorder.RecordCatalogLoad("file", 42, 5*time.Millisecond, nil)
	recorder.RecordCatalogLoad("file", 0, time.Millisecond, errors.New("broken"))

	assert.InDelta(t, 1, testutil.ToFloat64(recorder.catalogLoads.WithLabelValues("file", "success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(recorder.catalogLoads.WithLabelValues("file", "failure")), 0)

	// A failed reload keeps the last known size.
	assert.InDelta(t, 42, testutil.ToFloat64(recorder.catalogLogos.WithLabelValues("file")), 0)

	duration := gather(t, reg, "logodir_catalog_load_duration_seconds")
	assert.Equal(t, uint64(2), duration.GetMetric()[0].GetHistogram().GetSampleCount())
}

func TestPrometheusRecorder_RecordCacheLookup(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder := NewPrometheusRecorderWithRegistry(reg)

	recorder.RecordCacheLookup(true)
	recorder.RecordCacheLookup(false)
	recorder.RecordCacheLookup(false)

	mf := gather(t, reg, "logodir_asset_cache_lookups_total")
	require.Len(t, mf.GetMetric(), 2)

	values := map[string]float64{}
	for _, m := range mf.GetMetric() {
		values[m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
	}

	assert.Equal(t, map[string]float64{"hit": 1, "miss": 2}, values)
}

func TestPrometheusRecorder_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheusRecorderWithRegistry(reg)

	assert.Panics(t, func() { NewPrometheusRecorderWithRegistry(reg) })
}
