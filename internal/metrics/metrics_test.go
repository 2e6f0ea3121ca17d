package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/supercomponents/internal/cache"
	"github.com/jonathan/supercomponents/internal/llm"
	"github.com/jonathan/supercomponents/internal/ratelimit"
	"github.com/jonathan/supercomponents/internal/workflow"
)

var (
	_ ratelimit.Observer  = (*Collector)(nil)
	_ cache.Observer      = (*Collector)(nil)
	_ llm.RequestObserver = (*Collector)(nil)
	_ workflow.Observer   = (*Collector)(nil)
)

func TestCollector_Counters(t *testing.T) {
	c := New()

	c.ObserveAdmission(true)
	c.ObserveAdmission(true)
	c.ObserveAdmission(false)
	c.ObserveCache(false)
	c.ObserveCache(true)
	c.ObserveRequest("anthropic", llm.OutcomeSuccess, 2*time.Second)
	c.ObserveRequest("anthropic", llm.OutcomeTimeout, 30*time.Second)
	c.ObserveRun(workflow.OutcomeSuccess, 12*time.Second)
	c.ObserveViolations("warning", 3)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.admissions.WithLabelValues("admitted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.admissions.WithLabelValues("rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.cache.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.cache.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requests.WithLabelValues("anthropic", llm.OutcomeTimeout)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.runs.WithLabelValues(workflow.OutcomeSuccess)))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.violations.WithLabelValues("warning")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.latency))
}

func TestCollector_WriteTextfile(t *testing.T) {
	c := New()
	c.ObserveRun(workflow.OutcomeFailure, time.Second)

	path := filepath.Join(t.TempDir(), "supercomponents.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `supercomponents_runs_total{outcome="failure"} 1`)
}

func TestCollector_WriteTextfileBadPath(t *testing.T) {
	c := New()
	err := c.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "x.prom"))
	assert.Error(t, err)
}
