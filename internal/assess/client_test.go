package assess

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"property-service/internal/model"
	"property-service/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(baseURL string, timeout time.Duration) *Client {
	cfg := &config.Config{}
	cfg.Assess.BaseURL = baseURL
	cfg.Assess.Timeout = timeout
	return NewClient(cfg, zap.NewNop())
}

func TestClassifyMaintenance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/classify", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"priority":"EMERGENCY","assessment":"Gas leak, evacuate and dispatch immediately."}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 5*time.Second)
	result, err := c.ClassifyMaintenance(context.Background(), "Strong gas smell in the kitchen")
	require.NoError(t, err)
	assert.Equal(t, model.PriorityEmergency, result.Priority)
	assert.Contains(t, result.Assessment, "dispatch")
}

func TestClassifyMaintenanceUnknownPriority(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"priority":"CRITICAL","assessment":"made up"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 5*time.Second)
	_, err := c.ClassifyMaintenance(context.Background(), "anything")
	assert.Error(t, err)
}

func TestClassifyMaintenanceServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 5*time.Second)
	_, err := c.ClassifyMaintenance(context.Background(), "anything")
	assert.Error(t, err)
}

func TestClassifyMaintenanceTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 20*time.Millisecond)
	_, err := c.ClassifyMaintenance(context.Background(), "anything")
	assert.Error(t, err, "exceeding the timeout is an ordinary failure")
}

func TestClassifyMaintenanceUnconfigured(t *testing.T) {
	c := newTestClient("", time.Second)
	_, err := c.ClassifyMaintenance(context.Background(), "anything")
	assert.Error(t, err)
}

func TestSummarizeLease(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/summarize", r.URL.Path)
		_, _ = w.Write([]byte(`{"summary":"One year lease, rent due annually in advance."}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 5*time.Second)
	summary, err := c.SummarizeLease(context.Background(), "THIS LEASE AGREEMENT is made...")
	require.NoError(t, err)
	assert.Contains(t, summary, "One year lease")
}

func TestSummarizeLeaseEmptySummary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"summary":""}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 5*time.Second)
	_, err := c.SummarizeLease(context.Background(), "lease text")
	assert.Error(t, err)
}

func TestDefaultAssessment(t *testing.T) {
	fallback := DefaultAssessment()
	assert.Equal(t, model.PriorityMedium, fallback.Priority)
	assert.Equal(t, FallbackAssessment, fallback.Assessment)
}
