package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newTestRouter(m *Metrics) http.Handler {
	r := chi.NewRouter()
	r.Use(m.Handler)
	r.Get("/docs/{name}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "name") == "missing" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("<p>ok</p>"))
	})
	return r
}

func TestMetricsHandler_LabelsByRoute(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg))
	h := newTestRouter(m)

	for _, path := range []string{"/docs/a", "/docs/b", "/docs/missing", "/nowhere"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	tests := []struct {
		route, status string
		want          float64
	}{
		{"/docs/{name}", "200", 2},
		{"/docs/{name}", "404", 1},
		{"unmatched", "404", 1},
	}
	for _, tt := range tests {
		got := testutil.ToFloat64(m.requestsTotal.WithLabelValues(tt.route, http.MethodGet, tt.status))
		if got != tt.want {
			t.Errorf("requests_total{route=%q,status=%q} = %v, want %v", tt.route, tt.status, got, tt.want)
		}
	}

	if got := testutil.CollectAndCount(m.requestDuration); got != 2 {
		t.Errorf("request_duration series = %d, want 2", got)
	}
	if got := testutil.ToFloat64(m.inFlight); got != 0 {
		t.Errorf("in_flight = %v, want 0", got)
	}
}

func TestMetrics_Namespace(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg), WithNamespace("site"), WithSubsystem("preview"))
	m.ObserveRenderError("E131")

	want := `
# HELP site_preview_render_errors_total Total number of documents that failed to build, by error code
# TYPE site_preview_render_errors_total counter
site_preview_render_errors_total{code="E131"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(want), "site_preview_render_errors_total"); err != nil {
		t.Error(err)
	}
}

func TestMetrics_ObserveRender(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg), WithConstLabels(prometheus.Labels{"env": "test"}))

	m.ObserveRender("index", 2048, 3*time.Millisecond)
	m.ObserveRender("about", 100, time.Millisecond)
	m.ObserveRenderError("")

	if got := testutil.CollectAndCount(m.renderDuration); got != 2 {
		t.Errorf("render_duration series = %d, want 2", got)
	}
	if got := testutil.ToFloat64(m.renderErrors.WithLabelValues("unknown")); got != 1 {
		t.Errorf("render_errors{unknown} = %v, want 1", got)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	for _, mf := range families {
		if mf.GetName() != "htmlbuilder_rendered_bytes" {
			continue
		}
		h := mf.GetMetric()[0].GetHistogram()
		if h.GetSampleCount() != 2 || h.GetSampleSum() != 2148 {
			t.Errorf("rendered_bytes count=%d sum=%v", h.GetSampleCount(), h.GetSampleSum())
		}
		return
	}
	t.Error("rendered_bytes not gathered")
}

func TestResponseRecorder(t *testing.T) {
	rec := httptest.NewRecorder()
	r := newResponseRecorder(rec)

	r.WriteHeader(http.StatusTeapot)
	r.Write([]byte("abc"))
	r.Flush()

	if r.status != http.StatusTeapot || r.bytes != 3 {
		t.Errorf("status=%d bytes=%d", r.status, r.bytes)
	}
	if !rec.Flushed {
		t.Error("Flush should reach the underlying writer")
	}
	if _, _, err := r.Hijack(); err == nil {
		t.Error("Hijack should fail on a recorder")
	}
	if r.Unwrap() != rec {
		t.Error("Unwrap should return the wrapped writer")
	}
}
