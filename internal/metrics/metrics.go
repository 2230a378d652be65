// Package metrics exposes run counters for long mesh evaluations. The
// collectors are always updated; the HTTP endpoint is only served when a
// metrics address is configured.
package metrics

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	evaluationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scadbench_evaluations_total",
		Help: "Model evaluations completed, by outcome.",
	}, []string{"status"})

	rendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scadbench_renders_total",
		Help: "External renderer invocations, by outcome.",
	}, []string{"status"})

	renderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "scadbench_render_duration_seconds",
		Help:    "Wall-clock duration of renderer invocations.",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
	})

	failuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scadbench_task_failures_total",
		Help: "Failed task validations, by failure kind.",
	}, []string{"kind"})
)

func status(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}

// EvalCompleted records one finished (model, task-set) evaluation.
func EvalCompleted(ok bool) {
	evaluationsTotal.WithLabelValues(status(ok)).Inc()
}

// RenderCompleted records one renderer invocation.
func RenderCompleted(ok bool, d time.Duration) {
	rendersTotal.WithLabelValues(status(ok)).Inc()
	renderDuration.Observe(d.Seconds())
}

// TaskFailed records one failed task validation by kind.
func TaskFailed(kind string) {
	failuresTotal.WithLabelValues(kind).Inc()
}

// Serve exposes /metrics on addr until ctx is cancelled. Serving is best
// effort: a bind failure is logged, not fatal, since metrics never gate an
// evaluation run.
func Serve(ctx context.Context, addr string, logger *slog.Logger) {
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	go func() {
		logger.Info("serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Warn("metrics server stopped", "err", err)
		}
	}()
}
