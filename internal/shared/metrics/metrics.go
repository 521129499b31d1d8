// Package metrics exposes process-local counters in Prometheus text format
// without a client dependency.
package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	summaryGeneratedTotal atomic.Uint64
	summaryNoDataTotal    atomic.Uint64
	summaryFailedTotal    atomic.Uint64
	reviewsImportedTotal  atomic.Uint64

	summaryDuration = newHistogram([]float64{5, 10, 25, 50, 100, 250, 500, 1000, 5000})
)

// IncSummaryGenerated increments the generated-summaries counter.
func IncSummaryGenerated() {
	summaryGeneratedTotal.Add(1)
}

// IncSummaryNoData increments the empty-review-set counter.
func IncSummaryNoData() {
	summaryNoDataTotal.Add(1)
}

// IncSummaryFailed increments the failed-summaries counter.
func IncSummaryFailed() {
	summaryFailedTotal.Add(1)
}

// AddReviewsImported adds to the imported-reviews counter.
func AddReviewsImported(n int) {
	if n > 0 {
		reviewsImportedTotal.Add(uint64(n))
	}
}

// ObserveSummaryDurationMs records a summary computation duration.
func ObserveSummaryDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	summaryDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "summary_generated_total", "Total summaries generated", summaryGeneratedTotal.Load())
	writeCounter(&buf, "summary_no_data_total", "Total summary requests over empty review sets", summaryNoDataTotal.Load())
	writeCounter(&buf, "summary_failed_total", "Total summary generations failed", summaryFailedTotal.Load())
	writeCounter(&buf, "reviews_imported_total", "Total reviews imported", reviewsImportedTotal.Load())
	writeHistogram(&buf, "summary_duration_ms", "Summary computation duration in milliseconds", summaryDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// NowMillis returns current time in milliseconds, useful for callers without time utilities.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
