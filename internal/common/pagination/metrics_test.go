package pagination

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

func TestRecordRequestBucketsPages(t *testing.T) {
	RequestsTotal.Reset()

	RecordRequest(200, 1)
	RecordRequest(200, 7)
	RecordRequest(200, 42)
	RecordRequest(400, 500)

	if got := testutil.ToFloat64(RequestsTotal.WithLabelValues("200", "1-10")); got != 2 {
		t.Errorf("1-10 bucket = %v, want 2", got)
	}
	if got := testutil.ToFloat64(RequestsTotal.WithLabelValues("200", "11-50")); got != 1 {
		t.Errorf("11-50 bucket = %v, want 1", got)
	}
	if got := testutil.ToFloat64(RequestsTotal.WithLabelValues("400", "100+")); got != 1 {
		t.Errorf("100+ bucket = %v, want 1", got)
	}
}

func TestGetPageRangeBucket(t *testing.T) {
	tests := []struct {
		page int
		want string
	}{
		{1, "1-10"},
		{10, "1-10"},
		{11, "11-50"},
		{50, "11-50"},
		{51, "51-100"},
		{100, "51-100"},
		{101, "100+"},
	}
	for _, tt := range tests {
		if got := getPageRangeBucket(tt.page); got != tt.want {
			t.Errorf("getPageRangeBucket(%d) = %q, want %q", tt.page, got, tt.want)
		}
	}
}

func TestUpdateTotalCount(t *testing.T) {
	UpdateTotalCount(7)

	metric := &io_prometheus_client.Metric{}
	if err := TotalCount.Write(metric); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := metric.GetGauge().GetValue(); got != 7 {
		t.Errorf("article_total_count = %v, want 7", got)
	}
}

func TestRecordError(t *testing.T) {
	ErrorsTotal.Reset()

	RecordError("validation")
	RecordError("validation")
	RecordError("store")

	if got := testutil.ToFloat64(ErrorsTotal.WithLabelValues("validation")); got != 2 {
		t.Errorf("validation errors = %v, want 2", got)
	}
	if got := testutil.ToFloat64(ErrorsTotal.WithLabelValues("store")); got != 1 {
		t.Errorf("store errors = %v, want 1", got)
	}
}
