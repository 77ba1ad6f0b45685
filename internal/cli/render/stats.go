package render

import (
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	dto "github.com/prometheus/client_model/go"

	"people/internal/audit"
)

// AuditEvents prints the audit trail oldest first.
func AuditEvents(w io.Writer, events []audit.Event) error {
	if len(events) == 0 {
		return empty(w, "No audit events found.")
	}
	t := newTable(w, "Time", "Action", "Person ID", "Subject", "Request ID")
	for _, e := range events {
		t.row(
			e.Timestamp.UTC().Format(time.RFC3339),
			e.Action,
			e.PersonID.String(),
			e.Subject,
			e.RequestID,
		)
	}
	return t.flush()
}

// Metrics prints one line per sample of the gathered families whose name
// starts with prefix. Histograms print their count and sum.
func Metrics(w io.Writer, families []*dto.MetricFamily, prefix string) error {
	var rows [][]string
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), prefix) {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := formatLabels(m.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				rows = append(rows, []string{mf.GetName(), labels, formatFloat(m.GetCounter().GetValue())})
			case dto.MetricType_GAUGE:
				rows = append(rows, []string{mf.GetName(), labels, formatFloat(m.GetGauge().GetValue())})
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				rows = append(rows,
					[]string{mf.GetName() + "_count", labels, strconv.FormatUint(h.GetSampleCount(), 10)},
					[]string{mf.GetName() + "_sum", labels, formatFloat(h.GetSampleSum())},
				)
			}
		}
	}
	if len(rows) == 0 {
		return empty(w, "No metrics recorded.")
	}

	t := newTable(w, "Metric", "Labels", "Value")
	for _, r := range rows {
		t.row(r...)
	}
	return t.flush()
}

func formatLabels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(pairs))
	for _, lp := range pairs {
		parts = append(parts, lp.GetName()+"="+lp.GetValue())
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
