package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()
	if reg == nil {
		t.Fatal("expected non-nil registry")
	}
}

func TestRegistry_RecordRequest(t *testing.T) {
	reg := NewRegistry()

	reg.RecordRequest("GET", "/api/templates", 200, 0.05)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}

	found := false
	for _, mf := range mfs {
		if mf.GetName() == "http_requests_total" {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected http_requests_total metric")
	}
}

func TestRegistry_RecordRequest_StatusCodes(t *testing.T) {
	tests := []struct {
		status   int
		expected string
	}{
		{100, "1xx"},
		{200, "2xx"},
		{301, "3xx"},
		{404, "4xx"},
		{503, "5xx"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			reg := NewRegistry()
			reg.RecordRequest("GET", "/test", tt.status, 0.01)

			mfs, err := reg.Gather()
			if err != nil {
				t.Fatalf("gather failed: %v", err)
			}

			found := false
			for _, mf := range mfs {
				if mf.GetName() == "http_requests_total" {
					for _, m := range mf.GetMetric() {
						for _, label := range m.GetLabel() {
							if label.GetName() == "status" && label.GetValue() == tt.expected {
								found = true
							}
						}
					}
				}
			}
			if !found {
				t.Errorf("expected status label %s for status code %d", tt.expected, tt.status)
			}
		})
	}
}

func TestRegistry_BusinessMetrics(t *testing.T) {
	reg := NewRegistry()

	reg.RecordPayloadBuilt("success")
	reg.RecordTemplateOp("save", "success")
	reg.SetTemplatesStored(3)
	reg.RecordHandoffWrite()
	reg.RecordHandoffTake("applied")
	reg.RecordPollCycle("dashboard", 0.2)
	reg.RecordSymbolSearch("NSE", "success")
	reg.SetNotificationCount(5)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}

	want := map[string]bool{
		"tradedeck_payloads_built_total":      false,
		"tradedeck_template_operations_total": false,
		"tradedeck_templates_stored":          false,
		"tradedeck_handoff_writes_total":      false,
		"tradedeck_handoff_takes_total":       false,
		"tradedeck_poll_cycles_total":         false,
		"tradedeck_poll_duration_seconds":     false,
		"tradedeck_symbol_searches_total":     false,
		"tradedeck_notifications_unread":      false,
	}
	for _, mf := range mfs {
		if _, ok := want[mf.GetName()]; ok {
			want[mf.GetName()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("expected metric %s to be registered", name)
		}
	}
}

func TestRegistry_TemplatesStoredGauge(t *testing.T) {
	reg := NewRegistry()
	reg.SetTemplatesStored(7)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	for _, mf := range mfs {
		if mf.GetName() == "tradedeck_templates_stored" {
			for _, m := range mf.GetMetric() {
				if m.GetGauge().GetValue() != 7 {
					t.Errorf("expected gauge 7, got %v", m.GetGauge().GetValue())
				}
			}
		}
	}
}

// Ensure the registry implements prometheus.Gatherer interface
func TestRegistry_ImplementsGatherer(t *testing.T) {
	reg := NewRegistry()
	var _ prometheus.Gatherer = reg
}
