package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestNewOrderMetrics(t *testing.T) {
	metrics := newOrderMetricsWithRegisterer(prometheus.NewRegistry())

	if metrics == nil {
		t.Fatal("newOrderMetricsWithRegisterer should not return nil")
	}
	if metrics.ordersCreated == nil {
		t.Error("ordersCreated counter should not be nil")
	}
	if metrics.ordersUpdated == nil {
		t.Error("ordersUpdated counter should not be nil")
	}
	if metrics.ordersDeleted == nil {
		t.Error("ordersDeleted counter should not be nil")
	}
	if metrics.insufficientStock == nil {
		t.Error("insufficientStock counter should not be nil")
	}
	if metrics.stockCompensations == nil {
		t.Error("stockCompensations counter should not be nil")
	}
	if metrics.operationDuration == nil {
		t.Error("operationDuration histogram vec should not be nil")
	}
	if metrics.outboxEvents == nil {
		t.Error("outboxEvents counter should not be nil")
	}
}

func TestNewOrderMetrics_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()

	first := newOrderMetricsWithRegisterer(reg)
	second := newOrderMetricsWithRegisterer(reg)

	// Повторная регистрация переиспользует уже созданные коллекторы.
	first.RecordOrderCreated()
	second.RecordOrderCreated()

	metric := &dto.Metric{}
	if err := first.ordersCreated.Write(metric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 2.0 {
		t.Errorf("expected counter value 2.0, got %f", metric.Counter.GetValue())
	}
}

func TestRecordCounters(t *testing.T) {
	metrics := newOrderMetricsWithRegisterer(prometheus.NewRegistry())

	metrics.RecordOrderCreated()
	metrics.RecordOrderUpdated()
	metrics.RecordOrderDeleted()
	metrics.RecordInsufficientStock()
	metrics.RecordInsufficientStock()
	metrics.RecordStockCompensation()
	metrics.RecordOutboxEvent()

	checks := []struct {
		name    string
		counter prometheus.Counter
		want    float64
	}{
		{"ordersCreated", metrics.ordersCreated, 1},
		{"ordersUpdated", metrics.ordersUpdated, 1},
		{"ordersDeleted", metrics.ordersDeleted, 1},
		{"insufficientStock", metrics.insufficientStock, 2},
		{"stockCompensations", metrics.stockCompensations, 1},
		{"outboxEvents", metrics.outboxEvents, 1},
	}
	for _, check := range checks {
		metric := &dto.Metric{}
		if err := check.counter.Write(metric); err != nil {
			t.Fatalf("failed to write %s: %v", check.name, err)
		}
		if metric.Counter.GetValue() != check.want {
			t.Errorf("%s: expected %f, got %f", check.name, check.want, metric.Counter.GetValue())
		}
	}
}

func TestRecordOperationDuration(t *testing.T) {
	metrics := newOrderMetricsWithRegisterer(prometheus.NewRegistry())

	metrics.RecordOperationDuration("create", 15*time.Millisecond)
	metrics.RecordOperationDuration("create", 25*time.Millisecond)

	histogram, err := metrics.operationDuration.GetMetricWithLabelValues("create")
	if err != nil {
		t.Fatalf("failed to get histogram: %v", err)
	}

	metric := &dto.Metric{}
	if err := histogram.(prometheus.Histogram).Write(metric); err != nil {
		t.Fatalf("failed to write histogram: %v", err)
	}
	if metric.Histogram.GetSampleCount() != 2 {
		t.Errorf("expected 2 samples, got %d", metric.Histogram.GetSampleCount())
	}
}
