package metrics

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestActivity(t *testing.T) {
	m := NewActivity()
	if m.Value() != 0 {
		t.Error("empty metric should report 0")
	}

	m.Observe(Sample{Step: 1, Changed: 10, Cells: 100})
	m.Observe(Sample{Step: 2, Changed: 30, Cells: 100})
	if got := m.Value(); !almostEqual(got, 0.2) {
		t.Errorf("Value() = %v, want 0.2", got)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("Reset did not clear the metric")
	}
}

func TestActivityIgnoresEmptyScenes(t *testing.T) {
	m := NewActivity()
	m.Observe(Sample{Step: 1, Changed: 5, Cells: 0})
	if m.Value() != 0 {
		t.Error("sample with zero cells should be ignored")
	}
}

func TestDensity(t *testing.T) {
	m := NewDensity()
	m.Observe(Sample{Step: 1, Live: 50, Cells: 100})
	m.Observe(Sample{Step: 2, Live: 70, Cells: 100})
	if got := m.Value(); !almostEqual(got, 0.6) {
		t.Errorf("Value() = %v, want 0.6", got)
	}
}

func TestStagnation(t *testing.T) {
	m := NewStagnation(5)
	if m.Name() != "stagnation" {
		t.Errorf("unexpected name %q", m.Name())
	}

	m.Observe(Sample{Step: 1, Changed: 1})
	m.Observe(Sample{Step: 2, Changed: 10})
	m.Observe(Sample{Step: 3, Changed: 3})
	if got := m.Value(); !almostEqual(got, 2.0/3.0) {
		t.Errorf("Value() = %v, want 2/3", got)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("Reset did not clear the metric")
	}
}
