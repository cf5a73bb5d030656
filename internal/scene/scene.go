// Package scene drives a collection of independent automatons: one
// simulation step per tick across all of them, global stagnation
// detection, and scene-wide reseeding.
package scene

import (
	"github.com/imclab/casa/internal/automaton"
	"github.com/imclab/casa/internal/metrics"
)

// Scene owns the configured automatons. Stepping is sequential and
// synchronous; a full step across all automatons is the atomic unit of
// work.
type Scene struct {
	automatons []*automaton.Automaton
	fillRates  []float64
	threshold  int
	window     int
	calm       int
	resets     int
	step       int
	changed    int
	live       int
	cells      int
	metrics    []metrics.Metric
}

// New creates an empty scene with the given stagnation policy: when the
// total changed-cell count stays below threshold for window consecutive
// steps, every automaton is reseeded. A window of 0 disables the reset.
func New(threshold, window int) *Scene {
	return &Scene{threshold: threshold, window: window}
}

// Add registers an automaton and seeds it at fillRate. The fill rate is
// remembered for stagnation resets.
func (s *Scene) Add(a *automaton.Automaton, fillRate float64) error {
	if err := a.Reset(fillRate); err != nil {
		return err
	}
	s.automatons = append(s.automatons, a)
	s.fillRates = append(s.fillRates, fillRate)
	s.cells += a.Size() * a.Size()
	return nil
}

// AddMetric registers a metric fed one sample per scene step.
func (s *Scene) AddMetric(m metrics.Metric) { s.metrics = append(s.metrics, m) }

// Step advances every automaton one generation, aggregates counts, feeds
// metrics, and reseeds the scene if it has stagnated.
func (s *Scene) Step() error {
	total, live := 0, 0
	for _, a := range s.automatons {
		if err := a.Step(); err != nil {
			return err
		}
		total += a.ChangedCells()
		live += a.LiveCells()
	}
	s.step++
	s.changed = total
	s.live = live

	sample := metrics.Sample{Step: s.step, Changed: total, Live: live, Cells: s.cells}
	for _, m := range s.metrics {
		m.Observe(sample)
	}

	if total < s.threshold {
		s.calm++
	} else {
		s.calm = 0
	}
	if s.window > 0 && s.calm >= s.window {
		s.calm = 0
		s.resets++
		return s.Reseed()
	}
	return nil
}

// Reseed reseeds every automaton at its configured fill rate.
func (s *Scene) Reseed() error {
	for i, a := range s.automatons {
		if err := a.Reset(s.fillRates[i]); err != nil {
			return err
		}
	}
	return nil
}

// Automatons exposes the scene's automatons for rendering.
func (s *Scene) Automatons() []*automaton.Automaton { return s.automatons }

// Sample returns the aggregate observation for the last step.
func (s *Scene) Sample() metrics.Sample {
	return metrics.Sample{Step: s.step, Changed: s.changed, Live: s.live, Cells: s.cells}
}

// Changed reports the total changed-cell count of the last step.
func (s *Scene) Changed() int { return s.changed }

// Resets reports how many stagnation resets have fired.
func (s *Scene) Resets() int { return s.resets }

// Steps reports the number of completed scene steps.
func (s *Scene) Steps() int { return s.step }

// MetricValues collects the current value of every registered metric.
func (s *Scene) MetricValues() map[string]float64 {
	vals := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		vals[m.Name()] = m.Value()
	}
	return vals
}

// PolicyNames lists the policy bound to each automaton, in order.
func (s *Scene) PolicyNames() []string {
	names := make([]string, len(s.automatons))
	for i, a := range s.automatons {
		names[i] = a.Policy().Name()
	}
	return names
}
