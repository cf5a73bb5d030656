// Package metrics aggregates per-step scene observations into summary
// values reported at the end of a run.
package metrics

// Sample is one scene step observation: the total changed-cell count from
// the rule update, the live-cell count, and the total cell count across
// all automatons.
type Sample struct {
	Step    int `json:"step"`
	Changed int `json:"changed"`
	Live    int `json:"live"`
	Cells   int `json:"cells"`
}

// Metric accumulates samples into a single reported value.
type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}
