package metrics

// Stagnation reports the fraction of steps whose changed-cell count fell
// below a threshold.
type Stagnation struct {
	name      string
	threshold int
	calm      int
	samples   int
}

func NewStagnation(threshold int) *Stagnation {
	return &Stagnation{name: "stagnation", threshold: threshold}
}

func (s *Stagnation) Name() string { return s.name }

func (s *Stagnation) Observe(sample Sample) {
	s.samples++
	if sample.Changed < s.threshold {
		s.calm++
	}
}

func (s *Stagnation) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return float64(s.calm) / float64(s.samples)
}

func (s *Stagnation) Reset() {
	s.calm = 0
	s.samples = 0
}
