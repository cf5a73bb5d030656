package metrics

// Density reports the mean fraction of live cells per step.
type Density struct {
	name    string
	sum     float64
	samples int
}

func NewDensity() *Density {
	return &Density{name: "density"}
}

func (d *Density) Name() string { return d.name }

func (d *Density) Observe(s Sample) {
	if s.Cells == 0 {
		return
	}
	d.sum += float64(s.Live) / float64(s.Cells)
	d.samples++
}

func (d *Density) Value() float64 {
	if d.samples == 0 {
		return 0
	}
	return d.sum / float64(d.samples)
}

func (d *Density) Reset() {
	d.sum = 0
	d.samples = 0
}
