package metrics

// Activity reports the mean fraction of cells changed per step.
type Activity struct {
	name    string
	sum     float64
	samples int
}

func NewActivity() *Activity {
	return &Activity{name: "activity"}
}

func (a *Activity) Name() string { return a.name }

func (a *Activity) Observe(s Sample) {
	if s.Cells == 0 {
		return
	}
	a.sum += float64(s.Changed) / float64(s.Cells)
	a.samples++
}

func (a *Activity) Value() float64 {
	if a.samples == 0 {
		return 0
	}
	return a.sum / float64(a.samples)
}

func (a *Activity) Reset() {
	a.sum = 0
	a.samples = 0
}
