package sat

// ema is an exponential moving average, used to track the recent conflict
// rate as a search-progress statistic. It is purely observational: nothing
// in this package branches on its value.
type ema struct {
	decay float64
	value float64
	init  bool
}

func newEMA(decay float64) ema {
	return ema{decay: decay}
}

// Add folds x into the running average.
func (e *ema) Add(x float64) {
	if !e.init {
		e.init = true
		e.value = x
		return
	}
	e.value = e.decay*e.value + x*(1-e.decay)
}

// Value returns the current average.
func (e *ema) Value() float64 {
	return e.value
}
