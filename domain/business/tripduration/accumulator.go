package tripduration

import "math"

// DurationAccumulator struct that collects the durations of trips, in seconds.
// + Counter: counts the amount of durations collected
// + TotalDuration: sum of durations
type DurationAccumulator struct {
	Counter       int     `json:"counter"`
	TotalDuration float64 `json:"total_duration"`
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

// UpdateAccumulator adds duration to the accumulator. Missing durations (NaN) are ignored
func (da *DurationAccumulator) UpdateAccumulator(duration float64) {
	if math.IsNaN(duration) {
		return
	}
	da.Counter += 1
	da.TotalDuration += duration
}

func (da *DurationAccumulator) GetTotalDuration() float64 {
	return da.TotalDuration
}

func (da *DurationAccumulator) GetAverageDuration() float64 {
	if da.Counter == 0 {
		panic("[DurationAccumulator] cannot get average duration, counter is zero")
	}
	return da.TotalDuration / float64(da.Counter)
}

func (da *DurationAccumulator) IsEmpty() bool {
	return da.Counter == 0
}
