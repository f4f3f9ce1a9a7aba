package frequency

import "sort"

// ValueCounter struct that counts how many times Value appears in a column
// + Value: value being counted. Once set, it cannot change
// + FirstIndex: row position in which Value appeared for the first time. Once set, it cannot change
// + Counter: amount of rows holding Value
type ValueCounter struct {
	Value      string `json:"value"`
	FirstIndex int    `json:"first_index"`
	Counter    int    `json:"counter"`
}

func NewValueCounter(value string, firstIndex int) *ValueCounter {
	return &ValueCounter{
		Value:      value,
		FirstIndex: firstIndex,
	}
}

func (vc *ValueCounter) UpdateCounter() {
	vc.Counter += 1
}

func (vc *ValueCounter) GetCounter() int {
	return vc.Counter
}

// Frequencies counts the values of a column in row order
type Frequencies struct {
	counters map[string]*ValueCounter
}

func NewFrequencies() *Frequencies {
	return &Frequencies{
		counters: make(map[string]*ValueCounter),
	}
}

// Count builds Frequencies from values, skipping the positions where missing is true.
// missing can be nil when no value is missing.
func Count(values []string, missing []bool) *Frequencies {
	frequencies := NewFrequencies()
	for idx, value := range values {
		if missing != nil && missing[idx] {
			continue
		}
		frequencies.Add(value, idx)
	}
	return frequencies
}

// Add counts value, found at row position idx
func (f *Frequencies) Add(value string, idx int) {
	counter, ok := f.counters[value]
	if !ok {
		counter = NewValueCounter(value, idx)
		f.counters[value] = counter
	}
	counter.UpdateCounter()
}

// Len returns the amount of distinct values
func (f *Frequencies) Len() int {
	return len(f.counters)
}

// Mode returns the most frequent value. Ties are won by the value that appeared first.
// ok is false if nothing was counted.
func (f *Frequencies) Mode() (mode string, ok bool) {
	var best *ValueCounter
	for _, counter := range f.counters {
		if best == nil ||
			counter.Counter > best.Counter ||
			(counter.Counter == best.Counter && counter.FirstIndex < best.FirstIndex) {
			best = counter
		}
	}

	if best == nil {
		return "", false
	}
	return best.Value, true
}

// Sorted returns all the counters sorted by value
func (f *Frequencies) Sorted() []*ValueCounter {
	counters := make([]*ValueCounter, 0, len(f.counters))
	for _, counter := range f.counters {
		counters = append(counters, counter)
	}

	sort.Slice(counters, func(i, j int) bool {
		return counters[i].Value < counters[j].Value
	})
	return counters
}
