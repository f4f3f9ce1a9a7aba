package reporter

import (
	"io"
	"time"

	"bikeshare/dataset"
)

type TimeStatsReporter struct{}

func NewTimeStatsReporter() *TimeStatsReporter {
	return &TimeStatsReporter{}
}

func (r *TimeStatsReporter) GetType() string {
	return TimeStatsType
}

// Report displays statistics on the most frequent times of travel
func (r *TimeStatsReporter) Report(ds *dataset.Dataset, w io.Writer) error {
	startTime := time.Now()
	p := newPrinter(w)

	p.println("Calculating The Most Frequent Times of Travel...")
	p.println("\nWhat are the most common month, day and hour of the data set?")

	if ds.IsEmpty() {
		p.noData("times of travel")
		return p.finish(r.GetType(), startTime)
	}

	if month, ok := intModeOf(ds.Frame.Col(dataset.MonthColumn)); ok {
		p.printf("\nThe most common month is:\t%s\n", time.Month(month))
	}

	if day, ok := intModeOf(ds.Frame.Col(dataset.DayOfWeekColumn)); ok {
		p.printf("\nThe most common day of week is:\t%s\n", weekdayName(day))
	}

	if hour, ok := intModeOf(ds.Frame.Col(dataset.HourColumn)); ok {
		p.printf("\nThe most common hour is:\t%d\n", hour)
	}

	return p.finish(r.GetType(), startTime)
}
