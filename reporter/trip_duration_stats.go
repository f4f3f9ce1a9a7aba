package reporter

import (
	"io"
	"time"

	"bikeshare/dataset"
	"bikeshare/domain/business/tripduration"
)

type TripDurationStatsReporter struct{}

func NewTripDurationStatsReporter() *TripDurationStatsReporter {
	return &TripDurationStatsReporter{}
}

func (r *TripDurationStatsReporter) GetType() string {
	return TripDurationStatsType
}

// Report displays statistics on the total and average trip duration
func (r *TripDurationStatsReporter) Report(ds *dataset.Dataset, w io.Writer) error {
	startTime := time.Now()
	p := newPrinter(w)

	p.println("Calculating Trip Duration...")
	p.println("\nWhat are the total and mean travel time?")

	accumulator := tripduration.NewDurationAccumulator()
	for _, duration := range ds.Frame.Col(ds.Columns.TripDuration).Float() {
		accumulator.UpdateAccumulator(duration)
	}

	if accumulator.IsEmpty() {
		p.noData("trip duration")
		return p.finish(r.GetType(), startTime)
	}

	p.printf("\nTotal travel time is:    %s\n", tripduration.NewBreakdown(accumulator.GetTotalDuration()))
	p.printf("\nThe mean travel time is: %s\n", tripduration.NewBreakdown(accumulator.GetAverageDuration()))

	return p.finish(r.GetType(), startTime)
}
