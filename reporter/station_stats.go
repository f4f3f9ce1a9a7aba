package reporter

import (
	"io"
	"time"

	"github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"

	"bikeshare/dataset"
	"bikeshare/domain/business/distanceaccumulator"
	"bikeshare/domain/business/frequency"
)

const routeSeparator = " to "

type StationStatsReporter struct{}

func NewStationStatsReporter() *StationStatsReporter {
	return &StationStatsReporter{}
}

func (r *StationStatsReporter) GetType() string {
	return StationStatsType
}

// Report displays statistics on the most popular stations and trip
func (r *StationStatsReporter) Report(ds *dataset.Dataset, w io.Writer) error {
	startTime := time.Now()
	p := newPrinter(w)

	p.println("Calculating The Most Popular Stations and Trip...")
	p.println("\nWhat are the most commonly used start stations, end stations and combinations of start/end station?")

	if ds.IsEmpty() {
		p.noData("stations")
		return p.finish(r.GetType(), startTime)
	}

	startStations := ds.Frame.Col(ds.Columns.StartStation)
	endStations := ds.Frame.Col(ds.Columns.EndStation)

	if startStation, ok := modeOf(startStations); ok {
		p.printf("\nThe most commonly used start station is:\t%s\n", startStation)
	}

	if endStation, ok := modeOf(endStations); ok {
		p.printf("\nThe most commonly used end station is:  \t%s\n", endStation)
	}

	if route, ok := countRoutes(startStations, endStations).Mode(); ok {
		p.printf("\nThe most frequent combination of\nstart station and end station trip is:\t\t%s\n", route)
	}

	if ds.HasStations() {
		distances := r.accumulateDistances(ds, startStations, endStations)
		if distances.IsEmpty() {
			p.noData("station coordinates")
		} else {
			p.printf("\nThe mean straight-line distance of a trip is:\t%.2f km (%d trips)\n", distances.GetAverageDistance(), distances.Trips)
		}
	}

	return p.finish(r.GetType(), startTime)
}

// countRoutes counts the "start to end" text of each trip. Trips missing either station are skipped
func countRoutes(startStations series.Series, endStations series.Series) *frequency.Frequencies {
	routes := frequency.NewFrequencies()
	for idx := 0; idx < startStations.Len(); idx++ {
		start := startStations.Elem(idx)
		end := endStations.Elem(idx)
		if start.IsNA() || end.IsNA() {
			continue
		}
		routes.Add(start.String()+routeSeparator+end.String(), idx)
	}
	return routes
}

// accumulateDistances sums the distance of every trip whose stations have coordinates.
// Distances are cached per report, so no state is shared between datasets
func (r *StationStatsReporter) accumulateDistances(ds *dataset.Dataset, startStations series.Series, endStations series.Series) *distanceaccumulator.DistanceAccumulator {
	accumulator := distanceaccumulator.NewDistanceAccumulator()
	for idx := 0; idx < startStations.Len(); idx++ {
		start, ok := ds.Stations[startStations.Elem(idx).String()]
		if !ok {
			continue
		}
		end, ok := ds.Stations[endStations.Elem(idx).String()]
		if !ok {
			continue
		}

		if cached := accumulator.AddTrip(start, end); !cached {
			log.Debugf("[reporter: %s] distance of %s computed for %s", r.GetType(), start.GetCombinedNames(end), ds.Selection.CityFile)
		}
	}
	return accumulator
}
