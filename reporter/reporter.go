package reporter

import (
	"fmt"
	"io"

	"bikeshare/dataset"
)

const (
	TimeStatsType         = "time-stats"
	StationStatsType      = "station-stats"
	TripDurationStatsType = "trip-duration-stats"
	UserStatsType         = "user-stats"
)

// reporterTypes is the order in which the statistics are displayed
var reporterTypes = []string{
	TimeStatsType,
	StationStatsType,
	TripDurationStatsType,
	UserStatsType,
}

// Reporter displays statistics of a Dataset. Reporters never modify the dataset
type Reporter interface {
	GetType() string
	Report(ds *dataset.Dataset, w io.Writer) error
}

// NewReporter initialize a reporter of some type.
// Possible reporter types are: time-stats, station-stats, trip-duration-stats, user-stats
func NewReporter(reporterType string) (Reporter, error) {
	switch reporterType {
	case TimeStatsType:
		return NewTimeStatsReporter(), nil
	case StationStatsType:
		return NewStationStatsReporter(), nil
	case TripDurationStatsType:
		return NewTripDurationStatsReporter(), nil
	case UserStatsType:
		return NewUserStatsReporter(), nil
	}

	return nil, fmt.Errorf("[method: NewReporter][status: error] %w: %s", ErrInvalidReporterType, reporterType)
}

// NewReporters returns one reporter of each type, in display order
func NewReporters() ([]Reporter, error) {
	reporters := make([]Reporter, 0, len(reporterTypes))
	for _, reporterType := range reporterTypes {
		reporter, err := NewReporter(reporterType)
		if err != nil {
			return nil, err
		}
		reporters = append(reporters, reporter)
	}
	return reporters, nil
}
