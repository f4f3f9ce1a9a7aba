package dataset

import (
	"github.com/go-gota/gota/dataframe"

	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/station"
)

// Dataset is the city data after normalization, derived columns and filters.
// + Frame: rows that satisfy Selection, in file order
// + Columns: names of the columns in Frame
// + Selection: filters used to build the dataset
// + Stations: coordinates of the city stations by name, nil if the city has no stations file
type Dataset struct {
	Frame     dataframe.DataFrame
	Columns   Columns
	Selection filter.Selection
	Stations  map[string]station.StationData
}

func (d *Dataset) Nrow() int {
	return d.Frame.Nrow()
}

func (d *Dataset) IsEmpty() bool {
	return d.Frame.Nrow() == 0
}

func (d *Dataset) HasStations() bool {
	return len(d.Stations) > 0
}
