package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/station"
	"bikeshare/utils"
)

const (
	stationNameColumn      = "name"
	stationLatitudeColumn  = "latitude"
	stationLongitudeColumn = "longitude"
)

// loadStations returns the coordinates of the stations of cityFile, or nil if
// no stations file is configured for it
func (l *Loader) loadStations(cityFile string) (map[string]station.StationData, error) {
	stationsFile, ok := l.config.Stations[cityFile]
	if !ok || stationsFile == "" {
		return nil, nil
	}

	stationsPath := filepath.Join(l.config.DataDir, stationsFile)
	file, err := os.Open(stationsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStationData, err)
	}
	defer file.Close()

	df := dataframe.ReadCSV(file,
		dataframe.HasHeader(true),
		dataframe.NaNValues(nanValues),
		dataframe.WithTypes(map[string]series.Type{
			stationNameColumn:      series.String,
			stationLatitudeColumn:  series.Float,
			stationLongitudeColumn: series.Float,
		}),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidStationData, stationsPath, df.Err)
	}

	required := []string{stationNameColumn, stationLatitudeColumn, stationLongitudeColumn}
	if missing := utils.MissingStrings(required, df.Names()); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s lacks columns %v", ErrInvalidStationData, stationsPath, missing)
	}

	names := df.Col(stationNameColumn)
	latitudes := df.Col(stationLatitudeColumn)
	longitudes := df.Col(stationLongitudeColumn)

	stations := make(map[string]station.StationData, df.Nrow())
	for idx := 0; idx < df.Nrow(); idx++ {
		name := names.Elem(idx)
		latitude := latitudes.Elem(idx)
		longitude := longitudes.Elem(idx)
		if name.IsNA() || latitude.IsNA() || longitude.IsNA() {
			log.Debug(l.getLogMessage("loadStations", fmt.Sprintf("skipping incomplete station in row %d", idx), nil))
			continue
		}
		stations[name.String()] = station.NewStationData(name.String(), latitude.Float(), longitude.Float())
	}

	log.Debug(l.getLogMessage("loadStations", fmt.Sprintf("%d stations loaded from %s", len(stations), stationsPath), nil))
	return stations, nil
}
