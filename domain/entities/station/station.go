package station

import "github.com/umahmood/haversine"

// StationData struct that contains the coordinates of a station
type StationData struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewStationData(name string, latitude float64, longitude float64) StationData {
	return StationData{
		Name:      name,
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// DistanceTo returns the distance in kilometers between both stations using haversine formula
func (sd StationData) DistanceTo(other StationData) float64 {
	station1 := haversine.Coord{Lat: sd.Latitude, Lon: sd.Longitude}
	station2 := haversine.Coord{Lat: other.Latitude, Lon: other.Longitude}

	_, km := haversine.Distance(station1, station2)
	return km
}

// GetCombinedNames returns a key that identifies the route from this station to other
func (sd StationData) GetCombinedNames(other StationData) string {
	return sd.Name + "|" + other.Name
}
