package distanceaccumulator

import "bikeshare/domain/entities/station"

// DistanceAccumulator collects the straight-line distance of the trips of one dataset
// + Trips: amount of trips collected
// + TotalDistance: sum of the distances of the trips, in kilometers
// + distancesCache: distance of each route already computed, by "start|end" names
type DistanceAccumulator struct {
	Trips          int     `json:"trips"`
	TotalDistance  float64 `json:"total_distance"`
	distancesCache map[string]float64
}

func NewDistanceAccumulator() *DistanceAccumulator {
	return &DistanceAccumulator{
		distancesCache: make(map[string]float64),
	}
}

// AddTrip adds the distance between start and end. It returns true if the distance
// of the route was already known
func (da *DistanceAccumulator) AddTrip(start station.StationData, end station.StationData) bool {
	routeKey := start.GetCombinedNames(end)
	distance, cached := da.distancesCache[routeKey]
	if !cached {
		distance = start.DistanceTo(end)
		da.distancesCache[routeKey] = distance
	}

	da.Trips += 1
	da.TotalDistance += distance
	return cached
}

func (da *DistanceAccumulator) IsEmpty() bool {
	return da.Trips == 0
}

func (da *DistanceAccumulator) GetAverageDistance() float64 {
	if da.Trips == 0 {
		panic("[DistanceAccumulator] cannot get average, there are no trips")
	}
	return da.TotalDistance / float64(da.Trips)
}
