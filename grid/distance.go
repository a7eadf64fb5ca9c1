package grid

import "math"

// earthRadiusMeters is the mean Earth radius used for haversine distance
// (spec.md §4.1).
const earthRadiusMeters = 6371000.0

// lngFactor corrects longitude degrees for the service area's latitude
// (~30.6°) in the equirectangular fast-path approximation, carried over
// verbatim from the original implementation's LNG_FACTOR constant
// (original_source/mobility_on_demand/model/grid.py).
const lngFactor = 0.685

// metersPerDegree approximates metres-per-degree-latitude near the
// service area; used only by the equirectangular fast path.
const metersPerDegree = 111320.0

// haversine returns the great-circle distance in metres between two
// (lng, lat) points given in degrees.
func haversine(lng1, lat1, lng2, lat2 float64) float64 {
	rLng1, rLat1 := deg2rad(lng1), deg2rad(lat1)
	rLng2, rLat2 := deg2rad(lng2), deg2rad(lat2)

	dLng := math.Abs(rLng1 - rLng2)
	dLat := math.Abs(rLat1 - rLat2)

	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Pow(math.Sin(dLng/2), 2)

	return earthRadiusMeters * 2 * math.Asin(math.Sqrt(a))
}

// equirectangular is a faster approximation valid near latitude ~30.6°,
// within 2% of haversine for cells inside the service area (spec.md §4.1).
func equirectangular(lng1, lat1, lng2, lat2 float64) float64 {
	latDelta := math.Abs(lat1 - lat2)
	lngDelta := lngFactor * math.Abs(lng1-lng2)
	return metersPerDegree * math.Sqrt(latDelta*latDelta+lngDelta*lngDelta)
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}
