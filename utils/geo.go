package utils

import (
	"math"

	"go.mongodb.org/mongo-driver/bson"
)

// GeoPoint is a GeoJSON point as stored on a restaurant. Coordinates are
// [longitude, latitude].
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// PointFromCoordinates builds a stored point from client-supplied longitude
// and latitude. Returns nil unless both are present and numeric, in which
// case callers leave any existing stored point untouched.
func PointFromCoordinates(longitude, latitude any) *GeoPoint {
	lon, okLon := CoerceFloat(longitude)
	lat, okLat := CoerceFloat(latitude)
	if !okLon || !okLat {
		return nil
	}

	return &GeoPoint{
		Type:        "Point",
		Coordinates: []float64{lon, lat},
	}
}

// ProximityFilter builds a $near predicate for entities within maxDistance
// meters of (longitude, latitude), nearest first. Returns nil unless both
// coordinates are present and numeric. maxDistance is coerced like the
// coordinates but is not required to be valid; an absent or malformed value
// becomes NaN and the query is left to the database to reject.
func ProximityFilter(longitude, latitude, maxDistance any) bson.M {
	lon, okLon := CoerceFloat(longitude)
	lat, okLat := CoerceFloat(latitude)
	if !okLon || !okLat {
		return nil
	}

	dist, ok := CoerceFloat(maxDistance)
	if !ok {
		dist = math.NaN()
	}

	return bson.M{
		"$near": bson.M{
			"$geometry": GeoPoint{
				Type:        "Point",
				Coordinates: []float64{lon, lat},
			},
			"$maxDistance": dist,
		},
	}
}
