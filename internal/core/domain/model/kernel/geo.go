package kernel

import (
	"fmt"
	"math"

	"ordering/internal/pkg/errs"
)

const (
	// GeoLatitudeMin and GeoLatitudeMax bound valid latitudes in degrees.
	GeoLatitudeMin = -90.0
	GeoLatitudeMax = 90.0
	// GeoLongitudeMin and GeoLongitudeMax bound valid longitudes in degrees.
	GeoLongitudeMin = -180.0
	GeoLongitudeMax = 180.0

	// earthRadiusKm is the mean Earth radius used by the haversine formula.
	earthRadiusKm = 6371.0
)

// GeoPoint represents a WGS84 coordinate pair. It is an immutable value
// object. Unlike most value objects in this model, the zero value is legal:
// (0,0) is the defined "unset" sentinel used across the data model for
// positions that have not been reported yet (for example a driver that has
// not been assigned). IsValid reports whether the point carries a real
// position.
//
// Example:
//
//	p, err := kernel.NewGeoPoint(51.5074, -0.1278)
//	if err != nil {
//	    // coordinate out of range
//	}
//	fmt.Println(p) // GeoPoint(51.507400,-0.127800)
type GeoPoint struct {
	latitude  float64
	longitude float64
}

// NewGeoPoint creates a GeoPoint with the given coordinates in degrees.
// Returns an error if either coordinate is outside the valid WGS84 range.
// (0,0) is accepted and produces the unset sentinel.
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	if latitude < GeoLatitudeMin || latitude > GeoLatitudeMax {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("latitude", latitude, GeoLatitudeMin, GeoLatitudeMax)
	}
	if longitude < GeoLongitudeMin || longitude > GeoLongitudeMax {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("longitude", longitude, GeoLongitudeMin, GeoLongitudeMax)
	}

	return GeoPoint{latitude: latitude, longitude: longitude}, nil
}

// Latitude returns the latitude in degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// IsValid reports whether the point carries a real position. A point is
// valid iff both coordinates are non-zero; (0,0) and half-set points are the
// "unset" sentinel inherited from the data model.
func (p GeoPoint) IsValid() bool {
	return p.latitude != 0 && p.longitude != 0
}

// IsEqual compares two points for exact coordinate equality.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p == other
}

// String implements fmt.Stringer with six decimal places, the precision the
// wire format preserves for coordinates.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.6f,%.6f)", p.latitude, p.longitude)
}

// DistanceKm returns the great-circle distance to other in kilometers,
// computed with the haversine formula over a sphere of radius 6371 km.
// The result is not rounded; presentation layers apply Round2.
//
// The function is symmetric and DistanceKm(p, p) == 0 for any p.
func (p GeoPoint) DistanceKm(other GeoPoint) float64 {
	lat1 := toRadians(p.latitude)
	lat2 := toRadians(other.latitude)
	dLat := toRadians(other.latitude - p.latitude)
	dLon := toRadians(other.longitude - p.longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Round2 rounds to two decimal places, the shared rule for currency amounts
// and presented distances.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
