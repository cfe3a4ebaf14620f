// Package location provides LocationSampler implementations for the driver
// role. The fixed sampler stands in for a real positioning source and reports
// a position configured at startup.
package location

import (
	"context"
	"strconv"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// FixedSampler reports a single configured position on every sample.
type FixedSampler struct {
	position kernel.GeoPoint
}

// NewFixedSampler creates a sampler pinned to the given position.
func NewFixedSampler(position kernel.GeoPoint) *FixedSampler {
	return &FixedSampler{position: position}
}

// ParseFixedSampler creates a sampler from a "latitude,longitude" string.
func ParseFixedSampler(value string) (*FixedSampler, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return nil, errs.NewValueIsInvalidError("driver location")
	}

	latitude, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, errs.NewValueIsInvalidError("driver location latitude")
	}
	longitude, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, errs.NewValueIsInvalidError("driver location longitude")
	}

	position, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return nil, err
	}

	return NewFixedSampler(position), nil
}

// Sample returns the configured position. An unset position reports
// LocationUnavailableError, matching a device without a fix.
func (s *FixedSampler) Sample(context.Context) (kernel.GeoPoint, error) {
	if !s.position.IsValid() {
		return kernel.GeoPoint{}, errs.NewLocationUnavailableError(nil)
	}
	return s.position, nil
}
