package location_test

import (
	"testing"

	"ordering/internal/adapters/out/location"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFixedSampler(t *testing.T) {
	sampler, err := location.ParseFixedSampler("51.5155, -0.0922")
	require.NoError(t, err)

	position, err := sampler.Sample(t.Context())
	require.NoError(t, err)
	assert.InDelta(t, 51.5155, position.Latitude(), 0.0001)
	assert.InDelta(t, -0.0922, position.Longitude(), 0.0001)
}

func TestParseFixedSampler_Invalid(t *testing.T) {
	tests := []string{"", "51.5155", "north,west", "91.0,0.0"}
	for _, value := range tests {
		_, err := location.ParseFixedSampler(value)
		assert.Error(t, err, value)
	}
}

func TestFixedSampler_UnsetPosition(t *testing.T) {
	sampler := location.NewFixedSampler(kernel.GeoPoint{})

	_, err := sampler.Sample(t.Context())

	assert.ErrorIs(t, err, errs.ErrLocationUnavailable)
}
