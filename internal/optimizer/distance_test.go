package optimizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultOptions())
	require.NoError(t, err)
	return e
}

func TestDistanceKM_DefaultWhenCoordinatesMissing(t *testing.T) {
	e := newTestEngine(t)
	loc := &Coordinate{Lat: 1.35, Lon: 103.8}

	require.Equal(t, 10.0, e.DistanceKM(nil, loc))
	require.Equal(t, 10.0, e.DistanceKM(loc, nil))
	require.Equal(t, 10.0, e.DistanceKM(nil, nil))
}

func TestDistanceKM_SamePointIsZero(t *testing.T) {
	e := newTestEngine(t)
	loc := &Coordinate{Lat: 52.52, Lon: 13.405}

	require.Equal(t, 0.0, e.DistanceKM(loc, loc))
}

func TestDistanceKM_Haversine(t *testing.T) {
	e := newTestEngine(t)

	// One degree of latitude at the equator is ~111.2 km.
	a := &Coordinate{Lat: 0, Lon: 0}
	b := &Coordinate{Lat: 1, Lon: 0}
	require.InDelta(t, 111.19, e.DistanceKM(a, b), 0.1)

	// Symmetric.
	require.Equal(t, e.DistanceKM(a, b), e.DistanceKM(b, a))
}

func TestDistanceKM_ConfiguredDefault(t *testing.T) {
	opts := DefaultOptions()
	opts.DefaultDistKM = 25.0
	e, err := NewEngine(opts)
	require.NoError(t, err)

	require.Equal(t, 25.0, e.DistanceKM(nil, &Coordinate{Lat: 1, Lon: 1}))
}
