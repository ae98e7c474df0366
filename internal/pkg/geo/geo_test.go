package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	office := Point{Lat: 12.9716, Lng: 77.5946}

	t.Run("same point is zero", func(t *testing.T) {
		assert.Equal(t, 0.0, Distance(office, office))
	})

	t.Run("symmetric", func(t *testing.T) {
		other := Point{Lat: 13.0827, Lng: 80.2707}
		assert.InDelta(t, Distance(office, other), Distance(other, office), 1e-6)
	})

	t.Run("small offset north", func(t *testing.T) {
		d := Distance(office, Point{Lat: 12.9717, Lng: 77.5946})
		assert.InDelta(t, 11.12, d, 0.05)
	})

	t.Run("bangalore to chennai", func(t *testing.T) {
		d := Distance(office, Point{Lat: 13.0827, Lng: 80.2707})
		assert.InDelta(t, 290000, d, 2000)
	})
}

func TestPointValid(t *testing.T) {
	cases := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{90, 180}, true},
		{Point{-90, -180}, true},
		{Point{90.01, 0}, false},
		{Point{0, -180.5}, false},
	}
	for _, c := range cases {
		if got := c.p.Valid(); got != c.want {
			t.Errorf("Point%v.Valid() = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 15.57, Round2(15.5678))
	assert.Equal(t, 0.0, Round2(0.001))
	assert.Equal(t, 300.0, Round2(300))
}
