package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(1, 1+Tolerance/2))
	assert.False(t, Equal(1, 1+Tolerance*2))
}

func TestVec2(t *testing.T) {
	a, b := V(3, 4), V(-1, 2)

	t.Run("arithmetic", func(t *testing.T) {
		assert.Equal(t, V(2, 6), a.Add(b))
		assert.Equal(t, V(4, 2), a.Sub(b))
		assert.Equal(t, V(6, 8), a.Mul(2))
		assert.Equal(t, V(-3, -4), a.Negate())
		assert.Equal(t, 5.0, a.Dot(b))
		assert.Equal(t, 10.0, a.Cross(b))
	})

	t.Run("length", func(t *testing.T) {
		assert.Equal(t, 5.0, a.Length())
		assert.Equal(t, 25.0, a.LengthSquared())
		assert.Equal(t, 5.0, Zero.Distance(a))
		assert.Equal(t, 25.0, Zero.DistanceSquared(a))
	})

	t.Run("normalize", func(t *testing.T) {
		n := a.Normalize()
		assert.InDelta(t, 0.6, n.X, Tolerance)
		assert.InDelta(t, 0.8, n.Y, Tolerance)
		assert.True(t, n.IsNormalized())
		assert.False(t, a.IsNormalized())
		assert.Equal(t, Zero, Zero.Normalize())
	})

	t.Run("perp is a quarter turn", func(t *testing.T) {
		assert.Equal(t, UnitY, UnitX.Perp())
		assert.Equal(t, 0.0, a.Dot(a.Perp()))
		assert.InDelta(t, math.Pi/2, a.AngleBetween(a.Perp()), Tolerance)
	})

	t.Run("angles", func(t *testing.T) {
		assert.InDelta(t, math.Pi/2, UnitY.Angle(), Tolerance)
		assert.InDelta(t, -math.Pi/2, UnitY.AngleBetween(UnitX), Tolerance)
		v := VecFromAngle(math.Pi / 3)
		assert.InDelta(t, 0.5, v.X, Tolerance)
		assert.InDelta(t, math.Sqrt(3)/2, v.Y, Tolerance)
	})

	t.Run("lerp and clamp", func(t *testing.T) {
		assert.Equal(t, V(1, 3), a.Lerp(b, 0.5))
		assert.Equal(t, V(1, 2), a.Clamp(V(0, 0), V(1, 2)))
		assert.Equal(t, V(0, 2), b.Clamp(V(0, 0), V(1, 2)))
	})

	t.Run("finite", func(t *testing.T) {
		assert.True(t, a.IsFinite())
		assert.False(t, V(math.NaN(), 0).IsFinite())
		assert.False(t, V(0, math.Inf(-1)).IsFinite())
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "(3, 4)", a.String())
	})
}
