package scheduler

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTween(t *testing.T) {
	s := New(WithInterval(10 * time.Millisecond))
	var values []float64
	h := s.Spawn(nil, "fade", Tween(40*time.Millisecond, Linear, func(p float64) {
		values = append(values, p)
	}))
	for i := 0; i < 6; i++ {
		s.Step()
	}
	<-h.Done()
	assert.Equal(t, []float64{0.25, 0.5, 0.75, 1}, values)
}

func TestTweenZeroDuration(t *testing.T) {
	s := New()
	var values []float64
	s.Spawn(nil, "snap", Tween(0, OutBounce, func(p float64) { values = append(values, p) }))
	s.Step()
	assert.Equal(t, []float64{1}, values)
}

func TestTweenCancelled(t *testing.T) {
	s := New(WithInterval(10 * time.Millisecond))
	var values []float64
	h := s.Spawn(nil, "fade", Tween(time.Second, InQuad, func(p float64) { values = append(values, p) }))
	s.Step()
	h.Cancel()
	s.Step()
	<-h.Done()
	assert.Len(t, values, 1)
}

func TestEasingEndpoints(t *testing.T) {
	for e := Linear; e <= InOutBounce; e++ {
		t.Run(e.String(), func(t *testing.T) {
			assert.InDelta(t, 0, e.Apply(0), 1e-9)
			assert.InDelta(t, 1, e.Apply(1), 1e-9)
			assert.False(t, math.IsNaN(e.Apply(0.5)))
		})
	}
}

func TestEasingShapes(t *testing.T) {
	assert.InDelta(t, 0.25, InQuad.Apply(0.5), 1e-9)
	assert.InDelta(t, 0.75, OutQuad.Apply(0.5), 1e-9)
	assert.InDelta(t, 0.5, InOutCubic.Apply(0.5), 1e-9)
	assert.Less(t, InBack.Apply(0.2), 0.0, "back easing overshoots below zero")
	assert.InDelta(t, 1, Linear.Apply(7), 1e-9, "progress is clamped")
}

func TestParseEasing(t *testing.T) {
	e, err := ParseEasing("In-Out-Elastic")
	require.NoError(t, err)
	assert.Equal(t, InOutElastic, e)
	assert.Equal(t, "in_out_elastic", e.String())

	_, err = ParseEasing("wobble")
	assert.Error(t, err)
	assert.Equal(t, 31, len(easingNames))
}
