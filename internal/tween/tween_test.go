package tween

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEaseEndpoints(t *testing.T) {
	for name, e := range eases {
		assert.InDelta(t, 0, e(0), 1e-12, name)
		assert.InDelta(t, 1, e(1), 1e-12, name)
	}
}

func TestCircOutDecelerates(t *testing.T) {
	assert.Greater(t, CircOut(0.25), 0.25)
	early := CircOut(0.1) - CircOut(0)
	late := CircOut(1) - CircOut(0.9)
	assert.Greater(t, early, late)
	assert.InDelta(t, 0.8660254, CircOut(0.5), 1e-6)
}

func TestEaseByName(t *testing.T) {
	e, ok := EaseByName("circ.out")
	require.True(t, ok)
	assert.Equal(t, CircOut(0.3), e(0.3))

	_, ok = EaseByName("bounce")
	assert.False(t, ok)
}

func TestTweenRampsWithDelay(t *testing.T) {
	v := float32(0)
	tw := New(time.Second, 2*time.Second, Linear, Prop{Target: &v, To: 1})

	tw.Update(500 * time.Millisecond)
	assert.False(t, tw.Started())
	assert.Zero(t, v)

	tw.Update(2 * time.Second)
	assert.InDelta(t, 0.5, v, 1e-6)

	tw.Update(3 * time.Second)
	assert.Equal(t, float32(1), v)
	assert.True(t, tw.Done())

	v = 0.25
	tw.Update(10 * time.Second)
	assert.Equal(t, float32(0.25), v, "finished tween must not write")
}

func TestTweenCapturesStartValueLate(t *testing.T) {
	v := float32(0)
	tw := New(time.Second, time.Second, Linear, Prop{Target: &v, To: 1})
	v = 0.5
	tw.Update(time.Second)
	assert.Equal(t, float32(0.5), v)
	tw.Update(1500 * time.Millisecond)
	assert.InDelta(t, 0.75, v, 1e-6)
}

func TestTweenZeroDurationJumps(t *testing.T) {
	v := float32(3)
	completed := 0
	tw := New(0, 0, nil, Prop{Target: &v, To: -1}).OnComplete(func() { completed++ })
	tw.Update(0)
	assert.Equal(t, float32(-1), v)
	tw.Update(time.Second)
	assert.Equal(t, 1, completed)
}

func TestTweenMultipleProps(t *testing.T) {
	a, b := float32(0), float32(1)
	tw := New(0, time.Second, CircOut, Prop{Target: &a, To: 1}, Prop{Target: &b, To: 1})
	tw.Update(250 * time.Millisecond)
	assert.InDelta(t, CircOut(0.25), a, 1e-6)
	assert.Equal(t, float32(1), b)
}

func TestTimelineKill(t *testing.T) {
	v := float32(0)
	tl := NewTimeline(New(0, time.Second, Linear, Prop{Target: &v, To: 1}))
	assert.True(t, tl.Active())

	tl.Update(100 * time.Millisecond)
	before := v
	tl.Kill()
	tl.Kill()
	tl.Update(900 * time.Millisecond)

	assert.Equal(t, before, v)
	assert.False(t, tl.Active())
	assert.True(t, tl.Killed())
}

func TestTimelineInactiveWhenComplete(t *testing.T) {
	v := float32(0)
	tl := NewTimeline().Add(New(0, time.Second, Linear, Prop{Target: &v, To: 1}))
	tl.Update(2 * time.Second)
	assert.False(t, tl.Active())
	assert.Equal(t, float32(1), v)
}
