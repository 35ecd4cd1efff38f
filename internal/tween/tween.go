// Package tween animates float32 fields toward targets over wall-clock time.
package tween

import (
	"time"
)

// Prop binds a field to the value it should reach.
type Prop struct {
	Target *float32
	To     float32
	from   float32
}

// Tween drives its props from their values at start time to their targets. The start value
// of each prop is read on the first update at or after Delay, not when the tween is built.
type Tween struct {
	Delay    time.Duration
	Duration time.Duration
	Ease     Ease

	props      []Prop
	started    bool
	done       bool
	onComplete func()
}

func New(delay, duration time.Duration, ease Ease, props ...Prop) *Tween {
	if ease == nil {
		ease = Linear
	}
	return &Tween{
		Delay:    delay,
		Duration: duration,
		Ease:     ease,
		props:    props,
	}
}

func (t *Tween) OnComplete(fn func()) *Tween {
	t.onComplete = fn
	return t
}

func (t *Tween) Started() bool { return t.started }
func (t *Tween) Done() bool    { return t.done }

// Progress returns the linear progress at elapsed, clamped to [0,1].
func (t *Tween) Progress(elapsed time.Duration) float64 {
	local := elapsed - t.Delay
	if local < 0 {
		return 0
	}
	if t.Duration <= 0 {
		return 1
	}
	return min(float64(local)/float64(t.Duration), 1)
}

// Update writes the eased value for elapsed, measured from when the owning timeline started.
func (t *Tween) Update(elapsed time.Duration) {
	if t.done || elapsed < t.Delay {
		return
	}
	if !t.started {
		for i := range t.props {
			t.props[i].from = *t.props[i].Target
		}
		t.started = true
	}

	p := t.Progress(elapsed)
	if p >= 1 {
		for _, prop := range t.props {
			*prop.Target = prop.To
		}
		t.done = true
		if t.onComplete != nil {
			t.onComplete()
		}
		return
	}

	e := float32(t.Ease(p))
	for _, prop := range t.props {
		*prop.Target = prop.from + (prop.To-prop.from)*e
	}
}

// Timeline runs tweens concurrently against one clock. A killed timeline never writes again.
type Timeline struct {
	tweens []*Tween
	killed bool
}

func NewTimeline(tweens ...*Tween) *Timeline {
	return &Timeline{tweens: tweens}
}

func (tl *Timeline) Add(tweens ...*Tween) *Timeline {
	tl.tweens = append(tl.tweens, tweens...)
	return tl
}

func (tl *Timeline) Update(elapsed time.Duration) {
	if tl.killed {
		return
	}
	for _, t := range tl.tweens {
		t.Update(elapsed)
	}
}

// Active reports whether any tween still has work to do.
func (tl *Timeline) Active() bool {
	if tl.killed {
		return false
	}
	for _, t := range tl.tweens {
		if !t.done {
			return true
		}
	}
	return false
}

// Kill discards every pending tween. Safe to call more than once.
func (tl *Timeline) Kill() {
	tl.killed = true
	tl.tweens = nil
}

func (tl *Timeline) Killed() bool { return tl.killed }
