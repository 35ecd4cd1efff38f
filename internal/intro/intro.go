// Package intro builds the welcome sequence played when a view mounts.
package intro

import (
	"time"

	"github.com/ThatOtherAndrew/Morphfield/internal/models"
	"github.com/ThatOtherAndrew/Morphfield/internal/tween"
)

const (
	RandomDuration       = 3 * time.Second
	TransparencyDelay    = time.Second
	TransparencyDuration = 3 * time.Second
	StatesDuration       = 1250 * time.Millisecond
)

// End is when the last ramp of the sequence finishes.
const End = TransparencyDelay + TransparencyDuration

// Start resets the animated fields to their opening values and returns a timeline that
// ramps them. The caller owns the timeline and must Kill it on teardown.
func Start(params *models.Parameters, states models.IntroStates) *tween.Timeline {
	params.RandomState = 0
	params.TransparencyState = 0

	statesFrom := float32(1)
	if states == models.IntroRamp {
		statesFrom = 0
	}
	params.State1 = statesFrom
	params.State2 = statesFrom
	params.State3 = statesFrom

	return tween.NewTimeline(
		tween.New(0, RandomDuration, tween.CircOut,
			tween.Prop{Target: &params.RandomState, To: 1},
		),
		tween.New(TransparencyDelay, TransparencyDuration, tween.CircOut,
			tween.Prop{Target: &params.TransparencyState, To: 1},
		),
		tween.New(0, StatesDuration, tween.CircOut,
			tween.Prop{Target: &params.State1, To: 1},
			tween.Prop{Target: &params.State2, To: 1},
			tween.Prop{Target: &params.State3, To: 1},
		),
	)
}
