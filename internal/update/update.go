package update

import (
	"time"

	"github.com/ThatOtherAndrew/Morphfield/internal/models"
)

type App struct {
	app *models.App
}

func New(app *models.App) *App {
	return &App{app: app}
}

// Advance returns the time since mount and since the previous frame. Clock readings that go
// backwards are treated as no time passing.
func (a *App) Advance(now time.Time) (elapsed, delta time.Duration) {
	elapsed = max(now.Sub(a.app.StartTime), 0)
	if !a.app.LastFrame.IsZero() {
		delta = max(now.Sub(a.app.LastFrame), 0)
	}
	if now.After(a.app.LastFrame) {
		a.app.LastFrame = now
	}
	return elapsed, delta
}

// UpdateUniforms copies the current parameters into the uniform block.
func (a *App) UpdateUniforms(elapsed time.Duration) {
	p := a.app.Params
	u := &a.app.Uniforms

	if t := float32(elapsed.Seconds()); t > u.Time {
		u.Time = t
	}
	u.ParticleSize = p.ParticleSize
	u.Color = p.Color
	u.TransparencyState = p.TransparencyState
	u.RandomState = p.RandomState
	u.State1 = p.State1
	u.State2 = p.State2
	u.State3 = p.State3
	u.PixelRatio = a.app.PixelRatio
}
