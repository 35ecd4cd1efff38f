// Package view owns one mounted particle view: geometry, parameters, panel, entrance
// timeline, scene and renderer, and tears all of them down together.
//
// Per frame the order is fixed: the entrance timeline ticks, queued panel edits apply,
// parameters are copied into the uniforms, the frame renders. A panel edit made while a
// ramp is still running therefore shows for one frame and is then overwritten by the ramp.
package view

import (
	"errors"
	"fmt"
	"time"

	"github.com/ThatOtherAndrew/Morphfield/internal/geometry"
	"github.com/ThatOtherAndrew/Morphfield/internal/intro"
	"github.com/ThatOtherAndrew/Morphfield/internal/logging"
	"github.com/ThatOtherAndrew/Morphfield/internal/models"
	"github.com/ThatOtherAndrew/Morphfield/internal/panel"
	"github.com/ThatOtherAndrew/Morphfield/internal/scene"
	"github.com/ThatOtherAndrew/Morphfield/internal/tween"
	"github.com/ThatOtherAndrew/Morphfield/internal/update"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

var ErrTornDown = errors.New("view torn down")

// Renderer draws a particle set with a uniform block. Upload is called once per mount and
// Release once per teardown, or straight after a failed Upload.
type Renderer interface {
	Upload(set *geometry.ParticleSet, materialKey string) error
	Render(frame models.Frame) error
	Release()
}

type Options struct {
	Variant models.Variant
	// Params seeds the parameter block; nil means models.DefaultParameters.
	Params     *models.Parameters
	Seed       uint64
	Width      int
	Height     int
	PixelRatio float32
	// ParamsFile is watched for live edits when the variant has a panel.
	ParamsFile string
	Logger     logging.Logger
}

const (
	cameraFov  = 75
	cameraNear = 0.1
	cameraFar  = 100
)

var (
	manualCameraPosition      = mgl32.Vec3{0, 0, 2}
	declarativeCameraPosition = mgl32.Vec3{2, 1, 1}
)

type View struct {
	app         *models.App
	set         *geometry.ParticleSet
	renderer    Renderer
	update      *update.App
	scene       *scene.Scene
	tilt        *scene.TiltRig
	orbit       *scene.OrbitControls
	panel       *panel.Panel
	timeline    *tween.Timeline
	materialKey string
	log         logging.Logger
	tornDown    bool
}

func Mount(r Renderer, opts Options, now time.Time) (*View, error) {
	log := logging.OrNop(opts.Logger)

	params := models.DefaultParameters()
	if opts.Params != nil {
		params = *opts.Params
	}
	if opts.PixelRatio <= 0 {
		opts.PixelRatio = 1
	}

	app := &models.App{
		Variant:    opts.Variant,
		Params:     &params,
		StartTime:  now,
		Width:      opts.Width,
		Height:     opts.Height,
		PixelRatio: opts.PixelRatio,
	}

	set := geometry.NewParticleSet(opts.Seed)
	materialKey := uuid.NewString()
	if err := r.Upload(set, materialKey); err != nil {
		r.Release()
		return nil, fmt.Errorf("failed to upload particle set: %w", err)
	}

	v := &View{
		app:         app,
		set:         set,
		renderer:    r,
		update:      update.New(app),
		materialKey: materialKey,
		log:         log,
	}

	cam := scene.NewPerspectiveCamera(cameraFov, 1, cameraNear, cameraFar)
	cam.SetViewport(opts.Width, opts.Height)
	v.scene = scene.New(cam)

	switch opts.Variant.RenderMode {
	case models.Declarative:
		cam.Position = declarativeCameraPosition
		v.orbit = scene.NewOrbitControls(cam)
		v.scene.UseFrame(func(f scene.FrameState) { v.orbit.Update(f.Input) })
		v.scene.UseFrame(func(f scene.FrameState) { v.update.UpdateUniforms(f.Elapsed) })
	default:
		cam.Position = manualCameraPosition
		v.tilt = scene.NewTiltRig(v.scene.Points)
	}

	if opts.Variant.HasPanel {
		v.panel = panel.New("Morphfield", log)
		v.panel.BindParameters(app.Params)
		if opts.ParamsFile != "" {
			if err := v.panel.WatchFile(opts.ParamsFile); err != nil {
				log.Warnf("live parameter file disabled: %v", err)
			}
		}
	}

	if opts.Variant.HasEntranceAnimation {
		v.timeline = intro.Start(app.Params, opts.Variant.IntroStates)
	}

	v.update.UpdateUniforms(0)

	log.Infof("mounted %s view (%s mode, panel=%t, intro=%t): %d particles, material %s",
		opts.Variant.Name, opts.Variant.RenderMode, opts.Variant.HasPanel,
		opts.Variant.HasEntranceAnimation, set.Count, materialKey)
	return v, nil
}

// Frame advances the view to now and renders it.
func (v *View) Frame(now time.Time, in models.Input) error {
	if v.tornDown {
		return ErrTornDown
	}

	elapsed, delta := v.update.Advance(now)

	if v.timeline != nil {
		v.timeline.Update(elapsed)
	}
	if v.panel != nil {
		if n := v.panel.Poll(); n > 0 {
			v.log.Debugf("applied %d panel edit(s)", n)
		}
	}

	switch v.app.Variant.RenderMode {
	case models.Declarative:
		v.scene.Advance(elapsed, delta, in)
	default:
		v.tilt.Update(in)
		v.update.UpdateUniforms(elapsed)
	}

	return v.renderer.Render(v.CurrentFrame())
}

// CurrentFrame assembles the draw inputs from the current state without advancing it.
func (v *View) CurrentFrame() models.Frame {
	cam := v.scene.Camera
	return models.Frame{
		Uniforms:   v.app.Uniforms,
		Model:      v.scene.Points.Model(),
		View:       cam.View(),
		Projection: cam.Projection(),
		Width:      v.app.Width,
		Height:     v.app.Height,
	}
}

func (v *View) Resize(width, height int) {
	if v.tornDown || width <= 0 || height <= 0 {
		return
	}
	v.app.Width, v.app.Height = width, height
	v.scene.Camera.SetViewport(width, height)
}

// Teardown releases everything the view owns. Only the first call has any effect.
func (v *View) Teardown() {
	if v.tornDown {
		return
	}
	v.tornDown = true

	if v.timeline != nil {
		v.timeline.Kill()
	}
	if v.panel != nil {
		v.panel.Dispose()
	}
	v.scene.Dispose()
	v.renderer.Release()
	v.log.Infof("view torn down after %.2fs", v.app.Uniforms.Time)
}

func (v *View) TornDown() bool                     { return v.tornDown }
func (v *View) Params() *models.Parameters         { return v.app.Params }
func (v *View) Uniforms() models.Uniforms          { return v.app.Uniforms }
func (v *View) ParticleSet() *geometry.ParticleSet { return v.set }
func (v *View) Panel() *panel.Panel                { return v.panel }
func (v *View) Scene() *scene.Scene                { return v.scene }
func (v *View) MaterialKey() string                { return v.materialKey }

// Animating reports whether the entrance sequence still has ramps to run.
func (v *View) Animating() bool {
	return v.timeline != nil && v.timeline.Active()
}
