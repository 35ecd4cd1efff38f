package cmd

import (
	"errors"
	"log"
	"runtime"
	"time"

	"github.com/ThatOtherAndrew/Morphfield/internal/config"
	"github.com/ThatOtherAndrew/Morphfield/internal/draw"
	"github.com/ThatOtherAndrew/Morphfield/internal/opengl"
	"github.com/ThatOtherAndrew/Morphfield/internal/panel"
	"github.com/ThatOtherAndrew/Morphfield/internal/view"
	"github.com/ThatOtherAndrew/Morphfield/pkg/window"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the particle view in a window",
	Long: `Open the particle view in a window.

Keys: Tab / Shift+Tab select a panel control, Up / Down nudge it by one step,
PageUp / PageDown by ten, P prints the panel, Esc quits.`,
	Run: Run,
}

var runFlags struct {
	variant     string
	mode        string
	introStates string
	paramsFile  string
	panel       bool
	intro       bool
	seed        uint64
}

func init() {
	rootCmd.AddCommand(runCmd)
	runtime.LockOSThread()
	addViewFlags(runCmd)
	runCmd.Flags().StringVar(&runFlags.paramsFile, "params-file", "", "parameter file to watch for live edits")
}

// addViewFlags registers the flags that override the settings file for one invocation.
func addViewFlags(c *cobra.Command) {
	c.Flags().StringVar(&runFlags.variant, "variant", "", "view preset: classic, fiver or welcome")
	c.Flags().StringVar(&runFlags.mode, "mode", "", "render mode: manual or declarative")
	c.Flags().StringVar(&runFlags.introStates, "intro-states", "", "entrance state tweens: hold or ramp")
	c.Flags().BoolVar(&runFlags.panel, "panel", false, "show the control panel")
	c.Flags().BoolVar(&runFlags.intro, "intro", false, "play the entrance animation")
	c.Flags().Uint64Var(&runFlags.seed, "seed", 0, "seed for the random cloud")
}

func applyViewFlags(c *cobra.Command, s *config.Settings) {
	flags := c.Flags()
	if flags.Changed("variant") {
		s.Variant = runFlags.variant
	}
	if flags.Changed("mode") {
		s.RenderMode = runFlags.mode
	}
	if flags.Changed("intro-states") {
		s.IntroStates = runFlags.introStates
	}
	if flags.Changed("panel") {
		s.Panel = &runFlags.panel
	}
	if flags.Changed("intro") {
		s.Intro = &runFlags.intro
	}
	if flags.Changed("seed") {
		s.Seed = runFlags.seed
	}
	if flags.Changed("params-file") {
		s.ParamsFile = runFlags.paramsFile
	}
}

func Run(cmd *cobra.Command, args []string) {
	settings, logger, err := loadSettings()
	if err != nil {
		log.Fatal("Failed to load settings:", err)
	}
	applyViewFlags(cmd, settings)

	variant, params, err := settings.Resolve()
	if err != nil {
		log.Fatal("Invalid view settings:", err)
	}

	win, err := window.New(settings.Width, settings.Height, "Morphfield")
	if err != nil {
		log.Fatal("Failed to create window:", err)
	}
	defer win.Destroy()

	if err := opengl.Init(); err != nil {
		log.Fatal(err)
	}

	width, height := win.FramebufferSize()
	v, err := view.Mount(draw.New(draw.Background, logger), view.Options{
		Variant:    variant,
		Params:     &params,
		Seed:       settings.Seed,
		Width:      width,
		Height:     height,
		PixelRatio: win.PixelRatio(),
		ParamsFile: settings.ParamsFile,
		Logger:     logger,
	}, time.Now())
	if err != nil {
		log.Fatal("Failed to mount view:", err)
	}
	defer v.Teardown()

	win.OnResize(v.Resize)
	win.OnKey(func(key glfw.Key, mods glfw.ModifierKey) {
		switch key {
		case glfw.KeyEscape:
			win.SetShouldClose(true)
			return
		case glfw.KeyP:
			if v.Panel() != nil {
				logger.Infof("\n%s", v.Panel().Describe())
			}
			return
		}
		if v.Panel() != nil {
			v.Panel().HandleKey(panelKey(key, mods))
		}
	})

	for !win.ShouldClose() {
		win.PollEvents()
		if err := v.Frame(time.Now(), win.Input()); err != nil {
			if errors.Is(err, view.ErrTornDown) {
				break
			}
			logger.Errorf("frame: %v", err)
		}
		win.SwapBuffers()
	}
}

func panelKey(key glfw.Key, mods glfw.ModifierKey) panel.Key {
	switch key {
	case glfw.KeyTab:
		if mods&glfw.ModShift != 0 {
			return panel.KeyPrev
		}
		return panel.KeyNext
	case glfw.KeyUp, glfw.KeyRight:
		return panel.KeyUp
	case glfw.KeyDown, glfw.KeyLeft:
		return panel.KeyDown
	case glfw.KeyPageUp:
		return panel.KeyPageUp
	case glfw.KeyPageDown:
		return panel.KeyPageDown
	}
	return panel.KeyNone
}
