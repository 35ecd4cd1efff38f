package cmd

import (
	"os"

	"github.com/ThatOtherAndrew/Morphfield/internal/config"
	"github.com/ThatOtherAndrew/Morphfield/internal/logging"
	"github.com/spf13/cobra"
)

var (
	configPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "morphfield",
	Short: "Particle field that morphs between a cube, a cloud and three solids",
	Long: `Morphfield renders a few thousand point sprites that blend between a cube, a
random cloud, a dodecahedron, a torus and a torus knot.

Run it in a window, render a headless PNG snapshot, or tune the blend live by editing
a parameter file while the window is open.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "settings file (default ~/.config/morphfield/settings.toml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadSettings reads the settings file and returns a logger honouring --debug or the
// file's debug key.
func loadSettings() (*config.Settings, logging.Logger, error) {
	level := logging.LevelInfo
	if debug {
		level = logging.LevelDebug
	}
	logger := logging.New("morphfield", level)
	settings, err := config.LoadSettings(configPath, logger)
	if err != nil {
		return nil, logger, err
	}
	if settings.Debug {
		logger.SetLevel(logging.LevelDebug)
	}
	return settings, logger, nil
}
