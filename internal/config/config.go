package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/ThatOtherAndrew/Morphfield/internal/logging"
	"github.com/ThatOtherAndrew/Morphfield/internal/models"
	"github.com/ThatOtherAndrew/Morphfield/internal/panel"
	"github.com/pelletier/go-toml/v2"
)

type Settings struct {
	Variant string `toml:"variant"`
	// Overrides on top of the variant preset; empty or unset keeps the preset value.
	RenderMode  string `toml:"render_mode,omitempty"`
	Panel       *bool  `toml:"panel,omitempty"`
	Intro       *bool  `toml:"intro,omitempty"`
	IntroStates string `toml:"intro_states,omitempty"`

	Color        string  `toml:"color"`
	ParticleSize float32 `toml:"particle_size"`
	Seed         uint64  `toml:"seed"`
	Width        int     `toml:"width"`
	Height       int     `toml:"height"`
	ParamsFile   string  `toml:"params_file,omitempty"`
	Debug        bool    `toml:"debug"`
}

func Default() *Settings {
	params := models.DefaultParameters()
	return &Settings{
		Variant:      "classic",
		Color:        panel.Hex(params.Color),
		ParticleSize: params.ParticleSize,
		Seed:         1,
		Width:        1280,
		Height:       800,
	}
}

func GetSettingsPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(homeDir, ".config", "morphfield")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(configDir, "settings.toml"), nil
}

// LoadSettings reads path, or the default settings path when path is empty. A missing file
// is created with defaults. Unknown keys and invalid values are reported through log and
// never fail the load.
func LoadSettings(path string, log logging.Logger) (*Settings, error) {
	log = logging.OrNop(log)
	if path == "" {
		p, err := GetSettingsPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	defaultSettings := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Infof("Creating default settings file at %s", path)
			if err := createDefaultSettings(path, defaultSettings); err != nil {
				log.Warnf("Failed to create default settings file: %v", err)
			}
			return defaultSettings, nil
		}
		return nil, err
	}

	var rawSettings map[string]any
	if err := toml.Unmarshal(data, &rawSettings); err != nil {
		log.Warnf("Invalid settings file, using defaults: %v", err)
		return defaultSettings, nil
	}

	knownKeys := getKnownKeys(Settings{})
	unknown := make([]string, 0)
	for key := range rawSettings {
		if !knownKeys[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		log.Warnf("unrecognised setting key '%s' in settings file", key)
	}

	settings := Default()
	if err := toml.Unmarshal(data, settings); err != nil {
		log.Warnf("Invalid settings file, using defaults: %v", err)
		return defaultSettings, nil
	}

	settings.validate(defaultSettings, log)
	return settings, nil
}

func (s *Settings) validate(def *Settings, log logging.Logger) {
	if _, ok := Presets[s.Variant]; !ok {
		log.Warnf("Invalid variant %q, must be one of %s, using default %q",
			s.Variant, strings.Join(PresetNames(), ", "), def.Variant)
		s.Variant = def.Variant
	}
	if _, err := ParseRenderMode(s.RenderMode); err != nil {
		log.Warnf("Invalid render_mode: %v, using the variant's mode", err)
		s.RenderMode = ""
	}
	if _, err := ParseIntroStates(s.IntroStates); err != nil {
		log.Warnf("Invalid intro_states: %v, using the variant's states", err)
		s.IntroStates = ""
	}
	if _, err := panel.ParseColor(s.Color); err != nil {
		log.Warnf("Invalid color %q, using default %s", s.Color, def.Color)
		s.Color = def.Color
	}
	if s.ParticleSize <= 0 || math.IsNaN(float64(s.ParticleSize)) || math.IsInf(float64(s.ParticleSize), 0) {
		log.Warnf("Invalid particle_size value %.2f, must be positive, using default %.2f",
			s.ParticleSize, def.ParticleSize)
		s.ParticleSize = def.ParticleSize
	}
	if s.Width <= 0 || s.Height <= 0 {
		log.Warnf("Invalid window size %dx%d, using default %dx%d", s.Width, s.Height, def.Width, def.Height)
		s.Width, s.Height = def.Width, def.Height
	}
}

// Resolve turns the settings into the variant to mount and the initial parameter block.
func (s *Settings) Resolve() (models.Variant, models.Parameters, error) {
	variant, err := ResolveVariant(s.Variant)
	if err != nil {
		return models.Variant{}, models.Parameters{}, err
	}
	if s.RenderMode != "" {
		if variant.RenderMode, err = ParseRenderMode(s.RenderMode); err != nil {
			return models.Variant{}, models.Parameters{}, err
		}
	}
	if s.IntroStates != "" {
		if variant.IntroStates, err = ParseIntroStates(s.IntroStates); err != nil {
			return models.Variant{}, models.Parameters{}, err
		}
	}
	if s.Panel != nil {
		variant.HasPanel = *s.Panel
	}
	if s.Intro != nil {
		variant.HasEntranceAnimation = *s.Intro
	}

	params := presetParameters(variant)
	if s.Color != "" {
		if params.Color, err = panel.ParseColor(s.Color); err != nil {
			return models.Variant{}, models.Parameters{}, fmt.Errorf("color: %w", err)
		}
	}
	if s.ParticleSize > 0 {
		params.ParticleSize = s.ParticleSize
	}
	return variant, params, nil
}

func createDefaultSettings(path string, settings *Settings) error {
	data, err := toml.Marshal(settings)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func getKnownKeys(v any) map[string]bool {
	keys := make(map[string]bool)
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if tag := field.Tag.Get("toml"); tag != "" {
			tagName := strings.Split(tag, ",")[0]
			if tagName != "-" {
				keys[tagName] = true
			}
		}
	}
	return keys
}
