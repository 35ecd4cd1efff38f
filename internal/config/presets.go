package config

import (
	"fmt"
	"sort"

	"github.com/ThatOtherAndrew/Morphfield/internal/models"
)

// Presets are the three shipped views.
var Presets = map[string]models.Variant{
	// Manual loop with panel and entrance; states hold at 1 while randomState disperses.
	"classic": {
		Name:                 "classic",
		HasPanel:             true,
		HasEntranceAnimation: true,
		RenderMode:           models.Manual,
		IntroStates:          models.IntroHold,
	},
	// Scene graph with orbit controls showing the three solids blended, nothing to tune.
	"fiver": {
		Name:       "fiver",
		RenderMode: models.Declarative,
	},
	"welcome": {
		Name:                 "welcome",
		HasPanel:             true,
		HasEntranceAnimation: true,
		RenderMode:           models.Declarative,
		IntroStates:          models.IntroRamp,
	},
}

func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ResolveVariant(name string) (models.Variant, error) {
	v, ok := Presets[name]
	if !ok {
		return models.Variant{}, fmt.Errorf("unknown variant %q", name)
	}
	return v, nil
}

// presetParameters is the starting block for a variant. Views without a panel or entrance
// never change their parameters, so they start on the equal blend of the three solids,
// fully assembled and visible.
func presetParameters(v models.Variant) models.Parameters {
	params := models.DefaultParameters()
	if !v.HasPanel && !v.HasEntranceAnimation {
		params.RandomState = 0
		params.State1 = 1
		params.State2 = 1
		params.State3 = 1
	}
	return params
}

func ParseRenderMode(s string) (models.RenderMode, error) {
	switch s {
	case "", "manual":
		return models.Manual, nil
	case "declarative":
		return models.Declarative, nil
	}
	return 0, fmt.Errorf("unknown render mode %q", s)
}

func ParseIntroStates(s string) (models.IntroStates, error) {
	switch s {
	case "", "hold":
		return models.IntroHold, nil
	case "ramp":
		return models.IntroRamp, nil
	}
	return 0, fmt.Errorf("unknown intro states %q", s)
}
