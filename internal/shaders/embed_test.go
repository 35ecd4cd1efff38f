package shaders

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVertexShaderDeclaresBlendInputs(t *testing.T) {
	for _, name := range []string{
		"position", "position2", "position3", "position4", "position5",
		"particleSize", "time", "transparencyState", "randomState",
		"state1", "state2", "state3", "modelViewMatrix", "projectionMatrix", "pixelRatio",
	} {
		assert.Contains(t, ParticleVertex, " "+name+";", name)
	}
}

func TestFragmentShaderDeclaresColor(t *testing.T) {
	assert.Contains(t, ParticleFragment, "uniform vec3 color;")
	assert.Contains(t, ParticleFragment, "in float vAlpha;")
}

func TestShadersShareVersion(t *testing.T) {
	for _, src := range []string{ParticleVertex, ParticleFragment} {
		assert.True(t, strings.HasPrefix(src, "#version 410 core"))
	}
}
