// Package shaders embeds the GLSL stages of the particle program.
package shaders

import _ "embed"

//go:embed particle.vert.glsl
var ParticleVertex string

//go:embed particle.frag.glsl
var ParticleFragment string
