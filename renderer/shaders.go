package renderer

import (
	_ "embed"
)

//go:embed shaders/fireball.vert.glsl
var fireballVertSrc string

//go:embed shaders/fireball.frag.glsl
var fireballFragSrc string

// FireballShaders returns the noise-displaced fireball pipeline stages.
func FireballShaders() []ShaderSource {
	return []ShaderSource{
		{Stage: VertexStage, Source: fireballVertSrc},
		{Stage: FragmentStage, Source: fireballFragSrc},
	}
}
