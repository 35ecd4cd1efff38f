package panel

import "github.com/ThatOtherAndrew/Morphfield/internal/models"

// BindParameters adds the General and States folders over params.
func (p *Panel) BindParameters(params *models.Parameters) {
	general := p.AddFolder("General")
	general.AddColor(&params.Color, "color").Name("Color")
	general.Add(&params.ParticleSize, "particle_size").Step(0.1).Name("Size")

	states := p.AddFolder("States")
	states.Add(&params.TransparencyState, "transparency_state").Min(0).Max(1).Step(0.01).Name("Alpha")
	states.Add(&params.RandomState, "random_state").Min(0).Max(1).Step(0.01).Name("Random state")
	states.Add(&params.State1, "state1").Min(0).Max(1).Step(0.01).Name("State 1")
	states.Add(&params.State2, "state2").Min(0).Max(1).Step(0.01).Name("State 2")
	states.Add(&params.State3, "state3").Min(0).Max(1).Step(0.01).Name("State 3")
}
