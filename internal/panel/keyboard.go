package panel

type Key int

const (
	KeyNone Key = iota
	KeyNext
	KeyPrev
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
)

// HandleKey moves the selection immediately and queues value nudges for the next Poll.
func (p *Panel) HandleKey(k Key) {
	if p.Disposed() || len(p.controls) == 0 {
		return
	}

	switch k {
	case KeyNext:
		p.selected = (p.selected + 1) % len(p.controls)
		return
	case KeyPrev:
		p.selected = (p.selected - 1 + len(p.controls)) % len(p.controls)
		return
	}

	steps := 0
	switch k {
	case KeyUp:
		steps = 1
	case KeyDown:
		steps = -1
	case KeyPageUp:
		steps = 10
	case KeyPageDown:
		steps = -10
	default:
		return
	}

	c := p.controls[p.selected]
	p.Enqueue(func() {
		c.Nudge(steps)
		p.log.Debugf("%s = %s", c.Label(), c.Literal())
	})
}
