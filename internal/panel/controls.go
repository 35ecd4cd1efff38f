package panel

import (
	"fmt"
	"math"
	"strconv"

	"github.com/ThatOtherAndrew/Morphfield/internal/models"
	"github.com/go-gl/mathgl/mgl32"
	css "github.com/mazznoer/csscolorparser"
)

type Number struct {
	key, label, folder string
	target             *float32
	min, max           float32
	hasMin, hasMax     bool
	step               float32
	onChange           []func(float32)
}

func (f *Folder) Add(target *float32, key string) *Number {
	n := &Number{
		key:    key,
		label:  key,
		folder: f.Name,
		target: target,
		step:   0.01,
	}
	f.panel.add(n)
	return n
}

func (n *Number) Min(v float32) *Number {
	n.min, n.hasMin = v, true
	return n
}

func (n *Number) Max(v float32) *Number {
	n.max, n.hasMax = v, true
	return n
}

func (n *Number) Step(v float32) *Number {
	n.step = v
	return n
}

func (n *Number) Name(label string) *Number {
	n.label = label
	return n
}

func (n *Number) OnChange(fn func(float32)) *Number {
	n.onChange = append(n.onChange, fn)
	return n
}

func (n *Number) Key() string    { return n.key }
func (n *Number) Label() string  { return n.label }
func (n *Number) Folder() string { return n.folder }
func (n *Number) Value() float32 { return *n.target }

func (n *Number) Literal() string {
	return strconv.FormatFloat(float64(*n.target), 'f', -1, 32)
}

// Set clamps v to the control's bounds, writes it and notifies listeners.
func (n *Number) Set(v float32) {
	if math.IsNaN(float64(v)) {
		return
	}
	if n.hasMin && v < n.min {
		v = n.min
	}
	if n.hasMax && v > n.max {
		v = n.max
	}
	*n.target = v
	for _, fn := range n.onChange {
		fn(v)
	}
}

func (n *Number) Nudge(steps int) {
	n.Set(*n.target + float32(steps)*n.step)
}

func (n *Number) Apply(v any) error {
	switch x := v.(type) {
	case float64:
		n.Set(float32(x))
	case int64:
		n.Set(float32(x))
	case float32:
		n.Set(x)
	case int:
		n.Set(float32(x))
	default:
		return fmt.Errorf("%s: want a number, got %T", n.key, v)
	}
	return nil
}

type ColorControl struct {
	key, label, folder string
	target             *models.Color
	onChange           []func(models.Color)
}

func (f *Folder) AddColor(target *models.Color, key string) *ColorControl {
	c := &ColorControl{key: key, label: key, folder: f.Name, target: target}
	f.panel.add(c)
	return c
}

func (c *ColorControl) Name(label string) *ColorControl {
	c.label = label
	return c
}

func (c *ColorControl) OnChange(fn func(models.Color)) *ColorControl {
	c.onChange = append(c.onChange, fn)
	return c
}

func (c *ColorControl) Key() string         { return c.key }
func (c *ColorControl) Label() string       { return c.label }
func (c *ColorControl) Folder() string      { return c.folder }
func (c *ColorControl) Value() models.Color { return *c.target }

func (c *ColorControl) Literal() string {
	return strconv.Quote(Hex(*c.target))
}

func (c *ColorControl) Set(v models.Color) {
	*c.target = v
	for _, fn := range c.onChange {
		fn(v)
	}
}

// SetString accepts any CSS colour syntax.
func (c *ColorControl) SetString(s string) error {
	clr, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("%s: %w", c.key, err)
	}
	c.Set(clr)
	return nil
}

// Nudge rotates the hue by 10 degrees per step.
func (c *ColorControl) Nudge(steps int) {
	h, s, v := toHSV(*c.target)
	h = math.Mod(h+float64(steps)*10, 360)
	if h < 0 {
		h += 360
	}
	c.Set(fromHSV(h, s, v))
}

func (c *ColorControl) Apply(v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%s: want a colour string, got %T", c.key, v)
	}
	return c.SetString(s)
}

func ParseColor(s string) (models.Color, error) {
	clr, err := css.Parse(s)
	if err != nil {
		return models.Color{}, err
	}
	return models.Color{R: float32(clr.R), G: float32(clr.G), B: float32(clr.B)}, nil
}

func Hex(c models.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float32) uint8 {
	return uint8(math.Round(float64(mgl32.Clamp(v, 0, 1)) * 255))
}

func toHSV(c models.Color) (h, s, v float64) {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	cMax := max(r, g, b)
	cMin := min(r, g, b)
	dist := cMax - cMin

	switch {
	case dist == 0:
		h = 0
	case cMax == r:
		h = math.Mod((g-b)/dist, 6)
	case cMax == g:
		h = (b-r)/dist + 2
	default:
		h = (r-g)/dist + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	if cMax > 0 {
		s = dist / cMax
	}
	return h, s, cMax
}

func fromHSV(h, s, v float64) models.Color {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return models.Color{R: float32(r + m), G: float32(g + m), B: float32(b + m)}
}
