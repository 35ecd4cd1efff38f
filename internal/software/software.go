// Package software rasterises the particle program on the CPU. It is used for headless
// snapshots and for exercising a view without a GL context.
package software

import (
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/ThatOtherAndrew/Morphfield/internal/blend"
	"github.com/ThatOtherAndrew/Morphfield/internal/geometry"
	"github.com/ThatOtherAndrew/Morphfield/internal/models"
	"github.com/go-gl/mathgl/mgl32"
)

// Background is the clear colour, the same slate as the GL renderer.
var Background = color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}

type Renderer struct {
	Background color.RGBA

	set         *geometry.ParticleSet
	materialKey string
	img         *image.RGBA
	released    bool
	drawn       int
}

func New() *Renderer {
	return &Renderer{Background: Background}
}

func (r *Renderer) Upload(set *geometry.ParticleSet, materialKey string) error {
	if r.released {
		return errors.New("renderer released")
	}
	r.set = set
	r.materialKey = materialKey
	return nil
}

func (r *Renderer) Render(frame models.Frame) error {
	if r.released {
		return errors.New("renderer released")
	}
	if r.set == nil {
		return errors.New("no particle set uploaded")
	}
	w, h := max(frame.Width, 1), max(frame.Height, 1)
	if r.img == nil || r.img.Rect.Dx() != w || r.img.Rect.Dy() != h {
		r.img = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	r.clear()

	u := frame.Uniforms
	mv := frame.ModelView()
	col := [3]float32{
		mgl32.Clamp(u.Color.R, 0, 1),
		mgl32.Clamp(u.Color.G, 0, 1),
		mgl32.Clamp(u.Color.B, 0, 1),
	}

	r.drawn = 0
	for i := 0; i < r.set.Count; i++ {
		alpha := blend.Alpha(i, u)
		if alpha <= 0 {
			continue
		}
		pos := blend.Position(r.set, i, u)
		viewPos := mv.Mul4x1(pos.Vec4(1))
		size := blend.PointSize(u, viewPos[2])
		if size <= 0 {
			continue
		}
		clip := frame.Projection.Mul4x1(viewPos)
		if clip[3] <= 0 {
			continue
		}
		ndcX, ndcY := clip[0]/clip[3], clip[1]/clip[3]
		sx := (ndcX*0.5 + 0.5) * float32(w)
		sy := (1 - (ndcY*0.5 + 0.5)) * float32(h)
		if r.sprite(sx, sy, size, col, alpha) {
			r.drawn++
		}
	}
	return nil
}

func (r *Renderer) clear() {
	bg := r.Background
	pix := r.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = bg.R, bg.G, bg.B, bg.A
	}
}

// sprite draws a round point of diameter size centred on (cx, cy) and reports whether any
// pixel was touched.
func (r *Renderer) sprite(cx, cy, size float32, col [3]float32, alpha float32) bool {
	half := max(size/2, 0.5)
	x0 := int(math.Floor(float64(cx - half)))
	x1 := int(math.Ceil(float64(cx + half)))
	y0 := int(math.Floor(float64(cy - half)))
	y1 := int(math.Ceil(float64(cy + half)))

	b := r.img.Rect
	touched := false
	for y := max(y0, b.Min.Y); y < min(y1, b.Max.Y); y++ {
		for x := max(x0, b.Min.X); x < min(x1, b.Max.X); x++ {
			dx := (float32(x) + 0.5 - cx) / (2 * half)
			dy := (float32(y) + 0.5 - cy) / (2 * half)
			d := float32(math.Sqrt(float64(dx*dx + dy*dy)))
			a := alpha * blend.SpriteFalloff(d)
			if a <= 0 {
				continue
			}
			r.over(x, y, col, a)
			touched = true
		}
	}
	return touched
}

func (r *Renderer) over(x, y int, col [3]float32, a float32) {
	i := r.img.PixOffset(x, y)
	pix := r.img.Pix[i : i+4 : i+4]
	for c := range 3 {
		pix[c] = uint8(col[c]*255*a + float32(pix[c])*(1-a) + 0.5)
	}
	pix[3] = uint8(255*a + float32(pix[3])*(1-a) + 0.5)
}

// Image returns the last rendered frame. The image is reused by the next Render.
func (r *Renderer) Image() *image.RGBA {
	return r.img
}

// Drawn is the number of particles that covered at least one pixel in the last frame.
func (r *Renderer) Drawn() int {
	return r.drawn
}

func (r *Renderer) MaterialKey() string {
	return r.materialKey
}

func (r *Renderer) Release() {
	r.released = true
	r.set = nil
	r.img = nil
}

func (r *Renderer) Released() bool {
	return r.released
}
