package panel

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ThatOtherAndrew/Morphfield/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBound(t *testing.T) (*Panel, *models.Parameters) {
	t.Helper()
	params := models.DefaultParameters()
	p := New("Morphfield", nil)
	p.BindParameters(&params)
	t.Cleanup(p.Dispose)
	return p, &params
}

func number(t *testing.T, p *Panel, key string) *Number {
	t.Helper()
	c, ok := p.Lookup(key)
	require.True(t, ok, key)
	n, ok := c.(*Number)
	require.True(t, ok, key)
	return n
}

func TestBindParametersLayout(t *testing.T) {
	p, _ := newBound(t)
	require.Len(t, p.Folders(), 2)
	assert.Equal(t, "General", p.Folders()[0].Name)
	assert.Equal(t, "States", p.Folders()[1].Name)

	var keys []string
	for _, c := range p.Controls() {
		keys = append(keys, c.Key())
	}
	assert.Equal(t, []string{
		"color", "particle_size", "transparency_state", "random_state", "state1", "state2", "state3",
	}, keys)

	c, ok := p.Lookup("random STATE")
	require.True(t, ok)
	assert.Equal(t, "random_state", c.Key())
}

func TestNumberClampsBlendFactors(t *testing.T) {
	p, params := newBound(t)
	alpha := number(t, p, "transparency_state")

	alpha.Set(1.7)
	assert.Equal(t, float32(1), params.TransparencyState)
	alpha.Set(-3)
	assert.Equal(t, float32(0), params.TransparencyState)
}

func TestSizeIsUnbounded(t *testing.T) {
	p, params := newBound(t)
	number(t, p, "particle_size").Set(42)
	assert.Equal(t, float32(42), params.ParticleSize)
	number(t, p, "particle_size").Set(-1)
	assert.Equal(t, float32(-1), params.ParticleSize)
}

func TestOnChangeFires(t *testing.T) {
	p, _ := newBound(t)
	var seen []float32
	number(t, p, "state2").OnChange(func(v float32) { seen = append(seen, v) })
	number(t, p, "state2").Set(0.4)
	number(t, p, "state2").Set(2)
	assert.Equal(t, []float32{0.4, 1}, seen)
}

func TestEditsWaitForPoll(t *testing.T) {
	p, params := newBound(t)
	st := number(t, p, "state1")
	p.Enqueue(func() { st.Set(0.3) })
	p.Enqueue(func() { st.Set(0.6) })

	assert.Equal(t, float32(0), params.State1)
	assert.Equal(t, 2, p.Pending())
	assert.Equal(t, 2, p.Poll())
	assert.Equal(t, float32(0.6), params.State1, "last write wins")
	assert.Equal(t, 0, p.Poll())
}

func TestKeyboardSelectAndNudge(t *testing.T) {
	p, params := newBound(t)
	assert.Equal(t, "color", p.Selected().Key())

	p.HandleKey(KeyPrev)
	assert.Equal(t, "state3", p.Selected().Key())
	p.HandleKey(KeyNext)
	p.HandleKey(KeyNext)
	p.HandleKey(KeyNext)
	assert.Equal(t, "transparency_state", p.Selected().Key())

	p.HandleKey(KeyDown)
	p.HandleKey(KeyPageDown)
	p.Poll()
	assert.InDelta(t, 0.89, params.TransparencyState, 1e-5)

	p.HandleKey(KeyPageUp)
	p.HandleKey(KeyPageUp)
	p.Poll()
	assert.Equal(t, float32(1), params.TransparencyState)
}

func TestColorNudgeRotatesHue(t *testing.T) {
	p, params := newBound(t)
	c, _ := p.Lookup("color")
	cc := c.(*ColorControl)
	cc.Set(models.Color{R: 1, G: 0, B: 0})

	p.HandleKey(KeyUp)
	p.Poll()
	h, s, v := toHSV(params.Color)
	assert.InDelta(t, 10, h, 1e-3)
	assert.InDelta(t, 1, s, 1e-6)
	assert.InDelta(t, 1, v, 1e-6)

	for range 36 {
		cc.Nudge(-1)
	}
	h, _, _ = toHSV(params.Color)
	assert.InDelta(t, 10, h, 1e-2)
}

func TestColorStrings(t *testing.T) {
	p, params := newBound(t)
	c, _ := p.Lookup("color")
	cc := c.(*ColorControl)

	require.NoError(t, cc.SetString("rgb(255, 0, 128)"))
	assert.Equal(t, "#ff0080", Hex(params.Color))
	assert.Equal(t, `"#ff0080"`, cc.Literal())
	assert.Error(t, cc.SetString("not a colour"))
	assert.Equal(t, "#f8665d", Hex(models.DefaultParameters().Color))
}

func TestApplyTOML(t *testing.T) {
	p, params := newBound(t)
	n, err := p.ApplyTOML([]byte(`
particle_size = 3
bogus = 1

[States]
state2 = 0.25
random_state = 4

[General]
color = "#00ff00"
`))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	p.Poll()

	assert.Equal(t, float32(3), params.ParticleSize)
	assert.Equal(t, float32(0.25), params.State2)
	assert.Equal(t, float32(1), params.RandomState)
	assert.Equal(t, models.Color{G: 1}, params.Color)
}

func TestApplyTOMLRejectsGarbage(t *testing.T) {
	p, _ := newBound(t)
	_, err := p.ApplyTOML([]byte("state1 = ["))
	assert.Error(t, err)
	assert.Zero(t, p.Pending())
}

func TestApplyWrongTypeLeavesValue(t *testing.T) {
	p, params := newBound(t)
	_, err := p.ApplyTOML([]byte(`state1 = "high"`))
	require.NoError(t, err)
	p.Poll()
	assert.Equal(t, float32(0), params.State1)
}

func TestTemplateRoundTrip(t *testing.T) {
	p, params := newBound(t)
	params.State3 = 0.5
	params.ParticleSize = 2.5
	tmpl := p.Template()
	assert.Contains(t, string(tmpl), "[States]\n")
	assert.Contains(t, string(tmpl), "state3 = 0.5\n")

	other, otherParams := newBound(t)
	_, err := other.ApplyTOML(tmpl)
	require.NoError(t, err)
	other.Poll()
	assert.Equal(t, Hex(params.Color), Hex(otherParams.Color))
	otherParams.Color = params.Color
	assert.Equal(t, *params, *otherParams)
}

func TestDescribeMarksSelection(t *testing.T) {
	p, _ := newBound(t)
	p.HandleKey(KeyNext)
	out := p.Describe()
	assert.Contains(t, out, "> Size")
	assert.Contains(t, out, "  States\n")
}

func TestDisposeIsIdempotentAndStopsEdits(t *testing.T) {
	p, params := newBound(t)
	st := number(t, p, "state1")
	p.Enqueue(func() { st.Set(0.9) })

	p.Dispose()
	p.Dispose()
	assert.True(t, p.Disposed())

	p.Enqueue(func() { st.Set(0.5) })
	p.HandleKey(KeyUp)
	assert.Zero(t, p.Poll())
	assert.Equal(t, float32(0), params.State1)
}

func TestWatchFileAppliesEdits(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "params.toml")
	require.NoError(t, os.WriteFile(path, []byte("state1 = 0.2\n"), 0644))

	p, params := newBound(t)
	require.NoError(t, p.WatchFile(path))
	p.Poll()
	assert.Equal(t, float32(0.2), params.State1)

	require.NoError(t, os.WriteFile(path, []byte("state1 = 0.7\n"), 0644))
	require.Eventually(t, func() bool {
		p.Poll()
		return params.State1 == 0.7
	}, 5*time.Second, 20*time.Millisecond)

	p.Dispose()
	require.NoError(t, os.WriteFile(path, []byte("state1 = 0.1\n"), 0644))
	time.Sleep(100 * time.Millisecond)
	p.Poll()
	assert.Equal(t, float32(0.7), params.State1)
}

func TestWatchFileMissingFile(t *testing.T) {
	dir := t.TempDir()
	p, params := newBound(t)
	require.NoError(t, p.WatchFile(filepath.Join(dir, "later.toml")))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "later.toml"), []byte("state2 = 1\n"), 0644))
	require.Eventually(t, func() bool {
		p.Poll()
		return params.State2 == 1
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatchFileAfterDispose(t *testing.T) {
	p, _ := newBound(t)
	p.Dispose()
	assert.Error(t, p.WatchFile(filepath.Join(t.TempDir(), "x.toml")))
}
