package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelsRouteToWriters(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewWithWriters("morph", LevelInfo, &out, &errOut)

	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.Warnf("careful")
	l.Errorf("broken")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "[morph] INFO: shown 2")
	assert.Contains(t, errOut.String(), "[morph] WARN: careful")
	assert.Contains(t, errOut.String(), "[morph] ERROR: broken")
	assert.NotContains(t, out.String(), "careful")

	l.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, l.Level())
	l.Debugf("visible")
	assert.Contains(t, out.String(), "DEBUG: visible")
}

func TestLevelFiltersBelow(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewWithWriters("", LevelError, &out, &errOut)
	l.Infof("quiet")
	l.Warnf("quiet too")
	l.Errorf("loud")
	assert.Empty(t, out.String())
	assert.NotContains(t, errOut.String(), "quiet")
	assert.Contains(t, errOut.String(), " ERROR: loud")
	assert.NotContains(t, errOut.String(), "[")
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "Level(9)", Level(9).String())
}

func TestOrNop(t *testing.T) {
	nop := OrNop(nil)
	assert.NotNil(t, nop)
	nop.Errorf("dropped")
	l := New("x", LevelDebug)
	assert.Same(t, l, OrNop(l))
}
