package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderScoreBar_FillProportions(t *testing.T) {
	full := RenderScoreBar(100, 10)
	assert.Equal(t, 10, strings.Count(full, filledBlock))
	assert.Equal(t, 0, strings.Count(full, emptyBlock))
	assert.Contains(t, full, "100/100")

	half := RenderScoreBar(50, 10)
	assert.Equal(t, 5, strings.Count(half, filledBlock))
	assert.Equal(t, 5, strings.Count(half, emptyBlock))

	none := RenderScoreBar(0, 10)
	assert.Equal(t, 0, strings.Count(none, filledBlock))
	assert.Equal(t, 10, strings.Count(none, emptyBlock))
	assert.Contains(t, none, "  0/100")
}

func TestRenderScoreBar_ClampsOutOfRange(t *testing.T) {
	over := RenderScoreBar(140, 10)
	assert.Contains(t, over, "100/100")
	assert.Equal(t, 10, strings.Count(over, filledBlock))

	under := RenderScoreBar(-5, 10)
	assert.Contains(t, under, "  0/100")
	assert.Equal(t, 0, strings.Count(under, filledBlock))
}
