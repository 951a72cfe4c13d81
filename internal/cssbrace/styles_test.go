package cssbrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColorMode(t *testing.T) {
	tests := map[string]ColorMode{
		"always": ColorAlways,
		"true":   ColorAlways,
		"never":  ColorNever,
		"off":    ColorNever,
		"auto":   ColorAuto,
		"":       ColorAuto,
		"purple": ColorAuto,
	}

	for in, want := range tests {
		assert.Equal(t, want, ParseColorMode(in), "input %q", in)
	}
}

func TestShouldUseColors(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("GITHUB_ACTIONS", "")

	assert.True(t, ShouldUseColors(ColorAlways, nil))
	assert.False(t, ShouldUseColors(ColorNever, nil))
	assert.False(t, ShouldUseColors(ColorAuto, nil))

	t.Setenv("FORCE_COLOR", "1")
	assert.True(t, ShouldUseColors(ColorAuto, nil))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ShouldUseColors(ColorAuto, nil))
	assert.True(t, ShouldUseColors(ColorAlways, nil))
}

func TestRenderStyle(t *testing.T) {
	assert.Equal(t, "plain", RenderStyle(StyleRed, "plain", false))
}
