package badge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	svg := Render("on flags.example.com", "checkout", "#ff6c6c")

	assert.True(t, strings.HasPrefix(svg, "<svg "))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Contains(t, svg, "on flags.example.com")
	assert.Contains(t, svg, "checkout")
	assert.Contains(t, svg, `fill="#ff6c6c"`)
}

func TestRender_EscapesMarkup(t *testing.T) {
	svg := Render(`<script>`, `a&b`, "#ff6c6c")

	assert.NotContains(t, svg, "<script>")
	assert.Contains(t, svg, "&lt;script&gt;")
	assert.Contains(t, svg, "a&amp;b")
}

func TestRender_WidthGrowsWithText(t *testing.T) {
	short := Render("on", "a", "#ff6c6c")
	long := Render("on flags.example.com", "a-much-longer-switch-name", "#ff6c6c")

	assert.NotEqual(t, short, long)
	assert.Less(t, len(short), len(long))
}
