// Package badge renders flat SVG status badges for switches, suitable for
// embedding in READMEs and dashboards.
package badge

import (
	"fmt"
	"html"
)

const (
	charWidth  = 7
	padding    = 10
	labelColor = "#555"
)

// Render produces a two-segment badge: a grey label segment and a colored
// value segment. Width is approximated from character count, which is how
// flat badge generators size monospaced-ish text at font-size 11.
func Render(label, value, valueColor string) string {
	labelWidth := len(label)*charWidth + padding
	valueWidth := len(value)*charWidth + padding
	total := labelWidth + valueWidth

	escapedLabel := html.EscapeString(label)
	escapedValue := html.EscapeString(value)

	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="20">`+
		`<rect width="%d" height="20" fill="%s"/>`+
		`<rect x="%d" width="%d" height="20" fill="%s"/>`+
		`<g fill="#fff" text-anchor="middle" font-family="DejaVu Sans,Verdana,Geneva,sans-serif" font-size="11">`+
		`<text x="%d" y="14">%s</text>`+
		`<text x="%d" y="14">%s</text>`+
		`</g>`+
		`</svg>`,
		total,
		labelWidth, labelColor,
		labelWidth, valueWidth, valueColor,
		labelWidth/2, escapedLabel,
		labelWidth+valueWidth/2, escapedValue,
	)
}
