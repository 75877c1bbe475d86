// Package placeholder generates stand-in photo images as SVG data URIs.
// Seed posts and the add-post preview use these instead of real photos.
package placeholder

import (
	"fmt"
	"net/url"
)

// DefaultBackground is the gradient start color used when none is given.
const DefaultBackground = "#98c8ff"

// gradientEnd is the fixed dark gradient stop shared by all placeholders.
const gradientEnd = "#0d1737"

const svgTemplate = `<svg xmlns='http://www.w3.org/2000/svg' width='800' height='600'>
  <defs><linearGradient id='g' x1='0' y1='0' x2='1' y2='1'>
    <stop offset='0' stop-color='%s'/>
    <stop offset='1' stop-color='%s'/>
  </linearGradient></defs>
  <rect width='100%%' height='100%%' fill='url(#g)'/>
  <g fill='rgba(255,255,255,0.85)' font-family='Segoe UI, Roboto, Arial' text-anchor='middle'>
    <text x='50%%' y='52%%' font-size='72' font-weight='700'>%s</text>
    <text x='50%%' y='62%%' font-size='22' opacity='0.85'>Photo Placeholder</text>
  </g>
</svg>`

// SVG returns a data URI for a labeled placeholder image: a two-color
// gradient (background down to a dark navy) with the label centered in
// large type. An empty background uses DefaultBackground.
func SVG(label, background string) string {
	if background == "" {
		background = DefaultBackground
	}
	svg := fmt.Sprintf(svgTemplate, background, gradientEnd, label)
	return "data:image/svg+xml;utf8," + url.PathEscape(svg)
}
