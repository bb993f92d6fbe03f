package viz

import "github.com/avasko/s2orbit/internal/sim"

// Camera maps world positions in meters onto canvas sub-pixels. Zoom is
// sub-pixels per AU, pan is in AU, and the Y axis flips so that +y in the
// orbital plane points up on screen.
type Camera struct {
	width, height int // canvas size in sub-pixels
	au            float64
	view          *sim.ViewState
}

// NewCamera builds a camera for a canvas of w x h characters.
func NewCamera(w, h int, au float64, view *sim.ViewState) *Camera {
	return &Camera{width: w * 2, height: h * 4, au: au, view: view}
}

// Project converts a world position in meters to sub-pixel coordinates.
// Points may land outside the canvas; the canvas clips them.
func (c *Camera) Project(x, y float64) (int, int) {
	wx := x/c.au - c.view.PanX
	wy := y/c.au - c.view.PanY
	sx := float64(c.width)/2 + wx*c.view.Zoom
	sy := float64(c.height)/2 - wy*c.view.Zoom
	return int(sx), int(sy)
}

// ScaleLength converts a world length in meters to sub-pixels.
func (c *Camera) ScaleLength(l float64) int {
	return int(l / c.au * c.view.Zoom)
}
