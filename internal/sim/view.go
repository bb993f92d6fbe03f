package sim

// Zoom and pan step factors per discrete input event.
const (
	zoomStep = 1.1
	panStep  = 10.0 // AU per pan event at zoom 1; scaled down when zoomed in
)

// ViewState holds the user-controlled viewport parameters: a multiplicative
// zoom and a pan offset in AU. Zoom is stepped geometrically so it can never
// reach zero; the upper end is unbounded.
type ViewState struct {
	Zoom float64
	PanX float64
	PanY float64
}

// NewViewState returns a view at the given zoom, centered on the origin.
func NewViewState(zoom float64) *ViewState {
	if zoom <= 0 {
		zoom = 1
	}
	return &ViewState{Zoom: zoom}
}

// ZoomIn multiplies the zoom by the step factor.
func (v *ViewState) ZoomIn() { v.Zoom *= zoomStep }

// ZoomOut divides the zoom by the step factor.
func (v *ViewState) ZoomOut() { v.Zoom /= zoomStep }

// Pan shifts the view by (dx, dy) pan events. The world distance moved per
// event shrinks as zoom grows, so panning feels uniform on screen.
func (v *ViewState) Pan(dx, dy float64) {
	v.PanX += dx * panStep / v.Zoom
	v.PanY += dy * panStep / v.Zoom
}

// Center resets the pan offset, putting the central body back on screen
// center.
func (v *ViewState) Center() {
	v.PanX = 0
	v.PanY = 0
}
