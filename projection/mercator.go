package projection

import "math"

// Viewport is the camera state of the built-in Web-Mercator projector.
type Viewport struct {
	CenterLon float64 `json:"centerLon"`
	CenterLat float64 `json:"centerLat"`
	Zoom      float64 `json:"zoom"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
}

// Mercator projects lon/lat into pixel coordinates of a Web-Mercator
// viewport: the tile-pyramid world coordinate, shifted so the viewport
// center lands in the middle of the screen.
type Mercator struct {
	vp Viewport
}

// NewMercator creates a projector for the given viewport.
func NewMercator(vp Viewport) *Mercator {
	return &Mercator{vp: vp}
}

// SetViewport replaces the camera state. The caller is responsible for
// re-projecting all markers afterwards.
func (m *Mercator) SetViewport(vp Viewport) { m.vp = vp }

// Viewport returns the current camera state.
func (m *Mercator) Viewport() Viewport { return m.vp }

// Project implements Projector.
func (m *Mercator) Project(lon, lat float64) (x, y float64) {
	worldSize := 256 * math.Exp2(m.vp.Zoom)
	wx := (lon + 180) / 360 * worldSize
	wy := mercatorY(lat) * worldSize
	cx := (m.vp.CenterLon + 180) / 360 * worldSize
	cy := mercatorY(m.vp.CenterLat) * worldSize
	return wx - cx + float64(m.vp.Width)/2, wy - cy + float64(m.vp.Height)/2
}

// mercatorY maps latitude to the [0,1] world Y of the Web-Mercator
// projection, clamped to the standard ±85.0511 degree limit.
func mercatorY(lat float64) float64 {
	const maxLat = 85.05112878
	if lat > maxLat {
		lat = maxLat
	} else if lat < -maxLat {
		lat = -maxLat
	}
	rad := lat * math.Pi / 180
	return (1 - math.Log(math.Tan(rad)+1/math.Cos(rad))/math.Pi) / 2
}
