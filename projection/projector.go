package projection

// Projector converts geographic coordinates into current screen coordinates.
// Projected values are only valid for the viewport in effect at call time;
// callers must re-project after every viewport change rather than cache.
type Projector interface {
	Project(lon, lat float64) (x, y float64)
}

// ProjectorFunc adapts a plain function to the Projector interface.
type ProjectorFunc func(lon, lat float64) (x, y float64)

func (f ProjectorFunc) Project(lon, lat float64) (x, y float64) { return f(lon, lat) }
