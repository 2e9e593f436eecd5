package models

// ZoneBounds is a lat/lng bounding box.
type ZoneBounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// Zone is a named geographic grouping. Vehicles reference zones by Name,
// not ID; the join tolerates unknown names.
type Zone struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Color  string      `json:"color"` // display hint, opaque
	Bounds *ZoneBounds `json:"bounds,omitempty"`
}
