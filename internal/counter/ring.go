package counter

import "math"

// DefaultRing matches the 160px stat ring with an 8px stroke.
//
//nolint:gochecknoglobals // Immutable geometry constant.
var DefaultRing = Ring{Diameter: 160, StrokeWidth: 8}

// Ring is the geometry of a circular progress indicator.
type Ring struct {
	// Diameter is the outer size of the indicator.
	Diameter float64
	// StrokeWidth is the width of the ring stroke.
	StrokeWidth float64
}

// Radius is the radius of the stroke's center line.
func (r Ring) Radius() float64 {
	return (r.Diameter - r.StrokeWidth) / 2
}

// Circumference is the length of the stroke's center line.
func (r Ring) Circumference() float64 {
	return 2 * math.Pi * r.Radius()
}

// DashOffset is the stroke-dash offset for progress in percent.
// 0 hides the whole ring, 100 draws it completely. Progress is clamped to [0, 100].
func (r Ring) DashOffset(progress float64) float64 {
	progress = math.Max(0, math.Min(100, progress))
	circumference := r.Circumference()

	return circumference - (progress/100)*circumference
}

// Filled is the drawn fraction of the ring in [0, 1].
func (r Ring) Filled(progress float64) float64 {
	circumference := r.Circumference()
	if circumference <= 0 {
		return 0
	}

	return (circumference - r.DashOffset(progress)) / circumference
}
