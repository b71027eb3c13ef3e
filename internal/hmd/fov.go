package hmd

// FieldOfView bounds one eye's visible frustum with four half angles in
// radians, measured outward from the optical axis. All angles are
// positive; left/right are in the eye's own frame, so the left eye's
// outer bound is its left angle while the right eye's outer bound is its
// right angle.
type FieldOfView struct {
	Left   float64
	Right  float64
	Bottom float64
	Top    float64
}

// NewFieldOfView builds a FieldOfView from half angles in radians.
func NewFieldOfView(left, right, bottom, top float64) FieldOfView {
	return FieldOfView{Left: left, Right: right, Bottom: bottom, Top: top}
}
