package domain

// Perspective is the three-way political leaning attached to issue
// evaluations and to every aggregated output.
type Perspective string

const (
	PerspectiveLeft   Perspective = "left"
	PerspectiveCenter Perspective = "center"
	PerspectiveRight  Perspective = "right"
)

// Perspectives returns the three buckets in display order.
func Perspectives() []Perspective {
	return []Perspective{PerspectiveLeft, PerspectiveCenter, PerspectiveRight}
}

func (p Perspective) Valid() bool {
	switch p {
	case PerspectiveLeft, PerspectiveCenter, PerspectiveRight:
		return true
	}
	return false
}

// DeclaredPerspective is the five-way leaning declared on media sources and
// user profiles.
type DeclaredPerspective string

const (
	DeclaredLeft        DeclaredPerspective = "left"
	DeclaredCenterLeft  DeclaredPerspective = "center_left"
	DeclaredCenter      DeclaredPerspective = "center"
	DeclaredCenterRight DeclaredPerspective = "center_right"
	DeclaredRight       DeclaredPerspective = "right"
)

// Bucket collapses a declared leaning into the three-way bucket used by the
// aggregators. center_left folds into left and center_right into right.
// The second return is false for unrecognized values.
func (d DeclaredPerspective) Bucket() (Perspective, bool) {
	switch d {
	case DeclaredLeft, DeclaredCenterLeft:
		return PerspectiveLeft, true
	case DeclaredCenter:
		return PerspectiveCenter, true
	case DeclaredCenterRight, DeclaredRight:
		return PerspectiveRight, true
	}
	return "", false
}
