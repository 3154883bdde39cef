package nurbs

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
)

// MakeArc configures dst as a circular arc in three dimensions. The arc lies
// in the plane spanned by xaxis and yaxis, which are normalized and should be
// perpendicular; angles are measured from xaxis towards yaxis. See
// [MakeEllipseArc].
func MakeArc(dst CurveTarget, center, xaxis, yaxis vec3.T, radius, startAngle, endAngle float64) error {
	if xaxis.Length() == 0 || yaxis.Length() == 0 {
		return fmt.Errorf("arc with zero axis: %w", ErrDegenerate)
	}
	x, y := xaxis.Normalized(), yaxis.Normalized()
	x, y = x.Scaled(radius), y.Scaled(radius)
	return MakeEllipseArc(dst, center[:], x[:], y[:], startAngle, endAngle)
}

// MakeArc2 configures dst as a circular arc in the plane, running
// counterclockwise from startAngle to endAngle.
func MakeArc2(dst CurveTarget, center vec2.T, radius, startAngle, endAngle float64) error {
	x := vec2.T{radius, 0}
	y := vec2.T{0, radius}
	return MakeEllipseArc(dst, center[:], x[:], y[:], startAngle, endAngle)
}
