package scene

import "github.com/radiant-render/radiant/pkg/math"

// Camera models a pinhole camera: a world frame plus physical lens and film
// dimensions in meters. Aperture and focus are carried for loaders that set
// them; the pinhole ray model does not sample the lens disk.
type Camera struct {
	Frame    math.Frame
	Lens     float32
	Film     math.Vec2
	Aperture float32
	Focus    float32
}

// SetLens sets the focal length and derives the film dimensions from the
// aspect ratio. film is the length of the longer film edge.
func (c *Camera) SetLens(lens, aspect, film float32) {
	c.Lens = lens
	if aspect >= 1 {
		c.Film = math.Vec2{film, film / aspect}
	} else {
		c.Film = math.Vec2{film * aspect, film}
	}
}

// SetFocus sets the aperture radius and focus distance.
func (c *Camera) SetFocus(aperture, focus float32) {
	c.Aperture = aperture
	c.Focus = focus
}

// Ray maps an image plane coordinate in [0,1]² to the world-space ray from
// the lens center through that point of the film.
func (c *Camera) Ray(uv math.Vec2) math.Ray {
	q := math.Vec3{c.Film[0] * (0.5 - uv[0]), c.Film[1] * (uv[1] - 0.5), c.Lens}
	direction := c.Frame.TransformDirection(q.Neg())
	return math.NewRay(c.Frame.O, direction)
}
