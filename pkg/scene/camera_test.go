package scene

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/radiant-render/radiant/pkg/math"
)

func TestCameraSetLens(t *testing.T) {
	tests := []struct {
		name   string
		aspect float32
		want   math.Vec2
	}{
		{name: "landscape keeps film width", aspect: 1.5, want: math.Vec2{0.036, 0.024}},
		{name: "square film", aspect: 1, want: math.Vec2{0.036, 0.036}},
		{name: "portrait keeps film height", aspect: 0.5, want: math.Vec2{0.018, 0.036}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := Camera{}
			camera.SetLens(0.05, tt.aspect, 0.036)
			if camera.Lens != 0.05 {
				t.Errorf("Lens = %v, want 0.05", camera.Lens)
			}
			if math32.Abs(camera.Film[0]-tt.want[0]) > 1e-6 || math32.Abs(camera.Film[1]-tt.want[1]) > 1e-6 {
				t.Errorf("Film = %v, want %v", camera.Film, tt.want)
			}
		})
	}
}

func TestCameraRay(t *testing.T) {
	camera := Camera{
		Frame: math.IdentityFrame(),
		Lens:  0.05,
		Film:  math.Vec2{0.036, 0.024},
		Focus: 10000,
	}
	tests := []struct {
		name string
		uv   math.Vec2
		want math.Vec3
	}{
		{name: "center looks down the view axis", uv: math.Vec2{0.5, 0.5}, want: math.Vec3{0, 0, -1}},
		{name: "left column bends left", uv: math.Vec2{0, 0.5}, want: math.Vec3{-0.018, 0, -0.05}.Normalize()},
		{name: "right column bends right", uv: math.Vec2{1, 0.5}, want: math.Vec3{0.018, 0, -0.05}.Normalize()},
		{name: "top row bends up", uv: math.Vec2{0.5, 0}, want: math.Vec3{0, 0.012, -0.05}.Normalize()},
		{name: "bottom row bends down", uv: math.Vec2{0.5, 1}, want: math.Vec3{0, -0.012, -0.05}.Normalize()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.Ray(tt.uv)
			if ray.Origin != (math.Vec3{}) {
				t.Errorf("Origin = %v, want frame origin", ray.Origin)
			}
			if ray.Direction.Sub(tt.want).Len() > 1e-6 {
				t.Errorf("Direction = %v, want %v", ray.Direction, tt.want)
			}
		})
	}
}

func TestCameraRay_TransformedFrame(t *testing.T) {
	camera := Camera{Lens: 0.05, Film: math.Vec2{0.036, 0.024}}
	camera.Frame = math.LookAtFrame(math.Vec3{0, 0, 5}, math.Vec3{}, math.Vec3{0, 1, 0})

	ray := camera.Ray(math.Vec2{0.5, 0.5})
	if ray.Origin.Sub(math.Vec3{0, 0, 5}).Len() > 1e-6 {
		t.Errorf("Origin = %v, want camera position {0 0 5}", ray.Origin)
	}
	if ray.Direction.Sub(math.Vec3{0, 0, -1}).Len() > 1e-6 {
		t.Errorf("Direction = %v, want view direction {0 0 -1}", ray.Direction)
	}
}
