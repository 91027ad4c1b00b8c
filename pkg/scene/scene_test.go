package scene

import (
	"fmt"
	"testing"

	"github.com/chewxy/math32"

	"github.com/radiant-render/radiant/pkg/math"
)

func TestSceneDefaults(t *testing.T) {
	scn := New()

	camera := scn.AddCamera()
	if camera.Lens != 0.050 || camera.Film != (math.Vec2{0.036, 0.024}) || camera.Focus != 10000 {
		t.Errorf("camera defaults = %+v", camera)
	}
	material := scn.AddMaterial()
	if material.IOR != 1.5 || material.TrDepth != 0.01 || material.Opacity != 1 {
		t.Errorf("material defaults = %+v", material)
	}
	inst := scn.AddInstance()
	if inst.Shape != -1 || inst.Material != -1 {
		t.Errorf("instance defaults = %+v", inst)
	}
	if len(scn.Cameras) != 1 || len(scn.Materials) != 1 || len(scn.Instances) != 1 {
		t.Error("added elements were not appended to the scene")
	}
}

func TestSceneIntersect_Instances(t *testing.T) {
	scn := New()
	shape := scn.AddShape()
	appendQuad(shape, [4]math.Vec3{{-0.5, -0.5, 0}, {0.5, -0.5, 0}, {0.5, 0.5, 0}, {-0.5, 0.5, 0}})
	scn.AddMaterial()

	near := scn.AddInstance()
	near.Frame = math.TranslationFrame(math.Vec3{0, 0, 1})
	near.Shape = 0
	near.Material = 0

	far := scn.AddInstance()
	far.Frame = math.TranslationFrame(math.Vec3{0, 0, -1})
	far.Shape = 0
	far.Material = 0

	scn.BuildBVH(nil)

	t.Run("nearest instance wins", func(t *testing.T) {
		isec := scn.Intersect(math.NewRay(math.Vec3{0.1, -0.2, 5}, math.Vec3{0, 0, -1}), false, false)
		if !isec.Hit {
			t.Fatal("expected a hit")
		}
		if isec.Instance != 0 {
			t.Errorf("Instance = %d, want 0", isec.Instance)
		}
		if d := isec.Distance - 4; d < -1e-4 || d > 1e-4 {
			t.Errorf("Distance = %v, want 4", isec.Distance)
		}
	})

	t.Run("ray past both instances misses", func(t *testing.T) {
		if isec := scn.Intersect(math.NewRay(math.Vec3{2, 0, 5}, math.Vec3{0, 0, -1}), false, false); isec.Hit {
			t.Errorf("unexpected hit: %+v", isec)
		}
	})

	t.Run("single instance query skips the other", func(t *testing.T) {
		isec := scn.IntersectInstance(math.NewRay(math.Vec3{0.1, -0.2, 5}, math.Vec3{0, 0, -1}), 1, false, false)
		if !isec.Hit {
			t.Fatal("expected a hit on the far instance")
		}
		if isec.Instance != 1 {
			t.Errorf("Instance = %d, want 1", isec.Instance)
		}
		if d := isec.Distance - 6; d < -1e-4 || d > 1e-4 {
			t.Errorf("Distance = %v, want 6", isec.Distance)
		}
	})
}

func TestSceneIntersect_RotatedInstance(t *testing.T) {
	scn := New()
	shape := scn.AddShape()
	appendQuad(shape, [4]math.Vec3{{-0.5, -0.5, 0}, {0.5, -0.5, 0}, {0.5, 0.5, 0}, {-0.5, 0.5, 0}})
	scn.AddMaterial()

	inst := scn.AddInstance()
	inst.Frame = math.RotationFrame(math.Vec3{0, 1, 0}, math32.Pi/2)
	inst.Shape = 0
	inst.Material = 0

	scn.BuildBVH(nil)

	// the quad normal now points along +x, so the plane is x = 0
	isec := scn.Intersect(math.NewRay(math.Vec3{5, 0.1, 0.2}, math.Vec3{-1, 0, 0}), false, false)
	if !isec.Hit {
		t.Fatal("expected a hit on the rotated quad")
	}
	if d := isec.Distance - 5; d < -1e-3 || d > 1e-3 {
		t.Errorf("Distance = %v, want 5", isec.Distance)
	}
}

func TestSceneIntersect_NonRigid(t *testing.T) {
	scn := New()
	shape := scn.AddShape()
	appendQuad(shape, [4]math.Vec3{{-0.5, -0.5, 0}, {0.5, -0.5, 0}, {0.5, 0.5, 0}, {-0.5, 0.5, 0}})
	scn.AddMaterial()

	inst := scn.AddInstance()
	inst.Frame = math.ScalingFrame(math.Vec3{2, 2, 2})
	inst.Shape = 0
	inst.Material = 0

	scn.BuildBVH(nil)

	// the point lies inside the scaled quad but outside the unscaled one
	ray := math.NewRay(math.Vec3{0.8, 0, 5}, math.Vec3{0, 0, -1})

	isec := scn.Intersect(ray, false, true)
	if !isec.Hit {
		t.Fatal("expected a hit with the non rigid inverse")
	}
	if d := isec.Distance - 5; d < -1e-4 || d > 1e-4 {
		t.Errorf("Distance = %v, want 5 in world units", isec.Distance)
	}

	if isec := scn.Intersect(ray, false, false); isec.Hit {
		t.Error("rigid inverse should not see the scaled extent")
	}
}

func TestSceneBuildBVH_Progress(t *testing.T) {
	scn := New()
	for i := 0; i < 2; i++ {
		shape := scn.AddShape()
		appendQuad(shape, [4]math.Vec3{{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0}})
		scn.AddMaterial()
		inst := scn.AddInstance()
		inst.Shape = i
		inst.Material = i
	}

	var got []string
	scn.BuildBVH(func(stage string, current, total int) {
		got = append(got, fmt.Sprintf("%s %d/%d", stage, current, total))
	})

	want := []string{
		"build shape bvh 0/3",
		"build shape bvh 1/3",
		"build scene bvh 2/3",
		"build bvh 3/3",
	}
	if len(got) != len(want) {
		t.Fatalf("progress calls = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("progress[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSceneIntersect_WithoutBVH(t *testing.T) {
	scn := New()
	if isec := scn.Intersect(math.NewRay(math.Vec3{0, 0, 5}, math.Vec3{0, 0, -1}), false, false); isec.Hit {
		t.Error("empty scene reported a hit")
	}
}

func TestCornellBox(t *testing.T) {
	scn := CornellBox()

	if len(scn.Cameras) != 1 {
		t.Fatalf("cameras = %d, want 1", len(scn.Cameras))
	}
	if len(scn.Shapes) != 8 || len(scn.Instances) != 8 {
		t.Errorf("shapes = %d, instances = %d, want 8 and 8", len(scn.Shapes), len(scn.Instances))
	}
	if len(scn.Materials) != 7 {
		t.Errorf("materials = %d, want 7", len(scn.Materials))
	}

	scn.BuildBVH(nil)
	ray := scn.Cameras[0].Ray(math.Vec2{0.5, 0.5})
	isec := scn.Intersect(ray, false, false)
	if !isec.Hit {
		t.Fatal("center ray should hit the box interior")
	}
	if isec.Distance > 4.91 {
		t.Errorf("Distance = %v, want at most the back wall at 4.9", isec.Distance)
	}
}

func TestMaterialShowcase(t *testing.T) {
	scn := MaterialShowcase()

	if len(scn.Cameras) != 1 || len(scn.Environments) != 1 || len(scn.Textures) != 1 {
		t.Fatalf("cameras = %d, environments = %d, textures = %d",
			len(scn.Cameras), len(scn.Environments), len(scn.Textures))
	}
	if len(scn.Shapes) != 5 || len(scn.Instances) != 10 || len(scn.Materials) != 10 {
		t.Errorf("shapes = %d, instances = %d, materials = %d, want 5, 10 and 10",
			len(scn.Shapes), len(scn.Instances), len(scn.Materials))
	}

	scn.BuildBVH(nil)
	ray := scn.Cameras[0].Ray(math.Vec2{0.5, 0.5})
	if isec := scn.Intersect(ray, false, false); !isec.Hit {
		t.Error("center ray should hit the showcase")
	}
}

func TestSolidShowcase(t *testing.T) {
	scn, err := SolidShowcase()
	if err != nil {
		t.Fatalf("SolidShowcase() error = %v", err)
	}
	if len(scn.Shapes) < 2 {
		t.Fatalf("shapes = %d, want the solid and the ground", len(scn.Shapes))
	}

	solid := scn.Shapes[0]
	if len(solid.Triangles) == 0 {
		t.Fatal("solid mesh has no triangles")
	}
	if len(solid.Positions) != 3*len(solid.Triangles) {
		t.Errorf("positions = %d, want %d for a triangle soup",
			len(solid.Positions), 3*len(solid.Triangles))
	}
	if len(solid.Normals) != 0 {
		t.Error("solid mesh should rely on face normals")
	}

	scn.BuildBVH(nil)
	isec := scn.Intersect(math.NewRay(math.Vec3{0, 2, 0}, math.Vec3{0, -1, 0}), false, false)
	if !isec.Hit {
		t.Error("downward ray should hit the solid or the ground")
	}
}

func TestSceneBounds(t *testing.T) {
	scn := New()
	shape := scn.AddShape()
	appendQuad(shape, [4]math.Vec3{{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0}})

	first := scn.AddInstance()
	first.Shape = 0

	second := scn.AddInstance()
	second.Shape = 0
	second.Frame = math.TranslationFrame(math.Vec3{5, 0, 2})

	scn.AddShape()
	empty := scn.AddInstance()
	empty.Shape = 1

	bounds := scn.Bounds()
	if bounds.Min != (math.Vec3{-1, -1, 0}) || bounds.Max != (math.Vec3{6, 1, 2}) {
		t.Errorf("bounds = %+v, want min {-1 -1 0} max {6 1 2}", bounds)
	}
}

func TestSceneBoundsEmpty(t *testing.T) {
	bounds := New().Bounds()
	if bounds.Min[0] <= bounds.Max[0] {
		t.Errorf("empty scene bounds = %+v, expected an inverted box", bounds)
	}
}
