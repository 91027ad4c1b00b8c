package loaders

import (
	"fmt"
	"path/filepath"

	"github.com/chewxy/math32"
	"github.com/g3n/engine/loader/obj"

	"github.com/radiant-render/radiant/pkg/math"
	"github.com/radiant-render/radiant/pkg/scene"
)

// LoadOBJ reads the Wavefront OBJ file at path into scn. Every object splits
// into one shape and instance per material, so instances can bind materials
// by index. A missing material library or texture map only logs; a file that
// yields no triangles at all is an error.
func LoadOBJ(scn *scene.Scene, path string) error {
	dec, err := obj.Decode(path, "")
	if err != nil {
		return fmt.Errorf("failed to decode obj file: %w", err)
	}
	for _, warn := range dec.Warnings {
		logger.Warningf("obj %s: %s", filepath.Base(path), warn)
	}

	dir := filepath.Dir(path)
	textures := make(map[string]*scene.Texture)
	materials := make(map[string]int)
	shapes := 0

	for _, object := range dec.Objects {
		for _, group := range groupFaces(object.Faces) {
			var shape scene.Shape
			buildShape(dec, group.faces, &shape)
			if len(shape.Triangles) == 0 {
				continue
			}

			midx, ok := materials[group.material]
			if !ok {
				midx = addObjMaterial(scn, dec.Materials[group.material], dir, textures)
				materials[group.material] = midx
			}

			added := scn.AddShape()
			*added = shape
			inst := scn.AddInstance()
			inst.Shape = len(scn.Shapes) - 1
			inst.Material = midx
			shapes++
		}
	}

	if shapes == 0 {
		return fmt.Errorf("obj file %s contains no triangles", path)
	}
	logger.Debugf("loaded %s: %d shapes, %d materials, %d textures",
		filepath.Base(path), shapes, len(materials), len(textures))
	return nil
}

// faceGroup collects the faces of one object that share a material.
type faceGroup struct {
	material string
	faces    []obj.Face
}

// groupFaces splits faces by material name, keeping first-use order.
func groupFaces(faces []obj.Face) []faceGroup {
	var groups []faceGroup
	seen := make(map[string]int)
	for _, face := range faces {
		idx, ok := seen[face.Material]
		if !ok {
			idx = len(groups)
			seen[face.Material] = idx
			groups = append(groups, faceGroup{material: face.Material})
		}
		groups[idx].faces = append(groups[idx].faces, face)
	}
	return groups
}

// corner identifies a unique position, texcoord, normal triple.
type corner struct {
	vertex, uv, normal int
}

// buildShape converts one group of faces into an indexed triangle shape,
// deduplicating corners. Texcoords and normals are kept only when every
// corner in the group references them; the decoder marks absent references
// with an out of range sentinel. Faces with more than three corners fan
// triangulate around their first corner. OBJ texcoords have their v axis
// flipped to match top-down image addressing.
func buildShape(dec *obj.Decoder, faces []obj.Face, shape *scene.Shape) {
	useUvs := true
	useNormals := true
	for _, face := range faces {
		for k := range face.Vertices {
			if !validIndex(face.Uvs[k], len(dec.Uvs)/2) {
				useUvs = false
			}
			if !validIndex(face.Normals[k], len(dec.Normals)/3) {
				useNormals = false
			}
		}
	}

	corners := make(map[corner]int32)
	index := func(face obj.Face, k int) int32 {
		key := corner{vertex: face.Vertices[k]}
		if useUvs {
			key.uv = face.Uvs[k]
		}
		if useNormals {
			key.normal = face.Normals[k]
		}
		if idx, ok := corners[key]; ok {
			return idx
		}

		idx := int32(len(shape.Positions))
		corners[key] = idx
		vi := key.vertex * 3
		shape.Positions = append(shape.Positions,
			math.Vec3{dec.Vertices[vi], dec.Vertices[vi+1], dec.Vertices[vi+2]})
		if useNormals {
			ni := key.normal * 3
			shape.Normals = append(shape.Normals,
				math.Vec3{dec.Normals[ni], dec.Normals[ni+1], dec.Normals[ni+2]}.Normalize())
		}
		if useUvs {
			ti := key.uv * 2
			shape.Texcoords = append(shape.Texcoords,
				math.Vec2{dec.Uvs[ti], 1 - dec.Uvs[ti+1]})
		}
		return idx
	}

	for _, face := range faces {
		if len(face.Vertices) < 3 || !validVertices(dec, face) {
			continue
		}
		first := index(face, 0)
		for k := 2; k < len(face.Vertices); k++ {
			shape.Triangles = append(shape.Triangles,
				[3]int32{first, index(face, k-1), index(face, k)})
		}
	}
}

// validVertices reports whether every position index of face is in range.
func validVertices(dec *obj.Decoder, face obj.Face) bool {
	for k := range face.Vertices {
		if !validIndex(face.Vertices[k], len(dec.Vertices)/3) {
			return false
		}
	}
	return true
}

// validIndex reports whether idx addresses one of count entries.
func validIndex(idx, count int) bool {
	return idx >= 0 && idx < count
}

// addObjMaterial appends the renderer equivalent of a wavefront material to
// scn and returns its index. A nil material keeps the scene defaults. The
// Phong exponent maps through the usual roughness approximation, and the
// diffuse texture map loads relative to dir with a per-file cache.
func addObjMaterial(scn *scene.Scene, mat *obj.Material, dir string, textures map[string]*scene.Texture) int {
	material := scn.AddMaterial()
	if mat == nil {
		return len(scn.Materials) - 1
	}

	material.Color = math.Vec3{mat.Diffuse.R, mat.Diffuse.G, mat.Diffuse.B}
	material.Emission = math.Vec3{mat.Emissive.R, mat.Emissive.G, mat.Emissive.B}
	if mat.Specular.R != 0 || mat.Specular.G != 0 || mat.Specular.B != 0 {
		material.Specular = 1
	}
	material.Roughness = exponentToRoughness(mat.Shininess)
	if mat.Opacity > 0 {
		material.Opacity = mat.Opacity
	}
	if mat.Refraction > 1 {
		material.IOR = mat.Refraction
	}
	if mat.MapKd != "" {
		path := filepath.Join(dir, mat.MapKd)
		if tex, err := cachedTexture(scn, path, textures); err != nil {
			logger.Warningf("failed to load diffuse map %s: %v", mat.MapKd, err)
		} else {
			material.ColorTex = tex
		}
	}
	return len(scn.Materials) - 1
}

// exponentToRoughness maps a Phong specular exponent to linear roughness.
func exponentToRoughness(exponent float32) float32 {
	roughness := math32.Pow(2/(exponent+2), 0.25)
	if roughness < 0.01 {
		return 0
	}
	if roughness > 0.99 {
		return 1
	}
	return roughness
}

// cachedTexture loads the image at path once, reusing it on repeat lookups.
func cachedTexture(scn *scene.Scene, path string, textures map[string]*scene.Texture) (*scene.Texture, error) {
	if tex, ok := textures[path]; ok {
		return tex, nil
	}
	tex, err := LoadTexture(scn, path)
	if err != nil {
		return nil, err
	}
	textures[path] = tex
	return tex, nil
}
