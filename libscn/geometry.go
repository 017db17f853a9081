package libscn

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// All generated meshes fit the unit cube centered at the origin and
// wind counter-clockwise when seen from outside.

type meshBuilder struct {
	mesh *Mesh
}

func newMeshBuilder(name string) *meshBuilder {
	return &meshBuilder{mesh: &Mesh{Name: name}}
}

func (mb *meshBuilder) vert(pos, normal mgl32.Vec3) uint32 {
	mb.mesh.Vertices = append(mb.mesh.Vertices, Vertex{Position: pos, Normal: normal})
	return uint32(len(mb.mesh.Vertices) - 1)
}

func (mb *meshBuilder) tri(a, b, c uint32) {
	mb.mesh.Indices = append(mb.mesh.Indices, a, b, c)
}

// Flat shaded triangle
func (mb *meshBuilder) flatTri(a, b, c mgl32.Vec3) {
	n := b.Sub(a).Cross(c.Sub(a)).Normalize()
	mb.tri(mb.vert(a, n), mb.vert(b, n), mb.vert(c, n))
}

// Flat shaded quad around center, spanned by the half extents u and v.
// Faces towards u x v.
func (mb *meshBuilder) flatQuad(center, u, v mgl32.Vec3) {
	n := u.Cross(v).Normalize()
	i0 := mb.vert(center.Sub(u).Sub(v), n)
	i1 := mb.vert(center.Add(u).Sub(v), n)
	i2 := mb.vert(center.Add(u).Add(v), n)
	i3 := mb.vert(center.Sub(u).Add(v), n)
	mb.tri(i0, i1, i2)
	mb.tri(i0, i2, i3)
}

func GenerateSphere(rings, segments int) *Mesh {
	mb := newMeshBuilder("sphere")
	const radius = 0.5

	for ring := 0; ring <= rings; ring++ {
		phi := float32(ring) * math32.Pi / float32(rings)
		sinPhi, cosPhi := math32.Sincos(phi)
		for seg := 0; seg <= segments; seg++ {
			theta := float32(seg) * 2 * math32.Pi / float32(segments)
			sinTheta, cosTheta := math32.Sincos(theta)
			n := mgl32.Vec3{sinPhi * cosTheta, cosPhi, sinPhi * sinTheta}
			mb.vert(n.Mul(radius), n)
		}
	}

	stride := uint32(segments + 1)
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring)*stride + uint32(seg)
			next := current + stride
			mb.tri(current, current+1, next)
			mb.tri(current+1, next+1, next)
		}
	}

	return mb.mesh
}

func GenerateCube() *Mesh {
	mb := newMeshBuilder("cube")
	faces := [][2]mgl32.Vec3{
		// normal, tangent
		{{1, 0, 0}, {0, 1, 0}},
		{{-1, 0, 0}, {0, 0, 1}},
		{{0, 1, 0}, {0, 0, 1}},
		{{0, -1, 0}, {1, 0, 0}},
		{{0, 0, 1}, {1, 0, 0}},
		{{0, 0, -1}, {0, 1, 0}},
	}
	for _, f := range faces {
		n, u := f[0], f[1]
		v := n.Cross(u)
		mb.flatQuad(n.Mul(0.5), u.Mul(0.5), v.Mul(0.5))
	}
	return mb.mesh
}

func GenerateCylinder(segments int) *Mesh {
	mb := newMeshBuilder("cylinder")
	const radius, half = 0.5, 0.5

	// side
	for i := 0; i <= segments; i++ {
		theta := float32(i) * 2 * math32.Pi / float32(segments)
		sin, cos := math32.Sincos(theta)
		n := mgl32.Vec3{cos, 0, sin}
		mb.vert(mgl32.Vec3{cos * radius, -half, sin * radius}, n)
		mb.vert(mgl32.Vec3{cos * radius, half, sin * radius}, n)
	}
	for i := 0; i < segments; i++ {
		bottom, top := uint32(2*i), uint32(2*i+1)
		nextBottom, nextTop := bottom+2, top+2
		mb.tri(bottom, top, nextTop)
		mb.tri(bottom, nextTop, nextBottom)
	}

	// caps
	for _, y := range []float32{half, -half} {
		n := mgl32.Vec3{0, 1, 0}
		if y < 0 {
			n = mgl32.Vec3{0, -1, 0}
		}
		center := mb.vert(mgl32.Vec3{0, y, 0}, n)
		first := uint32(len(mb.mesh.Vertices))
		for i := 0; i <= segments; i++ {
			theta := float32(i) * 2 * math32.Pi / float32(segments)
			sin, cos := math32.Sincos(theta)
			mb.vert(mgl32.Vec3{cos * radius, y, sin * radius}, n)
		}
		for i := uint32(0); i < uint32(segments); i++ {
			if y > 0 {
				mb.tri(center, first+i+1, first+i)
			} else {
				mb.tri(center, first+i, first+i+1)
			}
		}
	}

	return mb.mesh
}

func GenerateTorus(majorSegments, minorSegments int) *Mesh {
	mb := newMeshBuilder("torus")
	const major, minor = 0.35, 0.15

	for i := 0; i <= majorSegments; i++ {
		u := float32(i) * 2 * math32.Pi / float32(majorSegments)
		sinU, cosU := math32.Sincos(u)
		for j := 0; j <= minorSegments; j++ {
			v := float32(j) * 2 * math32.Pi / float32(minorSegments)
			sinV, cosV := math32.Sincos(v)
			n := mgl32.Vec3{cosV * cosU, sinV, cosV * sinU}
			r := major + minor*cosV
			mb.vert(mgl32.Vec3{r * cosU, minor * sinV, r * sinU}, n)
		}
	}

	stride := uint32(minorSegments + 1)
	for i := 0; i < majorSegments; i++ {
		for j := 0; j < minorSegments; j++ {
			a := uint32(i)*stride + uint32(j)
			b := a + stride
			mb.tri(a, a+1, b)
			mb.tri(a+1, b+1, b)
		}
	}

	return mb.mesh
}

func GeneratePyramid() *Mesh {
	mb := newMeshBuilder("pyramid")
	apex := mgl32.Vec3{0, 0.5, 0}
	base := []mgl32.Vec3{
		{-0.5, -0.5, 0.5},
		{0.5, -0.5, 0.5},
		{0.5, -0.5, -0.5},
		{-0.5, -0.5, -0.5},
	}
	for i := range base {
		mb.flatTri(base[i], base[(i+1)%len(base)], apex)
	}
	mb.flatQuad(mgl32.Vec3{0, -0.5, 0}, mgl32.Vec3{0.5, 0, 0}, mgl32.Vec3{0, 0, 0.5})
	return mb.mesh
}

// GenerateMesh builds the procedural meshes; ok is false for kinds that need an asset file
func GenerateMesh(kind MeshKind) (mesh *Mesh, ok bool) {
	switch kind {
	case MeshSphere:
		return GenerateSphere(24, 48), true
	case MeshCube:
		return GenerateCube(), true
	case MeshCylinder:
		return GenerateCylinder(48), true
	case MeshTorus:
		return GenerateTorus(48, 24), true
	case MeshPyramid:
		return GeneratePyramid(), true
	}
	return nil, false
}
