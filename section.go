package arbor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Section is one ring along a branch centerline. Sections only live for the
// duration of a single branch's growth.
type Section struct {
	Origin      mgl64.Vec3
	Orientation Euler
	Radius      float64
}

// buildSections walks a branch from base to tip, appending one ring of
// Segments+1 vertices per section to b.Tube. The first and last rings are
// never jittered so children attach to them without gaps.
func (g *generator) buildSections(b *Branch, origin mgl64.Vec3, orientation Euler, length, radius float64, level int) ([]Section, error) {
	p := g.params
	n := p.Geometry.Sections
	segments := p.Geometry.Segments
	terminal := level == p.Branch.Levels
	maturity2 := p.Maturity * p.Maturity

	twist := mgl64.QuatRotate(p.Branch.Twist, axisY)
	sun := mgl64.QuatBetweenVectors(axisY, p.Sun.Direction)

	sections := make([]Section, 0, n+1)
	for i := 0; i <= n; i++ {
		last := i == n
		interior := i > 0 && !last
		v := float64(i) / float64(n)

		// The tip of a terminal branch closes to a point; every other last
		// ring stays open for the leading child.
		sectionRadius := 0.0
		if !last || !terminal {
			sectionRadius = radius
			if level == 1 {
				sectionRadius += p.Trunk.Flare / float64(i+1)
			}
			sectionRadius *= 1 - p.Branch.Taper*v
			sectionRadius = math.Max(0, sectionRadius)
		}

		q := orientation.Quat()
		base := uint32(b.Tube.VertexCount())
		for j := 0; j < segments; j++ {
			angle := 2 * math.Pi * float64(j) / float64(segments)
			if interior {
				angle += spread(g.rng, p.Geometry.Randomization)
			}

			segmentRadius := sectionRadius
			if interior {
				segmentRadius *= 1 + spread(g.rng, p.Geometry.RadiusVariance)
			}
			segmentRadius = math.Max(0, segmentRadius*maturity2)

			dir := mgl64.Vec3{math.Cos(angle), 0, math.Sin(angle)}
			vertex := q.Rotate(dir.Mul(segmentRadius)).Add(origin)
			normal := q.Rotate(dir).Normalize()
			b.Tube.addVertex(vertex, normal, float64(j)/float64(segments), v)
		}
		b.Tube.duplicateVertex(base, 1, float32(v))

		sections = append(sections, Section{
			Origin:      origin,
			Orientation: orientation,
			Radius:      sectionRadius,
		})
		if last {
			break
		}
		if sectionRadius <= 0 {
			return sections, &GeometryError{BranchID: b.ID, Ring: i, Reason: "radius collapsed to zero before the tip"}
		}

		sectionLength := (length / float64(n)) * (1 + spread(g.rng, p.Geometry.LengthVariance))
		sectionLength *= math.Min(1, sectionLength*p.Maturity)
		// Sub-trunk branches only lengthen once maturity passes one half.
		if level > 1 && i < n-1 {
			sectionLength = math.Max(0, sectionLength*(p.Maturity-0.5)*2)
		}
		// Stretch the final twig so leaves have room.
		if i == n-1 && terminal {
			sectionLength *= 2
		}
		origin = origin.Add(q.Rotate(axisY.Mul(sectionLength)))

		gnarliness := p.Maturity * (p.Branch.Gnarliness + p.Branch.Gnarliness1R/sectionRadius)
		orientation.X += spread(g.rng, gnarliness)
		orientation.Z += spread(g.rng, gnarliness)

		bent := rotateTowards(orientation.Quat().Mul(twist), sun, p.Sun.Strength/sectionRadius)
		orientation = EulerFromQuat(bent)
	}
	return sections, nil
}

// emitTubeIndices triangulates rings of stride segments+1 into an open
// tube. Triangles wind counter-clockwise seen from outside.
func emitTubeIndices(m *MeshBuffers, sections, segments int) {
	stride := uint32(segments + 1)
	for i := 0; i < sections; i++ {
		for j := 0; j < segments; j++ {
			v1 := uint32(i)*stride + uint32(j)
			v2 := v1 + 1
			v3 := v1 + stride
			v4 := v2 + stride
			m.addTriangle(v1, v3, v2)
			m.addTriangle(v2, v3, v4)
		}
	}
}
