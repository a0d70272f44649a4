package arbor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// spawnChildren sprouts child branches, or leaves at the terminal level,
// from the rings of a finished branch. The last child always grows from the
// final ring with the ring's own orientation and radius so it continues the
// parent without a visible joint.
func (g *generator) spawnChildren(b *Branch, sections []Section, level int, parentLength float64) error {
	p := g.params
	if level > p.Branch.Levels {
		return nil
	}

	terminal := level == p.Branch.Levels
	lo, hi := p.Branch.MinChildren, p.Branch.MaxChildren
	if terminal {
		lo, hi = p.Leaves.MinCount, p.Leaves.MaxCount
	}
	count := int(math.Round(g.rng.Random()*float64(hi-lo))) + lo

	separation := 0.0
	if count > 1 {
		separation = p.Branch.SweepAngle / float64(count-1)
	}
	startRing := float64(p.Geometry.Sections) * p.Branch.Start
	stopRing := float64(p.Geometry.Sections) * p.Branch.Stop
	tilt := mgl64.QuatRotate(p.Maturity*p.Branch.SweepAngle/2, axisX)

	for k := 0; k < count; k++ {
		final := k == count-1

		ring := len(sections) - 1
		if !final {
			ring = int(math.Floor(g.rng.Random()*(stopRing-startRing) + startRing))
			ring = min(max(ring, 0), len(sections)-1)
		}
		section := sections[ring]

		offset := g.rng.RandomRange(2*math.Pi, 0)
		orientation := section.Orientation
		radius := section.Radius
		if !final {
			azimuth := mgl64.QuatRotate(offset+float64(k)*separation, axisY)
			orientation = EulerFromQuat(section.Orientation.Quat().Mul(azimuth.Mul(tilt)))
			radius *= p.Branch.RadiusMultiplier
		}

		length := parentLength * (p.Branch.LengthMultiplier + spread(g.rng, p.Branch.LengthVariance))

		if terminal {
			g.emitLeaf(&b.Leaves, section.Origin, orientation, false)
			if p.Leaves.Style == LeafStyleDouble {
				g.emitLeaf(&b.Leaves, section.Origin, orientation, true)
			}
			continue
		}

		child, err := g.grow(b.ID, k, section.Origin, orientation, length, radius, level+1)
		if child != nil {
			b.Children = append(b.Children, child)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
