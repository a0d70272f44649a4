package arbor

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

type LeafStyle int

const (
	LeafStyleSingle LeafStyle = iota
	LeafStyleDouble
)

var leafStyleNames = [...]string{"single", "double"}

func (s LeafStyle) String() string {
	if s < 0 || int(s) >= len(leafStyleNames) {
		return fmt.Sprintf("LeafStyle(%d)", int(s))
	}
	return leafStyleNames[s]
}

func (s LeafStyle) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(leafStyleNames) {
		return nil, fmt.Errorf("unknown leaf style %d", int(s))
	}
	return []byte(leafStyleNames[s]), nil
}

func (s *LeafStyle) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range leafStyleNames {
		if n == name {
			*s = LeafStyle(i)
			return nil
		}
	}
	return fmt.Errorf("unknown leaf style %q", string(text))
}

// LeafType selects the leaf texture variant. The generator never reads it;
// it is forwarded to the leaf material.
type LeafType int

const (
	LeafTypeAsh LeafType = iota
	LeafTypeAspen
	LeafTypeOak
)

var leafTypeNames = [...]string{"ash", "aspen", "oak"}

func (t LeafType) String() string {
	if t < 0 || int(t) >= len(leafTypeNames) {
		return fmt.Sprintf("LeafType(%d)", int(t))
	}
	return leafTypeNames[t]
}

func (t LeafType) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(leafTypeNames) {
		return nil, fmt.Errorf("unknown leaf type %d", int(t))
	}
	return []byte(leafTypeNames[t]), nil
}

func (t *LeafType) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range leafTypeNames {
		if n == name {
			*t = LeafType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown leaf type %q", string(text))
}

type TrunkParams struct {
	Length      float64 `json:"length" yaml:"length" toml:"length"`
	Radius      float64 `json:"radius" yaml:"radius" toml:"radius"`
	Flare       float64 `json:"flare" yaml:"flare" toml:"flare"`
	Color       uint32  `json:"color" yaml:"color" toml:"color"`
	FlatShading bool    `json:"flat_shading" yaml:"flat_shading" toml:"flat_shading"`
	Textured    bool    `json:"textured" yaml:"textured" toml:"textured"`
}

type BranchParams struct {
	// Levels is the deepest recursion level. Branches at this level carry
	// leaves instead of child branches.
	Levels     int     `json:"levels" yaml:"levels" toml:"levels"`
	Taper      float64 `json:"taper" yaml:"taper" toml:"taper"`
	Twist      float64 `json:"twist" yaml:"twist" toml:"twist"`
	Gnarliness float64 `json:"gnarliness" yaml:"gnarliness" toml:"gnarliness"`
	// Gnarliness1R is divided by the local radius, so thin branches wander more.
	Gnarliness1R     float64 `json:"gnarliness1_r" yaml:"gnarliness1_r" toml:"gnarliness1_r"`
	LengthMultiplier float64 `json:"length_multiplier" yaml:"length_multiplier" toml:"length_multiplier"`
	LengthVariance   float64 `json:"length_variance" yaml:"length_variance" toml:"length_variance"`
	RadiusMultiplier float64 `json:"radius_multiplier" yaml:"radius_multiplier" toml:"radius_multiplier"`
	MinChildren      int     `json:"min_children" yaml:"min_children" toml:"min_children"`
	MaxChildren      int     `json:"max_children" yaml:"max_children" toml:"max_children"`
	SweepAngle       float64 `json:"sweep_angle" yaml:"sweep_angle" toml:"sweep_angle"`
	// Start and Stop bound the fraction of a parent's rings that may sprout children.
	Start float64 `json:"start" yaml:"start" toml:"start"`
	Stop  float64 `json:"stop" yaml:"stop" toml:"stop"`
}

type GeometryParams struct {
	Sections       int     `json:"sections" yaml:"sections" toml:"sections"`
	Segments       int     `json:"segments" yaml:"segments" toml:"segments"`
	Randomization  float64 `json:"randomization" yaml:"randomization" toml:"randomization"`
	RadiusVariance float64 `json:"radius_variance" yaml:"radius_variance" toml:"radius_variance"`
	LengthVariance float64 `json:"length_variance" yaml:"length_variance" toml:"length_variance"`
}

type LeafParams struct {
	MinCount     int       `json:"min_count" yaml:"min_count" toml:"min_count"`
	MaxCount     int       `json:"max_count" yaml:"max_count" toml:"max_count"`
	Size         float64   `json:"size" yaml:"size" toml:"size"`
	SizeVariance float64   `json:"size_variance" yaml:"size_variance" toml:"size_variance"`
	Style        LeafStyle `json:"style" yaml:"style" toml:"style"`
	Type         LeafType  `json:"type" yaml:"type" toml:"type"`
	Color        uint32    `json:"color" yaml:"color" toml:"color"`
	Emissive     float64   `json:"emissive" yaml:"emissive" toml:"emissive"`
	Opacity      float64   `json:"opacity" yaml:"opacity" toml:"opacity"`
	AlphaTest    float64   `json:"alpha_test" yaml:"alpha_test" toml:"alpha_test"`
}

type SunParams struct {
	Direction mgl64.Vec3 `json:"direction" yaml:"direction" toml:"direction"`
	Strength  float64    `json:"strength" yaml:"strength" toml:"strength"`
}

// Params is the full description of one tree. A generation pass reads it
// but never writes to it.
type Params struct {
	Seed     int64          `json:"seed" yaml:"seed" toml:"seed"`
	Maturity float64        `json:"maturity" yaml:"maturity" toml:"maturity"`
	Trunk    TrunkParams    `json:"trunk" yaml:"trunk" toml:"trunk"`
	Branch   BranchParams   `json:"branch" yaml:"branch" toml:"branch"`
	Geometry GeometryParams `json:"geometry" yaml:"geometry" toml:"geometry"`
	Leaves   LeafParams     `json:"leaves" yaml:"leaves" toml:"leaves"`
	Sun      SunParams      `json:"sun" yaml:"sun" toml:"sun"`
}

// DefaultParams returns a medium sized broadleaf tree.
func DefaultParams() Params {
	return Params{
		Seed:     0,
		Maturity: 1,
		Trunk: TrunkParams{
			Length:   20,
			Radius:   1.5,
			Flare:    1,
			Color:    0xd59d7a,
			Textured: true,
		},
		Branch: BranchParams{
			Levels:           3,
			Taper:            0.7,
			Twist:            0,
			Gnarliness:       0.2,
			Gnarliness1R:     0.05,
			LengthMultiplier: 0.6,
			LengthVariance:   0.1,
			RadiusMultiplier: 0.9,
			MinChildren:      3,
			MaxChildren:      4,
			SweepAngle:       2,
			Start:            0.3,
			Stop:             0.95,
		},
		Geometry: GeometryParams{
			Sections:       6,
			Segments:       8,
			Randomization:  0.1,
			RadiusVariance: 0.1,
			LengthVariance: 0.1,
		},
		Leaves: LeafParams{
			MinCount:     4,
			MaxCount:     6,
			Size:         2.5,
			SizeVariance: 0.5,
			Style:        LeafStyleDouble,
			Type:         LeafTypeOak,
			Color:        0x6b7f48,
			Emissive:     0.02,
			Opacity:      1,
			AlphaTest:    0.5,
		},
		Sun: SunParams{
			Direction: mgl64.Vec3{0, 1, 0},
			Strength:  0.02,
		},
	}
}

// Validate checks every field the generator relies on and returns the first
// problem as a *ConfigurationError.
func (p *Params) Validate() error {
	if !finite(p.Maturity) || p.Maturity < 0 || p.Maturity > 1 {
		return configErrorf("maturity", "must be within [0,1], got %v", p.Maturity)
	}
	if !finite(p.Trunk.Length) || p.Trunk.Length < 0 {
		return configErrorf("trunk.length", "must be non-negative, got %v", p.Trunk.Length)
	}
	if !finite(p.Trunk.Radius) || p.Trunk.Radius <= 0 {
		return configErrorf("trunk.radius", "must be positive, got %v", p.Trunk.Radius)
	}
	if !finite(p.Trunk.Flare) || p.Trunk.Flare < 0 {
		return configErrorf("trunk.flare", "must be non-negative, got %v", p.Trunk.Flare)
	}

	b := p.Branch
	if b.Levels < 1 {
		return configErrorf("branch.levels", "must be at least 1, got %d", b.Levels)
	}
	if b.MinChildren < 0 {
		return configErrorf("branch.min_children", "must be non-negative, got %d", b.MinChildren)
	}
	if b.MinChildren > b.MaxChildren {
		return configErrorf("branch.min_children", "%d exceeds max_children %d", b.MinChildren, b.MaxChildren)
	}
	if b.Start < 0 || b.Start > 1 || b.Stop < 0 || b.Stop > 1 {
		return configErrorf("branch.start", "start and stop must be within [0,1], got %v..%v", b.Start, b.Stop)
	}
	if b.Start > b.Stop {
		return configErrorf("branch.start", "start %v exceeds stop %v", b.Start, b.Stop)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"branch.taper", b.Taper},
		{"branch.twist", b.Twist},
		{"branch.gnarliness", b.Gnarliness},
		{"branch.gnarliness1_r", b.Gnarliness1R},
		{"branch.length_multiplier", b.LengthMultiplier},
		{"branch.length_variance", b.LengthVariance},
		{"branch.radius_multiplier", b.RadiusMultiplier},
		{"branch.sweep_angle", b.SweepAngle},
	} {
		if !finite(f.v) {
			return configErrorf(f.name, "must be finite, got %v", f.v)
		}
	}
	if b.RadiusMultiplier < 0 {
		return configErrorf("branch.radius_multiplier", "must be non-negative, got %v", b.RadiusMultiplier)
	}

	g := p.Geometry
	if g.Sections < 1 {
		return configErrorf("geometry.sections", "must be at least 1, got %d", g.Sections)
	}
	if g.Segments < 3 {
		return configErrorf("geometry.segments", "must be at least 3, got %d", g.Segments)
	}
	if !finite(g.Randomization) || !finite(g.RadiusVariance) || !finite(g.LengthVariance) {
		return configErrorf("geometry", "variances must be finite")
	}

	l := p.Leaves
	if l.MinCount < 0 {
		return configErrorf("leaves.min_count", "must be non-negative, got %d", l.MinCount)
	}
	if l.MinCount > l.MaxCount {
		return configErrorf("leaves.min_count", "%d exceeds max_count %d", l.MinCount, l.MaxCount)
	}
	if !finite(l.Size) || l.Size < 0 {
		return configErrorf("leaves.size", "must be non-negative, got %v", l.Size)
	}
	if !finite(l.SizeVariance) {
		return configErrorf("leaves.size_variance", "must be finite, got %v", l.SizeVariance)
	}
	if l.Style != LeafStyleSingle && l.Style != LeafStyleDouble {
		return configErrorf("leaves.style", "unknown style %d", int(l.Style))
	}

	if !finite(p.Sun.Strength) || p.Sun.Strength < 0 {
		return configErrorf("sun.strength", "must be non-negative, got %v", p.Sun.Strength)
	}
	if d := p.Sun.Direction; !finite(d[0]) || !finite(d[1]) || !finite(d[2]) || d.Len() == 0 {
		return configErrorf("sun.direction", "must be a finite non-zero vector, got %v", d)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
