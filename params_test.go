package arbor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParams_Valid(t *testing.T) {
	p := DefaultParams()
	require.NoError(t, p.Validate())
}

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
		field  string
	}{
		{"maturity above one", func(p *Params) { p.Maturity = 1.5 }, "maturity"},
		{"maturity NaN", func(p *Params) { p.Maturity = math.NaN() }, "maturity"},
		{"negative trunk length", func(p *Params) { p.Trunk.Length = -1 }, "trunk.length"},
		{"zero trunk radius", func(p *Params) { p.Trunk.Radius = 0 }, "trunk.radius"},
		{"negative flare", func(p *Params) { p.Trunk.Flare = -0.1 }, "trunk.flare"},
		{"no levels", func(p *Params) { p.Branch.Levels = 0 }, "branch.levels"},
		{"negative children", func(p *Params) { p.Branch.MinChildren = -1 }, "branch.min_children"},
		{"children min above max", func(p *Params) { p.Branch.MinChildren = 5 }, "branch.min_children"},
		{"start above stop", func(p *Params) { p.Branch.Start = 0.9; p.Branch.Stop = 0.5 }, "branch.start"},
		{"stop out of range", func(p *Params) { p.Branch.Stop = 1.2 }, "branch.start"},
		{"infinite twist", func(p *Params) { p.Branch.Twist = math.Inf(1) }, "branch.twist"},
		{"negative radius multiplier", func(p *Params) { p.Branch.RadiusMultiplier = -1 }, "branch.radius_multiplier"},
		{"zero sections", func(p *Params) { p.Geometry.Sections = 0 }, "geometry.sections"},
		{"two segments", func(p *Params) { p.Geometry.Segments = 2 }, "geometry.segments"},
		{"NaN randomization", func(p *Params) { p.Geometry.Randomization = math.NaN() }, "geometry"},
		{"leaves min above max", func(p *Params) { p.Leaves.MinCount = 9 }, "leaves.min_count"},
		{"negative leaf size", func(p *Params) { p.Leaves.Size = -2 }, "leaves.size"},
		{"unknown leaf style", func(p *Params) { p.Leaves.Style = LeafStyle(7) }, "leaves.style"},
		{"negative sun", func(p *Params) { p.Sun.Strength = -0.1 }, "sun.strength"},
		{"zero sun direction", func(p *Params) { p.Sun.Direction = mgl64.Vec3{} }, "sun.direction"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)

			err := p.Validate()
			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestParams_ValidateAllowsEdges(t *testing.T) {
	p := DefaultParams()
	p.Maturity = 0
	p.Trunk.Length = 0
	p.Branch.MinChildren = 0
	p.Branch.MaxChildren = 0
	p.Branch.Start = 0.5
	p.Branch.Stop = 0.5
	p.Geometry.Sections = 1
	p.Geometry.Segments = 3
	p.Leaves.MinCount = 0
	p.Leaves.MaxCount = 0
	p.Sun.Strength = 0
	assert.NoError(t, p.Validate())
}

func TestLeafEnums_Text(t *testing.T) {
	for _, s := range []LeafStyle{LeafStyleSingle, LeafStyleDouble} {
		text, err := s.MarshalText()
		require.NoError(t, err)

		var got LeafStyle
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, s, got)
	}
	for _, lt := range []LeafType{LeafTypeAsh, LeafTypeAspen, LeafTypeOak} {
		text, err := lt.MarshalText()
		require.NoError(t, err)

		var got LeafType
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, lt, got)
	}

	var s LeafStyle
	require.NoError(t, s.UnmarshalText([]byte(" Double ")))
	assert.Equal(t, LeafStyleDouble, s)
	assert.Error(t, s.UnmarshalText([]byte("triple")))

	_, err := LeafType(9).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "LeafType(9)", LeafType(9).String())
	assert.Equal(t, "oak", LeafTypeOak.String())
}
