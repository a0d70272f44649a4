package arbor

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countColor(img *image.RGBA, c color.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestRenderPreview_Trunk(t *testing.T) {
	tree := generate(t, calmParams())
	opts := DefaultPreviewOptions()
	opts.Width, opts.Height = 128, 96
	opts.SkipLeaves = true

	img, err := RenderPreview(tree, opts)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 128, 96), img.Bounds())

	bark := rgbColor(tree.Params.Trunk.Color)
	assert.Equal(t, bark, img.RGBAAt(64, 48), "centre of the trunk")
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, img.RGBAAt(0, 0))
	assert.Positive(t, countColor(img, bark))
}

func TestRenderPreview_Leaves(t *testing.T) {
	p := DefaultParams()
	p.Seed = 8
	tree := generate(t, p)

	leaf := color.RGBA{0, 0xff, 0, 0xff}
	opts := DefaultPreviewOptions()
	opts.LeafColor = leaf
	img, err := RenderPreview(tree, opts)
	require.NoError(t, err)
	assert.Positive(t, countColor(img, leaf))

	opts.SkipLeaves = true
	img, err = RenderPreview(tree, opts)
	require.NoError(t, err)
	assert.Zero(t, countColor(img, leaf))
}

func TestWritePreviewPNG(t *testing.T) {
	tree := generate(t, DefaultParams())
	opts := DefaultPreviewOptions()
	opts.Width, opts.Height = 64, 80

	var buf bytes.Buffer
	require.NoError(t, WritePreviewPNG(&buf, tree, opts))

	cfg, err := png.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 80, cfg.Height)
}

func TestRenderPreview_Errors(t *testing.T) {
	opts := DefaultPreviewOptions()
	_, err := RenderPreview(NewTree(DefaultParams()), opts)
	assert.Error(t, err)

	opts.Width = 0
	_, err = RenderPreview(generate(t, calmParams()), opts)
	assert.Error(t, err)
}
