package arbor

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
)

type PreviewOptions struct {
	Width, Height int
	// Padding is the margin in pixels kept free around the silhouette.
	Padding    int
	Background color.Color
	// A nil BranchColor or LeafColor falls back to the tree's own colors.
	BranchColor color.Color
	LeafColor   color.Color
	SkipLeaves  bool
}

func DefaultPreviewOptions() PreviewOptions {
	return PreviewOptions{
		Width:      512,
		Height:     512,
		Padding:    16,
		Background: color.White,
	}
}

func rgbColor(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}

// RenderPreview draws an orthographic front view (looking down -Z) of the
// tree's silhouette: bark first, leaves on top.
func RenderPreview(tree *Tree, opts PreviewOptions) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("preview size must be positive, got %dx%d", opts.Width, opts.Height)
	}
	if tree.Trunk == nil {
		return nil, fmt.Errorf("preview: tree has not been generated")
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	if opts.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}

	box := tree.Bounds()
	if box.Empty() {
		return img, nil
	}

	avail := float64(min(opts.Width, opts.Height) - 2*opts.Padding)
	size := box.Size()
	extent := math.Max(size.X(), size.Y())
	scale := 1.0
	if extent > 0 && avail > 0 {
		scale = avail / extent
	}
	cx, cy := box.Center().X(), box.Center().Y()
	project := func(x, y float32) (float32, float32) {
		px := float64(opts.Width)/2 + (float64(x)-cx)*scale
		py := float64(opts.Height)/2 - (float64(y)-cy)*scale
		return float32(px), float32(py)
	}

	branchColor := opts.BranchColor
	if branchColor == nil {
		branchColor = rgbColor(tree.Params.Trunk.Color)
	}
	leafColor := opts.LeafColor
	if leafColor == nil {
		leafColor = rgbColor(tree.Params.Leaves.Color)
	}

	fill := func(pick func(*Branch) *MeshBuffers, c color.Color) {
		r := vector.NewRasterizer(opts.Width, opts.Height)
		tree.Walk(func(b *Branch) bool {
			m := pick(b)
			for t := 0; t+2 < len(m.Indices); t += 3 {
				addTriangle(r, m, m.Indices[t:t+3], project)
			}
			return true
		})
		r.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
	}
	fill(func(b *Branch) *MeshBuffers { return &b.Tube }, branchColor)
	if !opts.SkipLeaves {
		fill(func(b *Branch) *MeshBuffers { return &b.Leaves }, leafColor)
	}
	return img, nil
}

// addTriangle adds one projected triangle to r, always with the same
// screen-space winding so overlapping faces accumulate instead of cancelling.
func addTriangle(r *vector.Rasterizer, m *MeshBuffers, tri []uint32, project func(x, y float32) (float32, float32)) {
	var xs, ys [3]float32
	for k, idx := range tri {
		xs[k], ys[k] = project(m.Positions[3*idx], m.Positions[3*idx+1])
	}
	cross := (xs[1]-xs[0])*(ys[2]-ys[0]) - (ys[1]-ys[0])*(xs[2]-xs[0])
	if cross == 0 {
		return
	}
	if cross < 0 {
		xs[1], xs[2] = xs[2], xs[1]
		ys[1], ys[2] = ys[2], ys[1]
	}
	r.MoveTo(xs[0], ys[0])
	r.LineTo(xs[1], ys[1])
	r.LineTo(xs[2], ys[2])
	r.ClosePath()
}

func WritePreviewPNG(w io.Writer, tree *Tree, opts PreviewOptions) error {
	img, err := RenderPreview(tree, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
