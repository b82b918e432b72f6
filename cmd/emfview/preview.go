package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/skdltmxn/emf-go/emf"
	"github.com/skdltmxn/emf-go/props"
)

var (
	previewWidth    int
	previewHeight   int
	previewCalcOnly bool
)

var previewCmd = &cobra.Command{
	Use:   "preview <emf-file> <index>",
	Short: "Render the preview of a record as PNG",
	Long: `Render the preview of a drawing or bitmap record as a PNG image.

Polygon, polyline and bezier records are rasterised from their points;
bitmap records are scaled into the image. Use --calc to print the preferred
preview size instead of rendering. Write the image with --output.`,
	Args: cobra.ExactArgs(2),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().IntVar(&previewWidth, "width", 0, "image width (0 = preferred size)")
	previewCmd.Flags().IntVar(&previewHeight, "height", 0, "image height (0 = preferred size)")
	previewCmd.Flags().BoolVar(&previewCalcOnly, "calc", false, "print the preferred size only")
}

func runPreview(cmd *cobra.Command, args []string) error {
	f, err := openFile(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	i, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid record index: %s", args[1])
	}
	r, err := f.Record(i)
	if err != nil {
		return err
	}

	sized, ok := r.Preview(emf.PreviewRequest{CalcOnly: true})
	if !ok {
		return fmt.Errorf("record #%d (%s) has no preview", r.Index(), r.Name())
	}
	if previewCalcOnly {
		fmt.Fprintf(output, "%dx%d\n", sized.Size.X, sized.Size.Y)
		return nil
	}

	size := sized.Size
	if previewWidth > 0 {
		size.X = previewWidth
	}
	if previewHeight > 0 {
		size.Y = previewHeight
	}
	bounds := image.Rectangle{Max: size}
	p, ok := r.Preview(emf.PreviewRequest{Rect: bounds})
	if !ok {
		return fmt.Errorf("record #%d (%s) has no preview", r.Index(), r.Name())
	}

	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, image.White, image.Point{}, draw.Src)
	if err := renderPreview(dst, p); err != nil {
		return err
	}
	return png.Encode(output, dst)
}

func renderPreview(dst *image.RGBA, p *emf.Preview) error {
	if p.Kind == emf.PreviewBitmap {
		return p.DIB.Fit(dst, p.Fit)
	}

	ras := vector.NewRasterizer(dst.Bounds().Dx(), dst.Bounds().Dy())
	for _, fig := range p.Figures {
		switch p.Kind {
		case emf.PreviewPolygon:
			fillFigure(ras, p, fig)
		case emf.PreviewBezier:
			strokeBezier(ras, p, fig)
		default:
			strokeFigure(ras, p, fig)
		}
	}
	ink := image.NewUniform(color.RGBA{A: 0xFF})
	ras.Draw(dst, dst.Bounds(), ink, image.Point{})
	return nil
}

func fpoint(p *emf.Preview, pt props.PointL) (float32, float32) {
	m := p.Map(pt)
	return float32(m.X), float32(m.Y)
}

func fillFigure(ras *vector.Rasterizer, p *emf.Preview, fig []props.PointL) {
	if len(fig) < 3 {
		strokeFigure(ras, p, fig)
		return
	}
	ras.MoveTo(fpoint(p, fig[0]))
	for _, pt := range fig[1:] {
		ras.LineTo(fpoint(p, pt))
	}
	ras.ClosePath()
}

func strokeFigure(ras *vector.Rasterizer, p *emf.Preview, fig []props.PointL) {
	for i := 1; i < len(fig); i++ {
		x0, y0 := fpoint(p, fig[i-1])
		x1, y1 := fpoint(p, fig[i])
		strokeSegment(ras, x0, y0, x1, y1)
	}
}

// strokeBezier flattens each cubic segment: a start point followed by
// groups of two control points and an end point.
func strokeBezier(ras *vector.Rasterizer, p *emf.Preview, fig []props.PointL) {
	const steps = 16
	for i := 0; i+3 < len(fig); i += 3 {
		x0, y0 := fpoint(p, fig[i])
		x1, y1 := fpoint(p, fig[i+1])
		x2, y2 := fpoint(p, fig[i+2])
		x3, y3 := fpoint(p, fig[i+3])
		px, py := x0, y0
		for s := 1; s <= steps; s++ {
			t := float32(s) / steps
			u := 1 - t
			x := u*u*u*x0 + 3*u*u*t*x1 + 3*u*t*t*x2 + t*t*t*x3
			y := u*u*u*y0 + 3*u*u*t*y1 + 3*u*t*t*y2 + t*t*t*y3
			strokeSegment(ras, px, py, x, y)
			px, py = x, y
		}
	}
}

// strokeSegment adds a one pixel wide quad along the segment.
func strokeSegment(ras *vector.Rasterizer, x0, y0, x1, y1 float32) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*0.5, dx/l*0.5
	ras.MoveTo(x0+nx, y0+ny)
	ras.LineTo(x1+nx, y1+ny)
	ras.LineTo(x1-nx, y1-ny)
	ras.LineTo(x0-nx, y0-ny)
	ras.ClosePath()
}
