package elastica

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// RenderStyle controls what the Renderer draws and in which colors.
type RenderStyle struct {
	Background Color // surface clear color
	Curve      Color
	CurveWidth float64
	Guide      Color // control polygon lines P0-P1 and P2-P3
	Endpoint   Color // fixed endpoint handles
	Handle     Color // movable point handles

	// ShowTangents draws a spoke along the curve tangent at each of the
	// five fixed sample parameters.
	ShowTangents  bool
	Tangent       Color
	TangentLength float64
}

// DefaultStyle returns the stock dark look.
func DefaultStyle() RenderStyle {
	return RenderStyle{
		Background:    Color{R: 0.05, G: 0.05, B: 0.09, A: 1},
		Curve:         Color{R: 0.95, G: 0.95, B: 1.00, A: 1},
		CurveWidth:    4,
		Guide:         Color{R: 0.40, G: 0.40, B: 0.55, A: 0.5},
		Endpoint:      Color{R: 0.55, G: 0.60, B: 0.75, A: 1},
		Handle:        Color{R: 1.00, G: 0.55, B: 0.35, A: 1},
		ShowTangents:  true,
		Tangent:       Color{R: 0.31, G: 0.80, B: 0.77, A: 0.8},
		TangentLength: 40,
	}
}

// Renderer draws a Sim onto an ebiten.Image: curve stroke, control polygon
// guides, point handles, tangent spokes, and particles. It owns a shared
// white pixel and reuses its sample and vertex buffers across frames, so a
// steady frame loop settles into zero allocations.
type Renderer struct {
	Style RenderStyle

	white *ebiten.Image
	curve []Vec2
	parts []Particle
	verts []ebiten.Vertex
	inds  []uint16
}

// NewRenderer creates a Renderer with the default style.
func NewRenderer() *Renderer {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &Renderer{Style: DefaultStyle(), white: white}
}

// Draw renders the current state of s onto dst.
func (r *Renderer) Draw(dst *ebiten.Image, s *Sim) {
	st := &r.Style
	dst.Fill(st.Background.toRGBA())

	pts := s.ControlPoints()

	// Control polygon guides.
	r.strokeLine(dst, pts[0], pts[1], 1, st.Guide)
	r.strokeLine(dst, pts[2], pts[3], 1, st.Guide)

	// The curve itself.
	r.curve = s.CurvePoints(r.curve)
	r.strokePolyline(dst, r.curve, st.CurveWidth, st.Curve)

	// Tangent spokes, skipping degenerate (zero-length) tangents.
	if st.ShowTangents {
		for _, ts := range s.TangentSamples() {
			ln := math.Hypot(ts.Tangent.X, ts.Tangent.Y)
			if ln == 0 {
				continue
			}
			at := CubicPoint(ts.T, pts[0], pts[1], pts[2], pts[3])
			tip := Vec2{
				X: at.X + ts.Tangent.X/ln*st.TangentLength,
				Y: at.Y + ts.Tangent.Y/ln*st.TangentLength,
			}
			r.strokeLine(dst, at, tip, 2, st.Tangent)
		}
	}

	// Particles: rotated quads tinted by palette color, faded by life.
	r.parts = s.Particles(r.parts)
	for i := range r.parts {
		p := &r.parts[i]
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-0.5, -0.5)
		op.GeoM.Scale(p.Size, p.Size)
		op.GeoM.Rotate(p.Rotation)
		op.GeoM.Translate(p.X, p.Y)
		a := float32(p.Life)
		op.ColorScale.Scale(
			float32(p.Color.R)*a, float32(p.Color.G)*a, float32(p.Color.B)*a, a)
		dst.DrawImage(r.white, op)
	}

	// Handles on top: endpoints first, then the movable points.
	r.fillCircle(dst, pts[0], 6, st.Endpoint)
	r.fillCircle(dst, pts[3], 6, st.Endpoint)
	r.fillCircle(dst, pts[1], 8, st.Handle)
	r.fillCircle(dst, pts[2], 8, st.Handle)
}

// strokeLine draws a single segment of the given width.
func (r *Renderer) strokeLine(dst *ebiten.Image, a, b Vec2, width float64, c Color) {
	r.strokePolyline(dst, []Vec2{a, b}, width, c)
}

// strokePolyline expands a point path into a 2N-vertex triangle strip
// (two triangles per segment, miter joins) and submits it in one
// DrawTriangles call.
func (r *Renderer) strokePolyline(dst *ebiten.Image, points []Vec2, width float64, c Color) {
	n := len(points)
	if n < 2 {
		return
	}

	numVerts := n * 2
	numInds := (n - 1) * 6
	if cap(r.verts) < numVerts {
		r.verts = make([]ebiten.Vertex, numVerts)
	}
	r.verts = r.verts[:numVerts]
	if cap(r.inds) < numInds {
		r.inds = make([]uint16, numInds)
	}
	r.inds = r.inds[:numInds]

	// Premultiplied vertex color.
	ca := float32(c.A)
	cr := float32(c.R) * ca
	cg := float32(c.G) * ca
	cb := float32(c.B) * ca

	halfW := width / 2
	for i := 0; i < n; i++ {
		var nx, ny float64
		switch {
		case i == 0:
			nx, ny = perpendicular(points[0], points[1])
		case i == n-1:
			nx, ny = perpendicular(points[n-2], points[n-1])
		default:
			// Average of adjacent segment normals (miter).
			nx0, ny0 := perpendicular(points[i-1], points[i])
			nx1, ny1 := perpendicular(points[i], points[i+1])
			nx, ny = nx0+nx1, ny0+ny1
			ln := math.Sqrt(nx*nx + ny*ny)
			if ln > 1e-10 {
				nx /= ln
				ny /= ln
			}
		}

		vi := i * 2
		r.verts[vi] = ebiten.Vertex{
			DstX:   float32(points[i].X + nx*halfW),
			DstY:   float32(points[i].Y + ny*halfW),
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
		r.verts[vi+1] = ebiten.Vertex{
			DstX:   float32(points[i].X - nx*halfW),
			DstY:   float32(points[i].Y - ny*halfW),
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}

	for i := 0; i < n-1; i++ {
		ii := i * 6
		v := uint16(i * 2)
		r.inds[ii+0] = v
		r.inds[ii+1] = v + 1
		r.inds[ii+2] = v + 2
		r.inds[ii+3] = v + 1
		r.inds[ii+4] = v + 3
		r.inds[ii+5] = v + 2
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(r.verts, r.inds, r.white, op)
}

// fillCircle draws a filled circle as a 20-gon triangle fan.
func (r *Renderer) fillCircle(dst *ebiten.Image, center Vec2, radius float64, c Color) {
	const sides = 20

	numVerts := sides + 1
	numInds := sides * 3
	if cap(r.verts) < numVerts {
		r.verts = make([]ebiten.Vertex, numVerts)
	}
	r.verts = r.verts[:numVerts]
	if cap(r.inds) < numInds {
		r.inds = make([]uint16, numInds)
	}
	r.inds = r.inds[:numInds]

	ca := float32(c.A)
	cr := float32(c.R) * ca
	cg := float32(c.G) * ca
	cb := float32(c.B) * ca

	r.verts[0] = ebiten.Vertex{
		DstX: float32(center.X), DstY: float32(center.Y),
		ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
	}
	for i := 0; i < sides; i++ {
		angle := 2 * math.Pi * float64(i) / sides
		r.verts[i+1] = ebiten.Vertex{
			DstX:   float32(center.X + radius*math.Cos(angle)),
			DstY:   float32(center.Y + radius*math.Sin(angle)),
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}
	for i := 0; i < sides; i++ {
		ii := i * 3
		r.inds[ii+0] = 0
		r.inds[ii+1] = uint16(i + 1)
		r.inds[ii+2] = uint16((i+1)%sides + 1)
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(r.verts, r.inds, r.white, op)
}

// perpendicular returns the unit normal of segment a→b, or (0,0) for a
// degenerate segment.
func perpendicular(a, b Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 0, 0
	}
	return -dy / ln, dx / ln
}

// toRGBA converts a Color to color.RGBA with premultiplied alpha.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R * c.A * 255),
		G: uint8(c.G * c.A * 255),
		B: uint8(c.B * c.A * 255),
		A: uint8(c.A * 255),
	}
}
