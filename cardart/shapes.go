package cardart

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// The usual single-white-pixel source for path triangles.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

func roundedRectPath(x, y, w, h, r float32) *vector.Path {
	var p vector.Path
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.ArcTo(x+w, y, x+w, y+r, r)
	p.LineTo(x+w, y+h-r)
	p.ArcTo(x+w, y+h, x+w-r, y+h, r)
	p.LineTo(x+r, y+h)
	p.ArcTo(x, y+h, x, y+h-r, r)
	p.LineTo(x, y+r)
	p.ArcTo(x, y, x+r, y, r)
	p.Close()
	return &p
}

func fillPath(dst *ebiten.Image, p *vector.Path, col color.RGBA) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	colorVertices(vs, col)
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func strokePath(dst *ebiten.Image, p *vector.Path, width float32, col color.RGBA) {
	vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: width})
	colorVertices(vs, col)
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func colorVertices(vs []ebiten.Vertex, col color.RGBA) {
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(col.R) / 255
		vs[i].ColorG = float32(col.G) / 255
		vs[i].ColorB = float32(col.B) / 255
		vs[i].ColorA = float32(col.A) / 255
	}
}

func fillRoundedRect(dst *ebiten.Image, x, y, w, h, r float32, col color.RGBA) {
	fillPath(dst, roundedRectPath(x, y, w, h, r), col)
}

func strokeRoundedRect(dst *ebiten.Image, x, y, w, h, r, width float32, col color.RGBA) {
	strokePath(dst, roundedRectPath(x, y, w, h, r), width, col)
}

// drawSuit renders a pip centered at (cx, cy) within a box of the given
// size. The glyph shapes are built from circles and triangles rather than a
// font, so no symbol-capable typeface is required.
func drawSuit(dst *ebiten.Image, suit string, cx, cy, size float32, col color.RGBA) {
	half := size / 2
	switch suit {
	case "♦":
		var p vector.Path
		p.MoveTo(cx, cy-half)
		p.LineTo(cx+half*0.72, cy)
		p.LineTo(cx, cy+half)
		p.LineTo(cx-half*0.72, cy)
		p.Close()
		fillPath(dst, &p, col)
	case "♥":
		r := size * 0.27
		vector.DrawFilledCircle(dst, cx-r*0.92, cy-half+r, r, col, true)
		vector.DrawFilledCircle(dst, cx+r*0.92, cy-half+r, r, col, true)
		var p vector.Path
		p.MoveTo(cx-half*0.92, cy-half+r*1.25)
		p.LineTo(cx+half*0.92, cy-half+r*1.25)
		p.LineTo(cx, cy+half)
		p.Close()
		fillPath(dst, &p, col)
	case "♠":
		r := size * 0.26
		var p vector.Path
		p.MoveTo(cx, cy-half)
		p.LineTo(cx+half*0.88, cy+r*0.7)
		p.LineTo(cx-half*0.88, cy+r*0.7)
		p.Close()
		fillPath(dst, &p, col)
		vector.DrawFilledCircle(dst, cx-r*0.85, cy+r*0.55, r, col, true)
		vector.DrawFilledCircle(dst, cx+r*0.85, cy+r*0.55, r, col, true)
		drawStem(dst, cx, cy, size, col)
	case "♣":
		r := size * 0.26
		vector.DrawFilledCircle(dst, cx, cy-half+r, r, col, true)
		vector.DrawFilledCircle(dst, cx-r*1.05, cy+r*0.1, r, col, true)
		vector.DrawFilledCircle(dst, cx+r*1.05, cy+r*0.1, r, col, true)
		drawStem(dst, cx, cy, size, col)
	}
}

func drawStem(dst *ebiten.Image, cx, cy, size float32, col color.RGBA) {
	var p vector.Path
	half := size / 2
	p.MoveTo(cx-size*0.06, cy)
	p.LineTo(cx+size*0.06, cy)
	p.LineTo(cx+size*0.17, cy+half)
	p.LineTo(cx-size*0.17, cy+half)
	p.Close()
	fillPath(dst, &p, col)
}
