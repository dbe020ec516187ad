package table

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ccgkit/go-card-table/config"
	"github.com/ccgkit/go-card-table/geom"
)

const (
	gridDashLength = 10.0
	gridGapLength  = 6.0
	gridLineWidth  = 1.0
)

var (
	tableColor    = color.RGBA{R: 32, G: 48, B: 64, A: 255}
	gridLineColor = color.RGBA{R: 255, G: 255, B: 255, A: 150}
)

// Artwork is the render collaborator: it turns a label (or deck count) and a
// pixel scale into a drawable image. The scene composes position and zoom
// itself and only ever asks for sprites.
type Artwork interface {
	Card(label string, scale float64) *ebiten.Image
	CardShadow(label string, scale float64) *ebiten.Image
	DeckBack(count int, scale float64) *ebiten.Image
	DeckShadow(count int, scale float64) *ebiten.Image
}

// Game drives the scene from ebiten's fixed-rate loop: poll input, advance
// interpolation, re-run the hand layout, draw.
type Game struct {
	scene  *Scene
	art    Artwork
	width  int
	height int
}

func NewGame(cfg config.Config, art Artwork) *Game {
	scene := NewScene(float64(cfg.Display.Width), float64(cfg.Display.Height), nil, nil)
	scene.SeedInitialObjects()
	return &Game{
		scene:  scene,
		art:    art,
		width:  cfg.Display.Width,
		height: cfg.Display.Height,
	}
}

// Scene exposes the scene for the play command's logging.
func (g *Game) Scene() *Scene { return g.scene }

func (g *Game) Update() error {
	cx, cy := ebiten.CursorPosition()
	cursor := geom.V(float64(cx), float64(cy))
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.scene.PointerDown(cursor, ctrl)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.scene.PointerUp(cursor, ctrl)
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.scene.Wheel(wy, cursor)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.scene.PressEscape()
	}

	g.scene.Step(cursor, 1.0/float64(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(tableColor)
	if g.scene.Dragged() != nil || g.scene.Panning() {
		g.drawGrid(screen)
	}
	for _, o := range g.scene.Objects {
		if o.inHand {
			continue
		}
		g.drawTrail(screen, o)
		g.drawObject(screen, o)
	}
	g.drawHand(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// drawObject renders a world entity through the kind dispatch; the sprite is
// requested at the combined object and camera scale so the collaborator can
// rescale smoothly.
func (g *Game) drawObject(screen *ebiten.Image, o *Object) {
	cam := g.scene.Camera
	scale := o.Scale * cam.Zoom
	var img *ebiten.Image
	switch o.Kind {
	case KindCard:
		img = g.art.Card(o.Label, scale)
	case KindDeck:
		img = g.art.DeckBack(o.CardsRemaining(), scale)
	}
	if img == nil {
		return
	}
	pos := cam.WorldToScreen(o.Pos).Round()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	screen.DrawImage(img, op)
}

// drawTrail renders the motion shadows behind a moving entity, faded by age.
func (g *Game) drawTrail(screen *ebiten.Image, o *Object) {
	samples := o.Trail(g.scene.now())
	if len(samples) == 0 {
		return
	}
	cam := g.scene.Camera
	now := g.scene.now()
	for _, sample := range samples {
		fade := shadowFade(now.Sub(sample.At))
		if fade <= 0 {
			continue
		}
		var img *ebiten.Image
		switch o.Kind {
		case KindCard:
			img = g.art.CardShadow(o.Label, sample.Scale*cam.Zoom)
		case KindDeck:
			img = g.art.DeckShadow(o.CardsRemaining(), sample.Scale*cam.Zoom)
		}
		if img == nil {
			continue
		}
		pos := cam.WorldToScreen(sample.Pos).Round()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(pos.X, pos.Y)
		op.ColorScale.ScaleAlpha(float32(fade))
		screen.DrawImage(img, op)
	}
}

// drawHand renders the docked cards at their eased screen positions, the
// hovered card last so it sits on top.
func (g *Game) drawHand(screen *ebiten.Image) {
	hovered := g.scene.Hand.Hovered()
	for _, o := range g.scene.Hand.Cards() {
		if o != hovered {
			g.drawHandCard(screen, o)
		}
	}
	if hovered != nil {
		g.drawHandCard(screen, hovered)
	}
}

func (g *Game) drawHandCard(screen *ebiten.Image, o *Object) {
	scale := o.handRect.W / CardSize.X
	img := g.art.Card(o.Label, scale)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(math.Round(o.handPos.X), math.Round(o.handPos.Y))
	screen.DrawImage(img, op)
}

// drawGrid draws the dashed world-aligned grid over the visible area, shown
// only while a drag or pan is active.
func (g *Game) drawGrid(screen *ebiten.Image) {
	cam := g.scene.Camera
	topLeft := cam.ScreenToWorld(geom.Vec2{})
	bottomRight := cam.ScreenToWorld(cam.Viewport)

	left := math.Floor(math.Min(topLeft.X, bottomRight.X)/GridCell) * GridCell
	right := math.Ceil(math.Max(topLeft.X, bottomRight.X)/GridCell) * GridCell
	top := math.Floor(math.Min(topLeft.Y, bottomRight.Y)/GridCell) * GridCell
	bottom := math.Ceil(math.Max(topLeft.Y, bottomRight.Y)/GridCell) * GridCell

	width := float32(math.Max(1, math.Round(gridLineWidth*cam.Zoom)))
	for x := left; x <= right; x += GridCell {
		g.drawDashedLine(screen, geom.V(x, top), geom.V(x, bottom), width)
	}
	for y := top; y <= bottom; y += GridCell {
		g.drawDashedLine(screen, geom.V(left, y), geom.V(right, y), width)
	}
}

func (g *Game) drawDashedLine(screen *ebiten.Image, start, end geom.Vec2, width float32) {
	cam := g.scene.Camera
	dir := end.Sub(start)
	length := dir.Len()
	if length == 0 {
		return
	}
	dir = dir.Div(length)
	for progress := 0.0; progress < length; progress += gridDashLength + gridGapLength {
		dashEnd := math.Min(progress+gridDashLength, length)
		a := cam.WorldToScreen(start.Add(dir.Mul(progress)))
		b := cam.WorldToScreen(start.Add(dir.Mul(dashEnd)))
		vector.StrokeLine(screen,
			float32(math.Round(a.X)), float32(math.Round(a.Y)),
			float32(math.Round(b.X)), float32(math.Round(b.Y)),
			width, gridLineColor, false)
	}
}
