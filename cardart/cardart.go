// Package cardart is the render collaborator for the table: it composes card
// faces and the deck back into ebiten images at arbitrary pixel scale. Faces
// are composed once per label at a supersampled size and rescaled with linear
// filtering, with caches keyed by label and scale.
package cardart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/ccgkit/go-card-table/models"
	"github.com/ccgkit/go-card-table/table"
)

// renderScale supersamples the master sprites so downscaled cards stay crisp,
// matching the 4x composition of the original faces.
const renderScale = 4

const cardPadding = 6

var (
	faceColor    = color.RGBA{R: 246, G: 246, B: 246, A: 255}
	outlineColor = color.RGBA{R: 24, G: 24, B: 24, A: 255}
	redSuit      = color.RGBA{R: 200, G: 16, B: 46, A: 255}
	blackSuit    = color.RGBA{R: 20, G: 20, B: 20, A: 255}

	deckBase       = color.RGBA{R: 120, G: 0, B: 0, A: 255}
	deckEdge       = color.RGBA{R: 160, G: 30, B: 30, A: 255}
	deckBorder     = color.RGBA{R: 30, G: 0, B: 0, A: 255}
	deckAccent     = color.RGBA{R: 230, G: 200, B: 200, A: 255}
	deckTopGrad    = color.RGBA{R: 210, G: 60, B: 60, A: 255}
	deckBottomGrad = color.RGBA{R: 90, G: 0, B: 0, A: 255}
	deckLattice    = color.RGBA{R: 255, G: 215, B: 215, A: 70}
)

type spriteKey struct {
	label  string
	shadow bool
	milli  int64 // scale in thousandths
}

// Renderer implements table.Artwork.
type Renderer struct {
	rankFace  font.Face
	labelFace font.Face

	cardMasters map[string]*ebiten.Image
	deckMasters map[int]*ebiten.Image // keyed by stripe count
	cards       map[spriteKey]*ebiten.Image
	decks       map[spriteKey]*ebiten.Image
}

func NewRenderer() (*Renderer, error) {
	rank, err := newFace(gobold.TTF, 48*renderScale)
	if err != nil {
		return nil, fmt.Errorf("rank face: %w", err)
	}
	label, err := newFace(goregular.TTF, 26*renderScale)
	if err != nil {
		return nil, fmt.Errorf("label face: %w", err)
	}
	return &Renderer{
		rankFace:    rank,
		labelFace:   label,
		cardMasters: map[string]*ebiten.Image{},
		deckMasters: map[int]*ebiten.Image{},
		cards:       map[spriteKey]*ebiten.Image{},
		decks:       map[spriteKey]*ebiten.Image{},
	}, nil
}

func newFace(ttf []byte, size float64) (font.Face, error) {
	ft, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func spriteSize(scale float64) (int, int) {
	w := int(math.Max(1, math.Round(table.CardSize.X*scale)))
	h := int(math.Max(1, math.Round(table.CardSize.Y*scale)))
	return w, h
}

func keyFor(label string, shadow bool, scale float64) spriteKey {
	return spriteKey{label: label, shadow: shadow, milli: int64(math.Round(scale * 1000))}
}

// Card returns the face sprite for a label at the given pixel scale.
func (r *Renderer) Card(label string, scale float64) *ebiten.Image {
	return r.cardSprite(label, scale, false)
}

// CardShadow is the darkened variant used for motion trails.
func (r *Renderer) CardShadow(label string, scale float64) *ebiten.Image {
	return r.cardSprite(label, scale, true)
}

func (r *Renderer) cardSprite(label string, scale float64, shadow bool) *ebiten.Image {
	k := keyFor(label, shadow, scale)
	if img, ok := r.cards[k]; ok {
		return img
	}
	master := r.cardMaster(label)
	img := rescale(master, scale, shadow)
	r.cards[k] = img
	return img
}

// DeckBack returns the deck sprite; its visible thickness follows the
// remaining card count.
func (r *Renderer) DeckBack(count int, scale float64) *ebiten.Image {
	return r.deckSprite(count, scale, false)
}

// DeckShadow is the darkened deck variant for motion trails.
func (r *Renderer) DeckShadow(count int, scale float64) *ebiten.Image {
	return r.deckSprite(count, scale, true)
}

func (r *Renderer) deckSprite(count int, scale float64, shadow bool) *ebiten.Image {
	stripes := deckStripes(count)
	k := keyFor(fmt.Sprintf("deck:%d", stripes), shadow, scale)
	if img, ok := r.decks[k]; ok {
		return img
	}
	master, ok := r.deckMasters[stripes]
	if !ok {
		master = composeDeckMaster(stripes)
		r.deckMasters[stripes] = master
	}
	img := rescale(master, scale, shadow)
	r.decks[k] = img
	return img
}

// deckStripes buckets the remaining count into the number of visible edge
// stripes, so thickness shrinks as the deck is drawn down.
func deckStripes(count int) int {
	if count <= 0 {
		return 0
	}
	stripes := 1 + count/11
	if stripes > 5 {
		stripes = 5
	}
	return stripes
}

// rescale draws a master sprite at the requested scale with linear
// filtering; shadows are multiplied down to a translucent black silhouette.
func rescale(master *ebiten.Image, scale float64, shadow bool) *ebiten.Image {
	w, h := spriteSize(scale)
	img := ebiten.NewImage(w, h)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(
		float64(w)/float64(master.Bounds().Dx()),
		float64(h)/float64(master.Bounds().Dy()),
	)
	op.Filter = ebiten.FilterLinear
	if shadow {
		op.ColorScale.Scale(0, 0, 0, 160.0/255.0)
	}
	img.DrawImage(master, op)
	return img
}

func (r *Renderer) cardMaster(label string) *ebiten.Image {
	if img, ok := r.cardMasters[label]; ok {
		return img
	}
	img := composeCardMaster(label, r.rankFace, r.labelFace)
	r.cardMasters[label] = img
	return img
}

func composeCardMaster(label string, rankFace, labelFace font.Face) *ebiten.Image {
	w := int(table.CardSize.X) * renderScale
	h := int(table.CardSize.Y) * renderScale
	img := ebiten.NewImage(w, h)

	pad := float32(cardPadding * renderScale)
	cx, cy := pad, pad
	cw := float32(w) - 2*pad
	ch := float32(h) - 2*pad
	radius := float32(12 * renderScale)

	fillRoundedRect(img, cx, cy, cw, ch, radius, faceColor)
	strokeRoundedRect(img, cx, cy, cw, ch, radius, 2*renderScale, outlineColor)

	rank, suit := models.SplitLabel(label)
	if suit != "" {
		col := suitColor(suit)
		inset := 6 * renderScale
		drawText(img, rank, rankFace, int(cx)+inset, int(cy)+inset, col)

		pipSize := float32(34 * renderScale)
		pipCX := cx + cw - pad4(10) - pipSize/2
		pipCY := cy + ch - pad4(12) - pipSize/2
		drawSuit(img, suit, pipCX, pipCY, pipSize, col)
	} else {
		// No suit: center the literal label, the Joker path.
		bounds, _ := font.BoundString(labelFace, label)
		tw := (bounds.Max.X - bounds.Min.X).Ceil()
		th := (bounds.Max.Y - bounds.Min.Y).Ceil()
		x := (w - tw) / 2
		y := (h-th)/2 + th
		text.Draw(img, label, labelFace, x, y, outlineColor)
	}
	return img
}

// drawText draws s with its top-left corner at (x, y).
func drawText(img *ebiten.Image, s string, face font.Face, x, y int, col color.Color) {
	bounds, _ := font.BoundString(face, s)
	th := (-bounds.Min.Y).Ceil()
	text.Draw(img, s, face, x, y+th, col)
}

func pad4(units int) float32 {
	return float32(units * renderScale)
}

func suitColor(suit string) color.RGBA {
	switch suit {
	case "♥", "♦":
		return redSuit
	}
	return blackSuit
}

func composeDeckMaster(stripes int) *ebiten.Image {
	w := int(table.CardSize.X) * renderScale
	h := int(table.CardSize.Y) * renderScale
	img := ebiten.NewImage(w, h)

	pad := float32(cardPadding * renderScale)
	cx, cy := pad, pad
	cw := float32(w) - 2*pad
	ch := float32(h) - 2*pad
	radius := float32(16 * renderScale)

	fillRoundedRect(img, cx, cy, cw, ch, radius, deckBase)

	// Edge stripes suggest the pile's thickness.
	spacing := pad4(6)
	stripeH := pad4(3)
	hpad := pad4(8)
	for i := 1; i <= stripes; i++ {
		y := cy + float32(i)*spacing
		if y+stripeH > cy+ch/2 {
			break
		}
		vector.DrawFilledRect(img, cx+hpad, y, cw-2*hpad, stripeH, deckEdge, true)
	}

	// Inner panel: vertical gradient with a diagonal lattice and a top
	// highlight, composed offscreen so the lattice clips to the panel.
	inset := pad4(9)
	iw := int(cw - 2*inset)
	ih := int(ch - 2*inset)
	if iw > 0 && ih > 0 {
		inner := ebiten.NewImage(iw, ih)
		bands := 24
		for b := 0; b < bands; b++ {
			ratio := float64(b) / float64(bands-1)
			col := lerpColor(deckTopGrad, deckBottomGrad, ratio)
			y := float32(b) * float32(ih) / float32(bands)
			bh := float32(ih)/float32(bands) + 1
			vector.DrawFilledRect(inner, 0, y, float32(iw), bh, col, false)
		}
		spacing := pad4(10)
		lineW := float32(renderScale)
		for off := -float32(ih); off < float32(iw); off += spacing {
			vector.StrokeLine(inner, off, 0, off+float32(ih), float32(ih), lineW, deckLattice, true)
		}
		for off := float32(0); off < float32(iw)+float32(ih); off += spacing {
			vector.StrokeLine(inner, off, 0, off-float32(ih), float32(ih), lineW, deckLattice, true)
		}
		highlight := int(math.Max(float64(pad4(8)), float64(ih)/3))
		for y := 0; y < highlight; y++ {
			alpha := 120 * (1 - float64(y)/math.Max(float64(highlight-1), 1))
			col := color.RGBA{R: 255, G: 255, B: 255, A: uint8(alpha)}
			vector.DrawFilledRect(inner, 0, float32(y), float32(iw), 1, col, false)
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(cx+inset), float64(cy+inset))
		img.DrawImage(inner, op)
	}

	strokeRoundedRect(img, cx, cy, cw, ch, radius, 3*renderScale, deckBorder)
	accInset := pad4(5)
	strokeRoundedRect(img, cx+accInset, cy+accInset, cw-2*accInset, ch-2*accInset,
		radius-pad4(4), 2*renderScale, deckAccent)
	return img
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: 255,
	}
}
