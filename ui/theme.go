package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	textColor    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	mutedColor   = color.NRGBA{R: 0xc8, G: 0xd6, B: 0xe0, A: 0xff}
	accentColor  = color.NRGBA{R: 0xf2, G: 0xc9, B: 0x4c, A: 0xff}
	panelColor   = color.NRGBA{R: 0x12, G: 0x2a, B: 0x3a, A: 0xf0}
	barColor     = color.NRGBA{R: 0x0b, G: 0x1d, B: 0x29, A: 0xc8}
	overlayColor = color.NRGBA{A: 0xa0}
)

// Theme holds the faces and images shared by every widget.
type Theme struct {
	Face      *text.Face
	TitleFace *text.Face
	SmallFace *text.Face

	Button     *widget.ButtonImage
	ButtonText *widget.ButtonTextColor
	Panel      *image.NineSlice
	Bar        *image.NineSlice
	Overlay    *image.NineSlice
}

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

// NewTheme builds the default theme. Go Regular is used when it parses,
// otherwise the basic bitmap font.
func NewTheme() *Theme {
	var face, title, small text.Face
	if src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF)); err == nil {
		face = &text.GoTextFace{Source: src, Size: 18}
		title = &text.GoTextFace{Source: src, Size: 26}
		small = &text.GoTextFace{Source: src, Size: 14}
	} else {
		face = text.NewGoXFace(basicfont.Face7x13)
		title, small = face, face
	}

	return &Theme{
		Face:      &face,
		TitleFace: &title,
		SmallFace: &small,
		Button: &widget.ButtonImage{
			Idle:     solidNineSlice(color.NRGBA{R: 0x2f, G: 0x80, B: 0xed, A: 0xff}),
			Hover:    solidNineSlice(color.NRGBA{R: 0x56, G: 0x9c, B: 0xf5, A: 0xff}),
			Pressed:  solidNineSlice(color.NRGBA{R: 0x1c, G: 0x5f, B: 0xb8, A: 0xff}),
			Disabled: solidNineSlice(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}),
		},
		ButtonText: &widget.ButtonTextColor{
			Idle:     textColor,
			Disabled: mutedColor,
		},
		Panel:   solidNineSlice(panelColor),
		Bar:     solidNineSlice(barColor),
		Overlay: solidNineSlice(overlayColor),
	}
}
