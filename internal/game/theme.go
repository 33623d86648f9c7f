package game

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	colorPage      = hex(0xffffff)
	colorGray      = hex(0xf9fafb)
	colorDark      = hex(0x111827)
	colorHeading   = hex(0x111827)
	colorMuted     = hex(0x6b7280)
	colorBorder    = hex(0xe5e7eb)
	colorTeal      = hex(0x14b8a6)
	colorTealDark  = hex(0x0d9488)
	colorTealLight = hex(0xccfbf1)
	colorBlue      = hex(0x3b82f6)
	colorWhite     = hex(0xffffff)
	colorDisabled  = hex(0x9ca3af)
	colorError     = hex(0xdc2626)
)

var accents = map[string]color.RGBA{
	"teal":   colorTeal,
	"blue":   colorBlue,
	"indigo": hex(0x6366f1),
	"rose":   hex(0xf43f5e),
	"amber":  hex(0xf59e0b),
}

func accent(name string) color.RGBA {
	if c, ok := accents[name]; ok {
		return c
	}
	return colorTeal
}

type faceKey struct {
	size float64
	bold bool
}

// fonts caches text faces by size and weight.
type fonts struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	faces   map[faceKey]text.Face
}

func loadFonts() (*fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}
	return &fonts{regular: regular, bold: bold, faces: make(map[faceKey]text.Face)}, nil
}

func (f *fonts) face(size float64, bold bool) text.Face {
	k := faceKey{size: size, bold: bold}
	if face, ok := f.faces[k]; ok {
		return face
	}
	src := f.regular
	if bold {
		src = f.bold
	}
	face := &text.GoTextFace{Source: src, Size: size}
	f.faces[k] = face
	return face
}
