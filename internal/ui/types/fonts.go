package types

import (
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

const (
	titleFontSize  = 48
	normalFontSize = 28
	smallFontSize  = 16
)

type Fonts struct {
	Title  font.Face
	Normal font.Face
	Small  font.Face
}

var defaultFonts *Fonts

// InitFonts builds the bold faces. If the font cannot be parsed every
// face falls back to the built-in bitmap font.
func InitFonts() {
	fonts, err := loadFonts()
	if err != nil {
		log.Printf("Fonts: using bitmap fallback: %v", err)
		fonts = &Fonts{
			Title:  basicfont.Face7x13,
			Normal: basicfont.Face7x13,
			Small:  basicfont.Face7x13,
		}
	}
	defaultFonts = fonts
}

func GetFonts() *Fonts {
	if defaultFonts == nil {
		InitFonts()
	}
	return defaultFonts
}

func loadFonts() (*Fonts, error) {
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, err
	}

	face := func(size float64) (font.Face, error) {
		return opentype.NewFace(bold, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	title, err := face(titleFontSize)
	if err != nil {
		return nil, err
	}
	normal, err := face(normalFontSize)
	if err != nil {
		return nil, err
	}
	small, err := face(smallFontSize)
	if err != nil {
		return nil, err
	}

	return &Fonts{Title: title, Normal: normal, Small: small}, nil
}
