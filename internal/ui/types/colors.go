package types

import "image/color"

var (
	ColorBackground   = color.RGBA{10, 10, 30, 255}
	ColorBlack        = color.RGBA{0, 0, 0, 255}
	ColorSnake        = color.RGBA{0, 100, 0, 255}
	ColorTitle        = color.RGBA{34, 177, 76, 255}
	ColorFood         = color.RGBA{200, 0, 0, 255}
	ColorBonus        = color.RGBA{255, 215, 0, 255}
	ColorHazard       = color.RGBA{40, 40, 40, 255}
	ColorText         = color.RGBA{255, 255, 255, 255}
	ColorTextDim      = color.RGBA{40, 40, 40, 255}
	ColorHighScore    = color.RGBA{255, 215, 0, 255}
	ColorGameOver     = color.RGBA{200, 0, 0, 255}
	ColorButton       = color.RGBA{70, 70, 80, 255}
	ColorButtonHover  = color.RGBA{90, 90, 100, 255}
	ColorButtonText   = color.RGBA{220, 220, 220, 255}
	ColorButtonBorder = color.RGBA{100, 100, 110, 255}
)

func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, float64(c.R)*factor)),
		G: uint8(min(255, float64(c.G)*factor)),
		B: uint8(min(255, float64(c.B)*factor)),
		A: c.A,
	}
}
