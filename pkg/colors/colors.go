package colors

import "image/color"

// Dashboard palette.
var (
	Background = color.RGBA{0, 0, 0, 255}
	Foreground = color.RGBA{255, 255, 255, 255}
	Needle     = color.RGBA{255, 0, 0, 255}
	Wind       = color.RGBA{255, 0, 0, 255}
	Nacelle    = color.RGBA{0, 128, 0, 255}
	Grid       = color.RGBA{64, 64, 64, 255}
	Debug      = color.RGBA{255, 0, 255, 255} // placeholder fill
)
