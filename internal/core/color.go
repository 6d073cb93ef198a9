package core

// Color is a foreground color for a screen cell, named after what the
// playfield draws with it. Front-ends map it to a terminal color with ANSI256.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRock
	ColorShip
	ColorThrust
	ColorShipShot
	ColorSaucerShot
	ColorSaucer
	ColorSmallSaucer
	ColorDebris
	colorCount
)

// ansi256 holds the 256-color code per color; ColorDefault has none.
var ansi256 = [colorCount]string{
	ColorRock:        "245",
	ColorShip:        "14",
	ColorThrust:      "208",
	ColorShipShot:    "11",
	ColorSaucerShot:  "1",
	ColorSaucer:      "5",
	ColorSmallSaucer: "9",
	ColorDebris:      "3",
}

// Colors lists every color including ColorDefault.
func Colors() []Color {
	out := make([]Color, 0, colorCount)
	for c := ColorDefault; c < colorCount; c++ {
		out = append(out, c)
	}
	return out
}

// ANSI256 returns the terminal color code, or "" for the terminal default.
func (c Color) ANSI256() string {
	if c >= colorCount {
		return ""
	}
	return ansi256[c]
}
