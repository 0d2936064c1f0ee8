package core

import "strconv"

// Color is a foreground color for a screen cell. The platform maps each
// value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorTeal
	ColorPurple
)

// ansi256 holds the terminal code of each color, indexed by Color.
var ansi256 = [...]string{
	ColorDefault:       "",
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorBlue:          "4",
	ColorMagenta:       "5",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorGray:          "245",
	ColorTeal:          "79",
	ColorPurple:        "91",
}

// NumColors is the number of defined colors.
const NumColors = len(ansi256)

// ANSI returns the 256-color code for c, or "" for the terminal default
// and unknown values.
func (c Color) ANSI() string {
	if int(c) >= len(ansi256) {
		return ""
	}
	return ansi256[c]
}

// palette holds the approximate RGB value of each named color, used to map
// element hex colors onto the terminal palette.
var palette = []struct {
	c       Color
	r, g, b int
}{
	{ColorRed, 0xcd, 0x00, 0x00},
	{ColorGreen, 0x00, 0xcd, 0x00},
	{ColorYellow, 0xcd, 0xcd, 0x00},
	{ColorBlue, 0x00, 0x00, 0xee},
	{ColorMagenta, 0xcd, 0x00, 0xcd},
	{ColorCyan, 0x00, 0xcd, 0xcd},
	{ColorWhite, 0xe5, 0xe5, 0xe5},
	{ColorBrightRed, 0xff, 0x00, 0x00},
	{ColorBrightGreen, 0x00, 0xff, 0x00},
	{ColorBrightYellow, 0xff, 0xff, 0x00},
	{ColorBrightBlue, 0x5c, 0x5c, 0xff},
	{ColorBrightMagenta, 0xff, 0x00, 0xff},
	{ColorBrightCyan, 0x00, 0xff, 0xff},
	{ColorBrightWhite, 0xff, 0xff, 0xff},
	{ColorOrange, 0xff, 0x87, 0x00},
	{ColorGray, 0x8a, 0x8a, 0x8a},
	{ColorTeal, 0x4e, 0xcc, 0xa3},
	{ColorPurple, 0x94, 0x00, 0x94},
}

// ColorFromHex maps a "#rrggbb" string to the nearest palette color.
// Malformed input yields ColorDefault.
func ColorFromHex(hex string) Color {
	if len(hex) != 7 || hex[0] != '#' {
		return ColorDefault
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return ColorDefault
	}
	r, g, b := int(v>>16&0xff), int(v>>8&0xff), int(v&0xff)

	best, bestDist := ColorDefault, -1
	for _, p := range palette {
		dr, dg, db := r-p.r, g-p.g, b-p.b
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = p.c, d
		}
	}
	return best
}
