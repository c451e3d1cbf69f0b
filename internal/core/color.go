package core

// Color is the foreground colour of a screen cell. The zero value leaves the
// terminal's own colour in place.
type Color uint8

// Colours used by the playfield and HUD.
const (
	ColorDefault Color = iota
	ColorGray
	ColorBrightWhite
	ColorBrightYellow
	ColorBrightGreen
	ColorBrightBlue
	ColorBrightRed
)

// ANSI returns the 256-colour palette index for c, or "" for ColorDefault.
func (c Color) ANSI() string {
	switch c {
	case ColorGray:
		return "245"
	case ColorBrightWhite:
		return "15"
	case ColorBrightYellow:
		return "11"
	case ColorBrightGreen:
		return "10"
	case ColorBrightBlue:
		return "12"
	case ColorBrightRed:
		return "9"
	default:
		return ""
	}
}
