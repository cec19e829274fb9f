package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to a terminal color.
type Color uint8

// Base colors for HUD text and frames.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorDim
)

// Neon palette used for tetromino cells and accents.
const (
	ColorLilac Color = iota + 16
	ColorOrchid
	ColorAmethyst
	ColorPurple
	ColorGrape
	ColorFuchsia
	ColorViolet
)

// IsPalette reports whether c belongs to the neon palette.
func (c Color) IsPalette() bool {
	return c >= ColorLilac && c <= ColorViolet
}
