package constants

// Icon glyphs (Material Design Icons code points) for menus that do not ship
// image files. They render with the theme's icon font.
const (
	Home     = "\U000F02DC"
	Search   = "\U000F0349"
	Library  = "\U000F0331"
	Download = "\U000F01DA"
	Settings = "\U000F0493"
	Account  = "\U000F0004"
)
