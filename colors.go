package brush

// The named SVG colors. These match what [ParseColor] accepts, so
// ParseColor("red") returns Red exactly.
var (
	AliceBlue            = RGB8(240, 248, 255)
	AntiqueWhite         = RGB8(250, 235, 215)
	Aqua                 = RGB8(0, 255, 255)
	Aquamarine           = RGB8(127, 255, 212)
	Azure                = RGB8(240, 255, 255)
	Beige                = RGB8(245, 245, 220)
	Bisque               = RGB8(255, 228, 196)
	Black                = RGB8(0, 0, 0)
	BlanchedAlmond       = RGB8(255, 235, 205)
	Blue                 = RGB8(0, 0, 255)
	BlueViolet           = RGB8(138, 43, 226)
	Brown                = RGB8(165, 42, 42)
	Burlywood            = RGB8(222, 184, 135)
	CadetBlue            = RGB8(95, 158, 160)
	Chartreuse           = RGB8(127, 255, 0)
	Chocolate            = RGB8(210, 105, 30)
	Coral                = RGB8(255, 127, 80)
	CornflowerBlue       = RGB8(100, 149, 237)
	Cornsilk             = RGB8(255, 248, 220)
	Crimson              = RGB8(220, 20, 60)
	Cyan                 = RGB8(0, 255, 255)
	DarkBlue             = RGB8(0, 0, 139)
	DarkCyan             = RGB8(0, 139, 139)
	DarkGoldenrod        = RGB8(184, 134, 11)
	DarkGray             = RGB8(169, 169, 169)
	DarkGreen            = RGB8(0, 100, 0)
	DarkKhaki            = RGB8(189, 183, 107)
	DarkMagenta          = RGB8(139, 0, 139)
	DarkOliveGreen       = RGB8(85, 107, 47)
	DarkOrange           = RGB8(255, 140, 0)
	DarkOrchid           = RGB8(153, 50, 204)
	DarkRed              = RGB8(139, 0, 0)
	DarkSalmon           = RGB8(233, 150, 122)
	DarkSeaGreen         = RGB8(143, 188, 143)
	DarkSlateBlue        = RGB8(72, 61, 139)
	DarkSlateGray        = RGB8(47, 79, 79)
	DarkTurquoise        = RGB8(0, 206, 209)
	DarkViolet           = RGB8(148, 0, 211)
	DeepPink             = RGB8(255, 20, 147)
	DeepSkyBlue          = RGB8(0, 191, 255)
	DimGray              = RGB8(105, 105, 105)
	DodgerBlue           = RGB8(30, 144, 255)
	Firebrick            = RGB8(178, 34, 34)
	FloralWhite          = RGB8(255, 250, 240)
	ForestGreen          = RGB8(34, 139, 34)
	Fuchsia              = RGB8(255, 0, 255)
	Gainsboro            = RGB8(220, 220, 220)
	GhostWhite           = RGB8(248, 248, 255)
	Gold                 = RGB8(255, 215, 0)
	Goldenrod            = RGB8(218, 165, 32)
	Gray                 = RGB8(128, 128, 128)
	Green                = RGB8(0, 128, 0)
	GreenYellow          = RGB8(173, 255, 47)
	Honeydew             = RGB8(240, 255, 240)
	HotPink              = RGB8(255, 105, 180)
	IndianRed            = RGB8(205, 92, 92)
	Indigo               = RGB8(75, 0, 130)
	Ivory                = RGB8(255, 255, 240)
	Khaki                = RGB8(240, 230, 140)
	Lavender             = RGB8(230, 230, 250)
	LavenderBlush        = RGB8(255, 240, 245)
	LawnGreen            = RGB8(124, 252, 0)
	LemonChiffon         = RGB8(255, 250, 205)
	LightBlue            = RGB8(173, 216, 230)
	LightCoral           = RGB8(240, 128, 128)
	LightCyan            = RGB8(224, 255, 255)
	LightGoldenrodYellow = RGB8(250, 250, 210)
	LightGray            = RGB8(211, 211, 211)
	LightGreen           = RGB8(144, 238, 144)
	LightPink            = RGB8(255, 182, 193)
	LightSalmon          = RGB8(255, 160, 122)
	LightSeaGreen        = RGB8(32, 178, 170)
	LightSkyBlue         = RGB8(135, 206, 250)
	LightSlateGray       = RGB8(119, 136, 153)
	LightSteelBlue       = RGB8(176, 196, 222)
	LightYellow          = RGB8(255, 255, 224)
	Lime                 = RGB8(0, 255, 0)
	LimeGreen            = RGB8(50, 205, 50)
	Linen                = RGB8(250, 240, 230)
	Magenta              = RGB8(255, 0, 255)
	Maroon               = RGB8(128, 0, 0)
	MediumAquamarine     = RGB8(102, 205, 170)
	MediumBlue           = RGB8(0, 0, 205)
	MediumOrchid         = RGB8(186, 85, 211)
	MediumPurple         = RGB8(147, 112, 219)
	MediumSeaGreen       = RGB8(60, 179, 113)
	MediumSlateBlue      = RGB8(123, 104, 238)
	MediumSpringGreen    = RGB8(0, 250, 154)
	MediumTurquoise      = RGB8(72, 209, 204)
	MediumVioletRed      = RGB8(199, 21, 133)
	MidnightBlue         = RGB8(25, 25, 112)
	MintCream            = RGB8(245, 255, 250)
	MistyRose            = RGB8(255, 228, 225)
	Moccasin             = RGB8(255, 228, 181)
	NavajoWhite          = RGB8(255, 222, 173)
	Navy                 = RGB8(0, 0, 128)
	OldLace              = RGB8(253, 245, 230)
	Olive                = RGB8(128, 128, 0)
	OliveDrab            = RGB8(107, 142, 35)
	Orange               = RGB8(255, 165, 0)
	OrangeRed            = RGB8(255, 69, 0)
	Orchid               = RGB8(218, 112, 214)
	PaleGoldenrod        = RGB8(238, 232, 170)
	PaleGreen            = RGB8(152, 251, 152)
	PaleTurquoise        = RGB8(175, 238, 238)
	PaleVioletRed        = RGB8(219, 112, 147)
	PapayaWhip           = RGB8(255, 239, 213)
	PeachPuff            = RGB8(255, 218, 185)
	Peru                 = RGB8(205, 133, 63)
	Pink                 = RGB8(255, 192, 203)
	Plum                 = RGB8(221, 160, 221)
	PowderBlue           = RGB8(176, 224, 230)
	Purple               = RGB8(128, 0, 128)
	RebeccaPurple        = RGB8(102, 51, 153)
	Red                  = RGB8(255, 0, 0)
	RosyBrown            = RGB8(188, 143, 143)
	RoyalBlue            = RGB8(65, 105, 225)
	SaddleBrown          = RGB8(139, 69, 19)
	Salmon               = RGB8(250, 128, 114)
	SandyBrown           = RGB8(244, 164, 96)
	SeaGreen             = RGB8(46, 139, 87)
	Seashell             = RGB8(255, 245, 238)
	Sienna               = RGB8(160, 82, 45)
	Silver               = RGB8(192, 192, 192)
	SkyBlue              = RGB8(135, 206, 235)
	SlateBlue            = RGB8(106, 90, 205)
	SlateGray            = RGB8(112, 128, 144)
	Snow                 = RGB8(255, 250, 250)
	SpringGreen          = RGB8(0, 255, 127)
	SteelBlue            = RGB8(70, 130, 180)
	Tan                  = RGB8(210, 180, 140)
	Teal                 = RGB8(0, 128, 128)
	Thistle              = RGB8(216, 191, 216)
	Tomato               = RGB8(255, 99, 71)
	Turquoise            = RGB8(64, 224, 208)
	Violet               = RGB8(238, 130, 238)
	Wheat                = RGB8(245, 222, 179)
	White                = RGB8(255, 255, 255)
	WhiteSmoke           = RGB8(245, 245, 245)
	Yellow               = RGB8(255, 255, 0)
	YellowGreen          = RGB8(154, 205, 50)

	// Transparent is fully transparent black.
	Transparent = Color{}
)
